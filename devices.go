package slquickemu

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// cpuFlag prefixes the CPU specification.
const cpuFlag = "-cpu"

// isaMachine is the machine profile forced by any ISA device or bus.
const isaMachine = "isapc"

// buildNameFragment builds the guest and process name.
func buildNameFragment(cfg *Config) string {
	return fmt.Sprintf("-name %[1]s,process=%[1]s", cfg.VMName)
}

// buildMachineFragment builds acceleration, CPU and machine arguments.
func buildMachineFragment(cfg *Config) string {
	var parts []string
	if cfg.KVM {
		parts = append(parts, "-enable-kvm")
	}
	if cpu := cpuArg(cfg.CPU); cpu != "" {
		parts = append(parts, cpu)
	}
	parts = append(parts, "-machine", machineType(cfg))

	return strings.Join(parts, " ")
}

// cpuArg returns the CPU specification with the -cpu flag.
func cpuArg(cpu string) string {
	cpu = strings.TrimSpace(cpu)
	if cpu == "" || strings.HasPrefix(cpu, cpuFlag) {
		return cpu
	}
	return cpuFlag + " " + cpu
}

// machineType returns the configured machine unless an ISA display device
// or disk interface requires the ISA PC profile.
func machineType(cfg *Config) string {
	if strings.Contains(cfg.DisplayDevice, "isa") || strings.Contains(cfg.DiskInterface, "isa") {
		return isaMachine
	}
	return cfg.Machine
}

// buildSMPFragment builds a single socket topology with n cores.
func buildSMPFragment(n int) string {
	return fmt.Sprintf("-smp %[1]d,sockets=1,cores=%[1]d,threads=1", n)
}

// buildMemoryFragment builds the -m argument.
func buildMemoryFragment(ram string) string {
	return "-m " + ram
}

// buildBootFragment builds the boot menu toggle.
func buildBootFragment(cfg *Config) string {
	return "-boot menu=" + onOff(cfg.BootMenu)
}

// buildRTCFragment builds the real-time clock in localtime/host mode.
func buildRTCFragment(cfg *Config) string {
	if !cfg.RTC {
		return ""
	}
	return "-rtc base=localtime,clock=host"
}

// buildSpiceFragment builds the SPICE server on port.
func buildSpiceFragment(port int) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("port=%d", port))
	parts = append(parts, "disable-ticketing=on")

	return "-spice " + strings.Join(parts, ",")
}

func onOff(v bool) string {
	return lo.Ternary(v, "on", "off")
}

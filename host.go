package slquickemu

import (
	"github.com/c2h5oh/datasize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"
)

// HostProbe reports the host resources used to size "auto" guests.
type HostProbe interface {
	// MemoryKB returns the total physical memory in kilobytes.
	MemoryKB() (uint64, error)

	// PhysicalCores returns the number of physical CPU cores.
	PhysicalCores() (int, error)
}

// SystemProbe reads the running host through gopsutil.
type SystemProbe struct{}

// MemoryKB returns MemTotal in kilobytes.
func (SystemProbe) MemoryKB() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Total / 1024, nil
}

// PhysicalCores returns the physical core count.
func (SystemProbe) PhysicalCores() (int, error) {
	return cpu.Counts(false)
}

// autoRAM picks the guest memory bucket from the host memory in kilobytes.
func autoRAM(memKB uint64) string {
	gb := memKB / 1000000
	switch {
	case gb >= 64:
		return "4G"
	case gb >= 16:
		return "3G"
	default:
		return "2G"
	}
}

// autoCores picks the guest core count from the host physical cores.
func autoCores(physical int) int {
	if physical >= 8 {
		return 4
	}
	return 2
}

// ramArg resolves the -m value, consulting the host only for "auto".
func ramArg(cfg *Config, host HostProbe, log logrus.FieldLogger) string {
	if cfg.RAM != AutoRAM {
		return cfg.RAM
	}

	kb, err := host.MemoryKB()
	if err != nil {
		log.WithError(err).Warn("cannot read host memory, using smallest guest size")
		return autoRAM(0)
	}

	ram := autoRAM(kb)
	log.WithFields(logrus.Fields{
		"host_memory": (datasize.ByteSize(kb) * datasize.KB).HumanReadable(),
		"ram":         ram,
	}).Debug("selected guest memory")
	return ram
}

// coresArg resolves the SMP core count, consulting the host only for 0.
func coresArg(cfg *Config, host HostProbe, log logrus.FieldLogger) int {
	if cfg.CPUCores != 0 {
		return cfg.CPUCores
	}

	physical, err := host.PhysicalCores()
	if err != nil {
		log.WithError(err).Warn("cannot read host cores, using smallest guest size")
		return autoCores(0)
	}

	cores := autoCores(physical)
	log.WithFields(logrus.Fields{
		"host_cores": physical,
		"cores":      cores,
	}).Debug("selected guest cores")
	return cores
}

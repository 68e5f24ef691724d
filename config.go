package slquickemu

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// OverlaySubdir is the directory under the user config directory holding
// overlay documents.
const OverlaySubdir = "slquickemu"

// AutoRAM is the ram value asking for a host-sized memory allocation.
const AutoRAM = "auto"

// Config is a fully resolved VM configuration. Every field holds a concrete
// value. A Config is built once by a Resolver and only read afterwards.
type Config struct {
	// VMName is the guest and process name. Defaults to the VM file stem.
	VMName string

	// Launcher tags the audio stream names.
	Launcher string

	// GuestOS selects the tweak overlay. It is not interpreted otherwise.
	GuestOS string

	// CPU is the raw CPU specification, e.g. "-cpu host,kvm=on".
	CPU string

	// KVM enables hardware acceleration.
	KVM bool

	// RAM is a literal size ("4G") or AutoRAM.
	RAM string

	// CPUCores is the SMP core count, 0 selects it from the host.
	CPUCores int

	// Machine is the chipset profile.
	Machine string

	BootMenu bool
	Boot     string

	ISO       string
	DriverISO string

	// DiskImg and Disk2Img are image paths, Disk and Disk2 their sizes
	// used when the image has to be created.
	DiskImg  string
	Disk     string
	Disk2Img string
	Disk2    string

	Floppy string

	// DiskInterface is "", "none", an IDE tag or a SCSI tag.
	DiskInterface string

	// SCSIController is the controller device used with SCSI disks.
	SCSIController string

	DisplayDevice string
	Virgl         bool
	GL            bool
	Output        string
	OutputExtras  string

	Audio       string
	AudioOutput string

	RTC   bool
	Spice bool

	QemuPath    string
	QemuImgPath string
}

// DefaultConfig returns the built-in defaults for a VM named vmName.
func DefaultConfig(vmName string) *Config {
	return &Config{
		VMName:        vmName,
		Launcher:      "slquickemu",
		GuestOS:       "linux",
		CPU:           "-cpu host,kvm=on",
		KVM:           true,
		RAM:           AutoRAM,
		Machine:       "q35",
		Disk:          "128G",
		Disk2:         "128G",
		DiskInterface: "none",
		DisplayDevice: "vga",
		Virgl:         true,
		GL:            true,
		Output:        "sdl",
		Audio:         "intel-hda",
		AudioOutput:   "pa",
		RTC:           true,
		Spice:         true,
		QemuPath:      "/snap/bin/qemu-virgil",
		QemuImgPath:   "/snap/bin/qemu-virgil.qemu-img",
	}
}

// newConfig fills every unset field of o from the built-in defaults.
func newConfig(o RawOptions, vmName string) *Config {
	d := DefaultConfig(vmName)

	return &Config{
		VMName:   lo.FromPtrOr(o.VMName, d.VMName),
		Launcher: lo.FromPtrOr(o.Launcher, d.Launcher),
		GuestOS:  lo.FromPtrOr(o.GuestOS, d.GuestOS),

		CPU:      lo.FromPtrOr(o.CPU, d.CPU),
		KVM:      lo.FromPtrOr(o.KVM, d.KVM),
		RAM:      lo.FromPtrOr(o.RAM, d.RAM),
		CPUCores: int(lo.FromPtrOr(o.CPUCores, uint8(d.CPUCores))),
		Machine:  lo.FromPtrOr(o.Machine, d.Machine),

		BootMenu: lo.FromPtrOr(o.BootMenu, d.BootMenu),
		Boot:     lo.FromPtrOr(o.Boot, d.Boot),

		ISO:            lo.FromPtrOr(o.ISO, d.ISO),
		DriverISO:      lo.FromPtrOr(o.DriverISO, d.DriverISO),
		DiskImg:        lo.FromPtrOr(o.DiskImg, d.DiskImg),
		Disk:           lo.FromPtrOr(o.Disk, d.Disk),
		Disk2Img:       lo.FromPtrOr(o.Disk2Img, d.Disk2Img),
		Disk2:          lo.FromPtrOr(o.Disk2, d.Disk2),
		Floppy:         lo.FromPtrOr(o.Floppy, d.Floppy),
		DiskInterface:  lo.FromPtrOr(o.DiskInterface, d.DiskInterface),
		SCSIController: lo.FromPtrOr(o.SCSIController, d.SCSIController),

		DisplayDevice: lo.FromPtrOr(o.DisplayDevice, d.DisplayDevice),
		Virgl:         lo.FromPtrOr(o.Virgl, d.Virgl),
		GL:            lo.FromPtrOr(o.GL, d.GL),
		Output:        lo.FromPtrOr(o.Output, d.Output),
		OutputExtras:  lo.FromPtrOr(o.OutputExtras, d.OutputExtras),

		Audio:       lo.FromPtrOr(o.Audio, d.Audio),
		AudioOutput: lo.FromPtrOr(o.AudioOutput, d.AudioOutput),

		RTC:   lo.FromPtrOr(o.RTC, d.RTC),
		Spice: lo.FromPtrOr(o.Spice, d.Spice),

		QemuPath:    lo.FromPtrOr(o.QemuPath, d.QemuPath),
		QemuImgPath: lo.FromPtrOr(o.QemuImgPath, d.QemuImgPath),
	}
}

// Validate checks the tags that synthesis cannot recover from. The disk
// interface is checked even when no disk is set.
func (c *Config) Validate() error {
	switch ParseDiskInterface(c.DiskInterface) {
	case DiskInterfaceSCSI:
		if c.SCSIController == "" {
			return ErrSCSIControllerMissing
		}
	case DiskInterfaceUnknown:
		return fmt.Errorf("%w: %q", ErrUnknownDiskController, c.DiskInterface)
	}
	return nil
}

// DiskPaths returns the configured, non-empty disk image paths.
func (c *Config) DiskPaths() []string {
	return lo.Compact([]string{c.DiskImg, c.Disk2Img})
}

// vmNameFromPath derives the default VM name from the VM file name.
func vmNameFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "vm"
	}
	return name
}

// defaultOverlayDir returns <user config dir>/slquickemu.
func defaultOverlayDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMissingXdgConfig, err)
	}
	return filepath.Join(configDir, OverlaySubdir), nil
}

// defaultRuntimeDir returns the per-user runtime directory.
func defaultRuntimeDir() (string, error) {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		return "", ErrMissingXdgRuntime
	}
	return dir, nil
}

package slquickemu

import (
	"fmt"
	"strings"
)

// Drive slots. Slot 0 carries the SCSI controller declaration.
const (
	driveSlots = 2
	cdromSlots = 2
)

// buildDriveFragment builds the qcow2 drive for slot and the device it is
// attached to. cfg must have passed Validate.
func buildDriveFragment(cfg *Config, path string, slot int) string {
	if path == "" {
		return ""
	}

	id := fmt.Sprintf("drive%d", slot)

	var parts []string
	parts = append(parts, "if=none")
	parts = append(parts, "id="+id)
	parts = append(parts, "cache=directsync")
	parts = append(parts, "aio=native")
	parts = append(parts, "format=qcow2")
	parts = append(parts, fmt.Sprintf(`file="%s"`, path))
	drive := "-drive " + strings.Join(parts, ",")

	if ParseDiskInterface(cfg.DiskInterface) == DiskInterfaceSCSI {
		if slot == 0 {
			drive = "-device " + cfg.SCSIController + " " + drive
		}
		return fmt.Sprintf("%s -device scsi-hd,drive=%s", drive, id)
	}
	return fmt.Sprintf("%s -device virtio-blk-pci,drive=%s,scsi=off", drive, id)
}

// cdromIndex returns the CD-ROM index of slot. On IDE the optical drives
// are numbered after the configured hard disks.
func cdromIndex(cfg *Config, slot int) int {
	if ParseDiskInterface(cfg.DiskInterface) != DiskInterfaceIDE {
		return slot
	}
	return slot + len(cfg.DiskPaths())
}

// buildCDROMFragment builds the optical drive for slot.
func buildCDROMFragment(cfg *Config, path string, slot int) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf(`-drive media=cdrom,index=%d,file="%s"`, cdromIndex(cfg, slot), path)
}

// buildFloppyFragment builds the floppy drive.
func buildFloppyFragment(path string) string {
	if path == "" {
		return ""
	}
	return "-fda " + path
}

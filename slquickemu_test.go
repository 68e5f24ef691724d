package slquickemu

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocateQemu(t *testing.T) {
	// Test with default arch
	path, err := LocateQemu("", "")
	if err != nil {
		t.Skipf("QEMU not found (this is OK if QEMU is not installed): %v", err)
	}
	if path == "" {
		t.Error("expected non-empty path")
	}
	t.Logf("Found QEMU at: %s", path)
}

func TestLocateQemuCustomPath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "qemu-custom")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	path, err := LocateQemu("amd64", bin)
	if err != nil {
		t.Fatalf("expected custom path to be used, got error: %v", err)
	}
	if path != bin {
		t.Errorf("expected %q, got %q", bin, path)
	}
}

func TestLocateQemuCustomPathNotExecutable(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "qemu-data")
	if err := os.WriteFile(data, []byte("not a binary"), 0644); err != nil {
		t.Fatal(err)
	}

	path, err := LocateQemu("amd64", data)
	if err == nil && path == data {
		t.Errorf("non-executable custom path %q should not be returned", data)
	}
}

func TestLocateQemuInvalidArch(t *testing.T) {
	_, err := LocateQemu("invalid-arch", "")
	if err == nil {
		t.Error("expected error for invalid architecture")
	}

	var unsupportedErr *UnsupportedArchError
	if !errors.As(err, &unsupportedErr) {
		t.Errorf("expected UnsupportedArchError, got %T", err)
	}
}

func TestQemuArchName(t *testing.T) {
	tests := []struct {
		goarch   string
		expected string
		ok       bool
	}{
		{"amd64", "x86_64", true},
		{"arm64", "aarch64", true},
		{"386", "i386", true},
		{"invalid", "", false},
	}

	for _, tt := range tests {
		name, ok := QemuArchName(tt.goarch)
		if ok != tt.ok {
			t.Errorf("QemuArchName(%q): expected ok=%v, got %v", tt.goarch, tt.ok, ok)
		}
		if name != tt.expected {
			t.Errorf("QemuArchName(%q): expected %q, got %q", tt.goarch, tt.expected, name)
		}
	}
}

func TestDiskInterfaceString(t *testing.T) {
	tests := []struct {
		iface    DiskInterface
		expected string
	}{
		{DiskInterfaceUnknown, "unknown"},
		{DiskInterfaceNone, "none"},
		{DiskInterfaceIDE, "ide"},
		{DiskInterfaceSCSI, "scsi"},
		{DiskInterface(999), "DiskInterface(999)"},
	}

	for _, tt := range tests {
		s := tt.iface.String()
		if s != tt.expected {
			t.Errorf("DiskInterface(%d).String(): expected %q, got %q", tt.iface, tt.expected, s)
		}
	}
}

func TestParseDiskInterface(t *testing.T) {
	tests := []struct {
		tag      string
		expected DiskInterface
	}{
		{"", DiskInterfaceNone},
		{"none", DiskInterfaceNone},
		{"ide", DiskInterfaceIDE},
		{"isa-ide", DiskInterfaceIDE},
		{"scsi", DiskInterfaceSCSI},
		{"virtio-scsi", DiskInterfaceSCSI},
		{"nvme", DiskInterfaceUnknown},
		{"virtio", DiskInterfaceUnknown},
	}

	for _, tt := range tests {
		got := ParseDiskInterface(tt.tag)
		if got != tt.expected {
			t.Errorf("ParseDiskInterface(%q): expected %s, got %s", tt.tag, tt.expected, got)
		}
	}
}

func TestParseVideoDevice(t *testing.T) {
	tests := []struct {
		tag      string
		expected VideoDevice
	}{
		{"cirrus", VideoCirrus},
		{"isa-cirrus", VideoCirrusISA},
		{"bochs", VideoBochs},
		{"ati", VideoATI},
		{"vmware", VideoVMware},
		{"qxl", VideoQXL},
		{"virtio", VideoVirtio},
		{"virtio-vga", VideoVirtio},
		{"vga", VideoVGA},
		{"isa-vga", VideoVGAISA},
		{"cirrus-vga", VideoCirrus},
		{"matrox", VideoUnrecognized},
		{"", VideoUnrecognized},
	}

	for _, tt := range tests {
		got := ParseVideoDevice(tt.tag)
		if got != tt.expected {
			t.Errorf("ParseVideoDevice(%q): expected %s, got %s", tt.tag, tt.expected, got)
		}
	}
}

func TestOutputBackendString(t *testing.T) {
	tests := []struct {
		tag      string
		expected string
	}{
		{"sdl", "sdl"},
		{"gtk", "gtk"},
		{"curses", "curses"},
		{"spice-app", "other"},
	}

	for _, tt := range tests {
		s := ParseOutputBackend(tt.tag).String()
		if s != tt.expected {
			t.Errorf("ParseOutputBackend(%q).String(): expected %q, got %q", tt.tag, tt.expected, s)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("debian")

	if cfg.VMName != "debian" {
		t.Errorf("expected vmname debian, got %s", cfg.VMName)
	}
	if cfg.GuestOS != "linux" {
		t.Errorf("expected guest_os linux, got %s", cfg.GuestOS)
	}
	if cfg.RAM != AutoRAM {
		t.Errorf("expected ram %q, got %q", AutoRAM, cfg.RAM)
	}
	if cfg.CPUCores != 0 {
		t.Errorf("expected auto cores, got %d", cfg.CPUCores)
	}
	if cfg.Disk != "128G" || cfg.Disk2 != "128G" {
		t.Errorf("expected 128G disks, got %s and %s", cfg.Disk, cfg.Disk2)
	}
	if !cfg.KVM || !cfg.Spice || !cfg.RTC {
		t.Error("expected kvm, spice and rtc enabled")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults",
			modify: func(c *Config) {},
		},
		{
			name:   "ide",
			modify: func(c *Config) { c.DiskInterface = "ide" },
		},
		{
			name: "scsi with controller",
			modify: func(c *Config) {
				c.DiskInterface = "scsi"
				c.SCSIController = "virtio-scsi-pci"
			},
		},
		{
			name:    "scsi without controller",
			modify:  func(c *Config) { c.DiskInterface = "scsi" },
			wantErr: ErrSCSIControllerMissing,
		},
		{
			name:    "unknown interface",
			modify:  func(c *Config) { c.DiskInterface = "nvme" },
			wantErr: ErrUnknownDiskController,
		},
		{
			name: "scsi without controller and no disks",
			modify: func(c *Config) {
				c.DiskInterface = "scsi"
				c.DiskImg = ""
				c.Disk2Img = ""
			},
			wantErr: ErrSCSIControllerMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig("vm")
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestVMNameFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/vms/debian.toml", "debian"},
		{"win10.toml", "win10"},
		{"/vms/archive.tar.toml", "archive.tar"},
		{"/", "vm"},
	}

	for _, tt := range tests {
		got := vmNameFromPath(tt.path)
		if got != tt.expected {
			t.Errorf("vmNameFromPath(%q): expected %q, got %q", tt.path, tt.expected, got)
		}
	}
}

func TestParseErrorMatchesReadError(t *testing.T) {
	if !errors.Is(ErrParseConfigFile, ErrReadConfigFile) {
		t.Error("parse errors should match ErrReadConfigFile")
	}
	if errors.Is(ErrReadConfigFile, ErrParseConfigFile) {
		t.Error("read errors should not match ErrParseConfigFile")
	}
}

package slquickemu

import (
	"fmt"
	"strings"
)

// DiskInterface is the closed set of disk attachment modes.
type DiskInterface int

const (
	DiskInterfaceUnknown DiskInterface = iota
	DiskInterfaceNone                  // "" or "none": virtio block device
	DiskInterfaceIDE                   // any tag containing "ide"
	DiskInterfaceSCSI                  // any tag containing "scsi"
)

// ParseDiskInterface classifies a disk_interface tag.
func ParseDiskInterface(tag string) DiskInterface {
	switch {
	case tag == "" || tag == "none":
		return DiskInterfaceNone
	case strings.Contains(tag, "ide"):
		return DiskInterfaceIDE
	case strings.Contains(tag, "scsi"):
		return DiskInterfaceSCSI
	default:
		return DiskInterfaceUnknown
	}
}

// String returns the string representation of the interface.
func (d DiskInterface) String() string {
	switch d {
	case DiskInterfaceUnknown:
		return "unknown"
	case DiskInterfaceNone:
		return "none"
	case DiskInterfaceIDE:
		return "ide"
	case DiskInterfaceSCSI:
		return "scsi"
	default:
		return fmt.Sprintf("DiskInterface(%d)", d)
	}
}

// VideoDevice is a display adapter family.
type VideoDevice int

const (
	VideoUnrecognized VideoDevice = iota
	VideoCirrus
	VideoCirrusISA
	VideoBochs
	VideoATI
	VideoVMware
	VideoQXL
	VideoVirtio
	VideoVGA
	VideoVGAISA
)

// ParseVideoDevice classifies a display_device tag. Families are matched
// by substring and the first match in a fixed order wins, so "isa-vga"
// and "vga" share a family while "isa" picks the bus variant.
func ParseVideoDevice(tag string) VideoDevice {
	isa := strings.Contains(tag, "isa")
	switch {
	case strings.Contains(tag, "cirrus"):
		if isa {
			return VideoCirrusISA
		}
		return VideoCirrus
	case strings.Contains(tag, "bochs"):
		return VideoBochs
	case strings.Contains(tag, "ati"):
		return VideoATI
	case strings.Contains(tag, "vmware"):
		return VideoVMware
	case strings.Contains(tag, "qxl"):
		return VideoQXL
	case strings.Contains(tag, "virtio"):
		return VideoVirtio
	case strings.Contains(tag, "vga"):
		if isa {
			return VideoVGAISA
		}
		return VideoVGA
	default:
		return VideoUnrecognized
	}
}

// String returns the string representation of the video family.
func (v VideoDevice) String() string {
	switch v {
	case VideoUnrecognized:
		return "unrecognized"
	case VideoCirrus:
		return "cirrus"
	case VideoCirrusISA:
		return "isa-cirrus"
	case VideoBochs:
		return "bochs"
	case VideoATI:
		return "ati"
	case VideoVMware:
		return "vmware"
	case VideoQXL:
		return "qxl"
	case VideoVirtio:
		return "virtio"
	case VideoVGA:
		return "vga"
	case VideoVGAISA:
		return "isa-vga"
	default:
		return fmt.Sprintf("VideoDevice(%d)", v)
	}
}

// OutputBackend is the display backend passed to -display.
type OutputBackend int

const (
	OutputOther OutputBackend = iota
	OutputSDL
	OutputGTK
	OutputCurses
)

// ParseOutputBackend classifies an output tag. Unlisted backends are
// passed through unchanged as OutputOther.
func ParseOutputBackend(tag string) OutputBackend {
	switch tag {
	case "sdl":
		return OutputSDL
	case "gtk":
		return OutputGTK
	case "curses":
		return OutputCurses
	default:
		return OutputOther
	}
}

// String returns the string representation of the backend.
func (o OutputBackend) String() string {
	switch o {
	case OutputOther:
		return "other"
	case OutputSDL:
		return "sdl"
	case OutputGTK:
		return "gtk"
	case OutputCurses:
		return "curses"
	default:
		return fmt.Sprintf("OutputBackend(%d)", o)
	}
}

// AudioBackend is the host audio driver passed to -audiodev.
type AudioBackend int

const (
	AudioBackendOther AudioBackend = iota
	AudioBackendPulse
)

// ParseAudioBackend classifies an audio_output tag.
func ParseAudioBackend(tag string) AudioBackend {
	if tag == "pa" {
		return AudioBackendPulse
	}
	return AudioBackendOther
}

// String returns the string representation of the backend.
func (a AudioBackend) String() string {
	switch a {
	case AudioBackendOther:
		return "other"
	case AudioBackendPulse:
		return "pa"
	default:
		return fmt.Sprintf("AudioBackend(%d)", a)
	}
}

// IsHDA reports whether an audio device tag belongs to the HD audio family,
// which needs a codec device next to the controller.
func IsHDA(audio string) bool {
	return strings.Contains(audio, "hda") || strings.Contains(audio, "intel")
}

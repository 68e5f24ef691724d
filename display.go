package slquickemu

import (
	"strings"
)

// gtkExtras are the options the GTK backend always gets.
const gtkExtras = ",grab-on-hover=on,zoom-to-fit=on"

// fallbackVGA is used for plain and unrecognized display devices.
const fallbackVGA = "VGA,vgamem_mb=128"

// videoDeviceArg returns the -device value for the display adapter.
func videoDeviceArg(dev VideoDevice, virgl bool) string {
	switch dev {
	case VideoCirrus:
		return "cirrus-vga"
	case VideoCirrusISA:
		return "isa-cirrus-vga"
	case VideoBochs:
		return "bochs-display"
	case VideoATI:
		return "ati-vga"
	case VideoVMware:
		return "vmware-svga"
	case VideoQXL:
		return "qxl-vga"
	case VideoVirtio:
		return "virtio-vga,virgl=" + onOff(virgl)
	case VideoVGAISA:
		return "isa-vga"
	default:
		return fallbackVGA
	}
}

// buildVideoFragment builds the display adapter device.
func buildVideoFragment(cfg *Config) string {
	return "-device " + videoDeviceArg(ParseVideoDevice(cfg.DisplayDevice), cfg.Virgl)
}

// glMode returns the gl= value for the output backend.
func glMode(cfg *Config) string {
	switch ParseOutputBackend(cfg.Output) {
	case OutputGTK:
		if cfg.GL {
			return "es"
		}
		return "off"
	case OutputCurses:
		return "off"
	default:
		return onOff(cfg.GL)
	}
}

// outputExtras returns the backend options followed by the user's literal,
// which gets a leading comma unless it already has one.
func outputExtras(cfg *Config) string {
	var extras string
	if ParseOutputBackend(cfg.Output) == OutputGTK {
		extras = gtkExtras
	}

	if user := cfg.OutputExtras; user != "" {
		if !strings.HasPrefix(user, ",") {
			user = "," + user
		}
		extras += user
	}
	return extras
}

// buildDisplayFragment builds the -display backend.
func buildDisplayFragment(cfg *Config) string {
	return "-display " + cfg.Output + ",gl=" + glMode(cfg) + outputExtras(cfg)
}

package slquickemu

import "github.com/samber/lo"

// RawOptions is one partially specified configuration document: the VM
// file, the "defaults" overlay or a guest OS tweak. A nil field is unset
// and inherits from a lower priority layer.
type RawOptions struct {
	VMName   *string `toml:"vmname" yaml:"vmname" json:"vmname"`
	Launcher *string `toml:"launcher" yaml:"launcher" json:"launcher"`
	GuestOS  *string `toml:"guest_os" yaml:"guest_os" json:"guest_os"`

	CPU      *string `toml:"cpu" yaml:"cpu" json:"cpu"`
	KVM      *bool   `toml:"kvm" yaml:"kvm" json:"kvm"`
	RAM      *string `toml:"ram" yaml:"ram" json:"ram"`
	CPUCores *uint8  `toml:"cpu_cores" yaml:"cpu_cores" json:"cpu_cores"`
	Machine  *string `toml:"machine" yaml:"machine" json:"machine"`

	BootMenu *bool   `toml:"boot_menu" yaml:"boot_menu" json:"boot_menu"`
	Boot     *string `toml:"boot" yaml:"boot" json:"boot"`

	ISO            *string `toml:"iso" yaml:"iso" json:"iso"`
	DriverISO      *string `toml:"driver_iso" yaml:"driver_iso" json:"driver_iso"`
	DiskImg        *string `toml:"disk_img" yaml:"disk_img" json:"disk_img"`
	Disk           *string `toml:"disk" yaml:"disk" json:"disk"`
	Disk2Img       *string `toml:"disk2_img" yaml:"disk2_img" json:"disk2_img"`
	Disk2          *string `toml:"disk2" yaml:"disk2" json:"disk2"`
	Floppy         *string `toml:"floppy" yaml:"floppy" json:"floppy"`
	DiskInterface  *string `toml:"disk_interface" yaml:"disk_interface" json:"disk_interface"`
	SCSIController *string `toml:"scsi_controller" yaml:"scsi_controller" json:"scsi_controller"`

	DisplayDevice *string `toml:"display_device" yaml:"display_device" json:"display_device"`
	Virgl         *bool   `toml:"virgl" yaml:"virgl" json:"virgl"`
	GL            *bool   `toml:"gl" yaml:"gl" json:"gl"`
	Output        *string `toml:"output" yaml:"output" json:"output"`
	OutputExtras  *string `toml:"output_extras" yaml:"output_extras" json:"output_extras"`

	Audio       *string `toml:"audio" yaml:"audio" json:"audio"`
	AudioOutput *string `toml:"audio_output" yaml:"audio_output" json:"audio_output"`

	RTC   *bool `toml:"rtc" yaml:"rtc" json:"rtc"`
	Spice *bool `toml:"spice" yaml:"spice" json:"spice"`

	QemuPath    *string `toml:"qemu_path" yaml:"qemu_path" json:"qemu_path"`
	QemuImgPath *string `toml:"qemu_img_path" yaml:"qemu_img_path" json:"qemu_img_path"`
}

// MergeOptions flattens layers into one document. Layers are given lowest
// priority first; for every field the last layer that sets it wins.
func MergeOptions(layers ...RawOptions) RawOptions {
	// pick walks from the top layer down
	top := lo.Reverse(append([]RawOptions(nil), layers...))
	str := func(get func(RawOptions) *string) *string {
		return lo.CoalesceOrEmpty(lo.Map(top, func(o RawOptions, _ int) *string { return get(o) })...)
	}
	flag := func(get func(RawOptions) *bool) *bool {
		return lo.CoalesceOrEmpty(lo.Map(top, func(o RawOptions, _ int) *bool { return get(o) })...)
	}

	return RawOptions{
		VMName:   str(func(o RawOptions) *string { return o.VMName }),
		Launcher: str(func(o RawOptions) *string { return o.Launcher }),
		GuestOS:  str(func(o RawOptions) *string { return o.GuestOS }),

		CPU: str(func(o RawOptions) *string { return o.CPU }),
		KVM: flag(func(o RawOptions) *bool { return o.KVM }),
		RAM: str(func(o RawOptions) *string { return o.RAM }),
		CPUCores: lo.CoalesceOrEmpty(lo.Map(top, func(o RawOptions, _ int) *uint8 {
			return o.CPUCores
		})...),
		Machine: str(func(o RawOptions) *string { return o.Machine }),

		BootMenu: flag(func(o RawOptions) *bool { return o.BootMenu }),
		Boot:     str(func(o RawOptions) *string { return o.Boot }),

		ISO:            str(func(o RawOptions) *string { return o.ISO }),
		DriverISO:      str(func(o RawOptions) *string { return o.DriverISO }),
		DiskImg:        str(func(o RawOptions) *string { return o.DiskImg }),
		Disk:           str(func(o RawOptions) *string { return o.Disk }),
		Disk2Img:       str(func(o RawOptions) *string { return o.Disk2Img }),
		Disk2:          str(func(o RawOptions) *string { return o.Disk2 }),
		Floppy:         str(func(o RawOptions) *string { return o.Floppy }),
		DiskInterface:  str(func(o RawOptions) *string { return o.DiskInterface }),
		SCSIController: str(func(o RawOptions) *string { return o.SCSIController }),

		DisplayDevice: str(func(o RawOptions) *string { return o.DisplayDevice }),
		Virgl:         flag(func(o RawOptions) *bool { return o.Virgl }),
		GL:            flag(func(o RawOptions) *bool { return o.GL }),
		Output:        str(func(o RawOptions) *string { return o.Output }),
		OutputExtras:  str(func(o RawOptions) *string { return o.OutputExtras }),

		Audio:       str(func(o RawOptions) *string { return o.Audio }),
		AudioOutput: str(func(o RawOptions) *string { return o.AudioOutput }),

		RTC:   flag(func(o RawOptions) *bool { return o.RTC }),
		Spice: flag(func(o RawOptions) *bool { return o.Spice }),

		QemuPath:    str(func(o RawOptions) *string { return o.QemuPath }),
		QemuImgPath: str(func(o RawOptions) *string { return o.QemuImgPath }),
	}
}

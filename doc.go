// Package slquickemu resolves layered VM configurations and builds the
// QEMU command line for them.
//
// A VM is described by one TOML file. Optional overlay documents add
// defaults shared by every VM and tweaks for a guest OS family. Values are
// merged field by field with this priority:
//   - the VM file
//   - the tweak keyed by the VM's guest_os (default "linux")
//   - the "defaults" overlay
//   - built-in defaults
//
// # Quick Start
//
//	cfg, err := slquickemu.NewResolver(nil).Resolve("/vms/debian.toml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fragments, err := slquickemu.NewBuilder(cfg).Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(slquickemu.NewInvocation(cfg, fragments, nil))
//
// # Overlay Location
//
// Overlays are read from <os.UserConfigDir()>/slquickemu, usually
// ~/.config/slquickemu. Every file there is a document keyed by guest OS
// tag, decoded by extension (.toml, .yaml, .yml, .json):
//
//	[defaults]
//	ram = "8G"
//
//	[windows]
//	disk_interface = "ide"
//	display_device = "qxl"
//
// A broken overlay is logged and skipped. A broken VM file is an error.
// Symlinked overlay files are followed. The guest_os key is only read from
// the VM file; overlays cannot change which tweak applies.
//
// # Audio
//
// audio = "none", or an empty audio, leaves out both the -audiodev backend
// and the sound card. XDG_RUNTIME_DIR is only needed for the "pa" backend.
//
// # Host Dependent Values
//
// ram = "auto" and cpu_cores = 0 are sized from the host when the command
// line is built, and stay unchanged in the Config. Missing disk images are
// created with qemu-img after their size (e.g. "128G") is checked, and the
// SPICE port is the first port above 5900 that refuses connections.
package slquickemu

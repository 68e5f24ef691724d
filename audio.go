package slquickemu

import (
	"fmt"
	"strings"
)

// audioDisabled reports whether no sound device was requested.
func audioDisabled(cfg *Config) bool {
	return cfg.Audio == "" || cfg.Audio == "none"
}

// buildAudiodevFragment builds the host audio backend. PulseAudio needs
// the server socket under runtimeDir and gets per-VM stream names.
func buildAudiodevFragment(cfg *Config, runtimeDir string) string {
	id := cfg.AudioOutput

	var parts []string
	parts = append(parts, id)
	parts = append(parts, "id="+id)

	if ParseAudioBackend(cfg.AudioOutput) == AudioBackendPulse {
		stream := cfg.Launcher + "-" + cfg.VMName
		parts = append(parts, fmt.Sprintf("server=unix:%s/pulse/native", runtimeDir))
		parts = append(parts, "out.stream-name="+stream)
		parts = append(parts, "in.stream-name="+stream)
	}

	return "-audiodev " + strings.Join(parts, ",")
}

// buildSoundDeviceFragment builds the guest sound card wired to the
// backend. HD audio controllers get a duplex codec carrying the backend.
func buildSoundDeviceFragment(cfg *Config) string {
	if IsHDA(cfg.Audio) {
		return fmt.Sprintf("-device %s -device hda-duplex,mixer=off,audiodev=%s", cfg.Audio, cfg.AudioOutput)
	}
	return fmt.Sprintf("-device %s,audiodev=%s", cfg.Audio, cfg.AudioOutput)
}

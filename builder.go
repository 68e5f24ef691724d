package slquickemu

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Builder builds the ordered QEMU argument fragments for a resolved Config.
// Collaborators left nil get the host implementations at Build time.
type Builder struct {
	config *Config

	// Host sizes "auto" memory and cores.
	Host HostProbe

	// Ports finds a free SPICE port.
	Ports PortProber

	// Images creates missing disk images.
	Images ImageCreator

	// RuntimeDir returns the per-user runtime directory holding the
	// PulseAudio socket.
	RuntimeDir func() (string, error)

	// Stat checks for existing files. Defaults to os.Stat.
	Stat func(string) (os.FileInfo, error)

	Log logrus.FieldLogger

	// StrictImages turns a failed disk image creation into an error.
	StrictImages bool
}

// NewBuilder creates a builder for cfg using the running host.
func NewBuilder(cfg *Config) *Builder {
	if cfg == nil {
		cfg = DefaultConfig("vm")
	}
	return &Builder{config: cfg}
}

func (b *Builder) applyDefaults() {
	log := loggerOr(b.Log)
	if b.Host == nil {
		b.Host = SystemProbe{}
	}
	if b.Ports == nil {
		b.Ports = TCPProber{}
	}
	if b.Images == nil {
		b.Images = &QemuImg{Path: qemuImgBinary(b.config, log), Log: log}
	}
	if b.RuntimeDir == nil {
		b.RuntimeDir = defaultRuntimeDir
	}
	if b.Stat == nil {
		b.Stat = os.Stat
	}
}

// Build returns the argument fragments in launch order. All checks that
// can fail run before any disk image is created, and a failed build
// returns no fragments.
func (b *Builder) Build() ([]string, error) {
	b.applyDefaults()
	cfg := b.config
	log := loggerOr(b.Log).WithField("vm", cfg.VMName)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	drives := b.buildDrives()

	floppy, err := b.buildFloppy()
	if err != nil {
		return nil, err
	}

	cdroms, err := b.buildCDROMs(log)
	if err != nil {
		return nil, err
	}

	audio, err := b.buildAudio()
	if err != nil {
		return nil, err
	}

	if err := b.materializeImages(log); err != nil {
		return nil, err
	}

	if len(cfg.DiskPaths()) == 0 && cfg.ISO == "" && cfg.DriverISO == "" {
		log.Info("no disk images have been set, is this a mistake?")
	}

	fragments := []string{
		buildNameFragment(cfg),
		buildMachineFragment(cfg),
		buildSMPFragment(coresArg(cfg, b.Host, log)),
		buildMemoryFragment(ramArg(cfg, b.Host, log)),
		buildBootFragment(cfg),
		buildVideoFragment(cfg),
		buildDisplayFragment(cfg),
		floppy,
	}
	fragments = append(fragments, drives...)
	fragments = append(fragments, cdroms...)
	fragments = append(fragments, buildRTCFragment(cfg))
	fragments = append(fragments, audio...)
	fragments = append(fragments, b.buildSpice(log))

	return lo.Compact(fragments), nil
}

// buildDrives builds both disk slots.
func (b *Builder) buildDrives() []string {
	cfg := b.config
	paths := [driveSlots]string{cfg.DiskImg, cfg.Disk2Img}

	var frags []string
	for slot, path := range paths {
		frags = append(frags, buildDriveFragment(cfg, path, slot))
	}
	return frags
}

// buildFloppy builds the floppy drive. The image must exist.
func (b *Builder) buildFloppy() (string, error) {
	path := b.config.Floppy
	if path == "" {
		return "", nil
	}
	if _, err := b.Stat(path); err != nil {
		return "", fmt.Errorf("%w: floppy %s", ErrNoSuchFile, path)
	}
	return buildFloppyFragment(path), nil
}

// buildCDROMs builds the install and driver media. Both must exist.
func (b *Builder) buildCDROMs(log logrus.FieldLogger) ([]string, error) {
	cfg := b.config
	paths := [cdromSlots]string{cfg.ISO, cfg.DriverISO}

	var frags []string
	for slot, path := range paths {
		if path == "" {
			continue
		}
		if _, err := b.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: iso %s", ErrNoSuchFile, path)
		}
		logMedia(log, path, slot)
		frags = append(frags, buildCDROMFragment(cfg, path, slot))
	}
	return frags, nil
}

// buildAudio builds the backend and sound card fragments.
func (b *Builder) buildAudio() ([]string, error) {
	cfg := b.config
	if audioDisabled(cfg) {
		return nil, nil
	}

	var runtimeDir string
	if ParseAudioBackend(cfg.AudioOutput) == AudioBackendPulse {
		dir, err := b.RuntimeDir()
		if err != nil {
			if errors.Is(err, ErrMissingXdgRuntime) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrMissingXdgRuntime, err)
		}
		if dir == "" {
			return nil, ErrMissingXdgRuntime
		}
		runtimeDir = dir
	}

	return []string{
		buildAudiodevFragment(cfg, runtimeDir),
		buildSoundDeviceFragment(cfg),
	}, nil
}

// buildSpice probes for a SPICE port. Without a free port the remote
// display is left out.
func (b *Builder) buildSpice(log logrus.FieldLogger) string {
	if !b.config.Spice {
		return ""
	}

	port, err := b.Ports.FreePort(SpiceBasePort)
	if err != nil {
		log.WithError(err).Warn("spice disabled")
		return ""
	}
	log.WithField("port", port).Debug("spice port selected")
	return buildSpiceFragment(port)
}

// materializeImages creates missing disk images. Failures are warnings
// unless StrictImages is set.
func (b *Builder) materializeImages(log logrus.FieldLogger) error {
	cfg := b.config
	images := [driveSlots][2]string{
		{cfg.DiskImg, cfg.Disk},
		{cfg.Disk2Img, cfg.Disk2},
	}

	for slot, img := range images {
		created, err := ensureImage(b.Images, b.Stat, img[0], img[1])
		if err != nil {
			if b.StrictImages {
				return err
			}
			log.WithError(err).WithField("slot", slot).Warn("disk image creation failed")
			continue
		}
		if created {
			log.WithFields(logrus.Fields{"path": img[0], "slot": slot}).Info("disk image created")
		}
	}
	return nil
}

// loggerOr returns log, or the standard logrus logger when log is nil.
func loggerOr(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return logrus.StandardLogger()
	}
	return log
}

package slquickemu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Resolver turns a VM file and the overlay documents into a Config.
type Resolver struct {
	// OverlayDir holds the overlay documents. Defaults to
	// <user config dir>/slquickemu.
	OverlayDir string

	Log logrus.FieldLogger
}

// NewResolver creates a resolver using the default overlay directory.
func NewResolver(log logrus.FieldLogger) *Resolver {
	return &Resolver{Log: log}
}

// Resolve loads the VM file at path and merges it over the guest OS tweak,
// the defaults overlay and the built-in defaults, field by field.
func (r *Resolver) Resolve(path string) (*Config, error) {
	log := loggerOr(r.Log).WithField("path", path)

	vm, err := LoadVMFile(path)
	if err != nil {
		return nil, err
	}

	overlays := r.overlays(log)
	guestOS := DefaultConfig("").GuestOS
	if vm.GuestOS != nil {
		guestOS = *vm.GuestOS
	}

	layers := append(overlays.Layers(guestOS, log), vm)
	cfg := newConfig(MergeOptions(layers...), vmNameFromPath(path))
	// Overlays cannot change which tweak applies.
	cfg.GuestOS = guestOS

	log.WithFields(logrus.Fields{
		"vm":       cfg.VMName,
		"guest_os": cfg.GuestOS,
		"layers":   len(layers),
	}).Debug("resolved VM config")
	return cfg, nil
}

// overlays loads the overlay table. Every failure degrades to no overlays.
func (r *Resolver) overlays(log logrus.FieldLogger) Overlays {
	dir := r.OverlayDir
	if dir == "" {
		var err error
		dir, err = defaultOverlayDir()
		if err != nil {
			log.WithError(err).Warn("overlays disabled")
			return Overlays{}
		}
	}

	overlays, err := LoadOverlays(dir, log)
	if err != nil {
		log.WithError(err).Error("overlays disabled")
		return Overlays{}
	}
	return overlays
}

// LoadVMFile reads a TOML VM file.
func LoadVMFile(path string) (RawOptions, error) {
	var opts RawOptions

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
	case ".yaml", ".yml":
		return opts, fmt.Errorf("%w: %s", ErrYAMLNotSupported, path)
	default:
		return opts, fmt.Errorf("%w: %s", ErrUnknownConfigFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return opts, fmt.Errorf("%w: %w", ErrOpenConfigFile, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return opts, fmt.Errorf("%w: %w", ErrReadConfigFile, err)
	}

	if err := toml.Unmarshal(data, &opts); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return opts, fmt.Errorf("%w: %s:%d:%d: %w", ErrParseConfigFile, path, row, col, err)
		}
		return opts, fmt.Errorf("%w: %s: %w", ErrParseConfigFile, path, err)
	}
	return opts, nil
}

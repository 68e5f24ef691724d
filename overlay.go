package slquickemu

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultsOverlay is the overlay key applied to every VM.
const DefaultsOverlay = "defaults"

// Overlays maps guest OS tags, plus DefaultsOverlay, to partial documents.
type Overlays map[string]RawOptions

// decoders picks the overlay decoder by file extension.
var decoders = map[string]func([]byte, any) error{
	".toml": toml.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".json": jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
}

// LoadOverlays reads every overlay document in dir in lexical order. A
// document that cannot be read or decoded is logged and skipped. When the
// same tag appears in several documents, later documents win per field.
// A missing directory yields no overlays and no error.
func LoadOverlays(dir string, log logrus.FieldLogger) (Overlays, error) {
	log = loggerOr(log).WithField("dir", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("no overlay directory")
			return Overlays{}, nil
		}
		return Overlays{}, fmt.Errorf("reading overlay directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	overlays := Overlays{}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks, which dotfile managers use for overlays.
		info, err := os.Stat(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Error("skipping overlay")
			continue
		}
		if !info.Mode().IsRegular() {
			log.WithField("path", path).Debug("skipping non-regular overlay entry")
			continue
		}

		doc, err := loadOverlay(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Error("skipping overlay")
			continue
		}

		for tag, opts := range doc {
			overlays[tag] = MergeOptions(overlays[tag], opts)
		}
		log.WithField("path", path).Debug("loaded overlay")
	}

	return overlays, nil
}

// loadOverlay decodes one overlay document.
func loadOverlay(path string) (Overlays, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConfigFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := Overlays{}
	if err := decode(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, nil
}

// Layers returns the overlay documents that apply to guestOS, lowest
// priority first.
func (o Overlays) Layers(guestOS string, log logrus.FieldLogger) []RawOptions {
	log = loggerOr(log)

	var layers []RawOptions
	if defaults, ok := o[DefaultsOverlay]; ok {
		layers = append(layers, defaults)
	} else if len(o) > 0 {
		log.Warn("no defaults overlay found")
	}
	if tweak, ok := o[guestOS]; ok && guestOS != DefaultsOverlay {
		layers = append(layers, tweak)
	} else {
		log.WithField("guest_os", guestOS).Debug("no guest OS tweak found")
	}
	return layers
}

package slquickemu

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/sirupsen/logrus"
)

// Invocation is a complete emulator command line: the binary followed by
// the fragments produced by a Builder.
type Invocation struct {
	Binary    string
	Fragments []string
}

// NewInvocation pairs fragments with the emulator binary for cfg.
func NewInvocation(cfg *Config, fragments []string, log logrus.FieldLogger) *Invocation {
	return &Invocation{
		Binary:    qemuBinary(cfg, loggerOr(log)),
		Fragments: fragments,
	}
}

// String joins the binary and fragments with spaces.
func (i *Invocation) String() string {
	return strings.Join(append([]string{i.Binary}, i.Fragments...), " ")
}

// Argv splits the fragments into process arguments, honouring the quotes
// around file paths. The binary is argv[0].
func (i *Invocation) Argv() ([]string, error) {
	argv := []string{i.Binary}
	for _, frag := range i.Fragments {
		words, err := shellwords.Parse(frag)
		if err != nil {
			return nil, fmt.Errorf("tokenizing %q: %w", frag, err)
		}
		argv = append(argv, words...)
	}
	return argv, nil
}

// qemuBinary returns the configured emulator, or a located one when the
// configured path is not executable.
func qemuBinary(cfg *Config, log logrus.FieldLogger) string {
	if isExecutable(cfg.QemuPath) {
		return cfg.QemuPath
	}
	path, err := LocateQemu("", "")
	if err != nil {
		log.WithField("path", cfg.QemuPath).Warn("configured qemu binary is not executable")
		return cfg.QemuPath
	}
	log.WithFields(logrus.Fields{"configured": cfg.QemuPath, "path": path}).Warn("configured qemu binary not found, using located binary")
	return path
}

// qemuImgBinary is qemuBinary for qemu-img.
func qemuImgBinary(cfg *Config, log logrus.FieldLogger) string {
	if isExecutable(cfg.QemuImgPath) {
		return cfg.QemuImgPath
	}
	path, err := LocateQemuImg("")
	if err != nil {
		return cfg.QemuImgPath
	}
	log.WithFields(logrus.Fields{"configured": cfg.QemuImgPath, "path": path}).Debug("using located qemu-img")
	return path
}

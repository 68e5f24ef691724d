package slquickemu

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/KarpelesLab/runutil"
	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"
)

// ImageCreator creates a sparse disk image of a given size.
type ImageCreator interface {
	Create(path, size string) error
}

// QemuImg creates qcow2 images with qemu-img.
type QemuImg struct {
	// Path is the qemu-img binary.
	Path string

	Log logrus.FieldLogger
}

// Create runs "qemu-img create -q -f qcow2 path size".
func (q *QemuImg) Create(path, size string) error {
	log := loggerOr(q.Log).WithField("path", path)
	if n, err := units.RAMInBytes(size); err == nil {
		log = log.WithField("size", units.BytesSize(float64(n)))
	} else {
		log = log.WithField("size", size)
	}
	log.Info("creating disk image")

	out, err := runutil.RunGet(q.Path, "create", "-q", "-f", "qcow2", path, size)
	if err != nil {
		return fmt.Errorf("%w: %s: %w (%s)", ErrImageCreate, path, err, commandOutput(out, err))
	}
	return nil
}

// commandOutput returns what a failed command printed. qemu-img reports
// its errors on stderr, which RunGet does not return.
func commandOutput(stdout []byte, err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return strings.TrimSpace(string(stdout))
}

// ensureImage creates the image at path if it does not exist yet. An empty
// path is a no-op. A malformed size and creation failures are returned to
// the caller, which decides whether they are fatal.
func ensureImage(images ImageCreator, stat func(string) (os.FileInfo, error), path, size string) (created bool, err error) {
	if path == "" {
		return false, nil
	}
	if _, err := stat(path); err == nil {
		return false, nil
	}
	if _, err := units.RAMInBytes(size); err != nil {
		return false, fmt.Errorf("%w: %s: invalid size: %w", ErrImageCreate, path, err)
	}
	if err := images.Create(path, size); err != nil {
		if !errors.Is(err, ErrImageCreate) {
			err = fmt.Errorf("%w: %s: %w", ErrImageCreate, path, err)
		}
		return false, err
	}
	return true, nil
}

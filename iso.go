package slquickemu

import (
	"os"

	"github.com/kdomanski/iso9660"
	"github.com/sirupsen/logrus"
)

// mediaLabel returns the ISO 9660 volume label of the image at path.
func mediaLabel(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, err := iso9660.OpenImage(f)
	if err != nil {
		return "", err
	}
	return img.Label()
}

// logMedia reports what an optical image contains. Images that are not
// ISO 9660 are still attached, so errors only show up at debug level.
func logMedia(log logrus.FieldLogger, path string, slot int) {
	log = log.WithFields(logrus.Fields{"path": path, "slot": slot})

	label, err := mediaLabel(path)
	if err != nil {
		log.WithError(err).Debug("optical image has no ISO 9660 label")
		return
	}
	log.WithField("label", label).Debug("attaching optical image")
}

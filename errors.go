package slquickemu

import "errors"

// Configuration loading errors.
var (
	ErrOpenConfigFile      = errors.New("cannot open VM config file")
	ErrReadConfigFile      = errors.New("cannot read VM config file")
	ErrYAMLNotSupported    = errors.New("YAML VM config files are not supported, use TOML")
	ErrUnknownConfigFormat = errors.New("unrecognized VM config file extension")
	ErrMissingXdgConfig    = errors.New("user config directory not available")
)

// Command synthesis errors.
var (
	ErrNoSuchFile            = errors.New("no such file")
	ErrSCSIControllerMissing = errors.New("scsi disk interface requires scsi_controller")
	ErrUnknownDiskController = errors.New("unknown disk interface")
	ErrMissingXdgRuntime     = errors.New("XDG_RUNTIME_DIR is not set")
	ErrNoOpenPorts           = errors.New("no open ports in spice range")
	ErrImageCreate           = errors.New("disk image creation failed")
)

// ErrParseConfigFile is a decoding failure of the VM file. It also matches
// ErrReadConfigFile since the file contents could not be understood.
var ErrParseConfigFile error = parseError{}

type parseError struct{}

func (parseError) Error() string { return "cannot parse VM config file" }

func (parseError) Is(target error) bool {
	return target == ErrReadConfigFile
}

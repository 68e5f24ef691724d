package slquickemu

import (
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrQemuNotFound is returned when QEMU cannot be located.
var ErrQemuNotFound = errors.New("QEMU binary not found")

// qemuSearchPaths are additional paths to search for QEMU binaries.
var qemuSearchPaths = []string{
	"/snap/bin",
	"/usr/bin",
	"/usr/local/bin",
}

// qemuImgNames are the qemu-img binary names, the snap alias first.
var qemuImgNames = []string{
	"qemu-virgil.qemu-img",
	"qemu-img",
}

// archToQemu maps GOARCH values to QEMU binary suffixes.
var archToQemu = map[string]string{
	"amd64":   "x86_64",
	"386":     "i386",
	"arm64":   "aarch64",
	"arm":     "arm",
	"riscv64": "riscv64",
	"ppc64":   "ppc64",
	"ppc64le": "ppc64",
	"s390x":   "s390x",
}

// LocateQemu finds the QEMU system emulator for the given architecture.
// It searches in the following order:
//  1. customPath, if it is an executable file
//  2. qemu-virgil and qemu-system-<arch> in PATH
//  3. the same names in /snap/bin and common system paths
//
// If arch is empty, it defaults to runtime.GOARCH.
func LocateQemu(arch string, customPath string) (string, error) {
	if arch == "" {
		arch = runtime.GOARCH
	}

	qemuArch, ok := archToQemu[arch]
	if !ok {
		return "", &UnsupportedArchError{Arch: arch}
	}

	return locate(customPath, []string{"qemu-virgil", "qemu-system-" + qemuArch})
}

// LocateQemuImg finds the qemu-img binary the same way LocateQemu does.
func LocateQemuImg(customPath string) (string, error) {
	return locate(customPath, qemuImgNames)
}

func locate(customPath string, names []string) (string, error) {
	if customPath != "" && isExecutable(customPath) {
		return customPath, nil
	}

	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	for _, dir := range qemuSearchPaths {
		for _, name := range names {
			fullPath := filepath.Join(dir, name)
			if isExecutable(fullPath) {
				return fullPath, nil
			}
		}
	}

	return "", ErrQemuNotFound
}

// UnsupportedArchError is returned when the architecture is not supported.
type UnsupportedArchError struct {
	Arch string
}

func (e *UnsupportedArchError) Error() string {
	return "unsupported architecture: " + e.Arch
}

// QemuArchName converts a GOARCH value to the QEMU architecture name.
func QemuArchName(goarch string) (string, bool) {
	name, ok := archToQemu[goarch]
	return name, ok
}

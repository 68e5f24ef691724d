//go:build !unix

package slquickemu

import "os"

// isExecutable reports whether path is a regular file.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

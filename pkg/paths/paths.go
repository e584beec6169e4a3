// Package paths provides path and mode computations for instl.
//
// Everything here is pure string work: parent-directory derivation for
// the -D walk, the staging-path suffix used by the atomic install, and
// octal permission-mode parsing for -m.
package paths

import (
	"io/fs"
	"strconv"
	"strings"

	"github.com/arthur-debert/instl/pkg/errors"
)

// StagingSuffix is appended to the destination path to form the
// staging path the installer writes before the final rename.
const StagingSuffix = ".tmp"

// MaxMode is the largest permission mode -m accepts (all permission
// plus setuid/setgid/sticky bits).
const MaxMode = 0o7777

// Parent returns the directory component of path, without a trailing
// slash. It returns "" when path has no directory component, and "/"
// for direct children of the root.
func Parent(path string) string {
	i := strings.LastIndex(path, "/")
	switch i {
	case -1:
		return ""
	case 0:
		return "/"
	}
	return path[:i]
}

// Staging returns the staging path for a destination.
func Staging(destination string) string {
	return destination + StagingSuffix
}

// ParseMode parses s as an octal permission mode in [0, MaxMode].
// Unlike strtoul, ParseUint rejects trailing garbage outright, so a
// token like "999" fails as a whole rather than parsing a "9" prefix.
func ParseMode(s string) (fs.FileMode, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil || n > MaxMode {
		return 0, errors.Newf(errors.ErrInvalidMode, "invalid mode: %s", s)
	}
	return fs.FileMode(n), nil
}

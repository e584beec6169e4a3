// Package identity resolves owner and group arguments to numeric IDs.
//
// Arguments are tried as integers first (base-10 or prefixed, matching
// conventional install semantics); anything that does not parse is
// looked up in the system user or group database by name.
package identity

import (
	"os"
	"os/user"
	"strconv"

	"github.com/arthur-debert/instl/pkg/errors"
)

// Current returns the real user and group ID of the invoking process.
// Called once while building the install request so the rest of the
// program never reaches for process globals.
func Current() (uid, gid int) {
	return os.Getuid(), os.Getgid()
}

// ResolveUser resolves s to a numeric user ID. Numeric strings are
// taken as-is without touching the user database.
func ResolveUser(s string) (int, error) {
	if id, ok := parseID(s); ok {
		return id, nil
	}

	u, err := user.Lookup(s)
	if err != nil {
		return 0, errors.Newf(errors.ErrInvalidUser, "invalid user: '%s'", s)
	}

	id, err := strconv.Atoi(u.Uid)
	if err != nil {
		// Non-numeric uid from the database, e.g. on Windows.
		return 0, errors.Newf(errors.ErrInvalidUser, "invalid user: '%s'", s)
	}
	return id, nil
}

// ResolveGroup resolves s to a numeric group ID. Numeric strings are
// taken as-is without touching the group database.
func ResolveGroup(s string) (int, error) {
	if id, ok := parseID(s); ok {
		return id, nil
	}

	g, err := user.LookupGroup(s)
	if err != nil {
		return 0, errors.Newf(errors.ErrInvalidGroup, "invalid group: '%s'", s)
	}

	id, err := strconv.Atoi(g.Gid)
	if err != nil {
		return 0, errors.Newf(errors.ErrInvalidGroup, "invalid group: '%s'", s)
	}
	return id, nil
}

// parseID parses s as a non-negative integer, accepting 0x/0o/0b and
// leading-zero octal prefixes.
func parseID(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil || n < 0 {
		return 0, false
	}
	return int(n), true
}

package types

import (
	"io/fs"
)

// DefaultMode is the permission mode applied when no -m flag is given.
const DefaultMode fs.FileMode = 0o755

// Request is the resolved configuration for one install invocation.
// It is built once from command-line input and never mutated.
type Request struct {
	// Source is the file to install, or in symbolic mode the literal
	// target text of the created link.
	Source string

	// Destination is the final path of the installed file or link.
	Destination string

	// Mode is the permission bits applied to the installed file.
	Mode fs.FileMode

	// Owner and Group are numeric IDs, already resolved from any
	// name form given on the command line.
	Owner int
	Group int

	// Parents requests creation of missing ancestor directories of
	// Destination.
	Parents bool

	// Symbolic requests a symlink instead of a byte copy.
	Symbolic bool
}

// NewRequest builds a Request with defaults filled in. The invoking
// process identity is passed explicitly so construction stays free of
// hidden global state.
func NewRequest(source, destination string, uid, gid int) Request {
	return Request{
		Source:      source,
		Destination: destination,
		Mode:        DefaultMode,
		Owner:       uid,
		Group:       gid,
	}
}

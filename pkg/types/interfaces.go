package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for instl operations
type FS interface {
	// Metadata operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	// File operations
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error

	// Directory operations
	Mkdir(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Attribute operations
	Chmod(name string, mode fs.FileMode) error
	Lchown(name string, uid, gid int) error
}

// File is the subset of *os.File the installer needs. Fd is exposed so
// the copy path can ask the kernel for the source's preferred I/O block
// size.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Name() string
	Fd() uintptr
}

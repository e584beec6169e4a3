// Package install performs the single file-install operation: byte copy
// or symlink to a staging path beside the destination, permission and
// ownership application, then an atomic rename onto the destination.
//
// The source type check uses Lstat and accepts regular files and
// symlinks, but the copy itself opens the source path normally and so
// reads through a symlink source. That asymmetry matches conventional
// install behavior and is kept as-is.
//
// A filesystem object already present at the staging path fails the
// install in both modes, and a staging file this run did not create is
// never removed; failure cleanup only covers the staging file created
// by the failing run.
package install

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	instlerrors "github.com/arthur-debert/instl/pkg/errors"
	"github.com/arthur-debert/instl/pkg/logging"
	"github.com/arthur-debert/instl/pkg/paths"
	"github.com/arthur-debert/instl/pkg/types"
)

// parentMode is the nominal mode for created parent directories; the
// process umask decides the effective bits, as with mkdir -p.
const parentMode fs.FileMode = 0o777

// stagingMode is the initial mode of the staging file; the requested
// mode is applied afterwards via Chmod.
const stagingMode fs.FileMode = 0o600

// Installer executes install requests against a filesystem.
type Installer struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates an Installer backed by the given filesystem.
func New(fsys types.FS) *Installer {
	return &Installer{
		fs:     fsys,
		logger: logging.GetLogger("install.installer"),
	}
}

// Install performs one install operation. On any failure after the
// staging file has been created, the staging file is removed before
// the error is returned; on success no staging artifact remains.
func (in *Installer) Install(req types.Request) (err error) {
	staging := paths.Staging(req.Destination)

	in.logger.Debug().
		Str("source", req.Source).
		Str("destination", req.Destination).
		Str("staging", staging).
		Bool("symbolic", req.Symbolic).
		Msg("Starting install")

	if req.Parents {
		if err := MakeParents(in.fs, req.Destination); err != nil {
			return err
		}
	}

	staged := false
	defer func() {
		if err != nil && staged {
			_ = in.fs.Remove(staging)
		}
	}()

	if req.Symbolic {
		if serr := in.fs.Symlink(req.Source, staging); serr != nil {
			return instlerrors.Wrap(serr, instlerrors.ErrSymlinkCreate, "failed to create symlink")
		}
		staged = true
	} else {
		created, cerr := in.copyFile(req.Source, staging)
		staged = created
		if cerr != nil {
			return cerr
		}
	}

	if cerr := in.fs.Chmod(staging, req.Mode); cerr != nil {
		return instlerrors.Wrap(cerr, instlerrors.ErrChmod, "failed to set mode")
	}

	if cerr := in.fs.Lchown(staging, req.Owner, req.Group); cerr != nil {
		return instlerrors.Wrap(cerr, instlerrors.ErrChown, "failed to set owner and group")
	}

	if rerr := in.fs.Rename(staging, req.Destination); rerr != nil {
		return instlerrors.Wrap(rerr, instlerrors.ErrRename, "failed to rename into place")
	}

	in.logger.Debug().
		Str("destination", req.Destination).
		Msg("Install completed")

	return nil
}

// copyFile copies the source's bytes into a fresh staging file. The
// returned bool reports whether the staging file was created, so the
// caller can clean it up when a later step fails.
func (in *Installer) copyFile(source, staging string) (bool, error) {
	info, err := in.fs.Lstat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, instlerrors.Newf(instlerrors.ErrSourceNotFound, "source does not exist: %s", source)
		}
		return false, instlerrors.Wrapf(err, instlerrors.ErrSourceStat, "failed to stat source: %s", source)
	}

	mode := info.Mode()
	switch {
	case mode.IsDir():
		return false, instlerrors.Newf(instlerrors.ErrSourceIsDir, "source is a directory: %s", source)
	case !mode.IsRegular() && mode&fs.ModeSymlink == 0:
		return false, instlerrors.Newf(instlerrors.ErrSourceNotRegular, "source is not a regular file: %s", source)
	}

	src, err := in.fs.Open(source)
	if err != nil {
		return false, instlerrors.Wrapf(err, instlerrors.ErrSourceOpen, "failed to open file: %s", source)
	}
	defer func() { _ = src.Close() }()

	dst, err := in.fs.OpenFile(staging, os.O_RDWR|os.O_CREATE|os.O_EXCL, stagingMode)
	if err != nil {
		return false, instlerrors.Wrapf(err, instlerrors.ErrTmpCreate, "failed to create temporary file: %s", staging)
	}

	bs := blockSize(src)
	in.logger.Debug().
		Str("source", source).
		Int("blockSize", bs).
		Msg("Copying source bytes")

	// An explicit loop, not io.Copy: both ends are real files, and the
	// copy must actually run in blocksize chunks rather than whatever
	// fast path the files negotiate between themselves.
	buf := make([]byte, bs)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				_ = dst.Close()
				return true, instlerrors.Wrap(werr, instlerrors.ErrFileWrite, "write failure")
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			_ = dst.Close()
			return true, instlerrors.Wrap(rerr, instlerrors.ErrFileWrite, "read failure")
		}
	}

	if err := dst.Close(); err != nil {
		return true, instlerrors.Wrap(err, instlerrors.ErrFileWrite, "write failure")
	}

	return true, nil
}

// MakeParents ensures every directory component of destination's parent
// path exists, creating missing levels root-to-leaf. A destination with
// no directory component is a no-op.
func MakeParents(fsys types.FS, destination string) error {
	parent := paths.Parent(destination)
	if parent == "" {
		return nil
	}

	prefix := ""
	rest := parent
	if strings.HasPrefix(parent, "/") {
		prefix = "/"
		rest = strings.TrimPrefix(parent, "/")
	}

	for _, seg := range strings.Split(rest, "/") {
		if seg == "" {
			continue
		}
		if prefix == "" || prefix == "/" {
			prefix += seg
		} else {
			prefix += "/" + seg
		}

		err := fsys.Mkdir(prefix, parentMode)
		if err != nil && !errors.Is(err, fs.ErrExist) {
			return instlerrors.Wrapf(err, instlerrors.ErrDirCreate, "failed to create directories: %s", destination)
		}
	}

	return nil
}

package install

import (
	"golang.org/x/sys/unix"

	"github.com/arthur-debert/instl/pkg/types"
)

// defaultBlockSize is used when the kernel does not report a usable
// preferred I/O size for the source file.
const defaultBlockSize = 32 * 1024

// blockSize returns the source filesystem's preferred I/O block size
// for f, falling back to defaultBlockSize.
func blockSize(f types.File) int {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil || st.Blksize <= 0 {
		return defaultBlockSize
	}
	return int(st.Blksize)
}

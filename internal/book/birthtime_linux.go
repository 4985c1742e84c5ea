//go:build linux

package book

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// birthTime asks statx for the birth time. Filesystems that do not report
// one fall back to the modification time.
func birthTime(path string, info os.FileInfo) (time.Time, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx)
	if err != nil || stx.Mask&unix.STATX_BTIME == 0 {
		return info.ModTime(), nil
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}

//go:build darwin

package book

import (
	"os"
	"syscall"
	"time"
)

func birthTime(_ string, info os.FileInfo) (time.Time, error) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), nil
	}
	return time.Unix(st.Birthtimespec.Unix()), nil
}

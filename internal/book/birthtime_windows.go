//go:build windows

package book

import (
	"os"
	"syscall"
	"time"
)

func birthTime(_ string, info os.FileInfo) (time.Time, error) {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime(), nil
	}
	return time.Unix(0, attrs.CreationTime.Nanoseconds()), nil
}

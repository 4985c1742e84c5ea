//go:build windows

package filelock

import (
	"os"

	"golang.org/x/sys/windows"
)

const lockRegionSize uint32 = 1

func lockExclusive(file *os.File) error {
	var overlapped windows.Overlapped
	return windows.LockFileEx(
		windows.Handle(file.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK,
		0,
		lockRegionSize,
		0,
		&overlapped,
	)
}

func unlock(file *os.File) error {
	var overlapped windows.Overlapped
	return windows.UnlockFileEx(
		windows.Handle(file.Fd()),
		0,
		lockRegionSize,
		0,
		&overlapped,
	)
}

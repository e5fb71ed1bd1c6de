//go:build unix

package config

import (
	"os"
	"syscall"
)

// lockExclusive blocks until an exclusive lock on f is acquired.
func lockExclusive(f *os.File) error {
	return syscall.Flock(int(f.Fd()), syscall.LOCK_EX)
}

// unlockExclusive releases the exclusive lock.
func unlockExclusive(f *os.File) {
	syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
}

//go:build linux

package appbase

import (
	"golang.org/x/sys/unix"
)

// PinToCPU restricts the calling OS thread to a single CPU. The caller
// must hold its goroutine on the thread (runtime.LockOSThread) for the
// restriction to stick.
func PinToCPU(cpu int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpu)
	return unix.SchedSetaffinity(0, &mask)
}

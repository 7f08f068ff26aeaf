//go:build !linux

package appbase

import (
	"errors"
)

// ErrAffinityUnsupported is returned by PinToCPU on platforms without
// sched_setaffinity.
var ErrAffinityUnsupported = errors.New("appbase: cpu affinity is not supported on this platform")

func PinToCPU(cpu int) error {
	return ErrAffinityUnsupported
}

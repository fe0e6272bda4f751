// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

//go:build unix

package device

import (
	"errors"

	"golang.org/x/sys/unix"
)

// EINTR arrives constantly because of goroutine preemption signals.
func isRetryableSyscallError(err error) bool {
	return err != nil && errors.Is(err, unix.EINTR)
}

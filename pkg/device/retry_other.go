// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

//go:build !unix

package device

func isRetryableSyscallError(err error) bool {
	return false
}

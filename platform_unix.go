//go:build unix

package rcsync

import "golang.org/x/sys/unix"

func osRelease() Version {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Version{}
	}
	return ParseVersion(unix.ByteSliceToString(u.Release[:]))
}

//go:build windows

package rcsync

import "golang.org/x/sys/windows"

func osRelease() Version {
	v := windows.RtlGetVersion()
	return Version{Major: int(v.MajorVersion), Minor: int(v.MinorVersion)}
}

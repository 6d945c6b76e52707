//go:build !unix && !windows

package rcsync

func osRelease() Version { return Version{} }

package rcsync

import (
	"runtime"
	"strconv"
	"strings"
)

// Version is an OS kernel release, reduced to major.minor.
type Version struct {
	Major int
	Minor int
}

// ParseVersion reads the leading "major.minor" of a kernel release string
// such as "6.8.0-45-generic" or "23.1.0". Missing or malformed components
// are zero.
func ParseVersion(s string) Version {
	var v Version
	major, rest, _ := strings.Cut(s, ".")
	v.Major = leadingInt(major)
	v.Minor = leadingInt(rest)
	return v
}

func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Platform is the capability set backend selection is decided on.
type Platform struct {
	// OS is a GOOS value.
	OS string
	// Release is the running kernel release. The zero Version means unknown.
	Release Version
}

// CurrentPlatform describes the running process.
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS, Release: osRelease()}
}

// FastLockAvailable reports whether the unfair backend can be used.
//
// It needs a kernel-assisted park/wake primitive underneath the runtime
// semaphore: Darwin 16 (macOS 10.12, iOS 10) for ulock, Linux 2.6 for futex.
// Windows and the BSDs always qualify. Anything else, including wasm and
// plan9, falls back to the portable backend.
func (p Platform) FastLockAvailable() bool {
	switch p.OS {
	case "darwin", "ios":
		return p.Release.AtLeast(16, 0)
	case "linux", "android":
		return p.Release.AtLeast(2, 6)
	case "windows", "freebsd", "netbsd", "openbsd", "dragonfly", "illumos", "solaris":
		return true
	}
	return false
}

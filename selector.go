package rcsync

import (
	"sync"

	"github.com/llxisdsh/rcsync/internal/opt"
)

type flavor uint8

const (
	plainFlavor flavor = iota
	recursiveFlavor
)

var hostPlatform = sync.OnceValue(CurrentPlatform)

var plainBackend = sync.OnceValue(func() string {
	return newMutex(plainFlavor, hostPlatform()).name()
})

// newMutex constructs the most capable backend for the flavor on p.
// The choice depends on nothing but its arguments and the build tags.
func newMutex(f flavor, p Platform) mutex {
	if f == recursiveFlavor {
		// TODO: add an unfair recursive backend (owner + depth over the
		// unfairMutex lock word) and select it where FastLockAvailable.
		return new(recursiveMutex)
	}
	if !opt.ForcePortable_ && p.FastLockAvailable() {
		return new(unfairMutex)
	}
	return new(checkedMutex)
}

// Backend reports which backend plain locks use in this process:
// "unfair" or "errorcheck". Recursive locks always use "recursive".
func Backend() string {
	return plainBackend()
}

//go:build (!(amd64 || 386 || arm || mips || mipsle || wasm) && !rcsync_disable_padding) || rcsync_enable_padding

package opt

import (
	"sync/atomic"
	"unsafe"
)

// PaddedUint64_ is an atomic counter that owns its cache line: it is padded
// on both sides, so neighbouring variables never share the counter's line.
// Padding is enabled for architectures that are NOT:
// - amd64 (x86_64): Hardware optimizations often make padding less critical
// - 32-bit architectures (386, arm, mips, mipsle, wasm): Smaller cache lines/memory constraints
//
// Force it on with -tags=rcsync_enable_padding.
type PaddedUint64_ struct {
	_ [CacheLineSize_]byte
	atomic.Uint64
	_ [(CacheLineSize_ - unsafe.Sizeof(atomic.Uint64{})%CacheLineSize_) % CacheLineSize_]byte
}

// Padded_ reports whether PaddedUint64_ carries cache line padding.
const Padded_ = true

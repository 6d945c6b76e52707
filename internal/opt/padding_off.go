//go:build ((amd64 || 386 || arm || mips || mipsle || wasm) || rcsync_disable_padding) && !rcsync_enable_padding

package opt

import "sync/atomic"

// PaddedUint64_ is a plain atomic counter.
// Padding is disabled on amd64 and 32-bit architectures, or via -tags=rcsync_disable_padding.
type PaddedUint64_ struct {
	atomic.Uint64
}

// Padded_ reports whether PaddedUint64_ carries cache line padding.
const Padded_ = false

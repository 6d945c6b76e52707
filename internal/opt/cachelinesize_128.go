//go:build rcsync_cachelinesize_128

package opt

// CacheLineSize_ is pinned to 128 bytes via the rcsync_cachelinesize_128 build tag.
// Use it on Apple silicon and POWER, where x/sys/cpu may report a smaller line.
const CacheLineSize_ = 128

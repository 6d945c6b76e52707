//go:build rcsync_cachelinesize_64 && !rcsync_cachelinesize_128

package opt

// CacheLineSize_ is pinned to 64 bytes via the rcsync_cachelinesize_64 build tag.
const CacheLineSize_ = 64

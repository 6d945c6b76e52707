//go:build !rcsync_portable

package opt

// ForcePortable_ is false: plain locks use the fast backend where the platform has one.
const ForcePortable_ = false

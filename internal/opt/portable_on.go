//go:build rcsync_portable

package opt

// ForcePortable_ pins every plain lock to the portable backend.
// Use: go build -tags=rcsync_portable
const ForcePortable_ = true

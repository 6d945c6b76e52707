package rcsync

import "github.com/llxisdsh/rcsync/internal/opt"

// identifiers is the process-wide identifier stream. It is never reset.
var identifiers opt.PaddedUint64_

// NextIdentifier returns a 64-bit identifier that no other call in this
// process has returned or will return. Values are issued in increasing
// order starting at 0, one atomic increment per call.
//
// It is safe for any number of concurrent callers and never blocks.
// The counter wraps after 2^64 calls.
func NextIdentifier() uint64 {
	return identifiers.Add(1) - 1
}

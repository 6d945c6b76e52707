package rcsync

import "runtime"

// TriggerBreakpoint stops the calling goroutine's thread in an attached
// debugger. Without a debugger the runtime's default SIGTRAP handling
// terminates the process.
func TriggerBreakpoint() {
	runtime.Breakpoint()
}

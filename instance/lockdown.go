package instance

import "fastcat.org/go/linelen/internal"

// CheckCanCustomize panics if the command tree has already been built.
//
// Use this as a guard in functions that register commands or config keys, so
// a late registration fails loudly instead of silently having no effect.
func CheckCanCustomize() {
	internal.CheckCanCustomize()
}

// CheckLockedDown panics if the command tree has not been built yet.
func CheckLockedDown() {
	internal.CheckLockedDown()
}

// Lockdown freezes registrations. It is safe to call more than once.
func Lockdown() {
	internal.LockCustomizations()
}

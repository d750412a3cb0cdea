package internal

import (
	"errors"
	"sync/atomic"
)

// customizations are config keys and commands registered from init funcs.
// Once the command tree is built, the set is frozen.
var customizationsLocked atomic.Bool

func LockCustomizations() {
	customizationsLocked.Store(true)
}

func CheckCanCustomize() {
	if customizationsLocked.Load() {
		panic(errors.New("cannot register customizations after the command tree is built"))
	}
}

func CheckLockedDown() {
	if !customizationsLocked.Load() {
		panic(errors.New("cannot use customizations before the command tree is built"))
	}
}

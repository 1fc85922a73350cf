// Package keychain provides typed, defaulted access to values kept in a
// secure keystore.
package keychain

import (
	"errors"
	"sync/atomic"
)

// Keystore errors.
var (
	ErrItemNotFound         = errors.New("keychain item not found")
	ErrLocked               = errors.New("keychain is locked")
	ErrInvalidKey           = errors.New("invalid keychain key")
	ErrInvalidAccessibility = errors.New("invalid keychain accessibility")
)

// Accessibility controls when a stored item may be read and whether it may
// leave the device.
type Accessibility string

// Accessibility levels.
const (
	AccessibleWhenUnlocked                   Accessibility = "when_unlocked"
	AccessibleAfterFirstUnlock               Accessibility = "after_first_unlock"
	AccessibleWhenUnlockedThisDeviceOnly     Accessibility = "when_unlocked_this_device_only"
	AccessibleAfterFirstUnlockThisDeviceOnly Accessibility = "after_first_unlock_this_device_only"
)

// Valid reports whether a is a known accessibility level.
func (a Accessibility) Valid() bool {
	switch a {
	case AccessibleWhenUnlocked,
		AccessibleAfterFirstUnlock,
		AccessibleWhenUnlockedThisDeviceOnly,
		AccessibleAfterFirstUnlockThisDeviceOnly:
		return true
	default:
		return false
	}
}

// ThisDeviceOnly reports whether items must never leave the device.
func (a Accessibility) ThisDeviceOnly() bool {
	return a == AccessibleWhenUnlockedThisDeviceOnly || a == AccessibleAfterFirstUnlockThisDeviceOnly
}

// Synchronizable reports whether a sync mechanism may copy the item.
func (a Accessibility) Synchronizable() bool {
	return a.Valid() && !a.ThisDeviceOnly()
}

// CheckRequest validates the key and accessibility of a backend call.
func CheckRequest(key string, access Accessibility) error {
	if key == "" {
		return ErrInvalidKey
	}
	if !access.Valid() {
		return ErrInvalidAccessibility
	}
	return nil
}

// String returns the accessibility name.
func (a Accessibility) String() string {
	return string(a)
}

// Backend is the secure keystore capability consumed by Stored.
// Implementations must be safe for concurrent use.
type Backend interface {
	// Data returns the bytes stored under key, or ErrItemNotFound.
	Data(key string, access Accessibility) ([]byte, error)
	// SetData stores data under key, replacing any previous item.
	SetData(data []byte, key string, access Accessibility) error
}

var standard atomic.Pointer[backendHolder]

type backendHolder struct {
	backend Backend
}

func init() {
	standard.Store(&backendHolder{backend: NewMemoryBackend()})
}

// Standard returns the process-wide backend used by Stored values created
// without WithBackend. It starts as an in-memory keystore.
func Standard() Backend {
	return standard.Load().backend
}

// SetStandard replaces the process-wide backend. Call it during startup,
// before any Stored value reads. A nil backend is ignored.
func SetStandard(b Backend) {
	if b == nil {
		return
	}
	standard.Store(&backendHolder{backend: b})
}

// Package backend selects and builds the persistent slot implementation.
package backend

import "saldo/internal/kv"

// Type identifies a slot backend.
type Type string

const (
	Memory Type = "memory"
	File   Type = "file"
	SQLite Type = "sqlite"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case Memory, File, SQLite:
		return true
	default:
		return false
	}
}

// Config holds everything needed to build a slot.
type Config struct {
	Type Type

	// File backend
	DataDirectory string

	// SQLite backend
	SQLiteDBPath string
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result contains the slot instance and an optional cleanup function.
type Result struct {
	Slot    kv.Slot
	Cleanup CleanupFunc
}

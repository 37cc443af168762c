// Package refstore persists named reference sets: snapshots of benchmark
// results saved to disk so later runs can be compared against them.
package refstore

import (
	"time"

	"github.com/cwbudde/vellobench/internal/simd"
	"github.com/cwbudde/vellobench/internal/timing"
)

// Store defines the interface for reference-set persistence.
//
// Error handling conventions:
//   - Return nil error on success
//   - Return ErrNotFound if a reference set doesn't exist (for Load/Delete)
//   - Wrap underlying errors with context using fmt.Errorf("context: %w", err)
type Store interface {
	// Save atomically writes a reference set under the given name. An
	// existing set with the same (sanitized) name is overwritten.
	Save(name string, results []timing.Result) error

	// Load retrieves a reference set by name.
	// Returns ErrNotFound if no set exists under the name.
	Load(name string) ([]timing.Result, error)

	// List returns metadata for every stored reference set, newest first.
	List() ([]Info, error)

	// Delete removes a reference set.
	// Returns ErrNotFound if no set exists under the name.
	Delete(name string) error
}

// Info is the listing metadata of one stored reference set.
type Info struct {
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"created_at"`
	Count     int                `json:"count"`
	Platform  *simd.PlatformInfo `json:"platform,omitempty"`
}

// ErrNotFound is returned when a requested reference set does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing reference set.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return "reference set not found: " + e.Name
	}
	return "reference set not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

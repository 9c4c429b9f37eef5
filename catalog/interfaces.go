package catalog

import (
	"context"

	"github.com/linku/unime/core"
)

// Repository provides persistent storage for catalog programs.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// AddPrograms adds or replaces programs by their content-based IDs.
	AddPrograms(ctx context.Context, programs ...*core.Program) error

	// GetProgram retrieves a single program by ID.
	// Returns ErrNotFound if the program doesn't exist.
	GetProgram(ctx context.Context, id core.ID) (*core.Program, error)

	// ListPrograms returns the full catalog snapshot.
	// Order is stable across calls on an unchanged store.
	ListPrograms(ctx context.Context) ([]core.Program, error)

	// DeletePrograms removes programs by their IDs.
	// Returns ErrNotFound if any program doesn't exist.
	DeletePrograms(ctx context.Context, ids ...core.ID) error

	// Count returns the number of programs in the store.
	Count(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}

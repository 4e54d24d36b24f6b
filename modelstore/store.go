package modelstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a named model does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for storing immutable model snapshot blobs.
type Store interface {
	// Put writes a blob atomically under the given name, replacing any
	// previous blob of that name.
	Put(ctx context.Context, name string, data []byte) error

	// Get reads the blob with the given name.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Package snapshot persists the hero roster as a single JSON record
package snapshot

import (
	"context"

	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotmock github.com/KirkDiggler/heroquest-tracker/internal/repositories/snapshot Repository

// DefaultKey is the record key used when none is configured
const DefaultKey = "heroquest:state"

// LoadInput contains parameters for loading the roster
type LoadInput struct {
	Key string
}

// LoadOutput contains the loaded roster. A missing record yields an empty
// roster with Found set to false.
type LoadOutput struct {
	State *entities.Roster
	Found bool
}

// SaveInput contains parameters for storing the roster
type SaveInput struct {
	Key   string
	State *entities.Roster
}

// SaveOutput contains the result of storing the roster
type SaveOutput struct {
	Bytes int
}

// Repository defines the storage operations for the roster record
type Repository interface {
	// Load reads the record stored under the key
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save replaces the record stored under the key
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

package dungeons

import (
	"context"

	"github.com/dungeonworks/roomforge/internal/domain/rooms"
)

// Repository defines the interface for dungeon storage
type Repository interface {
	// Create creates a new dungeon
	Create(ctx context.Context, dungeon *rooms.Dungeon) error

	// Get retrieves a dungeon by ID
	Get(ctx context.Context, id string) (*rooms.Dungeon, error)

	// Update updates an existing dungeon
	Update(ctx context.Context, dungeon *rooms.Dungeon) error

	// Delete removes a dungeon
	Delete(ctx context.Context, id string) error

	// ListAll retrieves all stored dungeons
	ListAll(ctx context.Context) ([]*rooms.Dungeon, error)
}

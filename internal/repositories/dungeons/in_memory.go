package dungeons

import (
	"context"
	"sync"

	"github.com/dungeonworks/roomforge/internal/domain/rooms"
	apperrors "github.com/dungeonworks/roomforge/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu       sync.RWMutex
	dungeons map[string]*rooms.Dungeon
}

// NewInMemoryRepository creates a new in-memory dungeon repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		dungeons: make(map[string]*rooms.Dungeon),
	}
}

// Create creates a new dungeon
func (r *inMemoryRepository) Create(ctx context.Context, dungeon *rooms.Dungeon) error {
	if dungeon == nil {
		return apperrors.InvalidArgument("dungeon cannot be nil")
	}
	if dungeon.ID == "" {
		return apperrors.InvalidArgument("dungeon ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dungeons[dungeon.ID]; exists {
		return apperrors.AlreadyExistsf("dungeon with ID %s already exists", dungeon.ID)
	}

	// Clone to avoid external modifications
	r.dungeons[dungeon.ID] = dungeon.Clone()

	return nil
}

// Get retrieves a dungeon by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*rooms.Dungeon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dungeon, exists := r.dungeons[id]
	if !exists {
		return nil, apperrors.NotFoundf("dungeon not found: %s", id)
	}

	// Return a clone to avoid external modifications
	return dungeon.Clone(), nil
}

// Update updates an existing dungeon
func (r *inMemoryRepository) Update(ctx context.Context, dungeon *rooms.Dungeon) error {
	if dungeon == nil {
		return apperrors.InvalidArgument("dungeon cannot be nil")
	}
	if dungeon.ID == "" {
		return apperrors.InvalidArgument("dungeon ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dungeons[dungeon.ID]; !exists {
		return apperrors.NotFoundf("dungeon not found: %s", dungeon.ID)
	}

	r.dungeons[dungeon.ID] = dungeon.Clone()

	return nil
}

// Delete removes a dungeon
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dungeons[id]; !exists {
		return apperrors.NotFoundf("dungeon not found: %s", id)
	}

	delete(r.dungeons, id)
	return nil
}

// ListAll retrieves all stored dungeons
func (r *inMemoryRepository) ListAll(ctx context.Context) ([]*rooms.Dungeon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*rooms.Dungeon, 0, len(r.dungeons))
	for _, dungeon := range r.dungeons {
		all = append(all, dungeon.Clone())
	}

	return all, nil
}

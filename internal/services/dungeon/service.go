package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=mockdungeon -source=service.go

import (
	"context"
	"math/rand"
	"time"

	"github.com/dungeonworks/roomforge/internal/catalog"
	"github.com/dungeonworks/roomforge/internal/domain/rooms"
	apperrors "github.com/dungeonworks/roomforge/internal/errors"
	"github.com/dungeonworks/roomforge/internal/repositories/dungeons"
	"github.com/dungeonworks/roomforge/internal/specdb"
	"github.com/dungeonworks/roomforge/internal/uuid"
)

// Repository is an alias for the dungeon repository interface
type Repository = dungeons.Repository

// Service composes the specification database and room boundaries for a
// layout generator: pick a template by specification, materialize it as a
// placed room with its door batch applied, and toggle doors afterwards.
type Service interface {
	// LoadCatalog scans the catalog and builds a fresh specification database
	LoadCatalog(ctx context.Context) error

	// CreateDungeon creates a new empty dungeon
	CreateDungeon(ctx context.Context, input *CreateDungeonInput) (*rooms.Dungeon, error)

	// GetDungeon retrieves a dungeon by ID
	GetDungeon(ctx context.Context, dungeonID string) (*rooms.Dungeon, error)

	// PlaceRoom picks a template matching the specification and adds a
	// placed room to the dungeon with the given doors already open
	PlaceRoom(ctx context.Context, input *PlaceRoomInput) (*rooms.PlacedRoom, error)

	// OpenDoor punches a door into a placed room's boundary
	OpenDoor(ctx context.Context, input *DoorInput) error

	// CloseDoor seals a door in a placed room's boundary
	CloseDoor(ctx context.Context, input *DoorInput) error

	// MaxFootprint returns the maximum width and length recorded for a theme
	MaxFootprint(ctx context.Context, theme rooms.Theme) (width, length int, err error)
}

// CreateDungeonInput contains data for creating a dungeon
type CreateDungeonInput struct {
	Name string
}

// PlaceRoomInput contains data for placing a room into a dungeon
type PlaceRoomInput struct {
	DungeonID     string
	Spec          rooms.Specification
	Position      rooms.Position
	DoorLocations []rooms.WallLocation
}

// DoorInput identifies one wall segment of one placed room
type DoorInput struct {
	DungeonID string
	RoomID    string
	Location  rooms.WallLocation
}

// service implements the Service interface
type service struct {
	repository    Repository
	scanner       catalog.Scanner
	catalogPath   string
	database      *specdb.Database
	uuidGenerator uuid.Generator
	random        *rand.Rand
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository      // Required
	Scanner       catalog.Scanner // Required
	CatalogPath   string          // Required
	UUIDGenerator uuid.Generator  // Optional
}

// NewService creates a new dungeon service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Scanner == nil {
		panic("scanner is required")
	}
	if cfg.CatalogPath == "" {
		panic("catalog path is required")
	}

	svc := &service{
		repository:  cfg.Repository,
		scanner:     cfg.Scanner,
		catalogPath: cfg.CatalogPath,
		random:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Use provided UUID generator or create default
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// LoadCatalog scans the catalog and builds a fresh specification database.
// The database itself is immutable; reloading swaps in a new instance
// built from a fresh scan.
func (s *service) LoadCatalog(ctx context.Context) error {
	records, err := s.scanner.Scan(ctx, s.catalogPath)
	if err != nil {
		return apperrors.Wrap(err, "failed to scan template catalog")
	}

	db, err := specdb.New(records)
	if err != nil {
		return err
	}

	s.database = db
	return nil
}

// CreateDungeon creates a new empty dungeon
func (s *service) CreateDungeon(ctx context.Context, input *CreateDungeonInput) (*rooms.Dungeon, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	dungeon := &rooms.Dungeon{
		ID:        s.uuidGenerator.New(),
		Name:      input.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.Create(ctx, dungeon); err != nil {
		return nil, apperrors.Wrap(err, "failed to store dungeon")
	}

	return dungeon, nil
}

// GetDungeon retrieves a dungeon by ID
func (s *service) GetDungeon(ctx context.Context, dungeonID string) (*rooms.Dungeon, error) {
	return s.repository.Get(ctx, dungeonID)
}

// PlaceRoom picks a template matching the specification, builds its
// boundary, applies the requested door batch, and appends the room to the
// dungeon. When several template variants share the specification one is
// chosen at random; which variant backs a room carries no meaning for the
// layout.
func (s *service) PlaceRoom(ctx context.Context, input *PlaceRoomInput) (*rooms.PlacedRoom, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	db, err := s.specDatabase()
	if err != nil {
		return nil, err
	}

	exists, err := db.Exists(input.Spec)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.SpecificationNotFoundf("no templates with theme %q footprint %dx%d",
			input.Spec.Theme, input.Spec.Width, input.Spec.Length)
	}

	locators, err := db.LocatorsFor(input.Spec)
	if err != nil {
		return nil, err
	}
	locator := locators[s.random.Intn(len(locators))]

	boundary, err := rooms.NewBoundary(input.Spec.Width, input.Spec.Length)
	if err != nil {
		return nil, err
	}

	// Doors are applied before the room is considered ready
	for _, loc := range input.DoorLocations {
		if err := boundary.AddDoor(loc); err != nil {
			return nil, apperrors.Wrapf(err, "failed to apply door batch to room from %s", locator)
		}
	}

	room := &rooms.PlacedRoom{
		ID:       s.uuidGenerator.New(),
		Locator:  locator,
		Spec:     input.Spec,
		Position: input.Position,
		Boundary: boundary,
	}

	dungeon, err := s.repository.Get(ctx, input.DungeonID)
	if err != nil {
		return nil, err
	}

	dungeon.AddRoom(room)

	if err := s.repository.Update(ctx, dungeon); err != nil {
		return nil, apperrors.Wrap(err, "failed to store placed room")
	}

	return room, nil
}

// OpenDoor punches a door into a placed room's boundary
func (s *service) OpenDoor(ctx context.Context, input *DoorInput) error {
	return s.toggleDoor(ctx, input, func(b *rooms.Boundary, loc rooms.WallLocation) error {
		return b.AddDoor(loc)
	})
}

// CloseDoor seals a door in a placed room's boundary
func (s *service) CloseDoor(ctx context.Context, input *DoorInput) error {
	return s.toggleDoor(ctx, input, func(b *rooms.Boundary, loc rooms.WallLocation) error {
		return b.RemoveDoor(loc)
	})
}

func (s *service) toggleDoor(ctx context.Context, input *DoorInput, mutate func(*rooms.Boundary, rooms.WallLocation) error) error {
	if input == nil {
		return apperrors.InvalidArgument("input cannot be nil")
	}

	dungeon, err := s.repository.Get(ctx, input.DungeonID)
	if err != nil {
		return err
	}

	room, ok := dungeon.Room(input.RoomID)
	if !ok {
		return apperrors.NotFoundf("room %s not found in dungeon %s", input.RoomID, input.DungeonID)
	}

	if err := mutate(room.Boundary, input.Location); err != nil {
		return err
	}

	return s.repository.Update(ctx, dungeon)
}

// MaxFootprint returns the maximum width and length recorded for a theme
func (s *service) MaxFootprint(ctx context.Context, theme rooms.Theme) (int, int, error) {
	db, err := s.specDatabase()
	if err != nil {
		return 0, 0, err
	}

	width, err := db.MaxWidth(theme)
	if err != nil {
		return 0, 0, err
	}
	length, err := db.MaxLength(theme)
	if err != nil {
		return 0, 0, err
	}

	return width, length, nil
}

func (s *service) specDatabase() (*specdb.Database, error) {
	if s.database == nil {
		return nil, apperrors.Internal("catalog not loaded; call LoadCatalog first")
	}
	return s.database, nil
}

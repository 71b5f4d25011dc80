package testutils

import (
	"time"

	"github.com/dungeonworks/roomforge/internal/domain/rooms"
)

// CreateTestRecord creates a template record with the given specs
func CreateTestRecord(theme rooms.Theme, width, length int, locator string) rooms.TemplateRecord {
	return rooms.TemplateRecord{
		Spec: rooms.Specification{
			Theme:  theme,
			Width:  width,
			Length: length,
		},
		Locator: locator,
	}
}

// CreateTestCatalog creates a small catalog spanning two themes
func CreateTestCatalog() []rooms.TemplateRecord {
	return []rooms.TemplateRecord{
		CreateTestRecord(rooms.ThemeCrypt, 4, 4, "templates/crypt_small"),
		CreateTestRecord(rooms.ThemeCrypt, 6, 4, "templates/crypt_wide"),
		CreateTestRecord(rooms.ThemeHall, 4, 4, "templates/hall_square"),
	}
}

// CreateTestDungeon creates a dungeon with one placed room and no doors
func CreateTestDungeon(id string) *rooms.Dungeon {
	boundary, err := rooms.NewBoundary(4, 3)
	if err != nil {
		panic(err)
	}

	return &rooms.Dungeon{
		ID:        id,
		Name:      "test dungeon",
		CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		Rooms: []*rooms.PlacedRoom{
			{
				ID:       "room-1",
				Locator:  "templates/crypt_small",
				Spec:     rooms.Specification{Theme: rooms.ThemeCrypt, Width: 4, Length: 3},
				Position: rooms.Position{X: 0, Y: 0},
				Boundary: boundary,
			},
		},
	}
}

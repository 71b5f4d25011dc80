package rooms

import (
	apperrors "github.com/dungeonworks/roomforge/internal/errors"
)

// WallLocation identifies a single segment on one wall of a room.
// A location is only meaningful relative to a specific boundary's footprint.
type WallLocation struct {
	Direction    Direction `json:"direction"`
	SegmentIndex int       `json:"segment_index"`
}

// Boundary is the perimeter of a room: four segmented walls sized by the
// room's footprint. North and south walls have Width segments, east and
// west walls have Length segments. A boundary exclusively owns its walls.
type Boundary struct {
	Width  int                          `json:"width"`
	Length int                          `json:"length"`
	Walls  map[Direction]*SegmentedWall `json:"walls"`
}

// NewBoundary creates a boundary for the given footprint with every
// segment solid. Templates start without doors; doors are punched in
// afterwards to connect the room to its neighbors.
func NewBoundary(width, length int) (*Boundary, error) {
	if width <= 0 {
		return nil, apperrors.InvalidArgumentf("width must be positive, got %d", width)
	}
	if length <= 0 {
		return nil, apperrors.InvalidArgumentf("length must be positive, got %d", length)
	}

	return &Boundary{
		Width:  width,
		Length: length,
		Walls: map[Direction]*SegmentedWall{
			DirectionNorth: NewSegmentedWall(width),
			DirectionSouth: NewSegmentedWall(width),
			DirectionEast:  NewSegmentedWall(length),
			DirectionWest:  NewSegmentedWall(length),
		},
	}, nil
}

// IsValidLocation returns true if the location exists on this boundary.
// It never errors; this is the gatekeeper query callers use to validate
// input before mutating.
func (b *Boundary) IsValidLocation(loc WallLocation) bool {
	wall, ok := b.Walls[loc.Direction]
	if !ok {
		return false
	}
	return wall.IsValidIndex(loc.SegmentIndex)
}

// HasDoorAt returns true if the segment at the given location is a door
func (b *Boundary) HasDoorAt(loc WallLocation) (bool, error) {
	if !b.IsValidLocation(loc) {
		return false, apperrors.InvalidLocationf("no %s wall segment at index %d", loc.Direction, loc.SegmentIndex)
	}

	state, err := b.Walls[loc.Direction].StateAt(loc.SegmentIndex)
	if err != nil {
		return false, err
	}
	return state == SegmentDoor, nil
}

// AddDoor turns the segment at the given location into a door.
// Adding a door where one already exists is an error, not a no-op: a
// generator placing the same door twice has an inconsistent model of
// the layout it is building.
func (b *Boundary) AddDoor(loc WallLocation) error {
	hasDoor, err := b.HasDoorAt(loc)
	if err != nil {
		return err
	}
	if hasDoor {
		return apperrors.DoorAlreadyPresentf("door already present at %s wall index %d", loc.Direction, loc.SegmentIndex)
	}

	return b.Walls[loc.Direction].SetStateAt(loc.SegmentIndex, SegmentDoor)
}

// RemoveDoor turns the door segment at the given location back into a
// solid wall. Removing from a solid segment is an error, mirroring AddDoor.
func (b *Boundary) RemoveDoor(loc WallLocation) error {
	hasDoor, err := b.HasDoorAt(loc)
	if err != nil {
		return err
	}
	if !hasDoor {
		return apperrors.NoDoorPresentf("no door present at %s wall index %d", loc.Direction, loc.SegmentIndex)
	}

	return b.Walls[loc.Direction].SetStateAt(loc.SegmentIndex, SegmentSolid)
}

// DoorLocations returns every location on the boundary that currently
// holds a door, walls in a fixed order, segments in index order.
func (b *Boundary) DoorLocations() []WallLocation {
	var doors []WallLocation
	for _, direction := range Directions() {
		wall := b.Walls[direction]
		for i, state := range wall.Segments {
			if state == SegmentDoor {
				doors = append(doors, WallLocation{Direction: direction, SegmentIndex: i})
			}
		}
	}
	return doors
}

// Clone returns a copy of the boundary that shares no state with the original
func (b *Boundary) Clone() *Boundary {
	walls := make(map[Direction]*SegmentedWall, len(b.Walls))
	for direction, wall := range b.Walls {
		walls[direction] = wall.Clone()
	}
	return &Boundary{
		Width:  b.Width,
		Length: b.Length,
		Walls:  walls,
	}
}

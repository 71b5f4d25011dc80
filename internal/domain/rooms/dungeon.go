package rooms

import (
	"time"
)

// Position is where a placed room sits in the scene, in world units.
// The core does not interpret it; it is carried through to whatever
// materializes the room.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// PlacedRoom is a room instance built from a chosen template: the locator
// it came from, where it sits, and its boundary with the door set already
// applied
type PlacedRoom struct {
	ID       string        `json:"id"`
	Locator  string        `json:"locator"`
	Spec     Specification `json:"spec"`
	Position Position      `json:"position"`
	Boundary *Boundary     `json:"boundary"`
}

// Dungeon is an assembled collection of placed rooms
type Dungeon struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Rooms     []*PlacedRoom `json:"rooms"`
	CreatedAt time.Time     `json:"created_at"`
}

// AddRoom appends a placed room to the dungeon
func (d *Dungeon) AddRoom(room *PlacedRoom) {
	d.Rooms = append(d.Rooms, room)
}

// Room returns the placed room with the given ID
func (d *Dungeon) Room(roomID string) (*PlacedRoom, bool) {
	for _, room := range d.Rooms {
		if room.ID == roomID {
			return room, true
		}
	}
	return nil, false
}

// Clone returns a copy of the dungeon that shares no state with the original
func (d *Dungeon) Clone() *Dungeon {
	clone := *d
	clone.Rooms = make([]*PlacedRoom, len(d.Rooms))
	for i, room := range d.Rooms {
		roomCopy := *room
		if room.Boundary != nil {
			roomCopy.Boundary = room.Boundary.Clone()
		}
		clone.Rooms[i] = &roomCopy
	}
	return &clone
}

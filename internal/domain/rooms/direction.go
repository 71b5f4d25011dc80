package rooms

// Direction identifies one of the four named sides of a room
type Direction string

const (
	DirectionNorth Direction = "north"
	DirectionSouth Direction = "south"
	DirectionEast  Direction = "east"
	DirectionWest  Direction = "west"
)

// Directions lists every wall direction of a room
func Directions() []Direction {
	return []Direction{DirectionNorth, DirectionSouth, DirectionEast, DirectionWest}
}

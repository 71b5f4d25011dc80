package rooms

import (
	apperrors "github.com/dungeonworks/roomforge/internal/errors"
)

// SegmentState represents what currently fills one wall segment
type SegmentState string

const (
	SegmentSolid SegmentState = "solid"
	SegmentDoor  SegmentState = "door"
)

// SegmentedWall is an ordered run of wall segments for one side of a room.
// The segment count is fixed at construction; index i addresses the i-th
// segment counting from 0.
type SegmentedWall struct {
	Segments []SegmentState `json:"segments"`
}

// NewSegmentedWall creates a wall with the given number of segments, all solid
func NewSegmentedWall(segmentCount int) *SegmentedWall {
	segments := make([]SegmentState, segmentCount)
	for i := range segments {
		segments[i] = SegmentSolid
	}
	return &SegmentedWall{Segments: segments}
}

// Len returns the number of segments in the wall
func (w *SegmentedWall) Len() int {
	return len(w.Segments)
}

// IsValidIndex returns true if there is a segment at the given index
func (w *SegmentedWall) IsValidIndex(segmentIndex int) bool {
	return segmentIndex >= 0 && segmentIndex < len(w.Segments)
}

// StateAt returns the state of the segment at the given index
func (w *SegmentedWall) StateAt(segmentIndex int) (SegmentState, error) {
	if !w.IsValidIndex(segmentIndex) {
		return "", apperrors.OutOfRangef("segment index %d outside [0, %d)", segmentIndex, len(w.Segments))
	}
	return w.Segments[segmentIndex], nil
}

// SetStateAt replaces the state of the segment at the given index.
// No door semantics are enforced here; legality lives on the boundary.
func (w *SegmentedWall) SetStateAt(segmentIndex int, state SegmentState) error {
	if !w.IsValidIndex(segmentIndex) {
		return apperrors.OutOfRangef("segment index %d outside [0, %d)", segmentIndex, len(w.Segments))
	}
	w.Segments[segmentIndex] = state
	return nil
}

// Clone returns a copy of the wall that shares no state with the original
func (w *SegmentedWall) Clone() *SegmentedWall {
	segments := make([]SegmentState, len(w.Segments))
	copy(segments, w.Segments)
	return &SegmentedWall{Segments: segments}
}

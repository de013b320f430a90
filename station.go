package interlinked

import (
	"fmt"
	"sort"
)

// StationKind classifies a station.
type StationKind uint8

const (
	// StationStop is an ordinary stop.
	StationStop StationKind = iota
	// StationInterchange is a transfer point between lines.
	StationInterchange
	// StationTerminus is an end-of-line station.
	StationTerminus
)

// String returns the display name of the kind.
func (k StationKind) String() string {
	switch k {
	case StationStop:
		return "stop"
	case StationInterchange:
		return "interchange"
	case StationTerminus:
		return "terminus"
	default:
		return fmt.Sprintf("StationKind(%d)", uint8(k))
	}
}

// Station is a placed point of interest on the map: identity, mutable
// display name, kind, fixed position, and line memberships. Stations are
// created and destroyed only by the Registry; the selected flag is a local
// mirror of registry-level selection and has no other writer.
type Station struct {
	id   int
	name string
	kind StationKind
	pos  Vec2

	lines    map[int]struct{}
	selected bool
}

// newStation constructs a station with the default name "Station {id}".
func newStation(id int, pos Vec2, kind StationKind) *Station {
	return &Station{
		id:    id,
		name:  fmt.Sprintf("Station %d", id),
		kind:  kind,
		pos:   pos,
		lines: make(map[int]struct{}),
	}
}

// ID returns the station's unique identifier. IDs are assigned
// monotonically and never reused within a session.
func (st *Station) ID() int {
	return st.id
}

// Name returns the station's display name.
func (st *Station) Name() string {
	return st.name
}

// SetName sets the display name. An empty name resets to the default
// "Station {id}".
func (st *Station) SetName(name string) {
	if name == "" {
		name = fmt.Sprintf("Station %d", st.id)
	}
	st.name = name
}

// Kind returns the station's kind.
func (st *Station) Kind() StationKind {
	return st.kind
}

// SetKind changes the station's kind.
func (st *Station) SetKind(kind StationKind) {
	st.kind = kind
}

// Position returns the station's world position, fixed at creation.
func (st *Station) Position() Vec2 {
	return st.pos
}

// Selected reports whether this station is the registry's current
// selection.
func (st *Station) Selected() bool {
	return st.selected
}

// AddLine records membership in the given line. Adding a line the station
// already belongs to is a no-op.
func (st *Station) AddLine(lineID int) {
	st.lines[lineID] = struct{}{}
}

// RemoveLine removes membership in the given line. Removing a line the
// station does not belong to is a no-op.
func (st *Station) RemoveLine(lineID int) {
	delete(st.lines, lineID)
}

// HasLine reports whether the station belongs to the given line.
func (st *Station) HasLine(lineID int) bool {
	_, ok := st.lines[lineID]
	return ok
}

// LineCount returns the number of lines the station belongs to.
func (st *Station) LineCount() int {
	return len(st.lines)
}

// Lines returns the station's line IDs in ascending order.
func (st *Station) Lines() []int {
	out := make([]int, 0, len(st.lines))
	for id := range st.lines {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Package measure implements the area-measurement session: an ordered,
// mutable list of picked 3D points with a single-slot redo, a closed/open
// flag, and the controller that turns pointer gestures and panel commands
// into state transitions.
package measure

import (
	"github.com/philipparndt/goarea/pkg/geometry"
)

// Mode is the lifecycle state of a measurement session
type Mode int

const (
	// Inactive means the tool is off; no gestures are processed
	Inactive Mode = iota
	// Active is normal point collection
	Active
	// AwaitingRedo means one point index is pending replacement by the next click
	AwaitingRedo
)

func (m Mode) String() string {
	switch m {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case AwaitingRedo:
		return "awaiting-redo"
	}
	return "unknown"
}

// Session owns the measurement state. It is the sole mutator of the point
// list; every command that does not apply in the current state is a no-op.
// All methods report whether observable state changed, which is what decides
// whether the controller publishes a fresh snapshot.
//
// Not safe for concurrent use: all transitions happen on the UI thread.
type Session struct {
	points   []geometry.Vector3
	closed   bool
	redoSlot *int
	mode     Mode
}

// NewSession creates a session in the Inactive state
func NewSession() *Session {
	return &Session{mode: Inactive}
}

// Mode returns the current lifecycle state
func (s *Session) Mode() Mode {
	return s.mode
}

// Closed reports whether the polygon has been closed
func (s *Session) Closed() bool {
	return s.closed
}

// PointCount returns the number of placed points
func (s *Session) PointCount() int {
	return len(s.points)
}

// Activate transitions Inactive to Active and resets all measurement state
func (s *Session) Activate() bool {
	if s.mode != Inactive {
		return false
	}
	s.points = nil
	s.closed = false
	s.redoSlot = nil
	s.mode = Active
	return true
}

// Deactivate stops point collection. Points survive deactivation (clearing
// is a separate explicit command); a pending redo slot does not.
func (s *Session) Deactivate() bool {
	if s.mode == Inactive {
		return false
	}
	s.redoSlot = nil
	s.mode = Inactive
	return true
}

// RequestRedo marks the point at index for replacement by the next accepted
// click. Out-of-range indices and any mode other than Active are no-ops.
func (s *Session) RequestRedo(index int) bool {
	if s.mode != Active || index < 0 || index >= len(s.points) {
		return false
	}
	slot := index
	s.redoSlot = &slot
	s.mode = AwaitingRedo
	return true
}

// ResolveClick applies an accepted placement click. While a redo is pending
// it replaces the marked point in place; otherwise it appends, unless the
// polygon is already closed (frozen except via redo or clear).
func (s *Session) ResolveClick(point geometry.Vector3) bool {
	switch s.mode {
	case AwaitingRedo:
		s.points[*s.redoSlot] = point
		s.redoSlot = nil
		s.mode = Active
		return true
	case Active:
		if s.closed {
			return false
		}
		s.points = append(s.points, point)
		return true
	}
	return false
}

// ClosePolygon freezes the point sequence into a polygon. Requires at least
// 3 points; closing an already-closed polygon is a no-op.
func (s *Session) ClosePolygon() bool {
	if s.mode == Inactive || s.closed || len(s.points) < 3 {
		return false
	}
	s.closed = true
	return true
}

// Clear resets points, the closed flag, and any pending redo. It does not
// change whether the session is active.
func (s *Session) Clear() bool {
	if len(s.points) == 0 && !s.closed && s.redoSlot == nil {
		return false
	}
	s.points = nil
	s.closed = false
	s.redoSlot = nil
	if s.mode == AwaitingRedo {
		s.mode = Active
	}
	return true
}

// Snapshot derives a fresh immutable value from the current state
func (s *Session) Snapshot() Snapshot {
	points := make([]geometry.Vector3, len(s.points))
	copy(points, s.points)

	snap := Snapshot{
		Points: points,
		Edges:  geometry.BuildEdges(points, s.closed),
		Closed: s.closed,
	}

	if area, ok := geometry.PolygonArea(points, s.closed); ok {
		snap.Area = &area
	}
	if s.mode == AwaitingRedo && s.redoSlot != nil {
		index := *s.redoSlot
		snap.RedoIndex = &index
	}

	return snap
}

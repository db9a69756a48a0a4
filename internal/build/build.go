// Package build implements the build-mode placement engine (ghost
// tracking, grid snapping, collision) and the destruction mode.
package build

import (
	"bot-atelier/internal/grid"
	"bot-atelier/internal/object"
	"bot-atelier/internal/room"
)

// Mode is one build-mode session: a selected placeable plus the ghost
// rectangle previewing where it would land. The ghost exists only while a
// selection is active and is recomputed every frame from the cursor.
type Mode struct {
	selected *object.Placeable
	ghost    grid.Rect
	excluded map[int]bool // room numbers where placement is never allowed
}

// New creates a build mode that refuses placement in the listed rooms
// regardless of collision.
func New(excludedRooms ...int) *Mode {
	m := &Mode{excluded: make(map[int]bool)}
	for _, n := range excludedRooms {
		m.excluded[n] = true
	}
	return m
}

// Select begins a session for p. The ghost starts at p's current rect.
func (m *Mode) Select(p *object.Placeable) {
	m.selected = p
	m.ghost = p.Rect()
}

// Clear ends the session and discards the ghost.
func (m *Mode) Clear() {
	m.selected = nil
	m.ghost = grid.Rect{}
}

// Selected returns the placeable bound to the session, or nil.
func (m *Mode) Selected() *object.Placeable { return m.selected }

// Ghost returns the current preview rectangle.
func (m *Mode) Ghost() grid.Rect { return m.ghost }

// Active reports whether a selection is bound.
func (m *Mode) Active() bool { return m.selected != nil }

// CanBuildIn reports whether room n allows building at all, before any
// collision consideration.
func (m *Mode) CanBuildIn(n int) bool { return !m.excluded[n] }

// mustSelection enforces the precondition shared by UpdateGhost, CanPlace
// and Commit: the UI only enters build mode with a selection, so a missing
// one is a wiring bug and fails loudly.
func (m *Mode) mustSelection() {
	if m.selected == nil {
		panic("build: no placeable selected")
	}
}

// UpdateGhost recomputes the ghost rect from the cursor position: the
// cursor is snapped to the grid and becomes the ghost's top-left; a
// y-constraint then overrides the bottom edge so the object rests on its
// line regardless of cursor height. Must run every frame in build mode,
// before collision testing or rendering.
func (m *Mode) UpdateGhost(cursor grid.Point) {
	m.mustSelection()
	m.ghost.SetTopLeft(grid.Snap(cursor))
	if yc := m.selected.YConstraint; yc != 0 {
		m.ghost.SetBottom(yc)
	}
}

// CanPlace reports whether the ghost can be committed into r: false when
// the room is excluded from building or the ghost overlaps any placed
// object's rect. The scan is O(placed), fine at this object count.
func (m *Mode) CanPlace(r *room.Room) bool {
	m.mustSelection()
	if m.excluded[r.Num] {
		return false
	}
	for _, p := range r.Placed {
		if m.ghost.Intersects(p.Rect()) {
			return false
		}
	}
	return true
}

// Commit stamps the ghost's snapped coordinates into the target room's
// space, marks the object placed, and returns it. The caller inserts it
// into the room store and ends the session.
func (m *Mode) Commit(roomNum int) *object.Placeable {
	m.mustSelection()
	p := m.selected
	p.Move(roomNum, m.ghost.TopLeft())
	p.Placed = true
	return p
}

// Destruction is the removal mode. It is purely a UI flag plus a
// blacklist-respecting remove.
type Destruction struct {
	active bool
}

// Toggle flips the mode flag.
func (d *Destruction) Toggle() { d.active = !d.active }

// Active reports whether destruction mode is on.
func (d *Destruction) Active() bool { return d.active }

// Remove takes p out of r unless it is blacklisted. The blacklisted case
// is a deliberate silent no-op, not an error: fixtures are clickable but
// indestructible. The caller recomputes beauty afterward.
func (d *Destruction) Remove(p *object.Placeable, r *room.Room) bool {
	if r.Blacklisted(p) {
		return false
	}
	before := len(r.Placed)
	_ = r.Remove(p)
	return len(r.Placed) < before
}

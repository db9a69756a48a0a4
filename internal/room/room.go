// Package room owns the per-floor set of placed objects, the blacklist of
// permanent fixtures, and beauty aggregation.
package room

import (
	"errors"

	"bot-atelier/internal/grid"
	"bot-atelier/internal/object"
)

// ErrBlacklisted signals an attempt to remove a permanent fixture.
var ErrBlacklisted = errors.New("placeable is blacklisted")

// Room is one floor of the tower. Rooms are created once at game start
// and never destroyed; Placed mutates throughout a session. Insertion
// order is draw order.
type Room struct {
	Num  int
	Name string

	// BG selects the background theme drawn behind placed objects.
	BG string

	Placed []*object.Placeable

	// blacklist marks placed objects exempt from destruction and
	// movement. Every blacklisted ID is also in Placed.
	blacklist map[uint64]bool
}

// New creates an empty room.
func New(num int, name, bg string) *Room {
	return &Room{Num: num, Name: name, BG: bg, blacklist: make(map[uint64]bool)}
}

// Add appends p to the room's placed collection and marks it placed.
func (r *Room) Add(p *object.Placeable) {
	p.Placed = true
	p.Room = r.Num
	r.Placed = append(r.Placed, p)
}

// AddFixture adds p and immediately blacklists it. Used by the static
// room configuration for doors, desks, and other permanent furniture.
func (r *Room) AddFixture(p *object.Placeable) {
	r.Add(p)
	r.Blacklist(p)
}

// Blacklist marks an already-placed object permanent. Blacklisting an
// object that is not in the room is a wiring bug.
func (r *Room) Blacklist(p *object.Placeable) {
	if !r.contains(p) {
		panic("room: blacklisting an object that is not placed here")
	}
	r.blacklist[p.ID] = true
}

// Blacklisted reports whether p is a permanent fixture of this room.
func (r *Room) Blacklisted(p *object.Placeable) bool {
	return r.blacklist[p.ID]
}

// Remove takes p out of the room and clears its placed flag. Removing a
// blacklisted object returns ErrBlacklisted and changes nothing.
// Removing an object that is not present is a no-op.
func (r *Room) Remove(p *object.Placeable) error {
	if r.blacklist[p.ID] {
		return ErrBlacklisted
	}
	for i, q := range r.Placed {
		if q.ID == p.ID {
			r.Placed = append(r.Placed[:i], r.Placed[i+1:]...)
			p.Placed = false
			return nil
		}
	}
	return nil
}

// Evict removes p regardless of the blacklist. This is the system-side
// removal used when a fixture retires (the player never reaches it);
// player-driven removal goes through Remove.
func (r *Room) Evict(p *object.Placeable) {
	delete(r.blacklist, p.ID)
	for i, q := range r.Placed {
		if q.ID == p.ID {
			r.Placed = append(r.Placed[:i], r.Placed[i+1:]...)
			p.Placed = false
			return
		}
	}
}

// PlaceableAt returns the topmost placed object whose rect contains pt,
// or nil. Topmost means last in draw order.
func (r *Room) PlaceableAt(pt grid.Point) *object.Placeable {
	for i := len(r.Placed) - 1; i >= 0; i-- {
		if r.Placed[i].Rect().Contains(pt) {
			return r.Placed[i]
		}
	}
	return nil
}

// HasName reports whether a placed object with the given name exists.
func (r *Room) HasName(name string) bool {
	for _, p := range r.Placed {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Beauty sums the beauty of decoration-tagged placed objects.
func (r *Room) Beauty() float64 {
	total := 0.0
	for _, p := range r.Placed {
		if p.Tag == object.TagDecoration {
			total += p.Beauty
		}
	}
	return total
}

// AdvanceSprites steps every placed object's animation one frame.
func (r *Room) AdvanceSprites() {
	for _, p := range r.Placed {
		p.Sprite.Advance()
	}
}

func (r *Room) contains(p *object.Placeable) bool {
	for _, q := range r.Placed {
		if q.ID == p.ID {
			return true
		}
	}
	return false
}

// TotalBeauty sums beauty across all rooms. It is recomputed on demand
// after every mutation that could change it rather than maintained
// incrementally.
func TotalBeauty(rooms []*Room) float64 {
	total := 0.0
	for _, r := range rooms {
		total += r.Beauty()
	}
	return total
}

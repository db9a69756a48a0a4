// Package object defines Placeable, the entity type for everything that
// occupies a grid-aligned rectangle in a room: decorations bought by the
// player as well as permanent fixtures like doors and the lobby desk.
package object

import "bot-atelier/internal/grid"

// Kind tags the behavioral variant of a placeable. Interaction and sprite
// behavior dispatch on Kind through tables in the game package instead of
// switching on concrete types.
type Kind uint8

const (
	KindProp Kind = iota // plain decoration, no special behavior
	KindDoorUp
	KindDoorDown
	KindShopCounter
	KindInventoryKiosk
	KindAutoCashier
	KindSpectatorWindow
	KindColorTerminal
	KindDesk
	KindCanvas
	KindBotGate
)

// Category tags used for beauty aggregation and UI grouping.
const (
	TagDecoration = "decoration"
	TagFixture    = "fixture"
	TagShop       = "shop"
)

// Flags hold the per-instance booleans the renderer and interaction
// handler consult.
type Flags struct {
	Static        bool // sprite never animates; outline may be cached
	NoOutline     bool // never draw a hover outline
	NoInteraction bool // clicking it does nothing, not even an info popup
	Temporary     bool // removed automatically after its timer fires
}

// nextID backs the monotonically increasing object identity counter. The
// game is single-threaded, so a plain counter suffices.
var nextID uint64

// NextID mints a fresh unique object ID.
func NextID() uint64 {
	nextID++
	return nextID
}

// Placeable is one object living in (or destined for) a room. Coordinates
// are always grid-snapped before they are used for collision or rendering.
type Placeable struct {
	Name string
	ID   uint64
	Kind Kind

	Room int        // room number the coordinates are relative to
	Pos  grid.Point // top-left, snapped

	Sprite     *Sprite
	Foreground *Sprite // optional overlay drawn above actors (desk counter)

	// YConstraint forces the bottom edge to a fixed line when placing,
	// so floor-standing objects rest on the floor regardless of cursor
	// height. Zero means unconstrained.
	YConstraint int

	Price  int
	Beauty float64
	Tag    string
	Placed bool
	Flags  Flags

	// Pair links the two halves of a staircase door so opening one
	// animates the other. Only door kinds set it.
	Pair *Placeable
}

// New creates a placeable at the given room position. The position is
// snapped to the grid immediately.
func New(name string, kind Kind, room int, pos grid.Point, sprite *Sprite) *Placeable {
	return &Placeable{
		Name:   name,
		ID:     NextID(),
		Kind:   kind,
		Room:   room,
		Pos:    grid.Snap(pos),
		Sprite: sprite,
	}
}

// Rect returns the current occupancy rectangle in pixels.
func (p *Placeable) Rect() grid.Rect {
	w, h := p.Sprite.Size()
	return grid.NewRect(p.Pos, w*grid.Unit, h*grid.Unit)
}

// Move repositions the placeable, snapping the new coordinates.
func (p *Placeable) Move(room int, pos grid.Point) {
	p.Room = room
	p.Pos = grid.Snap(pos)
}

// Clone returns a deep copy with its own ID and its own sprite surface.
// Sprites are never aliased between instances: inventory thumbnails must
// not mutate the original's animation state.
func (p *Placeable) Clone() *Placeable {
	c := *p
	c.ID = NextID()
	c.Sprite = p.Sprite.Clone()
	if p.Foreground != nil {
		c.Foreground = p.Foreground.Clone()
	}
	c.Pair = nil
	return &c
}

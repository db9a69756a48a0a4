package assets

import (
	"fmt"

	"bot-atelier/internal/grid"
	"bot-atelier/internal/object"
	"bot-atelier/internal/save"
)

// FloorY is the line floor-standing objects rest on: the bottom edge of a
// y-constrained placeable is forced here regardless of cursor height.
const FloorY = 480

// ItemDef describes one purchasable decoration.
type ItemDef struct {
	Name        string
	Sprite      []string
	Price       int
	Beauty      float64
	YConstraint int // 0 = hangs freely (wall pieces)
}

// Catalog is every player-ownable item, keyed by name. Minted canvases
// are the only placeables not listed here.
var Catalog = map[string]ItemDef{
	"marble bust": {
		Name: "marble bust",
		Sprite: []string{
			" (@) ",
			" ╱█╲ ",
			"▀▀▀▀▀",
		},
		Price:       50,
		Beauty:      10,
		YConstraint: FloorY,
	},
	"fern": {
		Name: "fern",
		Sprite: []string{
			"╲│╱",
			" █ ",
		},
		Price:       50,
		Beauty:      100,
		YConstraint: FloorY,
	},
	"tall plant": {
		Name: "tall plant",
		Sprite: []string{
			"╲│╱",
			" │ ",
			" █ ",
		},
		Price:       50,
		Beauty:      1000,
		YConstraint: FloorY,
	},
	"neon sign": {
		Name: "neon sign",
		Sprite: []string{
			"╭────╮",
			"│BEEP│",
			"╰────╯",
		},
		Price:  120,
		Beauty: 250,
	},
	"woven rug": {
		Name: "woven rug",
		Sprite: []string{
			"▞▚▞▚▞▚▞▚",
		},
		Price:       80,
		Beauty:      60,
		YConstraint: FloorY,
	},
	"hologram globe": {
		Name: "hologram globe",
		Sprite: []string{
			" ◜─◝ ",
			"│ ◍ │",
			" ◟─◞ ",
		},
		Price:  300,
		Beauty: 800,
	},
}

// NewProp instantiates a catalog item as an unplaced decoration.
func NewProp(def ItemDef) *object.Placeable {
	p := object.New(def.Name, object.KindProp, 0, grid.Point{}, object.NewSprite(def.Sprite))
	p.Tag = object.TagDecoration
	p.Price = def.Price
	p.Beauty = def.Beauty
	p.YConstraint = def.YConstraint
	return p
}

// NewCanvasArt mints a painted-canvas decoration from a finished canvas
// surface. Its beauty comes from the painting, not the catalog.
func NewCanvasArt(name string, rows []string, beauty float64) *object.Placeable {
	p := object.New(name, object.KindProp, 0, grid.Point{}, object.NewSprite(rows))
	p.Tag = object.TagDecoration
	p.Beauty = beauty
	return p
}

// FromSave materializes a saved item. Catalog items get their sprite and
// stats from the catalog; minted items carry their own sprite rows.
func FromSave(it save.Item) (*object.Placeable, error) {
	var p *object.Placeable
	if def, ok := Catalog[it.Name]; ok {
		p = NewProp(def)
		if it.Beauty != 0 {
			p.Beauty = it.Beauty
		}
	} else {
		if len(it.Sprite) == 0 {
			return nil, fmt.Errorf("saved item %q: not in catalog and no sprite recorded", it.Name)
		}
		p = NewCanvasArt(it.Name, it.Sprite, it.Beauty)
	}
	if it.Placed {
		p.Move(it.Room, grid.Point{X: it.X, Y: it.Y})
		p.Placed = true
	}
	return p, nil
}

// ToSave converts a placeable back into its save form.
func ToSave(p *object.Placeable) save.Item {
	it := save.Item{
		Name:   p.Name,
		Placed: p.Placed,
		Room:   p.Room,
		X:      p.Pos.X,
		Y:      p.Pos.Y,
	}
	if def, ok := Catalog[p.Name]; !ok {
		it.Sprite = append([]string(nil), p.Sprite.Rows()...)
		it.Beauty = p.Beauty
	} else if p.Beauty != def.Beauty {
		it.Beauty = p.Beauty
	}
	return it
}

// DefaultRecord is the fresh-session save: empty museum, stocked shop.
func DefaultRecord() *save.Record {
	return &save.Record{
		Gold: 0,
		Shop: []save.Item{
			{Name: "marble bust"},
			{Name: "fern"},
			{Name: "tall plant"},
			{Name: "woven rug"},
			{Name: "neon sign"},
			{Name: "hologram globe"},
		},
		Unlocks: save.Unlocks{
			UnlockedFloors: []int{0, 1},
		},
	}
}

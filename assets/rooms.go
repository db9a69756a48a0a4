package assets

import (
	"bot-atelier/internal/grid"
	"bot-atelier/internal/object"
	"bot-atelier/internal/room"
)

// Floor layout constants.
const (
	MaxFloor = 5 // floors run 0..MaxFloor
	StartRoom = 1

	// Screen size in pixels. The room background fills the whole screen.
	ScreenW = 960
	ScreenH = 540
)

// NonBuildableRooms are hard-excluded from placement regardless of
// collision: the atelier and the observatory reserved for the finale.
var NonBuildableRooms = []int{0, 5}

// FloorNames maps room number to its display name.
var FloorNames = [MaxFloor + 1]string{
	"the atelier",
	"the lobby",
	"the east gallery",
	"the west gallery",
	"the grand hall",
	"the observatory",
}

// Tower is the static building: six rooms with their permanent fixtures
// already placed and blacklisted. Special fixtures the game logic needs
// to reach are exposed as fields.
type Tower struct {
	Rooms []*room.Room

	Desk        *object.Placeable // lobby desk where bots are admitted
	AutoCashier *object.Placeable // dormant machine in the grand hall
	Canvas      *object.Placeable // paintable canvas in the atelier
}

// BuildTower constructs the rooms and fixtures for a fresh session.
func BuildTower() *Tower {
	t := &Tower{}
	bgs := [MaxFloor + 1]string{"atelier", "lobby", "gallery", "gallery", "hall", "observatory"}
	for n := 0; n <= MaxFloor; n++ {
		t.Rooms = append(t.Rooms, room.New(n, FloorNames[n], bgs[n]))
	}

	// Every room gets its staircase doors; change_floor clamps at the
	// tower's ends, so the bottom and top rooms keep both for symmetry.
	for n := 0; n <= MaxFloor; n++ {
		up := newDoor("stairs up", object.KindDoorUp, n, grid.Point{X: 840, Y: 300})
		down := newDoor("stairs down", object.KindDoorDown, n, grid.Point{X: 840, Y: 444})
		up.Pair, down.Pair = down, up
		t.Rooms[n].AddFixture(up)
		t.Rooms[n].AddFixture(down)
	}

	// Atelier: canvas and the color-unlock terminal.
	t.Canvas = fixture("canvas", object.KindCanvas, 0, grid.Point{X: 300, Y: 150}, CanvasFrame)
	t.Rooms[0].AddFixture(t.Canvas)
	t.Rooms[0].AddFixture(fixture("color terminal", object.KindColorTerminal, 0, grid.Point{X: 720, Y: 462}, ColorTerminal))

	// Lobby: admission desk and the inventory kiosk.
	t.Desk = fixture("desk", object.KindDesk, 1, grid.Point{X: 90, Y: 456}, Desk)
	t.Desk.Foreground = object.NewSprite(DeskCounter)
	t.Rooms[1].AddFixture(t.Desk)
	t.Rooms[1].AddFixture(fixture("inventory kiosk", object.KindInventoryKiosk, 1, grid.Point{X: 600, Y: 150}, InventoryKiosk))

	// East gallery: shop counter.
	t.Rooms[2].AddFixture(fixture("shop counter", object.KindShopCounter, 2, grid.Point{X: 420, Y: 456}, ShopCounter))

	// Grand hall: the dormant auto cashier. Unlocking the feature
	// removes the machine from the room.
	t.AutoCashier = fixture("auto cashier", object.KindAutoCashier, 4, grid.Point{X: 480, Y: 456}, AutoCashier)
	t.Rooms[4].AddFixture(t.AutoCashier)

	return t
}

// NewSpectatorWindow creates the observatory telescope fixture. It is
// only installed in online mode.
func NewSpectatorWindow() *object.Placeable {
	return fixture("telescope", object.KindSpectatorWindow, 5, grid.Point{X: 600, Y: 150}, SpectatorWindow)
}

func newDoor(name string, kind object.Kind, roomNum int, pos grid.Point) *object.Placeable {
	d := object.New(name, kind, roomNum, pos, object.NewSprite(DoorClosed))
	d.Tag = object.TagFixture
	d.Flags.Static = true
	return d
}

func fixture(name string, kind object.Kind, roomNum int, pos grid.Point, sprite []string) *object.Placeable {
	p := object.New(name, kind, roomNum, pos, object.NewSprite(sprite))
	p.Tag = object.TagFixture
	p.Flags.Static = true
	return p
}

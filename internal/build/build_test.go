package build

import (
	"testing"

	"bot-atelier/internal/grid"
	"bot-atelier/internal/object"
	"bot-atelier/internal/room"
)

func decoration(name string, pos grid.Point) *object.Placeable {
	p := object.New(name, object.KindProp, 1, pos, object.NewSprite([]string{"##", "##"}))
	p.Tag = object.TagDecoration
	p.Beauty = 10
	return p
}

func TestUpdateGhostSnapsCursor(t *testing.T) {
	m := New(0, 5)
	m.Select(decoration("bust", grid.Point{}))

	m.UpdateGhost(grid.Point{X: 1900, Y: 631})
	g := m.Ghost()
	if g.X != 1896 || g.Y != 630 {
		t.Fatalf("ghost top-left = (%d,%d), want (1896,630)", g.X, g.Y)
	}
}

func TestUpdateGhostAppliesYConstraint(t *testing.T) {
	m := New(0, 5)
	p := decoration("plant", grid.Point{})
	p.YConstraint = 540
	m.Select(p)

	m.UpdateGhost(grid.Point{X: 300, Y: 100})
	if got := m.Ghost().Bottom(); got != 540 {
		t.Fatalf("ghost bottom = %d, want the constraint line 540", got)
	}
	// The cursor X still drives the horizontal position.
	if m.Ghost().X != 300 {
		t.Fatalf("ghost X = %d, want 300", m.Ghost().X)
	}
}

func TestCanPlaceCollision(t *testing.T) {
	r := room.New(1, "lobby", "bg1")
	occupied := decoration("statue", grid.Point{X: 120, Y: 120})
	r.Add(occupied)

	m := New(0, 5)
	m.Select(decoration("bust", grid.Point{}))

	m.UpdateGhost(grid.Point{X: 126, Y: 126}) // overlaps statue
	if m.CanPlace(r) {
		t.Fatal("CanPlace allowed an overlapping ghost")
	}

	m.UpdateGhost(grid.Point{X: 300, Y: 300}) // clear space
	if !m.CanPlace(r) {
		t.Fatal("CanPlace rejected a non-colliding ghost")
	}
}

func TestCanPlaceExcludedRooms(t *testing.T) {
	m := New(0, 5)
	m.Select(decoration("bust", grid.Point{}))
	m.UpdateGhost(grid.Point{X: 300, Y: 300})

	for _, num := range []int{0, 5} {
		if m.CanPlace(room.New(num, "off-limits", "bg")) {
			t.Fatalf("CanPlace allowed building in excluded room %d", num)
		}
	}
	if !m.CanPlace(room.New(3, "gallery", "bg4")) {
		t.Fatal("CanPlace rejected an allowed empty room")
	}
}

func TestNoSelectionPanics(t *testing.T) {
	for name, fn := range map[string]func(*Mode){
		"UpdateGhost": func(m *Mode) { m.UpdateGhost(grid.Point{}) },
		"CanPlace":    func(m *Mode) { m.CanPlace(room.New(1, "lobby", "bg1")) },
		"Commit":      func(m *Mode) { m.Commit(1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s without selection should panic", name)
				}
			}()
			fn(New(0, 5))
		}()
	}
}

// End-to-end placement scenario: empty room, one decoration in inventory,
// ghost at a free grid-aligned spot, commit.
func TestPlacementScenario(t *testing.T) {
	r := room.New(2, "gallery", "bg3")
	item := decoration("bust", grid.Point{})
	before := r.Beauty()

	m := New(0, 5)
	m.Select(item)
	m.UpdateGhost(grid.Point{X: 601, Y: 241})
	if !m.CanPlace(r) {
		t.Fatal("placement should be allowed in an empty room")
	}
	placed := m.Commit(r.Num)
	r.Add(placed)
	m.Clear()

	if len(r.Placed) != 1 {
		t.Fatalf("len(Placed) = %d, want 1", len(r.Placed))
	}
	if placed.Pos != (grid.Point{X: 600, Y: 240}) {
		t.Fatalf("committed position = %v, want snapped (600,240)", placed.Pos)
	}
	if !placed.Placed {
		t.Fatal("committed object not flagged placed")
	}
	if got := r.Beauty(); got != before+item.Beauty {
		t.Fatalf("beauty = %v, want %v", got, before+item.Beauty)
	}
	if m.Active() {
		t.Fatal("session should end after commit")
	}
}

// End-to-end destruction scenario: blacklisted fixture survives, the
// player-placed decoration at a distinct rect is removed.
func TestDestructionRespectsBlacklist(t *testing.T) {
	r := room.New(3, "gallery", "bg4")
	fixture := object.New("desk", object.KindDesk, 3, grid.Point{X: 0, Y: 0}, object.NewSprite([]string{"====", "===="}))
	fixture.Tag = object.TagFixture
	r.AddFixture(fixture)

	deco := decoration("plant", grid.Point{X: 300, Y: 300})
	r.Add(deco)
	beautyBefore := r.Beauty()

	var d Destruction
	d.Toggle()
	if !d.Active() {
		t.Fatal("Toggle did not activate destruction mode")
	}

	// Click inside the fixture: nothing changes.
	if hit := r.PlaceableAt(grid.Point{X: 6, Y: 6}); hit == nil || d.Remove(hit, r) {
		t.Fatal("blacklisted fixture should not be removable")
	}
	if len(r.Placed) != 2 {
		t.Fatal("placed collection changed by a rejected removal")
	}

	// Click inside the decoration: exactly it is removed.
	hit := r.PlaceableAt(grid.Point{X: 306, Y: 306})
	if hit != deco {
		t.Fatalf("hit = %v, want the decoration", hit)
	}
	if !d.Remove(hit, r) {
		t.Fatal("decoration removal failed")
	}
	if len(r.Placed) != 1 || r.Placed[0] != fixture {
		t.Fatal("wrong object removed")
	}
	if got := r.Beauty(); got != beautyBefore-deco.Beauty {
		t.Fatalf("beauty = %v, want %v", got, beautyBefore-deco.Beauty)
	}
}

package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"bot-atelier/internal/grid"
	"bot-atelier/internal/object"
	"bot-atelier/internal/room"
)

func testRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(CellsW, CellsH)
	return New(screen), screen
}

func cellRune(s tcell.SimulationScreen, x, y int) rune {
	contents, w, _ := s.GetContents()
	return contents[y*w+x].Runes[0]
}

func TestCellToPixel(t *testing.T) {
	p := CellToPixel(3, 7)
	if p.X != 3*grid.Unit || p.Y != 7*grid.Unit {
		t.Fatalf("pixel = %+v, want (%d, %d)", p, 3*grid.Unit, 7*grid.Unit)
	}
}

func TestDrawRoomPlacesSpriteRunes(t *testing.T) {
	r, screen := testRenderer(t)
	rm := room.New(1, "lobby", "lobby")
	p := object.New("statue", object.KindProp, 1, grid.Point{X: 60, Y: 120}, object.NewSprite([]string{"@@"}))
	rm.Add(p)

	r.DrawRoom(rm, nil, false)
	screen.Show()

	if got := cellRune(screen, 10, 20); got != '@' {
		t.Fatalf("cell (10,20) = %q, want '@'", got)
	}
	if got := cellRune(screen, 11, 20); got != '@' {
		t.Fatalf("cell (11,20) = %q, want '@'", got)
	}
}

func TestDrawHUDShowsScores(t *testing.T) {
	r, screen := testRenderer(t)
	r.DrawHUD("the lobby", 42, 7)
	screen.Show()

	if got := cellRune(screen, 1, 0); got != 't' {
		t.Fatalf("cell (1,0) = %q, want 't'", got)
	}
}

func TestDrawConfirmationReturnsButtonRects(t *testing.T) {
	r, screen := testRenderer(t)
	yes, no := r.DrawConfirmation("really?")
	screen.Show()

	if yes.W == 0 || no.W == 0 {
		t.Fatal("zero-width button rects")
	}
	if yes.Intersects(no) {
		t.Fatal("yes and no buttons overlap")
	}
}

func TestDrawThumbRectsDoNotOverlap(t *testing.T) {
	r, screen := testRenderer(t)
	win := r.DrawWindow("inventory")

	p := object.New("fern", object.KindProp, 1, grid.Point{}, object.NewSprite([]string{"||"}))
	a := r.DrawThumb(win, 0, p, "fern", false)
	b := r.DrawThumb(win, 1, p, "fern", false)
	screen.Show()

	if a.Intersects(b) {
		t.Fatal("adjacent slots overlap")
	}
}

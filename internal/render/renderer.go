package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"bot-atelier/internal/grid"
	"bot-atelier/internal/object"
	"bot-atelier/internal/room"
)

// Cells holds the terminal dimensions of the playfield. One cell per
// grid unit.
const (
	CellsW = 160
	CellsH = 90
)

// Renderer draws rooms and UI chrome onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	color  bool // room palettes enabled; monochrome until unlocked
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Screen() tcell.Screen { return r.screen }

// SetColor enables or disables the room color palettes.
func (r *Renderer) SetColor(on bool) { r.color = on }

// CellToPixel converts a terminal cell coordinate to a pixel cursor.
func CellToPixel(cx, cy int) grid.Point {
	return grid.Point{X: cx * grid.Unit, Y: cy * grid.Unit}
}

// pixel rect to cell rect
func cellRect(rc grid.Rect) (x, y, w, h int) {
	return rc.X / grid.Unit, rc.Y / grid.Unit, rc.W / grid.Unit, rc.H / grid.Unit
}

func (r *Renderer) Clear() {
	r.screen.Clear()
}

func (r *Renderer) Show() {
	r.screen.Show()
}

// DrawRoom paints a room's background and its placed objects. hover is
// the placeable under the cursor, or nil. destroying switches the
// hover outline to the destruction color.
func (r *Renderer) DrawRoom(rm *room.Room, hover *object.Placeable, destroying bool) {
	theme, ok := Themes[rm.BG]
	if !ok {
		theme = RoomTheme{Fill: ' ', Style: StyleDefault}
	}
	if !r.color {
		theme.Style = StyleDim
	}
	for y := 1; y < CellsH; y++ {
		for x := 0; x < CellsW; x++ {
			r.screen.SetContent(x, y, ' ', nil, StyleDefault)
		}
	}
	// floor line
	fy := 480 / grid.Unit
	for x := 0; x < CellsW; x++ {
		r.screen.SetContent(x, fy, '═', nil, theme.Style)
		for y := fy + 1; y < CellsH; y++ {
			r.screen.SetContent(x, y, theme.Fill, nil, theme.Style)
		}
	}
	for _, p := range rm.Placed {
		style := StyleDefault
		if p == hover && !p.Flags.NoOutline {
			if destroying {
				style = StyleDestroy
			} else {
				style = StyleHover
			}
		}
		r.drawSprite(p, style)
	}
	// foreground pass, drawn over everything in the room
	for _, p := range rm.Placed {
		if p.Foreground != nil {
			r.drawRows(p.Foreground.Rows(), p.Pos, StyleDefault)
		}
	}
}

func (r *Renderer) drawSprite(p *object.Placeable, style tcell.Style) {
	r.drawRows(p.Sprite.Rows(), p.Pos, style)
}

func (r *Renderer) drawRows(rows []string, pos grid.Point, style tcell.Style) {
	cx, cy := pos.X/grid.Unit, pos.Y/grid.Unit
	for dy, row := range rows {
		dx := 0
		for _, ch := range row {
			if ch != ' ' {
				r.screen.SetContent(cx+dx, cy+dy, ch, nil, style)
			}
			dx++
		}
	}
}

// DrawActor paints a dynamic actor's sprite rows. Actors live outside
// the room store and are drawn after its contents.
func (r *Renderer) DrawActor(rows []string, pos grid.Point) {
	r.drawRows(rows, pos, StyleDefault)
}

// DrawGhost paints the build-mode preview at the ghost rect. Invalid
// placements render in the bad-ghost color.
func (r *Renderer) DrawGhost(p *object.Placeable, ghost grid.Rect, ok bool) {
	style := StyleGhostOK
	if !ok {
		style = StyleGhostBad
	}
	r.drawRows(p.Sprite.Rows(), ghost.TopLeft(), style)
}

// DrawHolograms outlines every placed object in the room. Shown while
// build mode is active so existing footprints are visible.
func (r *Renderer) DrawHolograms(rm *room.Room) {
	for _, p := range rm.Placed {
		x, y, w, h := cellRect(p.Rect())
		r.drawBox(x, y, w, h, StyleHologram)
	}
}

func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	if w < 1 || h < 1 {
		return
	}
	for dx := 0; dx < w; dx++ {
		r.screen.SetContent(x+dx, y, '─', nil, style)
		r.screen.SetContent(x+dx, y+h-1, '─', nil, style)
	}
	for dy := 0; dy < h; dy++ {
		r.screen.SetContent(x, y+dy, '│', nil, style)
		r.screen.SetContent(x+w-1, y+dy, '│', nil, style)
	}
	r.screen.SetContent(x, y, '┌', nil, style)
	r.screen.SetContent(x+w-1, y, '┐', nil, style)
	r.screen.SetContent(x, y+h-1, '└', nil, style)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

// Dim repaints the playfield in the dim style. Used behind dialogue
// boxes and the pause overlay.
func (r *Renderer) Dim() {
	w, h := r.screen.Size()
	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, _, _, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, ch, nil, StyleDim)
		}
	}
}

// Fade darkens a fraction of the playfield rows, top down. level runs
// 0..1 and drives floor-change transitions.
func (r *Renderer) Fade(level float64) {
	if level <= 0 {
		return
	}
	if level > 1 {
		level = 1
	}
	w, h := r.screen.Size()
	rows := int(float64(h) * level)
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, StyleDefault)
		}
	}
}

// DrawHUD writes the status line: floor name, beauty and money.
func (r *Renderer) DrawHUD(floorName string, beauty, money int) {
	for x := 0; x < CellsW; x++ {
		r.screen.SetContent(x, 0, ' ', nil, StyleDefault)
	}
	r.putText(1, 0, floorName, StyleDefault)
	r.putText(CellsW-34, 0, fmt.Sprintf("beauty %06d", beauty), StyleBeauty)
	r.putText(CellsW-16, 0, fmt.Sprintf("gold %06d", money), StyleMoney)
}

// DrawPopup draws one info popup line near the bottom of the screen.
// slot stacks multiple popups upward.
func (r *Renderer) DrawPopup(text string, slot int) {
	w := runewidth.StringWidth(text) + 4
	x := (CellsW - w) / 2
	y := CellsH - 6 - slot*3
	r.fillBox(x, y, w, 3, StylePopup)
	r.putText(x+2, y+1, text, StylePopup)
}

// DrawConfirmation draws the topmost confirmation prompt with its
// yes/no buttons and returns their cell rects for hit testing.
func (r *Renderer) DrawConfirmation(text string) (yes, no grid.Rect) {
	w := runewidth.StringWidth(text) + 6
	if w < 30 {
		w = 30
	}
	x := (CellsW - w) / 2
	y := CellsH/2 - 4
	r.fillBox(x, y, w, 7, StyleWindow)
	r.drawBox(x, y, w, 7, StyleWindow)
	r.putText(x+3, y+1, text, StyleWindow)
	yesX, noX := x+4, x+w-10
	r.putText(yesX, y+4, "[ yes ]", StyleYesButton)
	r.putText(noX, y+4, "[ no ]", StyleNoButton)
	yes = grid.Rect{X: yesX * grid.Unit, Y: (y + 4) * grid.Unit, W: 7 * grid.Unit, H: grid.Unit}
	no = grid.Rect{X: noX * grid.Unit, Y: (y + 4) * grid.Unit, W: 6 * grid.Unit, H: grid.Unit}
	return yes, no
}

// DrawDialogue draws the dialogue box with the speaker prompt and the
// currently visible lines.
func (r *Renderer) DrawDialogue(speaker string, lines []string) {
	h := 9
	y := CellsH - h - 1
	r.fillBox(2, y, CellsW-4, h, StyleDefault)
	r.drawBox(2, y, CellsW-4, h, StyleDialogue)
	r.putText(4, y+1, speaker+"@botOS:~$", StyleDialogue)
	for i, line := range lines {
		r.putText(6, y+2+i, line, StyleDefault)
	}
	r.putText(CellsW-22, y+h-1, " click to continue ", StyleDim)
}

// Window is a centered panel for the inventory and shop screens.
type Window struct {
	X, Y, W, H int
}

// DrawWindow clears and frames a centered panel and returns its cell
// geometry.
func (r *Renderer) DrawWindow(title string) Window {
	w, h := CellsW-20, CellsH-16
	x, y := 10, 8
	r.fillBox(x, y, w, h, StyleWindow)
	r.drawBox(x, y, w, h, StyleWindow)
	r.putText(x+(w-runewidth.StringWidth(title))/2, y, " "+title+" ", StyleWindow)
	return Window{X: x, Y: y, W: w, H: h}
}

// DrawThumb draws an item thumbnail with its label inside a window
// slot and returns the slot's pixel rect for hit testing.
func (r *Renderer) DrawThumb(win Window, slot int, p *object.Placeable, label string, hover bool) grid.Rect {
	const perRow = 4
	slotW, slotH := (win.W-2)/perRow, 10
	x := win.X + 1 + (slot%perRow)*slotW
	y := win.Y + 2 + (slot/perRow)*slotH
	style := StyleWindow
	if hover {
		style = StyleHover
	}
	r.drawBox(x, y, slotW-1, slotH-1, style)
	rows := p.Sprite.Rows()
	for dy, row := range rows {
		if dy >= slotH-4 {
			break
		}
		dx := 0
		for _, ch := range row {
			if dx >= slotW-3 {
				break
			}
			if ch != ' ' {
				r.screen.SetContent(x+1+dx, y+1+dy, ch, nil, style)
			}
			dx++
		}
	}
	r.putText(x+1, y+slotH-3, runewidth.Truncate(label, slotW-2, "…"), style)
	return grid.Rect{X: x * grid.Unit, Y: y * grid.Unit, W: (slotW - 1) * grid.Unit, H: (slotH - 1) * grid.Unit}
}

// DrawButton draws a labeled button and returns its pixel rect.
func (r *Renderer) DrawButton(x, y int, label string, style tcell.Style) grid.Rect {
	text := "[ " + label + " ]"
	r.putText(x, y, text, style)
	return grid.Rect{X: x * grid.Unit, Y: y * grid.Unit, W: runewidth.StringWidth(text) * grid.Unit, H: grid.Unit}
}

// DrawCinematicFrame centers a full frame of sprite rows.
func (r *Renderer) DrawCinematicFrame(rows []string) {
	r.screen.Clear()
	h := len(rows)
	y := (CellsH - h) / 2
	for dy, row := range rows {
		w := runewidth.StringWidth(row)
		x := (CellsW - w) / 2
		dx := 0
		for _, ch := range row {
			if ch != ' ' {
				r.screen.SetContent(x+dx, y+dy, ch, nil, StyleDefault)
			}
			dx++
		}
	}
}

// DrawDebug prints an overlay line under the HUD.
func (r *Renderer) DrawDebug(text string) {
	r.putText(1, 1, text, StyleDim)
}

func (r *Renderer) fillBox(x, y, w, h int, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

func (r *Renderer) putText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

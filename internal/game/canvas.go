package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"bot-atelier/assets"
	"bot-atelier/internal/grid"
)

// paint dimensions in cells, fitting inside the canvas frame.
const (
	paintW = 8
	paintH = 4
)

// paintShades is the brush palette, roughly light to dark.
var paintShades = []rune{'░', '▒', '▓', '█', '·', ' '}

// runPainting is the paint-animation sequencer: a blocking inner loop
// that reveals a generated artwork cell by cell on the atelier canvas.
// Escape cancels and discards the work; completion mints the piece into
// the inventory.
func (g *Game) runPainting() {
	rows := g.generateArt()
	canvasPos := g.tower.Canvas.Pos
	origin := grid.Point{X: canvasPos.X + 2*grid.Unit, Y: canvasPos.Y + grid.Unit}

	revealed := 0
	total := paintW * paintH
	for revealed < total {
		g.drawWorld(nil)
		g.drawPaintProgress(rows, origin, revealed)
		g.renderer.Show()
		select {
		case ev, ok := <-g.events:
			if !ok {
				g.quit = true
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape {
					g.popups.Push("painting abandoned")
					return
				}
			}
		case <-g.ticker.C:
			revealed++
		}
	}

	g.paintings++
	name := fmt.Sprintf("painting #%d", g.paintings)
	beauty := 40 + float64(g.rng.Intn(120))
	g.inventory.Add(assets.NewCanvasArt(name, rows, beauty))
	g.popups.Push(name + " finished")
	g.log.Info("painting minted", zap.Int("beauty", int(beauty)))
}

// generateArt rolls a fresh abstract composition.
func (g *Game) generateArt() []string {
	rows := make([]string, paintH)
	for y := 0; y < paintH; y++ {
		line := make([]rune, paintW)
		for x := 0; x < paintW; x++ {
			line[x] = paintShades[g.rng.Intn(len(paintShades))]
		}
		rows[y] = string(line)
	}
	return rows
}

// drawPaintProgress draws the first n revealed cells over the canvas.
func (g *Game) drawPaintProgress(rows []string, origin grid.Point, n int) {
	shown := 0
	for y, row := range rows {
		partial := make([]rune, 0, paintW)
		for _, ch := range row {
			if shown >= n {
				break
			}
			partial = append(partial, ch)
			shown++
		}
		if len(partial) > 0 {
			g.renderer.DrawActor([]string{string(partial)}, grid.Point{X: origin.X, Y: origin.Y + y*grid.Unit})
		}
	}
}

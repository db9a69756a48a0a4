package game

import (
	"fmt"

	"bot-atelier/assets"
	"bot-atelier/internal/object"
	"bot-atelier/internal/render"
	"bot-atelier/internal/save"
)

// draw renders one frame: background, room contents, dynamic actors,
// mode overlay, then transient popups. The order is fixed and the whole
// pass runs every frame, paused or not.
func (g *Game) draw() {
	var hover *object.Placeable
	if g.state == StateInteraction || g.state == StateDestruction {
		hover = g.room().PlaceableAt(g.cursor)
	}
	g.drawWorld(hover)

	switch g.state {
	case StateBuild:
		g.renderer.DrawHolograms(g.room())
		g.renderer.DrawGhost(g.build.Selected(), g.build.Ghost(), g.build.CanPlace(g.room()))
	case StateInventory:
		g.drawCollection(g.inventory, "inventory", false)
	case StateShop:
		g.drawCollection(g.shop, "shop", true)
	case StateDialog:
		g.renderer.Dim()
		g.renderer.DrawDialogue(g.talk.Speaker, g.talk.Selected.Visible())
	case StateConfirmation:
		if p := g.confirms.Top(); p != nil {
			g.ui.yes, g.ui.no = g.renderer.DrawConfirmation(p.Text)
		}
	case StatePaused:
		g.renderer.Dim()
		g.ui.resumeBtn = g.renderer.DrawButton(render.CellsW/2-12, render.CellsH/2, "resume", render.StyleYesButton)
		g.ui.quitBtn = g.renderer.DrawButton(render.CellsW/2+2, render.CellsH/2, "save and quit", render.StyleNoButton)
	case StateTransition:
		g.renderer.Fade(g.fade)
	}

	g.renderer.DrawHUD(assets.FloorNames[g.floor], int(g.beauty()), g.money)
	for i, p := range g.popups.Items() {
		g.renderer.DrawPopup(p.Text, i)
	}
	if g.cfg.Gameplay.Debug {
		g.renderer.DrawDebug(fmt.Sprintf("mode=%s floor=%d timers=%d bots=%d frame=%d",
			g.state, g.floor, g.timers.Len(), len(g.bots.bots), g.frame))
	}
}

// drawWorld paints the current room and its bots.
func (g *Game) drawWorld(hover *object.Placeable) {
	g.renderer.DrawRoom(g.room(), hover, g.destruct.Active())
	for _, b := range g.bots.InRoom(g.floor) {
		g.renderer.DrawActor(b.Sprite.Rows(), b.Pos)
	}
	if g.state == StateDestruction {
		g.renderer.DrawDebug("destruction mode: click an object to pack it away, x to stop")
	}
}

// drawCollection draws the inventory or shop window and records the
// slot rects for next frame's hit testing.
func (g *Game) drawCollection(c *Collection, title string, shop bool) {
	win := g.renderer.DrawWindow(title)
	g.ui.slots = g.ui.slots[:0]
	for i, item := range c.PageItems() {
		label := item.Name
		if shop {
			label = fmt.Sprintf("%s %dg", item.Name, item.Price)
		} else if item.Placed {
			label = item.Name + " *"
		}
		rect := g.renderer.DrawThumb(win, i, item, label, false)
		g.ui.slots = append(g.ui.slots, slotRect{rect: rect, item: item})
	}

	y := win.Y + win.H - 2
	g.ui.prevPage = g.renderer.DrawButton(win.X+2, y, "prev", render.StyleWindow)
	g.ui.nextPage = g.renderer.DrawButton(win.X+12, y, "next", render.StyleWindow)
	g.renderer.DrawButton(win.X+22, y, fmt.Sprintf("page %d/%d", c.Page()+1, c.Pages()), render.StyleWindow)
	if !shop {
		g.ui.destroyBtn = g.renderer.DrawButton(win.X+win.W-14, y, "pack away", render.StyleNoButton)
	}
}

// snapshot serializes the session into a save record.
func (g *Game) snapshot() *save.Record {
	rec := &save.Record{
		Gold:    g.money,
		Beauty:  g.beauty(),
		Unlocks: g.unlocks.Snapshot(),
	}
	for _, p := range g.inventory.Items() {
		rec.Inventory = append(rec.Inventory, assets.ToSave(p))
	}
	for _, p := range g.shop.Items() {
		rec.Shop = append(rec.Shop, assets.ToSave(p))
	}
	return rec
}

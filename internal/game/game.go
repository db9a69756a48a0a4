package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"bot-atelier/assets"
	"bot-atelier/internal/build"
	"bot-atelier/internal/config"
	"bot-atelier/internal/dialogue"
	"bot-atelier/internal/grid"
	"bot-atelier/internal/object"
	"bot-atelier/internal/render"
	"bot-atelier/internal/room"
	"bot-atelier/internal/save"
	"bot-atelier/internal/timer"
)

// floorChangeDelay is how long the door animation plays before the
// room swap happens.
const floorChangeDelay = 750 * time.Millisecond

// slotRect pairs a window slot's screen rect with its item.
type slotRect struct {
	rect grid.Rect
	item *object.Placeable
}

// uiRects holds the clickable regions computed during the last draw.
// Events of the following frame hit-test against them.
type uiRects struct {
	yes, no    grid.Rect
	slots      []slotRect
	prevPage   grid.Rect
	nextPage   grid.Rect
	destroyBtn grid.Rect
	resumeBtn  grid.Rect
	quitBtn    grid.Rect
}

// Game is the top-level orchestrator: it owns the state machine, the
// frame loop, and every subsystem the modes dispatch into.
type Game struct {
	cfg      *config.Config
	log      *zap.Logger
	screen   tcell.Screen
	renderer *render.Renderer
	rng      *rand.Rand

	tower *assets.Tower
	floor int
	money int

	state State
	quit  bool

	timers    *timer.Manager
	build     *build.Mode
	destruct  *build.Destruction
	talk      *dialogue.Manager
	bots      *Hivemind
	unlocks   *UnlockManager
	popups    PopupQueue
	confirms  ConfirmStack
	inventory *Collection
	shop      *Collection

	cursor grid.Point
	events chan tcell.Event
	ticker *time.Ticker

	fade      float64          // transition reveal, 1 → 0
	pending   *assets.Cutscene // cutscene queued behind the transition
	firstRun  bool
	paintings int
	savePath  string
	frame     uint64

	ui uiRects
}

// New builds a session from a loaded save record. A nil record starts a
// fresh museum.
func New(cfg *config.Config, log *zap.Logger, rec *save.Record, savePath string) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	g, err := newSession(cfg, log, rec, savePath)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	g.screen = screen
	g.renderer = render.New(screen)
	g.renderer.SetColor(g.unlocks.FeatureUnlocked(assets.FeatureColor))
	return g, nil
}

// newSession wires everything except the screen, so tests can drive the
// state machine without a terminal.
func newSession(cfg *config.Config, log *zap.Logger, rec *save.Record, savePath string) (*Game, error) {
	firstRun := rec == nil
	if rec == nil {
		rec = assets.DefaultRecord()
	}

	g := &Game{
		cfg:      cfg,
		log:      log,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		tower:    assets.BuildTower(),
		floor:    assets.StartRoom,
		money:    rec.Gold,
		state:    StateInteraction,
		build:    build.New(assets.NonBuildableRooms...),
		destruct: &build.Destruction{},
		talk:     dialogue.NewManager(assets.BotChatter, assets.StoryDialogues),
		unlocks:  NewUnlockManager(rec.Unlocks),
		firstRun: firstRun,
		savePath: savePath,
	}
	g.timers = timer.New(g.rng)
	g.bots = NewHivemind(g.rng, g.timers, g.beauty, g.unlockedFloors)

	// idle blink on a random door now and then
	blink := append(append([][]string{}, assets.DoorBlinkFrames...), assets.DoorClosed)
	g.timers.ScheduleRepeatRange(6*time.Second, 14*time.Second, func() {
		rm := g.tower.Rooms[g.rng.Intn(len(g.tower.Rooms))]
		for _, p := range rm.Placed {
			if p.Kind == object.KindDoorUp {
				p.Sprite = object.NewAnimation(blink, 12, false)
				break
			}
		}
	})

	if !cfg.Gameplay.OfflineMode {
		g.tower.Rooms[assets.MaxFloor].AddFixture(assets.NewSpectatorWindow())
	}

	var inv []*object.Placeable
	for _, it := range rec.Inventory {
		p, err := assets.FromSave(it)
		if err != nil {
			return nil, fmt.Errorf("restore inventory: %w", err)
		}
		if p.Placed {
			g.tower.Rooms[p.Room].Add(p)
		}
		inv = append(inv, p)
	}
	g.inventory = NewCollection(inv)

	var stock []*object.Placeable
	for _, it := range rec.Shop {
		p, err := assets.FromSave(it)
		if err != nil {
			return nil, fmt.Errorf("restore shop: %w", err)
		}
		p.Placed = false
		stock = append(stock, p)
	}
	g.shop = NewCollection(stock)

	if g.unlocks.FeatureUnlocked(assets.FeatureAutoCashier) {
		g.startAutoCashier()
		g.tower.Rooms[4].Evict(g.tower.AutoCashier)
	}
	return g, nil
}

// Run is the main frame loop. It blocks until the player quits, then
// serializes the session.
func (g *Game) Run() error {
	defer g.screen.Fini()

	g.events = make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(g.events)
				return
			}
			g.events <- ev
		}
	}()

	fps := g.cfg.Gameplay.FPS
	if fps <= 0 {
		fps = 60
	}
	g.ticker = time.NewTicker(time.Second / time.Duration(fps))
	defer g.ticker.Stop()

	if g.firstRun && !g.cfg.Gameplay.NoStory {
		g.playCutscene(assets.IntroCutscene)
	}

	for !g.quit {
		select {
		case ev, ok := <-g.events:
			if !ok {
				g.quit = true
				break
			}
			g.handleEvent(ev)
		case now := <-g.ticker.C:
			g.update(now)
			g.draw()
			g.renderer.Show()
		}
	}

	g.log.Info("session over",
		zap.Int("gold", g.money),
		zap.Float64("beauty", g.beauty()),
	)
	return g.snapshot().Write(g.savePath)
}

// beauty recomputes the aggregate beauty score. Recomputed on demand
// after every placement mutation rather than maintained incrementally.
func (g *Game) beauty() float64 {
	return room.TotalBeauty(g.tower.Rooms)
}

// unlockedFloors lists the floors bots may wander to.
func (g *Game) unlockedFloors() []int {
	var out []int
	for n := 0; n <= assets.MaxFloor; n++ {
		if g.unlocks.FloorUnlocked(n) {
			out = append(out, n)
		}
	}
	return out
}

func (g *Game) room() *room.Room {
	return g.tower.Rooms[g.floor]
}

// handleEvent dispatches one input event to the handler for the current
// mode. Event handling always precedes update within a frame.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		g.handleKey(keyToAction(ev))
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		g.cursor = render.CellToPixel(cx, cy)
		if mouseToAction(ev) == ActionClick {
			g.handleClick()
		}
	}
}

func (g *Game) handleKey(a Action) {
	switch a {
	case ActionCheatMoney, ActionCheatUnlockAll, ActionCheatFloorUp, ActionCheatFloorDown, ActionCheatSpawnBot:
		g.handleCheat(a)
		return
	}

	switch g.state {
	case StateInteraction:
		switch a {
		case ActionEscape:
			g.state = StatePaused
		case ActionInventory:
			g.state = StateInventory
		case ActionDestruction:
			g.destruct.Toggle()
			g.state = StateDestruction
		}
	case StateInventory:
		switch a {
		case ActionEscape, ActionInventory:
			g.state = StateInteraction
		case ActionDestruction:
			g.destruct.Toggle()
			g.state = StateDestruction
		}
	case StateDestruction:
		switch a {
		case ActionEscape, ActionDestruction:
			g.destruct.Toggle()
			g.state = StateInteraction
		}
	case StateBuild:
		if a == ActionEscape {
			g.build.Clear()
			g.state = StateInteraction
		}
	case StateShop, StateDialog:
		if a == ActionEscape {
			g.endDialog()
			g.state = StateInteraction
		}
	case StatePaused:
		if a == ActionEscape {
			g.state = StateInteraction
		}
	}
	// Transition and Confirmation ignore keys.
}

func (g *Game) handleCheat(a Action) {
	if !g.cfg.Gameplay.Cheats {
		return
	}
	switch a {
	case ActionCheatMoney:
		g.money += 1000
		g.popups.Push("cheat: +1000 gold")
	case ActionCheatUnlockAll:
		g.unlocks.UnlockAll()
		g.popups.Push("cheat: everything unlocked")
	case ActionCheatFloorUp:
		if g.floor < assets.MaxFloor {
			g.performFloorChange(g.floor + 1)
		}
	case ActionCheatFloorDown:
		if g.floor > 0 {
			g.performFloorChange(g.floor - 1)
		}
	case ActionCheatSpawnBot:
		g.bots.Spawn()
	}
}

func (g *Game) handleClick() {
	switch g.state {
	case StateInteraction:
		g.clickInteraction()
	case StateBuild:
		g.clickBuild()
	case StateDestruction:
		g.clickDestruction()
	case StateInventory:
		g.clickInventory()
	case StateShop:
		g.clickShop()
	case StateDialog:
		if g.talk.ClickInteraction() {
			g.endDialog()
			g.state = StateInteraction
		}
	case StateConfirmation:
		g.clickConfirmation()
	case StatePaused:
		g.clickPaused()
	}
}

// clickInteraction resolves a click in the default mode: bots first,
// then placed objects, front to back.
func (g *Game) clickInteraction() {
	if b := g.bots.BotAt(g.floor, g.cursor); b != nil {
		g.talk.Random(g.rng)
		g.talk.Speaker = b.Name
		g.state = StateDialog
		return
	}
	p := g.room().PlaceableAt(g.cursor)
	if p == nil || p.Flags.NoInteraction {
		return
	}
	g.clickPlaceable(p)
}

func (g *Game) clickPlaceable(p *object.Placeable) {
	switch p.Kind {
	case object.KindDoorUp:
		g.clickDoor(p, +1)
	case object.KindDoorDown:
		g.clickDoor(p, -1)
	case object.KindDesk:
		g.clickDesk()
	case object.KindShopCounter:
		if g.discoverFeature(assets.FeatureShop) {
			return
		}
		g.state = StateShop
	case object.KindInventoryKiosk:
		if g.discoverFeature(assets.FeatureInventory) {
			return
		}
		g.state = StateInventory
	case object.KindAutoCashier:
		g.clickAutoCashier()
	case object.KindColorTerminal:
		g.clickColorTerminal()
	case object.KindSpectatorWindow:
		if g.discoverFeature(assets.FeatureSpectator) {
			return
		}
		g.popups.Push("the telescope hums. somewhere, someone is watching")
	case object.KindCanvas:
		g.runPainting()
	default:
		// generic info popup for anything without a handler
		g.popups.Push(p.Name)
	}
}

// discoverFeature plays a feature's discovery dialogue on first contact
// and reports whether it fired.
func (g *Game) discoverFeature(f string) bool {
	if !g.unlocks.DiscoverFeature(f) {
		return false
	}
	g.talk.Special(f + " discovery")
	g.talk.Speaker = "me"
	g.state = StateDialog
	return true
}

func (g *Game) clickDesk() {
	fee, ok := g.bots.Admit()
	if !ok {
		g.popups.Push("nobody is waiting at the desk")
		return
	}
	g.money += fee
	g.popups.Push(fmt.Sprintf("bot admitted (+%d gold)", fee))
	g.log.Info("bot admitted", zap.Int("fee", fee))
}

func (g *Game) clickAutoCashier() {
	if g.discoverFeature(assets.FeatureAutoCashier) {
		return
	}
	if g.unlocks.FeatureUnlocked(assets.FeatureAutoCashier) {
		return
	}
	cost := assets.FeatureCost[assets.FeatureAutoCashier]
	g.confirms.Push(&Prompt{
		Text: fmt.Sprintf("activate the auto cashier for %d gold?", cost),
		OnYes: func() {
			if g.money < cost {
				g.popups.Push("not enough gold")
				return
			}
			g.money -= cost
			g.unlocks.UnlockFeature(assets.FeatureAutoCashier)
			g.startAutoCashier()
			g.tower.Rooms[4].Evict(g.tower.AutoCashier)
			g.popups.Push("the auto cashier whirs to life")
			g.log.Info("feature unlocked", zap.String("feature", assets.FeatureAutoCashier))
		},
	})
}

// startAutoCashier admits waiting bots automatically.
func (g *Game) startAutoCashier() {
	g.timers.ScheduleRepeat(5*time.Second, func() {
		if fee, ok := g.bots.Admit(); ok {
			g.money += fee
		}
	})
}

func (g *Game) clickColorTerminal() {
	if g.discoverFeature(assets.FeatureColor) {
		return
	}
	if g.unlocks.FeatureUnlocked(assets.FeatureColor) {
		return
	}
	cost := assets.FeatureCost[assets.FeatureColor]
	g.confirms.Push(&Prompt{
		Text: fmt.Sprintf("restore the color palette for %d gold?", cost),
		OnYes: func() {
			if g.money < cost {
				g.popups.Push("not enough gold")
				return
			}
			g.money -= cost
			g.unlocks.UnlockFeature(assets.FeatureColor)
			if g.renderer != nil {
				g.renderer.SetColor(true)
			}
			g.popups.Push("color floods back into the world")
			g.log.Info("feature unlocked", zap.String("feature", assets.FeatureColor))
		},
	})
}

// clickDoor starts a floor change, the unlock flow, or an off-limits
// rejection. Rejections are popups, never errors, and leave the mode
// unchanged.
func (g *Game) clickDoor(door *object.Placeable, dir int) {
	target := g.floor + dir
	if target < 0 || target > assets.MaxFloor {
		g.popups.Push("you can't go off limits")
		return
	}
	if !g.unlocks.FloorUnlocked(target) {
		g.tryUnlockFloor(target, door)
		return
	}
	g.beginFloorChange(target, door)
}

func (g *Game) tryUnlockFloor(target int, door *object.Placeable) {
	cost := assets.FloorCost[target]
	if g.money < cost {
		g.popups.Push(fmt.Sprintf("this floor opens for %d gold", cost))
		return
	}
	g.confirms.Push(&Prompt{
		Text: fmt.Sprintf("unlock %s for %d gold?", assets.FloorNames[target], cost),
		OnYes: func() {
			g.money -= cost
			g.unlocks.UnlockFloor(target)
			g.log.Info("floor unlocked", zap.Int("floor", target))
			g.beginFloorChange(target, door)
		},
	})
}

// beginFloorChange plays the door animation and schedules the swap.
func (g *Game) beginFloorChange(target int, door *object.Placeable) {
	door.Sprite = object.NewAnimation(assets.DoorOpenFrames, 10, false)
	if door.Pair != nil {
		door.Pair.Sprite = object.NewAnimation(assets.DoorOpenFrames, 10, false)
	}
	g.timers.Schedule(floorChangeDelay, func() {
		door.Sprite = object.NewAnimation(assets.DoorCloseFrames, 10, false)
		if door.Pair != nil {
			door.Pair.Sprite = object.NewAnimation(assets.DoorCloseFrames, 10, false)
		}
		g.performFloorChange(target)
	})
}

// performFloorChange swaps the room and starts the transition reveal.
func (g *Game) performFloorChange(target int) {
	g.floor = target
	g.state = StateTransition
	g.fade = 1
	g.log.Info("floor changed", zap.Int("floor", target))

	if g.unlocks.DiscoverFloor(target) && !g.cfg.Gameplay.NoStory {
		if c, ok := assets.FloorCutscenes[target]; ok {
			g.pending = &c
		}
	}
}

func (g *Game) clickBuild() {
	if !g.build.CanPlace(g.room()) {
		g.popups.Push("can't place that here")
		return
	}
	p := g.build.Commit(g.floor)
	g.room().Add(p)
	g.build.Clear()
	g.state = StateInventory
	g.log.Info("object placed",
		zap.String("name", p.Name),
		zap.Int("floor", g.floor),
		zap.Float64("beauty", g.beauty()),
	)
}

func (g *Game) clickDestruction() {
	p := g.room().PlaceableAt(g.cursor)
	if p == nil {
		return
	}
	if !g.destruct.Remove(p, g.room()) {
		g.popups.Push("that's part of the building")
		return
	}
	g.popups.Push(p.Name + " packed away")
	g.log.Info("object removed", zap.String("name", p.Name))
}

func (g *Game) clickInventory() {
	switch {
	case g.ui.prevPage.Contains(g.cursor):
		g.inventory.PrevPage()
		return
	case g.ui.nextPage.Contains(g.cursor):
		g.inventory.NextPage()
		return
	case g.ui.destroyBtn.Contains(g.cursor):
		g.destruct.Toggle()
		g.state = StateDestruction
		return
	}
	for _, s := range g.ui.slots {
		if !s.rect.Contains(g.cursor) {
			continue
		}
		if s.item.Placed {
			g.popups.Push(fmt.Sprintf("already on display on %s", assets.FloorNames[s.item.Room]))
			return
		}
		if g.build.CanBuildIn(g.floor) {
			g.build.Select(s.item)
			g.state = StateBuild
		} else {
			g.popups.Push("no building on this floor")
		}
		return
	}
}

func (g *Game) clickShop() {
	switch {
	case g.ui.prevPage.Contains(g.cursor):
		g.shop.PrevPage()
		return
	case g.ui.nextPage.Contains(g.cursor):
		g.shop.NextPage()
		return
	}
	for _, s := range g.ui.slots {
		if !s.rect.Contains(g.cursor) {
			continue
		}
		item := s.item
		g.confirms.Push(&Prompt{
			Text: fmt.Sprintf("buy %s for %d gold?", item.Name, item.Price),
			OnYes: func() {
				if g.money < item.Price {
					g.popups.Push("not enough gold")
					return
				}
				g.money -= item.Price
				g.shop.Remove(item)
				g.inventory.Add(item)
				g.popups.Push(item.Name + " acquired")
				g.log.Info("item bought",
					zap.String("name", item.Name),
					zap.Int("price", item.Price),
				)
			},
		})
		return
	}
}

func (g *Game) clickConfirmation() {
	switch {
	case g.ui.yes.Contains(g.cursor):
		g.confirms.Resolve(true)
	case g.ui.no.Contains(g.cursor):
		g.confirms.Resolve(false)
	}
}

func (g *Game) clickPaused() {
	switch {
	case g.ui.resumeBtn.Contains(g.cursor):
		g.state = StateInteraction
	case g.ui.quitBtn.Contains(g.cursor):
		g.quit = true
	}
}

// endDialog clears the dialogue pause.
func (g *Game) endDialog() {
	g.talk.Selected.Reset()
}

// update advances one simulation frame. Timers fire first, then
// animations and bots, then the confirmation override re-check. Pause
// and dialogue suppress the simulation but never the draw.
func (g *Game) update(now time.Time) {
	g.frame++

	switch g.state {
	case StatePaused:
		// frozen completely
	case StateDialog:
		g.talk.Update()
		g.popups.Update()
	case StateConfirmation:
		g.popups.Update()
	case StateTransition:
		g.fade -= 0.05
		g.popups.Update()
		if g.fade <= 0 {
			g.fade = 0
			g.state = StateInteraction
			if c := g.pending; c != nil {
				g.pending = nil
				g.playCutscene(*c)
			}
		}
	default:
		g.timers.Tick(now)
		for _, rm := range g.tower.Rooms {
			rm.AdvanceSprites()
		}
		g.bots.Update()
		if g.state == StateBuild {
			g.build.UpdateGhost(g.cursor)
		}
		g.popups.Update()
	}

	// A pushed prompt overrides whatever mode is active; the stack
	// emptying falls back to Interaction, not the interrupted mode.
	if !g.confirms.Empty() {
		g.state = StateConfirmation
	} else if g.state == StateConfirmation {
		g.state = StateInteraction
	}
}

package game

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"bot-atelier/assets"
	"bot-atelier/internal/config"
	"bot-atelier/internal/grid"
	"bot-atelier/internal/object"
)

// testSession builds a headless game with story scenes disabled.
func testSession(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Gameplay.NoStory = true
	g, err := newSession(cfg, zap.NewNop(), nil, "unused.yaml")
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	return g
}

func findDoor(g *Game, kind object.Kind) *object.Placeable {
	for _, p := range g.room().Placed {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

func TestLockedFloorWithoutMoneyIsRejected(t *testing.T) {
	g := testSession(t)
	g.money = 0

	door := findDoor(g, object.KindDoorUp)
	if door == nil {
		t.Fatal("no stairs up in the lobby")
	}
	g.clickDoor(door, +1)

	if g.floor != assets.StartRoom {
		t.Fatalf("floor = %d, want %d", g.floor, assets.StartRoom)
	}
	if g.state != StateInteraction {
		t.Fatalf("state = %v, want interaction", g.state)
	}
	if got := len(g.popups.Items()); got != 1 {
		t.Fatalf("popups = %d, want exactly 1", got)
	}
}

func TestOffLimitsFloorChange(t *testing.T) {
	g := testSession(t)
	g.floor = 0

	door := findDoor(g, object.KindDoorDown)
	if door == nil {
		t.Fatal("no stairs down in the atelier")
	}
	g.clickDoor(door, -1)

	if g.floor != 0 {
		t.Fatalf("floor = %d, want 0", g.floor)
	}
	if got := len(g.popups.Items()); got != 1 {
		t.Fatalf("popups = %d, want 1", got)
	}
}

func TestUnlockFloorFlow(t *testing.T) {
	g := testSession(t)
	g.money = 500
	base := time.Now()
	g.update(base)

	door := findDoor(g, object.KindDoorUp)
	g.clickDoor(door, +1) // floor 2 costs 100

	g.update(base)
	if g.state != StateConfirmation {
		t.Fatalf("state = %v, want confirmation", g.state)
	}

	g.confirms.Resolve(true)
	if g.money != 400 {
		t.Fatalf("money = %d, want 400", g.money)
	}
	if !g.unlocks.FloorUnlocked(2) {
		t.Fatal("floor 2 not unlocked")
	}

	// confirmation stack is empty again; the swap waits on the door timer
	g.update(base)
	if g.state != StateInteraction {
		t.Fatalf("state = %v, want interaction", g.state)
	}
	g.update(base.Add(time.Second))
	if g.floor != 2 {
		t.Fatalf("floor = %d, want 2", g.floor)
	}
	if g.state != StateTransition {
		t.Fatalf("state = %v, want transition", g.state)
	}

	// the reveal runs down to zero and hands back control
	for i := 0; i < 30 && g.state == StateTransition; i++ {
		g.update(base.Add(2 * time.Second))
	}
	if g.state != StateInteraction {
		t.Fatalf("state after transition = %v, want interaction", g.state)
	}
}

func TestConfirmationUnwindsToInteraction(t *testing.T) {
	g := testSession(t)
	g.state = StateShop

	g.confirms.Push(&Prompt{Text: "sure?"})
	g.update(time.Now())
	if g.state != StateConfirmation {
		t.Fatalf("state = %v, want confirmation", g.state)
	}

	g.confirms.Resolve(false)
	g.update(time.Now())
	// deliberately Interaction, not the interrupted Shop mode
	if g.state != StateInteraction {
		t.Fatalf("state = %v, want interaction", g.state)
	}
}

func TestPlacementCommitsIntoRoom(t *testing.T) {
	g := testSession(t)
	item := assets.NewProp(assets.Catalog["fern"])
	g.inventory.Add(item)

	g.build.Select(item)
	g.state = StateBuild
	g.cursor = grid.Point{X: 300, Y: 400}
	g.build.UpdateGhost(g.cursor)

	before := g.beauty()
	g.clickBuild()

	if g.state != StateInventory {
		t.Fatalf("state = %v, want inventory", g.state)
	}
	if !item.Placed {
		t.Fatal("item not marked placed")
	}
	if !g.room().HasName("fern") {
		t.Fatal("fern not in the room")
	}
	if g.beauty() <= before {
		t.Fatalf("beauty = %v, want > %v", g.beauty(), before)
	}
}

func TestDestructionRespectsFixtures(t *testing.T) {
	g := testSession(t)
	g.destruct.Toggle()
	g.state = StateDestruction

	desk := g.tower.Desk
	g.cursor = desk.Pos
	g.clickDestruction()

	if !g.room().HasName("desk") {
		t.Fatal("desk was removed")
	}
	if got := len(g.popups.Items()); got != 1 {
		t.Fatalf("popups = %d, want 1", got)
	}
}

func TestInventoryToggleKey(t *testing.T) {
	g := testSession(t)

	g.handleKey(ActionInventory)
	if g.state != StateInventory {
		t.Fatalf("state = %v, want inventory", g.state)
	}
	g.handleKey(ActionInventory)
	if g.state != StateInteraction {
		t.Fatalf("state = %v, want interaction", g.state)
	}
}

func TestEscapeFromBuildClearsSelection(t *testing.T) {
	g := testSession(t)
	item := assets.NewProp(assets.Catalog["fern"])
	g.build.Select(item)
	g.state = StateBuild

	g.handleKey(ActionEscape)
	if g.state != StateInteraction {
		t.Fatalf("state = %v, want interaction", g.state)
	}
	if g.build.Active() {
		t.Fatal("build selection survived escape")
	}
}

func TestPauseSuppressesSimulation(t *testing.T) {
	g := testSession(t)
	g.state = StatePaused

	fired := false
	g.timers.Schedule(0, func() { fired = true })
	g.update(time.Now().Add(time.Hour))
	if fired {
		t.Fatal("timer fired while paused")
	}

	g.state = StateInteraction
	g.update(time.Now().Add(time.Hour))
	if !fired {
		t.Fatal("timer did not fire after unpausing")
	}
}

func TestAutoCashierUnlock(t *testing.T) {
	g := testSession(t)
	g.money = 1000
	g.unlocks.DiscoverFeature(assets.FeatureAutoCashier)

	timersBefore := g.timers.Len()
	g.clickAutoCashier()
	g.confirms.Resolve(true)

	cost := assets.FeatureCost[assets.FeatureAutoCashier]
	if g.money != 1000-cost {
		t.Fatalf("money = %d, want %d", g.money, 1000-cost)
	}
	if !g.unlocks.FeatureUnlocked(assets.FeatureAutoCashier) {
		t.Fatal("feature not unlocked")
	}
	if g.tower.Rooms[4].HasName("auto cashier") {
		t.Fatal("machine still in the grand hall")
	}
	if g.timers.Len() != timersBefore+1 {
		t.Fatalf("timers = %d, want %d", g.timers.Len(), timersBefore+1)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := testSession(t)
	g.money = 321
	item := assets.NewProp(assets.Catalog["fern"])
	g.inventory.Add(item)
	g.build.Select(item)
	g.build.UpdateGhost(grid.Point{X: 300, Y: 400})
	g.room().Add(g.build.Commit(g.floor))
	g.build.Clear()

	rec := g.snapshot()
	if rec.Gold != 321 {
		t.Fatalf("gold = %d, want 321", rec.Gold)
	}
	if len(rec.Inventory) != 1 {
		t.Fatalf("inventory = %d, want 1", len(rec.Inventory))
	}
	if !rec.Inventory[0].Placed || rec.Inventory[0].Room != g.floor {
		t.Fatalf("saved item = %+v, want placed in room %d", rec.Inventory[0], g.floor)
	}

	cfg := config.Default()
	cfg.Gameplay.NoStory = true
	g2, err := newSession(cfg, zap.NewNop(), rec, "unused.yaml")
	if err != nil {
		t.Fatalf("restore session: %v", err)
	}
	if g2.money != 321 {
		t.Fatalf("restored money = %d, want 321", g2.money)
	}
	if !g2.tower.Rooms[g.floor].HasName("fern") {
		t.Fatal("placed fern not reinserted on load")
	}
}

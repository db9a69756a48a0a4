package game

import (
	"fmt"
	"math/rand"
	"time"

	"bot-atelier/assets"
	"bot-atelier/internal/grid"
	"bot-atelier/internal/object"
	"bot-atelier/internal/timer"
)

// botSpeed is the horizontal walk speed in pixels per frame.
const botSpeed = 2

// Bot is one visitor robot. Bots are dynamic actors, not placeables:
// they never enter the room store and never collide with placements.
type Bot struct {
	Name   string
	Sprite *object.Sprite
	Room   int
	Pos    grid.Point

	target  int // x the bot is walking toward
	waiting bool
	wander  timer.Handle
}

// Rect returns the bot's hit-test rectangle.
func (b *Bot) Rect() grid.Rect {
	w, h := b.Sprite.Size()
	return grid.NewRect(b.Pos, w*grid.Unit, h*grid.Unit)
}

// Hivemind owns every visitor bot: the arrival distributor, the lobby
// admission queue, and per-bot wandering.
type Hivemind struct {
	rng    *rand.Rand
	timers *timer.Manager
	bots   []*Bot
	queue  []*Bot // waiting at the desk, arrival order

	beauty func() float64
	floors func() []int // floors bots may wander to
	minted int
}

// NewHivemind wires the distributor. beauty feeds the arrival chance;
// floors limits wandering to unlocked rooms.
func NewHivemind(rng *rand.Rand, timers *timer.Manager, beauty func() float64, floors func() []int) *Hivemind {
	h := &Hivemind{rng: rng, timers: timers, beauty: beauty, floors: floors}
	timers.ScheduleRepeatRange(8*time.Second, 15*time.Second, h.distribute)
	return h
}

// distribute rolls for a new arrival. A prettier museum draws visitors
// faster; an empty one still gets the occasional stray.
func (h *Hivemind) distribute() {
	chance := 0.15 + h.beauty()/2000
	if chance > 0.9 {
		chance = 0.9
	}
	if h.rng.Float64() > chance {
		return
	}
	if len(h.queue) >= 4 {
		return // desk line is full
	}
	h.Spawn()
}

// Spawn puts a fresh bot at the lobby entrance and queues it for the
// desk, skipping the arrival roll.
func (h *Hivemind) Spawn() {
	h.minted++
	b := &Bot{
		Name:    fmt.Sprintf("bot-%03d", h.minted),
		Sprite:  object.NewAnimation(assets.BotFrames, 20, true),
		Room:    assets.StartRoom,
		waiting: true,
	}
	w, sh := b.Sprite.Size()
	b.Pos = grid.Snap(grid.Point{X: assets.ScreenW - w*grid.Unit, Y: assets.FloorY - sh*grid.Unit})
	// shuffle toward the desk, stacked behind the current line
	b.target = 180 + len(h.queue)*w*grid.Unit*2
	h.bots = append(h.bots, b)
	h.queue = append(h.queue, b)
}

// Waiting returns how many bots are queued at the desk.
func (h *Hivemind) Waiting() int { return len(h.queue) }

// Admit lets the first queued bot in and returns its entry fee, or
// (0, false) when nobody is waiting.
func (h *Hivemind) Admit() (fee int, ok bool) {
	if len(h.queue) == 0 {
		return 0, false
	}
	b := h.queue[0]
	h.queue = h.queue[1:]
	b.waiting = false
	h.startWandering(b)
	return 10 + int(h.beauty()/50), true
}

// startWandering gives the bot its roaming timer.
func (h *Hivemind) startWandering(b *Bot) {
	b.wander = h.timers.ScheduleRepeatRange(3*time.Second, 8*time.Second, func() {
		floors := h.floors()
		if len(floors) > 0 && h.rng.Float64() < 0.3 {
			b.Room = floors[h.rng.Intn(len(floors))]
		}
		w, _ := b.Sprite.Size()
		b.target = h.rng.Intn(assets.ScreenW-w*grid.Unit)
	})
}

// Update walks every bot one step toward its target and advances its
// sprite. Runs once per unpaused frame.
func (h *Hivemind) Update() {
	for _, b := range h.bots {
		switch {
		case b.Pos.X < b.target-botSpeed:
			b.Pos.X += botSpeed
		case b.Pos.X > b.target+botSpeed:
			b.Pos.X -= botSpeed
		}
		b.Sprite.Advance()
	}
}

// InRoom returns the bots currently in room n.
func (h *Hivemind) InRoom(n int) []*Bot {
	var out []*Bot
	for _, b := range h.bots {
		if b.Room == n {
			out = append(out, b)
		}
	}
	return out
}

// BotAt returns the bot in room n under pt, or nil. Later arrivals are
// drawn on top, so scan back to front.
func (h *Hivemind) BotAt(n int, pt grid.Point) *Bot {
	for i := len(h.bots) - 1; i >= 0; i-- {
		b := h.bots[i]
		if b.Room == n && b.Rect().Contains(pt) {
			return b
		}
	}
	return nil
}

// Evict removes b and cancels its wander timer.
func (h *Hivemind) Evict(b *Bot) {
	b.wander.Stop()
	for i, x := range h.bots {
		if x == b {
			h.bots = append(h.bots[:i], h.bots[i+1:]...)
			break
		}
	}
	for i, x := range h.queue {
		if x == b {
			h.queue = append(h.queue[:i], h.queue[i+1:]...)
			break
		}
	}
}

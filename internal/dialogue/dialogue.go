// Package dialogue implements the typewriter text sequencer used for bot
// chatter, story dialogues, and cutscene captions.
package dialogue

import "math/rand"

// PageSize is the number of dialogue lines shown per page.
const PageSize = 5

// Dialogue is an ordered sequence of lines with a monotonically
// increasing cursor. Each Update reveals one more character of the
// current line; Advance only moves the cursor once the reveal animation
// has caught up, so the player can't skip ahead mid-type.
type Dialogue struct {
	lines    []string
	part     int
	revealed []rune
	visible  []string // revealed text of the current page's lines
	page     int
}

// New creates a dialogue positioned at its first line.
func New(lines []string) *Dialogue {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &Dialogue{lines: lines}
}

// Update advances the reveal animation by exactly one character when the
// revealed buffer is shorter than the target line, and maintains the
// visible-line buffer for the current page. Call once per frame while the
// dialogue is shown.
func (d *Dialogue) Update() {
	target := []rune(d.lines[d.part])
	if len(d.revealed) < len(target) {
		d.revealed = append(d.revealed, target[len(d.revealed)])
	}

	// Crossing a page boundary flushes the visible buffer before it
	// repopulates with the new page's lines.
	if p := d.part / PageSize; p != d.page {
		d.page = p
		d.visible = d.visible[:0]
	}

	idx := d.part - d.page*PageSize
	if len(d.visible) <= idx {
		d.visible = append(d.visible, string(d.revealed))
	} else {
		d.visible[idx] = string(d.revealed)
	}
}

// caughtUp reports whether the current line is fully revealed.
func (d *Dialogue) caughtUp() bool {
	return string(d.revealed) == d.lines[d.part]
}

// Advance moves to the next line. It is a no-op on the last line or while
// the reveal animation is still typing.
func (d *Dialogue) Advance() {
	if d.IsOnLastPart() || !d.caughtUp() {
		return
	}
	d.part++
	d.revealed = d.revealed[:0]
}

// IsOnLastPart reports whether the cursor sits on the final line.
func (d *Dialogue) IsOnLastPart() bool {
	return d.part == len(d.lines)-1
}

// Part returns the cursor position.
func (d *Dialogue) Part() int { return d.part }

// Page returns the current page index.
func (d *Dialogue) Page() int { return d.page }

// Visible returns the revealed text of the current page, one entry per
// started line.
func (d *Dialogue) Visible() []string { return d.visible }

// Reset rewinds the dialogue to its beginning.
func (d *Dialogue) Reset() {
	d.part = 0
	d.page = 0
	d.revealed = d.revealed[:0]
	d.visible = d.visible[:0]
}

// Manager owns the ambient dialogue pool and the named story dialogues,
// and tracks which one is playing.
type Manager struct {
	pool     []*Dialogue
	special  map[string]*Dialogue
	Selected *Dialogue
	Speaker  string // name shown in the prompt prefix
}

// NewManager builds a manager from the ambient pool and the named story
// dialogues. Each line set becomes its own Dialogue instance.
func NewManager(pool [][]string, special map[string][]string) *Manager {
	m := &Manager{special: make(map[string]*Dialogue)}
	for _, lines := range pool {
		m.pool = append(m.pool, New(lines))
	}
	for name, lines := range special {
		m.special[name] = New(lines)
	}
	m.Selected = New([]string{"you shouldn't see this message"})
	return m
}

// Random selects a random ambient dialogue and rewinds it.
func (m *Manager) Random(rng *rand.Rand) {
	m.Selected.Reset()
	if len(m.pool) == 0 {
		return
	}
	m.Selected = m.pool[rng.Intn(len(m.pool))]
	m.Selected.Reset()
}

// Special selects the named story dialogue. Unknown names are a content
// wiring bug and fail loudly.
func (m *Manager) Special(name string) {
	d, ok := m.special[name]
	if !ok {
		panic("dialogue: unknown special dialogue " + name)
	}
	m.Selected.Reset()
	m.Selected = d
	m.Selected.Reset()
}

// ClickInteraction handles a click on the dialogue box. It returns true
// when the dialogue is finished (cursor on the last line); otherwise it
// advances and returns false.
func (m *Manager) ClickInteraction() bool {
	if m.Selected.IsOnLastPart() {
		return true
	}
	m.Selected.Advance()
	return false
}

// Update advances the selected dialogue's reveal animation.
func (m *Manager) Update() {
	m.Selected.Update()
}

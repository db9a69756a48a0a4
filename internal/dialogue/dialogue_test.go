package dialogue

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// settle runs Update until the current line is fully revealed.
func settle(d *Dialogue) {
	for i := 0; i < 10000; i++ {
		d.Update()
		if d.caughtUp() {
			return
		}
	}
	panic("line never caught up")
}

func TestTypewriterRevealsOneRunePerUpdate(t *testing.T) {
	d := New([]string{"hello"})
	for i := 1; i <= 5; i++ {
		d.Update()
		if got := string(d.revealed); got != "hello"[:i] {
			t.Fatalf("after %d updates revealed = %q, want %q", i, got, "hello"[:i])
		}
	}
	// Fully revealed: further updates change nothing.
	d.Update()
	if string(d.revealed) != "hello" {
		t.Fatal("update past full reveal mutated the buffer")
	}
}

func TestAdvanceBlockedMidType(t *testing.T) {
	d := New([]string{"first line", "second"})
	d.Update() // one rune revealed
	d.Advance()
	if d.Part() != 0 {
		t.Fatal("Advance skipped ahead while still typing")
	}
	settle(d)
	d.Advance()
	if d.Part() != 1 {
		t.Fatal("Advance did not move after reveal caught up")
	}
}

func TestAdvanceStopsOnLastLine(t *testing.T) {
	d := New([]string{"only"})
	settle(d)
	if !d.IsOnLastPart() {
		t.Fatal("single-line dialogue should be on its last part")
	}
	d.Advance()
	if d.Part() != 0 {
		t.Fatal("Advance moved past the last line")
	}
}

func TestPagination(t *testing.T) {
	var lines []string
	for i := 0; i < 12; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	d := New(lines)

	// Pages group as [0-4], [5-9], [10-11].
	wantPage := func(part, page int) {
		t.Helper()
		if d.Part() != part || d.Page() != page {
			t.Fatalf("part=%d page=%d, want part=%d page=%d", d.Part(), d.Page(), part, page)
		}
	}

	for i := 0; i < 4; i++ {
		settle(d)
		d.Advance()
	}
	d.Update()
	wantPage(4, 0)
	if len(d.Visible()) != 5 {
		t.Fatalf("page 0 visible lines = %d, want 5", len(d.Visible()))
	}

	// Crossing into page 1 resets the visible buffer before refilling.
	settle(d)
	d.Advance()
	d.Update()
	wantPage(5, 1)
	if len(d.Visible()) != 1 {
		t.Fatalf("after page turn visible lines = %d, want 1", len(d.Visible()))
	}
	if !strings.HasPrefix("line 5", d.Visible()[0]) {
		t.Fatalf("visible[0] = %q, want a prefix of %q", d.Visible()[0], "line 5")
	}

	for i := 5; i < 10; i++ {
		settle(d)
		d.Advance()
	}
	d.Update()
	wantPage(10, 2)
	if len(d.Visible()) != 1 {
		t.Fatalf("page 2 starts with %d visible lines, want 1", len(d.Visible()))
	}
}

func TestReset(t *testing.T) {
	d := New([]string{"a", "b", "c"})
	settle(d)
	d.Advance()
	settle(d)
	d.Reset()
	if d.Part() != 0 || d.Page() != 0 || len(d.Visible()) != 0 || len(d.revealed) != 0 {
		t.Fatal("Reset left state behind")
	}
}

func TestManagerClickInteraction(t *testing.T) {
	m := NewManager([][]string{{"hey", "bye"}}, nil)
	m.Random(rand.New(rand.NewSource(1)))

	settle(m.Selected)
	if m.ClickInteraction() {
		t.Fatal("dialogue reported finished on its first line")
	}
	settle(m.Selected)
	if !m.ClickInteraction() {
		t.Fatal("dialogue not finished on its last line")
	}
}

func TestManagerSpecial(t *testing.T) {
	m := NewManager(nil, map[string][]string{
		"shop discovery": {"welcome to the shop"},
	})
	m.Special("shop discovery")
	settle(m.Selected)
	if got := m.Selected.Visible()[0]; got != "welcome to the shop" {
		t.Fatalf("visible = %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("unknown special dialogue should panic")
		}
	}()
	m.Special("no such dialogue")
}

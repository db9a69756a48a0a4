package game

import (
	"testing"

	"bot-atelier/internal/save"
)

func TestPopupExpiry(t *testing.T) {
	var q PopupQueue
	q.Push("first")
	q.Push("second")

	for i := 0; i < PopupLifetime-1; i++ {
		q.Update()
	}
	if got := len(q.Items()); got != 2 {
		t.Fatalf("popups = %d, want 2 one frame before expiry", got)
	}
	q.Update()
	if got := len(q.Items()); got != 0 {
		t.Fatalf("popups = %d, want 0 after lifetime", got)
	}
}

func TestPopupOrderIsFIFO(t *testing.T) {
	var q PopupQueue
	q.Push("first")
	q.Push("second")
	items := q.Items()
	if items[0].Text != "first" || items[1].Text != "second" {
		t.Fatalf("order = [%s %s], want [first second]", items[0].Text, items[1].Text)
	}
}

func TestConfirmStackIsLIFO(t *testing.T) {
	var s ConfirmStack
	s.Push(&Prompt{Text: "outer"})
	s.Push(&Prompt{Text: "inner"})

	if s.Top().Text != "inner" {
		t.Fatalf("top = %s, want inner", s.Top().Text)
	}
	s.Resolve(false)
	if s.Top().Text != "outer" {
		t.Fatalf("top = %s, want outer", s.Top().Text)
	}
	s.Resolve(false)
	if !s.Empty() {
		t.Fatal("stack not empty")
	}
}

func TestResolvePopsBeforeCallback(t *testing.T) {
	var s ConfirmStack
	s.Push(&Prompt{
		Text: "outer",
		OnYes: func() {
			s.Push(&Prompt{Text: "follow-up"})
		},
	})

	s.Resolve(true)
	if s.Top() == nil || s.Top().Text != "follow-up" {
		t.Fatal("follow-up prompt not on top")
	}
	if len(s.prompts) != 1 {
		t.Fatalf("stack depth = %d, want 1", len(s.prompts))
	}
}

func TestUnlockSnapshotRoundTrip(t *testing.T) {
	m := NewUnlockManager(save.Unlocks{})
	m.UnlockFloor(2)
	m.DiscoverFloor(2)
	m.UnlockFeature("color")
	m.DiscoverFeature("color")

	u := m.Snapshot()
	m2 := NewUnlockManager(u)
	if !m2.FloorUnlocked(2) || !m2.FeatureUnlocked("color") {
		t.Fatal("round trip lost unlock state")
	}
	if m2.DiscoverFloor(2) {
		t.Fatal("round trip lost floor discovery")
	}
	if m2.DiscoverFeature("color") {
		t.Fatal("round trip lost feature discovery")
	}
}

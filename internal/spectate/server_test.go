package spectate

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"bot-atelier/assets"
	"bot-atelier/internal/save"
)

func TestLoadMuseumMissingSave(t *testing.T) {
	s := New(":0", nil, filepath.Join(t.TempDir(), "absent.yaml"), zap.NewNop())

	tower, rec, err := s.loadMuseum()
	if err != nil {
		t.Fatalf("loadMuseum: %v", err)
	}
	if rec == nil {
		t.Fatal("nil record for a fresh museum")
	}
	if !tower.Rooms[assets.MaxFloor].HasName("telescope") {
		t.Fatal("observatory telescope missing")
	}
}

func TestLoadMuseumReinsertsPlacedExhibits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "museum.yaml")
	rec := assets.DefaultRecord()
	rec.Inventory = append(rec.Inventory, save.Item{
		Name:   "fern",
		Placed: true,
		Room:   3,
		X:      300,
		Y:      402,
	})
	if err := rec.Write(path); err != nil {
		t.Fatalf("write save: %v", err)
	}

	s := New(":0", nil, path, zap.NewNop())
	tower, _, err := s.loadMuseum()
	if err != nil {
		t.Fatalf("loadMuseum: %v", err)
	}
	if !tower.Rooms[3].HasName("fern") {
		t.Fatal("placed fern not reinserted")
	}
	if tower.Rooms[1].HasName("fern") {
		t.Fatal("fern leaked into the wrong room")
	}
}

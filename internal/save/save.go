// Package save defines the persisted session record: money, inventory,
// shop stock, unlock state, and beauty. It is the only persisted-state
// contract the game owns; there are no versioning or migration
// guarantees.
package save

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Item is one owned or purchasable placeable. Name keys into the asset
// catalog; Sprite and Beauty are only set for minted items (painted
// canvases) whose surface is not in the catalog.
type Item struct {
	Name   string   `yaml:"name"`
	Placed bool     `yaml:"placed,omitempty"`
	Room   int      `yaml:"room,omitempty"`
	X      int      `yaml:"x,omitempty"`
	Y      int      `yaml:"y,omitempty"`
	Beauty float64  `yaml:"beauty,omitempty"`
	Sprite []string `yaml:"sprite,omitempty"`
}

// Unlocks is the progression state.
type Unlocks struct {
	UnlockedFloors     []int    `yaml:"unlocked_floors,flow"`
	DiscoveredFloors   []int    `yaml:"discovered_floors,flow"`
	UnlockedFeatures   []string `yaml:"unlocked_features,omitempty"`
	DiscoveredFeatures []string `yaml:"discovered_features,omitempty"`
}

// Record is the full session snapshot produced at session end and
// consumed at session start.
type Record struct {
	Gold      int     `yaml:"gold"`
	Beauty    float64 `yaml:"beauty"`
	Inventory []Item  `yaml:"inventory"`
	Shop      []Item  `yaml:"shop"`
	Unlocks   Unlocks `yaml:"unlocks"`
}

// Load reads the record at path. A missing file returns (nil, nil): the
// caller starts a fresh session from the default save.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read save %s: %w", path, err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse save %s: %w", path, err)
	}
	return &rec, nil
}

// Write stores the record at path, replacing any previous save.
func (r *Record) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write save %s: %w", path, err)
	}
	return nil
}

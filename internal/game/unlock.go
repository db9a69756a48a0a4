package game

import (
	"sort"

	"bot-atelier/assets"
	"bot-atelier/internal/save"
)

// UnlockManager tracks which floors and features have been discovered
// (seen at least once) and unlocked (paid for). Discovery and unlocking
// are separate steps: a floor's first visit plays its cutscene exactly
// once, and a feature's discovery dialogue plays before it can be bought.
type UnlockManager struct {
	unlockedFloors     map[int]bool
	discoveredFloors   map[int]bool
	unlockedFeatures   map[string]bool
	discoveredFeatures map[string]bool
}

// NewUnlockManager restores unlock state from a save record.
func NewUnlockManager(u save.Unlocks) *UnlockManager {
	m := &UnlockManager{
		unlockedFloors:     make(map[int]bool),
		discoveredFloors:   make(map[int]bool),
		unlockedFeatures:   make(map[string]bool),
		discoveredFeatures: make(map[string]bool),
	}
	for _, n := range u.UnlockedFloors {
		m.unlockedFloors[n] = true
	}
	for _, n := range u.DiscoveredFloors {
		m.discoveredFloors[n] = true
	}
	for _, f := range u.UnlockedFeatures {
		m.unlockedFeatures[f] = true
	}
	for _, f := range u.DiscoveredFeatures {
		m.discoveredFeatures[f] = true
	}
	return m
}

func (m *UnlockManager) FloorUnlocked(n int) bool { return m.unlockedFloors[n] }

func (m *UnlockManager) UnlockFloor(n int) { m.unlockedFloors[n] = true }

// DiscoverFloor marks n discovered and reports whether this was the
// first time.
func (m *UnlockManager) DiscoverFloor(n int) bool {
	if m.discoveredFloors[n] {
		return false
	}
	m.discoveredFloors[n] = true
	return true
}

func (m *UnlockManager) FeatureUnlocked(f string) bool { return m.unlockedFeatures[f] }

func (m *UnlockManager) UnlockFeature(f string) { m.unlockedFeatures[f] = true }

// DiscoverFeature marks f discovered and reports whether this was the
// first time.
func (m *UnlockManager) DiscoverFeature(f string) bool {
	if m.discoveredFeatures[f] {
		return false
	}
	m.discoveredFeatures[f] = true
	return true
}

// UnlockAll opens every floor and feature. Cheat path only.
func (m *UnlockManager) UnlockAll() {
	for n := 0; n <= assets.MaxFloor; n++ {
		m.unlockedFloors[n] = true
		m.discoveredFloors[n] = true
	}
	for f := range assets.FeatureCost {
		m.unlockedFeatures[f] = true
		m.discoveredFeatures[f] = true
	}
}

// Snapshot serializes the unlock state for the save record.
func (m *UnlockManager) Snapshot() save.Unlocks {
	var u save.Unlocks
	for n := 0; n <= assets.MaxFloor; n++ {
		if m.unlockedFloors[n] {
			u.UnlockedFloors = append(u.UnlockedFloors, n)
		}
		if m.discoveredFloors[n] {
			u.DiscoveredFloors = append(u.DiscoveredFloors, n)
		}
	}
	for f := range m.unlockedFeatures {
		u.UnlockedFeatures = append(u.UnlockedFeatures, f)
	}
	for f := range m.discoveredFeatures {
		u.DiscoveredFeatures = append(u.DiscoveredFeatures, f)
	}
	sort.Strings(u.UnlockedFeatures)
	sort.Strings(u.DiscoveredFeatures)
	return u
}

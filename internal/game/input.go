package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionEscape
	ActionInventory
	ActionDestruction
	ActionClick
	ActionRightClick
	ActionCheatMoney
	ActionCheatUnlockAll
	ActionCheatFloorUp
	ActionCheatFloorDown
	ActionCheatSpawnBot
)

// keyToAction maps a tcell key event to a game action. Cheat keys are
// reported unconditionally; the caller gates them on the config flag.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape:
		return ActionEscape
	case tcell.KeyF1:
		return ActionCheatMoney
	case tcell.KeyF2:
		return ActionCheatUnlockAll
	case tcell.KeyPgUp:
		return ActionCheatFloorUp
	case tcell.KeyPgDn:
		return ActionCheatFloorDown
	case tcell.KeyF3:
		return ActionCheatSpawnBot
	}
	switch ev.Rune() {
	case 'i', 'I', 'e', 'E':
		return ActionInventory
	case 'x', 'X':
		return ActionDestruction
	}
	return ActionNone
}

// mouseToAction maps a tcell mouse event to a click action. Motion-only
// events return ActionNone; the caller still reads the position.
func mouseToAction(ev *tcell.EventMouse) Action {
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		return ActionClick
	case ev.Buttons()&tcell.Button2 != 0:
		return ActionRightClick
	}
	return ActionNone
}

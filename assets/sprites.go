package assets

// Rune sprites for fixtures and props. Each rune covers one grid unit;
// all rows of a sprite are the same length.

// Staircase doors. The closed→open frames play when a floor change is
// triggered; blink is the idle hover animation.
var (
	DoorClosed = []string{
		"┌─────┐",
		"│▒▒▒▒▒│",
		"│▒▒▒▒▒│",
		"│▒▒▒▒▒│",
		"│▒▒▒▒▒│",
		"└─────┘",
	}
	DoorAjar = []string{
		"┌─────┐",
		"│▒▒▒░░│",
		"│▒▒▒░░│",
		"│▒▒▒░░│",
		"│▒▒▒░░│",
		"└─────┘",
	}
	DoorOpen = []string{
		"┌─────┐",
		"│░░░░░│",
		"│░░░░░│",
		"│░░░░░│",
		"│░░░░░│",
		"└─────┘",
	}
	DoorBlinkA = []string{
		"┌─────┐",
		"│▒▒▒▒▒│",
		"│▒▒◉▒▒│",
		"│▒▒▒▒▒│",
		"│▒▒▒▒▒│",
		"└─────┘",
	}
	DoorBlinkB = []string{
		"┌─────┐",
		"│▒▒▒▒▒│",
		"│▒▒○▒▒│",
		"│▒▒▒▒▒│",
		"│▒▒▒▒▒│",
		"└─────┘",
	}
)

// DoorOpenFrames is the closed→open animation.
var DoorOpenFrames = [][]string{DoorClosed, DoorAjar, DoorOpen}

// DoorCloseFrames is the open→closed animation.
var DoorCloseFrames = [][]string{DoorOpen, DoorAjar, DoorClosed}

// DoorBlinkFrames is the idle hover blink.
var DoorBlinkFrames = [][]string{DoorBlinkA, DoorBlinkB}

// Lobby desk where bots queue to be admitted. The counter top is drawn
// in the foreground pass so bots walk behind it.
var (
	Desk = []string{
		"╔════════╗",
		"║ DESK   ║",
		"║        ║",
		"╚════════╝",
	}
	DeskCounter = []string{
		"▄▄▄▄▄▄▄▄▄▄",
	}
)

// Shop counter on floor 2.
var ShopCounter = []string{
	"╔═══════╗",
	"║ $HOP  ║",
	"║  ▒▒▒  ║",
	"╚═══════╝",
}

// Inventory kiosk in the lobby.
var InventoryKiosk = []string{
	"┌──────┐",
	"│ INV. │",
	"│ ▓▓▓▓ │",
	"└──────┘",
}

// AutoCashier is the dormant machine the player can unlock to admit bots
// automatically.
var AutoCashier = []string{
	"┌────┐",
	"│☼☼☼☼│",
	"│ ▒▒ │",
	"└────┘",
}

// SpectatorWindow is the observatory telescope used to visit other
// museums (online mode only).
var SpectatorWindow = []string{
	"  ◝─◜  ",
	" ╱███╲ ",
	"◟─────◞",
}

// ColorTerminal unlocks canvas colors in the atelier.
var ColorTerminal = []string{
	"┌────┐",
	"│RGB▒│",
	"└────┘",
}

// CanvasFrame is the paintable canvas in the atelier.
var CanvasFrame = []string{
	"┏━━━━━━━━┓",
	"┃········┃",
	"┃········┃",
	"┃········┃",
	"┃········┃",
	"┃········┃",
	"┗━━━━━━━━┛",
}

// Bot idle animation, two frames.
var BotFrames = [][]string{
	{
		" ▄▄ ",
		"[◉◉]",
		" ││ ",
	},
	{
		" ▄▄ ",
		"[◎◎]",
		" ││ ",
	},
}

package assets

// BotChatter is the ambient dialogue pool bots draw from when clicked.
var BotChatter = [][]string{
	{
		"oh. a visitor.",
		"i was told there would be art here.",
		"i have been staring at this wall for three cycles.",
		"it is a good wall.",
	},
	{
		"query: what is beauty?",
		"my heuristics say it is plants.",
		"please acquire more plants.",
	},
	{
		"the desk unit let me in.",
		"i left a tip. it was a screw.",
		"i hope that was appropriate.",
	},
	{
		"do you repaint the canvases at night?",
		"i saw the arm move once.",
		"nobody believes me.",
	},
	{
		"this floor hums at 50 hertz.",
		"the one above hums at 60.",
		"i prefer this one.",
		"it reminds me of the factory.",
		"not in a bad way.",
		"mostly.",
	},
}

// StoryDialogues are the named dialogues triggered by progression. Keys
// are referenced from the unlock manager and the cutscene table.
var StoryDialogues = map[string][]string{
	"intro": {
		"you inherit a tower with no art in it.",
		"the bots heard a museum was opening.",
		"they are already queueing outside.",
		"better give them something to look at.",
	},
	"intro introspection": {
		"the lobby is quiet.",
		"for now.",
	},
	"floor2": {
		"the east gallery. dust and potential.",
		"a shop counter sits here from the previous owner.",
	},
	"floor3": {
		"the west gallery catches the morning light.",
		"well. it would, if the windows were cleaned.",
	},
	"floor4": {
		"the grand hall. your steps echo twice.",
		"something in the corner is shaped like a cashier.",
	},
	"floor5": {
		"the observatory. the roof opens to the sky.",
		"this floor is not for decorations.",
		"this floor is for endings.",
	},
	"shop discovery": {
		"the counter flickers on as you approach.",
		"SHOP-9000: welcome, proprietor.",
		"SHOP-9000: i sell objects of verified prettiness.",
		"SHOP-9000: come back when you have money.",
	},
	"inventory discovery": {
		"the kiosk unfolds into a grid of shelves.",
		"everything you own, eight items to a page.",
	},
	"auto cashier discovery": {
		"a dormant machine. its badge reads AUTO-CASHIER.",
		"it could admit bots without you lifting a finger.",
		"it does not look cheap to wake up.",
	},
	"color discovery": {
		"the terminal boots into a palette screen.",
		"grayscale is a choice. it could stop being one.",
	},
	"spectator discovery": {
		"the telescope points at the other towers.",
		"other keepers. other museums.",
		"click the windows to visit one.",
	},
}

// Cutscene describes one scripted sequence: optional frame animation,
// optional dialogue, then an optional introspection dialogue played over
// the live game.
type Cutscene struct {
	Frames        [][]string
	Dialogue      string // StoryDialogues key; empty = skip
	Introspection string // StoryDialogues key; empty = skip
}

// IntroCutscene plays on the very first launch.
var IntroCutscene = Cutscene{
	Frames: [][]string{
		{
			"  ╔══════════╗  ",
			"  ║          ║  ",
			"  ║  ▗▄▄▄▖   ║  ",
			"  ║  ▐ ? ▌   ║  ",
			"  ║  ▝▀▀▀▘   ║  ",
			"  ╚══════════╝  ",
		},
		{
			"  ╔══════════╗  ",
			"  ║   ▗▄▄▄▖  ║  ",
			"  ║   ▐ ! ▌  ║  ",
			"  ║   ▝▀▀▀▘  ║  ",
			"  ║          ║  ",
			"  ╚══════════╝  ",
		},
	},
	Dialogue:      "intro",
	Introspection: "intro introspection",
}

// FloorCutscenes play the first time each floor is entered. Floors 0 and
// 1 are discovered at game start and have no cutscene of their own.
var FloorCutscenes = map[int]Cutscene{
	2: {Dialogue: "floor2"},
	3: {Dialogue: "floor3"},
	4: {Dialogue: "floor4"},
	5: {Dialogue: "floor5"},
}

// FloorCost is the money price to unlock each locked floor.
var FloorCost = map[int]int{
	2: 100,
	3: 300,
	4: 800,
	5: 2000,
}

// FeatureCost is the money price to unlock each discovered feature.
var FeatureCost = map[string]int{
	FeatureAutoCashier: 500,
	FeatureColor:       400,
}

// Feature names used across unlock state, dialogue keys, and save files.
const (
	FeatureShop        = "shop"
	FeatureInventory   = "inventory"
	FeatureAutoCashier = "auto cashier"
	FeatureColor       = "color"
	FeatureSpectator   = "spectator"
)

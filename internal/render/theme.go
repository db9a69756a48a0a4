package render

import "github.com/gdamore/tcell/v2"

// RoomTheme styles one room's background.
type RoomTheme struct {
	Fill  rune        // background texture rune
	Style tcell.Style // background fill style
}

// Themes maps a room's BG name to its look.
var Themes = map[string]RoomTheme{
	"atelier": {
		Fill:  '·',
		Style: tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray).Background(tcell.ColorBlack),
	},
	"lobby": {
		Fill:  '░',
		Style: tcell.StyleDefault.Foreground(tcell.ColorDarkGoldenrod).Background(tcell.ColorBlack),
	},
	"gallery": {
		Fill:  '·',
		Style: tcell.StyleDefault.Foreground(tcell.ColorDimGray).Background(tcell.ColorBlack),
	},
	"hall": {
		Fill:  '▒',
		Style: tcell.StyleDefault.Foreground(tcell.ColorDarkSlateBlue).Background(tcell.ColorBlack),
	},
	"observatory": {
		Fill:  '✦',
		Style: tcell.StyleDefault.Foreground(tcell.ColorMidnightBlue).Background(tcell.ColorBlack),
	},
}

// Shared UI styles.
var (
	StyleDefault   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	StyleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	StyleHover     = tcell.StyleDefault.Foreground(tcell.ColorLightSteelBlue).Background(tcell.ColorBlack)
	StyleDestroy   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	StyleGhostOK   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack)
	StyleGhostBad  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	StyleHologram  = tcell.StyleDefault.Foreground(tcell.ColorNavy).Background(tcell.ColorBlack)
	StylePopup     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	StyleDialogue  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	StyleBeauty    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	StyleMoney     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	StyleWindow    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	StyleYesButton = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorDarkSlateGray)
	StyleNoButton  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorDarkSlateGray)
)

package core

// Color is a cell's foreground. The zero value is the terminal default.
type Color uint8

// Terminal colors used by the HUDs and overlays, then the scenery tones.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSky
	ColorDusk
	ColorGrass
	ColorForest
	ColorAsphalt
	ColorGold

	colorCount
)

// ansi256 is the xterm 256-color code for each Color.
var ansi256 = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorSky:           "117",
	ColorDusk:          "61",
	ColorGrass:         "34",
	ColorForest:        "22",
	ColorAsphalt:       "238",
	ColorGold:          "220",
}

// ANSI returns the 256-color code for c, or "" for the terminal default and
// for values outside the palette.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansi256[c]
}

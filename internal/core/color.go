package core

// Color is a cell color in "#RRGGBB" form, as carried by level themes.
// The zero value keeps the terminal's default color.
type Color string

// ColorDefault leaves the terminal color untouched.
const ColorDefault Color = ""

// Fixed colors for overlay and HUD elements that are not part of a level theme.
const (
	ColorWhite   Color = "#FFFFFF"
	ColorBlack   Color = "#000000"
	ColorOverlay Color = "#1E1E1E"
)

// Cell is a single styled character of a Screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// blankCell is what Clear writes into every cell.
var blankCell = Cell{Rune: ' '}

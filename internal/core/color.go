package core

// Color selects the style of a screen cell. The platform layer maps each
// color to a terminal style.
type Color uint8

// Text colors.
const (
	ColorDefault Color = iota
	ColorBoard         // grid lines on the board background
	ColorMuted         // HUD hints
	ColorAccent        // titles and the menu cursor
	ColorWarning       // messages such as "no move possible"
)

// Tile colors, one per exponent. ColorTile0 is an empty cell; exponents past
// the last entry share ColorTileMax.
const (
	ColorTile0 Color = iota + 16
	ColorTile1
	ColorTile2
	ColorTile3
	ColorTile4
	ColorTile5
	ColorTile6
	ColorTile7
	ColorTile8
	ColorTile9
	ColorTile10
	ColorTile11
	ColorTileMax
)

// TileColor returns the color for a cell exponent.
func TileColor(exp int) Color {
	return ColorTile0 + Color(Clamp(exp, 0, int(ColorTileMax-ColorTile0)))
}

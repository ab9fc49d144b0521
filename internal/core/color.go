package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by the world view.
const (
	ColorDefault Color = iota
	ColorWall
	ColorFloor
	ColorSolid
	ColorActor
	ColorExit
	ColorText
	ColorDim
	ColorAccent
)

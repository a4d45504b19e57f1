package forest

import "image/color"

// Display codes written by Cells. They index into Palette.
const (
	CodeEmpty uint8 = iota
	CodeTree
	CodeFire
	CodeAsh
	CodeSmoulder
)

var forestPalette = []color.RGBA{
	CodeEmpty:    {R: 255, G: 255, B: 255, A: 255},
	CodeTree:     {R: 34, G: 139, B: 34, A: 255},
	CodeFire:     {R: 220, G: 30, B: 20, A: 255},
	CodeAsh:      {R: 110, G: 110, B: 110, A: 255},
	CodeSmoulder: {R: 255, G: 140, B: 0, A: 255},
}

// Palette exposes the colors used to render the display codes.
func (s *Sim) Palette() []color.RGBA {
	return forestPalette
}

// Cells returns the display codes for the current grid. The slice is owned by
// the sim and rebuilt lazily after each Step or Reset.
func (s *Sim) Cells() []uint8 {
	if !s.displayDirty {
		return s.display
	}
	persistence := uint8(s.cfg.Persistence)
	smoulders := !s.cfg.DecayContagious
	for i, c := range s.cur.Cells() {
		s.display[i] = displayCode(c, persistence, smoulders)
	}
	s.displayDirty = false
	return s.display
}

// displayCode maps a cell to its palette index. A decaying fire is shown as
// smouldering only when it can no longer spread.
func displayCode(c Cell, persistence uint8, smoulders bool) uint8 {
	switch c.State {
	case Tree:
		return CodeTree
	case Fire:
		if smoulders && c.Burn < persistence {
			return CodeSmoulder
		}
		return CodeFire
	case Ash:
		return CodeAsh
	default:
		return CodeEmpty
	}
}

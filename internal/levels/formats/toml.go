package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOMLLevel represents the TOML structure for a level file:
//
//	id = "start"
//	name = "First Steps"
//	grid = '''
//	#####
//	#P  #
//	#####
//	'''
//	[tiles]
//	wall = "#"
//	[exits]
//	east = "hall"
//
// Grids should be written as ''' literal strings, which keep every
// character as typed. A """ basic string applies TOML escapes, so a
// backslash in the grid is either consumed or rejected. Unknown keys are
// errors.
type TOMLLevel struct {
	ID       string            `toml:"id"`
	Name     string            `toml:"name"`
	Grid     string            `toml:"grid"`
	Sequence string            `toml:"sequence"`
	Tiles    Tiles             `toml:"tiles"`
	Spawn    *Point            `toml:"spawn"`
	Exits    map[string]string `toml:"exits"`
	Metadata map[string]string `toml:"metadata"`
}

func init() {
	Register(".toml", ParseTOML)
}

// ParseTOML parses a TOML level file.
func ParseTOML(data []byte) (Level, error) {
	var tl TOMLLevel
	md, err := toml.Decode(string(data), &tl)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Level{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}

	return Level{
		ID:       tl.ID,
		Name:     tl.Name,
		Grid:     tl.Grid,
		Tiles:    tl.Tiles,
		Spawn:    tl.Spawn,
		Exits:    tl.Exits,
		Sequence: tl.Sequence,
		Metadata: tl.Metadata,
	}, nil
}

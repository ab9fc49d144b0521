package levels

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/levels/formats"
	"github.com/vovakirdan/tilewalk/internal/physics"
	"github.com/vovakirdan/tilewalk/internal/world"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func TestParseASCII(t *testing.T) {
	layout, err := ParseASCII("\n####\n#P\n####\n\n", DefaultLegend())
	if err != nil {
		t.Fatalf("ParseASCII failed: %v", err)
	}

	want := []string{"####", "#   ", "####"}
	if len(layout.Rows) != len(want) {
		t.Fatalf("Rows = %q, expected %q", layout.Rows, want)
	}
	for i := range want {
		if layout.Rows[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, layout.Rows[i], want[i])
		}
	}
	if layout.Spawn != (world.Point{X: 1, Y: 1}) || !layout.HasSpawn {
		t.Errorf("Spawn = %+v (found %v), expected (1, 1)", layout.Spawn, layout.HasSpawn)
	}
	if layout.Width() != 4 || layout.Height() != 3 {
		t.Errorf("size = %dx%d, expected 4x3", layout.Width(), layout.Height())
	}
}

func TestParseASCIISpawn(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected world.Point
		found    bool
	}{
		{"default", "###\n# #\n###", DefaultSpawn, false},
		{"single", "####\n#  P\n####", world.Point{X: 3, Y: 1}, true},
		{"last wins", "P  \n  P\n P ", world.Point{X: 1, Y: 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout, err := ParseASCII(tc.text, DefaultLegend())
			if err != nil {
				t.Fatalf("ParseASCII failed: %v", err)
			}
			if layout.Spawn != tc.expected || layout.HasSpawn != tc.found {
				t.Errorf("Spawn = %+v (%v), expected %+v (%v)", layout.Spawn, layout.HasSpawn, tc.expected, tc.found)
			}
			for _, row := range layout.Rows {
				for _, r := range row {
					if r == 'P' {
						t.Errorf("spawn marker left in row %q", row)
					}
				}
			}
		})
	}
}

func TestParseASCIICustomLegendAndCRLF(t *testing.T) {
	legend := Legend{Wall: 'X', Floor: '.', Spawn: '@'}
	layout, err := ParseASCII("XXX\r\nX@\r\nXXX", legend)
	if err != nil {
		t.Fatalf("ParseASCII failed: %v", err)
	}
	if layout.Rows[1] != "X.." {
		t.Errorf("row 1 = %q, expected %q", layout.Rows[1], "X..")
	}
}

func TestParseASCIIEmpty(t *testing.T) {
	for _, text := range []string{"", "\n\n", "   \n"} {
		if _, err := ParseASCII(text, DefaultLegend()); !errors.Is(err, ErrEmptyLayout) {
			t.Errorf("ParseASCII(%q) error = %v, expected ErrEmptyLayout", text, err)
		}
	}
}

func TestFromFormat(t *testing.T) {
	lvl, err := FromFormat(formats.Level{
		ID:    "pond",
		Grid:  "xxxxx\nx.~.x\nxxxxx",
		Tiles: formats.Tiles{Wall: "x", Floor: ".", Solid: "~"},
		Spawn: &formats.Point{X: 3, Y: 1},
	})
	if err != nil {
		t.Fatalf("FromFormat failed: %v", err)
	}

	if lvl.Spawn() != (world.Point{X: 3, Y: 1}) {
		t.Errorf("Spawn() = %+v, expected (3, 1)", lvl.Spawn())
	}

	g, err := lvl.World()
	if err != nil {
		t.Fatalf("World() failed: %v", err)
	}
	if g.Wall() != 'x' {
		t.Errorf("Wall() = %q, expected 'x'", g.Wall())
	}
	if !g.SolidAt(2, 1) {
		t.Error("'~' should be solid")
	}
	if g.SolidAt(1, 1) {
		t.Error("'.' should not be solid")
	}
	if g.At(-1, 0) != 'x' {
		t.Error("out of bounds should report the level's wall symbol")
	}
}

func TestFromFormatBadTile(t *testing.T) {
	_, err := FromFormat(formats.Level{Grid: "##", Tiles: formats.Tiles{Wall: "##"}})
	if !errors.Is(err, ErrBadTile) {
		t.Errorf("FromFormat error = %v, expected ErrBadTile", err)
	}
}

func TestTitle(t *testing.T) {
	l := Level{ID: "a"}
	if l.Title() != "a" {
		t.Errorf("Title() = %q, expected ID", l.Title())
	}
	l.Name = "Alpha"
	if l.Title() != "Alpha" {
		t.Errorf("Title() = %q, expected Name", l.Title())
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.toml is skipped, notes.md is ignored
	ids := make([]string, len(lvls))
	for i, l := range lvls {
		ids[i] = l.ID
	}
	want := []string{"blocked", "lvl01", "lvl02"}
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, expected %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs = %v, expected %v", ids, want)
			break
		}
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Second" {
		t.Errorf("Name = %q, expected Second", lvl.Name)
	}
	if lvl.Spawn() != (world.Point{X: 2, Y: 2}) {
		t.Errorf("Spawn() = %+v, expected (2, 2) from custom marker", lvl.Spawn())
	}
	if filepath.Base(lvl.FilePath) != "lvl02.yml" {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}

	if _, err := loader.LoadByID("nope"); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("LoadByID(nope) error = %v, expected ErrLevelNotFound", err)
	}
}

func TestLoaderLoadFileUnsupported(t *testing.T) {
	loader := NewLoader(getTestdataPath())
	if _, err := loader.LoadFile("notes.md"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("LoadFile(notes.md) error = %v, expected ErrUnsupportedFormat", err)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing"))
	if _, err := loader.LoadAll(); err == nil {
		t.Error("LoadAll on missing directory should fail")
	}
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	lvls, err := Builtin().LoadAll()
	if err != nil {
		t.Fatalf("Builtin().LoadAll failed: %v", err)
	}
	if len(lvls) < 3 {
		t.Fatalf("expected at least 3 builtin levels, got %d", len(lvls))
	}

	problems := ValidateCatalog(lvls, config.Default().Player)
	for id, errs := range problems {
		for _, err := range errs {
			t.Errorf("builtin level %s: %v", id, err)
		}
	}

	start, err := Builtin().LoadByID("start")
	if err != nil {
		t.Fatalf("LoadByID(start) failed: %v", err)
	}
	if start.Layout.Width() != 40 || start.Layout.Height() != 30 {
		t.Errorf("start is %dx%d, expected 40x30", start.Layout.Width(), start.Layout.Height())
	}
	if start.Spawn() != (world.Point{X: 4, Y: 4}) {
		t.Errorf("start spawn = %+v, expected (4, 4)", start.Spawn())
	}
}

func TestValidate(t *testing.T) {
	loader := NewLoader(getTestdataPath())
	player := config.Default().Player

	ok, err := loader.LoadByID("lvl01")
	if err != nil {
		t.Fatal(err)
	}
	if errs := Validate(ok, player); len(errs) != 0 {
		t.Errorf("Validate(lvl01) = %v, expected none", errs)
	}

	blocked, err := loader.LoadByID("blocked")
	if err != nil {
		t.Fatal(err)
	}
	errs := Validate(blocked, player)
	if len(errs) != 1 {
		t.Fatalf("Validate(blocked) = %v, expected one error", errs)
	}

	outside := ok
	outside.Layout.Spawn = world.Point{X: 10, Y: 10}
	if errs := Validate(outside, player); len(errs) != 2 {
		t.Errorf("Validate(spawn outside) = %v, expected bounds and overlap errors", errs)
	}
}

func TestValidateCatalog(t *testing.T) {
	lvls, err := NewLoader(getTestdataPath()).LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	player := config.Default().Player

	problems := ValidateCatalog(lvls, player)
	if _, bad := problems["lvl01"]; bad {
		t.Errorf("lvl01 exit to lvl02 should resolve: %v", problems["lvl01"])
	}
	if len(problems["blocked"]) != 1 {
		t.Errorf("blocked problems = %v, expected 1", problems["blocked"])
	}

	// Drop lvl02 so lvl01's exit dangles, and duplicate lvl01.
	var subset []Level
	for _, l := range lvls {
		if l.ID == "lvl01" {
			subset = append(subset, l, l)
		}
	}
	problems = ValidateCatalog(subset, player)
	var sawExit, sawDup bool
	for _, err := range problems["lvl01"] {
		sawExit = sawExit || errors.Is(err, ErrUnknownExit)
		sawDup = sawDup || errors.Is(err, ErrDuplicateID)
	}
	if !sawExit || !sawDup {
		t.Errorf("problems = %v, expected unknown exit and duplicate id", problems["lvl01"])
	}
}

func TestExitFor(t *testing.T) {
	lvl := Level{
		Layout: Layout{Rows: []string{"    ", "    ", "    "}},
		Exits:  map[string]string{ExitEast: "next", ExitNorth: "up"},
	}

	tests := []struct {
		name   string
		body   physics.Body
		target string
		ok     bool
	}{
		{"middle", physics.Body{X: 1.1, Y: 1.1, W: 0.8, H: 0.8}, "", false},
		{"east edge", physics.Body{X: 3.2, Y: 1.1, W: 0.8, H: 0.8}, "next", true},
		{"north edge", physics.Body{X: 1.1, Y: 0, W: 0.8, H: 0.8}, "up", true},
		{"west edge has no exit", physics.Body{X: 0, Y: 1.1, W: 0.8, H: 0.8}, "", false},
		{"almost east", physics.Body{X: 3.1, Y: 1.1, W: 0.8, H: 0.8}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, target, ok := lvl.ExitFor(&tc.body)
			if target != tc.target || ok != tc.ok {
				t.Errorf("ExitFor() = (%q, %v), expected (%q, %v)", target, ok, tc.target, tc.ok)
			}
		})
	}
}

func TestExitReachedByMovement(t *testing.T) {
	start, err := Builtin().LoadByID("start")
	if err != nil {
		t.Fatal(err)
	}
	g, err := start.World()
	if err != nil {
		t.Fatal(err)
	}

	// Row 20 is open all the way to the east border.
	b := physics.Body{X: 30.1, Y: 20.1, W: 0.8, H: 0.8}
	physics.TryMove(&b, 20, 0, g)

	label, target, ok := start.ExitFor(&b)
	if !ok || label != ExitEast || target != "garden" {
		t.Errorf("ExitFor() = (%q, %q, %v), expected east -> garden", label, target, ok)
	}
}

func TestLoaderBroken(t *testing.T) {
	broken, err := NewLoader(getTestdataPath()).Broken()
	if err != nil {
		t.Fatalf("Broken failed: %v", err)
	}
	if len(broken) != 1 || filepath.Base(broken[0].Path) != "broken.toml" {
		t.Fatalf("Broken() = %+v, expected only broken.toml", broken)
	}
	if broken[0].Err == nil {
		t.Error("broken file should carry its parse error")
	}

	builtin, err := Builtin().Broken()
	if err != nil || len(builtin) != 0 {
		t.Errorf("builtin levels should all load, got %+v (%v)", builtin, err)
	}
}

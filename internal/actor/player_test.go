package actor

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/world"
)

func testGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.Build([]string{
		"######",
		"#    #",
		"#    #",
		"#  # #",
		"######",
	}, world.DefaultWall)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return g
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(world.Point{X: 2, Y: 3}, config.Default().Player)

	if p.X != 2.1 || p.Y != 3.1 {
		t.Errorf("position = (%v, %v), expected (2.1, 3.1)", p.X, p.Y)
	}
	if p.W != 0.8 || p.H != 0.8 {
		t.Errorf("size = %vx%v, expected 0.8x0.8", p.W, p.H)
	}
	if p.Speed != 6 {
		t.Errorf("Speed = %v, expected 6", p.Speed)
	}
}

func TestDirection(t *testing.T) {
	d := math.Sqrt2 / 2

	tests := []struct {
		name   string
		in     Input
		dx, dy float64
	}{
		{"none", Input{}, 0, 0},
		{"left", Input{Left: true}, -1, 0},
		{"right", Input{Right: true}, 1, 0},
		{"up", Input{Up: true}, 0, -1},
		{"down", Input{Down: true}, 0, 1},
		{"opposites cancel", Input{Left: true, Right: true}, 0, 0},
		{"up-right", Input{Up: true, Right: true}, d, -d},
		{"down-left", Input{Down: true, Left: true}, -d, d},
		{"three keys", Input{Left: true, Right: true, Down: true}, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := Direction(tc.in)
			if math.Abs(dx-tc.dx) > 1e-12 || math.Abs(dy-tc.dy) > 1e-12 {
				t.Errorf("Direction(%+v) = (%v, %v), expected (%v, %v)", tc.in, dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestDiagonalHasUnitMagnitude(t *testing.T) {
	dx, dy := Direction(Input{Up: true, Left: true})
	if mag := math.Hypot(dx, dy); math.Abs(mag-1) > 1e-12 {
		t.Errorf("diagonal magnitude = %v, expected 1", mag)
	}
}

func TestDisplacement(t *testing.T) {
	dx, dy := Displacement(Input{Right: true}, 6, 0.5)
	if dx != 3 || dy != 0 {
		t.Errorf("Displacement = (%v, %v), expected (3, 0)", dx, dy)
	}
}

func TestUpdateMovesAndStops(t *testing.T) {
	g := testGrid(t)
	p := NewPlayer(world.Point{X: 1, Y: 1}, config.Default().Player)

	// 1/60 s at 6 cells/s = 0.1 cells per tick
	for range 10 {
		Update(p, Input{Right: true}, 1.0/60, g)
	}
	if math.Abs(p.X-2.1) > 1e-9 {
		t.Errorf("X after 10 ticks = %v, expected 2.1", p.X)
	}

	// Long push right ends flush with the east wall
	for range 100 {
		Update(p, Input{Right: true}, 1.0/60, g)
	}
	if math.Abs(p.Right()-5) > 1e-9 {
		t.Errorf("Right() = %v, expected 5", p.Right())
	}
}

func TestUpdateAtRest(t *testing.T) {
	g := testGrid(t)
	p := NewPlayer(world.Point{X: 1, Y: 1}, config.Default().Player)
	before := *p

	Update(p, Input{}, 1.0/60, g)
	Update(p, Input{Left: true, Right: true}, 1.0/60, g)

	if *p != before {
		t.Errorf("body moved without input: %+v -> %+v", before, *p)
	}
}

func TestUpdateLargeDtDoesNotTunnel(t *testing.T) {
	g := testGrid(t)
	p := NewPlayer(world.Point{X: 1, Y: 3}, config.Default().Player)

	// One huge frame: 6 cells/s for 2 s toward the pillar at x=3.
	Update(p, Input{Right: true}, 2, g)

	if p.Right() > 3+1e-9 {
		t.Errorf("Right() = %v, tunneled through pillar at x=3", p.Right())
	}
}

func TestValidateSpawn(t *testing.T) {
	g := testGrid(t)
	cfg := config.Default().Player

	if err := ValidateSpawn(g, NewPlayer(world.Point{X: 1, Y: 1}, cfg)); err != nil {
		t.Errorf("ValidateSpawn(open cell) = %v, expected nil", err)
	}

	err := ValidateSpawn(g, NewPlayer(world.Point{X: 3, Y: 3}, cfg))
	if !errors.Is(err, ErrSpawnBlocked) {
		t.Errorf("ValidateSpawn(pillar) = %v, expected ErrSpawnBlocked", err)
	}

	big := cfg
	big.Width = 2
	err = ValidateSpawn(g, NewPlayer(world.Point{X: 3, Y: 1}, big))
	if !errors.Is(err, ErrSpawnBlocked) {
		t.Errorf("ValidateSpawn(oversized) = %v, expected ErrSpawnBlocked", err)
	}
}

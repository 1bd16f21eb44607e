package wildfire

import "testing"

func emptyWorld(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Params.FuelPatchCount = 0
	world := NewWithConfig(cfg)
	world.Reset(1)
	return world
}

func TestNearestFuelWithinRadius(t *testing.T) {
	world := emptyWorld(7, 7)
	world.cellsCurr[5*7+5] = CellFuel // offset (2,2) from the origin

	x, y, ok := world.NearestFuel(3, 3, 3)
	if !ok {
		t.Fatal("radius 3 must reach a fuel cell at Chebyshev distance 2")
	}
	if x != 5 || y != 5 {
		t.Fatalf("found (%d,%d), want (5,5)", x, y)
	}

	if _, _, ok := world.NearestFuel(3, 3, 1); ok {
		t.Fatal("radius 1 must not reach a fuel cell at Chebyshev distance 2")
	}
}

func TestNearestFuelNotFound(t *testing.T) {
	world := emptyWorld(7, 7)
	if _, _, ok := world.NearestFuel(3, 3, 3); ok {
		t.Fatal("all-empty grid must report not found")
	}
}

func TestNearestFuelScanOrderBreaksTies(t *testing.T) {
	world := emptyWorld(7, 7)
	// Both candidates sit at radius 1; the row-major scan visits the
	// negative row offset first.
	world.cellsCurr[2*7+2] = CellFuel
	world.cellsCurr[4*7+4] = CellFuel

	x, y, ok := world.NearestFuel(3, 3, 3)
	if !ok {
		t.Fatal("expected a fuel cell at radius 1")
	}
	if x != 2 || y != 2 {
		t.Fatalf("tie broke to (%d,%d), want (2,2)", x, y)
	}
}

func TestNearestFuelPrefersSmallerRadius(t *testing.T) {
	world := emptyWorld(9, 9)
	world.cellsCurr[1*9+4] = CellFuel // radius 3 above the origin
	world.cellsCurr[4*9+5] = CellFuel // radius 1 to the right

	x, y, ok := world.NearestFuel(4, 4, 3)
	if !ok {
		t.Fatal("expected a fuel cell")
	}
	if x != 5 || y != 4 {
		t.Fatalf("found (%d,%d), want the radius-1 cell (5,4)", x, y)
	}
}

func TestNearestFuelSkipsOutOfBounds(t *testing.T) {
	world := emptyWorld(5, 5)
	world.cellsCurr[0] = CellFuel

	x, y, ok := world.NearestFuel(0, 1, 2)
	if !ok {
		t.Fatal("corner search must still find in-bounds fuel")
	}
	if x != 0 || y != 0 {
		t.Fatalf("found (%d,%d), want (0,0)", x, y)
	}
}

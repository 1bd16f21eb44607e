package export

import (
	"encoding/json"
	"image/color"
	"image/gif"
	"math"
	"os"
	"path/filepath"
	"testing"

	"fuego-ca/internal/sims/wildfire"
)

var testPalette = []color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 0, G: 128, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
}

func TestAnimationRoundTrip(t *testing.T) {
	anim := NewAnimation(4, 3, 2, testPalette)
	cells := make([]uint8, 12)
	cells[5] = 2
	anim.AddFrame(cells)
	cells[5] = 3
	anim.AddFrame(cells)

	if anim.FrameCount() != 2 {
		t.Fatalf("frames = %d, want 2", anim.FrameCount())
	}

	path := filepath.Join(t.TempDir(), "run.gif")
	if err := anim.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(decoded.Image) != 2 {
		t.Fatalf("decoded frames = %d, want 2", len(decoded.Image))
	}
	if got := decoded.Image[0].Bounds().Dx(); got != 8 {
		t.Fatalf("frame width = %d, want grid width * scale = 8", got)
	}
}

func TestAnimationRejectsMismatchedFrame(t *testing.T) {
	anim := NewAnimation(4, 4, 1, testPalette)
	anim.AddFrame(make([]uint8, 3))
	if anim.FrameCount() != 0 {
		t.Fatal("mismatched frame must be dropped")
	}
	if err := anim.WriteFile(filepath.Join(t.TempDir(), "empty.gif")); err == nil {
		t.Fatal("writing with no frames must error")
	}
}

func TestGridIndexMapsBounds(t *testing.T) {
	b := Bounds{Left: -65, Bottom: -31, Right: -64, Top: -30}
	x, y := b.GridIndex(-30.5, -64.5, 100, 100)
	if x != 50 || y != 50 {
		t.Fatalf("center maps to (%d,%d), want (50,50)", x, y)
	}
	x, y = b.GridIndex(-30, -65, 100, 100)
	if x != 0 || y != 0 {
		t.Fatalf("top-left maps to (%d,%d), want (0,0)", x, y)
	}
	x, y = b.GridIndex(-40, -70, 100, 100)
	if x != 0 || y != 99 {
		t.Fatalf("out-of-extent point must clamp, got (%d,%d)", x, y)
	}
}

func TestCellCorner(t *testing.T) {
	b := Bounds{Left: 0, Bottom: 0, Right: 10, Top: 10}
	lon, lat := b.CellCorner(5, 5, 10, 10)
	if math.Abs(lon-5) > 1e-9 || math.Abs(lat-5) > 1e-9 {
		t.Fatalf("corner = (%v,%v), want (5,5)", lon, lat)
	}
}

func TestWriteBurnedArea(t *testing.T) {
	cells := make([]wildfire.Cell, 9)
	cells[4] = wildfire.CellBurned
	cells[5] = wildfire.CellBurned
	path := filepath.Join(t.TempDir(), "burned.geojson")
	b := Bounds{Left: 0, Bottom: 0, Right: 3, Top: 3}

	if err := WriteBurnedArea(path, cells, 3, 3, b); err != nil {
		t.Fatalf("WriteBurnedArea: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
			Geometry   struct {
				Type        string            `json:"type"`
				Coordinates [][][][2]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(raw, &fc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 1 {
		t.Fatalf("unexpected collection shape: %+v", fc)
	}
	geom := fc.Features[0].Geometry
	if geom.Type != "MultiPolygon" {
		t.Fatalf("geometry type = %q", geom.Type)
	}
	if len(geom.Coordinates) != 2 {
		t.Fatalf("polygons = %d, want one per burned cell", len(geom.Coordinates))
	}
	ring := geom.Coordinates[0][0]
	if len(ring) != 5 || ring[0] != ring[4] {
		t.Fatalf("ring must be closed, got %v", ring)
	}
}

func TestWriteBurnedAreaSkipsWhenNothingBurned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "burned.geojson")
	cells := make([]wildfire.Cell, 9)
	if err := WriteBurnedArea(path, cells, 3, 3, Bounds{Right: 1, Top: 1}); err != nil {
		t.Fatalf("WriteBurnedArea: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("no file should be written when nothing burned")
	}
}

func TestWriteIgnitionPoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "start.geojson")
	if err := WriteIgnitionPoint(path, -30.86, -64.53); err != nil {
		t.Fatalf("WriteIgnitionPoint: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var fc struct {
		Features []struct {
			Geometry struct {
				Type        string     `json:"type"`
				Coordinates [2]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(raw, &fc); err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 1 || fc.Features[0].Geometry.Type != "Point" {
		t.Fatalf("unexpected feature shape: %+v", fc)
	}
	if fc.Features[0].Geometry.Coordinates != [2]float64{-64.53, -30.86} {
		t.Fatalf("coordinates = %v, want lon,lat order", fc.Features[0].Geometry.Coordinates)
	}
}

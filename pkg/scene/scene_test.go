package scene

import (
	"path/filepath"
	"testing"

	"github.com/taigrr/orb/pkg/math3d"
)

func TestDescribeIsFixed(t *testing.T) {
	a := Describe(CheckerFractional)
	b := Describe(CheckerFractional)
	if a != b {
		t.Fatalf("Describe returned different scenes: %+v vs %+v", a, b)
	}

	if a.Orb.Center != math3d.V3(0, 1, 0) || a.Orb.Radius != 1 {
		t.Errorf("orb = %+v", a.Orb)
	}
	if a.Light.Center != math3d.V3(2, 2, 0) || a.Light.Radius != 0.25 {
		t.Errorf("light = %+v", a.Light)
	}
	if a.Floor.Point != math3d.Zero3() || a.Floor.Normal != math3d.V3(0, 1, 0) {
		t.Errorf("floor = %+v", a.Floor)
	}
}

func TestCheckerFractional(t *testing.T) {
	tests := []struct {
		name string
		x, z float32
		want uint8
	}{
		{"both low", 0.25, 0.25, 0xDD},
		{"both high", 0.75, 0.75, 0xDD},
		{"mixed", 0.25, 0.75, ColorTileDark},
		{"mixed other way", 0.75, 0.25, ColorTileDark},
		{"next tile", 1.25, 2.25, 0xDD},
		{"negative both", -0.25, -0.25, 0xDD},
		{"negative mixed", -0.75, -0.25, ColorTileDark},
		{"exact half", 0.5, 0.25, ColorTileDark},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckerFractional.TileColor(tc.x, tc.z); got != tc.want {
				t.Errorf("TileColor(%v, %v) = %#x, want %#x", tc.x, tc.z, got, tc.want)
			}
		})
	}
}

func TestCheckerInteger(t *testing.T) {
	tests := []struct {
		name string
		x, z float32
		want uint8
	}{
		{"origin tile", 0.5, 0.5, 0xCC},
		{"x neighbour", 1.5, 0.5, ColorTileDark},
		{"diagonal", 1.5, 1.5, 0xCC},
		{"negative x", -0.5, 0.5, ColorTileDark},
		{"negative both", -0.5, -0.5, 0xCC},
		{"far negative", -3.2, 7.9, ColorTileDark},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckerInteger.TileColor(tc.x, tc.z); got != tc.want {
				t.Errorf("TileColor(%v, %v) = %#x, want %#x", tc.x, tc.z, got, tc.want)
			}
		})
	}
}

func TestParseChecker(t *testing.T) {
	for _, c := range []Checker{CheckerFractional, CheckerInteger} {
		got, err := ParseChecker(c.String())
		if err != nil {
			t.Fatalf("ParseChecker(%q): %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseChecker(%q) = %v, want %v", c.String(), got, c)
		}
	}

	if _, err := ParseChecker("plaid"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestExportGLTF(t *testing.T) {
	s := Describe(CheckerInteger)
	eye := math3d.V3(3, 3, 3)

	for _, name := range []string{"scene.gltf", "scene.glb"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := s.ExportGLTF(path, eye, 4.0/3.0); err != nil {
				t.Fatalf("ExportGLTF: %v", err)
			}

			placements, err := ReadPlacements(path)
			if err != nil {
				t.Fatalf("ReadPlacements: %v", err)
			}
			if len(placements) != 4 {
				t.Fatalf("got %d nodes, want 4", len(placements))
			}

			want := map[string]Placement{
				NodeOrb:    {NodeOrb, s.Orb.Center, s.Orb.Radius},
				NodeLight:  {NodeLight, s.Light.Center, s.Light.Radius},
				NodeFloor:  {NodeFloor, s.Floor.Point, 1},
				NodeCamera: {NodeCamera, eye, 1},
			}
			for _, p := range placements {
				w, ok := want[p.Name]
				if !ok {
					t.Errorf("unexpected node %q", p.Name)
					continue
				}
				if p != w {
					t.Errorf("node %q = %+v, want %+v", p.Name, p, w)
				}
			}
		})
	}
}

func TestReadPlacementsMissingFile(t *testing.T) {
	if _, err := ReadPlacements("/nonexistent/scene.glb"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

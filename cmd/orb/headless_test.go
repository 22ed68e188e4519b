package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/orb/pkg/math3d"
	"github.com/taigrr/orb/pkg/tracer"
)

func TestRenderFramesFixedCount(t *testing.T) {
	e := tracer.New(8, 6, tracer.DefaultConfig())

	if got := renderFrames(e, 5); got != 5 {
		t.Fatalf("renderFrames() = %d, want 5", got)
	}
	if e.Camera() == e.Target() {
		t.Error("camera reached target after 5 frames of the intro animation")
	}
}

func TestRenderFramesUntilConverged(t *testing.T) {
	cfg := tracer.DefaultConfig()
	cfg.Camera = cfg.Target
	cfg.MaxPasses = 4
	e := tracer.New(8, 6, cfg)

	steps := renderFrames(e, 0)
	if !e.Converged() {
		t.Fatalf("not converged after %d steps", steps)
	}
	if steps == 0 || steps >= maxHeadlessFrames {
		t.Errorf("steps = %d", steps)
	}
	if e.PendingRays() != 0 {
		t.Errorf("PendingRays() = %d, want 0", e.PendingRays())
	}
}

func TestRunExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.gltf")
	cfg := tracer.DefaultConfig()
	cfg.Target = math3d.V3(4, 2, 4)

	var out bytes.Buffer
	if err := runExport(&out, cfg, path); err != nil {
		t.Fatalf("runExport: %v", err)
	}

	listing := out.String()
	for _, want := range []string{
		"Exported scene to " + path,
		"orb     (0.00, 1.00, 0.00) scale 1.00",
		"light   (2.00, 2.00, 0.00) scale 0.25",
		"floor   (0.00, 0.00, 0.00) scale 1.00",
		"camera  (4.00, 2.00, 4.00) scale 1.00",
	} {
		if !strings.Contains(listing, want) {
			t.Errorf("listing missing %q:\n%s", want, listing)
		}
	}
}

func TestRunExportBadPath(t *testing.T) {
	var out bytes.Buffer
	err := runExport(&out, tracer.DefaultConfig(), filepath.Join(t.TempDir(), "missing", "scene.glb"))
	if err == nil {
		t.Fatal("runExport into a missing directory succeeded")
	}
	if out.Len() != 0 {
		t.Errorf("failed export printed %q", out.String())
	}
}

func TestConfigFromFlagsRejectsNegativeCounts(t *testing.T) {
	tests := []struct {
		name string
		flag *int
	}{
		{"frames", frames},
		{"budget", budget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := *tt.flag
			t.Cleanup(func() { *tt.flag = old })

			*tt.flag = -1
			if _, err := configFromFlags(); err == nil {
				t.Errorf("configFromFlags accepted -%s=-1", tt.name)
			}

			*tt.flag = 0
			if _, err := configFromFlags(); err != nil {
				t.Errorf("configFromFlags with -%s=0: %v", tt.name, err)
			}
		})
	}
}

// orb - progressive terminal ray tracer
// Renders a mirrored orb, a light and a checkerboard floor, refining the
// image a little more on every frame.
//
// Controls:
//
//	A/D, Left/Right  - Orbit left/right
//	W/S, Up/Down     - Orbit up/down
//	+/-, Scroll      - Zoom in/out
//	R                - Reset view
//	?                - Toggle HUD overlay (FPS, pending rays, pass count)
//	Esc              - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/orb/pkg/math3d"
	"github.com/taigrr/orb/pkg/scene"
	"github.com/taigrr/orb/pkg/tracer"
)

var (
	targetFPS  = flag.Int("fps", 60, "Target FPS")
	fine       = flag.Bool("fine", false, "Settle the camera with the fine threshold (0.01)")
	lifo       = flag.Bool("lifo", false, "Trace the newest queued ray first")
	checker    = flag.String("checker", "fractional", "Floor pattern: fractional or integer")
	cameraFlag = flag.String("camera", "", "Camera target (X,Y,Z); default 3,3,3")
	budget     = flag.Int("budget", 0, "Rays traced per frame (0 = 2 x pixels)")
	headless   = flag.Bool("headless", false, "Render without a terminal and save a PNG")
	frames     = flag.Int("frames", 0, "Frames to render headless (0 = until converged)")
	width      = flag.Int("width", 160, "Headless image width")
	height     = flag.Int("height", 90, "Headless image height")
	out        = flag.String("out", "orb.png", "Headless output PNG")
	scale      = flag.Int("scale", 1, "Headless output upscale factor")
	export     = flag.String("export", "", "Write the scene as glTF (.gltf or .glb) and exit")
	logPath    = flag.String("log", "", "Write debug logs to this file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "orb - Progressive Terminal Ray Tracer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: orb [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Orbit the camera\n")
		fmt.Fprintf(os.Stderr, "  +/-, Scroll - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		tracer.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	switch {
	case *export != "":
		return runExport(os.Stdout, cfg, *export)
	case *headless:
		return runHeadless(cfg)
	default:
		return runInteractive(cfg)
	}
}

// configFromFlags builds the engine configuration from the command line.
func configFromFlags() (tracer.Config, error) {
	cfg := tracer.DefaultConfig()

	pattern, err := scene.ParseChecker(*checker)
	if err != nil {
		return cfg, err
	}
	cfg.Checker = pattern

	if *cameraFlag != "" {
		target, err := parseVec3(*cameraFlag)
		if err != nil {
			return cfg, fmt.Errorf("parse -camera: %w", err)
		}
		cfg.Target = target
	}
	if *fine {
		cfg.SettleThreshold = tracer.SettleFine
	}
	if *lifo {
		cfg.Discipline = tracer.LIFO
	}
	if *budget < 0 {
		return cfg, fmt.Errorf("-budget must not be negative")
	}
	if *frames < 0 {
		return cfg, fmt.Errorf("-frames must not be negative")
	}
	cfg.RayBudget = *budget
	return cfg, nil
}

// parseVec3 parses "X,Y,Z" into a vector of finite components.
func parseVec3(s string) (math3d.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math3d.Vec3{}, fmt.Errorf("want X,Y,Z, got %q", s)
	}

	var c [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		c[i] = float32(f)
	}
	v := math3d.V3(c[0], c[1], c[2])
	if !v.IsFinite() {
		return math3d.Vec3{}, fmt.Errorf("%q has a non-finite component", s)
	}
	return v, nil
}

// runExport writes the scene description seen from the configured target,
// then reads the file back and lists its nodes.
func runExport(w io.Writer, cfg tracer.Config, path string) error {
	aspect := float32(*width) / float32(*height)
	if err := scene.Describe(cfg.Checker).ExportGLTF(path, cfg.Target, aspect); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	placements, err := scene.ReadPlacements(path)
	if err != nil {
		return fmt.Errorf("verify export: %w", err)
	}

	fmt.Fprintf(w, "Exported scene to %s\n", path)
	for _, p := range placements {
		fmt.Fprintf(w, "  %-7s (%.2f, %.2f, %.2f) scale %.2f\n",
			p.Name, p.Position.X, p.Position.Y, p.Position.Z, p.Scale)
	}
	return nil
}

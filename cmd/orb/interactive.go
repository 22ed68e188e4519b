package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/orb/pkg/render"
	"github.com/taigrr/orb/pkg/tracer"
)

// Orbit steps applied per key press or wheel notch.
const (
	orbitStep = 0.15
	zoomStep  = 0.5
)

// HUD renders an overlay with render progress.
type HUD struct {
	Show      bool
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD
func NewHUD() *HUD {
	return &HUD{Show: true, fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, e *tracer.Engine) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !h.Show {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	rays := fmt.Sprintf("%s%s%s %d rays pending %s", bold, bgBlack, fgWhite, e.PendingRays(), reset)
	fmt.Print(moveTo(1, max((width-20)/2, 1)) + rays)

	cfg := e.Config()
	passes := fmt.Sprintf("%s%s%s pass %d/%d %s", bgBlack, fgCyan, bold, e.Passes(), cfg.MaxPasses, reset)
	fmt.Print(moveTo(1, max(width-14, 1)) + passes)

	c := e.Camera()
	status := "converging"
	switch {
	case c != e.Target():
		status = "moving"
	case e.Converged():
		status = "converged"
	}
	camera := fmt.Sprintf("%s%s camera (%.2f, %.2f, %.2f) %s %s",
		bgBlack, fgWhite, c.X, c.Y, c.Z, status, reset)
	fmt.Print(moveTo(height, 1) + camera)

	hint := fmt.Sprintf("%s%s WASD orbit  +/- zoom %s", bgBlack, fgYellow, reset)
	fmt.Print(moveTo(height, max(width-22, 1)) + hint)
}

// newEngine creates an engine filling a terminal of cols × rows, carrying
// over the camera of prev when there is one.
func newEngine(cfg tracer.Config, cols, rows int, prev *tracer.Engine) (*tracer.Engine, *render.Framebuffer, error) {
	if prev != nil {
		cfg.Camera = prev.Camera()
		cfg.Target = prev.Target()
	}
	w, h := render.SizeForTerminal(cols, rows)
	e := tracer.New(w, h, cfg)
	fb, err := render.NewFramebuffer(e.Pixels(), w, h)
	if err != nil {
		return nil, nil, err
	}
	return e, fb, nil
}

func runInteractive(cfg tracer.Config) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	fmt.Fprint(os.Stdout, "\x1b[?1000h") // Enable mouse button (wheel) tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1000l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	engine, fb, err := newEngine(cfg, cols, rows, nil)
	if err != nil {
		cleanup()
		return err
	}

	orbit := NewOrbit(*targetFPS, cfg.Target)
	tracker := targetTracker{last: cfg.Target, tolerance: 0.01}
	steering := false // the intro animation plays until the first input
	hud := NewHUD()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Events are handled on the render loop so the engine has one owner.
	events := make(chan uv.Event, 64)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	handle := func(ev uv.Event) error {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			cols, rows = ev.Width, ev.Height
			term.Erase()
			term.Resize(cols, rows)
			engine, fb, err = newEngine(cfg, cols, rows, engine)
			return err

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
				cancel()
			case ev.MatchString("a", "left"):
				orbit.Nudge(-orbitStep, 0, 0)
				steering = true
			case ev.MatchString("d", "right"):
				orbit.Nudge(orbitStep, 0, 0)
				steering = true
			case ev.MatchString("w", "up"):
				orbit.Nudge(0, orbitStep, 0)
				steering = true
			case ev.MatchString("s", "down"):
				orbit.Nudge(0, -orbitStep, 0)
				steering = true
			case ev.MatchString("+", "="):
				orbit.Nudge(0, 0, -zoomStep)
				steering = true
			case ev.MatchString("-", "_"):
				orbit.Nudge(0, 0, zoomStep)
				steering = true
			case ev.MatchString("r"):
				orbit.Reset()
				steering = true
			case ev.MatchString("?"), ev.MatchString("shift+/"):
				hud.Show = !hud.Show
			}

		case uv.MouseWheelEvent:
			switch ev.Button {
			case uv.MouseWheelUp:
				orbit.Nudge(0, 0, -zoomStep)
			case uv.MouseWheelDown:
				orbit.Nudge(0, 0, zoomStep)
			}
			steering = true
		}
		return nil
	}

	targetDuration := time.Second / time.Duration(*targetFPS)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()

	drain:
		for {
			select {
			case ev := <-events:
				if err := handle(ev); err != nil {
					cleanup()
					return fmt.Errorf("resize: %w", err)
				}
			default:
				break drain
			}
		}

		orbit.Update()
		if steering {
			if p := orbit.Point(); tracker.changed(p) {
				engine.SetCameraTarget(p.X, p.Y, p.Z)
			}
		}

		engine.Step()

		fb.Draw(term, term.Bounds())
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		hud.UpdateFPS()
		hud.Render(cols, rows, engine)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

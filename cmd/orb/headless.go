package main

import (
	"fmt"
	"time"

	"github.com/taigrr/orb/pkg/render"
	"github.com/taigrr/orb/pkg/tracer"
)

// maxHeadlessFrames bounds a render-until-converged run.
const maxHeadlessFrames = 1_000_000

// renderFrames steps the engine n times, or until it converges when n is
// zero, and returns the number of steps taken.
func renderFrames(e *tracer.Engine, n int) int {
	if n > 0 {
		for range n {
			e.Step()
		}
		return n
	}

	steps := 0
	for !e.Converged() && steps < maxHeadlessFrames {
		e.Step()
		steps++
	}
	return steps
}

func runHeadless(cfg tracer.Config) error {
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", *width, *height)
	}

	e := tracer.New(*width, *height, cfg)

	start := time.Now()
	steps := renderFrames(e, *frames)
	elapsed := time.Since(start)

	fb, err := render.NewFramebuffer(e.Pixels(), e.Width(), e.Height())
	if err != nil {
		return err
	}
	if err := fb.SavePNG(*out, *scale); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Printf("Rendered %dx%d in %d frames (%v, %d rays, %d passes, %d pending)\n",
		e.Width(), e.Height(), steps, elapsed.Round(time.Millisecond),
		e.Traced(), e.Passes(), e.PendingRays())
	fmt.Printf("Saved: %s\n", *out)
	return nil
}

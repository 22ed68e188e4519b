package main

import (
	"math"
	"testing"

	"github.com/taigrr/orb/pkg/math3d"
)

func TestOrbitRoundTrip(t *testing.T) {
	p := math3d.V3(3, 3, 3)
	o := NewOrbit(60, p)

	if got := o.Point(); got.Distance(p) > 1e-4 {
		t.Errorf("Point() = %v, want %v", got, p)
	}
}

func TestOrbitSpringsTowardGoal(t *testing.T) {
	o := NewOrbit(60, math3d.V3(3, 3, 3))
	start := o.Yaw.Position
	o.Nudge(0.5, 0, 0)

	o.Update()
	if o.Yaw.Position <= start || o.Yaw.Position >= start+0.5 {
		t.Fatalf("after one frame yaw = %v, want between %v and %v", o.Yaw.Position, start, start+0.5)
	}

	for range 600 {
		o.Update()
	}
	if math.Abs(o.Yaw.Position-(start+0.5)) > 1e-3 {
		t.Errorf("yaw settled at %v, want %v", o.Yaw.Position, start+0.5)
	}
}

func TestOrbitClamps(t *testing.T) {
	o := NewOrbit(60, math3d.V3(3, 3, 3))
	o.Nudge(0, 10, 100)
	if o.Pitch.Goal != maxPitch {
		t.Errorf("pitch goal = %v, want %v", o.Pitch.Goal, maxPitch)
	}
	if o.Distance.Goal != maxDistance {
		t.Errorf("distance goal = %v, want %v", o.Distance.Goal, maxDistance)
	}

	o.Nudge(0, -10, -100)
	if o.Pitch.Goal != minPitch || o.Distance.Goal != minDistance {
		t.Errorf("goals = %v, %v; want minimums", o.Pitch.Goal, o.Distance.Goal)
	}

	o.Reset()
	home := NewOrbit(60, math3d.V3(3, 3, 3))
	if o.Pitch.Goal != home.Pitch.Goal || o.Distance.Goal != home.Distance.Goal {
		t.Errorf("Reset goals = %v, %v", o.Pitch.Goal, o.Distance.Goal)
	}
}

func TestTargetTracker(t *testing.T) {
	tr := targetTracker{last: math3d.V3(3, 3, 3), tolerance: 0.01}

	if tr.changed(math3d.V3(3, 3, 3.001)) {
		t.Error("sub-tolerance move reported as changed")
	}
	if !tr.changed(math3d.V3(3, 3, 3.5)) {
		t.Error("large move not reported")
	}
	if tr.last != math3d.V3(3, 3, 3.5) {
		t.Errorf("last = %v, want accepted point", tr.last)
	}
}

func TestParseVec3(t *testing.T) {
	v, err := parseVec3("1, -2.5,3")
	if err != nil || v != math3d.V3(1, -2.5, 3) {
		t.Errorf("parseVec3 = %v, %v", v, err)
	}
	for _, bad := range []string{"", "1,2", "a,b,c", "1,2,3,4", "1,inf,3", "nan,0,0", "1e39,0,0"} {
		if _, err := parseVec3(bad); err == nil {
			t.Errorf("parseVec3(%q) succeeded", bad)
		}
	}
}

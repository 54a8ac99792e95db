package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestArcCenterRejectsRadiusSmallerThanHalfChord(t *testing.T) {
	start := Vec2{0, 0}
	end := Vec2{100, 0}

	// Half the chord is 50; anything under that has no solution.
	if _, _, _, ok := ArcCenter(start, end, 40, false); ok {
		t.Error("Expected no arc center for radius 40 over a 100-long chord")
	}
	if _, _, _, ok := ArcCenter(start, end, 49.999, true); ok {
		t.Error("Expected no arc center for radius just under half chord")
	}
	if _, _, _, ok := ArcCenter(start, end, 50, false); !ok {
		t.Error("Expected an arc center for radius exactly half chord")
	}
	if _, _, _, ok := ArcCenter(start, end, 500, true); !ok {
		t.Error("Expected an arc center for a generous radius")
	}
}

func TestArcCenterRejectsCoincidentEndpoints(t *testing.T) {
	p := Vec2{10, -3}
	if _, _, _, ok := ArcCenter(p, p, 25, false); ok {
		t.Error("Expected no arc center when endpoints coincide")
	}
}

func TestArcCenterEndpointsLieOnCircle(t *testing.T) {
	cases := []struct {
		name      string
		start     Vec2
		end       Vec2
		radius    float64
		clockwise bool
	}{
		{"semicircle", Vec2{0, 0}, Vec2{100, 0}, 50, false},
		{"shallow ccw", Vec2{0, 0}, Vec2{100, 0}, 60, false},
		{"shallow cw", Vec2{0, 0}, Vec2{100, 0}, 60, true},
		{"diagonal", Vec2{-20, 35}, Vec2{70, -10}, 80, true},
		{"vertical chord", Vec2{5, -40}, Vec2{5, 40}, 45, false},
	}

	for _, tc := range cases {
		center, startAngle, endAngle, ok := ArcCenter(tc.start, tc.end, tc.radius, tc.clockwise)
		if !ok {
			t.Errorf("%s: expected a valid arc", tc.name)
			continue
		}

		if d := center.Distance(tc.start); !almostEqual(d, tc.radius) {
			t.Errorf("%s: start at distance %v from center, want %v", tc.name, d, tc.radius)
		}
		if d := center.Distance(tc.end); !almostEqual(d, tc.radius) {
			t.Errorf("%s: end at distance %v from center, want %v", tc.name, d, tc.radius)
		}

		// The reported angles must point back at the endpoints.
		sx := center.X + tc.radius*math.Cos(startAngle)
		sy := center.Y + tc.radius*math.Sin(startAngle)
		if !almostEqual(sx, tc.start.X) || !almostEqual(sy, tc.start.Y) {
			t.Errorf("%s: start angle %v does not point at start", tc.name, startAngle)
		}
		ex := center.X + tc.radius*math.Cos(endAngle)
		ey := center.Y + tc.radius*math.Sin(endAngle)
		if !almostEqual(ex, tc.end.X) || !almostEqual(ey, tc.end.Y) {
			t.Errorf("%s: end angle %v does not point at end", tc.name, endAngle)
		}
	}
}

func TestPointSegmentDistance(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{100, 0}

	if d := PointSegmentDistance(Vec2{50, 0}, a, b); !almostEqual(d, 0) {
		t.Errorf("Expected distance 0 on the segment, got %v", d)
	}
	if d := PointSegmentDistance(Vec2{50, 50}, a, b); !almostEqual(d, 50) {
		t.Errorf("Expected perpendicular distance 50, got %v", d)
	}
	// Beyond the ends, distance is to the nearest endpoint.
	if d := PointSegmentDistance(Vec2{-30, 40}, a, b); !almostEqual(d, 50) {
		t.Errorf("Expected endpoint distance 50 past segment start, got %v", d)
	}
	if d := PointSegmentDistance(Vec2{130, -40}, a, b); !almostEqual(d, 50) {
		t.Errorf("Expected endpoint distance 50 past segment end, got %v", d)
	}
}

func TestPointSegmentDistanceDegenerate(t *testing.T) {
	p := Vec2{3, 4}
	if d := PointSegmentDistance(p, Vec2{0, 0}, Vec2{0, 0}); !almostEqual(d, 5) {
		t.Errorf("Expected distance 5 to a zero-length segment, got %v", d)
	}
}

func TestPointArcDistanceInvalidArc(t *testing.T) {
	d := PointArcDistance(Vec2{50, 0}, Vec2{0, 0}, Vec2{100, 0}, 40, false)
	if d != MaxDistance {
		t.Errorf("Expected MaxDistance for an unconstructible arc, got %v", d)
	}
}

func TestPointArcDistanceOnSemicircles(t *testing.T) {
	start := Vec2{0, 0}
	end := Vec2{100, 0}

	// Counter-clockwise from angle pi down through -pi/2 to 0: the lower
	// semicircle. This sweep crosses the atan2 discontinuity.
	if d := PointArcDistance(Vec2{50, -50}, start, end, 50, false); !almostEqual(d, 0) {
		t.Errorf("Expected the lower apex on the ccw arc, got distance %v", d)
	}
	// The opposite apex is outside the span, so the distance falls back to
	// the nearer endpoint.
	want := Vec2{50, 50}.Distance(start)
	if d := PointArcDistance(Vec2{50, 50}, start, end, 50, false); !almostEqual(d, want) {
		t.Errorf("Expected endpoint distance %v off the ccw arc, got %v", want, d)
	}

	// Clockwise sweeps the upper semicircle.
	if d := PointArcDistance(Vec2{50, 50}, start, end, 50, true); !almostEqual(d, 0) {
		t.Errorf("Expected the upper apex on the cw arc, got distance %v", d)
	}
	if d := PointArcDistance(Vec2{50, -50}, start, end, 50, true); !almostEqual(d, want) {
		t.Errorf("Expected endpoint distance %v off the cw arc, got %v", want, d)
	}
}

func TestPointArcDistanceRadial(t *testing.T) {
	start := Vec2{0, 0}
	end := Vec2{100, 0}

	// A point radially outside the upper apex of the clockwise semicircle.
	if d := PointArcDistance(Vec2{50, 70}, start, end, 50, true); !almostEqual(d, 20) {
		t.Errorf("Expected radial distance 20, got %v", d)
	}
	// And radially inside.
	if d := PointArcDistance(Vec2{50, 30}, start, end, 50, true); !almostEqual(d, 20) {
		t.Errorf("Expected radial distance 20 from inside, got %v", d)
	}
}

func TestSampleArcEndpointsAndMinimum(t *testing.T) {
	start := Vec2{0, 0}
	end := Vec2{10, 0}

	// A huge radius makes a very shallow arc; the span-proportional count
	// would collapse without the minimum.
	points := SampleArc(start, end, 1000, false, 0)
	if len(points) < minArcSegments+1 {
		t.Errorf("Expected at least %d points, got %d", minArcSegments+1, len(points))
	}
	if points[0] != start {
		t.Errorf("Expected first sample at start, got %v", points[0])
	}
	if points[len(points)-1] != end {
		t.Errorf("Expected last sample at end, got %v", points[len(points)-1])
	}
}

func TestSampleArcPointsLieOnCircle(t *testing.T) {
	start := Vec2{0, 0}
	end := Vec2{100, 0}
	center, _, _, ok := ArcCenter(start, end, 60, true)
	if !ok {
		t.Fatal("Expected a valid arc")
	}

	for i, p := range SampleArc(start, end, 60, true, 16) {
		if d := center.Distance(p); !almostEqual(d, 60) {
			t.Errorf("Sample %d at distance %v from center, want 60", i, d)
		}
	}
}

func TestSampleArcExplicitSegmentCount(t *testing.T) {
	points := SampleArc(Vec2{0, 0}, Vec2{100, 0}, 60, false, 10)
	if len(points) != 11 {
		t.Errorf("Expected 11 points for 10 segments, got %d", len(points))
	}
}

func TestSampleArcInvalidFallsBackToChord(t *testing.T) {
	start := Vec2{0, 0}
	end := Vec2{100, 0}
	points := SampleArc(start, end, 40, false, 0)
	if len(points) != 2 || points[0] != start || points[1] != end {
		t.Errorf("Expected the straight chord for an unconstructible arc, got %v", points)
	}
}

func TestVecSnap(t *testing.T) {
	v := Vec2{37, -12}
	if got := v.Snap(50); got != (Vec2{50, 0}) {
		t.Errorf("Expected snap to (50,0), got %v", got)
	}
	if got := v.Snap(0); got != v {
		t.Errorf("Expected zero grid to leave the point alone, got %v", got)
	}
}

func TestArcSpanWraps(t *testing.T) {
	// From angle 3 to angle -3 a ccw sweep crosses the discontinuity and
	// covers only a sliver; the cw sweep covers the rest of the turn.
	if span := arcSpan(3, -3, false); !almostEqual(span, 2*math.Pi-6) {
		t.Errorf("Expected ccw span %v, got %v", 2*math.Pi-6, span)
	}
	if span := arcSpan(3, -3, true); !almostEqual(span, 6) {
		t.Errorf("Expected cw span 6, got %v", span)
	}
}

package geometry

import "math"

// MaxDistance is the sentinel returned by distance functions when the
// queried shape cannot be constructed. Callers treat it as "never hit".
const MaxDistance = math.MaxFloat64

// ArcCenter computes the center of the circular arc of the given radius
// passing through start and end, oriented by clockwise, along with the
// angles of both endpoints about that center.
//
// It returns ok=false when no such circle exists: the radius is smaller
// than half the chord length, or the endpoints coincide (the chord gives
// no direction to offset along).
func ArcCenter(start, end Vec2, radius float64, clockwise bool) (center Vec2, startAngle, endAngle float64, ok bool) {
	chord := end.Sub(start)
	chordLen := chord.Length()
	if chordLen == 0 {
		return Vec2{}, 0, 0, false
	}

	half := chordLen / 2
	if radius < half {
		return Vec2{}, 0, 0, false
	}

	mid := start.Add(chord.Scale(0.5))
	h := math.Sqrt(radius*radius - half*half)

	// Unit perpendicular to the chord. The two candidate centers sit at
	// mid +/- perp*h; clockwise picks between them.
	perp := Vec2{-chord.Y / chordLen, chord.X / chordLen}
	if clockwise {
		center = mid.Add(perp.Scale(h))
	} else {
		center = mid.Sub(perp.Scale(h))
	}

	return center, start.Angle(center), end.Angle(center), true
}

// PointSegmentDistance returns the distance from p to the closest point on
// the segment ab. A zero-length segment degenerates to the distance to a.
func PointSegmentDistance(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	t = math.Max(0, math.Min(1, t))

	return p.Distance(a.Add(ab.Scale(t)))
}

// PointArcDistance returns the distance from p to the arc through start and
// end with the given radius and orientation. An arc that cannot be
// constructed returns MaxDistance so it is never selected.
//
// Within the arc's angular span the distance is radial; outside it the
// distance is to the nearer endpoint, so hit-testing never wraps past the
// ends of the arc.
func PointArcDistance(p, start, end Vec2, radius float64, clockwise bool) float64 {
	center, startAngle, endAngle, ok := ArcCenter(start, end, radius, clockwise)
	if !ok {
		return MaxDistance
	}

	angle := p.Angle(center)
	if arcContainsAngle(angle, startAngle, endAngle, clockwise) {
		return math.Abs(p.Distance(center) - radius)
	}

	return math.Min(p.Distance(start), p.Distance(end))
}

// arcContainsAngle reports whether angle lies within the arc's angular span.
// atan2 angles live on (-pi, pi], so a span may cross the discontinuity; a
// plain min/max range check would silently reject those arcs.
func arcContainsAngle(angle, startAngle, endAngle float64, clockwise bool) bool {
	if clockwise {
		// Clockwise sweeps from startAngle down to endAngle.
		if startAngle > endAngle {
			return angle <= startAngle && angle >= endAngle
		}
		// The sweep wraps through the discontinuity.
		return angle >= endAngle || angle <= startAngle
	}

	// Counter-clockwise sweeps from startAngle up to endAngle.
	if endAngle > startAngle {
		return angle >= startAngle && angle <= endAngle
	}
	return angle >= startAngle || angle <= endAngle
}

// arc sampling granularity: one segment per this many radians, and never
// fewer than minArcSegments segments so short arcs don't render as kinks.
const (
	arcRadiansPerSegment = 0.2
	minArcSegments       = 4
)

// SampleArc approximates the arc with a polyline from start to end,
// stepping the angular span in equal increments along the rotational
// direction. segments overrides the subdivision count; pass zero or less
// for the span-proportional default. The count is clamped to a minimum of
// four either way.
//
// An arc that cannot be constructed degrades to the straight chord.
func SampleArc(start, end Vec2, radius float64, clockwise bool, segments int) []Vec2 {
	center, startAngle, endAngle, ok := ArcCenter(start, end, radius, clockwise)
	if !ok {
		return []Vec2{start, end}
	}

	span := arcSpan(startAngle, endAngle, clockwise)
	if segments <= 0 {
		segments = int(span / arcRadiansPerSegment)
	}
	if segments < minArcSegments {
		segments = minArcSegments
	}

	dir := 1.0
	if clockwise {
		dir = -1.0
	}

	points := make([]Vec2, 0, segments+1)
	points = append(points, start)
	for i := 1; i < segments; i++ {
		angle := startAngle + dir*span*float64(i)/float64(segments)
		points = append(points, Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	points = append(points, end)

	return points
}

// arcSpan returns the positive angular extent swept from startAngle to
// endAngle in the given rotational direction.
func arcSpan(startAngle, endAngle float64, clockwise bool) float64 {
	var span float64
	if clockwise {
		span = startAngle - endAngle
	} else {
		span = endAngle - startAngle
	}
	if span < 0 {
		span += 2 * math.Pi
	}
	return span
}

package objects

import (
	"fmt"
	"math"
	"strings"

	"osulegacy/dotosu"
)

const (
	bezTolSq   = 0.25 * 0.25 // bezier flatness tolerance, squared
	arcTol     = 0.10        // circular arc sagitta tolerance
	catmullDet = 50          // samples per catmull segment
)

type SliderPathType uint8

const (
	PathBezier SliderPathType = iota
	PathLinear
	PathCatmull
	PathPerfect
)

type SliderSegment struct {
	// Points for this segment INCLUDING its starting point.
	Points []Vec2
}

type SliderPath struct {
	Type     SliderPathType
	Segments []SliderSegment // bezier splits on repeated points (red anchors)
}

type Vector struct{ X, Y float64 }

// parseSliderPath converts "B|x:y|x:y|..." into a SliderPath whose first
// point is the slider head.
func parseSliderPath(head Vec2, spec string) (SliderPath, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return SliderPath{Type: PathBezier, Segments: []SliderSegment{{Points: []Vec2{head, head}}}}, nil
	}

	typeStr, rest, _ := strings.Cut(spec, "|")
	var pType SliderPathType
	switch strings.TrimSpace(typeStr) {
	case "L":
		pType = PathLinear
	case "C":
		pType = PathCatmull
	case "P":
		pType = PathPerfect
	case "B":
		pType = PathBezier
	default:
		return SliderPath{}, fmt.Errorf("%w: unknown curve type %q", dotosu.ErrMalformedLine, typeStr)
	}

	var cps []Vec2
	if strings.TrimSpace(rest) != "" {
		for _, t := range strings.Split(rest, "|") {
			xs, ys, ok := strings.Cut(strings.TrimSpace(t), ":")
			if !ok {
				return SliderPath{}, fmt.Errorf("%w: bad control point %q", dotosu.ErrMalformedLine, t)
			}
			p, err := parsePos(xs, ys)
			if err != nil {
				return SliderPath{}, err
			}
			cps = append(cps, p)
		}
	}

	pts := append([]Vec2{head}, cps...)
	switch pType {
	case PathPerfect:
		// A perfect circle needs exactly three points; anything else is drawn as bezier.
		if len(pts) != 3 {
			return bezierWithSegments(pts), nil
		}
		fallthrough
	case PathLinear, PathCatmull:
		return SliderPath{Type: pType, Segments: []SliderSegment{{Points: pts}}}, nil
	}
	return bezierWithSegments(pts), nil
}

func bezierWithSegments(pts []Vec2) SliderPath {
	var segs []SliderSegment
	cur := []Vec2{pts[0]}
	for _, p := range pts[1:] {
		if p == cur[len(cur)-1] {
			if len(cur) >= 2 {
				segs = append(segs, SliderSegment{Points: cur})
			}
			cur = []Vec2{p}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) >= 2 {
		segs = append(segs, SliderSegment{Points: cur})
	}
	if len(segs) == 0 {
		segs = []SliderSegment{{Points: []Vec2{pts[0], pts[0]}}}
	}
	return SliderPath{Type: PathBezier, Segments: segs}
}

// ApproximatePath returns a polyline for the path, starting at the head.
func ApproximatePath(path SliderPath) []Vector {
	var poly []Vector
	add := func(pts ...Vector) {
		for _, v := range pts {
			if n := len(poly); n == 0 || poly[n-1] != v {
				poly = append(poly, v)
			}
		}
	}

	switch path.Type {
	case PathLinear:
		add(toVectors(path.Segments[0].Points)...)
	case PathCatmull:
		add(approximateCatmull(toVectors(path.Segments[0].Points))...)
	case PathPerfect:
		v := toVectors(path.Segments[0].Points)
		add(approximateCircularArc(v[0], v[1], v[2])...)
	default:
		for _, seg := range path.Segments {
			add(approximateBezier(toVectors(seg.Points))...)
		}
	}
	return poly
}

func PolylineLength(poly []Vector) float64 {
	total := 0.0
	for i := 1; i < len(poly); i++ {
		total += dist(poly[i-1], poly[i])
	}
	return total
}

// PositionAt walks distance along the polyline, extending the last segment
// when distance is past the end.
func PositionAt(poly []Vector, distance float64) Vector {
	switch len(poly) {
	case 0:
		return Vector{}
	case 1:
		return poly[0]
	}
	for i := 1; i < len(poly); i++ {
		l := dist(poly[i-1], poly[i])
		if distance <= l || i == len(poly)-1 {
			if l == 0 {
				return poly[i]
			}
			d := sub(poly[i], poly[i-1])
			return Vector{poly[i-1].X + d.X*distance/l, poly[i-1].Y + d.Y*distance/l}
		}
		distance -= l
	}
	return poly[len(poly)-1]
}

// --- Bezier (adaptive subdivision) ---

func approximateBezier(cp []Vector) []Vector {
	if len(cp) == 0 {
		return nil
	}
	var out []Vector
	stack := [][]Vector{cp}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if bezierFlatEnough(cur) {
			out = append(out, cur[0])
			continue
		}
		// Right half first so the left half is popped next.
		l, r := bezierSubdivide(cur)
		stack = append(stack, r, l)
	}
	return append(out, cp[len(cp)-1])
}

func bezierFlatEnough(cp []Vector) bool {
	for i := 1; i < len(cp)-1; i++ {
		dx := cp[i-1].X - 2*cp[i].X + cp[i+1].X
		dy := cp[i-1].Y - 2*cp[i].Y + cp[i+1].Y
		if dx*dx+dy*dy > bezTolSq {
			return false
		}
	}
	return true
}

// de Casteljau split at t=0.5.
func bezierSubdivide(cp []Vector) (left, right []Vector) {
	n := len(cp)
	left, right = make([]Vector, n), make([]Vector, n)
	mid := append([]Vector(nil), cp...)
	for r := 0; r < n; r++ {
		left[r] = mid[0]
		right[n-1-r] = mid[n-1-r]
		for i := 0; i < n-1-r; i++ {
			mid[i] = Vector{(mid[i].X + mid[i+1].X) * 0.5, (mid[i].Y + mid[i+1].Y) * 0.5}
		}
	}
	return left, right
}

// --- Catmull-Rom ---

func approximateCatmull(pts []Vector) []Vector {
	n := len(pts)
	if n <= 1 {
		return pts
	}
	out := make([]Vector, 0, (n-1)*catmullDet+1)
	out = append(out, pts[0])
	for i := 0; i < n-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, n-1)]
		for s := 1; s <= catmullDet; s++ {
			out = append(out, catmullPoint(p0, p1, p2, p3, float64(s)/catmullDet))
		}
	}
	return out
}

func catmullPoint(p0, p1, p2, p3 Vector, t float64) Vector {
	t2 := t * t
	t3 := t2 * t
	return Vector{
		X: 0.5 * ((2 * p1.X) + (-p0.X+p2.X)*t + (2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 + (-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * ((2 * p1.Y) + (-p0.Y+p2.Y)*t + (2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 + (-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}

// --- Perfect circle through three points ---

func approximateCircularArc(p1, p2, p3 Vector) []Vector {
	c, ok := circumcenter(p1, p2, p3)
	if !ok {
		// Collinear points: fall back to a straight line.
		return []Vector{p1, p3}
	}
	r := dist(c, p1)
	a1 := math.Atan2(p1.Y-c.Y, p1.X-c.X)
	a3 := math.Atan2(p3.Y-c.Y, p3.X-c.X)

	dir := 1.0
	if cross(sub(p2, p1), sub(p3, p2)) < 0 {
		dir = -1.0
	}
	delta := angleDiff(a1, a3, dir)

	step := 2 * math.Acos(clamp(1.0-arcTol/r, -1, 1))
	if step <= 0 || math.IsNaN(step) || step > math.Pi {
		step = math.Pi
	}
	steps := max(2, int(math.Ceil(math.Abs(delta)/step)))
	step = delta / float64(steps)

	out := make([]Vector, 0, steps+1)
	out = append(out, p1)
	for i := 1; i < steps; i++ {
		a := a1 + float64(i)*step
		out = append(out, Vector{c.X + math.Cos(a)*r, c.Y + math.Sin(a)*r})
	}
	return append(out, p3)
}

func circumcenter(a, b, c Vector) (Vector, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-8 {
		return Vector{}, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	return Vector{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}, true
}

// angleDiff sweeps from aStart to aEnd in the direction of dir.
func angleDiff(aStart, aEnd, dir float64) float64 {
	d := math.Remainder(aEnd-aStart, 2*math.Pi)
	if dir < 0 && d > 0 {
		d -= 2 * math.Pi
	} else if dir > 0 && d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// --- helpers ---

func toVectors(v2 []Vec2) []Vector {
	out := make([]Vector, len(v2))
	for i, p := range v2 {
		out[i] = Vector{float64(p.X), float64(p.Y)}
	}
	return out
}

func sub(a, b Vector) Vector          { return Vector{a.X - b.X, a.Y - b.Y} }
func cross(a, b Vector) float64       { return a.X*b.Y - a.Y*b.X }
func dist(a, b Vector) float64        { return math.Hypot(a.X-b.X, a.Y-b.Y) }
func clamp(x, lo, hi float64) float64 { return min(max(x, lo), hi) }

package voxtopo

import (
	"math"

	"github.com/golang/geo/r3"
)

// Posture is a tool center and pointing direction in world space. A Tool
// steps through a sequence of postures to sweep a volume through the
// world; the core never looks at postures directly, only at the Shape and
// containment test the current posture produces.
type Posture struct {
	Center    r3.Vector
	Direction r3.Vector
}

// Tool is a reference cutting-tool collaborator: a capsule (cylindrical
// body with a hemispherical cap) stepping through a fixed sequence of
// posture lists. It exists to exercise and test Topology.Subtract end to
// end; it is not part of the tree itself.
type Tool struct {
	Radius float64
	Height float64

	postureLists [][]Posture
	listIdx      int
	postureIdx   int
	current      Posture
}

const (
	defaultToolRadius = 50.0
	defaultToolHeight = 200.0

	postureCenterStep    = 5.0
	postureDirectionStep = 0.5 * math.Pi / 180.0 // 0.5 degrees, in radians
)

// NewTool builds a Tool with the default capsule dimensions (radius 50,
// height 200) and the three built-in posture lists.
func NewTool() *Tool {
	t := &Tool{Radius: defaultToolRadius, Height: defaultToolHeight}
	t.loadPostures()
	return t
}

// loadPostures installs the three built-in demonstration posture lists.
func (t *Tool) loadPostures() {
	t.postureLists = [][]Posture{
		{
			{Center: r3.Vector{X: 500, Y: 100, Z: 450}, Direction: r3.Vector{X: 0, Y: 1, Z: 0}},
			{Center: r3.Vector{X: 500, Y: 100, Z: 450}, Direction: r3.Vector{X: 0, Y: 0, Z: 1}},
			{Center: r3.Vector{X: 500, Y: 100, Z: 450}, Direction: r3.Vector{X: 0, Y: -1, Z: 0}},
		},
		{
			{Center: r3.Vector{X: 500, Y: -400, Z: 450}, Direction: r3.Vector{X: 0, Y: 1, Z: 0.7}},
			{Center: r3.Vector{X: 0, Y: -400, Z: 450}, Direction: r3.Vector{X: 0, Y: 1, Z: 0.7}},
		},
		{
			{Center: r3.Vector{X: 900, Y: 600, Z: 450}, Direction: r3.Vector{X: 0, Y: 1, Z: 0.7}},
			{Center: r3.Vector{X: 0, Y: 0, Z: 450}, Direction: r3.Vector{X: 0, Y: 0, Z: 1}},
			{Center: r3.Vector{X: -900, Y: -600, Z: 450}, Direction: r3.Vector{X: 0, Y: -1, Z: 0.7}},
		},
	}
	t.Reset()
}

// Reset rewinds the tool to the first posture of the first list.
func (t *Tool) Reset() {
	t.listIdx = 0
	t.postureIdx = 0
	t.current = t.postureLists[0][0]
}

func (t *Tool) isEndPosture() bool {
	return t.listIdx >= len(t.postureLists)
}

// MoveToNextPosture steps the tool's current posture a small increment
// toward the next target posture in its list. Returns false once the
// final posture of the final list has been reached.
func (t *Tool) MoveToNextPosture() bool {
	if t.isEndPosture() {
		return false
	}

	target := t.postureLists[t.listIdx][t.postureIdx]
	distance := target.Center.Sub(t.current.Center).Norm()
	angle := angleBetween(t.current.Direction, target.Direction)
	needsCenterStep := distance > postureCenterStep
	needsDirectionStep := angle > postureDirectionStep

	switch {
	case needsCenterStep && needsDirectionStep:
		step := postureCenterStep * angle / distance
		t.stepCenter(target.Center, postureCenterStep)
		t.stepDirection(target.Direction, step)
	case needsCenterStep:
		t.stepCenter(target.Center, postureCenterStep)
	case needsDirectionStep:
		t.stepDirection(target.Direction, postureDirectionStep)
	default:
		t.advancePosture()
	}

	return true
}

func (t *Tool) stepCenter(target r3.Vector, step float64) {
	delta := target.Sub(t.current.Center)
	t.current.Center = t.current.Center.Add(delta.Normalize().Mul(step))
}

func (t *Tool) stepDirection(target r3.Vector, step float64) {
	axis := t.current.Direction.Cross(target)
	t.current.Direction = rotateAroundAxis(t.current.Direction, axis, step)
}

func (t *Tool) advancePosture() {
	t.current = t.postureLists[t.listIdx][t.postureIdx]
	t.postureIdx++
	if t.postureIdx >= len(t.postureLists[t.listIdx]) {
		t.listIdx++
		t.postureIdx = 0
		if !t.isEndPosture() {
			t.current = t.postureLists[t.listIdx][t.postureIdx]
		}
	}
}

// angleBetween returns the angle, in radians, between two vectors.
func angleBetween(a, b r3.Vector) float64 {
	return math.Acos(a.Dot(b) / (a.Norm() * b.Norm()))
}

// rotateAroundAxis rotates v about axis by angle radians, via Rodrigues'
// rotation formula. Panics if axis is zero (the core's normalize
// contract: undefined for a zero vector).
func rotateAroundAxis(v, axis r3.Vector, angle float64) r3.Vector {
	if axis.Norm2() == 0 {
		panic("voxtopo: rotateAroundAxis about a zero axis")
	}
	n := axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	return v.Mul(c).Add(n.Mul(n.Dot(v) * (1 - c))).Add(n.Cross(v).Mul(s))
}

// BoundingBox returns an OBB enclosing the tool's current capsule pose, in
// world coordinates: a box axis-aligned with the capsule's own direction,
// spanning cylinder body plus the hemispherical cap.
func (t *Tool) BoundingBox() OBB {
	dir := t.current.Direction.Normalize()
	center := t.current.Center.Add(dir.Mul(t.Height/2 - t.Radius))

	axisZ := dir.Mul(t.Height / 2)
	axisX := r3.Vector{X: axisZ.Z, Y: axisZ.Z, Z: -axisZ.X - axisZ.Y}.Normalize().Mul(t.Radius)
	axisY := axisZ.Cross(axisX).Normalize().Mul(t.Radius)

	return NewOBB(
		r3ToVec3(center),
		[3]Vector3[float32]{r3ToVec3(axisX.Normalize()), r3ToVec3(axisY.Normalize()), r3ToVec3(axisZ.Normalize())},
		Vector3[float32]{X: float32(axisX.Norm()), Y: float32(axisY.Norm()), Z: float32(axisZ.Norm())},
	)
}

// IsInside reports whether world-space point p lies within the tool's
// current capsule: the cylindrical body between its base and cap, or the
// hemispherical cap itself.
func (t *Tool) IsInside(p Vector3[float32]) bool {
	d := vec3ToR3(p).Sub(t.current.Center)
	dirLen := t.current.Direction.Norm()
	z := d.Dot(t.current.Direction) / dirLen

	switch {
	case z > 0 && z <= t.Height-t.Radius:
		axis := t.current.Direction.Mul((t.Height - t.Radius) / dirLen)
		return distanceToSegment(d, r3.Vector{}, axis) <= t.Radius
	case z <= 0 && z >= -t.Radius:
		return d.Norm() <= t.Radius
	default:
		return false
	}
}

// distanceToSegment returns the distance from point p to the line segment
// [a,b] — the clamped-projection distance, not the infinite line: a point
// whose projection falls outside [a,b] measures to the nearest endpoint
// instead of to the infinite extension of the line.
func distanceToSegment(p, a, b r3.Vector) float64 {
	abVec := b.Sub(a)
	length := abVec.Norm()
	ab := abVec.Normalize()

	proj := p.Sub(a).Dot(ab)
	if proj < 0 {
		proj = 0
	} else if proj > length {
		proj = length
	}

	closest := a.Add(ab.Mul(proj))
	return p.Sub(closest).Norm()
}

func r3ToVec3(v r3.Vector) Vector3[float32] {
	return Vector3[float32]{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func vec3ToR3(v Vector3[float32]) r3.Vector {
	return r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

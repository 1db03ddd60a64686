package voxtopo

import "math"

// Shape is the tagged-sum abstraction over the two bounding volumes a node
// can be tested against: an axis-aligned box (AABB) or an oriented box
// (OBB). Go has no generic methods, so unlike a templated box hierarchy
// this is ordinary interface dispatch — one call per node tested, not per
// voxel, matching the tree's data-parallel fan-out granularity.
type Shape interface {
	// Contains reports whether p lies inside the shape.
	Contains(p Vector3[float32]) bool
	// Intersects reports whether the shape overlaps the given AABB.
	Intersects(b AABB) bool
	// Bounds returns an axis-aligned box enclosing the shape, used for the
	// node/brick pruning fast-path before a full Contains/Intersects test.
	Bounds() AABB
}

// OBB is an oriented bounding box: a center plus three mutually orthogonal,
// unit-length axes and their half-extents.
type OBB struct {
	Center    Vector3[float32]
	Axes      [3]Vector3[float32] // unit vectors, mutually orthogonal
	HalfSizes Vector3[float32]    // half-extent along each axis
}

// NewOBB builds an OBB from a center, three orthonormal axes and their
// half-extents.
func NewOBB(center Vector3[float32], axes [3]Vector3[float32], halfSizes Vector3[float32]) OBB {
	return OBB{Center: center, Axes: axes, HalfSizes: halfSizes}
}

// localCoords projects p - Center onto the box's three axes.
func (b OBB) localCoords(p Vector3[float32]) Vector3[float32] {
	d := p.Sub(b.Center)
	return Vector3[float32]{
		d.Dot(b.Axes[0]),
		d.Dot(b.Axes[1]),
		d.Dot(b.Axes[2]),
	}
}

// Contains reports whether p lies inside the oriented box.
func (b OBB) Contains(p Vector3[float32]) bool {
	l := b.localCoords(p)
	return abs32(l.X) <= b.HalfSizes.X && abs32(l.Y) <= b.HalfSizes.Y && abs32(l.Z) <= b.HalfSizes.Z
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// Bounds returns the axis-aligned box enclosing the OBB: center +/- the
// sum, per axis, of each local half-extent projected onto that world axis.
func (b OBB) Bounds() AABB {
	extent := Vector3[float32]{}
	for i := 0; i < 3; i++ {
		axisHalf := b.axisHalfExtent(i)
		extent.X += axisHalf.X
		extent.Y += axisHalf.Y
		extent.Z += axisHalf.Z
	}
	return NewAABB(b.Center.Sub(extent), b.Center.Add(extent))
}

// axisHalfExtent returns the world-space contribution of local axis i,
// scaled by its half-extent, with each component made non-negative so
// summing over i=0..2 yields the enclosing AABB's half-size.
func (b OBB) axisHalfExtent(i int) Vector3[float32] {
	a := b.Axes[i]
	h := [3]float32{b.HalfSizes.X, b.HalfSizes.Y, b.HalfSizes.Z}[i]
	return Vector3[float32]{abs32(a.X) * h, abs32(a.Y) * h, abs32(a.Z) * h}
}

// Intersects reports whether the OBB overlaps a given AABB, via the
// conservative separating-axis test restricted to the AABB's own three
// axes plus the OBB's three axes. The nine edge-cross-product axes are not
// tested, so some non-overlapping pairs are reported as intersecting.
func (b OBB) Intersects(box AABB) bool {
	return b.Bounds().Intersects(box) && aabbIntersectsOBBAxes(box, b)
}

// aabbIntersectsOBBAxes tests the three separating axes contributed by the
// OBB's own orientation (the AABB's axes are covered by the Bounds()
// overlap check above).
func aabbIntersectsOBBAxes(box AABB, b OBB) bool {
	boxCenter := box.Center()
	boxHalf := box.HalfSize()
	d := boxCenter.Sub(b.Center)

	for i := 0; i < 3; i++ {
		axis := b.Axes[i]
		dist := abs32(d.Dot(axis))
		boxProj := abs32(boxHalf.X*axis.X) + abs32(boxHalf.Y*axis.Y) + abs32(boxHalf.Z*axis.Z)
		obbProj := [3]float32{b.HalfSizes.X, b.HalfSizes.Y, b.HalfSizes.Z}[i]
		if dist > boxProj+obbProj {
			return false
		}
	}
	return true
}

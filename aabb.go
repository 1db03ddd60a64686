package voxtopo

// AABB is an axis-aligned bounding box over the float32 GL-space frame the
// tree tests cell bounds against.
type AABB struct {
	Min, Max Vector3[float32]
}

// NewAABB builds an AABB from two corner points, in either order.
func NewAABB(a, b Vector3[float32]) AABB {
	return AABB{
		Min: Vector3[float32]{min32(a.X, b.X), min32(a.Y, b.Y), min32(a.Z, b.Z)},
		Max: Vector3[float32]{max32(a.X, b.X), max32(a.Y, b.Y), max32(a.Z, b.Z)},
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vector3[float32] {
	return b.Min.Add(b.Max).Scale(0.5)
}

// HalfSize returns half the box's extent along each axis.
func (b AABB) HalfSize() Vector3[float32] {
	return b.Max.Sub(b.Min).Scale(0.5)
}

// Contains reports whether p lies within the box, inclusive of its faces.
func (b AABB) Contains(p Vector3[float32]) bool {
	return p.GreaterEq(b.Min) && p.LessEq(b.Max)
}

// ContainsBox reports whether o lies entirely within b.
func (b AABB) ContainsBox(o AABB) bool {
	return b.Contains(o.Min) && b.Contains(o.Max)
}

// Intersects reports whether the two boxes overlap, inclusive at the
// boundary: a.min <= b.max && b.min <= a.max on every axis.
func (b AABB) Intersects(o AABB) bool {
	return b.Min.LessEq(o.Max) && o.Min.LessEq(b.Max)
}

// AABB implements Shape over itself.
func (b AABB) Bounds() AABB { return b }

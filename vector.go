package voxtopo

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any numeric type a Vector3 can hold: the uint32 lattice
// coordinates the tree addresses cells by, and the float32 GL-space
// coordinates those cells map to for rendering/consumption.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector3 is a 3-component vector generic over its coordinate type. One
// definition serves both the integer lattice frame (Vector3[uint32]) and
// the normalized GL frame (Vector3[float32]), mirroring the single
// templated Vector3D<T> this package's geometry is adapted from.
type Vector3[T Number] struct {
	X, Y, Z T
}

// Vec3 is a constructor shorthand.
func Vec3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// IsZero reports whether every component is zero.
func (v Vector3[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3[T]) Div(s T) Vector3[T] {
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// Dot returns the scalar (inner) product.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Less reports whether every component of v is strictly less than the
// corresponding component of o — the componentwise ordering the tree's
// AABB containment tests are built on.
func (v Vector3[T]) Less(o Vector3[T]) bool {
	return v.X < o.X && v.Y < o.Y && v.Z < o.Z
}

// LessEq is the componentwise <=.
func (v Vector3[T]) LessEq(o Vector3[T]) bool {
	return v.X <= o.X && v.Y <= o.Y && v.Z <= o.Z
}

// GreaterEq is the componentwise >=.
func (v Vector3[T]) GreaterEq(o Vector3[T]) bool {
	return v.X >= o.X && v.Y >= o.Y && v.Z >= o.Z
}

// Length returns the Euclidean norm of v. Defined only for float-typed
// vectors: the lattice (uint32) frame never needs it.
func Length[T constraints.Float](v Vector3[T]) T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// MustNormalize returns v scaled to unit length. Panics on a zero vector —
// normalize is mathematically undefined there, and callers are required to
// never pass one.
func MustNormalize[T constraints.Float](v Vector3[T]) Vector3[T] {
	if v.IsZero() {
		panic("voxtopo: MustNormalize of a zero vector")
	}
	return v.Scale(1 / Length(v))
}

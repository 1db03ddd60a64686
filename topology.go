package voxtopo

import "time"

// Topology is the package's entry point: a hierarchical sparse voxel tree
// over a world-space cuboid region, with boolean subtraction of swept tool
// volumes and a flat voxel harvest.
//
// The tree's internal coordinate frame is normalized to [-1,+1]^3; callers
// only ever see world-space coordinates. A Topology owns its tree
// exclusively — there is no cross-Topology sharing, so nothing it does
// here needs to coordinate with any other Topology.
type Topology struct {
	cfg          Config
	chain        *levelInfo
	root         *Node
	halfRootEdge uint32
	maxEdge      float32
	metrics      MetricsSink
}

// New builds a Topology with DefaultConfig, a world region of size
// length x length x length (a cube), and no metrics sink.
func New(length float32) (*Topology, error) {
	cfg := DefaultConfig()
	cfg.Length, cfg.Width, cfg.Height = length, length, length
	return NewConfig(cfg, nil)
}

// NewConfig builds a Topology from an explicit Config and an optional
// MetricsSink (nil disables metrics). Returns an error if cfg.Validate
// fails.
func NewConfig(cfg Config, metrics MetricsSink) (*Topology, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	chain := newLevelChain(uint(cfg.N1), uint(cfg.N2), uint(cfg.N3))
	halfRootEdge := chain.edgeLenLattice() / 2

	maxEdge := cfg.Length
	if cfg.Width > maxEdge {
		maxEdge = cfg.Width
	}
	if cfg.Height > maxEdge {
		maxEdge = cfg.Height
	}

	t := &Topology{
		cfg:          cfg,
		chain:        chain,
		halfRootEdge: halfRootEdge,
		maxEdge:      maxEdge,
		metrics:      metrics,
	}

	worldBox := t.worldBoxNormalized()
	start := monotonicNow()
	t.root = newRoot(chain, worldBox, halfRootEdge)
	t.metrics.emit("initialize", monotonicNow().Sub(start))

	return t, nil
}

// worldBoxNormalized maps the world region (an axis-aligned cuboid
// centered at the origin with extents cfg.Length/Width/Height) into the
// tree's normalized [-1,+1]^3 frame: world coordinate c maps to c /
// (maxEdge/2).
func (t *Topology) worldBoxNormalized() AABB {
	half := t.maxEdge / 2
	lx, wy, hz := t.cfg.Length/2/half, t.cfg.Width/2/half, t.cfg.Height/2/half
	return NewAABB(
		Vector3[float32]{X: -lx, Y: -wy, Z: -hz},
		Vector3[float32]{X: lx, Y: wy, Z: hz},
	)
}

// toNormalized maps a world-space point into the tree's internal frame.
func (t *Topology) toNormalized(p Vector3[float32]) Vector3[float32] {
	half := t.maxEdge / 2
	return Vector3[float32]{X: p.X / half, Y: p.Y / half, Z: p.Z / half}
}

// toWorld maps a point in the tree's internal frame back to world space.
func (t *Topology) toWorld(p Vector3[float32]) Vector3[float32] {
	half := t.maxEdge / 2
	return Vector3[float32]{X: p.X * half, Y: p.Y * half, Z: p.Z * half}
}

// normalizedShape adapts a world-space Shape so Subtract can test it
// against the tree's internal frame without the shape itself knowing
// about normalization.
type normalizedShape struct {
	inner Shape
	topo  *Topology
}

func (s normalizedShape) Contains(p Vector3[float32]) bool {
	return s.inner.Contains(s.topo.toWorld(p))
}

func (s normalizedShape) Intersects(b AABB) bool {
	worldBox := NewAABB(s.topo.toWorld(b.Min), s.topo.toWorld(b.Max))
	return s.inner.Intersects(worldBox)
}

func (s normalizedShape) Bounds() AABB {
	b := s.inner.Bounds()
	return NewAABB(s.topo.toNormalized(b.Min), s.topo.toNormalized(b.Max))
}

// Subtract carves the volume of toolBounds (in world coordinates) where
// isInsideWorld holds out of the tree. isInsideWorld is invoked from many
// goroutines concurrently and must be pure and thread-safe — it must not
// close over mutable state.
//
// Must not be called concurrently with another Subtract or with Harvest;
// each call must fully complete before the next begins.
func (t *Topology) Subtract(toolBounds Shape, isInsideWorld func(Vector3[float32]) bool) {
	shape := normalizedShape{inner: toolBounds, topo: t}
	isInsideNormalized := func(p Vector3[float32]) bool {
		return isInsideWorld(t.toWorld(p))
	}

	start := monotonicNow()
	t.root.Subtract(shape, isInsideNormalized, t.halfRootEdge)
	t.metrics.emit("subtract", monotonicNow().Sub(start))
}

// Harvest clears coords and sizes, then appends the (world-space center,
// world-space edge length) of every surviving voxel in the tree. Must not
// run concurrently with Subtract.
func (t *Topology) Harvest(coords *[]Vector3[float32], sizes *[]float32) {
	*coords = (*coords)[:0]
	*sizes = (*sizes)[:0]

	var normCoords []Vector3[float32]
	var normSizes []float32

	start := monotonicNow()
	t.root.Harvest(&normCoords, &normSizes, t.halfRootEdge)
	t.metrics.emit("harvest", monotonicNow().Sub(start))

	half := t.maxEdge / 2
	for i, c := range normCoords {
		*coords = append(*coords, t.toWorld(c))
		*sizes = append(*sizes, normSizes[i]*half)
	}
}

// monotonicNow isolates the one non-deterministic stdlib call this
// package makes, so metrics timing never depends on wall-clock semantics
// elsewhere in the tree walk.
func monotonicNow() time.Time {
	return time.Now()
}

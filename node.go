package voxtopo

import (
	"github.com/millcut/voxtopo/internal/morton"
	"github.com/millcut/voxtopo/internal/sparse"
)

// Node is the single, runtime-configured tree cell type shared by every
// tier. Its level pointer determines whether it behaves as a brick (leaf
// tier, packing voxels into 64-bit words) or as an internal/root node
// (packing child Nodes) — the tier a node belongs to is data, not a
// distinct Go type, since array/bitset width can't be a type parameter.
type Node struct {
	id    uint64
	level *levelInfo

	active      bool
	hasChildren bool

	// children is populated when !level.isLeaf, after subdivide.
	children *sparse.Array[*Node]
	// words is populated when level.isLeaf, after subdivide; word i covers
	// local voxel indices [i*64, i*64+64).
	words *sparse.Array[uint64]
}

// newRootNode builds the id=0 root node at the top tier of chain.
func newRootNode(chain *levelInfo) *Node {
	return &Node{id: 0, level: chain, active: true}
}

// subdivide populates this node's children or words, all present and, for
// bricks, all bits set. Idempotent in effect but not safe to call twice
// without discarding the prior array — callers guard with hasChildren.
func (n *Node) subdivide() {
	if n.level.isLeaf {
		n.words = sparse.New[uint64](uint(n.level.childCount))
		full := ^uint64(0)
		for i := 0; i < n.level.wordCount; i++ {
			n.words.InsertAt(uint(i), full)
		}
	} else {
		n.children = sparse.New[*Node](uint(n.level.childCount))
		for i := uint64(0); i < n.level.childCount; i++ {
			child := &Node{
				id:     morton.ChildID(n.id, n.level.n, i),
				level:  n.level.child,
				active: true,
			}
			n.children.InsertAt(uint(i), child)
		}
	}
	n.hasChildren = true
}

// cornerLattice returns this node's minimum-corner lattice coordinate.
func (n *Node) cornerLattice() Vector3[uint32] {
	x, y, z := morton.MustDecode(n.id << (3 * n.level.bitsBelow))
	return Vector3[uint32]{X: x, Y: y, Z: z}
}

// boundsGL returns this node's bounding cube in normalized GL space.
func (n *Node) boundsGL(halfRootEdge uint32) AABB {
	return latticeBoxToGL(n.cornerLattice(), n.level.edgeLenLattice(), halfRootEdge)
}

func latticeToGL(p Vector3[uint32], halfRootEdge uint32) Vector3[float32] {
	return Vector3[float32]{
		X: float32(p.X)/float32(halfRootEdge) - 1,
		Y: float32(p.Y)/float32(halfRootEdge) - 1,
		Z: float32(p.Z)/float32(halfRootEdge) - 1,
	}
}

// latticeBoxToGL maps a lattice-space cube (corner, edge length in voxel
// units) to its GL-space AABB. The same formula covers both multi-voxel
// node cells and individual unit voxels (edge=1): center = (corner +
// edge/2) / halfRootEdge - 1.
func latticeBoxToGL(corner Vector3[uint32], edge uint32, halfRootEdge uint32) AABB {
	minV := latticeToGL(corner, halfRootEdge)
	maxCorner := Vector3[uint32]{X: corner.X + edge, Y: corner.Y + edge, Z: corner.Z + edge}
	maxV := latticeToGL(maxCorner, halfRootEdge)
	return AABB{Min: minV, Max: maxV}
}

// voxelBoundsGL returns the GL-space bounding cube of a single voxel
// identified by its local index within this (leaf-tier) node.
func (n *Node) voxelBoundsGL(localIndex uint64, halfRootEdge uint32) AABB {
	globalID := morton.ChildID(n.id, n.level.n, localIndex)
	x, y, z := morton.MustDecode(globalID)
	return latticeBoxToGL(Vector3[uint32]{X: x, Y: y, Z: z}, 1, halfRootEdge)
}

// Initialize builds the subtree so that only cells inside bound are
// active, with no tool carving applied yet. Called once per node,
// starting at the root's children, during Topology construction.
func (n *Node) Initialize(bound AABB, halfRootEdge uint32) {
	nodeBox := n.boundsGL(halfRootEdge)

	if bound.ContainsBox(nodeBox) {
		n.active = true
		n.hasChildren = false
		return
	}
	if !bound.Intersects(nodeBox) {
		n.active = false
		return
	}

	n.active = true
	n.subdivide()

	if n.level.isLeaf {
		n.initializeWords(bound, halfRootEdge)
		return
	}

	entries := n.presentChildren()
	parallelEach(entries, func(c childEntry) {
		c.node.Initialize(bound, halfRootEdge)
	})
}

func (n *Node) initializeWords(bound AABB, halfRootEdge uint32) {
	for i, w := range n.words.All {
		nw := w
		for bit := uint64(0); bit < 64; bit++ {
			if nw&(1<<bit) == 0 {
				continue
			}
			localIdx := uint64(i)*64 + bit
			center := n.voxelBoundsGL(localIdx, halfRootEdge).Center()
			if !bound.Contains(center) {
				nw &^= 1 << bit
			}
		}
		n.words.InsertAt(i, nw)
	}
}

// Subtract carves the volume where isInside holds, within tool's bounding
// shape, out of this subtree. Sibling subtrees are independent: this call
// only ever touches slots it owns in its own children/words array and
// recurses into children it uniquely owns, so concurrent calls across
// disjoint subtrees never race.
func (n *Node) Subtract(tool Shape, isInside func(Vector3[float32]) bool, halfRootEdge uint32) {
	nodeBox := n.boundsGL(halfRootEdge)
	if !tool.Intersects(nodeBox) {
		return
	}

	if n.level.isLeaf {
		n.subtractWords(isInside, halfRootEdge)
		return
	}

	if allCornersInside(nodeBox, isInside) {
		n.active = false
		return
	}

	if !n.hasChildren {
		n.subdivide()
	}

	entries := n.presentChildren()
	parallelEach(entries, func(c childEntry) {
		if c.node.active {
			c.node.Subtract(tool, isInside, halfRootEdge)
		}
	})
}

func (n *Node) subtractWords(isInside func(Vector3[float32]) bool, halfRootEdge uint32) {
	if !n.hasChildren {
		n.subdivide()
	}

	for i, w := range n.words.All {
		nw := w
		for bit := uint64(0); bit < 64; bit++ {
			if nw&(1<<bit) == 0 {
				continue
			}
			localIdx := uint64(i)*64 + bit
			center := n.voxelBoundsGL(localIdx, halfRootEdge).Center()
			if isInside(center) {
				nw &^= 1 << bit
			}
		}
		if nw == 0 {
			n.words.DeleteAt(i)
		} else {
			n.words.InsertAt(i, nw)
		}
	}
}

// allCornersInside reports whether every one of box's 8 corners satisfies
// isInside — the aggressive prune that lets Subtract collapse a whole
// subtree in one step instead of recursing all the way to its voxels.
func allCornersInside(box AABB, isInside func(Vector3[float32]) bool) bool {
	corners := [8]Vector3[float32]{
		{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
	}
	for _, c := range corners {
		if !isInside(c) {
			return false
		}
	}
	return true
}

// Harvest appends the surviving voxel (center, edge length) pairs under
// this subtree to coords/sizes, in GL space. Releases inactive children
// and zeroed words as it walks past them (lazy garbage collection) — must
// not be called concurrently with Subtract. An inactive node emits nothing.
func (n *Node) Harvest(coords *[]Vector3[float32], sizes *[]float32, halfRootEdge uint32) {
	if !n.active {
		return
	}
	if !n.hasChildren {
		box := n.boundsGL(halfRootEdge)
		*coords = append(*coords, box.Center())
		*sizes = append(*sizes, box.Max.X-box.Min.X)
		return
	}

	if n.level.isLeaf {
		n.harvestWords(coords, sizes, halfRootEdge)
		return
	}

	for i, child := range n.children.All {
		if !child.active {
			n.children.DeleteAt(i)
			continue
		}
		child.Harvest(coords, sizes, halfRootEdge)
	}
}

func (n *Node) harvestWords(coords *[]Vector3[float32], sizes *[]float32, halfRootEdge uint32) {
	for i, w := range n.words.All {
		if w == 0 {
			n.words.DeleteAt(i)
			continue
		}
		for bit := uint64(0); bit < 64; bit++ {
			if w&(1<<bit) == 0 {
				continue
			}
			localIdx := uint64(i)*64 + bit
			box := n.voxelBoundsGL(localIdx, halfRootEdge)
			*coords = append(*coords, box.Center())
			*sizes = append(*sizes, box.Max.X-box.Min.X)
		}
	}
}

type childEntry struct {
	idx  uint
	node *Node
}

// presentChildren snapshots this node's present children into a slice so
// a subsequent parallel fan-out can read it without racing the sparse
// array's own bitset/slice mutation (which Harvest alone performs).
func (n *Node) presentChildren() []childEntry {
	out := make([]childEntry, 0, n.children.Len())
	for i, c := range n.children.All {
		out = append(out, childEntry{idx: i, node: c})
	}
	return out
}

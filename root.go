package voxtopo

// newRoot builds the root of the tree and forces it into the subdivided
// state — the root is never emitted as a single solid cuboid by Harvest,
// unlike any other node, which may stay undivided if its whole cell sits
// inside (or outside) the bound it was initialized against.
func newRoot(chain *levelInfo, worldBox AABB, halfRootEdge uint32) *Node {
	root := newRootNode(chain)
	root.subdivide()

	entries := root.presentChildren()
	parallelEach(entries, func(c childEntry) {
		c.node.Initialize(worldBox, halfRootEdge)
	})

	return root
}

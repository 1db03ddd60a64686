package voxtopo

// levelInfo describes one tier of the three-level tree (root, internal, or
// brick/leaf). Go generics cannot parametrize an array's length by a type
// parameter, so unlike the three compile-time-templated node classes this
// tree is built from, every Node in this tree shares one type and carries a
// pointer to the levelInfo of its own tier. levelInfo.child chains to the
// descriptor of the tier directly beneath it, nil at the leaf.
type levelInfo struct {
	n          uint       // this tier's own fanout bits per axis
	isLeaf     bool       // true for the brick/voxel tier
	childCount uint64     // 2^(3n): child slots (internal) or voxel slots (leaf)
	wordCount  int        // childCount/64, meaningful only when isLeaf
	bitsBelow  uint       // cumulative fanout bits from this tier down to voxel granularity
	child      *levelInfo // next tier down; nil at the leaf
}

func newLevelChain(n1, n2, n3 uint) *levelInfo {
	leaf := &levelInfo{
		n:          n3,
		isLeaf:     true,
		childCount: 1 << (3 * n3),
		bitsBelow:  n3,
	}
	leaf.wordCount = int(leaf.childCount / 64)

	internal := &levelInfo{
		n:          n2,
		childCount: 1 << (3 * n2),
		bitsBelow:  n2 + n3,
		child:      leaf,
	}

	root := &levelInfo{
		n:          n1,
		childCount: 1 << (3 * n1),
		bitsBelow:  n1 + n2 + n3,
		child:      internal,
	}

	return root
}

// edgeLenLattice returns the side length, in voxel (leaf-granularity)
// units, of a single cell at this tier.
func (lv *levelInfo) edgeLenLattice() uint32 {
	return 1 << lv.bitsBelow
}

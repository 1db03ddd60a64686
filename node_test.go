package voxtopo

import "testing"

func TestSubdivideLeafAllWordsFull(t *testing.T) {
	chain := newLevelChain(1, 1, 2) // leaf tier: n3=2 -> 2^6=64 voxels -> 1 word
	leaf := &Node{id: 0, level: chain.child.child, active: true}
	leaf.subdivide()

	if !leaf.hasChildren {
		t.Fatal("subdivide should set hasChildren")
	}
	if leaf.words.Len() != leaf.level.wordCount {
		t.Fatalf("words.Len() = %d, want %d", leaf.words.Len(), leaf.level.wordCount)
	}
	for i := 0; i < leaf.level.wordCount; i++ {
		w, ok := leaf.words.Get(uint(i))
		if !ok || w != ^uint64(0) {
			t.Errorf("word %d = %#x, want all bits set", i, w)
		}
	}
}

func TestSubdivideInternalChildIDs(t *testing.T) {
	chain := newLevelChain(1, 2, 1)
	root := newRootNode(chain)
	root.subdivide()

	if root.children.Len() != int(chain.childCount) {
		t.Fatalf("children.Len() = %d, want %d", root.children.Len(), chain.childCount)
	}
	for i, c := range root.children.All {
		wantID := uint64(i) // parent id 0, so child id = 0<<3n | i = i
		if c.id != wantID {
			t.Errorf("child %d has id %d, want %d", i, c.id, wantID)
		}
		if c.level != chain.child {
			t.Error("child should use the next tier's levelInfo")
		}
		if !c.active {
			t.Error("freshly subdivided child should start active")
		}
	}
}

func TestCornerLatticeAndBounds(t *testing.T) {
	chain := newLevelChain(1, 1, 1) // total bits = 3, edgeLen = 8
	root := newRootNode(chain)
	root.subdivide()

	halfRootEdge := chain.edgeLenLattice() / 2 // = 4

	// child index 0 should sit at the lattice origin.
	var originChild *Node
	for _, c := range root.children.All {
		if c.id == 0 {
			originChild = c
		}
	}
	if originChild == nil {
		t.Fatal("expected a child with id 0")
	}

	corner := originChild.cornerLattice()
	if corner != (Vector3[uint32]{0, 0, 0}) {
		t.Errorf("cornerLattice() = %+v, want (0,0,0)", corner)
	}

	box := originChild.boundsGL(halfRootEdge)
	if box.Min != (Vector3[float32]{-1, -1, -1}) {
		t.Errorf("boundsGL().Min = %+v, want (-1,-1,-1)", box.Min)
	}
}

func TestAllCornersInside(t *testing.T) {
	box := NewAABB(Vec3[float32](0, 0, 0), Vec3[float32](1, 1, 1))

	alwaysTrue := func(Vector3[float32]) bool { return true }
	if !allCornersInside(box, alwaysTrue) {
		t.Error("allCornersInside should be true when every corner satisfies the predicate")
	}

	onlyOrigin := func(p Vector3[float32]) bool { return p == (Vector3[float32]{0, 0, 0}) }
	if allCornersInside(box, onlyOrigin) {
		t.Error("allCornersInside should be false unless all 8 corners satisfy the predicate")
	}
}

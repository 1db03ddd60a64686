package voxtopo

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestNewToolDefaults(t *testing.T) {
	tool := NewTool()
	if tool.Radius != defaultToolRadius || tool.Height != defaultToolHeight {
		t.Errorf("NewTool() radius/height = %v/%v, want %v/%v", tool.Radius, tool.Height, defaultToolRadius, defaultToolHeight)
	}
	if len(tool.postureLists) != 3 {
		t.Fatalf("NewTool() should load 3 posture lists, got %d", len(tool.postureLists))
	}
}

func TestToolIsInsideAtOrigin(t *testing.T) {
	tool := NewTool()
	center := r3ToVec3(tool.current.Center)

	if !tool.IsInside(center) {
		t.Error("tool center should be inside its own capsule")
	}

	far := center.Add(Vec3[float32](10000, 10000, 10000))
	if tool.IsInside(far) {
		t.Error("a distant point should not be inside the capsule")
	}
}

func TestToolMoveToNextPostureAdvancesAndTerminates(t *testing.T) {
	tool := NewTool()

	steps := 0
	const maxSteps = 100_000
	for tool.MoveToNextPosture() {
		steps++
		if steps > maxSteps {
			t.Fatal("MoveToNextPosture did not terminate within a reasonable step budget")
		}
	}
	if steps == 0 {
		t.Error("MoveToNextPosture should take at least one step before exhausting the posture lists")
	}
	if !tool.isEndPosture() {
		t.Error("after MoveToNextPosture returns false, the tool should be at its end posture")
	}
}

func TestToolResetRewinds(t *testing.T) {
	tool := NewTool()
	tool.MoveToNextPosture()
	tool.Reset()

	if tool.listIdx != 0 || tool.postureIdx != 0 {
		t.Errorf("Reset() left listIdx=%d postureIdx=%d, want 0,0", tool.listIdx, tool.postureIdx)
	}
	if tool.current != tool.postureLists[0][0] {
		t.Error("Reset() should restore the first posture of the first list")
	}
}

func TestDistanceToSegmentClampsPastEndpoints(t *testing.T) {
	a := r3.Vector{X: 0, Y: 0, Z: 0}
	b := r3.Vector{X: 0, Y: 0, Z: 10}

	// p projects well past b: the clamped-segment distance must measure to
	// b itself, not to the infinite extension of the line through a,b.
	p := r3.Vector{X: 3, Y: 0, Z: 20}
	got := distanceToSegment(p, a, b)
	want := math.Sqrt(3*3 + 10*10) // distance from p to b
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("distanceToSegment past b = %v, want %v", got, want)
	}

	// p projects well before a: must measure to a, not the infinite line.
	p2 := r3.Vector{X: 4, Y: 0, Z: -5}
	got2 := distanceToSegment(p2, a, b)
	want2 := math.Sqrt(4*4 + 5*5) // distance from p2 to a
	if math.Abs(got2-want2) > 1e-9 {
		t.Errorf("distanceToSegment before a = %v, want %v", got2, want2)
	}

	// p projects within [a,b]: ordinary perpendicular distance.
	p3 := r3.Vector{X: 6, Y: 0, Z: 5}
	got3 := distanceToSegment(p3, a, b)
	if math.Abs(got3-6) > 1e-9 {
		t.Errorf("distanceToSegment within segment = %v, want 6", got3)
	}
}

func TestToolBoundingBoxEnclosesCenter(t *testing.T) {
	tool := NewTool()
	box := tool.BoundingBox()
	center := r3ToVec3(tool.current.Center)
	if !box.Bounds().Contains(center) {
		t.Error("tool bounding box should enclose its own posture center")
	}
}

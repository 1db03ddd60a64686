// Command millsim drives a Topology through a sample milling run: a
// capsule tool stepping through its built-in posture lists, carving the
// world on every step, logging how the surviving voxel count shrinks.
package main

import (
	"log"
	"time"

	"github.com/millcut/voxtopo"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	ts := time.Now()
	topo, err := voxtopo.NewConfig(voxtopo.DefaultConfig(), logMetrics)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("initialized topology: %v", time.Since(ts))

	tool := voxtopo.NewTool()

	var coords []voxtopo.Vector3[float32]
	var sizes []float32

	topo.Harvest(&coords, &sizes)
	log.Printf("voxel count before carving: %d", len(coords))

	prevCount := len(coords)
	step := 0
	for tool.MoveToNextPosture() {
		step++

		box := tool.BoundingBox()
		topo.Subtract(box, tool.IsInside)

		topo.Harvest(&coords, &sizes)
		if len(coords) != prevCount {
			log.Printf("step %d: voxel count %d -> %d", step, prevCount, len(coords))
			prevCount = len(coords)
		}
	}

	log.Printf("done after %d steps, final voxel count: %d", step, len(coords))
}

func logMetrics(ev voxtopo.MetricsEvent) {
	log.Printf("%s: %v", ev.Operation, ev.Duration)
}

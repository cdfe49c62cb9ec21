package axis_test

import (
	"fmt"

	"github.com/cwbudde/zeroflux/axis"
)

func ExampleMinorLogLabels() {
	ticks, _ := axis.MinorLogTicks(1, 100)
	cfg, _ := axis.NewLabelConfig(axis.WithLabelMax(5), axis.WithSkip(2))

	labelled, _ := axis.MinorLogLabels(ticks, 1, 100, cfg)
	for _, t := range labelled {
		if t.Label != "" {
			fmt.Printf("%g:%s ", t.Value, t.Label)
		}
	}
	fmt.Println()
	// Output:
	// 2:2 4:4 20:2 40:4
}

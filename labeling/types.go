package labeling

import "time"

// Timings records wall time spent in each stage.
type Timings struct {
	Scan     time.Duration // forward and backward passes
	Resolve  time.Duration
	Compress time.Duration
}

// Total returns the sum of all stages.
func (t Timings) Total() time.Duration {
	return t.Scan + t.Resolve + t.Compress
}

// Result describes one labeling run.
type Result struct {
	// Components is k: output labels are exactly 1..k.
	Components int
	// Provisional is the number of labels allocated by the forward scan.
	Provisional int
	// Merges counts unions that joined two distinct classes.
	Merges int
	// MaxChase is the longest parent chain walked in the table.
	MaxChase int
	Timings  Timings
}

package landscape

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TallThreshold is the static height above which a column counts as a peak.
const TallThreshold = 1.0

// Stats summarizes the columns of one frame.
type Stats struct {
	MeanHeight   float64
	StdDevHeight float64
	MeanScale    float64
	StdDevScale  float64
	MaxScale     float64
	// P90Scale is the 0.9 empirical quantile of the drawn scale.
	P90Scale float64
	Peaks    int
}

// Summarize computes frame statistics. An empty slice yields zero Stats.
func Summarize(columns []Column) Stats {
	if len(columns) == 0 {
		return Stats{}
	}
	heights := make([]float64, len(columns))
	scales := make([]float64, len(columns))
	var s Stats
	for i, c := range columns {
		heights[i] = c.Height
		scales[i] = c.Scale
		if c.Height > TallThreshold {
			s.Peaks++
		}
	}
	s.MeanHeight, s.StdDevHeight = stat.MeanStdDev(heights, nil)
	s.MeanScale, s.StdDevScale = stat.MeanStdDev(scales, nil)
	if len(columns) == 1 {
		s.StdDevHeight, s.StdDevScale = 0, 0
	}
	s.MaxScale = floats.Max(scales)
	slices.Sort(scales)
	s.P90Scale = stat.Quantile(0.9, stat.Empirical, scales, nil)
	return s
}

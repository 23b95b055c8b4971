package lengthfilter

import (
	"gonum.org/v1/gonum/stat"
)

// Stats is the per-sample side channel of one filtering pass. The counts
// feed progress reporting; the accepted sets record how the selection was
// reached in periodicity mode.
type Stats struct {
	// ReadsBefore and ReadsAfter count table rows on either side of the
	// length selection.
	ReadsBefore int
	ReadsAfter  int
	// AcceptedEnd5 and AcceptedEnd3 are the per-end periodic length sets,
	// sorted ascending. Nil in custom mode.
	AcceptedEnd5 []int
	AcceptedEnd3 []int
	// Selected is the length set the table was filtered by, sorted
	// ascending. In periodicity mode it is the intersection of the two
	// per-end sets.
	Selected []int
	// MeanLength and StdDevLength summarize the kept reads' length
	// distribution. Both are 0 when fewer than two reads survive.
	MeanLength   float64
	StdDevLength float64
}

// ReadsRemoved returns the number of rows dropped by the selection.
func (s Stats) ReadsRemoved() int { return s.ReadsBefore - s.ReadsAfter }

// PercentRemoved returns the removed fraction as a percentage of the input
// rows, or 0 for an empty input table.
func (s Stats) PercentRemoved() float64 {
	if s.ReadsBefore == 0 {
		return 0
	}
	return 100 * float64(s.ReadsRemoved()) / float64(s.ReadsBefore)
}

// Merge adds the row counts of the two Stats objects and creates new Stats.
// The length sets and distribution summaries are per-sample quantities and
// are cleared in the result.
func (s Stats) Merge(o Stats) Stats {
	return Stats{
		ReadsBefore: s.ReadsBefore + o.ReadsBefore,
		ReadsAfter:  s.ReadsAfter + o.ReadsAfter,
	}
}

// summarizeLengths fills the kept-length distribution fields from the
// filtered table.
func (s *Stats) summarizeLengths(t Table) {
	if len(t) == 0 {
		return
	}
	lengths := make([]float64, len(t))
	for i := range t {
		lengths[i] = float64(t[i].Length)
	}
	s.MeanLength = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		s.StdDevLength = stat.StdDev(lengths, nil)
	}
}

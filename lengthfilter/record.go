package lengthfilter

import (
	"sort"

	"github.com/biogo/biogo/feat"
)

// End selects which extremity of a read a computation applies to.
type End int

const (
	// End5 is the 5' extremity of the read.
	End5 End = iota
	// End3 is the 3' extremity of the read.
	End3
)

// String returns "5'" or "3'".
func (e End) String() string {
	if e == End5 {
		return "5'"
	}
	return "3'"
}

// Record is one aligned sequencing read in transcript coordinates. Records
// are immutable inputs; filtering selects subsets and never rewrites fields.
type Record struct {
	// Transcript names the transcript the read aligned to.
	Transcript string
	// Length is the fragment length in nucleotides.
	Length int
	// CDSStart and CDSStop delimit the annotated coding sequence on the
	// transcript, 1-based inclusive. CDSStart == 0 marks a transcript with
	// no annotated coding sequence; such reads contribute no periodicity
	// evidence but are still subject to the final length selection.
	CDSStart int
	CDSStop  int
	// End5 and End3 are the transcript coordinates of the two read
	// extremities, 1-based.
	End5 int
	End3 int
	// Strand is carried through filtering unchanged.
	Strand feat.Orientation
}

// end returns the coordinate of the chosen extremity.
func (r *Record) end(e End) int {
	if e == End5 {
		return r.End5
	}
	return r.End3
}

// Table is the ordered read table of one sample.
type Table []Record

// Lengths returns the distinct read lengths present in t, sorted ascending.
func (t Table) Lengths() []int {
	seen := make(map[int]bool)
	for i := range t {
		seen[t[i].Length] = true
	}
	lengths := make([]int, 0, len(seen))
	for l := range seen {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

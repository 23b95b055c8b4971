package lengthfilter

import (
	"sort"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/store/interval"
)

// Range is one read projected onto its transcript: a closed interval over
// the read extremities, 1-based inclusive. Strand is always forward in a
// projected range regardless of the source record's strand.
type Range struct {
	Transcript string
	Start, End int
	Strand     feat.Orientation
}

// RangeSet holds a filtered table as per-transcript interval trees and
// answers overlap queries against them.
type RangeSet struct {
	trees map[string]*interval.IntTree
	n     int
}

// ToRanges projects each read of t onto its transcript. The interval bounds
// come from the 5' and 3' extremities, lower coordinate first.
func ToRanges(t Table) *RangeSet {
	trees := make(map[string]*interval.IntTree)
	for i := range t {
		r := &t[i]
		start, end := r.End5, r.End3
		if end < start {
			start, end = end, start
		}
		tree, ok := trees[r.Transcript]
		if !ok {
			tree = &interval.IntTree{}
			trees[r.Transcript] = tree
		}
		// Fast insert; ranges are adjusted once after the loop.
		tree.Insert(readInterval{
			r:  Range{Transcript: r.Transcript, Start: start, End: end, Strand: feat.Forward},
			id: uintptr(i),
		}, true)
	}
	for _, tree := range trees {
		tree.AdjustRanges()
	}
	return &RangeSet{trees: trees, n: len(t)}
}

// Len returns the number of ranges in the set.
func (s *RangeSet) Len() int { return s.n }

// Transcripts returns the transcript names present in the set, sorted.
func (s *RangeSet) Transcripts() []string {
	names := make([]string, 0, len(s.trees))
	for name := range s.trees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Overlapping returns the ranges on transcript tr that overlap the closed
// interval [start, end], ordered by start then end coordinate.
func (s *RangeSet) Overlapping(tr string, start, end int) []Range {
	tree := s.trees[tr]
	if tree == nil {
		return nil
	}
	var out []Range
	for _, iv := range tree.Get(rangeQuery{start: start, end: end + 1}) {
		out = append(out, iv.(readInterval).r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

// Each calls fn for every range in the set, grouped by transcript in sorted
// order and by ascending start within a transcript.
func (s *RangeSet) Each(fn func(Range)) {
	for _, name := range s.Transcripts() {
		s.trees[name].Do(func(iv interval.IntInterface) (done bool) {
			fn(iv.(readInterval).r)
			return
		})
	}
}

// readInterval adapts Range to the interval tree interface. Tree ranges are
// half-open, so End+1 is stored.
type readInterval struct {
	r  Range
	id uintptr
}

func (i readInterval) ID() uintptr { return i.id }
func (i readInterval) Range() interval.IntRange {
	return interval.IntRange{Start: i.r.Start, End: i.r.End + 1}
}
func (i readInterval) Overlap(b interval.IntRange) bool {
	return i.r.End+1 > b.Start && i.r.Start < b.End
}

// rangeQuery is a half-open query interval.
type rangeQuery struct {
	start, end int
}

func (q rangeQuery) Range() interval.IntRange {
	return interval.IntRange{Start: q.start, End: q.end}
}
func (q rangeQuery) Overlap(b interval.IntRange) bool {
	return q.end > b.Start && q.start < b.End
}

package lengthfilter

// acceptedLengths reduces a frame count table to the set of read lengths
// that pass the periodicity threshold at that end: a length is accepted
// when any single frame holds at least threshold percent of the length's
// qualifying reads. The rule is deliberately "any frame", not "the best
// frame"; the two differ only for thresholds <= 50, where more than one
// frame can clear the bar. A length with no qualifying reads has no cells
// in counts and is never accepted.
//
// Two passes: per-length totals first, then the percentage test per cell.
func acceptedLengths(counts map[frameKey]int, threshold int) map[int]bool {
	totals := make(map[int]int)
	for k, n := range counts {
		totals[k.length] += n
	}
	accepted := make(map[int]bool)
	for k, n := range counts {
		if accepted[k.length] {
			continue
		}
		total := totals[k.length]
		if total == 0 {
			continue
		}
		if 100*float64(n)/float64(total) >= float64(threshold) {
			accepted[k.length] = true
		}
	}
	return accepted
}

package lengthfilter

// frameKey identifies one cell of a per-end frame count table.
type frameKey struct {
	length int
	frame  int // 0, 1 or 2
}

// countFrames tabulates qualifying reads by (length, frame) for one end.
// A read qualifies when its transcript has an annotated coding sequence and
// the chosen extremity lies inside [CDSStart, CDSStop]; the frame is the
// offset of the extremity from the coding start, mod 3. Reads failing the
// qualification contribute no evidence. Pure function of t and e.
func countFrames(t Table, e End) map[frameKey]int {
	counts := make(map[frameKey]int)
	for i := range t {
		r := &t[i]
		if r.CDSStart == 0 {
			continue
		}
		pos := r.end(e)
		if pos < r.CDSStart || pos > r.CDSStop {
			continue
		}
		counts[frameKey{r.Length, (pos - r.CDSStart) % 3}]++
	}
	return counts
}

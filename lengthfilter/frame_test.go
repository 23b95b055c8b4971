package lengthfilter

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestCountFrames(t *testing.T) {
	table := Table{
		// Frame 0 at the 5' end, frame 2 at the 3' end.
		{Transcript: "t1", Length: 28, CDSStart: 10, CDSStop: 100, End5: 13, End3: 42},
		// Frame 1 at both ends.
		{Transcript: "t1", Length: 28, CDSStart: 10, CDSStop: 100, End5: 11, End3: 38},
		// No annotated coding sequence: no evidence from either end.
		{Transcript: "t2", Length: 28, CDSStart: 0, CDSStop: 0, End5: 11, End3: 38},
		// 5' end upstream of the coding start: only the 3' end qualifies.
		{Transcript: "t1", Length: 30, CDSStart: 10, CDSStop: 100, End5: 7, End3: 36},
		// 3' end downstream of the coding stop: only the 5' end qualifies.
		{Transcript: "t1", Length: 30, CDSStart: 10, CDSStop: 100, End5: 95, End3: 124},
	}

	expect.EQ(t, countFrames(table, End5), map[frameKey]int{
		{length: 28, frame: 0}: 1,
		{length: 28, frame: 1}: 1,
		{length: 30, frame: 1}: 1,
	})
	expect.EQ(t, countFrames(table, End3), map[frameKey]int{
		{length: 28, frame: 2}: 1,
		{length: 28, frame: 1}: 1,
		{length: 30, frame: 2}: 1,
	})
}

func TestCountFramesEmpty(t *testing.T) {
	expect.EQ(t, countFrames(nil, End5), map[frameKey]int{})
	expect.EQ(t, countFrames(Table{}, End3), map[frameKey]int{})
}

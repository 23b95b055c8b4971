package lengthfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptedLengths(t *testing.T) {
	counts := map[frameKey]int{
		{28, 0}: 80, {28, 1}: 10, {28, 2}: 10,
		{29, 0}: 40, {29, 1}: 30, {29, 2}: 30,
		{30, 0}: 75, {30, 1}: 15, {30, 2}: 10,
	}
	tests := []struct {
		threshold int
		accepted  []int
	}{
		{10, []int{28, 29, 30}},
		{40, []int{28, 29, 30}},
		{41, []int{28, 30}},
		{70, []int{28, 30}},
		{76, []int{28}},
		{80, []int{28}},
		{81, nil},
		{100, nil},
	}
	for _, test := range tests {
		accepted := acceptedLengths(counts, test.threshold)
		assert.Equal(t, test.accepted, sortedLengthsOrNil(accepted), "threshold %d", test.threshold)
	}
}

// A single frame always holds at least a third of a length's reads, so the
// floor threshold accepts every length with any qualifying read at all.
func TestAcceptedLengthsFloorThreshold(t *testing.T) {
	counts := map[frameKey]int{
		{25, 0}: 1, {25, 1}: 1, {25, 2}: 1,
		{26, 1}: 1,
		{27, 0}: 33, {27, 1}: 34, {27, 2}: 33,
	}
	assert.Equal(t, []int{25, 26, 27}, sortedLengths(acceptedLengths(counts, 10)))
}

func TestAcceptedLengthsEmpty(t *testing.T) {
	assert.Empty(t, acceptedLengths(map[frameKey]int{}, 10))
}

// Raising the threshold can only shrink the accepted set.
func TestAcceptedLengthsMonotonic(t *testing.T) {
	counts := map[frameKey]int{
		{20, 0}: 7, {20, 1}: 2, {20, 2}: 1,
		{21, 0}: 1, {21, 1}: 1, {21, 2}: 1,
		{22, 2}: 5,
		{23, 0}: 49, {23, 1}: 51,
	}
	prev := acceptedLengths(counts, 10)
	for threshold := 11; threshold <= 100; threshold++ {
		cur := acceptedLengths(counts, threshold)
		for l := range cur {
			assert.True(t, prev[l], "length %d newly accepted at threshold %d", l, threshold)
		}
		prev = cur
	}
}

func sortedLengthsOrNil(set map[int]bool) []int {
	if len(set) == 0 {
		return nil
	}
	return sortedLengths(set)
}

package lengthfilter

import (
	"sort"

	"github.com/grailbio/base/traverse"
)

// Filter applies opts to a single sample table and returns the subset of
// rows whose length is in the selected set, preserving input row order,
// together with the side-channel Stats. The input table is never mutated.
func Filter(t Table, opts Opts) (Table, Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, Stats{}, err
	}
	filtered, stats := filterSample(t, opts)
	return filtered, stats, nil
}

// FilterSamples filters every sample in the batch. Parameters are validated
// once, up front; a validation failure aborts the whole batch before any
// sample is touched. Samples share no state and are filtered concurrently.
func FilterSamples(samples map[string]Table, opts Opts) (map[string]Table, map[string]Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)

	filtered := make([]Table, len(names))
	stats := make([]Stats, len(names))
	err := traverse.Each(len(names), func(i int) error {
		filtered[i], stats[i] = filterSample(samples[names[i]], opts)
		if opts.Observer != nil {
			opts.Observer(names[i], stats[i])
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	outTables := make(map[string]Table, len(names))
	outStats := make(map[string]Stats, len(names))
	for i, name := range names {
		outTables[name] = filtered[i]
		outStats[name] = stats[i]
	}
	return outTables, outStats, nil
}

// filterSample runs the length selection for one sample.
// REQUIRES: opts has been validated.
func filterSample(t Table, opts Opts) (Table, Stats) {
	stats := Stats{ReadsBefore: len(t)}
	var selected map[int]bool
	switch opts.Mode {
	case ModeCustom:
		selected = make(map[int]bool, len(opts.LengthSet))
		for _, l := range opts.LengthSet {
			selected[l] = true
		}
	case ModePeriodicity:
		// The two ends are scored independently and a length must pass
		// at both: periodicity at one extremity alone is not trusted.
		end5 := acceptedLengths(countFrames(t, End5), opts.Threshold)
		end3 := acceptedLengths(countFrames(t, End3), opts.Threshold)
		selected = intersect(end5, end3)
		stats.AcceptedEnd5 = sortedLengths(end5)
		stats.AcceptedEnd3 = sortedLengths(end3)
	}
	stats.Selected = sortedLengths(selected)

	filtered := make(Table, 0, len(t))
	for _, r := range t {
		if selected[r.Length] {
			filtered = append(filtered, r)
		}
	}
	stats.ReadsAfter = len(filtered)
	stats.summarizeLengths(filtered)
	return filtered, stats
}

func intersect(a, b map[int]bool) map[int]bool {
	out := make(map[int]bool)
	for l := range a {
		if b[l] {
			out[l] = true
		}
	}
	return out
}

func sortedLengths(set map[int]bool) []int {
	lengths := make([]int, 0, len(set))
	for l := range set {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

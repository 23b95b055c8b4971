// Package lengthfilter selects ribosome-profiling reads by fragment length.
//
// Reads are kept either by an explicit length set (custom mode) or by
// trinucleotide periodicity (periodicity mode): for each candidate length,
// the distribution of read-end positions over the three reading-frame
// offsets relative to the coding-sequence start is computed independently
// for the 5' and 3' extremities, and a length survives only if a single
// frame concentrates at least the threshold percentage of its reads at both
// ends. Samples are independent and filtered concurrently; filtering is a
// pure transform of the input table and preserves row order.
package lengthfilter

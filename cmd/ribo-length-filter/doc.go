// ribo-length-filter filters per-sample read tables by fragment length,
// either keeping an explicit length set or inferring the periodic lengths
// from the trinucleotide phasing of read ends along coding sequences.
//
// Inputs are name=path pairs of read-table TSVs (see encoding/readlist for
// the format; .gz input is handled transparently):
//
//	ribo-length-filter -mode periodicity -threshold 60 wt=wt.tsv mut=mut.tsv.gz
//	ribo-length-filter -mode custom -lengths 26:31 -bed wt=wt.tsv
//
// Each sample's filtered table is written to -output-dir as
// <sample>.filtered.tsv, or as <sample>.filtered.bed with -bed, where reads
// become forward-strand intervals on their transcripts.
package main

// Package readlist reads and writes per-sample read tables as tab-separated
// text, optionally gzip-compressed. One row describes one aligned read in
// transcript coordinates; the column set matches lengthfilter.Record.
package readlist

import (
	"io"

	"github.com/LabTranslationalArchitectomics/RiboWaltz/lengthfilter"
	"github.com/biogo/biogo/feat"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// readRow is the TSV row layout of one read record.
type readRow struct {
	Transcript string `tsv:"transcript"`
	Length     int64  `tsv:"length"`
	CDSStart   int64  `tsv:"cds_start"`
	CDSStop    int64  `tsv:"cds_stop"`
	End5       int64  `tsv:"end5"`
	End3       int64  `tsv:"end3"`
	Strand     string `tsv:"strand"`
}

// Read parses a read table from r. The first row must be the header
// (transcript, length, cds_start, cds_stop, end5, end3, strand); lines
// starting with '#' are skipped.
func Read(r io.Reader) (lengthfilter.Table, error) {
	tsvReader := tsv.NewReader(r)
	tsvReader.HasHeaderRow = true
	tsvReader.UseHeaderNames = true
	tsvReader.Comment = '#'

	var table lengthfilter.Table
	for {
		var row readRow
		if err := tsvReader.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "readlist: parsing read table")
		}
		strand, err := ParseStrand(row.Strand)
		if err != nil {
			return nil, err
		}
		table = append(table, lengthfilter.Record{
			Transcript: row.Transcript,
			Length:     int(row.Length),
			CDSStart:   int(row.CDSStart),
			CDSStop:    int(row.CDSStop),
			End5:       int(row.End5),
			End3:       int(row.End3),
			Strand:     strand,
		})
	}
	return table, nil
}

// ReadPath is a wrapper for Read that takes a path instead of an io.Reader.
// A .gz suffix selects transparent decompression.
func ReadPath(path string) (table lengthfilter.Table, err error) {
	ctx := vcontext.Background()
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return Read(reader)
}

// ReadSamples loads one table per named sample. paths maps sample name to
// table path.
func ReadSamples(paths map[string]string) (map[string]lengthfilter.Table, error) {
	samples := make(map[string]lengthfilter.Table, len(paths))
	for name, path := range paths {
		table, err := ReadPath(path)
		if err != nil {
			return nil, errors.Wrapf(err, "readlist: sample %s", name)
		}
		samples[name] = table
	}
	return samples, nil
}

// Write writes t to w, header first, preserving row order.
func Write(w io.Writer, t lengthfilter.Table) error {
	rowWriter := tsv.NewRowWriter(w)
	for i := range t {
		r := &t[i]
		row := readRow{
			Transcript: r.Transcript,
			Length:     int64(r.Length),
			CDSStart:   int64(r.CDSStart),
			CDSStop:    int64(r.CDSStop),
			End5:       int64(r.End5),
			End3:       int64(r.End3),
			Strand:     FormatStrand(r.Strand),
		}
		if err := rowWriter.Write(&row); err != nil {
			return errors.Wrap(err, "readlist: writing read table")
		}
	}
	return rowWriter.Flush()
}

// WritePath is a wrapper for Write that creates path first.
func WritePath(path string, t lengthfilter.Table) (err error) {
	ctx := vcontext.Background()
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, out, &err)
	return Write(out.Writer(ctx), t)
}

// ParseStrand converts a strand column value to an orientation. "." marks a
// read without orientation.
func ParseStrand(s string) (feat.Orientation, error) {
	switch s {
	case "+":
		return feat.Forward, nil
	case "-":
		return feat.Reverse, nil
	case ".", "":
		return feat.NotOriented, nil
	}
	return feat.NotOriented, errors.Errorf("readlist: unknown strand %q", s)
}

// FormatStrand is the inverse of ParseStrand.
func FormatStrand(o feat.Orientation) string {
	switch o {
	case feat.Forward:
		return "+"
	case feat.Reverse:
		return "-"
	}
	return "."
}

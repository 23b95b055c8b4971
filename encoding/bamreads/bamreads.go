// Package bamreads builds per-sample read tables from alignments in
// transcriptome space. Each BAM reference is a transcript; the table rows
// carry the read extremities in 1-based transcript coordinates together
// with the transcript's annotated coding sequence, ready for length
// filtering.
package bamreads

import (
	"io"

	"github.com/LabTranslationalArchitectomics/RiboWaltz/lengthfilter"
	"github.com/biogo/biogo/feat"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// CDS delimits a transcript's annotated coding sequence, 1-based inclusive
// transcript coordinates. The zero value marks an unannotated transcript.
type CDS struct {
	Start, Stop int
}

// Read converts the alignments in r to a read table. Transcripts absent
// from cds get zero coding-sequence fields. Unmapped, secondary and
// supplementary alignments are skipped. Row order follows the BAM.
func Read(r io.Reader, cds map[string]CDS) (lengthfilter.Table, error) {
	bamReader, err := bam.NewReader(r, 1)
	if err != nil {
		return nil, errors.Wrap(err, "bamreads: opening BAM")
	}
	defer bamReader.Close() // nolint: errcheck

	var table lengthfilter.Table
	for {
		rec, err := bamReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "bamreads: reading BAM")
		}
		if rec.Flags&(sam.Unmapped|sam.Secondary|sam.Supplementary) != 0 {
			continue
		}
		table = append(table, toRecord(rec, cds))
	}
	return table, nil
}

// ReadPath is a wrapper for Read that takes a path instead of an io.Reader.
func ReadPath(path string, cds map[string]CDS) (table lengthfilter.Table, err error) {
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
	return Read(in.Reader(ctx), cds)
}

// toRecord maps one alignment to a read record. The 5' extremity is the
// low transcript coordinate of a forward alignment and the high coordinate
// of a reverse one.
func toRecord(rec *sam.Record, cds map[string]CDS) lengthfilter.Record {
	transcript := rec.Ref.Name()
	start := rec.Pos + 1 // 1-based
	stop := rec.End()    // 0-based exclusive == 1-based inclusive

	length := rec.Len()
	if length == 0 {
		// Sequence-less alignment; fall back to the reference span.
		length = stop - start + 1
	}

	out := lengthfilter.Record{
		Transcript: transcript,
		Length:     length,
		End5:       start,
		End3:       stop,
		Strand:     feat.Forward,
	}
	if rec.Flags&sam.Reverse != 0 {
		out.End5, out.End3 = stop, start
		out.Strand = feat.Reverse
	}
	if c, ok := cds[transcript]; ok {
		out.CDSStart = c.Start
		out.CDSStop = c.Stop
	}
	return out
}

// cdsRow is the TSV row layout of one coding-sequence annotation.
type cdsRow struct {
	Transcript string `tsv:"transcript"`
	Start      int64  `tsv:"cds_start"`
	Stop       int64  `tsv:"cds_stop"`
}

// ReadCDS parses a coding-sequence annotation table (transcript, cds_start,
// cds_stop; 1-based inclusive, 0 for unannotated) from r.
func ReadCDS(r io.Reader) (map[string]CDS, error) {
	tsvReader := tsv.NewReader(r)
	tsvReader.HasHeaderRow = true
	tsvReader.UseHeaderNames = true
	tsvReader.Comment = '#'

	cds := make(map[string]CDS)
	for {
		var row cdsRow
		if err := tsvReader.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "bamreads: parsing CDS table")
		}
		if _, ok := cds[row.Transcript]; ok {
			return nil, errors.Errorf("bamreads: duplicate CDS annotation for %s", row.Transcript)
		}
		cds[row.Transcript] = CDS{Start: int(row.Start), Stop: int(row.Stop)}
	}
	return cds, nil
}

// ReadCDSPath is a wrapper for ReadCDS that takes a path instead of an
// io.Reader.
func ReadCDSPath(path string) (cds map[string]CDS, err error) {
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
	return ReadCDS(in.Reader(ctx))
}

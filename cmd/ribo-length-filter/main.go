package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LabTranslationalArchitectomics/RiboWaltz/encoding/readlist"
	"github.com/LabTranslationalArchitectomics/RiboWaltz/lengthfilter"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
)

var (
	modeFlag      = flag.String("mode", "periodicity", `length selection mode: "custom" or "periodicity"`)
	lengthsFlag   = flag.String("lengths", "", "lengths kept in custom mode, as comma-separated values and from:to ranges, e.g. 26:31 or 21,28:30")
	thresholdFlag = flag.Int("threshold", 50, "periodicity threshold percentage in [10, 100]")
	bedFlag       = flag.Bool("bed", false, "write filtered reads as BED intervals on their transcripts instead of a read table")
	outDirFlag    = flag.String("output-dir", ".", "directory for per-sample outputs")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	samplePaths, err := parseSampleArgs(flag.Args())
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(samplePaths) == 0 {
		log.Fatalf("no samples given; expected name=path arguments")
	}

	opts := lengthfilter.Opts{
		Mode:      lengthfilter.Mode(*modeFlag),
		Threshold: *thresholdFlag,
		Observer: func(sample string, stats lengthfilter.Stats) {
			log.Printf("%s: selected lengths %v; %d of %d reads removed (%.2f%%)",
				sample, stats.Selected, stats.ReadsRemoved(), stats.ReadsBefore, stats.PercentRemoved())
		},
	}
	if *lengthsFlag != "" {
		if opts.LengthSet, err = parseLengths(*lengthsFlag); err != nil {
			log.Fatalf("-lengths: %v", err)
		}
	}
	if err = opts.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	samples, err := readlist.ReadSamples(samplePaths)
	if err != nil {
		log.Fatalf("%v", err)
	}
	filtered, stats, err := lengthfilter.FilterSamples(samples, opts)
	if err != nil {
		log.Fatalf("%v", err)
	}

	for name, table := range filtered {
		if *bedFlag {
			path := filepath.Join(*outDirFlag, name+".filtered.bed")
			if err := writeBED(path, lengthfilter.ToRanges(table)); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
		} else {
			path := filepath.Join(*outDirFlag, name+".filtered.tsv")
			if err := readlist.WritePath(path, table); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
		}
	}

	var total lengthfilter.Stats
	for _, s := range stats {
		total = total.Merge(s)
	}
	log.Printf("done: %d samples, %d of %d reads removed (%.2f%%)",
		len(stats), total.ReadsRemoved(), total.ReadsBefore, total.PercentRemoved())
}

// parseSampleArgs splits name=path arguments into a sample path map.
func parseSampleArgs(args []string) (map[string]string, error) {
	paths := make(map[string]string, len(args))
	for _, arg := range args {
		eq := strings.IndexByte(arg, '=')
		if eq <= 0 || eq == len(arg)-1 {
			return nil, fmt.Errorf("malformed sample argument %q; expected name=path", arg)
		}
		name := arg[:eq]
		if _, ok := paths[name]; ok {
			return nil, fmt.Errorf("duplicate sample name %q", name)
		}
		paths[name] = arg[eq+1:]
	}
	return paths, nil
}

// parseLengths expands a comma-separated list of lengths and from:to ranges
// (inclusive at both ends) into a length set.
func parseLengths(s string) ([]int, error) {
	var lengths []int
	for _, tok := range strings.Split(s, ",") {
		if colon := strings.IndexByte(tok, ':'); colon != -1 {
			from, err := strconv.Atoi(tok[:colon])
			if err != nil {
				return nil, fmt.Errorf("bad range %q: %v", tok, err)
			}
			to, err := strconv.Atoi(tok[colon+1:])
			if err != nil {
				return nil, fmt.Errorf("bad range %q: %v", tok, err)
			}
			if to < from {
				return nil, fmt.Errorf("bad range %q: descending bounds", tok)
			}
			for l := from; l <= to; l++ {
				lengths = append(lengths, l)
			}
			continue
		}
		l, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("bad length %q: %v", tok, err)
		}
		lengths = append(lengths, l)
	}
	return lengths, nil
}

// writeBED writes the range set as 6-column BED, one interval per read,
// strand always forward.
func writeBED(path string, rs *lengthfilter.RangeSet) (err error) {
	ctx := vcontext.Background()
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, out, &err)

	tsvw := tsv.NewWriter(out.Writer(ctx))
	rs.Each(func(r lengthfilter.Range) {
		tsvw.WriteString(r.Transcript)
		tsvw.WriteUint32(uint32(r.Start - 1)) // BED is 0-based half-open
		tsvw.WriteUint32(uint32(r.End))
		tsvw.WriteString(".")
		tsvw.WriteString("0")
		tsvw.WriteString(readlist.FormatStrand(r.Strand))
		if e := tsvw.EndLine(); e != nil && err == nil {
			err = e
		}
	})
	if err != nil {
		return err
	}
	return tsvw.Flush()
}


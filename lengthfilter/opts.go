package lengthfilter

import (
	"errors"
)

// Mode selects how the retained length set is determined.
type Mode string

const (
	// ModeCustom retains exactly the lengths listed in Opts.LengthSet.
	ModeCustom Mode = "custom"
	// ModePeriodicity infers the retained lengths from the trinucleotide
	// periodicity of the read ends along annotated coding sequences.
	ModePeriodicity Mode = "periodicity"
)

// Validation errors returned by Opts.Validate.
var (
	ErrInvalidMode      = errors.New(`lengthfilter: mode must be "custom" or "periodicity"`)
	ErrInvalidLengthSet = errors.New("lengthfilter: custom mode requires at least one length")
	ErrInvalidThreshold = errors.New("lengthfilter: periodicity threshold must be in [10, 100]")
)

// Opts configures one filtering batch. The zero value is not usable; start
// from DefaultOpts.
type Opts struct {
	// Mode is required.
	Mode Mode
	// LengthSet lists the read lengths to retain in custom mode.
	// Duplicates are tolerated. Ignored in periodicity mode.
	LengthSet []int
	// Threshold is the minimum percentage of a length's qualifying reads
	// that a single frame must hold for the length to count as periodic
	// at one end. Ignored in custom mode.
	Threshold int
	// Observer, when non-nil, receives each sample's side-channel counts
	// as soon as that sample finishes. Samples are filtered concurrently,
	// so the callback must be safe for concurrent use.
	Observer func(sample string, stats Stats)
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	Mode:      ModePeriodicity,
	Threshold: 50,
}

// Validate checks the mode-dependent parameter constraints. It runs once
// per batch, before any sample data is touched; a failure aborts the whole
// batch with no partial results.
func (o Opts) Validate() error {
	switch o.Mode {
	case ModeCustom:
		if len(o.LengthSet) == 0 {
			return ErrInvalidLengthSet
		}
	case ModePeriodicity:
		if o.Threshold < 10 || o.Threshold > 100 {
			return ErrInvalidThreshold
		}
	default:
		return ErrInvalidMode
	}
	return nil
}

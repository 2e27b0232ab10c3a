// Package config loads run configuration for the miner: a YAML file
// overlaid by command-line flags, resolved into the values the engine
// and readers need. Flags win over YAML when explicitly set.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"ffspm"
)

// File mirrors the on-disk YAML configuration shape.
type File struct {
	Transactions string `yaml:"transactions"`
	Neighbors    string `yaml:"neighbors"`
	Output       string `yaml:"output"`
	// MinSup is kept as a string because it may be either an absolute
	// count (an integer) or a fraction of |D|; resolution happens in
	// ResolveMinSup, once the transaction count is known.
	MinSup      string `yaml:"minSup"`
	Separator   string `yaml:"separator"`
	RegionCount int    `yaml:"regionCount"`
	Parallelism int    `yaml:"parallelism"`
}

// Load reads and parses a YAML config file. A missing path is not an
// error — an empty File is returned so flags alone can drive a run.
func Load(path string) (File, error) {
	if path == "" {
		return File{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, ffspm.NewError(ffspm.InputUnavailable, "config.Load", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, ffspm.NewError(ffspm.InvalidConfig, "config.Load", err)
	}
	return f, nil
}

// Flags holds the command-line overlay. Only fields explicitly set on
// the flag.FlagSet override the YAML file's values; zero values here
// mean "not given on the command line."
type Flags struct {
	Transactions string
	Neighbors    string
	Output       string
	MinSup       string
	Separator    string
	RegionCount  int
	Parallelism  int
}

// RegisterFlags declares the CLI flags on fs and returns the Flags
// struct they populate once fs.Parse has run.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Transactions, "transactions", "", "path to the transaction file")
	fs.StringVar(&f.Neighbors, "neighbors", "", "path to the neighborhood file")
	fs.StringVar(&f.Output, "out", "", "path to write discovered patterns")
	fs.StringVar(&f.MinSup, "minSup", "", "minimum support: integer count or fraction in (0,1)")
	fs.StringVar(&f.Separator, "separator", "", "field separator for items/quantities/neighbors")
	fs.IntVar(&f.RegionCount, "regionCount", 0, "number of fuzzy regions (only 3 is supported)")
	fs.IntVar(&f.Parallelism, "parallelism", 0, "number of top-level subtrees mined concurrently")
	return f
}

// Resolved is the fully-merged, ready-to-use configuration.
type Resolved struct {
	Transactions string
	Neighbors    string
	Output       string
	MinSupRaw    string
	Separator    string
	RegionCount  int
	Parallelism  int
}

// Merge overlays non-zero flag values onto file, returning the merged
// result. Flags win.
func Merge(file File, flags *Flags) Resolved {
	r := Resolved{
		Transactions: file.Transactions,
		Neighbors:    file.Neighbors,
		Output:       file.Output,
		MinSupRaw:    file.MinSup,
		Separator:    file.Separator,
		RegionCount:  file.RegionCount,
		Parallelism:  file.Parallelism,
	}
	if flags == nil {
		return r
	}
	if flags.Transactions != "" {
		r.Transactions = flags.Transactions
	}
	if flags.Neighbors != "" {
		r.Neighbors = flags.Neighbors
	}
	if flags.Output != "" {
		r.Output = flags.Output
	}
	if flags.MinSup != "" {
		r.MinSupRaw = flags.MinSup
	}
	if flags.Separator != "" {
		r.Separator = flags.Separator
	}
	if flags.RegionCount != 0 {
		r.RegionCount = flags.RegionCount
	}
	if flags.Parallelism != 0 {
		r.Parallelism = flags.Parallelism
	}
	return r
}

// Validate checks the parts of Resolved that don't require knowing the
// transaction count yet: regionCount (only 3 fuzzy regions are
// supported by this engine) and that minSup parses as a number at all.
func (r Resolved) Validate() error {
	if r.RegionCount != 0 && r.RegionCount != 3 {
		return ffspm.NewError(ffspm.InvalidConfig, "Resolved.Validate", fmt.Errorf("regionCount %d is not supported, only 3", r.RegionCount))
	}
	if _, err := parseMinSup(r.MinSupRaw); err != nil {
		return ffspm.NewError(ffspm.InvalidConfig, "Resolved.Validate", err)
	}
	return nil
}

// ResolveMinSup turns MinSupRaw into an absolute fuzzy-support
// threshold given the number of transactions in the database: an
// integer is an absolute count; a fraction in (0,1) is multiplied by
// numTransactions. This computes the product directly in floating
// point rather than via any string-repetition trick.
func (r Resolved) ResolveMinSup(numTransactions int) (float64, error) {
	v, err := parseMinSup(r.MinSupRaw)
	if err != nil {
		return 0, ffspm.NewError(ffspm.InvalidConfig, "ResolveMinSup", err)
	}
	if v <= 0 {
		return 0, ffspm.NewError(ffspm.InvalidConfig, "ResolveMinSup", fmt.Errorf("minSup must be > 0, got %v", v))
	}
	if v > 0 && v < 1 {
		v *= float64(numTransactions)
	}
	if v > float64(numTransactions)*3 {
		return 0, ffspm.NewError(ffspm.InvalidConfig, "ResolveMinSup", fmt.Errorf("minSup %v can never be satisfied (max possible is |D|*3 = %v)", v, float64(numTransactions)*3))
	}
	return v, nil
}

func parseMinSup(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("minSup is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("minSup %q is not numeric", raw)
	}
	return v, nil
}

// EffectiveSeparator returns sep, or the reader package's reference
// default when unset.
func (r Resolved) EffectiveSeparator() string {
	if r.Separator == "" {
		return "\t"
	}
	return r.Separator
}

// Package ffspm implements the core of a fuzzy frequent spatial pattern
// miner: given a quantitative transaction database and a spatial
// neighborhood relation over items, it enumerates item-region
// combinations whose cumulative fuzzy support meets a threshold and whose
// items are pairwise spatial neighbors.
package ffspm

import "fmt"

// Item is an opaque, totally ordered identifier. Equality and ordering
// are both by the underlying string form.
type Item string

// Less reports whether it precedes other in the identifier ordering used
// for tie-breaking throughout the miner.
func (it Item) Less(other Item) bool {
	return it < other
}

// RegionLabel names one of the three linguistic regions a quantity can
// be fuzzified into.
type RegionLabel byte

const (
	Low RegionLabel = iota
	Middle
	High
)

func (r RegionLabel) String() string {
	switch r {
	case Low:
		return "L"
	case Middle:
		return "M"
	case High:
		return "H"
	default:
		return "?"
	}
}

// RegionTriple is the (low, middle, high) membership values produced by
// the fuzzifier for a single quantity. The three values sum to 1 for any
// quantity > 0, and to 0 for quantity <= 0.
type RegionTriple struct {
	Low, Middle, High float64
}

// Value returns the membership of the triple at the given region.
func (t RegionTriple) Value(r RegionLabel) float64 {
	switch r {
	case Low:
		return t.Low
	case Middle:
		return t.Middle
	case High:
		return t.High
	default:
		return 0
	}
}

// Fuzzify maps a raw non-negative quantity to its region triple using the
// piecewise-linear triangular membership defined for a fixed 3-region
// scheme (Low/Middle/High). This is the only membership function this
// miner supports (see spec Non-goals).
func Fuzzify(q int) RegionTriple {
	switch {
	case q <= 0:
		return RegionTriple{}
	case q <= 1:
		return RegionTriple{Low: 1}
	case q <= 6:
		return RegionTriple{
			Low:    float64(6-q) / 5,
			Middle: float64(q-1) / 5,
		}
	case q <= 11:
		return RegionTriple{
			Middle: float64(11-q) / 5,
			High:   float64(q-6) / 5,
		}
	default:
		return RegionTriple{High: 1}
	}
}

// Aggregate accumulates the region sums observed for one item across the
// first pass over the database.
type Aggregate struct {
	SumLow, SumMiddle, SumHigh float64
}

// Add folds one transaction's region triple for this item into the
// running sums.
func (a *Aggregate) Add(t RegionTriple) {
	a.SumLow += t.Low
	a.SumMiddle += t.Middle
	a.SumHigh += t.High
}

// Dominant returns the region with the largest aggregate sum, breaking
// ties L > M > H (the guards are evaluated in that order, so the first
// one that matches wins), and the corresponding sum.
func (a Aggregate) Dominant() (region RegionLabel, sum float64) {
	switch {
	case a.SumLow >= a.SumMiddle && a.SumLow >= a.SumHigh:
		return Low, a.SumLow
	case a.SumMiddle >= a.SumLow && a.SumMiddle >= a.SumHigh:
		return Middle, a.SumMiddle
	default:
		return High, a.SumHigh
	}
}

// SingletonInfo is the region-selected information recorded for each
// qualifying-singleton item: its dominant region and the aggregate sum
// at that region.
type SingletonInfo struct {
	DominantRegion RegionLabel
	DominantSum    float64
}

// RawTransaction is one input record: parallel item/quantity sequences
// of equal length, as consumed from the external transaction source.
type RawTransaction struct {
	Items      []Item
	Quantities []int
}

func (t RawTransaction) String() string {
	return fmt.Sprintf("%v:%d:%v", t.Items, len(t.Items), t.Quantities)
}

package ffspm

import "sort"

// Element is one supporting transaction's contribution to an FFI-list:
// the pattern's membership in that transaction (iUtil) and the
// neighbor-restricted remaining utility available for extension (rUtil).
type Element struct {
	Tid   int
	IUtil float64
	RUtil float64
}

// FFIList is the vertical representation of a candidate pattern. Item
// carries the pattern's tail item (for a singleton, the item itself; for
// a joined list, the second operand's item, per Construct). Elements is
// ordered by strictly increasing Tid, which makes the Construct join a
// binary search rather than a linear scan.
type FFIList struct {
	Item     Item
	SumIUtil float64
	SumRUtil float64
	Elements []Element
}

// finalize recomputes SumIUtil/SumRUtil from Elements via a single
// reduction pass each (internal/ops.Shared.Sum), rather than an
// incrementally-maintained running total. Revise uses it for singleton
// lists; Construct computes a joined list's sums itself through
// ops.Shared.Min and ops.Shared.Sum.
func (l *FFIList) finalize(sum func([]float64) float64) {
	if len(l.Elements) == 0 {
		return
	}
	iutils := make([]float64, len(l.Elements))
	rutils := make([]float64, len(l.Elements))
	for i, e := range l.Elements {
		iutils[i] = e.IUtil
		rutils[i] = e.RUtil
	}
	l.SumIUtil = sum(iutils)
	l.SumRUtil = sum(rutils)
}

// findByTid returns the index of the element with the given tid via
// binary search, or -1 if absent. Elements must be sorted by ascending
// Tid (the invariant Construct and the revisor both maintain).
func (l *FFIList) findByTid(tid int) int {
	i := sort.Search(len(l.Elements), func(i int) bool {
		return l.Elements[i].Tid >= tid
	})
	if i < len(l.Elements) && l.Elements[i].Tid == tid {
		return i
	}
	return -1
}

package ffspm

import "ffspm/internal/ops"

// Construct builds the FFI-list for the pattern formed by extending x's
// pattern with y's tail item (x and y must already share the same
// prefix; y.Item becomes the tail of the result). For each element of x,
// a same-tid element of y is located by binary search; matches are
// batched and folded through internal/ops.Shared so the join's
// elementwise-min and both running sums share the same reduction
// kernels the rest of the package uses.
func Construct(x, y *FFIList) *FFIList {
	result := &FFIList{Item: y.Item}
	if len(x.Elements) == 0 || len(y.Elements) == 0 {
		return result
	}

	tids := make([]int, 0, len(x.Elements))
	exIUtil := make([]float64, 0, len(x.Elements))
	eyIUtil := make([]float64, 0, len(x.Elements))
	eyRUtil := make([]float64, 0, len(x.Elements))

	for _, ex := range x.Elements {
		j := y.findByTid(ex.Tid)
		if j < 0 {
			continue
		}
		ey := y.Elements[j]
		tids = append(tids, ex.Tid)
		exIUtil = append(exIUtil, ex.IUtil)
		eyIUtil = append(eyIUtil, ey.IUtil)
		eyRUtil = append(eyRUtil, ey.RUtil)
	}

	if len(tids) == 0 {
		return result
	}

	joinedIUtil := make([]float64, len(tids))
	sumIUtil := ops.Shared.Min(exIUtil, eyIUtil, joinedIUtil)
	sumRUtil := ops.Shared.Sum(eyRUtil)

	result.Elements = make([]Element, len(tids))
	for i, tid := range tids {
		result.Elements[i] = Element{Tid: tid, IUtil: joinedIUtil[i], RUtil: eyRUtil[i]}
	}
	result.SumIUtil = sumIUtil
	result.SumRUtil = sumRUtil

	return result
}

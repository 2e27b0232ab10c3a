package ffspm

import (
	"sort"

	"ffspm/internal/ops"
)

// revisedPair is one surviving (item, dominant-region membership) entry
// of a single revised transaction, kept alongside the sort key.
type revisedPair struct {
	item       Item
	membership float64
	domSum     float64
}

// Revise implements the second pass over the database: for every raw
// transaction, it drops non-qualifying items and zero-membership pairs,
// sorts survivors by ascending dominant sum (ties broken by item
// identifier), computes each position's neighbor-restricted remaining
// utility, and appends one element per surviving item to that item's
// FFI-list. tid is the 0-based raw-transaction index and advances once
// per input transaction regardless of how many pairs survive.
func Revise(transactions []RawTransaction, singles map[Item]SingletonInfo, neighbors *NeighborIndex) map[Item]*FFIList {
	lists := make(map[Item]*FFIList)

	for tid, tx := range transactions {
		pairs := revisedPairsFor(tx, singles)
		sortRevisedPairs(pairs)
		rutil := remainingUtilities(pairs, neighbors)

		for i, p := range pairs {
			list := lists[p.item]
			if list == nil {
				list = &FFIList{Item: p.item}
				lists[p.item] = list
			}
			list.Elements = append(list.Elements, Element{
				Tid:   tid,
				IUtil: p.membership,
				RUtil: rutil[i],
			})
		}
	}

	for _, list := range lists {
		list.finalize(ops.Shared.Sum)
	}
	return lists
}

func revisedPairsFor(tx RawTransaction, singles map[Item]SingletonInfo) []revisedPair {
	pairs := make([]revisedPair, 0, len(tx.Items))
	for i, item := range tx.Items {
		info, ok := singles[item]
		if !ok {
			continue
		}
		triple := Fuzzify(tx.Quantities[i])
		membership := triple.Value(info.DominantRegion)
		if membership == 0 {
			continue
		}
		pairs = append(pairs, revisedPair{item: item, membership: membership, domSum: info.DominantSum})
	}
	return pairs
}

func sortRevisedPairs(pairs []revisedPair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].domSum != pairs[j].domSum {
			return pairs[i].domSum < pairs[j].domSum
		}
		return pairs[i].item < pairs[j].item
	})
}

// remainingUtilities walks pairs right-to-left, summing the membership
// of every later item that is a spatial neighbor of the current one.
func remainingUtilities(pairs []revisedPair, neighbors *NeighborIndex) []float64 {
	n := len(pairs)
	rutil := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		nbrs := neighbors.Neighbors(pairs[i].item)
		if len(nbrs) == 0 {
			continue
		}
		gathered := make([]float64, 0, n-i-1)
		for j := i + 1; j < n; j++ {
			if containsItem(nbrs, pairs[j].item) {
				gathered = append(gathered, pairs[j].membership)
			}
		}
		rutil[i] = ops.Shared.Sum(gathered)
	}
	return rutil
}

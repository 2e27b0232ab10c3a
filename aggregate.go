package ffspm

// BuildAggregates performs the first pass over the database: it
// computes S_L, S_M, S_H for every item encountered, across every
// transaction it appears in.
func BuildAggregates(transactions []RawTransaction) map[Item]*Aggregate {
	aggregates := make(map[Item]*Aggregate)
	for _, tx := range transactions {
		for i, item := range tx.Items {
			a, ok := aggregates[item]
			if !ok {
				a = &Aggregate{}
				aggregates[item] = a
			}
			a.Add(Fuzzify(tx.Quantities[i]))
		}
	}
	return aggregates
}

// SelectDominant is the region selector: for every item it assigns a
// dominant region and sum, then keeps only the qualifying singletons
// whose dominant sum meets minSup.
func SelectDominant(aggregates map[Item]*Aggregate, minSup float64) map[Item]SingletonInfo {
	singles := make(map[Item]SingletonInfo, len(aggregates))
	for item, a := range aggregates {
		region, sum := a.Dominant()
		if sum >= minSup {
			singles[item] = SingletonInfo{DominantRegion: region, DominantSum: sum}
		}
	}
	return singles
}

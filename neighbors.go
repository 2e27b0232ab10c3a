package ffspm

// NeighborIndex is an immutable mapping from an item to the ordered set
// of items declared as its spatial neighbors. Symmetry of the relation
// is neither enforced nor assumed.
type NeighborIndex struct {
	neighbors map[Item][]Item
	domain    []Item
}

// NewNeighborIndex builds an index from a domain (ordered, to make
// iteration deterministic) and a map of each domain item's neighbors.
func NewNeighborIndex(domain []Item, neighbors map[Item][]Item) *NeighborIndex {
	idx := &NeighborIndex{
		neighbors: make(map[Item][]Item, len(neighbors)),
		domain:    append([]Item(nil), domain...),
	}
	for item, n := range neighbors {
		idx.neighbors[item] = append([]Item(nil), n...)
	}
	return idx
}

// NeighborIndexBuilder accumulates items in encounter order while a
// neighborhood source is being read, then yields an immutable
// NeighborIndex.
type NeighborIndexBuilder struct {
	domain    []Item
	neighbors map[Item][]Item
}

// NewNeighborIndexBuilder returns an empty builder.
func NewNeighborIndexBuilder() *NeighborIndexBuilder {
	return &NeighborIndexBuilder{neighbors: make(map[Item][]Item)}
}

// Add records item's neighbor list. Calling Add twice for the same item
// overwrites its neighbor list; first-seen order is preserved for Domain.
func (b *NeighborIndexBuilder) Add(item Item, neighbors []Item) {
	if _, seen := b.neighbors[item]; !seen {
		b.domain = append(b.domain, item)
	}
	b.neighbors[item] = neighbors
}

// Build finalizes the builder into an immutable NeighborIndex.
func (b *NeighborIndexBuilder) Build() *NeighborIndex {
	return NewNeighborIndex(b.domain, b.neighbors)
}

// Neighbors returns item's declared neighbors, or nil if item has no
// entry in the index (treated as an empty set by the mining algorithm).
func (n *NeighborIndex) Neighbors(item Item) []Item {
	if n == nil {
		return nil
	}
	return n.neighbors[item]
}

// Domain returns every item that appears as a key in the neighbor
// mapping, in first-seen order. This is the allowed-neighbor set passed
// to the top-level Mine call.
func (n *NeighborIndex) Domain() []Item {
	if n == nil {
		return nil
	}
	return n.domain
}

// Intersection returns the elements of a that are also present in b,
// preserving a's order. Duplicates in a are passed through unchanged. A
// nil a or b (item with no neighbor record) yields an empty result.
func Intersection(a, b []Item) []Item {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[Item]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]Item, 0, len(a))
	for _, item := range a {
		if _, ok := set[item]; ok {
			out = append(out, item)
		}
	}
	return out
}

// containsItem reports whether target appears anywhere in items.
func containsItem(items []Item, target Item) bool {
	for _, it := range items {
		if it == target {
			return true
		}
	}
	return false
}

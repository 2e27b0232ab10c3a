package ffspm

import (
	"errors"
	"runtime"
	"sort"
	"sync"
)

// Config configures one mining run. MinSup must already be resolved to
// an absolute fuzzy-support threshold (see internal/config for the
// fractional/absolute resolution); Engine itself only validates that
// it is usable.
type Config struct {
	// MinSup is the minimum cumulative sumIUtil for a pattern to be
	// emitted. Must be > 0.
	MinSup float64

	// Parallelism is the number of top-level singleton subtrees mined
	// concurrently. <= 1 means the default single-threaded, synchronous,
	// deterministic-encounter-order behavior. > 1 opts into the
	// permitted parallel extension: each top-level singleton's subtree
	// runs in its own goroutine with a thread-local prefix buffer, and
	// emission is serialized.
	Parallelism int
}

// Validate checks the parts of Config the engine itself is responsible
// for (InvalidConfig: minSup <= 0).
func (c Config) Validate() error {
	if c.MinSup <= 0 {
		return NewError(InvalidConfig, "Config.Validate", errMinSupNotPositive)
	}
	return nil
}

var errMinSupNotPositive = errors.New("minSup must be > 0")

// Engine holds one run's prepared state: the qualifying-singleton
// FFI-lists (sorted for mining), the neighbor index, and the region
// selection used to label emitted patterns.
type Engine struct {
	cfg       Config
	neighbors *NeighborIndex
	singles   map[Item]SingletonInfo
	ffis      []*FFIList

	sinkMu sync.Mutex

	// onJoin, if set, is called once per Construct call during mining.
	// Left nil by default; SetJoinHook lets an outer caller (such as
	// internal/stats.Run) count joins without the core depending on it.
	onJoin func()
}

// New validates cfg and returns an empty Engine ready for Prepare.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// SetJoinHook registers fn to be called once per FFI-list join
// performed during Mine. fn must be safe for concurrent use when
// Config.Parallelism > 1.
func (e *Engine) SetJoinHook(fn func()) {
	e.onJoin = fn
}

// Prepare runs the first pass (aggregation), region selection, and the
// second pass (transaction revision), populating the engine's
// qualifying-singleton FFI-lists. It must be called exactly once before
// Mine.
func (e *Engine) Prepare(transactions []RawTransaction, neighbors *NeighborIndex) {
	aggregates := BuildAggregates(transactions)
	e.singles = SelectDominant(aggregates, e.cfg.MinSup)
	lists := Revise(transactions, e.singles, neighbors)
	e.neighbors = neighbors
	e.ffis = sortedSingletonLists(lists, e.singles)
}

// sortedSingletonLists orders qualifying-singleton FFI-lists ascending
// by dominant sum, tie-broken by item identifier — the required order
// for both singleton enumeration and pattern-growth extension.
func sortedSingletonLists(lists map[Item]*FFIList, singles map[Item]SingletonInfo) []*FFIList {
	out := make([]*FFIList, 0, len(lists))
	for _, l := range lists {
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := singles[out[i].Item], singles[out[j].Item]
		if si.DominantSum != sj.DominantSum {
			return si.DominantSum < sj.DominantSum
		}
		return out[i].Item < out[j].Item
	})
	return out
}

// Mine runs the pattern-growth search and delivers every qualifying
// pattern to sink. Prepare must have been called first.
func (e *Engine) Mine(sink Sink) {
	allowed := e.neighbors.Domain()

	if e.cfg.Parallelism <= 1 {
		e.mine(nil, e.ffis, allowed, sink)
		return
	}

	workers := e.cfg.Parallelism
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range e.ffis {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() {
				<-sem
				wg.Done()
			}()
			e.mineIndex(i, e.ffis, allowed, nil, sink)
		}(i)
	}
	wg.Wait()
}

// mine processes every sibling in ffis under the given prefix/allowed
// set. Each call owns its own prefix slice; pushing a child item is a
// local append (an immutable-snapshot style equivalent to in-place
// push/pop), so siblings never observe each other's in-progress
// extension.
func (e *Engine) mine(prefix []Item, ffis []*FFIList, allowed []Item, sink Sink) {
	for i := range ffis {
		e.mineIndex(i, ffis, allowed, prefix, sink)
	}
}

// mineIndex emits ffis[i]'s pattern if it qualifies, then — if its
// resting utility still permits some extension to qualify — builds the
// neighbor-constrained joins with every later sibling and recurses.
func (e *Engine) mineIndex(i int, ffis []*FFIList, allowed []Item, prefix []Item, sink Sink) {
	x := ffis[i]

	if x.SumIUtil >= e.cfg.MinSup {
		e.emit(prefix, x, sink)
	}

	newAllowed := Intersection(allowed, e.neighbors.Neighbors(x.Item))
	if x.SumRUtil < e.cfg.MinSup {
		return
	}

	var extensions []*FFIList
	for j := i + 1; j < len(ffis); j++ {
		y := ffis[j]
		if containsItem(newAllowed, y.Item) {
			extensions = append(extensions, Construct(x, y))
			if e.onJoin != nil {
				e.onJoin()
			}
		}
	}
	if len(extensions) == 0 {
		return
	}

	childPrefix := append(append([]Item(nil), prefix...), x.Item)
	e.mine(childPrefix, extensions, newAllowed, sink)
}

// emit renders prefix+tail into a Pattern (attaching each item's
// dominant region) and serializes delivery to sink.
func (e *Engine) emit(prefix []Item, tail *FFIList, sink Sink) {
	items := make([]PatternItem, 0, len(prefix)+1)
	for _, it := range prefix {
		items = append(items, PatternItem{Item: it, Region: e.singles[it].DominantRegion})
	}
	items = append(items, PatternItem{Item: tail.Item, Region: e.singles[tail.Item].DominantRegion})

	e.sinkMu.Lock()
	defer e.sinkMu.Unlock()
	sink.Emit(Pattern{Items: items, SumIUtil: tail.SumIUtil})
}

package ffspm

import (
	"strconv"
	"strings"
)

// formatSupport renders a support value with the minimal decimal
// precision that round-trips it, matching the reference output form.
func formatSupport(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PatternItem pairs a pattern's item with the region label it was
// selected at (always the item's dominant region).
type PatternItem struct {
	Item   Item
	Region RegionLabel
}

// Pattern is a qualifying output: the prefix items (each with its
// region label) followed by the tail item, plus the aggregate support
// (sumIUtil) across the transactions that support it.
type Pattern struct {
	Items    []PatternItem
	SumIUtil float64
}

// String renders the reference textual form:
// "item1.R1 item2.R2 … itemK.RK : sumIUtil".
func (p Pattern) String() string {
	var b strings.Builder
	for i, it := range p.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(it.Item))
		b.WriteByte('.')
		b.WriteString(it.Region.String())
	}
	b.WriteString(" : ")
	b.WriteString(formatSupport(p.SumIUtil))
	return b.String()
}

// Sink receives qualifying patterns as they are discovered. When the
// engine is configured with Parallelism > 1, Emit is called from
// several goroutines, but Engine holds one mutex around every Emit
// call, so calls never overlap and implementations need no locking of
// their own.
type Sink interface {
	Emit(Pattern)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Pattern)

// Emit calls f.
func (f SinkFunc) Emit(p Pattern) { f(p) }

// CollectingSink accumulates every emitted pattern in encounter order,
// for callers (such as tests) that want the full result set in memory.
type CollectingSink struct {
	Patterns []Pattern
}

// Emit appends p to the accumulated patterns.
func (s *CollectingSink) Emit(p Pattern) {
	s.Patterns = append(s.Patterns, p)
}

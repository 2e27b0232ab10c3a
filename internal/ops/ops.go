// Package ops provides the small set of float64-slice reductions the
// FFI-list layer folds across: summing a column of per-transaction
// utility values, and computing an elementwise minimum (with its sum)
// when joining two FFI-lists. Provider implementations are selected at
// init time by CPU/platform, following a pluggable-backend shape with
// no learned-weight update (this domain has none).
package ops

import "fmt"

// Provider is implemented by every reduction backend.
type Provider interface {
	// Sum returns the sum of all elements of arr.
	Sum(arr []float64) float64

	// Min computes elementwise min(a[i], b[i]) into out and returns the
	// sum of the resulting values. a, b and out must have equal length.
	Min(a, b, out []float64) float64
}

// Shared is the process-wide provider selected at init time.
var Shared Provider

func init() {
	Shared = GetProvider()
	if Shared == nil {
		Shared = new(generic)
	}
}

// Name identifies the active provider, for diagnostic logging by callers
// that want to report it (the core package never logs on its own).
func Name() string {
	if _, ok := Shared.(*generic); ok {
		return "generic"
	}
	return fmt.Sprintf("%T", Shared)
}

//go:build darwin && arm64

package ops

import "ffspm/internal/ops/accelerate"

// GetProvider returns the Accelerate-backed provider on darwin/arm64.
func GetProvider() Provider {
	return new(accelerate.Accelerate)
}

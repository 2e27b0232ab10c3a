//go:build darwin && arm64

// Package accelerate implements ops.Provider on top of Apple's Accelerate
// framework (vDSP), for darwin/arm64 hosts.
package accelerate

/*
#cgo LDFLAGS: -framework Accelerate
#include <Accelerate/Accelerate.h>

double ffspm_accelerate_sum(const size_t n, const double *arr) {
    double sum = 0.0;
    vDSP_sveD(arr, 1, &sum, n);
    return sum;
}

double ffspm_accelerate_min(const size_t n, const double *a, const double *b, double *out) {
    vDSP_vminD(a, 1, b, 1, out, 1, n);
    double sum = 0.0;
    vDSP_sveD(out, 1, &sum, n);
    return sum;
}
*/
import "C"

// Accelerate implements ops.Provider using vDSP vector primitives.
type Accelerate struct{}

func (p *Accelerate) Sum(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}
	return float64(C.ffspm_accelerate_sum((C.size_t)(len(arr)), (*C.double)(&arr[0])))
}

func (p *Accelerate) Min(a, b, out []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return float64(C.ffspm_accelerate_min(
		(C.size_t)(len(a)),
		(*C.double)(&a[0]),
		(*C.double)(&b[0]),
		(*C.double)(&out[0]),
	))
}

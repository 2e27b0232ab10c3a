//go:build amd64

package ops

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

/*
#cgo CFLAGS: -mavx512f -mavx512dq -mavx512vl -O3 -fPIC
#include <stdint.h>
#include <x86intrin.h>

// Sums an array of doubles using AVX-512, processing 16 doubles (2
// registers) per iteration.
double ffspm_avx512_sum(const size_t n, const double *arr)
{
    static const size_t single_size = 8;
    static const size_t chunk_size = 2 * single_size;
    const size_t end = n / chunk_size;

    __m512d sum_vec1 = _mm512_setzero_pd();
    __m512d sum_vec2 = _mm512_setzero_pd();

    for (size_t i = 0; i < end; ++i) {
        size_t offset = i * chunk_size;
        __m512d v1 = _mm512_loadu_pd(arr + offset);
        __m512d v2 = _mm512_loadu_pd(arr + offset + single_size);
        sum_vec1 = _mm512_add_pd(sum_vec1, v1);
        sum_vec2 = _mm512_add_pd(sum_vec2, v2);
    }

    double sum = _mm512_reduce_add_pd(_mm512_add_pd(sum_vec1, sum_vec2));
    for (size_t i = end * chunk_size; i < n; ++i) {
        sum += arr[i];
    }
    return sum;
}

// Computes elementwise min(a[i], b[i]) into out and returns the sum of
// the mins, using AVX-512.
double ffspm_avx512_min(const size_t n, const double *a, const double *b, double *out)
{
    static const size_t single_size = 8;
    static const size_t chunk_size = 2 * single_size;
    const size_t end = n / chunk_size;

    __m512d sum_vec1 = _mm512_setzero_pd();
    __m512d sum_vec2 = _mm512_setzero_pd();

    for (size_t i = 0; i < end; ++i) {
        size_t offset = i * chunk_size;

        __m512d a1 = _mm512_loadu_pd(a + offset);
        __m512d b1 = _mm512_loadu_pd(b + offset);
        __m512d min1 = _mm512_min_pd(a1, b1);
        _mm512_storeu_pd(out + offset, min1);
        sum_vec1 = _mm512_add_pd(sum_vec1, min1);

        __m512d a2 = _mm512_loadu_pd(a + offset + single_size);
        __m512d b2 = _mm512_loadu_pd(b + offset + single_size);
        __m512d min2 = _mm512_min_pd(a2, b2);
        _mm512_storeu_pd(out + offset + single_size, min2);
        sum_vec2 = _mm512_add_pd(sum_vec2, min2);
    }

    double sum = _mm512_reduce_add_pd(_mm512_add_pd(sum_vec1, sum_vec2));
    for (size_t i = end * chunk_size; i < n; ++i) {
        double m = a[i] < b[i] ? a[i] : b[i];
        out[i] = m;
        sum += m;
    }
    return sum;
}
*/
import "C"

// avx512 implements Provider with hand-written AVX-512 kernels.
type avx512 struct{}

func hasAVX512() bool {
	return cpu.X86.HasAVX512 && cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ
}

// GetProvider returns the AVX-512 backend when the running CPU supports
// it, or nil otherwise (the caller falls back to generic).
func GetProvider() Provider {
	if hasAVX512() {
		return new(avx512)
	}
	return nil
}

func (p *avx512) Sum(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}
	return float64(C.ffspm_avx512_sum((C.size_t)(len(arr)), (*C.double)(&arr[0])))
}

func (p *avx512) Min(a, b, out []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return float64(C.ffspm_avx512_min(
		(C.size_t)(len(a)),
		(*C.double)(unsafe.Pointer(&a[0])),
		(*C.double)(unsafe.Pointer(&b[0])),
		(*C.double)(unsafe.Pointer(&out[0])),
	))
}

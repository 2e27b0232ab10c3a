package ops

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

func TestGenericSum(t *testing.T) {
	for _, size := range []int{0, 1, 7, 8, 31, 64, 127} {
		t.Run("size="+strconv.Itoa(size), func(t *testing.T) {
			arr := make([]float64, size)
			var want float64
			for i := range arr {
				arr[i] = rand.Float64() * 10
				want += arr[i]
			}
			g := new(generic)
			got := g.Sum(arr)
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("Sum() = %v, want %v", got, want)
			}
		})
	}
}

func TestGenericMin(t *testing.T) {
	for _, size := range []int{0, 1, 7, 8, 31, 64} {
		t.Run("size="+strconv.Itoa(size), func(t *testing.T) {
			a := make([]float64, size)
			b := make([]float64, size)
			out := make([]float64, size)
			var want float64
			for i := range a {
				a[i] = rand.Float64() * 10
				b[i] = rand.Float64() * 10
				want += math.Min(a[i], b[i])
			}
			g := new(generic)
			got := g.Min(a, b, out)
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("Min() sum = %v, want %v", got, want)
			}
			for i := range out {
				if math.Abs(out[i]-math.Min(a[i], b[i])) > 1e-9 {
					t.Errorf("out[%d] = %v, want %v", i, out[i], math.Min(a[i], b[i]))
				}
			}
		})
	}
}

func TestSharedProviderIsSet(t *testing.T) {
	if Shared == nil {
		t.Fatal("Shared provider must never be nil")
	}
	if Name() == "" {
		t.Fatal("Name() must not be empty")
	}
}

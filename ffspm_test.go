package ffspm

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFuzzify(t *testing.T) {
	cases := []struct {
		q                 int
		low, middle, high float64
	}{
		{0, 0, 0, 0},
		{-3, 0, 0, 0},
		{1, 1, 0, 0},
		{3, 0.6, 0.4, 0},
		{6, 0, 1, 0},
		{7, 0, 0.8, 0.2},
		{10, 0, 0.2, 0.8},
		{11, 0, 0, 1},
		{20, 0, 0, 1},
	}
	for _, c := range cases {
		got := Fuzzify(c.q)
		if !almostEqual(got.Low, c.low) || !almostEqual(got.Middle, c.middle) || !almostEqual(got.High, c.high) {
			t.Errorf("Fuzzify(%d) = %+v, want (%v,%v,%v)", c.q, got, c.low, c.middle, c.high)
		}
		if c.q > 0 && !almostEqual(got.Low+got.Middle+got.High, 1) {
			t.Errorf("Fuzzify(%d) sum = %v, want 1", c.q, got.Low+got.Middle+got.High)
		}
	}
}

func TestAggregateDominantTieBreak(t *testing.T) {
	// Scenario D: quantity 1 then quantity 6 for the same item.
	a := &Aggregate{}
	a.Add(Fuzzify(1))
	a.Add(Fuzzify(6))

	if !almostEqual(a.SumLow, 1) || !almostEqual(a.SumMiddle, 1) || !almostEqual(a.SumHigh, 0) {
		t.Fatalf("unexpected sums: %+v", a)
	}

	region, sum := a.Dominant()
	if region != Low {
		t.Errorf("Dominant() region = %v, want Low (tie broken toward L)", region)
	}
	if !almostEqual(sum, 1) {
		t.Errorf("Dominant() sum = %v, want 1", sum)
	}
}

func TestRegionLabelString(t *testing.T) {
	if Low.String() != "L" || Middle.String() != "M" || High.String() != "H" {
		t.Fatal("unexpected region label strings")
	}
}

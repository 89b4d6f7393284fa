package postfix

import (
	"math"
	"math/rand"
	"testing"
)

func exprsOf(vals ...float64) []*Expr {
	r := make([]*Expr, len(vals))
	for i, v := range vals {
		r[i] = &Expr{n: &node{kind: nodeNum, name: FormatValue(v)}, val: v, line: i + 1}
	}
	return r
}

func valuesOf(exprs []*Expr) []float64 {
	r := make([]float64, len(exprs))
	for i, e := range exprs {
		r[i] = e.val
	}
	return r
}

func TestSort(t *testing.T) {
	defer traceTo(t)()
	cases := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"empty", nil, nil},
		{"one", []float64{1}, []float64{1}},
		{"three", []float64{9, -1, 3}, []float64{-1, 3, 9}},
		{"sorted", []float64{1, 2, 3, 4}, []float64{1, 2, 3, 4}},
		{"reversed", []float64{4, 3, 2, 1}, []float64{1, 2, 3, 4}},
		{"inf", []float64{math.Inf(1), 0, math.Inf(-1)}, []float64{math.Inf(-1), 0, math.Inf(1)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			exprs := exprsOf(c.in...)
			Sort(exprs)
			got := valuesOf(exprs)
			if len(got) != len(c.want) {
				t.Fatalf("want %v, got %v", c.want, got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("want %v, got %v", c.want, got)
					break
				}
			}
		})
	}
}

func TestSortStable(t *testing.T) {
	exprs := exprsOf(2, 1, 2, 1, 2)
	Sort(exprs)
	want := []int{2, 4, 1, 3, 5}
	for i, e := range exprs {
		if e.line != want[i] {
			t.Errorf("position %d: want line %d, got line %d", i, want[i], e.line)
		}
	}
}

func TestSortNaN(t *testing.T) {
	exprs := exprsOf(math.NaN(), 3, math.NaN(), -1)
	Sort(exprs)
	got := valuesOf(exprs)
	if got[0] != -1 || got[1] != 3 || !math.IsNaN(got[2]) || !math.IsNaN(got[3]) {
		t.Errorf("want [-1 3 NaN NaN], got %v", got)
	}
	if exprs[2].line != 1 || exprs[3].line != 3 {
		t.Errorf("NaNs out of input order: lines %d, %d", exprs[2].line, exprs[3].line)
	}
}

func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		vals := make([]float64, rng.Intn(100))
		for i := range vals {
			// Small range so that ties are common.
			vals[i] = float64(rng.Intn(20) - 10)
		}
		exprs := exprsOf(vals...)
		Sort(exprs)
		for i := 1; i < len(exprs); i++ {
			a, b := exprs[i-1], exprs[i]
			if a.val > b.val {
				t.Fatalf("out of order at %d: %v", i, valuesOf(exprs))
			}
			if a.val == b.val && a.line > b.line {
				t.Fatalf("tie out of input order at %d", i)
			}
		}
	}
}

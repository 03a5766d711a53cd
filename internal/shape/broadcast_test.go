package shape

import (
	"errors"
	"testing"
)

func TestResolveShapes(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Shape
		want    Shape
		trivial bool
	}{
		{"same shape", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, true},
		{"scalar and vector", Shape{}, Shape{4}, Shape{4}, true},
		{"vector and scalar", Shape{4}, Shape{}, Shape{4}, true},
		{"scalar and matrix", Shape{}, Shape{3, 4}, Shape{3, 4}, true},
		{"size-1 encoding and matrix", Shape{1}, Shape{3, 4}, Shape{3, 4}, true},
		{"all-ones encoding and matrix", Shape{1, 1}, Shape{3, 4}, Shape{3, 4}, true},
		{"row broadcast", Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{"column broadcast", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, false},
		{"outer product", Shape{3, 1}, Shape{1, 5}, Shape{3, 5}, false},
		{"rank extension", Shape{5}, Shape{3, 5}, Shape{3, 5}, false},
		{"trailing match with leading ones", Shape{1, 1, 5}, Shape{5}, Shape{1, 1, 5}, true},
		{"scalars", Shape{}, Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Resolve(%v, %v) error: %v", tt.a, tt.b, err)
			}
			if !res.Shape.Equal(tt.want) {
				t.Errorf("Resolve(%v, %v).Shape = %v, want %v", tt.a, tt.b, res.Shape, tt.want)
			}
			if res.Trivial != tt.trivial {
				t.Errorf("Resolve(%v, %v).Trivial = %v, want %v", tt.a, tt.b, res.Trivial, tt.trivial)
			}
		})
	}
}

func TestResolveMismatch(t *testing.T) {
	tests := []struct {
		a, b Shape
	}{
		{Shape{3}, Shape{4}},
		{Shape{3, 4}, Shape{3, 5}},
		{Shape{2, 3}, Shape{3, 3, 4}},
	}

	for _, tt := range tests {
		_, err := Resolve(tt.a, tt.b)
		if err == nil {
			t.Errorf("Resolve(%v, %v): want error, got nil", tt.a, tt.b)
			continue
		}
		if !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("Resolve(%v, %v): error %v does not wrap ErrShapeMismatch", tt.a, tt.b, err)
		}
		var me *MismatchError
		if !errors.As(err, &me) {
			t.Errorf("Resolve(%v, %v): error %v is not a *MismatchError", tt.a, tt.b, err)
		}
	}
}

// TestScalarAlwaysTrivial pins the invariant that combining any shape with a
// scalar yields a trivial classification, for every rank and for both
// descriptor kinds.
func TestScalarAlwaysTrivial(t *testing.T) {
	shapes := []Shape{
		{},
		{1},
		{7},
		{3, 4},
		{2, 3, 4},
		{2, 1, 4, 1},
		{2, 2, 2, 2, 2, 2, 2, 2},
	}
	scalars := []Descriptor{
		Shape{},
		Shape{1},
		MustStatic([0]int{}),
		MustStatic([1]int{1}),
	}

	for _, s := range shapes {
		for _, sc := range scalars {
			res, err := Resolve(s, sc)
			if err != nil {
				t.Fatalf("Resolve(%v, scalar) error: %v", s, err)
			}
			if !res.Trivial {
				t.Errorf("Resolve(%v, scalar %v) not trivial", s, sc.Extents())
			}

			res, err = Resolve(sc, s)
			if err != nil {
				t.Fatalf("Resolve(scalar, %v) error: %v", s, err)
			}
			if !res.Trivial {
				t.Errorf("Resolve(scalar %v, %v) not trivial", sc.Extents(), s)
			}
		}
	}
}

// TestStaticDynamicConsistency checks that resolving through static or
// dynamic descriptors yields identical results: there is only one evaluation
// path to diverge from.
func TestStaticDynamicConsistency(t *testing.T) {
	type pair struct {
		d Shape
		s Descriptor
	}
	pairs := [][2]pair{
		{{Shape{4}, MustStatic([1]int{4})}, {Shape{}, MustStatic([0]int{})}},
		{{Shape{3, 5}, MustStatic([2]int{3, 5})}, {Shape{3, 1}, MustStatic([2]int{3, 1})}},
		{{Shape{1, 5}, MustStatic([2]int{1, 5})}, {Shape{3, 5}, MustStatic([2]int{3, 5})}},
		{{Shape{2, 3, 4}, MustStatic([3]int{2, 3, 4})}, {Shape{4}, MustStatic([1]int{4})}},
	}

	for _, p := range pairs {
		dyn, err1 := Resolve(p[0].d, p[1].d)
		sta, err2 := Resolve(p[0].s, p[1].s)
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("Resolve(%v, %v): dynamic err %v, static err %v", p[0].d, p[1].d, err1, err2)
		}
		if err1 != nil {
			continue
		}
		if !dyn.Shape.Equal(sta.Shape) {
			t.Errorf("Resolve(%v, %v): dynamic shape %v != static shape %v",
				p[0].d, p[1].d, dyn.Shape, sta.Shape)
		}
		if dyn.Trivial != sta.Trivial {
			t.Errorf("Resolve(%v, %v): dynamic trivial %v != static trivial %v",
				p[0].d, p[1].d, dyn.Trivial, sta.Trivial)
		}
	}
}

// TestRowBroadcastNonTrivial pins the [1, N] with [M, N] case: result [M, N],
// trivial only when M == 1.
func TestRowBroadcastNonTrivial(t *testing.T) {
	for _, m := range []int{1, 2, 5} {
		res, err := Resolve(Shape{1, 4}, Shape{m, 4})
		if err != nil {
			t.Fatalf("Resolve((1,4), (%d,4)) error: %v", m, err)
		}
		if !res.Shape.Equal(Shape{m, 4}) {
			t.Errorf("Resolve((1,4), (%d,4)).Shape = %v, want (%d, 4)", m, res.Shape, m)
		}
		wantTrivial := m == 1
		if res.Trivial != wantTrivial {
			t.Errorf("Resolve((1,4), (%d,4)).Trivial = %v, want %v", m, res.Trivial, wantTrivial)
		}
	}
}

func TestTrivialFor(t *testing.T) {
	tests := []struct {
		d        Descriptor
		result   Shape
		expected bool
	}{
		{Shape{}, Shape{3, 4}, true},
		{Shape{1}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{4}, Shape{1, 1, 4}, true},
		{Shape{1, 4}, Shape{3, 4}, false},
		{Shape{4}, Shape{3, 4}, false},
		{MustStatic([1]int{1}), Shape{8}, true},
		{MustStatic([2]int{3, 4}), Shape{3, 4}, true},
	}

	for _, tt := range tests {
		if got := TrivialFor(tt.d, tt.result); got != tt.expected {
			t.Errorf("TrivialFor(%v, %v) = %v, want %v", tt.d.Extents(), tt.result, got, tt.expected)
		}
	}
}

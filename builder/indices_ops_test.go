package builder

import (
	"testing"

	"github.com/notargets/ndfilter/grid"
)

func TestIndicesOpsThreeAxes(t *testing.T) {
	kb := NewBuilder(Config{
		IntType: grid.Index32,
		Window:  grid.Window{Extents: []int64{3, 5, 7}},
	})
	want := `int _i = i;
int ind_2 = _i % ysize_2 - 3; _i /= ysize_2;
int ind_1 = _i % ysize_1 - 2; _i /= ysize_1;
int ind_0 = _i - 1;
`
	got := kb.WindowIndicesOps()
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestIndicesOpsWithOrigins(t *testing.T) {
	kb := NewBuilder(Config{
		IntType: grid.Index64,
		Window:  grid.Window{Extents: []int64{3, 3}, Origins: []int64{1, -1}},
	})
	want := `ptrdiff_t _i = i;
ptrdiff_t ind_1 = _i % ysize_1 - 0; _i /= ysize_1;
ptrdiff_t ind_0 = _i - 2;
`
	got := kb.WindowIndicesOps()
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestIndicesOpsSingleAxis(t *testing.T) {
	kb := NewBuilder(Config{
		IntType: grid.Index32,
		Window:  grid.Window{Extents: []int64{9}},
	})
	want := `int _i = i;
int ind_0 = _i - 4;
`
	if got := kb.WindowIndicesOps(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestIndicesOpsOffsetsMismatchPanics(t *testing.T) {
	kb := NewBuilder(Config{Window: grid.Window{Extents: []int64{3, 3}}})
	defer func() {
		if recover() == nil {
			t.Error("IndicesOps accepted mismatched offsets")
		}
	}()
	kb.IndicesOps([]int64{1})
}

package grid

import "testing"

func TestWindowOffsets(t *testing.T) {
	t.Run("centered", func(t *testing.T) {
		w := Window{Extents: []int64{3, 5}}
		off := w.Offsets()
		if off[0] != 1 || off[1] != 2 {
			t.Errorf("Offsets() = %v, want [1 2]", off)
		}
	})

	t.Run("shifted by origins", func(t *testing.T) {
		w := Window{Extents: []int64{3, 5}, Origins: []int64{1, -2}}
		off := w.Offsets()
		if off[0] != 2 || off[1] != 0 {
			t.Errorf("Offsets() = %v, want [2 0]", off)
		}
	})
}

func TestDecomposeIndexEnumerates(t *testing.T) {
	// Walking i over a 3x5 window must produce every coordinate pair in
	// row-major order, shifted by the center offsets.
	w := Window{Extents: []int64{3, 5}, Origins: []int64{0, 1}}
	off := w.Offsets()
	ind := make([]int64, 2)
	i := int64(0)
	for a := int64(0); a < 3; a++ {
		for b := int64(0); b < 5; b++ {
			w.Decompose(i, ind)
			if ind[0] != a-off[0] || ind[1] != b-off[1] {
				t.Fatalf("position %d: got (%d,%d), want (%d,%d)",
					i, ind[0], ind[1], a-off[0], b-off[1])
			}
			i++
		}
	}
}

func TestDecomposeIndexRecomposes(t *testing.T) {
	// Adding the offsets back and reflattening must return the original
	// position, for every position of an asymmetric 3-d window.
	extents := []int64{2, 3, 4}
	offsets := []int64{1, 0, 3}
	ind := make([]int64, 3)
	for i := int64(0); i < 24; i++ {
		DecomposeIndex(i, extents, offsets, ind)
		flat := int64(0)
		for j := 0; j < 3; j++ {
			flat = flat*extents[j] + (ind[j] + offsets[j])
		}
		if flat != i {
			t.Fatalf("position %d recomposed to %d (coords %v)", i, flat, ind)
		}
	}
}

func TestDecomposeIndexCenter(t *testing.T) {
	// The middle position of a centered 3x3 window is the origin.
	ind := make([]int64, 2)
	DecomposeIndex(4, []int64{3, 3}, []int64{1, 1}, ind)
	if ind[0] != 0 || ind[1] != 0 {
		t.Errorf("got (%d,%d), want (0,0)", ind[0], ind[1])
	}
}

func TestDecomposeIndexOneAxis(t *testing.T) {
	ind := make([]int64, 1)
	DecomposeIndex(4, []int64{5}, []int64{2}, ind)
	if ind[0] != 2 {
		t.Errorf("got %d, want 2", ind[0])
	}
	DecomposeIndex(0, []int64{5}, []int64{2}, ind)
	if ind[0] != -2 {
		t.Errorf("got %d, want -2", ind[0])
	}
}

package grid

import "testing"

func TestContiguousStrides(t *testing.T) {
	got := ContiguousStrides([]int64{4, 3, 2})
	want := []int64{6, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ContiguousStrides = %v, want %v", got, want)
		}
	}
}

func TestByteSpan(t *testing.T) {
	t.Run("contiguous equals total size", func(t *testing.T) {
		spec := ArraySpec{Shape: []int64{4, 5}, DType: Float64}
		if got, want := spec.ByteSpan(), spec.Count()*8; got != want {
			t.Errorf("ByteSpan() = %d, want %d", got, want)
		}
	})

	t.Run("strided view spans the gaps", func(t *testing.T) {
		// 10 elements, 100 apart: reachable region is 901 elements wide.
		spec := ArraySpec{Shape: []int64{10}, Strides: []int64{100}, DType: Float32}
		if got := spec.ByteSpan(); got != 901*4 {
			t.Errorf("ByteSpan() = %d, want %d", got, 901*4)
		}
	})

	t.Run("negative strides span the same region", func(t *testing.T) {
		fwd := ArraySpec{Shape: []int64{10}, Strides: []int64{100}, DType: Float32}
		rev := ArraySpec{Shape: []int64{10}, Strides: []int64{-100}, DType: Float32}
		if fwd.ByteSpan() != rev.ByteSpan() {
			t.Errorf("reversed view spans %d bytes, forward spans %d", rev.ByteSpan(), fwd.ByteSpan())
		}
	})

	t.Run("broadcast axis contributes nothing", func(t *testing.T) {
		spec := ArraySpec{Shape: []int64{1 << 30, 4}, Strides: []int64{0, 1}, DType: Uint8}
		if got := spec.ByteSpan(); got != 4 {
			t.Errorf("ByteSpan() = %d, want 4", got)
		}
	})
}

func TestSelectIndexType(t *testing.T) {
	t.Run("small arrays stay narrow", func(t *testing.T) {
		in := ArraySpec{Shape: []int64{512, 512, 64}, DType: Float64}
		if got := SelectIndexType(in); got != Index32 {
			t.Errorf("SelectIndexType = %v, want Index32", got)
		}
		tiny := ArraySpec{Shape: []int64{10, 10}, DType: Float32}
		if got := SelectIndexType(tiny); got != Index32 {
			t.Errorf("SelectIndexType = %v, want Index32", got)
		}
	})

	t.Run("gigapixel image goes wide", func(t *testing.T) {
		in := ArraySpec{Shape: []int64{1 << 20, 1 << 12}, DType: Float64}
		if got := SelectIndexType(in); got != Index64 {
			t.Errorf("SelectIndexType = %v, want Index64", got)
		}
	})

	t.Run("span at the 2GiB boundary goes wide", func(t *testing.T) {
		// (1<<28) float64 elements span exactly 1<<31 bytes.
		wide := ArraySpec{Shape: []int64{1 << 28}, DType: Float64}
		if got := SelectIndexType(wide); got != Index64 {
			t.Errorf("SelectIndexType = %v, want Index64", got)
		}
		under := ArraySpec{Shape: []int64{1<<28 - 1}, DType: Float64}
		if got := SelectIndexType(under); got != Index32 {
			t.Errorf("SelectIndexType = %v, want Index32", got)
		}
	})

	t.Run("few elements with huge strides still go wide", func(t *testing.T) {
		spec := ArraySpec{Shape: []int64{2, 2}, Strides: []int64{1 << 30, 1}, DType: Float64}
		if got := SelectIndexType(spec); got != Index64 {
			t.Errorf("SelectIndexType = %v, want Index64", got)
		}
	})

	t.Run("one wide participant forces wide indexing", func(t *testing.T) {
		small := ArraySpec{Shape: []int64{16}, DType: Float32}
		big := ArraySpec{Shape: []int64{1 << 29}, DType: Float64}
		if got := SelectIndexType(small, big, small); got != Index64 {
			t.Errorf("SelectIndexType = %v, want Index64", got)
		}
	})
}

func TestIndexTypeNames(t *testing.T) {
	if Index32.CName() != "int" || Index64.CName() != "ptrdiff_t" {
		t.Errorf("CName: got %q/%q", Index32.CName(), Index64.CName())
	}
	if Index32.Size() != 4 || Index64.Size() != 8 {
		t.Errorf("Size: got %d/%d", Index32.Size(), Index64.Size())
	}
}

package filter

import (
	"errors"
	"testing"

	"github.com/notargets/ndfilter/grid"
)

func TestResolveOutputDefaults(t *testing.T) {
	input := grid.ArraySpec{Shape: []int64{8, 8}, DType: grid.Int16}

	t.Run("zero value mirrors the input", func(t *testing.T) {
		out, err := ResolveOutput(Output{}, input, nil, false)
		if err != nil {
			t.Fatal(err)
		}
		if !equalShape(out.Shape, input.Shape) || out.DType != grid.Int16 {
			t.Errorf("got %v %v", out.Shape, out.DType)
		}
	})

	t.Run("complex computation promotes the default", func(t *testing.T) {
		out, err := ResolveOutput(Output{}, input, nil, true)
		if err != nil {
			t.Fatal(err)
		}
		if out.DType != grid.Complex64 {
			t.Errorf("got %v, want Complex64", out.DType)
		}
	})

	t.Run("shape override", func(t *testing.T) {
		out, err := ResolveOutput(Output{}, input, []int64{4, 4, 4}, false)
		if err != nil {
			t.Fatal(err)
		}
		if !equalShape(out.Shape, []int64{4, 4, 4}) {
			t.Errorf("got %v, want [4 4 4]", out.Shape)
		}
	})
}

func TestResolveOutputExplicitDType(t *testing.T) {
	input := grid.ArraySpec{Shape: []int64{8}, DType: grid.Float64}

	out, err := ResolveOutput(Output{DType: grid.Float32}, input, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if out.DType != grid.Float32 {
		t.Errorf("got %v, want Float32", out.DType)
	}

	// A real dtype against a complex computation is promoted, not
	// rejected: the caller asked for a dtype, not a specific array.
	out, err = ResolveOutput(Output{DType: grid.Float32}, input, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if out.DType != grid.Complex64 {
		t.Errorf("got %v, want Complex64", out.DType)
	}
}

func TestResolveOutputExistingArray(t *testing.T) {
	input := grid.ArraySpec{Shape: []int64{4, 6}, DType: grid.Float32}

	t.Run("matching array passes through", func(t *testing.T) {
		dst := grid.ArraySpec{Shape: []int64{4, 6}, DType: grid.Float64}
		out, err := ResolveOutput(Output{Spec: &dst}, input, nil, false)
		if err != nil {
			t.Fatal(err)
		}
		if out.DType != grid.Float64 {
			t.Errorf("got %v, want the provided array's dtype", out.DType)
		}
	})

	t.Run("wrong shape", func(t *testing.T) {
		dst := grid.ArraySpec{Shape: []int64{6, 4}, DType: grid.Float32}
		_, err := ResolveOutput(Output{Spec: &dst}, input, nil, false)
		if !errors.Is(err, ErrOutputShape) {
			t.Errorf("got %v, want ErrOutputShape", err)
		}
	})

	t.Run("real array cannot hold complex results", func(t *testing.T) {
		dst := grid.ArraySpec{Shape: []int64{4, 6}, DType: grid.Float64}
		_, err := ResolveOutput(Output{Spec: &dst}, input, nil, true)
		if !errors.Is(err, ErrOutputDType) {
			t.Errorf("got %v, want ErrOutputDType", err)
		}
	})
}

func TestOutputIsInteger(t *testing.T) {
	intSpec := grid.ArraySpec{Shape: []int64{2}, DType: grid.Uint8}
	if !(Output{Spec: &intSpec}).IsInteger(grid.Float64) {
		t.Error("integer array output should report integer")
	}
	if (Output{DType: grid.Float32}).IsInteger(grid.Int32) {
		t.Error("explicit float dtype should win over integer input")
	}
	if !(Output{}).IsInteger(grid.Int32) {
		t.Error("default output inherits the input's integer kind")
	}
}

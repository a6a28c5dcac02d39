package filter

import (
	"testing"

	"github.com/notargets/ndfilter/grid"
)

func TestPromoteReal(t *testing.T) {
	cases := map[grid.DType]grid.DType{
		grid.Int8:       grid.Float32,
		grid.Uint16:     grid.Float32,
		grid.Int32:      grid.Float64,
		grid.Uint64:     grid.Float64,
		grid.Float32:    grid.Float32,
		grid.Float64:    grid.Float64,
		grid.Complex64:  grid.Complex64,
		grid.Complex128: grid.Complex128,
	}
	for in, want := range cases {
		if got := PromoteReal(in); got != want {
			t.Errorf("PromoteReal(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestPromoteComplex(t *testing.T) {
	cases := map[grid.DType]grid.DType{
		grid.Int16:      grid.Complex64,
		grid.Int32:      grid.Complex128,
		grid.Float32:    grid.Complex64,
		grid.Float64:    grid.Complex128,
		grid.Complex64:  grid.Complex64,
		grid.Complex128: grid.Complex128,
	}
	for in, want := range cases {
		if got := PromoteComplex(in); got != want {
			t.Errorf("PromoteComplex(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestWeightsDType(t *testing.T) {
	cases := []struct {
		name    string
		input   grid.DType
		weights grid.DType
		want    grid.DType
	}{
		{"float weights keep input precision", grid.Float32, grid.Float32, grid.Float32},
		{"narrow int input with float weights", grid.Uint8, grid.Float32, grid.Float32},
		{"wide int input with float weights", grid.Int64, grid.Float32, grid.Float64},
		{"integer weights force double", grid.Float32, grid.Int16, grid.Float64},
		{"integer weights force double on int input", grid.Uint8, grid.Uint8, grid.Float64},
		{"complex input", grid.Complex64, grid.Float32, grid.Complex64},
		{"complex weights promote real input", grid.Float64, grid.Complex64, grid.Complex128},
		{"complex weights with narrow input", grid.Int16, grid.Complex64, grid.Complex64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeightsDType(tc.input, tc.weights); got != tc.want {
				t.Errorf("WeightsDType(%v, %v) = %v, want %v",
					tc.input, tc.weights, got, tc.want)
			}
		})
	}
}

func TestInitWeightsDType(t *testing.T) {
	cases := map[grid.DType]grid.DType{
		grid.Uint8:      grid.Float32,
		grid.Int32:      grid.Float64,
		grid.Float32:    grid.Float32,
		grid.Float64:    grid.Float64,
		grid.Complex64:  grid.Complex64,
		grid.Complex128: grid.Complex128,
	}
	for in, want := range cases {
		if got := InitWeightsDType(in); got != want {
			t.Errorf("InitWeightsDType(%v) = %v, want %v", in, got, want)
		}
	}
}

package runner

import (
	"fmt"
	"unsafe"

	"github.com/notargets/gocca"
	"github.com/notargets/ndfilter/boundary"
	"github.com/notargets/ndfilter/builder"
	"github.com/notargets/ndfilter/grid"
)

// Runner compiles generated kernels on an OCCA device and exposes the
// device-side resolution path. Its main job is conformance: running the
// generated boundary blocks on real hardware so they can be compared
// against the host resolvers.
type Runner struct {
	*builder.Builder
	Device  *gocca.OCCADevice
	Kernels map[string]*gocca.OCCAKernel
}

// NewRunner creates a Runner generating code for cfg on device.
func NewRunner(device *gocca.OCCADevice, cfg builder.Config) *Runner {
	if device == nil {
		panic("device cannot be nil")
	}

	return &Runner{
		Builder: builder.NewBuilder(cfg),
		Device:  device,
		Kernels: make(map[string]*gocca.OCCAKernel),
	}
}

// Free releases all compiled kernels. The device is the caller's.
func (kr *Runner) Free() {
	for _, kernel := range kr.Kernels {
		kernel.Free()
	}
	kr.Kernels = make(map[string]*gocca.OCCAKernel)
}

// BuildKernel compiles kernelSource against the generated preamble and
// registers the kernel under kernelName.
func (kr *Runner) BuildKernel(kernelSource, kernelName string) (*gocca.OCCAKernel, error) {
	// Combine preamble with kernel source
	fullSource := kr.Preamble() + "\n" + kernelSource

	// Build kernel with OpenMP optimization fix
	var kernel *gocca.OCCAKernel
	var err error

	if kr.Device.Mode() == "OpenMP" {
		// Workaround for OCCA bug: OpenMP doesn't get default -O3 flag
		props := gocca.JsonParse(`{"compiler_flags": "-O3"}`)
		defer props.Free()
		kernel, err = kr.Device.BuildKernelFromString(fullSource, kernelName, props)
	} else {
		// Other devices work correctly with default flags
		kernel, err = kr.Device.BuildKernelFromString(fullSource, kernelName, nil)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to build kernel %s: %w", kernelName, err)
	}
	if kernel == nil {
		return nil, fmt.Errorf("kernel build returned nil for %s", kernelName)
	}

	kr.Kernels[kernelName] = kernel
	return kernel, nil
}

// resolveKernel returns the compiled resolve kernel for mode, building
// and caching it on first use. One kernel serves every axis size; the
// size is a launch argument.
func (kr *Runner) resolveKernel(mode boundary.Mode, floatIx bool) (*gocca.OCCAKernel, error) {
	name := builder.ResolveKernelName(mode, floatIx)
	if kernel, exists := kr.Kernels[name]; exists {
		return kernel, nil
	}
	return kr.BuildKernel(kr.GenerateResolveKernel(name, mode, floatIx), name)
}

// ResolveOnDevice maps raw coordinates through mode's boundary rule on
// the device against an axis of size xsize. With the narrow index type
// configured, coordinates truncate to 32 bits on the way in, exactly as
// a narrow kernel embedded in a filter sees them.
func (kr *Runner) ResolveOnDevice(mode boundary.Mode, raw []int64, xsize int64) ([]int64, error) {
	n := len(raw)
	if n == 0 {
		return nil, nil
	}
	kernel, err := kr.resolveKernel(mode, false)
	if err != nil {
		return nil, err
	}

	intSize := kr.IntType.Size()
	var rawMem *gocca.OCCAMemory
	if kr.IntType == grid.Index32 {
		raw32 := make([]int32, n)
		for i, v := range raw {
			raw32[i] = int32(v)
		}
		rawMem = kr.Device.Malloc(int64(n)*intSize, unsafe.Pointer(&raw32[0]), nil)
	} else {
		rawMem = kr.Device.Malloc(int64(n)*intSize, unsafe.Pointer(&raw[0]), nil)
	}
	defer rawMem.Free()

	resolvedMem := kr.Device.Malloc(int64(n)*intSize, nil, nil)
	defer resolvedMem.Free()

	if err := kr.launchResolve(kernel, n, xsize, rawMem, resolvedMem); err != nil {
		return nil, err
	}

	out := make([]int64, n)
	if kr.IntType == grid.Index32 {
		out32 := make([]int32, n)
		resolvedMem.CopyTo(unsafe.Pointer(&out32[0]), int64(n)*intSize)
		for i, v := range out32 {
			out[i] = int64(v)
		}
	} else {
		resolvedMem.CopyTo(unsafe.Pointer(&out[0]), int64(n)*intSize)
	}
	return out, nil
}

// ResolveOnDeviceFloat is ResolveOnDevice over real_t coordinates.
func (kr *Runner) ResolveOnDeviceFloat(mode boundary.Mode, raw []float64, xsize int64) ([]float64, error) {
	n := len(raw)
	if n == 0 {
		return nil, nil
	}
	kernel, err := kr.resolveKernel(mode, true)
	if err != nil {
		return nil, err
	}

	realSize := kr.FloatType.Size()
	var rawMem *gocca.OCCAMemory
	if kr.FloatType == grid.Float32 {
		raw32 := make([]float32, n)
		for i, v := range raw {
			raw32[i] = float32(v)
		}
		rawMem = kr.Device.Malloc(int64(n)*realSize, unsafe.Pointer(&raw32[0]), nil)
	} else {
		rawMem = kr.Device.Malloc(int64(n)*realSize, unsafe.Pointer(&raw[0]), nil)
	}
	defer rawMem.Free()

	resolvedMem := kr.Device.Malloc(int64(n)*realSize, nil, nil)
	defer resolvedMem.Free()

	if err := kr.launchResolve(kernel, n, xsize, rawMem, resolvedMem); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	if kr.FloatType == grid.Float32 {
		out32 := make([]float32, n)
		resolvedMem.CopyTo(unsafe.Pointer(&out32[0]), int64(n)*realSize)
		for i, v := range out32 {
			out[i] = float64(v)
		}
	} else {
		resolvedMem.CopyTo(unsafe.Pointer(&out[0]), int64(n)*realSize)
	}
	return out, nil
}

// launchResolve runs a resolve kernel over n coordinates. Scalar
// arguments are sized to match the kernel's int_t exactly.
func (kr *Runner) launchResolve(kernel *gocca.OCCAKernel, n int, xsize int64, rawMem, resolvedMem *gocca.OCCAMemory) error {
	var err error
	if kr.IntType == grid.Index32 {
		err = kernel.RunWithArgs(int32(n), int32(xsize), rawMem, resolvedMem)
	} else {
		err = kernel.RunWithArgs(int64(n), xsize, rawMem, resolvedMem)
	}
	if err != nil {
		return fmt.Errorf("resolve kernel failed: %w", err)
	}
	kr.Device.Finish()
	return nil
}

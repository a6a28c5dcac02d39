package utils

import (
	"fmt"

	"github.com/notargets/gocca"
	"github.com/pbnjay/memory"
)

// CreateTestDevice creates a Device for testing, preferring parallel backends
func CreateTestDevice() *gocca.OCCADevice {
	// Try OpenMP, then CUDA, then fall back to Serial
	backends := []string{
		`{"mode": "OpenMP"}`,
		`{"mode": "CUDA", "device_id": 0}`,
		`{"mode": "Serial"}`,
	}

	for _, props := range backends {
		device, err := gocca.NewDevice(props)
		if err == nil {
			fmt.Printf("Created %s Device\n", device.Mode())
			return device
		}
	}

	// Should not reach here
	panic("Failed to create any Device")
}

// EnoughMemory reports whether the host has at least need bytes of
// physical RAM with 2x headroom. Large-batch device tests use it to
// skip rather than thrash smaller machines.
func EnoughMemory(need uint64) bool {
	return memory.TotalMemory() >= 2*need
}

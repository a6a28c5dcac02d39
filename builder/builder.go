package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notargets/ndfilter/grid"
	"gonum.org/v1/gonum/mat"
)

// Builder generates OCCA kernel source for N-dimensional filter support:
// boundary condition blocks, window index decomposition, and a preamble
// carrying type definitions, window extents and embedded weights. It
// holds no device resources; compiling and running the generated source
// is the runner's job.
type Builder struct {
	// Type configuration
	IntType   grid.IndexType
	FloatType grid.DType

	// Window the generated kernels slide across the input
	Window grid.Window

	// Static weights to embed
	StaticWeights map[string]mat.Matrix

	// Generated code
	kernelPreamble string
}

// Config holds configuration for creating a Builder
type Config struct {
	IntType   grid.IndexType
	FloatType grid.DType
	Window    grid.Window
}

// NewBuilder creates a new Builder instance. Zero-valued type fields
// default to wide indices and double precision.
func NewBuilder(cfg Config) *Builder {
	intType := cfg.IntType
	if intType == 0 {
		intType = grid.Index64
	}
	floatType := cfg.FloatType
	if floatType == 0 {
		floatType = grid.Float64
	}
	if floatType != grid.Float32 && floatType != grid.Float64 {
		panic(fmt.Sprintf("FloatType must be Float32 or Float64, got %v", floatType))
	}

	return &Builder{
		IntType:       intType,
		FloatType:     floatType,
		Window:        cfg.Window,
		StaticWeights: make(map[string]mat.Matrix),
	}
}

// AddStaticWeights adds a weight matrix to be embedded as a static const
// array in generated kernels. Generation happens in the preamble, so
// weights added after the first Preamble call are not seen.
func (kb *Builder) AddStaticWeights(name string, m mat.Matrix) {
	kb.StaticWeights[name] = m
}

// Preamble returns the kernel preamble, generating it on first use.
func (kb *Builder) Preamble() string {
	if kb.kernelPreamble == "" {
		kb.GeneratePreamble()
	}
	return kb.kernelPreamble
}

// GeneratePreamble generates the kernel preamble with type definitions,
// window extents and static weights. Output is deterministic so that
// rebuilding a kernel from the same configuration hits the device's
// compilation cache.
func (kb *Builder) GeneratePreamble() string {
	var sb strings.Builder

	// 1. Type definitions and constants
	sb.WriteString(kb.generateTypeDefinitions())

	// 2. Window extent defines
	sb.WriteString(kb.generateWindowDefines())

	// 3. Static weight declarations
	sb.WriteString(kb.generateStaticWeights())

	kb.kernelPreamble = sb.String()
	return kb.kernelPreamble
}

// generateTypeDefinitions creates type definitions based on the index
// width and precision settings
func (kb *Builder) generateTypeDefinitions() string {
	var sb strings.Builder

	floatTypeStr := "double"
	floatSuffix := ""
	if kb.FloatType == grid.Float32 {
		floatTypeStr = "float"
		floatSuffix = "f"
	}

	sb.WriteString(fmt.Sprintf("typedef %s real_t;\n", floatTypeStr))
	sb.WriteString(fmt.Sprintf("typedef %s int_t;\n", kb.IntType.CName()))
	sb.WriteString(fmt.Sprintf("#define REAL_ZERO 0.0%s\n", floatSuffix))
	sb.WriteString(fmt.Sprintf("#define REAL_ONE 1.0%s\n", floatSuffix))
	sb.WriteString("\n")

	// Integer min/max are CUDA builtins but not plain C. The macro
	// arguments are side-effect free in every generated block.
	sb.WriteString("#ifndef min\n")
	sb.WriteString("#define min(a, b) (((a) < (b)) ? (a) : (b))\n")
	sb.WriteString("#endif\n")
	sb.WriteString("#ifndef max\n")
	sb.WriteString("#define max(a, b) (((a) > (b)) ? (a) : (b))\n")
	sb.WriteString("#endif\n")
	sb.WriteString("\n")

	return sb.String()
}

// generateWindowDefines emits the per-axis window extents referenced by
// the index decomposition block
func (kb *Builder) generateWindowDefines() string {
	if kb.Window.NDim() == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("// Filter window extents\n")
	for j, e := range kb.Window.Extents {
		sb.WriteString(fmt.Sprintf("#define ysize_%d %d\n", j, e))
	}
	sb.WriteString("\n")

	return sb.String()
}

// generateStaticWeights converts weight matrices to static array
// initializations, in name order
func (kb *Builder) generateStaticWeights() string {
	if len(kb.StaticWeights) == 0 {
		return ""
	}

	names := make([]string, 0, len(kb.StaticWeights))
	for name := range kb.StaticWeights {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("// Static filter weights\n")
	for _, name := range names {
		sb.WriteString(kb.formatStaticWeights(name, kb.StaticWeights[name]))
	}

	return sb.String()
}

// formatStaticWeights formats a single weight matrix as a static C
// array. Storage is row-major, matching the row-major window traversal
// of the generated loops.
func (kb *Builder) formatStaticWeights(name string, m mat.Matrix) string {
	rows, cols := m.Dims()
	var sb strings.Builder

	typeStr := "double"
	if kb.FloatType == grid.Float32 {
		typeStr = "float"
	}

	sb.WriteString(fmt.Sprintf("const %s %s[%d][%d] = {\n", typeStr, name, rows, cols))

	for i := 0; i < rows; i++ {
		sb.WriteString("    {")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			val := m.At(i, j)
			if kb.FloatType == grid.Float32 {
				sb.WriteString(fmt.Sprintf("%.7ef", val))
			} else {
				sb.WriteString(fmt.Sprintf("%.15e", val))
			}
		}
		sb.WriteString("}")
		if i < rows-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("};\n\n")

	return sb.String()
}

// IndentBlock prefixes every non-empty line of block with depth tabs,
// for splicing generated fragments into kernel bodies.
func IndentBlock(block string, depth int) string {
	prefix := strings.Repeat("\t", depth)
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notargets/ndfilter/boundary"
	"github.com/notargets/ndfilter/grid"
)

// BoundaryOps renders the boundary condition block for mode as C
// statements over the coordinate symbol ix and the axis size symbol
// xsize. The block is produced by walking the same rule the host
// resolvers evaluate, so the emitted arithmetic cannot drift from the
// verified one. With floatIx the coordinate is real_t: min and max
// become fmin and fmax, and the integer remainder becomes fmod.
func (kb *Builder) BoundaryOps(mode boundary.Mode, ix, xsize string, floatIx bool) string {
	r := ruleRenderer{
		ix:      ix,
		xsize:   xsize,
		intType: kb.IntType,
		floatIx: floatIx,
	}
	var sb strings.Builder
	r.renderStmts(&sb, boundary.RuleFor(mode), 0)
	return sb.String()
}

// C operator precedence levels, lowest binding first.
const (
	precOr = iota + 1
	precCmp
	precAdd
	precMul
	precUnary
)

type ruleRenderer struct {
	ix, xsize string
	intType   grid.IndexType
	floatIx   bool
}

func (r *ruleRenderer) renderStmts(sb *strings.Builder, stmts []boundary.Stmt, depth int) {
	for _, s := range stmts {
		r.renderStmt(sb, s, depth)
	}
}

func (r *ruleRenderer) renderStmt(sb *strings.Builder, s boundary.Stmt, depth int) {
	ind := strings.Repeat("    ", depth)
	switch s.Kind {
	case boundary.StmtSet:
		sb.WriteString(ind + r.assign(s.X) + ";\n")

	case boundary.StmtIf:
		sb.WriteString(ind)
		for {
			fmt.Fprintf(sb, "if (%s) {\n", r.expr(s.Cond, 0))
			r.renderStmts(sb, s.Body, depth+1)
			if len(s.Else) == 0 {
				sb.WriteString(ind + "}\n")
				return
			}
			// A lone nested if renders as an else-if chain.
			if len(s.Else) == 1 && s.Else[0].Kind == boundary.StmtIf {
				sb.WriteString(ind + "} else ")
				s = s.Else[0]
				continue
			}
			sb.WriteString(ind + "} else {\n")
			r.renderStmts(sb, s.Else, depth+1)
			sb.WriteString(ind + "}\n")
			return
		}

	case boundary.StmtWhile:
		fmt.Fprintf(sb, "%swhile (%s) {\n", ind, r.expr(s.Cond, 0))
		r.renderStmts(sb, s.Body, depth+1)
		sb.WriteString(ind + "}\n")

	default:
		panic(fmt.Sprintf("unknown statement kind %d", s.Kind))
	}
}

// assign prints "ix = expr", folding the ix = ix OP rhs shapes into the
// compound assignments hand-written kernels use.
func (r *ruleRenderer) assign(x *boundary.Expr) string {
	if x.A != nil && x.A.Op == boundary.OpCoord {
		switch x.Op {
		case boundary.OpAdd:
			return fmt.Sprintf("%s += %s", r.ix, r.expr(x.B, 0))
		case boundary.OpSub:
			return fmt.Sprintf("%s -= %s", r.ix, r.expr(x.B, 0))
		case boundary.OpMod:
			if r.floatIx {
				return fmt.Sprintf("%s = fmod(%s, %s)", r.ix, r.ix, r.expr(x.B, 0))
			}
			return fmt.Sprintf("%s %%= %s", r.ix, r.expr(x.B, 0))
		}
	}
	return fmt.Sprintf("%s = %s", r.ix, r.expr(x, 0))
}

// expr renders one expression node, parenthesizing when the parent
// context binds tighter.
func (r *ruleRenderer) expr(e *boundary.Expr, parent int) string {
	var s string
	var prec int

	switch e.Op {
	case boundary.OpCoord:
		return r.ix
	case boundary.OpSize:
		return r.xsize
	case boundary.OpConst:
		return strconv.FormatInt(e.K, 10)

	case boundary.OpNeg:
		s, prec = "-"+r.expr(e.A, precUnary), precUnary
	case boundary.OpCastIndex:
		s, prec = fmt.Sprintf("(%s)%s", r.intType.CName(), r.expr(e.A, precUnary)), precUnary
	case boundary.OpCastCompare:
		s, prec = fmt.Sprintf("(%s)%s", r.compareType(), r.expr(e.A, precUnary)), precUnary

	case boundary.OpMin:
		return fmt.Sprintf("%s(%s, %s)", r.minFunc(), r.expr(e.A, 0), r.expr(e.B, 0))
	case boundary.OpMax:
		return fmt.Sprintf("%s(%s, %s)", r.maxFunc(), r.expr(e.A, 0), r.expr(e.B, 0))

	case boundary.OpAdd:
		s, prec = r.binary(e, "+", precAdd, false), precAdd
	case boundary.OpSub:
		s, prec = r.binary(e, "-", precAdd, true), precAdd
	case boundary.OpMul:
		s, prec = r.binary(e, "*", precMul, false), precMul
	case boundary.OpDiv:
		s, prec = r.binary(e, "/", precMul, true), precMul
	case boundary.OpMod:
		if r.floatIx {
			return fmt.Sprintf("fmod(%s, %s)", r.expr(e.A, 0), r.expr(e.B, 0))
		}
		s, prec = r.binary(e, "%", precMul, true), precMul

	case boundary.OpLT:
		s, prec = r.binary(e, "<", precCmp, false), precCmp
	case boundary.OpGT:
		s, prec = r.binary(e, ">", precCmp, false), precCmp
	case boundary.OpGE:
		s, prec = r.binary(e, ">=", precCmp, false), precCmp
	case boundary.OpEQ:
		s, prec = r.binary(e, "==", precCmp, false), precCmp
	case boundary.OpOr:
		s, prec = r.expr(e.A, precOr)+" || "+r.expr(e.B, precOr), precOr

	default:
		panic(fmt.Sprintf("unknown expression op %d", e.Op))
	}

	if prec < parent {
		return "(" + s + ")"
	}
	return s
}

// binary renders a two-operand node. rightTight forces parentheses
// around a same-precedence right operand, which is what -, / and %
// need to stay left-associative.
func (r *ruleRenderer) binary(e *boundary.Expr, op string, prec int, rightTight bool) string {
	rightPrec := prec
	if rightTight {
		rightPrec = prec + 1
	}
	return r.expr(e.A, prec) + " " + op + " " + r.expr(e.B, rightPrec)
}

// compareType is the signed type clamping comparisons run in. Narrow
// kernels compare in int; wide kernels need the full 64 bits.
func (r *ruleRenderer) compareType() string {
	if r.intType == grid.Index32 {
		return "int"
	}
	return "long long"
}

func (r *ruleRenderer) minFunc() string {
	if r.floatIx {
		return "fmin"
	}
	return "min"
}

func (r *ruleRenderer) maxFunc() string {
	if r.floatIx {
		return "fmax"
	}
	return "max"
}

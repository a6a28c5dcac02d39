package boundary

import (
	"fmt"
	"math"
)

// evalInt runs a rule over an integer coordinate. With narrow set, every
// intermediate result is truncated to 32 bits, reproducing bit for bit
// what a kernel compiled with the narrow index type computes.
func evalInt(r Rule, ix, xsize int64, narrow bool) int64 {
	return evalStmtsInt(r, ix, xsize, narrow)
}

func evalStmtsInt(stmts []Stmt, ix, xsize int64, narrow bool) int64 {
	for _, s := range stmts {
		switch s.Kind {
		case StmtSet:
			ix = evalExprInt(s.X, ix, xsize, narrow)
		case StmtIf:
			if evalExprInt(s.Cond, ix, xsize, narrow) != 0 {
				ix = evalStmtsInt(s.Body, ix, xsize, narrow)
			} else {
				ix = evalStmtsInt(s.Else, ix, xsize, narrow)
			}
		case StmtWhile:
			for evalExprInt(s.Cond, ix, xsize, narrow) != 0 {
				ix = evalStmtsInt(s.Body, ix, xsize, narrow)
			}
		default:
			panic(fmt.Sprintf("boundary: bad statement kind %d", s.Kind))
		}
	}
	return ix
}

func evalExprInt(e *Expr, ix, xsize int64, narrow bool) int64 {
	switch e.Op {
	case OpCoord:
		return ix
	case OpSize:
		return truncInt(xsize, narrow)
	case OpConst:
		return truncInt(e.K, narrow)
	case OpNeg:
		return truncInt(-evalExprInt(e.A, ix, xsize, narrow), narrow)
	case OpCastIndex, OpCastCompare:
		return truncInt(evalExprInt(e.A, ix, xsize, narrow), narrow)
	}

	a := evalExprInt(e.A, ix, xsize, narrow)
	b := evalExprInt(e.B, ix, xsize, narrow)
	switch e.Op {
	case OpAdd:
		return truncInt(a+b, narrow)
	case OpSub:
		return truncInt(a-b, narrow)
	case OpMul:
		return truncInt(a*b, narrow)
	case OpDiv:
		return truncInt(a/b, narrow)
	case OpMod:
		return truncInt(a%b, narrow)
	case OpMin:
		if a < b {
			return a
		}
		return b
	case OpMax:
		if a > b {
			return a
		}
		return b
	case OpLT:
		return b2i(a < b)
	case OpGT:
		return b2i(a > b)
	case OpGE:
		return b2i(a >= b)
	case OpEQ:
		return b2i(a == b)
	case OpOr:
		return b2i(a != 0 || b != 0)
	}
	panic(fmt.Sprintf("boundary: bad expression op %d", e.Op))
}

func truncInt(v int64, narrow bool) int64 {
	if narrow {
		return int64(int32(v))
	}
	return v
}

func b2i(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

// evalFloat runs a rule over a floating coordinate, the form used when
// coordinates come out of a geometric mapping stage rather than a
// window offset. Division stays floating, remainder is math.Mod, and
// both cast ops truncate toward zero the way a C conversion does.
func evalFloat(r Rule, ix float64, xsize int64) float64 {
	return evalStmtsFloat(r, ix, xsize)
}

func evalStmtsFloat(stmts []Stmt, ix float64, xsize int64) float64 {
	for _, s := range stmts {
		switch s.Kind {
		case StmtSet:
			ix = evalExprFloat(s.X, ix, xsize)
		case StmtIf:
			if evalExprFloat(s.Cond, ix, xsize) != 0 {
				ix = evalStmtsFloat(s.Body, ix, xsize)
			} else {
				ix = evalStmtsFloat(s.Else, ix, xsize)
			}
		case StmtWhile:
			for evalExprFloat(s.Cond, ix, xsize) != 0 {
				ix = evalStmtsFloat(s.Body, ix, xsize)
			}
		default:
			panic(fmt.Sprintf("boundary: bad statement kind %d", s.Kind))
		}
	}
	return ix
}

func evalExprFloat(e *Expr, ix float64, xsize int64) float64 {
	switch e.Op {
	case OpCoord:
		return ix
	case OpSize:
		return float64(xsize)
	case OpConst:
		return float64(e.K)
	case OpNeg:
		return -evalExprFloat(e.A, ix, xsize)
	case OpCastIndex, OpCastCompare:
		return math.Trunc(evalExprFloat(e.A, ix, xsize))
	}

	a := evalExprFloat(e.A, ix, xsize)
	b := evalExprFloat(e.B, ix, xsize)
	switch e.Op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpMod:
		return math.Mod(a, b)
	case OpMin:
		return math.Min(a, b)
	case OpMax:
		return math.Max(a, b)
	case OpLT:
		return b2f(a < b)
	case OpGT:
		return b2f(a > b)
	case OpGE:
		return b2f(a >= b)
	case OpEQ:
		return b2f(a == b)
	case OpOr:
		return b2f(a != 0 || b != 0)
	}
	panic(fmt.Sprintf("boundary: bad expression op %d", e.Op))
}

func b2f(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

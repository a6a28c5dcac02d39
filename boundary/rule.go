package boundary

import "fmt"

// Each mode's arithmetic is written down exactly once, as a small
// straight-line program over one coordinate variable and one axis size.
// The host resolvers in this package and the kernel source renderer in
// package builder both walk the same program, so host verification and
// device execution cannot drift apart.

// Op enumerates the primitive operations a rule expression may use.
type Op int

const (
	// Leaves.
	OpCoord Op = iota + 1 // the coordinate variable
	OpSize                // the axis size
	OpConst               // integer literal

	// Arithmetic. Division and remainder truncate toward zero, as C
	// integer division does.
	OpNeg
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpMin
	OpMax

	// Conversions. CastIndex narrows to the configured index type;
	// CastCompare narrows to the signed type used for clamping
	// comparisons. The two render differently but evaluate alike.
	OpCastIndex
	OpCastCompare

	// Conditions.
	OpLT
	OpGT
	OpGE
	OpEQ
	OpOr
)

// Expr is a node of a rule expression tree. K carries the literal value
// when Op is OpConst; B is nil for unary nodes.
type Expr struct {
	Op   Op
	A, B *Expr
	K    int64
}

// StmtKind discriminates the three statement forms a rule may contain.
type StmtKind int

const (
	StmtSet StmtKind = iota + 1
	StmtIf
	StmtWhile
)

// Stmt is one step of a rule. The only mutable state is the coordinate
// variable, assigned by StmtSet.
type Stmt struct {
	Kind StmtKind
	Cond *Expr
	Body []Stmt
	Else []Stmt
	X    *Expr
}

// Rule is the complete resolution program for one mode.
type Rule []Stmt

// RuleFor returns the resolution rule for mode. Mode tags are validated
// at the parameter-normalization boundary, so an unknown tag here is a
// programming error and panics.
func RuleFor(mode Mode) Rule {
	switch mode {
	case Reflect, GridMirror:
		return reflectRule
	case Mirror:
		return mirrorRule
	case Nearest:
		return nearestRule
	case Wrap:
		return wrapRule
	case GridWrap:
		return gridWrapRule
	case Constant, GridConstant:
		return constantRule
	}
	panic(fmt.Sprintf("boundary: no rule for mode %q", mode))
}

func coord() *Expr      { return &Expr{Op: OpCoord} }
func size() *Expr       { return &Expr{Op: OpSize} }
func lit(k int64) *Expr { return &Expr{Op: OpConst, K: k} }

func un(op Op, a *Expr) *Expr {
	return &Expr{Op: op, A: a}
}

func bin(op Op, a, b *Expr) *Expr {
	return &Expr{Op: op, A: a, B: b}
}

func set(x *Expr) Stmt {
	return Stmt{Kind: StmtSet, X: x}
}

func ifThen(cond *Expr, body ...Stmt) Stmt {
	return Stmt{Kind: StmtIf, Cond: cond, Body: body}
}

func ifElse(cond *Expr, body, els []Stmt) Stmt {
	return Stmt{Kind: StmtIf, Cond: cond, Body: body, Else: els}
}

func while(cond *Expr, body ...Stmt) Stmt {
	return Stmt{Kind: StmtWhile, Cond: cond, Body: body}
}

// reflect / grid-mirror:
//
//	if (ix < 0) ix = -1 - ix;
//	ix %= xsize * 2;
//	ix = min(ix, 2 * xsize - 1 - ix);
//
// After the fold-and-modulo the coordinate sits in [0, 2*xsize); the
// final min maps the upper half back down. Works for xsize == 1, where
// every coordinate lands on 0.
var reflectRule = Rule{
	ifThen(bin(OpLT, coord(), lit(0)),
		set(bin(OpSub, lit(-1), coord()))),
	set(bin(OpMod, coord(), bin(OpMul, size(), lit(2)))),
	set(bin(OpMin, coord(),
		bin(OpSub, bin(OpSub, bin(OpMul, lit(2), size()), lit(1)), coord()))),
}

// mirror reflects with period 2*(xsize-1), which degenerates for a
// single-sample axis; that case pins the coordinate to 0 before any
// division by zero can happen.
var mirrorRule = Rule{
	ifElse(bin(OpEQ, size(), lit(1)),
		[]Stmt{set(lit(0))},
		[]Stmt{
			ifThen(bin(OpLT, coord(), lit(0)),
				set(un(OpNeg, coord()))),
			set(bin(OpAdd, lit(1),
				bin(OpMod, bin(OpSub, coord(), lit(1)),
					bin(OpMul, bin(OpSub, size(), lit(1)), lit(2))))),
			set(bin(OpMin, coord(),
				bin(OpSub, bin(OpSub, bin(OpMul, lit(2), size()), lit(2)), coord()))),
		}),
}

// nearest clamps through the signed comparison type. The casts matter on
// device: unsigned coordinate representations would make the lower clamp
// vacuous.
var nearestRule = Rule{
	set(bin(OpMin,
		bin(OpMax, un(OpCastCompare, coord()), un(OpCastCompare, lit(0))),
		un(OpCastCompare, bin(OpSub, size(), lit(1))))),
}

// wrap is periodic over xsize-1 (first and last samples identified). The
// quotient trick lands any distance inside the axis in constant time.
// A single-sample axis has period zero, so it is pinned to 0 up front.
var wrapRule = Rule{
	ifElse(bin(OpEQ, size(), lit(1)),
		[]Stmt{set(lit(0))},
		[]Stmt{
			ifElse(bin(OpLT, coord(), lit(0)),
				[]Stmt{set(bin(OpAdd, coord(),
					bin(OpMul, bin(OpSub, size(), lit(1)),
						bin(OpAdd,
							un(OpCastIndex, bin(OpDiv, un(OpNeg, coord()), bin(OpSub, size(), lit(1)))),
							lit(1)))))},
				[]Stmt{ifThen(bin(OpGT, coord(), bin(OpSub, size(), lit(1))),
					set(bin(OpSub, coord(),
						bin(OpMul, bin(OpSub, size(), lit(1)),
							un(OpCastIndex, bin(OpDiv, coord(), bin(OpSub, size(), lit(1))))))))}),
		}),
}

// grid-wrap is plain modular arithmetic. Truncated % leaves negatives
// negative; window coordinates stay within one period of the axis, so a
// single correction pass suffices and the loop body runs at most once
// for window-sized excursions.
var gridWrapRule = Rule{
	set(bin(OpMod, coord(), size())),
	while(bin(OpLT, coord(), lit(0)),
		set(bin(OpAdd, coord(), size()))),
}

// constant / grid-constant collapse every outside coordinate to the
// out-of-bounds sentinel.
var constantRule = Rule{
	ifThen(bin(OpOr,
		bin(OpLT, coord(), lit(0)),
		bin(OpGE, coord(), size())),
		set(lit(-1))),
}

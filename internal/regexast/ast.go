// Package regexast defines the regex abstract syntax tree (spec §3 "Regex
// AST") and a recursive-descent parser that compiles a tagged regex string
// into it.
//
// Grounded on original_source/frontend/lexer/lexer-simple-py/app/regex.py:
// NodeConcat/NodeOr/NodeRange/NodeStar/NodeEps become a closed, tagged Go
// interface (Design Notes §9's "tagged variant with exhaustive match").
package regexast

import "burslex/internal/alphabet"

// Node is any regex AST node. The type switch in internal/nfa's Thompson
// construction is the exhaustive consumer of this set; adding a variant
// means updating that switch too.
type Node interface {
	node()
	// Clone returns a deep, independent copy, needed because `+` desugars
	// to M M* and the M* arm must not alias the first M (regex.py's
	// NodeStar(res.clone()) for the same reason).
	Clone() Node
}

// Concat matches Left immediately followed by Right.
type Concat struct {
	Left, Right Node
}

func (*Concat) node() {}
func (c *Concat) Clone() Node {
	return &Concat{Left: c.Left.Clone(), Right: c.Right.Clone()}
}

// Or matches Left or Right.
type Or struct {
	Left, Right Node
}

func (*Or) node() {}
func (o *Or) Clone() Node {
	return &Or{Left: o.Left.Clone(), Right: o.Right.Clone()}
}

// Range matches any single symbol in Chars. A plain literal character is
// represented as a one-element Range, the same way regex.py's r_prim
// builds `NodeRange([c], alpha)` for an ordinary character.
type Range struct {
	Chars []rune
}

func (*Range) node() {}
func (r *Range) Clone() Node {
	chars := make([]rune, len(r.Chars))
	copy(chars, r.Chars)
	return &Range{Chars: chars}
}

// Star matches Child zero or more times.
type Star struct {
	Child Node
}

func (*Star) node() {}
func (s *Star) Clone() Node {
	return &Star{Child: s.Child.Clone()}
}

// Eps matches the empty string.
type Eps struct{}

func (*Eps) node() {}
func (*Eps) Clone() Node { return &Eps{} }

// Dot returns a Range over the full alphabet, the desugaring of `.`.
func Dot(a *alphabet.Alphabet) *Range {
	chars := append([]rune(nil), a.Symbols()...)
	return &Range{Chars: chars}
}

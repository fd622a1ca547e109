// Package alphabet implements the fixed, finite input alphabet both cores
// run over (spec §3 "Alphabet"): lowercase and uppercase letters, digits,
// whitespace, a fixed punctuation set, and a sentinel EOF symbol distinct
// from every text byte.
//
// Grounded on original_source/frontend/lexer/lexer-simple-py/app/alphabet.py.
package alphabet

import "fmt"

// EOF is the sentinel symbol the input stream yields once exhausted. It is
// never equal to any printable text rune.
const EOF rune = -1

// punctuation is the fixed punctuation set carried over from the Python
// source's SYMS list.
const punctuation = "_-+*/%=(){}[].,;:\\@#!?~><"

// Alphabet is a finite ordered sequence of symbols with stable indices.
// Indices never change after construction, so DFA transition tables keyed
// by alphabet index remain valid for the lifetime of the program (spec §3
// invariant).
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// New builds the standard alphabet: a-z, A-Z, 0-9, whitespace, punctuation,
// then EOF, in that order.
func New() *Alphabet {
	var syms []rune
	for c := 'a'; c <= 'z'; c++ {
		syms = append(syms, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		syms = append(syms, c)
	}
	for c := '0'; c <= '9'; c++ {
		syms = append(syms, c)
	}
	syms = append(syms, ' ', '\n', '\r', '\t')
	syms = append(syms, []rune(punctuation)...)
	syms = append(syms, EOF)
	return fromSymbols(syms)
}

func fromSymbols(syms []rune) *Alphabet {
	a := &Alphabet{symbols: syms, index: make(map[rune]int, len(syms))}
	for i, c := range syms {
		a.index[c] = i
	}
	return a
}

// Symbols returns every symbol in index order. The returned slice must not
// be mutated by callers.
func (a *Alphabet) Symbols() []rune {
	return a.symbols
}

// Len is the alphabet size.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// IndexOf returns the stable index of c, or (-1, false) if c is not part of
// the alphabet.
func (a *Alphabet) IndexOf(c rune) (int, bool) {
	i, ok := a.index[c]
	if !ok {
		return -1, false
	}
	return i, true
}

// Contains reports whether c is a member of the alphabet.
func (a *Alphabet) Contains(c rune) bool {
	_, ok := a.index[c]
	return ok
}

// Range returns every alphabet symbol between c1 and c2 inclusive, in
// alphabet order. Both endpoints must already be members; c1 must not come
// after c2 in index order.
func (a *Alphabet) Range(c1, c2 rune) ([]rune, error) {
	i1, ok1 := a.index[c1]
	i2, ok2 := a.index[c2]
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("alphabet: range endpoint not in alphabet: %q-%q", c1, c2)
	}
	if i1 > i2 {
		return nil, fmt.Errorf("alphabet: bad range %q-%q", c1, c2)
	}
	out := make([]rune, i2-i1+1)
	copy(out, a.symbols[i1:i2+1])
	return out, nil
}

// Complement returns every alphabet symbol not present in chars.
func (a *Alphabet) Complement(chars []rune) []rune {
	excl := make(map[rune]bool, len(chars))
	for _, c := range chars {
		excl[c] = true
	}
	var out []rune
	for _, c := range a.symbols {
		if !excl[c] {
			out = append(out, c)
		}
	}
	return out
}

// namedClasses are the named character classes the regex `:name:` syntax
// resolves (spec §4.1). "space" and "eof" are named in spec §3; the rest
// supplement the distillation the way SPEC_FULL.md's "Supplemented
// features" section records.
var namedClasses = map[string][]rune{
	"space": {' ', '\n', '\r', '\t'},
	"eof":   {EOF},
}

func init() {
	var lower, upper, digit []rune
	for c := 'a'; c <= 'z'; c++ {
		lower = append(lower, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		upper = append(upper, c)
	}
	for c := '0'; c <= '9'; c++ {
		digit = append(digit, c)
	}
	namedClasses["lower"] = lower
	namedClasses["upper"] = upper
	namedClasses["digit"] = digit
	namedClasses["alpha"] = append(append([]rune{}, lower...), upper...)
	namedClasses["alnum"] = append(append(append([]rune{}, lower...), upper...), digit...)
	namedClasses["punct"] = []rune(punctuation)
}

// Class resolves a named character class, e.g. "space" or "eof".
func (a *Alphabet) Class(name string) ([]rune, error) {
	chars, ok := namedClasses[name]
	if !ok {
		return nil, fmt.Errorf("alphabet: unknown character class %q", name)
	}
	out := make([]rune, len(chars))
	copy(out, chars)
	return out, nil
}

// charRepr renders a single symbol the way a DOT label or diagnostic dump
// wants it: control characters get a short mnemonic instead of being
// embedded literally.
func charRepr(c rune) string {
	switch c {
	case ' ':
		return ":s"
	case '\n':
		return ":n"
	case '\r':
		return ":r"
	case '\t':
		return ":t"
	case EOF:
		return "EOF"
	default:
		return string(c)
	}
}

// RangeRepr renders a set of symbols compactly, collapsing full a-z, A-Z,
// and 0-9 runs into "a-z" style spans before falling back to one token per
// remaining symbol. Used by internal/graph's DOT writer; a direct port of
// alphabet.py's range_repr/simplify_range.
func (a *Alphabet) RangeRepr(chars []rune) string {
	idx := make([]int, 0, len(chars))
	for _, c := range chars {
		if i, ok := a.index[c]; ok {
			idx = append(idx, i)
		}
	}
	sortInts(idx)
	if len(idx) == len(a.symbols) {
		return "."
	}

	var b []byte
	idx = a.simplifyRange(&b, idx, 'a', 'z')
	idx = a.simplifyRange(&b, idx, 'A', 'Z')
	idx = a.simplifyRange(&b, idx, '0', '9')
	for _, i := range idx {
		b = append(b, charRepr(a.symbols[i])...)
	}
	return string(b)
}

// simplifyRange removes a contiguous cbeg..cend run from idx (if idx holds
// it in full and in order) and appends "cbeg-cend" to b.
func (a *Alphabet) simplifyRange(b *[]byte, idx []int, cbeg, cend rune) []int {
	rbeg, okb := a.index[cbeg]
	rend, oke := a.index[cend]
	if !okb || !oke {
		return idx
	}
	pos := indexOfInt(idx, rbeg)
	if pos < 0 {
		return idx
	}
	count := rend - rbeg + 1
	if pos+count > len(idx) {
		return idx
	}
	for i := 0; i < count; i++ {
		if idx[pos+i] != rbeg+i {
			return idx
		}
	}
	*b = append(*b, []byte(fmt.Sprintf("%c-%c", cbeg, cend))...)
	out := make([]int, 0, len(idx)-count)
	out = append(out, idx[:pos]...)
	out = append(out, idx[pos+count:]...)
	return out
}

func indexOfInt(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

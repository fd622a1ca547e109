package lexdriver

import (
	"burslex/internal/alphabet"
	"burslex/internal/dfa"
	"burslex/internal/errs"
	"burslex/internal/graph"
)

// Token is one recognized lexeme: Text is the consumed symbols, Tag is the
// winning rule's tag.
type Token struct {
	Text string
	Tag  string
}

// matcher tracks the DFA's current state and the history of (state, char)
// pairs needed to roll back to the last accepting state, mirroring
// dfamatcher.py's DFAMatcher.
type matcher struct {
	d     *dfa.DFA
	state *graph.Node
	hist  []histEntry
}

type histEntry struct {
	state *graph.Node
	char  rune
}

func newMatcher(d *dfa.DFA) *matcher {
	return &matcher{d: d, state: d.Start}
}

func (m *matcher) reset() {
	m.state = m.d.Start
	m.hist = nil
}

func (m *matcher) isEmpty() bool { return len(m.hist) == 0 }
func (m *matcher) isFinal() bool { return m.state.Accept >= 0 }
func (m *matcher) isErr() bool   { return m.state == m.d.Err }
func (m *matcher) tag() string   { return m.d.Tag[m.state.Id] }

func (m *matcher) consume(c rune) {
	m.hist = append(m.hist, histEntry{state: m.state, char: c})
	var next *graph.Node
	for _, e := range m.state.E {
		if e.Sym == c {
			next = e.Dst
			break
		}
	}
	if next == nil {
		next = m.d.Err
	}
	m.state = next
}

// back pops the last consumed char and restores the state before it was
// consumed, returning the char.
func (m *matcher) back() rune {
	n := len(m.hist)
	last := m.hist[n-1]
	m.hist = m.hist[:n-1]
	m.state = last.state
	return last.char
}

func (m *matcher) text() string {
	chars := make([]rune, len(m.hist))
	for i, h := range m.hist {
		chars[i] = h.char
	}
	return string(chars)
}

// Driver runs the maximal-munch scan over a Stream against a minimized
// DFA.
type Driver struct {
	stream *Stream
	m      *matcher
}

// New builds a driver over src against d.
func New(d *dfa.DFA, stream *Stream) *Driver {
	return &Driver{stream: stream, m: newMatcher(d)}
}

// Next scans one token. It returns an *errs.LexError (which unwraps to
// errs.ErrLex) when no rule matches any prefix at the current position;
// spec §8 boundary:
// a zero-length accept (the start state itself final, with the very next
// character forcing an immediate error transition) still reports ERR,
// because rolling back to empty history is checked before rolling back to
// a final state — the same order lexer.py's get_tok checks is_empty()
// before relying on is_final(), so this module makes no special case for
// it; it falls out of the faithfully translated control flow.
func (d *Driver) Next() (Token, error) {
	d.m.reset()

	for {
		d.m.consume(d.stream.Getc())
		if d.m.isErr() {
			break
		}
	}

	for !d.m.isFinal() && !d.m.isEmpty() {
		d.stream.Ungetc(d.m.back())
	}

	if d.m.isEmpty() {
		return Token{}, &errs.LexError{}
	}

	return Token{Text: d.m.text(), Tag: d.m.tag()}, nil
}

// AtEOF reports whether the stream has no more input and no pushback
// remains, letting callers stop calling Next after the final token.
func (d *Driver) AtEOF() bool {
	c := d.stream.Getc()
	d.stream.Ungetc(c)
	return c == alphabet.EOF
}

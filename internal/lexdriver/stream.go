// Package lexdriver implements the maximal-munch lexer driver (spec
// §4.5): a buffered rune stream with unbounded pushback, and a
// DFA-matching scanner that rolls back to the last accepting state on a
// failed extension.
//
// Grounded on
// original_source/frontend/lexer/lexer-simple-py/app/stream.py (Stream)
// and dfamatcher.py/lexer.py (DFAMatcher, Lexer.get_tok), with the
// buffered-rune-stream shape carried over from the teacher's
// nex/lexer_template.go scanner (frame/matchPos bookkeeping), ported to
// plain synchronous Go — no goroutines or channels, matching spec §5's
// single-threaded execution model.
package lexdriver

import "burslex/internal/alphabet"

// Stream yields alphabet symbols from src, one rune at a time, returning
// alphabet.EOF once exhausted. Ungetc pushes c back so the next Getc call
// returns it again; it may be called any number of times, mirroring
// stream.py's unbounded self.extra pushback list.
type Stream struct {
	runes []rune
	pos   int
	extra []rune
}

// NewStream wraps src for rune-at-a-time reading.
func NewStream(src string) *Stream {
	return &Stream{runes: []rune(src)}
}

// Getc returns the next symbol, or alphabet.EOF once the stream and any
// pushback are exhausted.
func (s *Stream) Getc() rune {
	if n := len(s.extra); n > 0 {
		c := s.extra[n-1]
		s.extra = s.extra[:n-1]
		return c
	}
	if s.pos == len(s.runes) {
		return alphabet.EOF
	}
	c := s.runes[s.pos]
	s.pos++
	return c
}

// Ungetc pushes c back onto the stream.
func (s *Stream) Ungetc(c rune) {
	s.extra = append(s.extra, c)
}

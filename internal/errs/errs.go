// Package errs defines the position-tagged error types shared by every
// parser and matcher in this module (spec §7 "Error handling design").
// Sentinel causes identify the error class; each error type returns its
// sentinel from Unwrap, and syntax/structure errors carry a position.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel causes. Every parse/match error wraps exactly one of these so
// callers can classify a failure with errors.Is regardless of the message
// text attached at the call site.
var (
	// ErrSyntax marks a malformed regex, grammar, or operator-tree source
	// text: unbalanced brackets, unknown escapes, unexpected tokens.
	ErrSyntax = fmt.Errorf("syntax error")
	// ErrStructure marks a well-formed but semantically invalid document:
	// an operator-tree node missing a predecessor, a rule referencing an
	// undefined non-terminal, a DFA failing its total-transition check.
	ErrStructure = fmt.Errorf("structure error")
	// ErrMatch marks a BURS cover failure: no rule instantiates the
	// requested goal non-terminal at a given tree node.
	ErrMatch = fmt.Errorf("match error")
	// ErrLex marks a lexer-driver failure: the input could not be
	// tokenized starting at the current position (spec §4.5 maximal
	// munch, no accepting prefix found).
	ErrLex = fmt.Errorf("lex error")
)

// Pos is a 1-based line:column source position, attached to syntax and
// structure errors so a caller can point a user at the offending text.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// SyntaxError reports malformed source text at a position.
type SyntaxError struct {
	Pos     Pos
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Pos, e.Message)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// StructureError reports a well-formed document that violates a data-model
// invariant (spec §3), optionally positioned.
type StructureError struct {
	Pos     Pos
	Subject string
	Message string
}

func (e *StructureError) Error() string {
	if e.Pos == (Pos{}) {
		return fmt.Sprintf("%s: structure error: %s", e.Subject, e.Message)
	}
	return fmt.Sprintf("%s: %s: structure error: %s", e.Pos, e.Subject, e.Message)
}

func (e *StructureError) Unwrap() error { return ErrStructure }

// MatchError reports a BURS cover failure at a specific operator-tree node.
type MatchError struct {
	NodeID int
	Goal   string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("node %d: no rule covers goal %q", e.NodeID, e.Goal)
}

func (e *MatchError) Unwrap() error { return ErrMatch }

// WrapMessage formats cause under message ("message: cause") via
// github.com/pkg/errors.Wrap, for surfacing a third-party parser's raw
// error (participle, bufio) inside one of this package's position-tagged
// types. Only the text is returned; the stack trace Wrap records is not
// kept.
func WrapMessage(cause error, message string) string {
	return errors.Wrap(cause, message).Error()
}

// LexError reports a maximal-munch failure at a stream position.
type LexError struct {
	Pos Pos
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: no token matches input", e.Pos)
}

func (e *LexError) Unwrap() error { return ErrLex }

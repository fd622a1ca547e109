// Package diagnostics provides an injectable document sink for the optional
// textual/diagrammatic reports the cores can emit (state printouts,
// transition tables, constructed automata). Disabling the sink never
// changes core behavior — see spec §6 "Diagnostic dumps".
package diagnostics

// Sink receives diagnostic output. The commands in cmd/ choose a Sink and
// write to it; the BURS and lexer core packages take no Sink. OrNop maps a
// nil Sink to NopSink{}.
type Sink interface {
	// Note logs a single free-form line, e.g. "new state #4 for Add(0,1)".
	Note(format string, args ...any)
	// Table logs a dense table (transition tables, state dumps).
	Table(name string, headers []string, rows [][]string)
	// Graph logs a DOT-format graph payload under the given kind ("nfa",
	// "dfa", "burs-state") and id.
	Graph(kind, id string, dot []byte)
}

// NopSink discards everything. It is the default sink of the commands in
// cmd/ so that diagnostics are strictly optional.
type NopSink struct{}

func (NopSink) Note(string, ...any)                {}
func (NopSink) Table(string, []string, [][]string) {}
func (NopSink) Graph(string, string, []byte)       {}

// OrNop returns NopSink{} in place of a nil Sink, so callers can always
// invoke methods on the result of this helper without a nil check.
func OrNop(s Sink) Sink {
	if s == nil {
		return NopSink{}
	}
	return s
}

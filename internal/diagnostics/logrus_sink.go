package diagnostics

import (
	"strings"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
)

// LogrusSink renders diagnostics through a *logrus.Logger at debug level.
// Grounded on the teacher's go.mod (logrus, indirect there) and on Design
// Notes §9's "inject an abstract document sink... no-op sink for
// default/tests" — this is the non-nop implementation.
type LogrusSink struct {
	Log *logrus.Logger
}

// NewLogrusSink builds a sink writing to a fresh debug-level logger when log
// is nil.
func NewLogrusSink(log *logrus.Logger) LogrusSink {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.DebugLevel)
	}
	return LogrusSink{Log: log}
}

func (s LogrusSink) Note(format string, args ...any) {
	s.Log.Debugf(format, args...)
}

func (s LogrusSink) Table(name string, headers []string, rows [][]string) {
	var b strings.Builder
	b.WriteString(strings.Join(headers, " | "))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, " | "))
	}
	s.Log.WithField("table", name).Debug(b.String())
}

func (s LogrusSink) Graph(kind, id string, dot []byte) {
	s.Log.WithFields(logrus.Fields{"kind": kind, "id": id}).Debug(string(dot))
}

// Dump pretty-prints v (a parsed grammar, operator tree, or BURS state) the
// way participle's own tooling dumps ASTs during development.
func Dump(v any) string {
	return repr.String(v, repr.Indent("  "), repr.OmitEmpty(true))
}

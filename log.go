package bcma

// Logger is the minimal logging surface bcma calls into (grounded on
// pdfcpu's pkg/log.Logger — the only logging convention in the retrieval
// pack applied to a parsing/codec library's own domain code, rather than
// an HTTP or CLI layer). Callers wire up *log.Logger, a structured
// logger's shim, or leave it nil for silence.
type Logger interface {
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

type namedLogger struct {
	log Logger
}

// Trace is the package's logger for recoverable decode warnings. No
// decode path writes to it at present: Txt1 text that fails to decode
// (spec §7 DecodeText) is replaced by a sentinel string without a log line.
var Trace = &namedLogger{}

// SetTraceLogger installs the logger used for recoverable decode
// warnings. Passing nil disables logging entirely.
func SetTraceLogger(l Logger) {
	Trace.log = l
}

func (l *namedLogger) Printf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Printf(format, args...)
}

func (l *namedLogger) Println(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Println(args...)
}

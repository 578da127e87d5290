package format

import "fmt"

// DiagKind classifies one recoverable per-line format problem.
type DiagKind int

const (
	UnknownDirective DiagKind = iota
	MalformedAddress
	MalformedValue
	MissingField
)

func (k DiagKind) String() string {
	switch k {
	case UnknownDirective:
		return "unknown directive"
	case MalformedAddress:
		return "malformed address"
	case MalformedValue:
		return "malformed value"
	case MissingField:
		return "missing field"
	default:
		return fmt.Sprintf("<err: %d is not a diagnostic kind>", k)
	}
}

// Diagnostic reports one line the parser or decoder had to skip.
// Diagnostics accumulate alongside partial results; they never abort
// a parse or decode.
type Diagnostic struct {
	Kind DiagKind
	Line int    // 1-based line number in the input
	Text string // the offending line, trimmed
	Msg  string // what was wrong with it
}

func (d Diagnostic) String() string {
	if d.Msg == "" {
		return fmt.Sprintf("line %d: %s: %s", d.Line, d.Kind, d.Text)
	}
	return fmt.Sprintf("line %d: %s: %s: %s", d.Line, d.Kind, d.Msg, d.Text)
}

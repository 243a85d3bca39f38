package assets

import (
	"fmt"
)

// DiagnosticReason indicates why a compilation didn't update
// its output.
type DiagnosticReason int

const (
	// DiagnosticReadFailed means the source couldn't be read.
	DiagnosticReadFailed DiagnosticReason = iota + 1
	// DiagnosticEmptyOutput means the compiler returned no CSS.
	DiagnosticEmptyOutput
	// DiagnosticWriteFailed means the output couldn't be written.
	DiagnosticWriteFailed
)

func (r DiagnosticReason) String() string {
	switch r {
	case DiagnosticReadFailed:
		return "read failed"
	case DiagnosticEmptyOutput:
		return "empty output"
	case DiagnosticWriteFailed:
		return "write failed"
	}
	return fmt.Sprintf("DiagnosticReason(%d)", int(r))
}

// Diagnostic describes a compilation which failed without making
// Convert return an error. The previous output, if any, is left
// untouched.
type Diagnostic struct {
	Asset  string
	Result string
	Reason DiagnosticReason
	// Err is the underlying error, nil for DiagnosticEmptyOutput.
	Err error
}

func (d *Diagnostic) String() string {
	s := fmt.Sprintf("%s into %s: %s", d.Asset, d.Result, d.Reason)
	if d.Err != nil {
		s += ": " + d.Err.Error()
	}
	return s
}

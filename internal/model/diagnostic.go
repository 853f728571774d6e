package model

// DiagnosticSeverity mirrors the editor marker levels.
type DiagnosticSeverity int

// Diagnostic levels.
const (
	DiagnosticError DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticInformation
	DiagnosticHint
)

func (d DiagnosticSeverity) String() string {
	switch d {
	case DiagnosticError:
		return "error"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticInformation:
		return "information"
	case DiagnosticHint:
		return "hint"
	}

	return "unknown"
}

// Position is a 0-based line/character offset.
type Position struct {
	Line      int `json:"line" yaml:"line"`
	Character int `json:"character" yaml:"character"`
}

// Range spans two positions. Diagnostics produced by the scanners use
// zero-width ranges (Start == End).
type Range struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// Diagnostic is one (range, message, severity) triple handed to a publisher.
type Diagnostic struct {
	Range    Range              `json:"range" yaml:"range"`
	Message  string             `json:"message" yaml:"message"`
	Severity DiagnosticSeverity `json:"severity" yaml:"severity"`
	Source   string             `json:"source" yaml:"source"`
	Code     string             `json:"code,omitempty" yaml:"code,omitempty"`
}

// DiagnosticSeverityFor maps a finding severity to a marker level.
func DiagnosticSeverityFor(s Severity) DiagnosticSeverity {
	switch s {
	case SeverityCritical, SeverityHigh:
		return DiagnosticError
	case SeverityMedium:
		return DiagnosticWarning
	case SeverityLow:
		return DiagnosticInformation
	}

	return DiagnosticInformation
}

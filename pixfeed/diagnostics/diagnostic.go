// Package diagnostics collects the findings produced while transforming a
// registration message. Findings are data: they are never returned as Go errors.
package diagnostics

import "fmt"

type Severity uint8

const (
	Info Severity = iota
	Warning
	Error
)

var severityNames = map[Severity]string{
	Info:    "information",
	Warning: "warning",
	Error:   "error",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Kind classifies the rule that produced a diagnostic.
type Kind uint8

const (
	MandatoryElementMissing Kind = iota
	RequiredElementMissing
	InsufficientRepetitions
	VocabularyIssue
	ValidationResult
	NotSupportedChoice
	NotImplementedElement
)

var kindNames = map[Kind]string{
	MandatoryElementMissing: "MandatoryElementMissing",
	RequiredElementMissing:  "RequiredElementMissing",
	InsufficientRepetitions: "InsufficientRepetitions",
	VocabularyIssue:         "VocabularyIssue",
	ValidationResult:        "ValidationResult",
	NotSupportedChoice:      "NotSupportedChoice",
	NotImplementedElement:   "NotImplementedElement",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Diagnostic is one finding. Detail carries the offending value (a code, an
// element name) and is never display text.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Kind     Kind     `json:"kind"`
	Code     Code     `json:"code"`
	Location string   `json:"location,omitempty"`
	Detail   string   `json:"detail,omitempty"`
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s %s %s", d.Severity, d.Kind, d.Code)
	if d.Location != "" {
		s += " at " + d.Location
	}
	if d.Detail != "" {
		s += " (" + d.Detail + ")"
	}
	return s
}

package responseutils

import (
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"

	fhircodes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/codes_go_proto"
)

// See: http://hl7.org/fhir/issue-severity
func issueSeverity(s diagnostics.Severity) fhircodes.IssueSeverityCode_Value {
	switch s {
	case diagnostics.Error:
		return fhircodes.IssueSeverityCode_ERROR
	case diagnostics.Warning:
		return fhircodes.IssueSeverityCode_WARNING
	default:
		return fhircodes.IssueSeverityCode_INFORMATION
	}
}

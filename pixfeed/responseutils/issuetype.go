package responseutils

import (
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"

	fhircodes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/codes_go_proto"
)

// See: http://hl7.org/fhir/issue-type
var issueTypes = map[diagnostics.Kind]fhircodes.IssueTypeCode_Value{
	diagnostics.MandatoryElementMissing: fhircodes.IssueTypeCode_REQUIRED,
	diagnostics.RequiredElementMissing:  fhircodes.IssueTypeCode_INCOMPLETE,
	diagnostics.InsufficientRepetitions: fhircodes.IssueTypeCode_STRUCTURE,
	diagnostics.VocabularyIssue:         fhircodes.IssueTypeCode_CODE_INVALID,
	diagnostics.ValidationResult:        fhircodes.IssueTypeCode_BUSINESS_RULE,
	diagnostics.NotSupportedChoice:      fhircodes.IssueTypeCode_NOT_SUPPORTED,
	diagnostics.NotImplementedElement:   fhircodes.IssueTypeCode_NOT_SUPPORTED,
}

func issueType(k diagnostics.Kind) fhircodes.IssueTypeCode_Value {
	if t, ok := issueTypes[k]; ok {
		return t
	}
	return fhircodes.IssueTypeCode_PROCESSING
}

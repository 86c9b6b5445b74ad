package responseutils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/fhir/go/fhirversion"
	"github.com/google/fhir/go/jsonformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"

	fhircodes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/codes_go_proto"
	fhirdatatypes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/datatypes_go_proto"
	fhirmodelCR "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/bundle_and_contained_resource_go_proto"
	fhirmodelPT "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/patient_go_proto"
)

type ResponseUtilsWriterTestSuite struct {
	suite.Suite
	buf          *bytes.Buffer
	unmarshaller *jsonformat.Unmarshaller
}

func (s *ResponseUtilsWriterTestSuite) SetupTest() {
	var err error
	s.buf = &bytes.Buffer{}
	s.unmarshaller, err = jsonformat.NewUnmarshaller("UTC", fhirversion.R4)
	assert.NoError(s.T(), err)
}

func TestResponseUtilsWriterTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseUtilsWriterTestSuite))
}

func (s *ResponseUtilsWriterTestSuite) TestOperationOutcome() {
	diags := []diagnostics.Diagnostic{
		{Severity: diagnostics.Error, Kind: diagnostics.InsufficientRepetitions, Code: diagnostics.SubjectCardinality,
			Location: constants.LocSubject},
		{Severity: diagnostics.Warning, Kind: diagnostics.NotImplementedElement, Code: diagnostics.DeceasedIndNotSupported,
			Detail: "DeceasedInd"},
	}

	rw, err := NewResponseWriter(false)
	s.Require().NoError(err)
	_, err = rw.WriteOperationOutcome(s.buf, OperationOutcome(diags))
	s.Require().NoError(err)
	s.NotContains(strings.TrimSpace(s.buf.String()), "\n")

	res, err := s.unmarshaller.Unmarshal(s.buf.Bytes())
	s.Require().NoError(err)
	oo := res.(*fhirmodelCR.ContainedResource).GetOperationOutcome()
	s.Require().Len(oo.Issue, 2)

	first := oo.Issue[0]
	s.Equal(fhircodes.IssueSeverityCode_ERROR, first.Severity.Value)
	s.Equal(fhircodes.IssueTypeCode_STRUCTURE, first.Code.Value)
	s.Equal("MSGE04F", first.Details.Coding[0].Code.Value)
	s.Equal(DiagnosticSystem, first.Details.Coding[0].System.Value)
	s.Equal(Text(diagnostics.SubjectCardinality), first.Details.Text.Value)
	s.Equal(constants.LocSubject, first.Expression[0].Value)
	s.Nil(first.Diagnostics)

	second := oo.Issue[1]
	s.Equal(fhircodes.IssueSeverityCode_WARNING, second.Severity.Value)
	s.Equal(fhircodes.IssueTypeCode_NOT_SUPPORTED, second.Code.Value)
	s.Equal("DeceasedInd", second.Diagnostics.Value)
	s.Empty(second.Expression)
}

func (s *ResponseUtilsWriterTestSuite) TestEmptyOperationOutcome() {
	oo := OperationOutcome(nil)
	s.Require().Len(oo.Issue, 1)
	s.Equal(fhircodes.IssueSeverityCode_INFORMATION, oo.Issue[0].Severity.Value)
	s.Equal(fhircodes.IssueTypeCode_INFORMATIONAL, oo.Issue[0].Code.Value)
}

func (s *ResponseUtilsWriterTestSuite) TestBundle() {
	patient := &fhirmodelPT.Patient{Id: &fhirdatatypes.Id{Value: "person-1"}}
	bundle := CreateBundle(patient, OperationOutcome(nil))

	rw, err := NewResponseWriter(true)
	s.Require().NoError(err)
	_, err = rw.WriteBundle(s.buf, bundle)
	s.Require().NoError(err)

	res, err := s.unmarshaller.Unmarshal(s.buf.Bytes())
	s.Require().NoError(err)
	out := res.(*fhirmodelCR.ContainedResource).GetBundle()
	s.Equal(fhircodes.BundleTypeCode_COLLECTION, out.Type.Value)
	s.Require().Len(out.Entry, 2)
	s.Equal("person-1", out.Entry[0].Resource.GetPatient().Id.Value)
	s.NotNil(out.Entry[1].Resource.GetOperationOutcome())

	s.Len(CreateBundle(nil, OperationOutcome(nil)).Entry, 1)
}

func (s *ResponseUtilsWriterTestSuite) TestWritePatient() {
	rw, err := NewResponseWriter(false)
	s.Require().NoError(err)
	_, err = rw.WritePatient(s.buf, &fhirmodelPT.Patient{Id: &fhirdatatypes.Id{Value: "p"}})
	s.Require().NoError(err)
	s.Contains(s.buf.String(), `"resourceType":"Patient"`)
}

func TestMappings(t *testing.T) {
	assert.Equal(t, fhircodes.IssueSeverityCode_INFORMATION, issueSeverity(diagnostics.Info))
	assert.Equal(t, fhircodes.IssueTypeCode_REQUIRED, issueType(diagnostics.MandatoryElementMissing))
	assert.Equal(t, fhircodes.IssueTypeCode_INCOMPLETE, issueType(diagnostics.RequiredElementMissing))
	assert.Equal(t, fhircodes.IssueTypeCode_CODE_INVALID, issueType(diagnostics.VocabularyIssue))
	assert.Equal(t, fhircodes.IssueTypeCode_BUSINESS_RULE, issueType(diagnostics.ValidationResult))
	assert.Equal(t, fhircodes.IssueTypeCode_PROCESSING, issueType(diagnostics.Kind(99)))
}

func TestTextCoversEveryCode(t *testing.T) {
	for _, code := range diagnostics.Codes {
		assert.NotContains(t, Text(code), "Unknown diagnostic", string(code))
	}
	assert.Equal(t, "Unknown diagnostic MSGX999", Text("MSGX999"))
}

func (s *ResponseUtilsWriterTestSuite) TestWriterFormats() {
	patient := &fhirmodelPT.Patient{Id: &fhirdatatypes.Id{Value: "p"}}

	pretty, err := NewResponseWriter(true)
	s.Require().NoError(err)
	_, err = pretty.WritePatient(s.buf, patient)
	s.Require().NoError(err)
	s.Contains(s.buf.String(), "\n  \"resourceType\": \"Patient\"")

	s.buf.Reset()
	compact, err := NewResponseWriter(false)
	s.Require().NoError(err)
	_, err = compact.WritePatient(s.buf, patient)
	s.Require().NoError(err)
	s.NotContains(s.buf.String(), "\n")

	res, err := s.unmarshaller.Unmarshal(s.buf.Bytes())
	s.Require().NoError(err)
	s.Equal("p", res.(*fhirmodelCR.ContainedResource).GetPatient().Id.Value)
}

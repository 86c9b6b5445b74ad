// Package responseutils renders transform diagnostics as FHIR R4 resources.
package responseutils

import (
	"io"

	"github.com/google/fhir/go/fhirversion"
	"github.com/google/fhir/go/jsonformat"
	"github.com/pkg/errors"

	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"

	fhircodes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/codes_go_proto"
	fhirdatatypes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/datatypes_go_proto"
	fhirmodelCR "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/bundle_and_contained_resource_go_proto"
	fhirmodelOO "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/operation_outcome_go_proto"
	fhirmodelPT "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/patient_go_proto"
)

// DiagnosticSystem qualifies the diagnostic codes placed in issue details.
const DiagnosticSystem = "urn:pixfeed:diagnostic"

// OperationOutcome converts diagnostics into an OperationOutcome, one issue per
// diagnostic in order. An empty list yields a single informational issue.
func OperationOutcome(diags []diagnostics.Diagnostic) *fhirmodelOO.OperationOutcome {
	if len(diags) == 0 {
		return CreateOpOutcome(fhircodes.IssueSeverityCode_INFORMATION, fhircodes.IssueTypeCode_INFORMATIONAL,
			"OK", "The registration was transformed without findings")
	}

	oo := &fhirmodelOO.OperationOutcome{}
	for _, d := range diags {
		issue := &fhirmodelOO.OperationOutcome_Issue{
			Severity: &fhirmodelOO.OperationOutcome_Issue_SeverityCode{Value: issueSeverity(d.Severity)},
			Code:     &fhirmodelOO.OperationOutcome_Issue_CodeType{Value: issueType(d.Kind)},
			Details:  details(string(d.Code), Text(d.Code)),
		}
		if d.Detail != "" {
			issue.Diagnostics = &fhirdatatypes.String{Value: d.Detail}
		}
		if d.Location != "" {
			issue.Expression = []*fhirdatatypes.String{{Value: d.Location}}
		}
		oo.Issue = append(oo.Issue, issue)
	}
	return oo
}

func CreateOpOutcome(severity fhircodes.IssueSeverityCode_Value, code fhircodes.IssueTypeCode_Value,
	detailsCode, detailsDisplay string) *fhirmodelOO.OperationOutcome {

	return &fhirmodelOO.OperationOutcome{
		Issue: []*fhirmodelOO.OperationOutcome_Issue{
			{
				Severity: &fhirmodelOO.OperationOutcome_Issue_SeverityCode{Value: severity},
				Code:     &fhirmodelOO.OperationOutcome_Issue_CodeType{Value: code},
				Details:  details(detailsCode, detailsDisplay),
			},
		},
	}
}

func details(code, display string) *fhirdatatypes.CodeableConcept {
	return &fhirdatatypes.CodeableConcept{
		Coding: []*fhirdatatypes.Coding{
			{
				Code:    &fhirdatatypes.Code{Value: code},
				System:  &fhirdatatypes.Uri{Value: DiagnosticSystem},
				Display: &fhirdatatypes.String{Value: display},
			},
		},
		Text: &fhirdatatypes.String{Value: display},
	}
}

// CreateBundle wraps the patient (when present) and the outcome in a
// collection bundle.
func CreateBundle(patient *fhirmodelPT.Patient, outcome *fhirmodelOO.OperationOutcome) *fhirmodelCR.Bundle {
	bundle := &fhirmodelCR.Bundle{
		Type: &fhirmodelCR.Bundle_TypeCode{Value: fhircodes.BundleTypeCode_COLLECTION},
	}
	if patient != nil {
		bundle.Entry = append(bundle.Entry, &fhirmodelCR.Bundle_Entry{
			Resource: &fhirmodelCR.ContainedResource{
				OneofResource: &fhirmodelCR.ContainedResource_Patient{Patient: patient},
			},
		})
	}
	if outcome != nil {
		bundle.Entry = append(bundle.Entry, &fhirmodelCR.Bundle_Entry{
			Resource: &fhirmodelCR.ContainedResource{
				OneofResource: &fhirmodelCR.ContainedResource_OperationOutcome{OperationOutcome: outcome},
			},
		})
	}
	return bundle
}

// ResponseWriter serializes FHIR resources as R4 JSON.
type ResponseWriter struct {
	marshaller *jsonformat.Marshaller
}

// NewResponseWriter builds a writer. With pretty unset every resource is
// written on a single line, suitable for NDJSON output.
func NewResponseWriter(pretty bool) (ResponseWriter, error) {
	indent := ""
	if pretty {
		indent = "  "
	}
	marshaller, err := jsonformat.NewMarshaller(pretty, "", indent, fhirversion.R4)
	if err != nil {
		return ResponseWriter{}, errors.Wrap(err, "failed to create marshaller")
	}
	return ResponseWriter{marshaller: marshaller}, nil
}

func (r ResponseWriter) WriteOperationOutcome(w io.Writer, outcome *fhirmodelOO.OperationOutcome) (int, error) {
	return r.write(w, &fhirmodelCR.ContainedResource{
		OneofResource: &fhirmodelCR.ContainedResource_OperationOutcome{OperationOutcome: outcome},
	})
}

func (r ResponseWriter) WritePatient(w io.Writer, patient *fhirmodelPT.Patient) (int, error) {
	return r.write(w, &fhirmodelCR.ContainedResource{
		OneofResource: &fhirmodelCR.ContainedResource_Patient{Patient: patient},
	})
}

func (r ResponseWriter) WriteBundle(w io.Writer, bundle *fhirmodelCR.Bundle) (int, error) {
	return r.write(w, &fhirmodelCR.ContainedResource{
		OneofResource: &fhirmodelCR.ContainedResource_Bundle{Bundle: bundle},
	})
}

func (r ResponseWriter) write(w io.Writer, resource *fhirmodelCR.ContainedResource) (int, error) {
	data, err := r.marshaller.Marshal(resource)
	if err != nil {
		return -1, errors.Wrap(err, "failed to marshal FHIR resource")
	}
	return w.Write(data)
}

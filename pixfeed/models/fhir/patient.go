// Package fhir exports the canonical registration subject as a FHIR R4 Patient.
package fhir

import (
	"strings"
	"time"

	"github.com/CMSgov/pixfeed-app/pixfeed/models"

	r4Codes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/codes_go_proto"
	r4Datatypes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/datatypes_go_proto"
	r4Models "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/patient_go_proto"
)

const (
	oidPrefix        = "urn:oid:"
	languageSystem   = "urn:ietf:bcp:47"
	relationshipType = "http://terminology.hl7.org/CodeSystem/v3-RoleCode"
)

// Patient builds a Patient from the SUBJ person of event. It returns nil when
// the event has no subject.
func Patient(event *models.RegistrationEvent) *r4Models.Patient {
	if event == nil {
		return nil
	}
	person := event.Subject()
	if person == nil {
		return nil
	}

	p := &r4Models.Patient{}
	p.Id = &r4Datatypes.Id{Value: person.ID}
	p.Meta = &r4Datatypes.Meta{
		LastUpdated: &r4Datatypes.Instant{
			Precision: r4Datatypes.Instant_SECOND,
			Timezone:  time.UTC.String(),
			ValueUs:   event.Timestamp.UnixNano() / int64(time.Microsecond),
		},
	}
	p.Active = &r4Datatypes.Boolean{Value: person.Status == models.StatusActive}

	for _, id := range person.AlternateIdentifiers {
		p.Identifier = append(p.Identifier, identifier(id, r4Codes.IdentifierUseCode_OFFICIAL))
	}
	for _, other := range person.OtherIdentifiers {
		p.Identifier = append(p.Identifier, identifier(other.Identifier, r4Codes.IdentifierUseCode_SECONDARY))
	}

	for _, name := range person.Names {
		p.Name = append(p.Name, humanName(name))
	}
	p.Telecom = contactPoints(person.TelecomAddresses)
	for _, addr := range person.Addresses {
		p.Address = append(p.Address, address(addr))
	}

	if person.GenderCode != "" {
		p.Gender = &r4Models.Patient_GenderCode{Value: gender(person.GenderCode)}
	}
	if person.BirthTime != nil {
		p.BirthDate = fhirDate(*person.BirthTime)
	}
	if person.DeceasedTime != nil {
		p.Deceased = &r4Models.Patient_DeceasedX{
			Choice: &r4Models.Patient_DeceasedX_DateTime{DateTime: fhirDateTime(*person.DeceasedTime)},
		}
	}
	if person.BirthOrder != nil {
		p.MultipleBirth = &r4Models.Patient_MultipleBirthX{
			Choice: &r4Models.Patient_MultipleBirthX_Integer{Integer: &r4Datatypes.Integer{Value: int32(*person.BirthOrder)}},
		}
	}
	if person.MaritalStatus != nil {
		p.MaritalStatus = codeableConcept(*person.MaritalStatus)
	}

	for _, lang := range person.Languages {
		if lang.Language == "" {
			continue
		}
		p.Communication = append(p.Communication, &r4Models.Patient_Communication{
			Language:  codeableConcept(models.CodeValue{Code: lang.Language, CodeSystem: languageSystem}),
			Preferred: &r4Datatypes.Boolean{Value: lang.Type == models.LanguageFluency},
		})
	}

	for _, rel := range person.Relationships() {
		p.Contact = append(p.Contact, contact(rel))
	}

	return p
}

func identifier(id models.DomainIdentifier, use r4Codes.IdentifierUseCode_Value) *r4Datatypes.Identifier {
	value := id.Extension
	if value == "" {
		value = id.Root
	}
	return &r4Datatypes.Identifier{
		Use:    &r4Datatypes.Identifier_UseCode{Value: use},
		System: &r4Datatypes.Uri{Value: oidPrefix + id.Root},
		Value:  &r4Datatypes.String{Value: value},
	}
}

func contact(rel *models.PersonalRelationship) *r4Models.Patient_Contact {
	c := &r4Models.Patient_Contact{
		Relationship: []*r4Datatypes.CodeableConcept{
			codeableConcept(models.CodeValue{Code: rel.RelationshipKind, CodeSystem: relationshipType}),
		},
		Telecom: contactPoints(rel.TelecomAddresses),
	}
	if rel.LegalName != nil {
		c.Name = humanName(*rel.LegalName)
	}
	if rel.Address != nil {
		c.Address = address(*rel.Address)
	}
	return c
}

func codeableConcept(cv models.CodeValue) *r4Datatypes.CodeableConcept {
	coding := &r4Datatypes.Coding{Code: &r4Datatypes.Code{Value: cv.Code}}
	if cv.CodeSystem != "" {
		system := cv.CodeSystem
		if !strings.Contains(system, ":") {
			system = oidPrefix + system
		}
		coding.System = &r4Datatypes.Uri{Value: system}
	}
	if cv.DisplayName != "" {
		coding.Display = &r4Datatypes.String{Value: cv.DisplayName}
	}
	return &r4Datatypes.CodeableConcept{Coding: []*r4Datatypes.Coding{coding}}
}

func gender(code string) r4Codes.AdministrativeGenderCode_Value {
	switch strings.ToUpper(code) {
	case "M":
		return r4Codes.AdministrativeGenderCode_MALE
	case "F":
		return r4Codes.AdministrativeGenderCode_FEMALE
	case "UN":
		return r4Codes.AdministrativeGenderCode_OTHER
	default:
		return r4Codes.AdministrativeGenderCode_UNKNOWN
	}
}

func fhirDate(t models.TimestampPart) *r4Datatypes.Date {
	precision := r4Datatypes.Date_DAY
	switch t.Precision {
	case "Year":
		precision = r4Datatypes.Date_YEAR
	case "Month":
		precision = r4Datatypes.Date_MONTH
	}
	return &r4Datatypes.Date{
		ValueUs:   t.Value.UnixNano() / int64(time.Microsecond),
		Timezone:  time.UTC.String(),
		Precision: precision,
	}
}

func fhirDateTime(t models.TimestampPart) *r4Datatypes.DateTime {
	precision := r4Datatypes.DateTime_SECOND
	switch t.Precision {
	case "Year":
		precision = r4Datatypes.DateTime_YEAR
	case "Month":
		precision = r4Datatypes.DateTime_MONTH
	case "Day":
		precision = r4Datatypes.DateTime_DAY
	case "Millisecond":
		precision = r4Datatypes.DateTime_MILLISECOND
	}
	return &r4Datatypes.DateTime{
		ValueUs:   t.Value.UnixNano() / int64(time.Microsecond),
		Timezone:  time.UTC.String(),
		Precision: precision,
	}
}

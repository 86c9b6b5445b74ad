package diagnostics

// Code is a stable diagnostic identifier. The set is closed: text for each
// code is resolved outside the transform.
type Code string

const (
	ControlActTimeMissing       Code = "MSGE001"
	ControlActLanguageMissing   Code = "MSGE002"
	SubjectNullFlavored         Code = "MSGE003"
	AuthorMissing               Code = "MSGE004"
	AssignedEntityMissing       Code = "MSGE006"
	CustodianMissing            Code = "MSGE00B"
	TriggerEventUnexpected      Code = "MSGE00C"
	CustodianIDMissing          Code = "MSGE00D"
	RoleStatusUnsupported       Code = "MSGE010"
	RoleStatusNormal            Code = "MSGE011"
	IdentifiedPersonMissing     Code = "MSGE012"
	ParticipantIDMissing        Code = "MSGE02F"
	ParticipantPrincipalMissing Code = "MSGE030"
	LanguageSystemUnsupported   Code = "MSGE04B"
	LanguageTranslationFailed   Code = "MSGE04C"
	SubjectCardinality          Code = "MSGE04F"
	PriorRoleIDMissing          Code = "MSGE050"
	AuthorTimeMismatch          Code = "MSGE051"
	ActStatusUnsupported        Code = "MSGE053"
	ActStatusNotMappable        Code = "MSGE054"
	ParticipantChoiceUnknown    Code = "MSGE055"
	NationCodeMissing           Code = "MSGE056"
	NationSystemUnsupported     Code = "MSGE057"
	NationTranslationFailed     Code = "MSGE058"
	RoleEffectiveTimeDefaulted  Code = "MSGW005"
	DeceasedIndNotSupported     Code = "MSGW006"
	MultipleBirthIndUnsupported Code = "MSGW007"
	RelationshipIncomplete      Code = "MSGW008"
)

// Codes lists every code in catalogue order.
var Codes = []Code{
	ControlActTimeMissing,
	ControlActLanguageMissing,
	SubjectNullFlavored,
	AuthorMissing,
	AssignedEntityMissing,
	CustodianMissing,
	TriggerEventUnexpected,
	CustodianIDMissing,
	RoleStatusUnsupported,
	RoleStatusNormal,
	IdentifiedPersonMissing,
	ParticipantIDMissing,
	ParticipantPrincipalMissing,
	LanguageSystemUnsupported,
	LanguageTranslationFailed,
	SubjectCardinality,
	PriorRoleIDMissing,
	AuthorTimeMismatch,
	ActStatusUnsupported,
	ActStatusNotMappable,
	ParticipantChoiceUnknown,
	NationCodeMissing,
	NationSystemUnsupported,
	NationTranslationFailed,
	RoleEffectiveTimeDefaulted,
	DeceasedIndNotSupported,
	MultipleBirthIndUnsupported,
	RelationshipIncomplete,
}

var known = func() map[Code]struct{} {
	m := make(map[Code]struct{}, len(Codes))
	for _, c := range Codes {
		m[c] = struct{}{}
	}
	return m
}()

// Valid reports whether c belongs to the catalogue.
func (c Code) Valid() bool {
	_, ok := known[c]
	return ok
}

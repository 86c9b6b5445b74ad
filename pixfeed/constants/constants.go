package constants

// This is set during compilation.
var Version = "latest"

const AppName = "pixfeed"

// Trigger event accepted by the registration transform (add person).
const RegistrationTriggerEvent = "PRPA_IN201301UV02"

// Event type recorded on every produced registration event.
const RegistrationEventType = "REG"

// Code-system names resolved through the registrar.
const (
	ISO639_1  = "ISO639-1"
	ISO639_3  = "ISO639-3"
	ISO3166_1 = "ISO3166-1"
	ISO3166_2 = "ISO3166-2"
)

// Edge names used when attaching children to the registration graph.
const (
	ChangeEdge    = "CHANGE"
	AuthorEdge    = "AUT"
	CustodianEdge = "CST"
	SubjectEdge   = "SUBJ"
)

// HL7 vocabularies used for status codes.
const (
	ActStatusOID  = "2.16.840.1.113883.5.14"
	RoleStatusOID = "2.16.840.1.113883.5.1068"
)

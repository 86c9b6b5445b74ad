package constants

// Extended attribute names for fields with no canonical slot.
const (
	ExtRegistrationEventAltID = "RegistrationEventAltId"
	ExtUsablePeriod           = "UsablePeriod"
	ExtEthnicGroupCode        = "EthnicGroupCode"
	ExtCitizenshipIDs         = "CitizenshipIds"

	ExtAssigningOrgExtraID = "AssigningIdOrganizationExtraId"
	ExtAssigningOrgID      = "AssigningIdOrganizationId"
	ExtAssigningOrgName    = "AssigningIdOrganizationName"
	ExtAssigningOrgCode    = "AssigningIdOrganizationCode"
)

// Diagnostic locations.
const (
	LocControlActEvent   = "//urn:hl7-org:v3#controlActEvent"
	LocSubject           = "//urn:hl7-org:v3#controlActProcess/urn:hl7-org:v3#subject"
	LocPriorRegistered   = "//urn:hl7-org:v3#priorRegisteredRole"
	LocControlActProcess = "//urn:hl7-org:v3#controlActProcess"
)

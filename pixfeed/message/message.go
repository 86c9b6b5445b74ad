// Package message holds the already-parsed control-act tree of an inbound
// patient registration (add person) interaction.
package message

// ControlActProcess is the administrative wrapper of the interaction.
type ControlActProcess struct {
	Nullable
	// Code carries the trigger event, e.g. PRPA_IN201301UV02.
	Code          CD        `json:"code"`
	LanguageCode  *CS       `json:"languageCode,omitempty"`
	EffectiveTime *IVL_TS   `json:"effectiveTime,omitempty"`
	ReasonCodes   []CE      `json:"reasonCode,omitempty"`
	Subjects      []Subject `json:"subject" validate:"dive"`
}

type Subject struct {
	Nullable
	RegistrationEvent *RegistrationEvent `json:"registrationEvent,omitempty" validate:"omitempty"`
}

type RegistrationEvent struct {
	Nullable
	IDs           []II            `json:"id,omitempty" validate:"dive"`
	StatusCode    *CS             `json:"statusCode,omitempty"`
	EffectiveTime *IVL_TS         `json:"effectiveTime,omitempty"`
	Author        *Author         `json:"author,omitempty"`
	Custodian     *Custodian      `json:"custodian,omitempty"`
	ReplacementOf []ReplacementOf `json:"replacementOf,omitempty"`
	Subject1      *Subject1       `json:"subject1,omitempty" validate:"omitempty"`
}

// RegisteredRole returns the patient role, or nil when the path is absent.
func (r *RegistrationEvent) RegisteredRole() *RegisteredRole {
	if r == nil || r.Subject1 == nil || r.Subject1.IsNull() {
		return nil
	}
	return r.Subject1.RegisteredRole
}

type Subject1 struct {
	Nullable
	RegisteredRole *RegisteredRole `json:"patient,omitempty" validate:"omitempty"`
}

type Author struct {
	Nullable
	Time           *IVL_TS         `json:"time,omitempty"`
	AssignedEntity *AssignedEntity `json:"assignedEntity,omitempty"`
}

type Custodian struct {
	Nullable
	AssignedEntity *AssignedEntity `json:"assignedEntity,omitempty"`
}

// AssignedEntity is the role played by an author or custodian.
type AssignedEntity struct {
	Nullable
	IDs       []II            `json:"id,omitempty" validate:"dive"`
	Code      *CE             `json:"code,omitempty"`
	Addr      []AD            `json:"addr,omitempty" validate:"dive"`
	Telecom   []TEL           `json:"telecom,omitempty" validate:"dive"`
	Principal PrincipalChoice `json:"assignedPrincipal"`
}

type ReplacementOf struct {
	Nullable
	PriorRegistration *PriorRegistration `json:"priorRegistration,omitempty"`
}

type PriorRegistration struct {
	Nullable
	Subject1 *PriorSubject `json:"subject1,omitempty"`
}

type PriorSubject struct {
	Nullable
	PriorRegisteredRole *PriorRegisteredRole `json:"priorRegisteredRole,omitempty"`
}

type PriorRegisteredRole struct {
	Nullable
	IDs []II `json:"id,omitempty"`
}

// PriorRoleIDs returns the prior role identifiers, or nil when any element on
// the path is absent or null.
func (r *ReplacementOf) PriorRoleIDs() []II {
	if r.PriorRegistration == nil || r.PriorRegistration.IsNull() {
		return nil
	}
	s := r.PriorRegistration.Subject1
	if s == nil || s.IsNull() || s.PriorRegisteredRole == nil || s.PriorRegisteredRole.IsNull() {
		return nil
	}
	return s.PriorRegisteredRole.IDs
}

// RegisteredRole is the patient role asserted by the registration.
type RegisteredRole struct {
	Nullable
	IDs                     []II    `json:"id,omitempty" validate:"dive"`
	StatusCode              *CS     `json:"statusCode,omitempty"`
	EffectiveTime           *IVL_TS `json:"effectiveTime,omitempty"`
	ConfidentialityCodes    []CE    `json:"confidentialityCode,omitempty"`
	VeryImportantPersonCode *CE     `json:"veryImportantPersonCode,omitempty"`
	Person                  *Person `json:"patientPerson,omitempty" validate:"omitempty"`
}

// Person is the identified person sub-tree.
type Person struct {
	Nullable
	Names                    []EN                    `json:"name,omitempty" validate:"dive"`
	Telecom                  []TEL                   `json:"telecom,omitempty" validate:"dive"`
	AdministrativeGenderCode *CE                     `json:"administrativeGenderCode,omitempty"`
	BirthTime                *TS                     `json:"birthTime,omitempty"`
	DeceasedInd              *bool                   `json:"deceasedInd,omitempty"`
	DeceasedTime             *TS                     `json:"deceasedTime,omitempty"`
	MultipleBirthInd         *bool                   `json:"multipleBirthInd,omitempty"`
	MultipleBirthOrderNumber *int                    `json:"multipleBirthOrderNumber,omitempty" validate:"omitempty,min=1"`
	Addr                     []AD                    `json:"addr,omitempty" validate:"dive"`
	MaritalStatusCode        *CE                     `json:"maritalStatusCode,omitempty"`
	ReligiousAffiliationCode *CE                     `json:"religiousAffiliationCode,omitempty"`
	RaceCodes                []CE                    `json:"raceCode,omitempty"`
	EthnicGroupCodes         []CE                    `json:"ethnicGroupCode,omitempty"`
	AsOtherIDs               []OtherIDs              `json:"asOtherIDs,omitempty" validate:"dive"`
	PersonalRelationships    []PersonalRelationship  `json:"personalRelationship,omitempty" validate:"dive"`
	LanguageCommunication    []LanguageCommunication `json:"languageCommunication,omitempty"`
	BirthPlace               *BirthPlace             `json:"birthPlace,omitempty"`
	AsCitizen                []Citizen               `json:"asCitizen,omitempty" validate:"dive"`
	AsEmployee               []Employee              `json:"asEmployee,omitempty"`
}

type OtherIDs struct {
	Nullable
	IDs                 []II                 `json:"id,omitempty" validate:"dive"`
	ScopingOrganization *ScopingOrganization `json:"scopingOrganization,omitempty"`
}

type ScopingOrganization struct {
	Nullable
	IDs   []II `json:"id,omitempty"`
	Names []EN `json:"name,omitempty"`
	Code  *CE  `json:"code,omitempty"`
}

type PersonalRelationship struct {
	Nullable
	Code   *CE                 `json:"code,omitempty"`
	Holder *RelationshipHolder `json:"relationshipHolder1,omitempty" validate:"omitempty"`
}

type RelationshipHolder struct {
	Nullable
	IDs     []II  `json:"id,omitempty" validate:"dive"`
	Names   []EN  `json:"name,omitempty" validate:"dive"`
	Addr    []AD  `json:"addr,omitempty" validate:"dive"`
	Telecom []TEL `json:"telecom,omitempty" validate:"dive"`
}

type LanguageCommunication struct {
	Nullable
	LanguageCode  *CE   `json:"languageCode,omitempty"`
	PreferenceInd *bool `json:"preferenceInd,omitempty"`
}

type BirthPlace struct {
	Nullable
	Birthplace *Place `json:"birthplace,omitempty"`
}

type Place struct {
	Nullable
	IDs   []II `json:"id,omitempty"`
	Addr  *AD  `json:"addr,omitempty"`
	Names []EN `json:"name,omitempty"`
	Code  *CE  `json:"code,omitempty"`
}

type Citizen struct {
	Nullable
	IDs             []II    `json:"id,omitempty" validate:"dive"`
	EffectiveTime   *IVL_TS `json:"effectiveTime,omitempty"`
	PoliticalNation *Nation `json:"politicalNation,omitempty"`
}

type Nation struct {
	Nullable
	Code *CD `json:"code,omitempty"`
	Name *EN `json:"name,omitempty"`
}

type Employee struct {
	Nullable
	OccupationCode *CE     `json:"occupationCode,omitempty"`
	EffectiveTime  *IVL_TS `json:"effectiveTime,omitempty"`
	StatusCode     *CS     `json:"statusCode,omitempty"`
}

package models

type LanguageType string

const (
	LanguageFluency          LanguageType = "Fluency"
	LanguageWrittenAndSpoken LanguageType = "WrittenAndSpoken"
)

type PersonLanguage struct {
	Language string       `json:"language,omitempty"`
	Type     LanguageType `json:"type"`
}

// OtherIdentifier pairs an identifier with an optional type classifier.
type OtherIdentifier struct {
	Type       *CodeValue       `json:"type"`
	Identifier DomainIdentifier `json:"identifier"`
}

// Person is the canonical patient demographic record.
type Person struct {
	Container
	AlternateIdentifiers []DomainIdentifier          `json:"alternateIdentifiers,omitempty"`
	Status               StatusType                  `json:"status"`
	EffectiveTime        *TimestampSet               `json:"effectiveTime,omitempty"`
	Names                []NameSet                   `json:"names,omitempty"`
	TelecomAddresses     []TelecommunicationsAddress `json:"telecomAddresses,omitempty"`
	GenderCode           string                      `json:"genderCode,omitempty"`
	BirthTime            *TimestampPart              `json:"birthTime,omitempty"`
	DeceasedTime         *TimestampPart              `json:"deceasedTime,omitempty"`
	BirthOrder           *int                        `json:"birthOrder,omitempty"`
	Addresses            []AddressSet                `json:"addresses,omitempty"`
	OtherIdentifiers     []OtherIdentifier           `json:"otherIdentifiers,omitempty"`
	Languages            []PersonLanguage            `json:"languages,omitempty"`
	VipCode              *CodeValue                  `json:"vipCode,omitempty"`
	BirthPlace           *ServiceDeliveryLocation    `json:"birthPlace,omitempty"`
	Race                 []CodeValue                 `json:"race,omitempty"`
	MaritalStatus        *CodeValue                  `json:"maritalStatus,omitempty"`
	ReligionCode         *CodeValue                  `json:"religionCode,omitempty"`
	Extensions           ExtendedAttributes          `json:"extensions"`
}

func (*Person) ComponentType() string { return "Person" }

// Citizenships returns the attached citizenship records in order.
func (p *Person) Citizenships() []*Citizenship {
	var out []*Citizenship
	for _, c := range p.Children(RoleComponentOf) {
		if v, ok := c.(*Citizenship); ok {
			out = append(out, v)
		}
	}
	return out
}

// Employments returns the attached employment records in order.
func (p *Person) Employments() []*Employment {
	var out []*Employment
	for _, c := range p.Children(RoleComponentOf) {
		if v, ok := c.(*Employment); ok {
			out = append(out, v)
		}
	}
	return out
}

// Relationships returns the attached personal relationships in order.
func (p *Person) Relationships() []*PersonalRelationship {
	var out []*PersonalRelationship
	for _, c := range p.Children(RoleRepresentitiveOf) {
		if v, ok := c.(*PersonalRelationship); ok {
			out = append(out, v)
		}
	}
	return out
}

type Citizenship struct {
	CountryCode   string        `json:"countryCode,omitempty"`
	CountryName   string        `json:"countryName,omitempty"`
	EffectiveTime *TimestampSet `json:"effectiveTime,omitempty"`
}

func (*Citizenship) ComponentType() string { return "Citizenship" }

type Employment struct {
	Occupation    *CodeValue    `json:"occupation,omitempty"`
	EffectiveTime *TimestampSet `json:"effectiveTime,omitempty"`
	Status        StatusType    `json:"status"`
}

func (*Employment) ComponentType() string { return "Employment" }

// PersonalRelationship is a related party such as next of kin or guardian.
type PersonalRelationship struct {
	RelationshipKind     string                      `json:"relationshipKind"`
	AlternateIdentifiers []DomainIdentifier          `json:"alternateIdentifiers,omitempty"`
	LegalName            *NameSet                    `json:"legalName,omitempty"`
	Names                []NameSet                   `json:"names,omitempty"`
	Address              *AddressSet                 `json:"address,omitempty"`
	TelecomAddresses     []TelecommunicationsAddress `json:"telecomAddresses,omitempty"`
}

func (*PersonalRelationship) ComponentType() string { return "PersonalRelationship" }

type MaskingIndicator struct {
	MaskingCode CodeValue `json:"maskingCode"`
}

func (*MaskingIndicator) ComponentType() string { return "MaskingIndicator" }

// PersonRegistrationRef points at a prior registration by identity only.
type PersonRegistrationRef struct {
	AlternateIdentifiers []DomainIdentifier `json:"alternateIdentifiers"`
}

func (*PersonRegistrationRef) ComponentType() string { return "PersonRegistrationRef" }

type ServiceDeliveryLocation struct {
	AlternateIdentifiers []DomainIdentifier `json:"alternateIdentifiers,omitempty"`
	Address              *AddressSet        `json:"address,omitempty"`
	Name                 string             `json:"name,omitempty"`
	LocationType         *CodeValue         `json:"locationType,omitempty"`
}

func (*ServiceDeliveryLocation) ComponentType() string { return "ServiceDeliveryLocation" }

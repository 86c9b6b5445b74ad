package models

import "strings"

// ParticipantType classifies a participant. Values combine as a bit set.
type ParticipantType uint8

const (
	ParticipantPerson ParticipantType = 1 << iota
	ParticipantOrganization
)

func (t ParticipantType) String() string {
	var parts []string
	if t&ParticipantPerson != 0 {
		parts = append(parts, "Person")
	}
	if t&ParticipantOrganization != 0 {
		parts = append(parts, "Organization")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

func (t ParticipantType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// HealthcareParticipant represents an author or custodian.
type HealthcareParticipant struct {
	Classifier           ParticipantType             `json:"classifier"`
	AlternateIdentifiers []DomainIdentifier          `json:"alternateIdentifiers,omitempty"`
	Type                 *CodeValue                  `json:"type,omitempty"`
	LegalName            *NameSet                    `json:"legalName,omitempty"`
	PrimaryAddress       *AddressSet                 `json:"primaryAddress,omitempty"`
	TelecomAddresses     []TelecommunicationsAddress `json:"telecomAddresses,omitempty"`
}

func (*HealthcareParticipant) ComponentType() string { return "HealthcareParticipant" }

// Clone returns a deep copy that shares no slices with p.
func (p *HealthcareParticipant) Clone() *HealthcareParticipant {
	c := *p
	c.AlternateIdentifiers = append([]DomainIdentifier(nil), p.AlternateIdentifiers...)
	c.TelecomAddresses = append([]TelecommunicationsAddress(nil), p.TelecomAddresses...)
	if p.Type != nil {
		t := *p.Type
		c.Type = &t
	}
	if p.LegalName != nil {
		n := cloneName(*p.LegalName)
		c.LegalName = &n
	}
	if p.PrimaryAddress != nil {
		a := AddressSet{
			Use:   append([]AddressUse(nil), p.PrimaryAddress.Use...),
			Parts: append([]AddressPart(nil), p.PrimaryAddress.Parts...),
		}
		c.PrimaryAddress = &a
	}
	return &c
}

func cloneName(n NameSet) NameSet {
	return NameSet{
		Use:   append([]NameUse(nil), n.Use...),
		Parts: append([]NamePart(nil), n.Parts...),
	}
}

// RepositoryDevice identifies the system of record holding a registration.
type RepositoryDevice struct {
	AlternateIdentifier DomainIdentifier `json:"alternateIdentifier"`
	Name                string           `json:"name,omitempty"`
}

func (*RepositoryDevice) ComponentType() string { return "RepositoryDevice" }

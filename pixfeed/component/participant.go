package component

import (
	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
	"github.com/CMSgov/pixfeed-app/pixfeed/message"
	"github.com/CMSgov/pixfeed-app/pixfeed/models"
)

// participant builds an author from an assigned entity, dispatching once on the
// principal variant. It returns nil for unsupported variants.
func (b *builder) participant(ae *message.AssignedEntity) *models.HealthcareParticipant {
	p := &models.HealthcareParticipant{Classifier: models.ParticipantPerson}

	p.AlternateIdentifiers = identifiers(ae.IDs)
	if len(p.AlternateIdentifiers) == 0 {
		b.diags.MandatoryMissing(diagnostics.ParticipantIDMissing, "")
	}
	p.Type = codeValue(ae.Code)
	p.PrimaryAddress = preferredAddress(ae.Addr, useWorkPlace)
	p.TelecomAddresses = telecoms(ae.Telecom)

	if ae.Principal.Absent() {
		b.diags.MandatoryMissing(diagnostics.ParticipantPrincipalMissing, "")
		return p
	}

	switch principal := ae.Principal.Principal.(type) {
	case *message.PersonPrincipal:
		p.LegalName = preferredName(principal.Names, useLegal)
	case *message.Device:
		p.LegalName = deviceName(principal)
		// Devices are recorded as both kinds of participant.
		p.Classifier = models.ParticipantOrganization | models.ParticipantPerson
	case *message.Organization:
		organizationParticipant(p, ae, principal)
	default:
		b.unsupportedChoice(principal)
		return nil
	}
	return p
}

func deviceName(dev *message.Device) *models.NameSet {
	if dev.SoftwareName == "" {
		return nil
	}
	return &models.NameSet{Parts: []models.NamePart{{Type: models.NameGiven, Value: dev.SoftwareName}}}
}

func organizationParticipant(p *models.HealthcareParticipant, ae *message.AssignedEntity, org *message.Organization) {
	p.Classifier = models.ParticipantOrganization
	p.LegalName = preferredName(org.Names, useLegal)
	p.PrimaryAddress = preferredAddress(ae.Addr, useDirect)
}

func (b *builder) unsupportedChoice(principal message.Principal) {
	b.diags.AddDetail(diagnostics.Error, diagnostics.NotSupportedChoice, diagnostics.ParticipantChoiceUnknown, "",
		principal.ClassCode())
}

// custodian attaches the system of record. Only device and organization
// principals are accepted.
func (b *builder) custodian() {
	c := b.subject.Custodian
	if c == nil || c.IsNull() || c.AssignedEntity == nil || c.AssignedEntity.IsNull() {
		b.diags.MandatoryMissing(diagnostics.CustodianMissing, "")
		return
	}

	ae := c.AssignedEntity
	var target models.Component
	switch principal := ae.Principal.Principal.(type) {
	case *message.Device:
		target = b.repositoryDevice(principal)
	case *message.Organization:
		if ae.IsNull() || len(identifiers(ae.IDs)) == 0 {
			b.diags.MandatoryMissing(diagnostics.CustodianIDMissing, "")
		}
		p := &models.HealthcareParticipant{
			AlternateIdentifiers: identifiers(ae.IDs),
			TelecomAddresses:     telecoms(ae.Telecom),
		}
		organizationParticipant(p, ae, principal)
		target = p
	default:
		if principal == nil {
			principal = &message.UnsupportedPrincipal{}
		}
		b.unsupportedChoice(principal)
		return
	}

	b.event.Attach(constants.CustodianEdge, target, models.RolePlaceOfRecord|models.RoleResponsibleFor, identifiers(ae.IDs))
}

func (b *builder) repositoryDevice(dev *message.Device) *models.RepositoryDevice {
	ids := identifiers(dev.IDs)
	if dev.IsNull() || len(ids) == 0 {
		b.diags.MandatoryMissing(diagnostics.CustodianIDMissing, "")
	}

	device := &models.RepositoryDevice{Name: dev.SoftwareName}
	if len(ids) > 0 {
		device.AlternateIdentifier = ids[0]
	}
	return device
}

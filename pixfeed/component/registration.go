package component

import (
	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
	"github.com/CMSgov/pixfeed-app/pixfeed/message"
	"github.com/CMSgov/pixfeed-app/pixfeed/models"
)

// controlAct builds the event shell and its change summary. It never aborts.
func (b *builder) controlAct(act *message.ControlActProcess) {
	b.event = &models.RegistrationEvent{
		Container: models.Container{ID: b.newID()},
		Status:    models.StatusCompleted,
		Timestamp: b.now,
	}
	b.event.LanguageCode = b.controlActLanguage(act.LanguageCode)

	b.summary = &models.ChangeSummary{
		Container:    models.Container{ID: b.newID()},
		Status:       models.StatusCompleted,
		Timestamp:    b.now,
		LanguageCode: b.event.LanguageCode,
	}
	if cv := codeValue(&act.Code); cv != nil {
		b.summary.ChangeType = *cv
	}

	if !act.EffectiveTime.Present() {
		b.diags.MandatoryMissing(diagnostics.ControlActTimeMissing, constants.LocControlActEvent)
	} else {
		b.summary.EffectiveTime = timestampSet(act.EffectiveTime)
	}

	for i := range act.ReasonCodes {
		if cv := codeValue(&act.ReasonCodes[i]); cv != nil {
			b.summary.Attach(b.newID(), &models.Reason{ReasonType: *cv}, models.RoleReasonFor, nil)
		}
	}

	edge := b.event.Attach(constants.ChangeEdge, b.summary, models.RoleReasonFor|models.RoleOlderVersionOf, nil)
	edge.Symbolic = true
}

func (b *builder) controlActLanguage(cs *message.CS) string {
	if !cs.Present() {
		b.diags.RequiredMissing(diagnostics.ControlActLanguageMissing, constants.LocControlActProcess)
		return b.opts.Registrar.GetDefaultLanguage()
	}

	code, ok := b.codes.Translate(b.diags, *codeValue(cs), LanguageDomain)
	if !ok {
		return ""
	}
	return code
}

// resolveSubject applies the two short-circuit checks and picks the subject.
func (b *builder) resolveSubject(act *message.ControlActProcess) bool {
	if len(act.Subjects) != 1 {
		b.diags.Add(diagnostics.Error, diagnostics.InsufficientRepetitions, diagnostics.SubjectCardinality, constants.LocSubject)
		return false
	}

	if act.Code.Code != constants.RegistrationTriggerEvent {
		b.diags.AddDetail(diagnostics.Error, diagnostics.MandatoryElementMissing, diagnostics.TriggerEventUnexpected,
			constants.LocControlActProcess, act.Code.Code)
		return false
	}

	subject := act.Subjects[0]
	b.subject = subject.RegistrationEvent
	if subject.IsNull() || b.subject == nil || b.subject.IsNull() {
		b.diags.MandatoryMissing(diagnostics.SubjectNullFlavored, constants.LocSubject)
	}
	return b.subject != nil
}

// demographics runs every builder in order. Failures are recorded and the
// next builder still runs; only a missing identified person stops the run.
func (b *builder) demographics() bool {
	b.author()
	b.registrationEvent()
	b.custodian()

	b.person = &models.Person{Container: models.Container{ID: b.newID()}}
	b.replacements()

	role := b.subject.RegisteredRole()
	if role == nil || role.IsNull() {
		b.diags.MandatoryMissing(diagnostics.IdentifiedPersonMissing, "")
		return false
	}
	b.registeredRole(role)

	ident := role.Person
	if ident == nil || ident.IsNull() {
		b.diags.MandatoryMissing(diagnostics.IdentifiedPersonMissing, "")
		return false
	}

	b.identifiedPerson(ident)
	b.otherIdentifiers(ident.AsOtherIDs)
	b.languages(ident.LanguageCommunication)
	b.relationships(ident.PersonalRelationships)
	b.person.VipCode = codeValue(role.VeryImportantPersonCode)
	b.birthplace(ident.BirthPlace)
	b.codedTraits(ident)
	b.citizenships(ident.AsCitizen)
	b.employments(ident.AsEmployee)

	b.event.Attach(constants.SubjectEdge, b.person, models.RoleSubjectOf, b.person.AlternateIdentifiers)
	return true
}

// author is optional. When present its time becomes the event timestamp and
// the participant is attached to both the change summary and the event.
func (b *builder) author() {
	if b.subject.IsNull() {
		return
	}

	aut := b.subject.Author
	if aut == nil || aut.IsNull() {
		b.diags.RequiredMissing(diagnostics.AuthorMissing, "")
		return
	}

	if start, ok := timestampSet(aut.Time).Start(); ok {
		b.summary.Timestamp = start
		b.event.Timestamp = start
	}
	if aut.Time.Present() && b.subject.EffectiveTime.Present() && !aut.Time.SemanticEquals(b.subject.EffectiveTime) {
		b.diags.AddDetail(diagnostics.Error, diagnostics.ValidationResult, diagnostics.AuthorTimeMismatch, "",
			b.subject.EffectiveTime.ToBound().String())
	}

	var participant *models.HealthcareParticipant
	if aut.AssignedEntity == nil || aut.AssignedEntity.IsNull() {
		b.diags.MandatoryMissing(diagnostics.AssignedEntityMissing, "")
	} else {
		participant = b.participant(aut.AssignedEntity)
	}

	if participant == nil {
		b.diags.MandatoryMissing(diagnostics.AuthorMissing, "")
		return
	}

	b.summary.Attach(constants.AuthorEdge, participant, models.RoleAuthorOf, participant.AlternateIdentifiers)
	clone := participant.Clone()
	b.event.Attach(constants.AuthorEdge, clone, models.RoleAuthorOf, clone.AlternateIdentifiers)
}

func (b *builder) registrationEvent() {
	b.event.EventClassifier = models.EventRegister
	b.event.EventType = models.CodeValue{Code: constants.RegistrationEventType}

	if b.subject.StatusCode.Present() {
		b.event.Status = MapActStatus(b.diags, b.subject.StatusCode)
	} else {
		b.event.Status = models.StatusActive
	}

	if ids := identifiers(b.subject.IDs); len(ids) > 0 {
		b.event.Extensions.Add(constants.ExtRegistrationEventAltID, "Id", ids)
	}

	if start, ok := timestampSet(b.subject.EffectiveTime).Start(); ok {
		b.event.Timestamp = start
	}
}

// registeredRole copies identity, status and validity of the role. An active
// role, or one with no effective time, is given an open interval from now.
func (b *builder) registeredRole(role *message.RegisteredRole) {
	b.person.AlternateIdentifiers = identifiers(role.IDs)

	if role.StatusCode.Present() {
		b.person.Status = MapRoleStatus(b.diags, role.StatusCode)
	}

	if b.person.Status == models.StatusActive || !role.EffectiveTime.Present() {
		b.diags.RequiredMissing(diagnostics.RoleEffectiveTimeDefaulted, "")
		b.event.EffectiveTime = openInterval(b.now)
		b.person.EffectiveTime = openInterval(b.now)
	} else {
		b.event.EffectiveTime = timestampSet(role.EffectiveTime)
		b.person.EffectiveTime = timestampSet(role.EffectiveTime)
	}

	for i := range role.ConfidentialityCodes {
		if cv := codeValue(&role.ConfidentialityCodes[i]); cv != nil {
			b.person.Attach(b.newID(), &models.MaskingIndicator{MaskingCode: *cv}, models.RoleFilterOf, nil)
		}
	}
}

// replacements records each prior registration as an identifier-only reference.
func (b *builder) replacements() {
	for i := range b.subject.ReplacementOf {
		r := &b.subject.ReplacementOf[i]
		if r.IsNull() || r.PriorRegistration == nil || r.PriorRegistration.IsNull() {
			continue
		}

		ids := identifiers(r.PriorRoleIDs())
		if len(ids) == 0 {
			b.diags.MandatoryMissing(diagnostics.PriorRoleIDMissing, constants.LocPriorRegistered)
			continue
		}
		b.person.Attach(b.newID(), &models.PersonRegistrationRef{AlternateIdentifiers: ids}, models.RoleReplacementOf, nil)
	}
}

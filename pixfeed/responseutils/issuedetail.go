package responseutils

import (
	"fmt"

	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
)

// Display text for each diagnostic code. The collector stores codes only.
var catalogue = map[diagnostics.Code]string{
	diagnostics.ControlActTimeMissing:       "The control act event is missing its effective time",
	diagnostics.ControlActLanguageMissing:   "The control act has no language code; the jurisdiction default was used",
	diagnostics.SubjectNullFlavored:         "The registration subject is missing or null",
	diagnostics.AuthorMissing:               "The registration author is missing or could not be resolved",
	diagnostics.AssignedEntityMissing:       "The author is missing its assigned entity",
	diagnostics.CustodianMissing:            "The registration custodian is missing",
	diagnostics.TriggerEventUnexpected:      "The trigger event is not a patient registration (PRPA_IN201301UV02)",
	diagnostics.CustodianIDMissing:          "The custodian does not carry an identifier",
	diagnostics.RoleStatusUnsupported:       "The role status code is not supported",
	diagnostics.RoleStatusNormal:            "The role status 'normal' has no equivalent",
	diagnostics.IdentifiedPersonMissing:     "The registration does not identify a person",
	diagnostics.ParticipantIDMissing:        "The participant does not carry an identifier",
	diagnostics.ParticipantPrincipalMissing: "The participant is missing its principal",
	diagnostics.LanguageSystemUnsupported:   "The language code must be drawn from ISO 639-1 or ISO 639-3",
	diagnostics.LanguageTranslationFailed:   "The language code could not be translated to ISO 639-1",
	diagnostics.SubjectCardinality:          "The control act must contain exactly one subject",
	diagnostics.PriorRoleIDMissing:          "The replaced registration does not identify the prior role",
	diagnostics.AuthorTimeMismatch:          "The author time does not match the registration effective time",
	diagnostics.ActStatusUnsupported:        "The act status code is not supported",
	diagnostics.ActStatusNotMappable:        "The act status code has no equivalent",
	diagnostics.ParticipantChoiceUnknown:    "The participant type is not supported",
	diagnostics.NationCodeMissing:           "The citizenship does not carry a nation code",
	diagnostics.NationSystemUnsupported:     "The nation code must be drawn from ISO 3166-1 or ISO 3166-2",
	diagnostics.NationTranslationFailed:     "The nation code could not be translated to ISO 3166-1",
	diagnostics.RoleEffectiveTimeDefaulted:  "The role effective time was set to an open interval starting now",
	diagnostics.DeceasedIndNotSupported:     "The deceased indicator is not supported and was ignored",
	diagnostics.MultipleBirthIndUnsupported: "The multiple birth indicator is not supported and was ignored",
	diagnostics.RelationshipIncomplete:      "A personal relationship without a holder or code was skipped",
}

// Text returns the display text for code.
func Text(code diagnostics.Code) string {
	if text, ok := catalogue[code]; ok {
		return text
	}
	return fmt.Sprintf("Unknown diagnostic %s", code)
}

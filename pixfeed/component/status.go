package component

import (
	"strings"

	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
	"github.com/CMSgov/pixfeed-app/pixfeed/message"
	"github.com/CMSgov/pixfeed-app/pixfeed/models"
)

var actStatuses = map[string]models.StatusType{
	"aborted":   models.StatusAborted,
	"active":    models.StatusActive,
	"cancelled": models.StatusCancelled,
	"completed": models.StatusCompleted,
	"new":       models.StatusNew,
	"nullified": models.StatusNullified,
	"obsolete":  models.StatusObsolete,
}

// Valid act statuses with no canonical equivalent.
var actStatusesUnmappable = map[string]bool{
	"suspended": true,
	"normal":    true,
	"held":      true,
}

var roleStatuses = map[string]models.StatusType{
	"active":     models.StatusActive,
	"cancelled":  models.StatusCancelled,
	"nullified":  models.StatusNullified,
	"pending":    models.StatusNew,
	"suspended":  models.StatusAborted,
	"terminated": models.StatusObsolete,
}

// MapActStatus maps an HL7 ActStatus code.
func MapActStatus(diags *diagnostics.Collector, cs *message.CS) models.StatusType {
	if alternateCode(cs, constants.ActStatusOID) {
		diags.Vocabulary(diagnostics.ActStatusUnsupported, cs.Code)
		return models.StatusUnknown
	}

	code := strings.ToLower(cs.Code)
	if s, ok := actStatuses[code]; ok {
		return s
	}
	if actStatusesUnmappable[code] {
		diags.Vocabulary(diagnostics.ActStatusNotMappable, cs.Code)
	} else {
		diags.Vocabulary(diagnostics.ActStatusUnsupported, cs.Code)
	}
	return models.StatusUnknown
}

// MapRoleStatus maps an HL7 RoleStatus code.
func MapRoleStatus(diags *diagnostics.Collector, cs *message.CS) models.StatusType {
	if alternateCode(cs, constants.RoleStatusOID) {
		diags.Vocabulary(diagnostics.RoleStatusUnsupported, cs.Code)
		return models.StatusUnknown
	}

	code := strings.ToLower(cs.Code)
	if s, ok := roleStatuses[code]; ok {
		return s
	}
	if code == "normal" {
		diags.Vocabulary(diagnostics.RoleStatusNormal, cs.Code)
	} else {
		diags.Vocabulary(diagnostics.RoleStatusUnsupported, cs.Code)
	}
	return models.StatusUnknown
}

// alternateCode reports a code drawn from a system other than the status vocabulary.
func alternateCode(cs *message.CS, vocabulary string) bool {
	return cs.CodeSystem != "" && cs.CodeSystem != vocabulary
}

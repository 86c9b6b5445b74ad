package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
	"github.com/CMSgov/pixfeed-app/pixfeed/message"
	"github.com/CMSgov/pixfeed-app/pixfeed/models"
	"github.com/CMSgov/pixfeed-app/pixfeed/registrar"
	"github.com/CMSgov/pixfeed-app/pixfeed/terminology"
	"github.com/CMSgov/pixfeed-app/pixfeed/testUtils"
)

func TestMapActStatus(t *testing.T) {
	tests := []struct {
		code     string
		system   string
		expected models.StatusType
		diag     diagnostics.Code
	}{
		{"aborted", "", models.StatusAborted, ""},
		{"active", constants.ActStatusOID, models.StatusActive, ""},
		{"CANCELLED", "", models.StatusCancelled, ""},
		{"completed", "", models.StatusCompleted, ""},
		{"new", "", models.StatusNew, ""},
		{"nullified", "", models.StatusNullified, ""},
		{"obsolete", "", models.StatusObsolete, ""},
		{"suspended", "", models.StatusUnknown, diagnostics.ActStatusNotMappable},
		{"normal", "", models.StatusUnknown, diagnostics.ActStatusNotMappable},
		{"held", "", models.StatusUnknown, diagnostics.ActStatusNotMappable},
		{"bogus", "", models.StatusUnknown, diagnostics.ActStatusUnsupported},
		{"active", "2.16.840.1.113883.5.1068", models.StatusUnknown, diagnostics.ActStatusUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.system, func(t *testing.T) {
			diags := diagnostics.NewCollector()
			assert.Equal(t, tt.expected, MapActStatus(diags, &message.CS{Code: tt.code, CodeSystem: tt.system}))
			assertSingleVocabulary(t, diags, tt.diag, tt.code)
		})
	}
}

func TestMapRoleStatus(t *testing.T) {
	tests := []struct {
		code     string
		system   string
		expected models.StatusType
		diag     diagnostics.Code
	}{
		{"active", "", models.StatusActive, ""},
		{"cancelled", constants.RoleStatusOID, models.StatusCancelled, ""},
		{"nullified", "", models.StatusNullified, ""},
		{"Pending", "", models.StatusNew, ""},
		{"suspended", "", models.StatusAborted, ""},
		{"terminated", "", models.StatusObsolete, ""},
		{"normal", "", models.StatusUnknown, diagnostics.RoleStatusNormal},
		{"completed", "", models.StatusUnknown, diagnostics.RoleStatusUnsupported},
		{"active", constants.ActStatusOID, models.StatusUnknown, diagnostics.RoleStatusUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.system, func(t *testing.T) {
			diags := diagnostics.NewCollector()
			assert.Equal(t, tt.expected, MapRoleStatus(diags, &message.CS{Code: tt.code, CodeSystem: tt.system}))
			assertSingleVocabulary(t, diags, tt.diag, tt.code)
		})
	}
}

func assertSingleVocabulary(t *testing.T, diags *diagnostics.Collector, code diagnostics.Code, detail string) {
	if code == "" {
		assert.Zero(t, diags.Len())
		return
	}
	assert.Equal(t, []diagnostics.Diagnostic{{
		Severity: diagnostics.Error,
		Kind:     diagnostics.VocabularyIssue,
		Code:     code,
		Detail:   detail,
	}}, diags.Items())
}

func TestCodeTranslator(t *testing.T) {
	registry := registrar.Default("en")
	translator := CodeTranslator{Translator: terminology.NewISOTranslator(registry), Registrar: registry}

	tests := []struct {
		name     string
		code     models.CodeValue
		domain   Domain
		expected string
		ok       bool
		diags    []diagnostics.Code
	}{
		{"language wide", models.CodeValue{Code: "fra", CodeSystem: "1.0.639.3"}, LanguageDomain, "fr", true, nil},
		{"language narrow", models.CodeValue{Code: "de", CodeSystem: "1.0.639.1"}, LanguageDomain, "de", true, nil},
		{"language unknown", models.CodeValue{Code: "qqq", CodeSystem: "1.0.639.3"}, LanguageDomain, "", false,
			[]diagnostics.Code{diagnostics.LanguageTranslationFailed}},
		{"language other system", models.CodeValue{Code: "en-CA", CodeSystem: "urn:ietf:bcp:47"}, LanguageDomain, "en-CA", true,
			[]diagnostics.Code{diagnostics.LanguageSystemUnsupported}},
		{"country wide", models.CodeValue{Code: "USA", CodeSystem: "1.0.3166.2"}, CountryDomain, "US", true, nil},
		{"country narrow", models.CodeValue{Code: "MX", CodeSystem: "1.0.3166.1"}, CountryDomain, "MX", true, nil},
		{"country other system", models.CodeValue{Code: "124", CodeSystem: "2.16.840.1.113883.3.238"}, CountryDomain, "124", true,
			[]diagnostics.Code{diagnostics.NationSystemUnsupported}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := diagnostics.NewCollector()
			code, ok := translator.Translate(diags, tt.code, tt.domain)
			assert.Equal(t, tt.expected, code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.diags, nilIfEmpty(codesOf(diags.Items())))
		})
	}
}

func TestCodeTranslatorUsesRegistrarSystems(t *testing.T) {
	translator := &testUtils.MockTranslator{}
	translator.On("Translate", "deu", "1.0.639.3", "1.0.639.1").Return("de", true).Once()

	ct := CodeTranslator{Translator: translator, Registrar: registrar.Default("en")}
	code, ok := ct.Translate(diagnostics.NewCollector(), models.CodeValue{Code: "deu", CodeSystem: "1.0.639.3"}, LanguageDomain)
	assert.True(t, ok)
	assert.Equal(t, "de", code)
	translator.AssertExpectations(t)
}

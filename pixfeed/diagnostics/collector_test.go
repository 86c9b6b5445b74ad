package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorOrderAndGate(t *testing.T) {
	c := NewCollector()
	assert.False(t, c.HasError())
	assert.Empty(t, c.Items())

	c.RequiredMissing(ControlActLanguageMissing, "")
	assert.False(t, c.HasError(), "warnings never fail the gate")

	c.MandatoryMissing(ControlActTimeMissing, "//urn:hl7-org:v3#controlActEvent")
	c.Vocabulary(LanguageSystemUnsupported, "1.2.3")
	c.NotImplemented(DeceasedIndNotSupported, "DeceasedInd")

	assert.True(t, c.HasError())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 2, c.Count(Error))
	assert.Equal(t, 2, c.Count(Warning))
	assert.Equal(t, 0, c.Count(Info))

	items := c.Items()
	assert.Equal(t, []Code{ControlActLanguageMissing, ControlActTimeMissing, LanguageSystemUnsupported, DeceasedIndNotSupported},
		[]Code{items[0].Code, items[1].Code, items[2].Code, items[3].Code})
	assert.Equal(t, MandatoryElementMissing, items[1].Kind)
	assert.Equal(t, "//urn:hl7-org:v3#controlActEvent", items[1].Location)
	assert.Equal(t, "1.2.3", items[2].Detail)
	assert.Equal(t, NotImplementedElement, items[3].Kind)
}

func TestCollectorItemsIsACopy(t *testing.T) {
	c := NewCollector()
	c.Add(Info, RequiredElementMissing, ControlActLanguageMissing, "")

	items := c.Items()
	items[0].Severity = Error
	assert.False(t, c.HasError())
}

func TestCodesAreClosed(t *testing.T) {
	seen := map[Code]bool{}
	for _, code := range Codes {
		assert.True(t, code.Valid(), code)
		assert.False(t, seen[code], "duplicate %s", code)
		seen[code] = true
	}
	assert.False(t, Code("MSGE999").Valid())
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name     string
		stringer interface{ String() string }
		want     string
	}{
		{"error", Error, "error"},
		{"warning", Warning, "warning"},
		{"info", Info, "information"},
		{"unknown severity", Severity(9), "severity(9)"},
		{"vocabulary", VocabularyIssue, "VocabularyIssue"},
		{"unknown kind", Kind(42), "kind(42)"},
		{"diagnostic", Diagnostic{Severity: Error, Kind: InsufficientRepetitions, Code: SubjectCardinality, Location: "subject"},
			"error InsufficientRepetitions MSGE04F at subject"},
		{"diagnostic with detail", Diagnostic{Severity: Warning, Kind: NotImplementedElement, Code: MultipleBirthIndUnsupported, Detail: "MultipleBirthInd"},
			"warning NotImplementedElement MSGW007 (MultipleBirthInd)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stringer.String())
		})
	}
}

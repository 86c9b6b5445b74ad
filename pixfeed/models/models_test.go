package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ModelsTestSuite struct {
	suite.Suite
}

func TestModelsTestSuite(t *testing.T) {
	suite.Run(t, new(ModelsTestSuite))
}

func (s *ModelsTestSuite) TestAttachAndChildren() {
	event := &RegistrationEvent{Container: Container{ID: "event-1"}}
	summary := &ChangeSummary{Container: Container{ID: "change-1"}}
	person := &Person{Container: Container{ID: "person-1"}}
	ids := []DomainIdentifier{{Root: "1.2.3", Extension: "abc"}}

	edge := event.Attach("CHANGE", summary, RoleReasonFor|RoleOlderVersionOf, nil)
	edge.Symbolic = true
	event.Attach("SUBJ", person, RoleSubjectOf, ids)

	s.Len(event.Edges, 2)
	s.Equal("event-1", event.Edges[1].Source)
	s.Equal("Person", event.Edges[1].Kind)
	s.Equal(ids, event.Edges[1].AltIDs)

	// symbolic edges are skipped during traversal
	s.Empty(event.Children(RoleReasonFor))
	s.Equal([]Component{person}, event.Children(RoleSubjectOf))
	s.Same(person, event.Subject())

	found, ok := event.Edge("CHANGE")
	s.True(ok)
	s.Same(summary, found.Target)
	_, ok = event.Edge("CST")
	s.False(ok)
}

func (s *ModelsTestSuite) TestPersonChildren() {
	person := &Person{Container: Container{ID: "p"}}
	person.Attach("a", &Citizenship{CountryCode: "CA"}, RoleComponentOf, nil)
	person.Attach("b", &Employment{Status: StatusActive}, RoleComponentOf, nil)
	person.Attach("c", &PersonalRelationship{RelationshipKind: "MTH"}, RoleRepresentitiveOf, nil)
	person.Attach("d", &Citizenship{CountryCode: "US"}, RoleComponentOf, nil)

	cits := person.Citizenships()
	s.Require().Len(cits, 2)
	s.Equal("CA", cits[0].CountryCode)
	s.Equal("US", cits[1].CountryCode)
	s.Len(person.Employments(), 1)
	s.Equal("MTH", person.Relationships()[0].RelationshipKind)
}

func (s *ModelsTestSuite) TestRegistrationEventJSON() {
	event := &RegistrationEvent{
		Container:       Container{ID: "event-1"},
		EventClassifier: EventRegister,
		EventType:       CodeValue{Code: "REG"},
		Status:          StatusActive,
		Timestamp:       time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	event.Extensions.Add("RegistrationEventAltId", "Id", []DomainIdentifier{{Root: "1.2"}})
	event.Attach("CST", &RepositoryDevice{Name: "registry"}, RolePlaceOfRecord|RoleResponsibleFor, nil)

	data, err := json.Marshal(event)
	s.Require().NoError(err)

	var out map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &out))
	s.Equal("Active", out["status"])
	s.Equal("Register", out["eventClassifier"])
	edges := out["edges"].([]interface{})
	s.Equal("PlaceOfRecord|ResponsibleFor", edges[0].(map[string]interface{})["roles"])
	ext := out["extensions"].([]interface{})
	s.Equal("RegistrationEventAltId", ext[0].(map[string]interface{})["name"])
}

func TestRoleType(t *testing.T) {
	tests := []struct {
		name string
		role RoleType
		want string
	}{
		{"single", RoleSubjectOf, "SubjectOf"},
		{"combined", RoleReasonFor | RoleOlderVersionOf, "ReasonFor|OlderVersionOf"},
		{"none", 0, ""},
		{"unknown bit", RoleFilterOf | 1<<20, "FilterOf|0x100000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.String())
		})
	}

	roles := RolePlaceOfRecord | RoleResponsibleFor
	assert.True(t, roles.Has(RolePlaceOfRecord))
	assert.True(t, roles.Has(RolePlaceOfRecord|RoleResponsibleFor))
	assert.False(t, roles.Has(RoleSubjectOf|RolePlaceOfRecord))
	assert.False(t, roles.Has(0))
}

func TestExtendedAttributes(t *testing.T) {
	var ext ExtendedAttributes
	_, ok := ext.Get("CitizenshipIds", "Citizenship[CA]")
	assert.False(t, ok)

	ext.Add("CitizenshipIds", "Citizenship[CA]", "first")
	ext.Add("UsablePeriod", "TelecomAddresses[tel:555]", "period")
	ext.Add("CitizenshipIds", "Citizenship[CA]", "second")

	values, ok := ext.Get("CitizenshipIds", "Citizenship[CA]")
	require.True(t, ok)
	assert.Equal(t, []interface{}{"first", "second"}, values)
	assert.Equal(t, 2, ext.Len())
	assert.Len(t, ext.Named("UsablePeriod"), 1)
	assert.Equal(t, "CitizenshipIds", ext.All()[0].Name)
}

func TestParticipantClone(t *testing.T) {
	orig := &HealthcareParticipant{
		Classifier:           ParticipantPerson | ParticipantOrganization,
		AlternateIdentifiers: []DomainIdentifier{{Root: "1.2.3"}},
		LegalName:            &NameSet{Parts: []NamePart{{Type: NameGiven, Value: "registry"}}},
		PrimaryAddress:       &AddressSet{Parts: []AddressPart{{Type: AddressCity, Value: "Hamilton"}}},
		TelecomAddresses:     []TelecommunicationsAddress{{Value: "tel:555"}},
	}

	clone := orig.Clone()
	assert.Equal(t, orig, clone)

	clone.AlternateIdentifiers[0].Root = "changed"
	clone.LegalName.Parts[0].Value = "changed"
	clone.PrimaryAddress.Parts[0].Value = "changed"
	clone.TelecomAddresses[0].Value = "changed"

	assert.Equal(t, "1.2.3", orig.AlternateIdentifiers[0].Root)
	assert.Equal(t, "registry", orig.LegalName.Parts[0].Value)
	assert.Equal(t, "Hamilton", orig.PrimaryAddress.Parts[0].Value)
	assert.Equal(t, "tel:555", orig.TelecomAddresses[0].Value)
	assert.Equal(t, "Person|Organization", orig.Classifier.String())
}

func TestStatusTypeText(t *testing.T) {
	for status, name := range statusNames {
		text, err := status.MarshalText()
		assert.NoError(t, err)
		assert.Equal(t, name, string(text))

		var parsed StatusType
		assert.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, status, parsed)
	}

	var parsed StatusType
	assert.Error(t, parsed.UnmarshalText([]byte("Held")))
}

func TestDataTypes(t *testing.T) {
	assert.Equal(t, "1.2.3^abc", DomainIdentifier{Root: "1.2.3", Extension: "abc"}.Key())
	assert.Equal(t, "1.2.3", DomainIdentifier{Root: "1.2.3"}.Key())

	name := NameSet{Parts: []NamePart{
		{Type: NameGiven, Value: "John"},
		{Type: NameGiven, Value: "Jacob"},
		{Type: NameDelimiter, Value: ","},
		{Type: NameFamily, Value: "Smith"},
	}}
	assert.Equal(t, []string{"John", "Jacob"}, name.Values(NameGiven))
	assert.Equal(t, "John Jacob Smith", name.String())

	addr := AddressSet{Parts: []AddressPart{{Type: AddressCity, Value: "Toronto"}}}
	assert.Equal(t, "Toronto", addr.Value(AddressCity))
	assert.Empty(t, addr.Value(AddressState))

	low := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	var empty *TimestampSet
	assert.True(t, empty.IsEmpty())
	_, ok := empty.Start()
	assert.False(t, ok)

	ts := &TimestampSet{Low: &TimestampPart{Value: low, Precision: "Day"}}
	start, ok := ts.Start()
	assert.True(t, ok)
	assert.Equal(t, low, start)
	assert.False(t, ts.IsEmpty())
}

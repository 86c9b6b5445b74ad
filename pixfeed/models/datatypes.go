package models

import (
	"strings"
	"time"
)

// CodeValue is a coded concept qualified by its code system identifier.
type CodeValue struct {
	Code        string `json:"code"`
	CodeSystem  string `json:"codeSystem,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// DomainIdentifier is an identifier scoped by an assigning authority root.
type DomainIdentifier struct {
	Root                   string `json:"root"`
	Extension              string `json:"extension,omitempty"`
	AssigningAuthorityName string `json:"assigningAuthorityName,omitempty"`
}

// Key joins root and extension into the form used by extended attribute paths.
func (d DomainIdentifier) Key() string {
	if d.Extension == "" {
		return d.Root
	}
	return d.Root + "^" + d.Extension
}

type NamePartType string

const (
	NameGiven     NamePartType = "Given"
	NameFamily    NamePartType = "Family"
	NamePrefix    NamePartType = "Prefix"
	NameSuffix    NamePartType = "Suffix"
	NameDelimiter NamePartType = "Delimiter"
	NameTitle     NamePartType = "Title"
)

type NamePart struct {
	Type  NamePartType `json:"type,omitempty"`
	Value string       `json:"value"`
}

type NameUse string

const (
	NameUseLegal      NameUse = "Legal"
	NameUseOfficial   NameUse = "OfficialRecord"
	NameUseLicense    NameUse = "License"
	NameUsePseudonym  NameUse = "Pseudonym"
	NameUseArtist     NameUse = "Artist"
	NameUseIndigenous NameUse = "Indigenous"
	NameUseMaiden     NameUse = "MaidenName"
	NameUseSearch     NameUse = "Search"
)

type NameSet struct {
	Use   []NameUse  `json:"use,omitempty"`
	Parts []NamePart `json:"parts"`
}

// Values returns the values of the parts with the given type, in order.
func (n NameSet) Values(t NamePartType) []string {
	var out []string
	for _, p := range n.Parts {
		if p.Type == t {
			out = append(out, p.Value)
		}
	}
	return out
}

func (n NameSet) String() string {
	values := make([]string, 0, len(n.Parts))
	for _, p := range n.Parts {
		if p.Type != NameDelimiter {
			values = append(values, p.Value)
		}
	}
	return strings.Join(values, " ")
}

type AddressPartType string

const (
	AddressLine       AddressPartType = "AddressLine"
	AddressAdditional AddressPartType = "AdditionalLocator"
	AddressCity       AddressPartType = "City"
	AddressCounty     AddressPartType = "County"
	AddressState      AddressPartType = "State"
	AddressPostalCode AddressPartType = "PostalCode"
	AddressCountry    AddressPartType = "Country"
	AddressPOBox      AddressPartType = "PostBox"
	AddressStreet     AddressPartType = "StreetAddressLine"
	AddressPrecinct   AddressPartType = "Precinct"
)

type AddressPart struct {
	Type  AddressPartType `json:"type,omitempty"`
	Value string          `json:"value"`
}

type AddressUse string

const (
	AddressUseHome      AddressUse = "HomeAddress"
	AddressUsePrimary   AddressUse = "PrimaryHome"
	AddressUseVacation  AddressUse = "VacationHome"
	AddressUseWorkPlace AddressUse = "WorkPlace"
	AddressUseDirect    AddressUse = "Direct"
	AddressUsePublic    AddressUse = "Public"
	AddressUseBad       AddressUse = "BadAddress"
	AddressUsePhysical  AddressUse = "PhysicalVisit"
	AddressUsePostal    AddressUse = "PostalAddress"
	AddressUseTemporary AddressUse = "TemporaryAddress"
)

type AddressSet struct {
	Use   []AddressUse  `json:"use,omitempty"`
	Parts []AddressPart `json:"parts"`
}

// Value returns the first part with the given type.
func (a AddressSet) Value(t AddressPartType) string {
	for _, p := range a.Parts {
		if p.Type == t {
			return p.Value
		}
	}
	return ""
}

// TelecommunicationsAddress is a phone, email or URL. Use is the wire form of
// the use codes, space separated.
type TelecommunicationsAddress struct {
	Use   string `json:"use,omitempty"`
	Value string `json:"value"`
}

// TimestampPart is one point of a TimestampSet with its source precision.
type TimestampPart struct {
	Value     time.Time `json:"value"`
	Precision string    `json:"precision"`
}

// TimestampSet holds either a point in time or an interval. An interval
// without High is open-ended.
type TimestampSet struct {
	Value *TimestampPart `json:"value,omitempty"`
	Low   *TimestampPart `json:"low,omitempty"`
	High  *TimestampPart `json:"high,omitempty"`
}

func (t *TimestampSet) IsEmpty() bool {
	return t == nil || (t.Value == nil && t.Low == nil && t.High == nil)
}

// Start returns the point value, or the low bound for intervals.
func (t *TimestampSet) Start() (time.Time, bool) {
	switch {
	case t == nil:
		return time.Time{}, false
	case t.Value != nil:
		return t.Value.Value, true
	case t.Low != nil:
		return t.Low.Value, true
	}
	return time.Time{}, false
}

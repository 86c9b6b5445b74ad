package fhir

import (
	"strings"

	"github.com/CMSgov/pixfeed-app/pixfeed/models"

	r4Codes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/codes_go_proto"
	r4Datatypes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/datatypes_go_proto"
)

var nameUses = map[models.NameUse]r4Codes.NameUseCode_Value{
	models.NameUseLegal:     r4Codes.NameUseCode_OFFICIAL,
	models.NameUseOfficial:  r4Codes.NameUseCode_OFFICIAL,
	models.NameUsePseudonym: r4Codes.NameUseCode_NICKNAME,
	models.NameUseArtist:    r4Codes.NameUseCode_NICKNAME,
	models.NameUseMaiden:    r4Codes.NameUseCode_MAIDEN,
	models.NameUseLicense:   r4Codes.NameUseCode_USUAL,
}

func humanName(n models.NameSet) *r4Datatypes.HumanName {
	hn := &r4Datatypes.HumanName{}
	for _, use := range n.Use {
		if code, ok := nameUses[use]; ok {
			hn.Use = &r4Datatypes.HumanName_UseCode{Value: code}
			break
		}
	}

	var family []string
	for _, part := range n.Parts {
		switch part.Type {
		case models.NameGiven:
			hn.Given = append(hn.Given, &r4Datatypes.String{Value: part.Value})
		case models.NameFamily:
			family = append(family, part.Value)
		case models.NamePrefix, models.NameTitle:
			hn.Prefix = append(hn.Prefix, &r4Datatypes.String{Value: part.Value})
		case models.NameSuffix:
			hn.Suffix = append(hn.Suffix, &r4Datatypes.String{Value: part.Value})
		}
	}
	if len(family) > 0 {
		hn.Family = &r4Datatypes.String{Value: strings.Join(family, " ")}
	}
	hn.Text = &r4Datatypes.String{Value: n.String()}
	return hn
}

var addressUses = map[models.AddressUse]r4Codes.AddressUseCode_Value{
	models.AddressUseHome:      r4Codes.AddressUseCode_HOME,
	models.AddressUsePrimary:   r4Codes.AddressUseCode_HOME,
	models.AddressUseVacation:  r4Codes.AddressUseCode_TEMP,
	models.AddressUseTemporary: r4Codes.AddressUseCode_TEMP,
	models.AddressUseWorkPlace: r4Codes.AddressUseCode_WORK,
	models.AddressUseDirect:    r4Codes.AddressUseCode_WORK,
	models.AddressUseBad:       r4Codes.AddressUseCode_OLD,
}

func address(a models.AddressSet) *r4Datatypes.Address {
	out := &r4Datatypes.Address{}
	for _, use := range a.Use {
		if code, ok := addressUses[use]; ok {
			out.Use = &r4Datatypes.Address_UseCode{Value: code}
			break
		}
	}

	for _, part := range a.Parts {
		value := &r4Datatypes.String{Value: part.Value}
		switch part.Type {
		case models.AddressLine, models.AddressStreet, models.AddressAdditional, models.AddressPOBox:
			out.Line = append(out.Line, value)
		case models.AddressCity:
			out.City = value
		case models.AddressCounty:
			out.District = value
		case models.AddressState:
			out.State = value
		case models.AddressPostalCode:
			out.PostalCode = value
		case models.AddressCountry:
			out.Country = value
		}
	}
	return out
}

var telecomSchemes = []struct {
	prefix string
	system r4Codes.ContactPointSystemCode_Value
}{
	{"tel:", r4Codes.ContactPointSystemCode_PHONE},
	{"fax:", r4Codes.ContactPointSystemCode_FAX},
	{"mailto:", r4Codes.ContactPointSystemCode_EMAIL},
	{"http:", r4Codes.ContactPointSystemCode_URL},
	{"https:", r4Codes.ContactPointSystemCode_URL},
}

var telecomUses = map[string]r4Codes.ContactPointUseCode_Value{
	"H":   r4Codes.ContactPointUseCode_HOME,
	"HP":  r4Codes.ContactPointUseCode_HOME,
	"HV":  r4Codes.ContactPointUseCode_HOME,
	"WP":  r4Codes.ContactPointUseCode_WORK,
	"MC":  r4Codes.ContactPointUseCode_MOBILE,
	"PG":  r4Codes.ContactPointUseCode_MOBILE,
	"TMP": r4Codes.ContactPointUseCode_TEMP,
}

func contactPoints(tels []models.TelecommunicationsAddress) []*r4Datatypes.ContactPoint {
	var out []*r4Datatypes.ContactPoint
	for _, tel := range tels {
		cp := &r4Datatypes.ContactPoint{Value: &r4Datatypes.String{Value: tel.Value}}
		for _, scheme := range telecomSchemes {
			if strings.HasPrefix(strings.ToLower(tel.Value), scheme.prefix) {
				cp.System = &r4Datatypes.ContactPoint_SystemCode{Value: scheme.system}
				if scheme.system != r4Codes.ContactPointSystemCode_URL {
					cp.Value.Value = tel.Value[len(scheme.prefix):]
				}
				break
			}
		}
		for _, use := range strings.Fields(tel.Use) {
			if code, ok := telecomUses[strings.ToUpper(use)]; ok {
				cp.Use = &r4Datatypes.ContactPoint_UseCode{Value: code}
				break
			}
		}
		out = append(out, cp)
	}
	return out
}

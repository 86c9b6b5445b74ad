package component

import (
	"strings"
	"time"

	"github.com/CMSgov/pixfeed-app/pixfeed/message"
	"github.com/CMSgov/pixfeed-app/pixfeed/models"
)

var nameUses = map[string]models.NameUse{
	"L":    models.NameUseLegal,
	"OR":   models.NameUseOfficial,
	"C":    models.NameUseLicense,
	"P":    models.NameUsePseudonym,
	"A":    models.NameUseArtist,
	"I":    models.NameUseIndigenous,
	"M":    models.NameUseMaiden,
	"SRCH": models.NameUseSearch,
}

var namePartTypes = map[string]models.NamePartType{
	"GIV":   models.NameGiven,
	"FAM":   models.NameFamily,
	"PFX":   models.NamePrefix,
	"SFX":   models.NameSuffix,
	"DEL":   models.NameDelimiter,
	"TITLE": models.NameTitle,
}

var addressUses = map[string]models.AddressUse{
	"H":    models.AddressUseHome,
	"HP":   models.AddressUsePrimary,
	"HV":   models.AddressUseVacation,
	"WP":   models.AddressUseWorkPlace,
	"DIR":  models.AddressUseDirect,
	"PUB":  models.AddressUsePublic,
	"BAD":  models.AddressUseBad,
	"PHYS": models.AddressUsePhysical,
	"PST":  models.AddressUsePostal,
	"TMP":  models.AddressUseTemporary,
}

var addressPartTypes = map[string]models.AddressPartType{
	"AL":   models.AddressLine,
	"DAL":  models.AddressLine,
	"ADL":  models.AddressAdditional,
	"UNID": models.AddressAdditional,
	"CTY":  models.AddressCity,
	"CPA":  models.AddressCounty,
	"STA":  models.AddressState,
	"ZIP":  models.AddressPostalCode,
	"CNT":  models.AddressCountry,
	"POB":  models.AddressPOBox,
	"SAL":  models.AddressStreet,
	"PRE":  models.AddressPrecinct,
	"CEN":  models.AddressPrecinct,
}

// Use and part codes are matched upper case.
const (
	useLegal     = "L"
	useWorkPlace = "WP"
	useDirect    = "DIR"
)

func codeValue(cd *message.CD) *models.CodeValue {
	if !cd.Present() {
		return nil
	}
	return &models.CodeValue{Code: cd.Code, CodeSystem: cd.CodeSystem, DisplayName: cd.DisplayName}
}

func identifier(ii message.II) models.DomainIdentifier {
	return models.DomainIdentifier{Root: ii.Root, Extension: ii.Extension, AssigningAuthorityName: ii.AssigningAuthorityName}
}

// identifiers converts ids, dropping null-flavored entries.
func identifiers(ids []message.II) []models.DomainIdentifier {
	var out []models.DomainIdentifier
	for _, ii := range ids {
		if !ii.IsNull() {
			out = append(out, identifier(ii))
		}
	}
	return out
}

func nameSet(en message.EN) models.NameSet {
	var n models.NameSet
	for _, u := range en.Use {
		if use, ok := nameUses[strings.ToUpper(u)]; ok {
			n.Use = append(n.Use, use)
		}
	}
	n.Parts = make([]models.NamePart, 0, len(en.Parts))
	for _, p := range en.Parts {
		n.Parts = append(n.Parts, models.NamePart{Type: namePartTypes[strings.ToUpper(p.Type)], Value: p.Value})
	}
	return n
}

// nameSets converts names, dropping null-flavored entries.
func nameSets(names []message.EN) []models.NameSet {
	var out []models.NameSet
	for _, en := range names {
		if !en.IsNull() {
			out = append(out, nameSet(en))
		}
	}
	return out
}

// preferredName returns the name carrying use, else the first name.
func preferredName(names []message.EN, use string) *models.NameSet {
	var first *message.EN
	for i := range names {
		if names[i].IsNull() {
			continue
		}
		if names[i].HasUse(use) {
			n := nameSet(names[i])
			return &n
		}
		if first == nil {
			first = &names[i]
		}
	}
	if first == nil {
		return nil
	}
	n := nameSet(*first)
	return &n
}

func addressSet(ad message.AD) models.AddressSet {
	var a models.AddressSet
	for _, u := range ad.Use {
		if use, ok := addressUses[strings.ToUpper(u)]; ok {
			a.Use = append(a.Use, use)
		}
	}
	a.Parts = make([]models.AddressPart, 0, len(ad.Parts))
	for _, p := range ad.Parts {
		a.Parts = append(a.Parts, models.AddressPart{Type: addressPartTypes[strings.ToUpper(p.Type)], Value: p.Value})
	}
	return a
}

func addressSets(addrs []message.AD) []models.AddressSet {
	var out []models.AddressSet
	for _, ad := range addrs {
		if !ad.IsNull() {
			out = append(out, addressSet(ad))
		}
	}
	return out
}

// preferredAddress returns the address carrying use, else the first address.
func preferredAddress(addrs []message.AD, use string) *models.AddressSet {
	var first *message.AD
	for i := range addrs {
		if addrs[i].IsNull() {
			continue
		}
		if addrs[i].HasUse(use) {
			a := addressSet(addrs[i])
			return &a
		}
		if first == nil {
			first = &addrs[i]
		}
	}
	if first == nil {
		return nil
	}
	a := addressSet(*first)
	return &a
}

func telecom(tel message.TEL) models.TelecommunicationsAddress {
	return models.TelecommunicationsAddress{Use: strings.Join(tel.Use, " "), Value: tel.Value}
}

func telecoms(tels []message.TEL) []models.TelecommunicationsAddress {
	var out []models.TelecommunicationsAddress
	for _, tel := range tels {
		if !tel.IsNull() {
			out = append(out, telecom(tel))
		}
	}
	return out
}

func timestampPart(ts *message.TS) *models.TimestampPart {
	if !ts.Present() {
		return nil
	}
	return &models.TimestampPart{Value: ts.Value, Precision: string(ts.Precision)}
}

func timestampSet(ivl *message.IVL_TS) *models.TimestampSet {
	if !ivl.Present() {
		return nil
	}
	return &models.TimestampSet{
		Value: timestampPart(ivl.Value),
		Low:   timestampPart(ivl.Low),
		High:  timestampPart(ivl.High),
	}
}

// openInterval starts at now and has no upper bound.
func openInterval(now time.Time) *models.TimestampSet {
	return &models.TimestampSet{
		Low: &models.TimestampPart{Value: now, Precision: string(message.PrecisionSecond)},
	}
}

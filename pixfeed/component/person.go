package component

import (
	"fmt"

	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
	"github.com/CMSgov/pixfeed-app/pixfeed/message"
	"github.com/CMSgov/pixfeed-app/pixfeed/models"
)

func (b *builder) identifiedPerson(ident *message.Person) {
	p := b.person
	p.Names = nameSets(ident.Names)

	for _, tel := range ident.Telecom {
		if tel.IsNull() {
			continue
		}
		p.TelecomAddresses = append(p.TelecomAddresses, telecom(tel))
		// The canonical telecom has no usable period.
		if period := timestampSet(tel.UseablePeriod); period != nil {
			p.Extensions.Add(constants.ExtUsablePeriod, fmt.Sprintf("TelecomAddresses[%s]", tel.Value), *period)
		}
	}

	if ident.AdministrativeGenderCode.Present() {
		p.GenderCode = ident.AdministrativeGenderCode.Code
	}
	p.BirthTime = timestampPart(ident.BirthTime)

	if ident.DeceasedInd != nil {
		b.diags.NotImplemented(diagnostics.DeceasedIndNotSupported, "DeceasedInd")
	}
	p.DeceasedTime = timestampPart(ident.DeceasedTime)

	if ident.MultipleBirthInd != nil {
		b.diags.NotImplemented(diagnostics.MultipleBirthIndUnsupported, "MultipleBirthInd")
	}
	p.BirthOrder = ident.MultipleBirthOrderNumber

	p.Addresses = addressSets(ident.Addr)
}

// otherIdentifiers keeps the first id of each group. The remaining ids and the
// scoping organization are extended attributes of that first id.
func (b *builder) otherIdentifiers(groups []message.OtherIDs) {
	for _, group := range groups {
		if group.IsNull() {
			continue
		}
		ids := identifiers(group.IDs)
		if len(ids) == 0 {
			continue
		}

		primary := ids[0]
		b.person.OtherIdentifiers = append(b.person.OtherIdentifiers, models.OtherIdentifier{Identifier: primary})

		path := fmt.Sprintf("OtherIdentifiers[%s]", primary.Key())
		ext := &b.person.Extensions
		for _, extra := range ids[1:] {
			ext.Add(constants.ExtAssigningOrgExtraID, path, extra)
		}

		org := group.ScopingOrganization
		if org == nil || org.IsNull() {
			continue
		}
		for _, id := range identifiers(org.IDs) {
			ext.Add(constants.ExtAssigningOrgID, path, id)
		}
		for _, name := range nameSets(org.Names) {
			ext.Add(constants.ExtAssigningOrgName, path, name.String())
		}
		if cv := codeValue(org.Code); cv != nil {
			ext.Add(constants.ExtAssigningOrgCode, path, *cv)
		}
	}
}

// languages assumes ISO 639-3 when a language code carries no system.
func (b *builder) languages(entries []message.LanguageCommunication) {
	for _, entry := range entries {
		if entry.IsNull() || !entry.LanguageCode.Present() {
			continue
		}

		code := *codeValue(entry.LanguageCode)
		if code.CodeSystem == "" {
			code.CodeSystem = b.opts.Registrar.GetSystemID(constants.ISO639_3)
		}

		pl := models.PersonLanguage{Type: models.LanguageWrittenAndSpoken}
		if entry.PreferenceInd != nil && *entry.PreferenceInd {
			pl.Type = models.LanguageFluency
		}
		if lang, ok := b.codes.Translate(b.diags, code, LanguageDomain); ok {
			pl.Language = lang
		}
		b.person.Languages = append(b.person.Languages, pl)
	}
}

// relationships skips entries that do not name both a kind and a holder.
func (b *builder) relationships(entries []message.PersonalRelationship) {
	for _, entry := range entries {
		if entry.IsNull() {
			continue
		}
		holder := entry.Holder
		if holder == nil || holder.IsNull() || !entry.Code.Present() {
			b.diags.RequiredMissing(diagnostics.RelationshipIncomplete, "")
			continue
		}

		rel := &models.PersonalRelationship{
			RelationshipKind:     entry.Code.Code,
			AlternateIdentifiers: identifiers(holder.IDs),
			LegalName:            preferredName(holder.Names, useLegal),
			Names:                nameSets(holder.Names),
			TelecomAddresses:     telecoms(holder.Telecom),
		}
		if addrs := addressSets(holder.Addr); len(addrs) > 0 {
			rel.Address = &addrs[0]
		}
		b.person.Attach(b.newID(), rel, models.RoleRepresentitiveOf, nil)
	}
}

func (b *builder) birthplace(bp *message.BirthPlace) {
	if bp == nil || bp.IsNull() || bp.Birthplace == nil || bp.Birthplace.IsNull() {
		return
	}
	place := bp.Birthplace

	loc := &models.ServiceDeliveryLocation{
		AlternateIdentifiers: identifiers(place.IDs),
		LocationType:         codeValue(place.Code),
	}
	if place.Addr != nil && !place.Addr.IsNull() {
		addr := addressSet(*place.Addr)
		loc.Address = &addr
	}
	if names := nameSets(place.Names); len(names) > 0 {
		loc.Name = names[0].String()
	}
	b.person.BirthPlace = loc
}

// codedTraits copies race, ethnicity, marital status and religion.
func (b *builder) codedTraits(ident *message.Person) {
	for i := range ident.RaceCodes {
		if cv := codeValue(&ident.RaceCodes[i]); cv != nil {
			b.person.Race = append(b.person.Race, *cv)
		}
	}
	for i := range ident.EthnicGroupCodes {
		if cv := codeValue(&ident.EthnicGroupCodes[i]); cv != nil {
			b.person.Extensions.Add(constants.ExtEthnicGroupCode, constants.ExtEthnicGroupCode, *cv)
		}
	}
	b.person.MaritalStatus = codeValue(ident.MaritalStatusCode)
	b.person.ReligionCode = codeValue(ident.ReligiousAffiliationCode)
}

// citizenships narrows each nation code to ISO 3166-1. Citizenship ids are
// keyed by the resolved country code; entries sharing a country share a key.
func (b *builder) citizenships(entries []message.Citizen) {
	for _, entry := range entries {
		if entry.IsNull() {
			continue
		}

		c := &models.Citizenship{EffectiveTime: timestampSet(entry.EffectiveTime)}
		nation := entry.PoliticalNation
		if nation == nil || nation.IsNull() || !nation.Code.Present() {
			b.diags.MandatoryMissing(diagnostics.NationCodeMissing, "")
		} else {
			if code, ok := b.codes.Translate(b.diags, *codeValue(nation.Code), CountryDomain); ok {
				c.CountryCode = code
			}
			if nation.Name != nil && !nation.Name.IsNull() && len(nation.Name.Parts) > 0 {
				c.CountryName = nation.Name.Parts[0].Value
			}
		}

		if ids := identifiers(entry.IDs); len(ids) > 0 {
			b.person.Extensions.Add(constants.ExtCitizenshipIDs, fmt.Sprintf("Citizenship[%s]", c.CountryCode), ids)
		}
		b.person.Attach(b.newID(), c, models.RoleComponentOf, nil)
	}
}

// employments maps the employment status through the role status vocabulary.
func (b *builder) employments(entries []message.Employee) {
	for _, entry := range entries {
		if entry.IsNull() {
			continue
		}

		e := &models.Employment{
			Occupation:    codeValue(entry.OccupationCode),
			EffectiveTime: timestampSet(entry.EffectiveTime),
		}
		if entry.StatusCode.Present() {
			e.Status = MapRoleStatus(b.diags, entry.StatusCode)
		}
		b.person.Attach(b.newID(), e, models.RoleComponentOf, nil)
	}
}

// Package gen produces synthetic registration control-acts for load and
// property tests.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/CMSgov/pixfeed-app/pixfeed/message"
)

var (
	minBirthDate = time.Date(1920, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxBirthDate = time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Codes the default terminology chain can always narrow.
var (
	languages = []string{"eng", "fra", "spa", "deu", "ita", "por"}
	nations   = []string{"CAN", "USA", "MEX", "GBR", "FRA", "DEU", "ITA", "PRT"}
	relations = []string{"MTH", "FTH", "SPS", "GRD", "SIB"}
)

const (
	registryRoot = "1.3.6.1.4.1.33349.3.1.2.99121"
	clerkRoot    = "1.3.6.1.4.1.33349.3.1.3.12"
	deviceRoot   = "1.3.6.1.4.1.33349.3.1.5.9"
	healthRoot   = "2.16.840.1.113883.4.59"

	languageSystem = "1.0.639.3"
	nationSystem   = "1.0.3166.2"
)

type weight float64

const (
	half    weight = 0.5
	quarter weight = 0.25
)

func chance(w weight) bool {
	return float64(w) >= randomdata.Decimal(1)
}

// ControlAct returns a structurally valid add-person control-act. The author
// and registration times agree, so the transform produces an event.
func ControlAct(now time.Time) *message.ControlActProcess {
	effective := ts(now, "20060102150405")

	act := &message.ControlActProcess{
		Code:          message.CD{Code: constants.RegistrationTriggerEvent, CodeSystem: "2.16.840.1.113883.1.6"},
		LanguageCode:  &message.CS{Code: randomdata.StringSample(languages...), CodeSystem: languageSystem},
		EffectiveTime: &message.IVL_TS{Value: effective},
		Subjects: []message.Subject{{
			RegistrationEvent: &message.RegistrationEvent{
				IDs:           []message.II{{Root: registryRoot, Extension: "REG-" + randomdata.Alphanumeric(8)}},
				StatusCode:    &message.CS{Code: "active"},
				EffectiveTime: &message.IVL_TS{Value: effective},
				Author:        author(effective),
				Custodian:     custodian(),
				Subject1:      &message.Subject1{RegisteredRole: registeredRole()},
			},
		}},
	}
	if chance(quarter) {
		act.Subjects[0].RegistrationEvent.ReplacementOf = []message.ReplacementOf{{
			PriorRegistration: &message.PriorRegistration{Subject1: &message.PriorSubject{
				PriorRegisteredRole: &message.PriorRegisteredRole{IDs: []message.II{{Root: registryRoot, Extension: "PT-" + randomdata.Alphanumeric(8)}}},
			}},
		}}
	}
	return act
}

func author(at *message.TS) *message.Author {
	return &message.Author{
		Time: &message.IVL_TS{Value: at},
		AssignedEntity: &message.AssignedEntity{
			IDs:     []message.II{{Root: clerkRoot, Extension: randomdata.StringNumberExt(1, "", 6)}},
			Addr:    []message.AD{address("WP")},
			Telecom: []message.TEL{{Value: "tel:" + randomdata.PhoneNumber(), Use: []string{"WP"}}},
			Principal: message.PrincipalChoice{Principal: &message.PersonPrincipal{
				Names: []message.EN{name(randomdata.RandomGender)},
			}},
		},
	}
}

func custodian() *message.Custodian {
	return &message.Custodian{AssignedEntity: &message.AssignedEntity{
		IDs: []message.II{{Root: deviceRoot}},
		Principal: message.PrincipalChoice{Principal: &message.Device{
			IDs:          []message.II{{Root: deviceRoot, Extension: "REGISTRY"}},
			SoftwareName: "Client Registry",
		}},
	}}
}

func registeredRole() *message.RegisteredRole {
	gender, code := randomdata.Male, "M"
	if randomdata.Boolean() {
		gender, code = randomdata.Female, "F"
	}
	birth := randomDate(minBirthDate, maxBirthDate)

	person := &message.Person{
		Names:                    []message.EN{name(gender)},
		Telecom:                  []message.TEL{{Value: "mailto:" + randomdata.Email()}},
		AdministrativeGenderCode: &message.CE{Code: code, CodeSystem: "2.16.840.1.113883.5.1"},
		BirthTime:                ts(birth, "20060102"),
		Addr:                     []message.AD{address("H")},
		AsOtherIDs: []message.OtherIDs{{
			IDs: []message.II{{Root: healthRoot, Extension: randomdata.StringNumberExt(1, "", 10)}},
		}},
		LanguageCommunication: []message.LanguageCommunication{{
			LanguageCode:  &message.CE{Code: randomdata.StringSample(languages...)},
			PreferenceInd: boolPtr(true),
		}},
		AsCitizen: []message.Citizen{{
			PoliticalNation: &message.Nation{Code: &message.CD{Code: randomdata.StringSample(nations...), CodeSystem: nationSystem}},
		}},
	}
	if chance(half) {
		person.PersonalRelationships = []message.PersonalRelationship{{
			Code: &message.CE{Code: randomdata.StringSample(relations...), CodeSystem: "2.16.840.1.113883.5.111"},
			Holder: &message.RelationshipHolder{
				Names:   []message.EN{name(randomdata.RandomGender)},
				Telecom: []message.TEL{{Value: "tel:" + randomdata.PhoneNumber()}},
			},
		}}
	}

	return &message.RegisteredRole{
		IDs:           []message.II{{Root: registryRoot, Extension: "PT-" + randomdata.Alphanumeric(8)}},
		StatusCode:    &message.CS{Code: "active"},
		EffectiveTime: &message.IVL_TS{Low: ts(birth, "20060102")},
		Person:        person,
	}
}

func name(gender int) message.EN {
	return message.EN{
		Use: []string{"L"},
		Parts: []message.ENXP{
			{Type: "GIV", Value: randomdata.FirstName(gender)},
			{Type: "FAM", Value: randomdata.LastName()},
		},
	}
}

func address(use string) message.AD {
	return message.AD{
		Use: []string{use},
		Parts: []message.ADXP{
			{Type: "AL", Value: randomdata.Street()},
			{Type: "CTY", Value: randomdata.City()},
			{Type: "STA", Value: randomdata.State(randomdata.Small)},
			{Type: "ZIP", Value: randomdata.PostalCode("US")},
		},
	}
}

func ts(t time.Time, layout string) *message.TS {
	parsed, err := message.ParseTS(t.UTC().Format(layout))
	// The layouts above are all accepted by ParseTS.
	if err != nil {
		panic("cannot build synthetic timestamp " + err.Error())
	}
	return &parsed
}

func randomDate(min, max time.Time) time.Time {
	d := randomdata.FullDateInRange(min.Format(randomdata.DateInputLayout),
		max.Format(randomdata.DateInputLayout))
	t, err := time.Parse(randomdata.DateOutputLayout, d)
	if err != nil {
		panic("cannot parse synthetic date " + err.Error())
	}
	return t
}

func boolPtr(b bool) *bool {
	return &b
}

// WriteFiles writes count control-acts into dir as 0001.json, 0002.json, ...
// and returns the paths written.
func WriteFiles(dir string, count int, now time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", dir)
	}

	paths := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%04d.json", i))
		if err := writeFile(path, ControlAct(now)); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	logrus.Debugf("Generated %d control acts in %s", count, dir)
	return paths, nil
}

func writeFile(path string, act *message.ControlActProcess) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logrus.Warnf("Failed to close file %s", err.Error())
		}
	}()

	return message.Encode(file, act)
}

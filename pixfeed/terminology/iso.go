package terminology

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
)

// ISOTranslator narrows ISO 639-3 language codes to ISO 639-1 and ISO 3166
// country codes (alpha-3, numeric or subdivision) to ISO 3166-1 alpha-2 using
// the CLDR tables shipped with golang.org/x/text.
type ISOTranslator struct {
	iso6391  string
	iso6393  string
	iso31661 string
	iso31662 string
}

func NewISOTranslator(systems SystemResolver) *ISOTranslator {
	return &ISOTranslator{
		iso6391:  systems.GetSystemID(constants.ISO639_1),
		iso6393:  systems.GetSystemID(constants.ISO639_3),
		iso31661: systems.GetSystemID(constants.ISO3166_1),
		iso31662: systems.GetSystemID(constants.ISO3166_2),
	}
}

func (t *ISOTranslator) Translate(code, sourceSystem, targetSystem string) (string, bool) {
	if code == "" {
		return "", false
	}

	switch {
	case sourceSystem == targetSystem:
		return code, true
	case sourceSystem == t.iso6393 && targetSystem == t.iso6391:
		return languageAlpha2(code)
	case sourceSystem == t.iso31662 && targetSystem == t.iso31661:
		return countryAlpha2(code)
	}
	return "", false
}

func languageAlpha2(code string) (string, bool) {
	base, err := language.ParseBase(code)
	if err != nil {
		return "", false
	}
	// String yields the shortest form; languages without a 639-1 code stay at three letters.
	if s := base.String(); len(s) == 2 {
		return s, true
	}
	return "", false
}

func countryAlpha2(code string) (string, bool) {
	if i := strings.IndexByte(code, '-'); i > 0 {
		code = code[:i]
	}
	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return "", false
	}
	return region.String(), true
}

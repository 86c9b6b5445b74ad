package component

import (
	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
	"github.com/CMSgov/pixfeed-app/pixfeed/models"
	"github.com/CMSgov/pixfeed-app/pixfeed/terminology"
)

// Registrar resolves code-system names and jurisdiction defaults.
type Registrar interface {
	terminology.SystemResolver
	GetDefaultLanguage() string
}

// Domain is a pair of code systems for one kind of coded value. Wide codes are
// translated to Narrow; Narrow codes are kept as they are.
type Domain struct {
	Wide        string
	Narrow      string
	Unsupported diagnostics.Code
	Failed      diagnostics.Code
}

var (
	LanguageDomain = Domain{
		Wide:        constants.ISO639_3,
		Narrow:      constants.ISO639_1,
		Unsupported: diagnostics.LanguageSystemUnsupported,
		Failed:      diagnostics.LanguageTranslationFailed,
	}
	CountryDomain = Domain{
		Wide:        constants.ISO3166_2,
		Narrow:      constants.ISO3166_1,
		Unsupported: diagnostics.NationSystemUnsupported,
		Failed:      diagnostics.NationTranslationFailed,
	}
)

// CodeTranslator validates a coded value against a Domain and narrows it.
type CodeTranslator struct {
	Translator terminology.Translator
	Registrar  Registrar
}

// Translate returns the code to store. A code from neither system is reported
// and returned raw. A failed translation is reported and ok is false, leaving
// the target field unset.
func (t CodeTranslator) Translate(diags *diagnostics.Collector, code models.CodeValue, d Domain) (string, bool) {
	wide := t.Registrar.GetSystemID(d.Wide)
	narrow := t.Registrar.GetSystemID(d.Narrow)

	if code.CodeSystem != wide && code.CodeSystem != narrow {
		diags.Vocabulary(d.Unsupported, code.CodeSystem)
	}

	if code.CodeSystem == wide {
		translated, ok := t.Translator.Translate(code.Code, wide, narrow)
		if !ok {
			diags.Vocabulary(d.Failed, code.Code)
			return "", false
		}
		return translated, true
	}

	return code.Code, true
}

// Package terminology translates coded values between code systems.
package terminology

import (
	"github.com/sirupsen/logrus"

	"github.com/CMSgov/pixfeed-app/log"
)

// Translator maps a code from one code system to another. The boolean is false
// when no equivalent exists or the lookup failed.
type Translator interface {
	Translate(code, sourceSystem, targetSystem string) (string, bool)
}

// SystemResolver resolves code-system names to identifiers.
type SystemResolver interface {
	GetSystemID(name string) string
}

// Func adapts a function to the Translator interface.
type Func func(code, sourceSystem, targetSystem string) (string, bool)

func (f Func) Translate(code, sourceSystem, targetSystem string) (string, bool) {
	return f(code, sourceSystem, targetSystem)
}

// Chain asks each translator in order and returns the first match.
type Chain []Translator

func (c Chain) Translate(code, sourceSystem, targetSystem string) (string, bool) {
	for _, t := range c {
		if t == nil {
			continue
		}
		if result, ok := t.Translate(code, sourceSystem, targetSystem); ok {
			return result, true
		}
	}
	log.Terminology.WithFields(logrus.Fields{
		"code":          code,
		"source_system": sourceSystem,
		"target_system": targetSystem,
	}).Debug("No translation found")
	return "", false
}

// Package registrar resolves code-system names to their identifiers and
// supplies jurisdiction defaults such as the default language.
package registrar

import (
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/CMSgov/pixfeed-app/conf"
	"github.com/CMSgov/pixfeed-app/log"
	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
)

// Well known code systems. A registry file may override any of them.
var defaultSystems = map[string]string{
	constants.ISO639_1:  "1.0.639.1",
	constants.ISO639_3:  "1.0.639.3",
	constants.ISO3166_1: "1.0.3166.1",
	constants.ISO3166_2: "1.0.3166.2",
}

type Config struct {
	RegistryFile    string `conf:"PIXFEED_REGISTRY_FILE"`
	DefaultLanguage string `conf:"PIXFEED_DEFAULT_LANGUAGE" conf_default:"en"`
}

// Registry is read-only once built and safe for concurrent use.
type Registry struct {
	systems         map[string]string
	defaultLanguage string
}

type registryFile struct {
	DefaultLanguage string       `toml:"default_language" validate:"omitempty,len=2,alpha"`
	Systems         []systemFile `toml:"system" validate:"dive"`
}

type systemFile struct {
	Name string `toml:"name" validate:"required"`
	OID  string `toml:"oid" validate:"required,oid"`
}

var oidPattern = regexp.MustCompile(`^[0-2](\.(0|[1-9][0-9]*))+$`)

var validate = func() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("oid", func(fl validator.FieldLevel) bool {
		return oidPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}()

// Default returns a registry holding the built-in code systems.
func Default(defaultLanguage string) *Registry {
	systems := make(map[string]string, len(defaultSystems))
	for k, v := range defaultSystems {
		systems[k] = v
	}
	return &Registry{systems: systems, defaultLanguage: defaultLanguage}
}

// Load reads a TOML registry file and layers it over the built-in systems.
func Load(path, defaultLanguage string) (*Registry, error) {
	var f registryFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, errors.Wrapf(err, "failed to read registry file %s", path)
	}
	if err := validate.Struct(f); err != nil {
		return nil, errors.Wrapf(err, "invalid registry file %s", path)
	}

	r := Default(defaultLanguage)
	if f.DefaultLanguage != "" {
		r.defaultLanguage = f.DefaultLanguage
	}
	for _, s := range f.Systems {
		r.systems[s.Name] = s.OID
	}
	return r, nil
}

// LoadConfig builds the registry described by the environment.
func LoadConfig() (*Registry, error) {
	var cfg Config
	if err := conf.Checkout(&cfg); err != nil {
		return nil, err
	}

	if cfg.RegistryFile == "" {
		log.CLI.Info("No registry file configured, using built-in code systems.")
		return Default(cfg.DefaultLanguage), nil
	}

	r, err := Load(cfg.RegistryFile, cfg.DefaultLanguage)
	if err != nil {
		return nil, err
	}
	log.CLI.Infof("Loaded %d code systems from %s", len(r.systems), cfg.RegistryFile)
	return r, nil
}

// GetSystemID returns the identifier of the named code system, or "" when the
// name is not registered.
func (r *Registry) GetSystemID(name string) string {
	return r.systems[name]
}

func (r *Registry) GetDefaultLanguage() string {
	return r.defaultLanguage
}

package conf

/*
   conf wraps viper for the pixfeed app. Values are resolved in this order:

   1. An env-format file named local.env found in PIXFEED_CONF_DIR or in the
   shared_files location used by the containers.
   2. The process environment, for anything the file does not define.

   The file is read once at package init and treated as immutable afterwards,
   except through SetEnv/UnsetEnv which exist for tests.
*/

import (
	"os"
	"reflect"
	"testing"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Only reachable through GetEnv, LookupEnv, SetEnv and Checkout.
var envVars *viper.Viper

const (
	configgood    uint8 = 0
	configbad     uint8 = 1
	noconfigfound uint8 = 2
)

var state = configgood

const (
	tagKey     = "conf"
	tagDefault = "conf_default"
)

func setup(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("local")
	v.SetConfigType("env")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		state = configbad
	}

	return v
}

func init() {
	locations := []string{
		os.Getenv("PIXFEED_CONF_DIR"),
		"/go/src/github.com/CMSgov/pixfeed-app/shared_files/decrypted",
	}

	if success, loc := findEnv(locations); success {
		envVars = setup(loc)
	} else {
		state = noconfigfound
	}
}

// findEnv returns the first location holding a local.env file.
func findEnv(location []string) (bool, string) {
	if len(location) == 0 {
		return false, ""
	}

	if location[0] != "" {
		if _, err := os.Stat(location[0] + "/local.env"); err == nil {
			return true, location[0]
		}
	}

	return findEnv(location[1:])
}

// GetEnv retrieves the value stored in conf, falling back to the environment.
// An empty string is returned when the key is unknown to both.
func GetEnv(key string) string {
	value, _ := LookupEnv(key)
	return value
}

// LookupEnv augments os.LookupEnv to look in the config file first.
func LookupEnv(key string) (string, bool) {
	if state == configgood {
		if value := envVars.GetString(key); value != "" {
			return value, true
		}

		if v, exist := os.LookupEnv(key); exist {
			// Cache it so later lookups skip the OS call.
			envVars.Set(key, v)
			return v, true
		}

		return "", false
	}

	return os.LookupEnv(key)
}

// SetEnv adds a key value pair into conf. The *testing.T parameter keeps it
// out of production call paths.
func SetEnv(protect *testing.T, key string, value string) error {
	if state == configgood {
		envVars.Set(key, value)
		return nil
	}

	return os.Setenv(key, value)
}

// UnsetEnv removes a key from conf and the environment.
func UnsetEnv(protect *testing.T, key string) error {
	if state == configgood {
		envVars.Set(key, "")
	}

	return os.Unsetenv(key)
}

// Checkout fills the struct pointed to by v. Each exported field tagged with
// `conf:"KEY"` takes the value of KEY; `conf_default:"..."` supplies the value
// when KEY is unset. Values are weakly typed so "10" populates an int field.
func Checkout(v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return errors.Errorf("conf: Checkout requires a pointer to a struct, got %T", v)
	}

	values := make(map[string]interface{})
	rt := rv.Elem().Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		key, ok := field.Tag.Lookup(tagKey)
		if !ok || field.PkgPath != "" {
			continue
		}

		if value, found := LookupEnv(key); found && value != "" {
			values[field.Name] = value
		} else if def, hasDefault := field.Tag.Lookup(tagDefault); hasDefault {
			values[field.Name] = def
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return errors.Wrap(err, "conf: failed to build decoder")
	}

	if err := decoder.Decode(values); err != nil {
		return errors.Wrapf(err, "conf: failed to populate %s", rt.Name())
	}

	return nil
}

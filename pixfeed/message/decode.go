package message

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/dimchansky/utfbom"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeError reports a payload that is not a structurally valid control-act
// tree. Fields lists the offending element paths.
type DecodeError struct {
	Fields []string
	Err    error
}

func (e *DecodeError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("invalid control act: %s", e.Err)
	}
	return fmt.Sprintf("invalid control act: %s", strings.Join(e.Fields, ", "))
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode reads a JSON encoded control-act tree. A leading byte order mark is
// skipped.
func Decode(r io.Reader) (*ControlActProcess, error) {
	data, err := io.ReadAll(utfbom.SkipOnly(r))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read control act")
	}

	var act ControlActProcess
	if err := json.Unmarshal(data, &act); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if err := Validate(&act); err != nil {
		return nil, err
	}

	return &act, nil
}

// Validate checks the structural constraints of the tree. Business rules are
// not checked here: the transform reports those as diagnostics.
func Validate(act *ControlActProcess) error {
	err := validate.Struct(act)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &DecodeError{Err: err}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return &DecodeError{Fields: fields, Err: err}
}

// Encode writes act as indented JSON.
func Encode(w io.Writer, act *ControlActProcess) error {
	data, err := json.MarshalIndent(act, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode control act")
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

package message

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Principal is the entity playing an assigned role. The concrete type is one
// of *PersonPrincipal, *Device, *Organization or *UnsupportedPrincipal.
type Principal interface {
	IsNull() bool
	ClassCode() string
}

const (
	ClassPerson       = "PSN"
	ClassDevice       = "DEV"
	ClassOrganization = "ORG"
)

type PersonPrincipal struct {
	Nullable
	Names []EN `json:"name,omitempty"`
}

func (*PersonPrincipal) ClassCode() string { return ClassPerson }

type Device struct {
	Nullable
	IDs          []II   `json:"id,omitempty"`
	SoftwareName string `json:"softwareName,omitempty"`
}

func (*Device) ClassCode() string { return ClassDevice }

type Organization struct {
	Nullable
	IDs   []II `json:"id,omitempty"`
	Names []EN `json:"name,omitempty"`
	Code  *CE  `json:"code,omitempty"`
}

func (*Organization) ClassCode() string { return ClassOrganization }

// UnsupportedPrincipal keeps the class code of a principal no builder handles.
type UnsupportedPrincipal struct {
	Nullable
	Class string `json:"classCode"`
}

func (u *UnsupportedPrincipal) ClassCode() string { return u.Class }

// PrincipalChoice decodes the principal using its classCode discriminator.
type PrincipalChoice struct {
	Principal
}

// Absent reports whether no usable principal was supplied.
func (p PrincipalChoice) Absent() bool {
	return p.Principal == nil || p.Principal.IsNull()
}

func (p *PrincipalChoice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		p.Principal = nil
		return nil
	}

	var head struct {
		Nullable
		ClassCode string `json:"classCode"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return errors.Wrap(err, "failed to read assignedPrincipal")
	}

	var target Principal
	switch head.ClassCode {
	case ClassPerson:
		target = &PersonPrincipal{}
	case ClassDevice:
		target = &Device{}
	case ClassOrganization:
		target = &Organization{}
	default:
		p.Principal = &UnsupportedPrincipal{Nullable: head.Nullable, Class: head.ClassCode}
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return errors.Wrapf(err, "failed to read %s assignedPrincipal", head.ClassCode)
	}
	p.Principal = target
	return nil
}

func (p PrincipalChoice) MarshalJSON() ([]byte, error) {
	if p.Principal == nil {
		return []byte("null"), nil
	}
	body, err := json.Marshal(p.Principal)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	fields["classCode"] = p.Principal.ClassCode()
	return json.Marshal(fields)
}

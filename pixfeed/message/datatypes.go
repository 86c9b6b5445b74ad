package message

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// NullFlavor explains why a value is absent. Empty means the value is present.
type NullFlavor string

const (
	NullFlavorNoInformation NullFlavor = "NI"
	NullFlavorUnknown       NullFlavor = "UNK"
	NullFlavorNotApplicable NullFlavor = "NA"
	NullFlavorMasked        NullFlavor = "MSK"
)

// Nullable is embedded by every element that may carry a null flavor.
type Nullable struct {
	NullFlavor NullFlavor `json:"nullFlavor,omitempty"`
}

func (n Nullable) IsNull() bool {
	return n.NullFlavor != ""
}

// II is an instance identifier.
type II struct {
	Nullable
	Root                   string `json:"root" validate:"required_without=NullFlavor"`
	Extension              string `json:"extension,omitempty"`
	AssigningAuthorityName string `json:"assigningAuthorityName,omitempty"`
}

// CD is a concept descriptor. CE and CS share its shape.
type CD struct {
	Nullable
	Code           string `json:"code,omitempty"`
	CodeSystem     string `json:"codeSystem,omitempty"`
	CodeSystemName string `json:"codeSystemName,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
}

func (c *CD) Present() bool {
	return c != nil && !c.IsNull() && c.Code != ""
}

type CE = CD
type CS = CD

// ENXP is one part of an entity name.
type ENXP struct {
	Type  string `json:"type,omitempty" validate:"omitempty,oneof=GIV FAM PFX SFX DEL TITLE"`
	Value string `json:"value"`
}

// EN is an entity name. Use holds HL7 EntityNameUse codes (L, P, A ...).
type EN struct {
	Nullable
	Use   []string `json:"use,omitempty"`
	Parts []ENXP   `json:"part,omitempty" validate:"dive"`
}

func (e EN) HasUse(use string) bool {
	return containsCode(e.Use, use)
}

// ADXP is one part of a postal address.
type ADXP struct {
	Type  string `json:"type,omitempty" validate:"omitempty,oneof=AL ADL CTY CNT CPA STA ZIP CEN POB SAL PRE DAL UNID"`
	Value string `json:"value"`
}

// AD is a postal address. Use holds HL7 PostalAddressUse codes (H, WP, DIR ...).
type AD struct {
	Nullable
	Use   []string `json:"use,omitempty"`
	Parts []ADXP   `json:"part,omitempty" validate:"dive"`
}

func (a AD) HasUse(use string) bool {
	return containsCode(a.Use, use)
}

// TEL is a telecommunication address.
type TEL struct {
	Nullable
	Value         string   `json:"value" validate:"required_without=NullFlavor"`
	Use           []string `json:"use,omitempty"`
	UseablePeriod *IVL_TS  `json:"useablePeriod,omitempty"`
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}

// Precision of a TS value, derived from the number of digits supplied.
type Precision string

const (
	PrecisionYear        Precision = "Year"
	PrecisionMonth       Precision = "Month"
	PrecisionDay         Precision = "Day"
	PrecisionHour        Precision = "Hour"
	PrecisionMinute      Precision = "Minute"
	PrecisionSecond      Precision = "Second"
	PrecisionMillisecond Precision = "Millisecond"
)

var precisionByLength = map[int]struct {
	layout    string
	precision Precision
}{
	4:  {"2006", PrecisionYear},
	6:  {"200601", PrecisionMonth},
	8:  {"20060102", PrecisionDay},
	10: {"2006010215", PrecisionHour},
	12: {"200601021504", PrecisionMinute},
	14: {"20060102150405", PrecisionSecond},
}

// TS is a point in time with the precision it was expressed in.
type TS struct {
	Nullable
	Value     time.Time
	Precision Precision
}

type tsJSON struct {
	Nullable
	Value string `json:"value"`
}

// ParseTS parses the HL7 form YYYY[MM[DD[HH[MM[SS[.ffff]]]]]][+/-ZZZZ].
// Values without an offset are read as UTC; all values are returned in UTC.
func ParseTS(s string) (TS, error) {
	digits, zone := s, ""
	if i := strings.IndexAny(s, "+-"); i >= 4 {
		digits, zone = s[:i], s[i:]
	}

	fraction := ""
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		digits, fraction = digits[:i], digits[i:]
	}

	format, ok := precisionByLength[len(digits)]
	if !ok || (fraction != "" && len(digits) != 14) {
		return TS{}, errors.Errorf("invalid timestamp %q", s)
	}

	layout, value, precision := format.layout, digits, format.precision
	if fraction != "" {
		layout += "." + strings.Repeat("0", len(fraction)-1)
		value += fraction
		precision = PrecisionMillisecond
	}
	if zone != "" {
		layout += "-0700"
		value += zone
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return TS{}, errors.Wrapf(err, "invalid timestamp %q", s)
	}
	return TS{Value: t.UTC(), Precision: precision}, nil
}

func (t *TS) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw tsJSON
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw.Value); err != nil {
			return err
		}
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.IsNull() || raw.Value == "" {
		*t = TS{Nullable: raw.Nullable}
		return nil
	}

	parsed, err := ParseTS(raw.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TS) MarshalJSON() ([]byte, error) {
	if t.IsNull() || t.Value.IsZero() {
		return json.Marshal(tsJSON{Nullable: t.Nullable})
	}
	return json.Marshal(tsJSON{Value: t.String()})
}

// String renders t back into HL7 form at its own precision.
func (t TS) String() string {
	for _, f := range precisionByLength {
		if f.precision == t.Precision {
			return t.Value.Format(f.layout + "-0700")
		}
	}
	return t.Value.Format("20060102150405.000-0700")
}

func (t *TS) Present() bool {
	return t != nil && !t.IsNull() && !t.Value.IsZero()
}

// Bounds returns the first and last instants covered by t at its precision.
func (t TS) Bounds() (time.Time, time.Time) {
	low := t.Value
	var next time.Time
	switch t.Precision {
	case PrecisionYear:
		next = low.AddDate(1, 0, 0)
	case PrecisionMonth:
		next = low.AddDate(0, 1, 0)
	case PrecisionDay:
		next = low.AddDate(0, 0, 1)
	case PrecisionHour:
		next = low.Add(time.Hour)
	case PrecisionMinute:
		next = low.Add(time.Minute)
	case PrecisionSecond:
		next = low.Add(time.Second)
	default:
		next = low.Add(time.Millisecond)
	}
	return low, next.Add(-time.Nanosecond)
}

// IVL_TS is an interval of time, or a single point carried in Value.
type IVL_TS struct {
	Nullable
	Value *TS `json:"value,omitempty"`
	Low   *TS `json:"low,omitempty"`
	High  *TS `json:"high,omitempty"`
}

func (i *IVL_TS) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var ts TS
		if err := ts.UnmarshalJSON(data); err != nil {
			return err
		}
		*i = IVL_TS{Value: &ts}
		return nil
	}

	type plain IVL_TS
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = IVL_TS(p)
	return nil
}

// Present reports whether the interval is non-null and has at least one bound.
func (i *IVL_TS) Present() bool {
	return i != nil && !i.IsNull() && (i.Value.Present() || i.Low.Present() || i.High.Present())
}

// Bound is a closed interval resolved to instants. A zero end is unbounded.
type Bound struct {
	Low  time.Time
	High time.Time
}

// ToBound resolves the interval, expanding each bound by its precision.
func (i *IVL_TS) ToBound() Bound {
	var b Bound
	if !i.Present() {
		return b
	}
	if i.Value.Present() {
		b.Low, b.High = i.Value.Bounds()
		return b
	}
	if i.Low.Present() {
		b.Low, _ = i.Low.Bounds()
	}
	if i.High.Present() {
		_, b.High = i.High.Bounds()
	}
	return b
}

// SemanticEquals reports whether both intervals cover exactly the same instants.
func (i *IVL_TS) SemanticEquals(other *IVL_TS) bool {
	if !i.Present() || !other.Present() {
		return false
	}
	a, b := i.ToBound(), other.ToBound()
	return a.Low.Equal(b.Low) && a.High.Equal(b.High)
}

func (b Bound) String() string {
	return fmt.Sprintf("[%s, %s]", b.Low.Format(time.RFC3339Nano), b.High.Format(time.RFC3339Nano))
}

package params

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"

	"github.com/AlexNa-Holdings/hwparams/coin"
	"github.com/AlexNa-Holdings/hwparams/hdpath"
	"github.com/shopspring/decimal"
)

var errNotInteger = errors.New("not an integer representation")

// canonical integer: optional minus, no leading zeros, no exponent
var amountRegex = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)

// ValidateParams checks values against fields in order and returns the
// first violation as an *Error. A key holding nil still counts as present.
func ValidateParams(values map[string]interface{}, fields []Field) error {
	for _, f := range fields {
		value, ok := values[f.Name]
		if !ok {
			if f.Obligatory {
				return invalidParameter(f.Name, `Parameter "%s" is missing.`, f.Name)
			}
			continue
		}

		if err := f.check(value); err != nil {
			return err
		}
	}
	return nil
}

func (f Field) check(value interface{}) error {
	switch f.Kind {
	case KindArray:
		n, ok := sequenceLen(value)
		if !ok {
			return invalidParameter(f.Name, `Parameter "%s" has invalid type. "%s" expected.`, f.Name, f.TypeName())
		}
		if n < 1 {
			return invalidParameter(f.Name, `Parameter "%s" is empty.`, f.Name)
		}
	case KindAmount:
		s, ok := value.(string)
		if !ok {
			return invalidParameter(f.Name, `Parameter "%s" has invalid type. "%s" expected.`, f.Name, f.TypeName())
		}
		if _, err := ParseAmount(s); err != nil {
			return invalidParameter(f.Name, `Parameter "%s" has invalid value "%s". Integer representation expected.`, f.Name, s)
		}
	case KindPrimitive:
		if TypeOf(value) != f.Type {
			return invalidParameter(f.Name, `Parameter "%s" has invalid type. "%s" expected.`, f.Name, f.Type)
		}
	}
	return nil
}

// ParseAmount accepts a base-10 integer string only in its canonical form:
// no leading zeros, no plus sign, no "-0", no fraction or exponent, no
// surrounding space.
func ParseAmount(s string) (decimal.Decimal, error) {
	if !amountRegex.MatchString(s) {
		return decimal.Zero, errNotInteger
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsInteger() || d.String() != s {
		return decimal.Zero, errNotInteger
	}
	return d, nil
}

// TypeOf returns the dynamic type tag of v: "string", "number", "boolean",
// "function" or "object". Slices, maps and nil are all "object".
func TypeOf(v interface{}) string {
	if v == nil {
		return TypeObject
	}
	if _, ok := v.(json.Number); ok {
		return TypeNumber
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.String:
		return TypeString
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Func:
		return "function"
	}
	return TypeObject
}

func sequenceLen(v interface{}) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

// ValidateCoinPath fails when the coin type segment of path differs from
// the slip44 id of info. A nil info has nothing to check.
func ValidateCoinPath(info *coin.Info, path hdpath.Path) error {
	if info == nil {
		return nil
	}
	if ct, ok := path.CoinType(); !ok || ct != info.Slip44 {
		return invalidParameter("path", `Parameters "path" and "coin" do not match.`)
	}
	return nil
}

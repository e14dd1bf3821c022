package amoebacli

import (
	"strconv"
	"strings"
	"unsafe"
)

// Integer is the set of integer types ParseInt can produce.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point types ParseFloat can produce.
type Float interface {
	~float32 | ~float64
}

var (
	trueAliases  = [...]string{"true", "yes", "on", "enable", "y", "1"}
	falseAliases = [...]string{"false", "no", "off", "disable", "n", "0"}
)

// Require passes a present token through and fails with NotEnoughArgs when
// the token is absent.
func Require(token string, ok bool) (string, error) {
	if !ok {
		return "", NotEnoughArgs
	}
	return token, nil
}

// ParseInt converts a token to an integer of type T.
//
// A "0x" prefix selects base 16 and "0b" selects base 2; anything else is
// base 10. The prefix is stripped before parsing and must be followed by
// an unsigned numeral, so "0x-10" is rejected. Values that are not a
// valid numeral in the selected base, or that do not fit in T, fail with
// InvalidArgType.
func ParseInt[T Integer](token string, ok bool) (T, error) {
	s, err := Require(token, ok)
	if err != nil {
		return 0, err
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "0x"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	}
	if base != 10 && (s == "" || s[0] == '+' || s[0] == '-') {
		return 0, InvalidArgType
	}

	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if ^zero < 0 {
		v, err := strconv.ParseInt(s, base, bits)
		if err != nil {
			return 0, InvalidArgType
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, InvalidArgType
	}
	return T(v), nil
}

// ParseFloat converts a decimal floating-point token to type T. Hex floats
// and digit separators are not accepted. Magnitudes too large for T become
// signed infinity.
func ParseFloat[T Float](token string, ok bool) (T, error) {
	s, err := Require(token, ok)
	if err != nil {
		return 0, err
	}
	if strings.ContainsAny(s, "xX_") {
		return 0, InvalidArgType
	}

	var zero T
	v, err := strconv.ParseFloat(s, int(unsafe.Sizeof(zero))*8)
	if err != nil {
		if ne, isNum := err.(*strconv.NumError); isNum && ne.Err == strconv.ErrRange {
			return T(v), nil
		}
		return 0, InvalidArgType
	}
	return T(v), nil
}

// ParseBool converts a token to a bool using fixed, case-sensitive aliases:
// true, yes, on, enable, y, 1 and false, no, off, disable, n, 0.
func ParseBool(token string, ok bool) (bool, error) {
	s, err := Require(token, ok)
	if err != nil {
		return false, err
	}
	for _, alias := range trueAliases {
		if s == alias {
			return true, nil
		}
	}
	for _, alias := range falseAliases {
		if s == alias {
			return false, nil
		}
	}
	return false, InvalidArgType
}

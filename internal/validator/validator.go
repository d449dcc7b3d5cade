// promptkit - Line Editing Toolkit for Serial Consoles
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package validator checks and coerces user input against a set of rules.
package validator

import (
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Type names accepted in Rules.AllowedTypes.
const (
	TypeBool  = "bool"
	TypeFloat = "float"
	TypeInt   = "int"
	TypeStr   = "str"
)

// Validation failures. Validate wraps them in *Error.
var (
	ErrTooShort     = errors.New("too short")
	ErrTooLong      = errors.New("too long")
	ErrInvalidChar  = errors.New("invalid character")
	ErrNotAllowed   = errors.New("value not allowed")
	ErrNoMatch      = errors.New("regex not matched")
	ErrInvalidValue = errors.New("invalid value")
	ErrInvalidType  = errors.New("invalid type")
	ErrTooSmall     = errors.New("too small")
	ErrTooBig       = errors.New("too big")
)

// Rules describe what input is acceptable. The zero value accepts anything.
type Rules struct {
	AllowedTypes  []string `yaml:"allowed_types,omitempty"`
	Min           *float64 `yaml:"min,omitempty"`
	Max           *float64 `yaml:"max,omitempty"`
	MinLength     *int     `yaml:"min_length,omitempty"`
	MaxLength     *int     `yaml:"max_length,omitempty"`
	AllowedChars  string   `yaml:"allowed_chars,omitempty"`
	AllowedValues []string `yaml:"allowed_values,omitempty"`
	Regex         string   `yaml:"regex,omitempty"`
	NoStrip       bool     `yaml:"no_strip,omitempty"`
}

// Allows reports whether typ is listed in AllowedTypes.
func (r Rules) Allows(typ string) bool {
	return slices.Contains(r.AllowedTypes, typ)
}

// Error is a failed validation of Value.
type Error struct {
	Reason error
	Value  string
}

func (e *Error) Error() string {
	return e.Reason.Error()
}

func (e *Error) Unwrap() error {
	return e.Reason
}

func fail(reason error, value string) error {
	return &Error{Reason: reason, Value: value}
}

// Validate checks raw against rules and returns the coerced value: a bool,
// float64, int64 or string.
func Validate(rules Rules, raw string) (any, error) {
	value := raw
	if !rules.NoStrip {
		value = strings.TrimSpace(raw)
	}

	length := utf8.RuneCountInString(value)
	if rules.MinLength != nil && length < *rules.MinLength {
		return nil, fail(ErrTooShort, raw)
	}
	if rules.MaxLength != nil && length > *rules.MaxLength {
		return nil, fail(ErrTooLong, raw)
	}

	if rules.AllowedChars != "" {
		for _, c := range value {
			if !strings.ContainsRune(rules.AllowedChars, c) {
				return nil, fail(ErrInvalidChar, raw)
			}
		}
	}

	if len(rules.AllowedValues) > 0 && !slices.Contains(rules.AllowedValues, value) {
		return nil, fail(ErrNotAllowed, raw)
	}

	if rules.Regex != "" {
		re, err := regexp.Compile(`^(?:` + rules.Regex + `)`)
		if err != nil || !re.MatchString(value) {
			return nil, fail(ErrNoMatch, raw)
		}
	}

	if len(rules.AllowedTypes) == 0 {
		return value, nil
	}

	result, err := coerce(rules, value)
	if err != nil {
		return nil, fail(err, raw)
	}
	if err := checkRange(rules, result); err != nil {
		return nil, fail(err, raw)
	}
	return result, nil
}

// coerce tries the allowed types in the fixed order bool, float, int, str.
func coerce(rules Rules, value string) (any, error) {
	if rules.Allows(TypeBool) {
		if b, ok := ParseBool(value); ok {
			return b, nil
		}
		if len(rules.AllowedTypes) == 1 {
			return nil, ErrInvalidValue
		}
	}
	if rules.Allows(TypeFloat) {
		if f, ok := parseDecimal(value); ok {
			return f, nil
		}
	}
	if rules.Allows(TypeInt) {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i, nil
		}
	}
	if rules.Allows(TypeStr) {
		return value, nil
	}
	return nil, ErrInvalidType
}

// parseDecimal parses a plain decimal float. NaN, Inf and hex or
// underscore spellings that strconv also accepts are rejected.
func parseDecimal(s string) (float64, bool) {
	if s == "" || strings.Trim(s, "0123456789+-.eE") != "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func checkRange(rules Rules, result any) error {
	var n float64
	switch v := result.(type) {
	case int64:
		n = float64(v)
	case float64:
		n = v
	default:
		return nil
	}
	if rules.Min != nil && n < *rules.Min {
		return ErrTooSmall
	}
	if rules.Max != nil && n > *rules.Max {
		return ErrTooBig
	}
	return nil
}

// ParseBool accepts true/1/yes/y and false/0/no/n in any case.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y":
		return true, true
	case "false", "0", "no", "n":
		return false, true
	}
	return false, false
}

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

// Package value implements a prompt whose submitted line must pass a set
// of validation rules before it is returned.
package value

import (
	"fmt"
	"strconv"

	"github.com/cloud-exit/promptkit/internal/ansi"
	"github.com/cloud-exit/promptkit/internal/prompt"
	"github.com/cloud-exit/promptkit/internal/serialio"
	"github.com/cloud-exit/promptkit/internal/validator"
)

// BoolLabels are the words shown for a pre-seeded boolean value.
type BoolLabels struct {
	True  string `yaml:"true,omitempty"`
	False string `yaml:"false,omitempty"`
}

// Settings adjust how values are displayed.
type Settings struct {
	Boolean BoolLabels `yaml:"boolean,omitempty"`
}

// DefaultSettings returns the yes/no boolean labels.
func DefaultSettings() Settings {
	return Settings{Boolean: BoolLabels{True: "yes", False: "no"}}
}

// Value is a validating line prompt.
type Value struct {
	*prompt.Prompt

	out    *serialio.IO
	rules  validator.Rules
	labels BoolLabels
}

// New returns a Value widget on out with no rules.
func New(out *serialio.IO) *Value {
	return &Value{
		Prompt: prompt.New(out),
		out:    out,
		labels: DefaultSettings().Boolean,
	}
}

// SetRules replaces the validation rules.
func (v *Value) SetRules(rules validator.Rules) {
	v.rules = rules
	v.SetTrim(!rules.NoStrip)
}

// Rules returns the validation rules.
func (v *Value) Rules() validator.Rules {
	return v.rules
}

// SetSettings overrides the boolean labels; empty labels keep the current
// ones.
func (v *Value) SetSettings(s Settings) {
	if s.Boolean.True != "" {
		v.labels.True = s.Boolean.True
	}
	if s.Boolean.False != "" {
		v.labels.False = s.Boolean.False
	}
}

// SetValue pre-seeds the buffer with a typed value.
func (v *Value) SetValue(val any) {
	v.SetBuffer(v.Format(val))
}

// Format renders a typed value the way SetValue shows it.
func (v *Value) Format(val any) string {
	switch x := val.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return v.labels.True
		}
		return v.labels.False
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(val)
}

// Poll runs one editor step. When a line is submitted it is validated:
// a valid value is returned, an invalid one prints the reason and the
// prompt starts again.
func (v *Value) Poll(promptString string) (any, bool) {
	res := v.Prompt.Poll(promptString)
	if !res.Submitted {
		return nil, false
	}

	val, err := validator.Validate(v.rules, res.Line)
	if err != nil {
		v.out.WriteLine(ansi.ColorizeLevel(err.Error(), ansi.LevelError))
		return nil, false
	}
	return val, true
}

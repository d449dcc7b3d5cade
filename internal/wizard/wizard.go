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

// Package wizard asks a fixed sequence of questions, each answered with a
// single-select, multi-select or value widget, and collects the answers
// by question name.
package wizard

import (
	"errors"
	"fmt"
	"maps"

	"github.com/cloud-exit/promptkit/internal/choice"
	"github.com/cloud-exit/promptkit/internal/config"
	"github.com/cloud-exit/promptkit/internal/serialio"
	"github.com/cloud-exit/promptkit/internal/value"
)

// Question types.
const (
	TypeSingleSelect = "single_select"
	TypeSelect       = "select" // alias of single_select
	TypeMultiSelect  = "multi_select"
	TypeValue        = "value"
)

// ErrInvalidType is returned by SetConfig for an unknown question type.
var ErrInvalidType = errors.New("wizard: invalid question type")

// Wizard sequences questions. One widget per type is reused across
// questions and reset before each one is shown.
type Wizard struct {
	out    *serialio.IO
	single *choice.Single
	multi  *choice.Multi
	value  *value.Value

	info         string
	questions    []config.Question
	defaults     map[string]any
	promptString string

	index   int
	done    bool
	results map[string]any
}

// New returns a wizard on out with no questions.
func New(out *serialio.IO) *Wizard {
	w := &Wizard{
		out:          out,
		single:       choice.NewSingle(out),
		multi:        choice.NewMulti(out),
		value:        value.New(out),
		promptString: "> ",
	}
	w.Reset()
	return w
}

// SetConfig installs the banner and questions and restarts the wizard.
// Unknown question types are rejected up front.
func (w *Wizard) SetConfig(info string, questions []config.Question) error {
	for i, q := range questions {
		switch q.Type {
		case TypeSingleSelect, TypeSelect, TypeMultiSelect, TypeValue:
		default:
			return fmt.Errorf("%w: %q (question %d, %q)", ErrInvalidType, q.Type, i+1, q.Name)
		}
	}
	w.info = info
	w.questions = append([]config.Question(nil), questions...)
	w.Reset()
	return nil
}

// SetDefaults overrides question defaults by name.
func (w *Wizard) SetDefaults(defaults map[string]any) {
	w.defaults = maps.Clone(defaults)
}

// SetPromptString sets the prompt shown for value questions.
func (w *Wizard) SetPromptString(s string) {
	w.promptString = s
}

// Value returns the widget answering value questions, for prompt settings.
func (w *Wizard) Value() *value.Value {
	return w.value
}

// Reset forgets all answers; the next Poll starts from the banner.
func (w *Wizard) Reset() {
	w.index = -1
	w.done = false
	w.results = make(map[string]any)
}

// Results returns a copy of the answers collected so far.
func (w *Wizard) Results() map[string]any {
	return maps.Clone(w.results)
}

// Index returns the position of the question being asked, or -1 before the
// wizard starts.
func (w *Wizard) Index() int {
	return w.index
}

// Poll runs one step of the active widget. It returns all answers once
// the last question is answered; after that it does nothing until Reset.
func (w *Wizard) Poll() (map[string]any, bool) {
	if w.done {
		return nil, false
	}
	if w.index < 0 {
		if w.info != "" {
			w.out.WriteLine(w.info)
		}
		if len(w.questions) == 0 {
			w.done = true
			return w.Results(), true
		}
		w.begin(0)
	}

	answer, ok := w.poll(w.questions[w.index])
	if !ok {
		return nil, false
	}
	w.results[w.questions[w.index].Name] = answer

	if w.index+1 >= len(w.questions) {
		w.done = true
		return w.Results(), true
	}
	w.begin(w.index + 1)
	return nil, false
}

func (w *Wizard) poll(q config.Question) (any, bool) {
	switch q.Type {
	case TypeSingleSelect, TypeSelect:
		return w.single.Poll()
	case TypeMultiSelect:
		return w.multi.Poll()
	}
	return w.value.Poll(w.promptString)
}

// begin prints question i and prepares its widget.
func (w *Wizard) begin(i int) {
	w.index = i
	q := w.questions[i]
	def := q.Default
	if d, ok := w.defaults[q.Name]; ok {
		def = d
	}

	w.out.WriteLine(q.Text())

	switch q.Type {
	case TypeSingleSelect, TypeSelect:
		w.single.SetOptions(q.Data)
		w.single.SetActive(asString(def))
	case TypeMultiSelect:
		w.multi.SetOptions(q.Data)
		w.multi.SetActive(asStrings(def))
	case TypeValue:
		w.value.SetRules(q.Rules)
		w.value.SetSettings(value.DefaultSettings())
		w.value.SetSettings(q.Settings)
		w.value.SetValue(def)
	}
}

// Interrupt forwards to the active widget. Answers so far are kept.
func (w *Wizard) Interrupt() {
	if w.index < 0 || w.done {
		return
	}
	switch w.questions[w.index].Type {
	case TypeSingleSelect, TypeSelect:
		w.single.Interrupt()
	case TypeMultiSelect:
		w.multi.Interrupt()
	case TypeValue:
		w.value.Interrupt()
	}
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func asStrings(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			out = append(out, asString(e))
		}
		return out
	}
	return []string{asString(v)}
}

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

package config

import (
	"github.com/cloud-exit/promptkit/internal/choice"
	"github.com/cloud-exit/promptkit/internal/validator"
	"github.com/cloud-exit/promptkit/internal/value"
)

// Config is the top-level promptkit configuration (config.yaml).
type Config struct {
	Version int          `yaml:"version"`
	Prompt  PromptConfig `yaml:"prompt"`
	Shell   ShellConfig  `yaml:"shell"`
	Wizard  WizardConfig `yaml:"wizard"`
	Menu    MenuNode     `yaml:"menu"`
}

// PromptConfig holds line editor settings shared by every widget.
type PromptConfig struct {
	String      string `yaml:"string"`
	Color       string `yaml:"color,omitempty"` // colour name, e.g. "green"
	CursorShape int    `yaml:"cursor_shape"`
	MaxLength   int    `yaml:"max_length"`
	HistorySize int    `yaml:"history_size"`
	TimeoutMS   int    `yaml:"timeout_ms,omitempty"`
}

// ShellConfig configures the terminal shell.
type ShellConfig struct {
	Commands []string          `yaml:"commands,omitempty"`
	Aliases  map[string]string `yaml:"aliases,omitempty"`
	Help     string            `yaml:"help,omitempty"`
}

// WizardConfig is the banner and question list of the wizard.
type WizardConfig struct {
	Info      string     `yaml:"info,omitempty"`
	Questions []Question `yaml:"questions"`
}

// Question is one wizard entry.
type Question struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Label string `yaml:"label,omitempty"`
	// Question is accepted in place of Label.
	Question string          `yaml:"question,omitempty"`
	Data     []choice.Option `yaml:"data,omitempty"`
	Rules    validator.Rules `yaml:"rules,omitempty"`
	Default  any             `yaml:"default,omitempty"`
	Settings value.Settings  `yaml:"settings,omitempty"`
}

// Text returns the line printed above the question's widget.
func (q Question) Text() string {
	if q.Label != "" {
		return q.Label
	}
	return q.Question
}

// MenuNode is one node of the menu tree. Callbacks are bound by ID when
// the menu is built.
type MenuNode struct {
	ID       string     `yaml:"id"`
	Label    string     `yaml:"label"`
	Hotkey   string     `yaml:"hotkey,omitempty"`
	Children []MenuNode `yaml:"children,omitempty"`
}

// IDs returns the IDs of n and all its descendants, depth first.
func (n MenuNode) IDs() []string {
	ids := []string{n.ID}
	for _, c := range n.Children {
		ids = append(ids, c.IDs()...)
	}
	return ids
}

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
	"github.com/cloud-exit/promptkit/internal/ansi"
	"github.com/cloud-exit/promptkit/internal/choice"
	"github.com/cloud-exit/promptkit/internal/history"
	"github.com/cloud-exit/promptkit/internal/prompt"
	"github.com/cloud-exit/promptkit/internal/validator"
	"github.com/cloud-exit/promptkit/internal/value"
)

// DefaultPromptString is used when no prompt string is configured.
const DefaultPromptString = "> "

// DefaultConfig returns the demo configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Prompt: PromptConfig{
			String:      "$> ",
			Color:       "green",
			CursorShape: ansi.CursorBarSteady,
			MaxLength:   prompt.DefaultMaxLength,
			HistorySize: history.DefaultCapacity,
		},
		Shell: ShellConfig{
			Commands: []string{"set", "get", "settings", "reset", "restart", "password"},
			Aliases:  map[string]string{"ll": "get --all"},
			Help:     "Device console. Type a command and press Enter.",
		},
		Wizard: DefaultWizard(),
		Menu:   DefaultMenu(),
	}
}

// DefaultWizard returns a three-question demo wizard.
func DefaultWizard() WizardConfig {
	return WizardConfig{
		Info: "\r\nHere is an example of a wizard.\r\nYou can use it to configure your device.\r\n",
		Questions: []Question{
			{
				Name:  "mode",
				Type:  "single_select",
				Label: "Select one option:",
				Data: []choice.Option{
					{Label: "Option 1", Value: "option1"},
					{Label: "Option 2", Value: "option2"},
					{Label: "Option 3", Value: "option3"},
					{Label: "Option 4", Value: "option4"},
				},
			},
			{
				Name:    "threshold",
				Type:    "value",
				Label:   "Enter value [number]:",
				Default: "123",
				Rules:   validator.Rules{AllowedTypes: []string{validator.TypeInt, validator.TypeFloat}},
			},
			{
				Name:     "enabled",
				Type:     "value",
				Label:    "Enter value [yes/no]:",
				Default:  false,
				Rules:    validator.Rules{AllowedTypes: []string{validator.TypeBool}},
				Settings: value.Settings{Boolean: value.BoolLabels{True: "yes", False: "no"}},
			},
		},
	}
}

// DefaultMenu returns the demo menu tree.
func DefaultMenu() MenuNode {
	adjust := func(id, label string) MenuNode {
		return MenuNode{
			ID:    id,
			Label: label,
			Children: []MenuNode{
				{ID: "increase", Label: "Increase"},
				{ID: "decrease", Label: "Decrease"},
			},
		}
	}
	return MenuNode{
		ID:    "main",
		Label: "Main",
		Children: []MenuNode{
			{ID: "memory", Label: "Memory"},
			adjust("brightness", "Brightness"),
			adjust("contrast", "Contrast"),
		},
	}
}

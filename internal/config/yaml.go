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
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cloud-exit/promptkit/internal/history"
	"github.com/cloud-exit/promptkit/internal/prompt"
)

// LoadConfig reads and parses config.yaml.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(ConfigFile())
}

// LoadConfigFrom reads config from a specific path.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML document and fills unset prompt settings. A missing
// history_size keeps the default capacity; an explicit 0 disables history.
func Parse(data []byte) (*Config, error) {
	cfg := Config{Prompt: PromptConfig{HistorySize: history.DefaultCapacity}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	normalize(&cfg)
	return &cfg, nil
}

// normalize replaces unusable prompt settings with defaults.
func normalize(cfg *Config) {
	p := &cfg.Prompt
	if p.String == "" {
		p.String = DefaultPromptString
	}
	if p.MaxLength <= 0 {
		p.MaxLength = prompt.DefaultMaxLength
	}
	if p.HistorySize < 0 {
		p.HistorySize = history.DefaultCapacity
	}
	if p.CursorShape < 0 || p.CursorShape > 6 {
		p.CursorShape = 0
	}
}

// SaveConfig writes config to config.yaml.
func SaveConfig(cfg *Config) error {
	return SaveConfigTo(cfg, ConfigFile())
}

// SaveConfigTo writes config to a specific path.
func SaveConfigTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads config.yaml, returning the defaults when it doesn't exist.
// A file that exists but does not parse is an error.
func Load() (*Config, error) {
	cfg, err := LoadConfig()
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

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

package cmd

import (
	"testing"

	"github.com/cloud-exit/promptkit/internal/tokenizer"
)

func TestDescribeCommand(t *testing.T) {
	tests := []struct {
		cmd  tokenizer.Command
		want string
	}{
		{tokenizer.Command{Name: "reset"}, "reset"},
		{
			tokenizer.Command{
				Name:       "set",
				Positional: []string{"a", "b c"},
				Options:    map[string]string{"v": "", "mode": "fast"},
				KeyValue:   map[string]string{"x": "1"},
			},
			`set args=["a" "b c"] opt[mode]="fast" flag[v] kv[x]="1"`,
		},
	}
	for _, tc := range tests {
		if got := describeCommand(tc.cmd); got != tc.want {
			t.Errorf("describeCommand(%+v) = %q, want %q", tc.cmd, got, tc.want)
		}
	}
}

func TestDescribeCommand_Parsed(t *testing.T) {
	tokens := tokenizer.New().Tokenize("get --all name=x", tokenizer.Options{KeyValue: true})
	got := describeCommand(tokenizer.Parse(tokens))
	want := `get flag[all] kv[name]="x"`
	if got != want {
		t.Errorf("describeCommand() = %q, want %q", got, want)
	}
}

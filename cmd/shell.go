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
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/promptkit/internal/ansi"
	"github.com/cloud-exit/promptkit/internal/memstat"
	"github.com/cloud-exit/promptkit/internal/shell"
	"github.com/cloud-exit/promptkit/internal/tokenizer"
	"github.com/cloud-exit/promptkit/internal/ui"
)

// describeCommand renders a parsed command on one line, keys sorted.
func describeCommand(c tokenizer.Command) string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	if len(c.Positional) > 0 {
		fmt.Fprintf(&sb, " args=%q", c.Positional)
	}
	for _, k := range slices.Sorted(maps.Keys(c.Options)) {
		if v := c.Options[k]; v != "" {
			fmt.Fprintf(&sb, " opt[%s]=%q", k, v)
		} else {
			fmt.Fprintf(&sb, " flag[%s]", k)
		}
	}
	for _, k := range slices.Sorted(maps.Keys(c.KeyValue)) {
		fmt.Fprintf(&sb, " kv[%s]=%q", k, c.KeyValue[k])
	}
	return sb.String()
}

func newShellCmd() *cobra.Command {
	var (
		commands []string
		noMemory bool
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run the command shell",
		Long: "Run a command shell with aliases, history and Tab completion.\n\n" +
			"Commands come from the config file (or --commands) and are echoed\n" +
			"back parsed. Built-ins: alias, unalias, help, history, clear, free.\n" +
			"Leave with 'exit' or 'quit'.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := openConsole(cfg)
			if err != nil {
				return err
			}

			s := shell.New(c.io)
			c.setup(s.Prompt)
			known := cfg.Shell.Commands
			if len(commands) > 0 {
				known = commands
			}
			s.SetCommands(append(slices.Clone(known), "exit", "quit"))
			s.SetHelp(cfg.Shell.Help)
			for name, exp := range cfg.Shell.Aliases {
				s.Aliases.Add(name, exp)
			}
			if !noMemory {
				s.SetMemory(memstat.Runtime)
			}

			ps := c.Prompt()
			err = c.Run(s, func() bool {
				parsed, tokens, ok := s.Poll(ps)
				if !ok {
					return false
				}
				switch {
				case parsed.Name == "exit" || parsed.Name == "quit":
					return true
				case !slices.Contains(known, parsed.Name):
					c.io.WriteLine(ansi.ColorizeLevel("Unknown command: "+parsed.Name, ansi.LevelError))
				default:
					c.io.WriteLine(ansi.ColorizeLevel(describeCommand(parsed), ansi.LevelInfo))
				}
				if ui.Verbose {
					for _, t := range tokens {
						if t.Type != tokenizer.Space {
							c.io.WriteLine(ansi.ColorizeLevel(fmt.Sprintf("  %-10s %q", t.Type, t.Content), ansi.LevelTrace))
						}
					}
				}
				return false
			})
			if cerr := c.Close(); err == nil {
				err = cerr
			}
			return finish(err)
		},
	}

	cmd.Flags().StringSliceVar(&commands, "commands", nil, "Known commands (overrides the config file)")
	cmd.Flags().BoolVar(&noMemory, "no-memory", false, "Disable the 'free' built-in")
	return cmd
}

func init() {
	rootCmd.AddCommand(newShellCmd())
}

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

	"github.com/spf13/cobra"

	"github.com/cloud-exit/promptkit/internal/keys"
	"github.com/cloud-exit/promptkit/internal/prompt"
)

func newPromptCmd() *cobra.Command {
	var (
		repeat     bool
		candidates []string
		noCommands bool
		initial    string
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Read a line with the line editor",
		Long: "Read a line with the line editor and print it.\n\n" +
			"With --repeat, lines are read until Ctrl-D and printed one per line.\n" +
			"Lines starting with ! recall history; 'history' and 'clear' are built in.",
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

			p := prompt.New(c.io)
			c.setup(p)
			p.EnableCommands(!noCommands)
			if len(candidates) > 0 {
				p.Complete.SetCandidates(candidates)
			}
			if initial != "" {
				p.SetBuffer(initial)
			}

			var lines []string
			ps := c.Prompt()
			err = c.Run(p, func() bool {
				res := p.Poll(ps)
				if res.Submitted {
					lines = append(lines, res.Line)
					return !repeat
				}
				if res.Unhandled && res.Key.Kind == keys.KindCtrl && res.Key.Name == keys.CtrlD {
					c.io.Write("\r\n")
					return true
				}
				return false
			})
			if cerr := c.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return finish(err)
			}
			for _, l := range lines {
				fmt.Println(l)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&repeat, "repeat", "r", false, "Keep reading lines until Ctrl-D")
	cmd.Flags().StringSliceVar(&candidates, "candidates", nil, "Tab completion candidates (comma separated)")
	cmd.Flags().BoolVar(&noCommands, "no-commands", false, "Disable history keys, Tab completion and built-in commands")
	cmd.Flags().StringVar(&initial, "initial", "", "Text to pre-fill the buffer with")
	return cmd
}

func init() {
	rootCmd.AddCommand(newPromptCmd())
}

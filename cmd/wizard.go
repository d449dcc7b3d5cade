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
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/promptkit/internal/config"
	"github.com/cloud-exit/promptkit/internal/wizard"
)

// formatAnswer renders one wizard answer for the summary.
func formatAnswer(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(x, ", ")
	case string:
		return x
	}
	return fmt.Sprint(v)
}

// wizardSummary lists answers in question order.
func wizardSummary(questions []config.Question, results map[string]any) string {
	rows := make([][2]string, 0, len(questions))
	for _, q := range questions {
		v, ok := results[q.Name]
		if !ok {
			continue
		}
		rows = append(rows, [2]string{q.Name, formatAnswer(v)})
	}
	return renderRows("Wizard results", rows)
}

func newWizardCmd() *cobra.Command {
	var again bool

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Ask the configured wizard questions",
		Long: "Ask the wizard questions from the config file one after another\n" +
			"and print a summary of the answers.",
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

			w := wizard.New(c.io)
			if err := w.SetConfig(cfg.Wizard.Info, cfg.Wizard.Questions); err != nil {
				c.Close()
				return err
			}
			c.setup(w.Value().Prompt)
			w.SetPromptString(c.Prompt())

			var results map[string]any
			err = c.Run(w, func() bool {
				res, done := w.Poll()
				if !done {
					return false
				}
				results = res
				if again {
					c.io.WriteLine("")
					w.SetDefaults(res)
					w.Reset()
					return false
				}
				return true
			})
			if cerr := c.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return finish(err)
			}
			fmt.Println(wizardSummary(cfg.Wizard.Questions, results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&again, "loop", false, "Start over after the last question, keeping answers as defaults (Ctrl-C twice to stop)")
	return cmd
}

func init() {
	rootCmd.AddCommand(newWizardCmd())
}

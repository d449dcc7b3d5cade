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

	"github.com/cloud-exit/promptkit/internal/choice"
)

// parseOptions turns "Label=value" or "value" arguments into options.
func parseOptions(args []string) ([]choice.Option, error) {
	opts := make([]choice.Option, 0, len(args))
	for _, a := range args {
		label, val, ok := strings.Cut(a, "=")
		if !ok {
			val = label
		}
		if val == "" {
			return nil, fmt.Errorf("option %q has an empty value", a)
		}
		if label == "" {
			label = val
		}
		opts = append(opts, choice.Option{Label: label, Value: val})
	}
	return opts, nil
}

func newSelectCmd() *cobra.Command {
	var (
		label string
		def   string
	)

	cmd := &cobra.Command{
		Use:   "select OPTION...",
		Short: "Pick one option from a list",
		Long: "Pick one option from a list and print its value.\n\n" +
			"Each OPTION is either 'Label=value' or just 'value'.\n" +
			"Move with Up/Down/Home/End, mark with Space and confirm with Enter.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions(args)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := openConsole(cfg)
			if err != nil {
				return err
			}

			s := choice.NewSingle(c.io)
			s.SetLabel(label)
			s.SetOptions(opts)
			if def != "" {
				s.SetActive(def)
			}

			var picked string
			err = c.Run(s, func() bool {
				v, done := s.Poll()
				picked = v
				return done
			})
			if cerr := c.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return finish(err)
			}
			fmt.Println(picked)
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Line printed above the options")
	cmd.Flags().StringVarP(&def, "default", "d", "", "Value highlighted initially")
	return cmd
}

func newMultiselectCmd() *cobra.Command {
	var (
		label string
		defs  []string
	)

	cmd := &cobra.Command{
		Use:   "multiselect OPTION...",
		Short: "Tick any number of options from a list",
		Long: "Tick any number of options and print their values, one per line.\n\n" +
			"Each OPTION is either 'Label=value' or just 'value'.\n" +
			"Toggle with Space and confirm with Enter.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions(args)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := openConsole(cfg)
			if err != nil {
				return err
			}

			m := choice.NewMulti(c.io)
			m.SetLabel(label)
			m.SetOptions(opts)
			m.SetActive(defs)

			var picked []string
			err = c.Run(m, func() bool {
				v, done := m.Poll()
				picked = v
				return done
			})
			if cerr := c.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return finish(err)
			}
			for _, v := range picked {
				fmt.Println(v)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Line printed above the options")
	cmd.Flags().StringSliceVarP(&defs, "default", "d", nil, "Values ticked initially (comma separated)")
	return cmd
}

func init() {
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newMultiselectCmd())
}

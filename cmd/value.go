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

	"github.com/cloud-exit/promptkit/internal/validator"
	"github.com/cloud-exit/promptkit/internal/value"
)

// ruleFlags are the value command's validation flags.
type ruleFlags struct {
	types         []string
	min, max      float64
	minLength     int
	maxLength     int
	allowedChars  string
	allowedValues []string
	regex         string
	noStrip       bool
}

// rules builds validator rules. changed reports whether a flag was given,
// so that bounds left unset stay unbounded.
func (f *ruleFlags) rules(changed func(name string) bool) (validator.Rules, error) {
	r := validator.Rules{
		AllowedTypes:  f.types,
		AllowedChars:  f.allowedChars,
		AllowedValues: f.allowedValues,
		Regex:         f.regex,
		NoStrip:       f.noStrip,
	}
	for _, t := range f.types {
		switch t {
		case validator.TypeBool, validator.TypeFloat, validator.TypeInt, validator.TypeStr:
		default:
			return validator.Rules{}, fmt.Errorf("unknown type %q (want bool, float, int or str)", t)
		}
	}
	if changed("min") {
		v := f.min
		r.Min = &v
	}
	if changed("max") {
		v := f.max
		r.Max = &v
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return validator.Rules{}, fmt.Errorf("--min %g is greater than --max %g", *r.Min, *r.Max)
	}
	if changed("min-length") {
		v := f.minLength
		r.MinLength = &v
	}
	if changed("max-length") {
		v := f.maxLength
		r.MaxLength = &v
	}
	return r, nil
}

// typedDefault converts a boolean default so that it is shown with the
// configured true/false words.
func typedDefault(rules validator.Rules, def string) any {
	if rules.Allows(validator.TypeBool) {
		if b, ok := validator.ParseBool(def); ok {
			return b
		}
	}
	return def
}

func newValueCmd() *cobra.Command {
	var (
		rf    ruleFlags
		label string
		def   string
		yes   string
		no    string
	)

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Read a validated value",
		Long: "Read a value and validate it, asking again until it passes.\n\n" +
			"The typed value is printed: booleans as true/false, numbers in Go syntax.",
		Example: "  promptkit value --type int --min 0 --max 100 --default 50\n" +
			"  promptkit value --type bool --true-label on --false-label off",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := rf.rules(cmd.Flags().Changed)
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

			v := value.New(c.io)
			c.setup(v.Prompt)
			v.SetRules(rules)
			v.SetSettings(value.Settings{Boolean: value.BoolLabels{True: yes, False: no}})
			if label != "" {
				c.io.WriteLine(label)
			}
			if def != "" {
				v.SetValue(typedDefault(rules, def))
			}

			var got any
			ps := c.Prompt()
			err = c.Run(v, func() bool {
				val, done := v.Poll(ps)
				got = val
				return done
			})
			if cerr := c.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return finish(err)
			}
			fmt.Println(got)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&rf.types, "type", "t", nil, "Allowed types: bool, float, int, str (comma separated)")
	f.Float64Var(&rf.min, "min", 0, "Smallest accepted number")
	f.Float64Var(&rf.max, "max", 0, "Largest accepted number")
	f.IntVar(&rf.minLength, "min-length", 0, "Shortest accepted input")
	f.IntVar(&rf.maxLength, "max-length", 0, "Longest accepted input")
	f.StringVar(&rf.allowedChars, "allowed-chars", "", "Characters the input may contain")
	f.StringSliceVar(&rf.allowedValues, "allowed-values", nil, "Accepted inputs (comma separated)")
	f.StringVar(&rf.regex, "regex", "", "Pattern the whole input must match")
	f.BoolVar(&rf.noStrip, "no-strip", false, "Keep surrounding whitespace")
	f.StringVarP(&label, "label", "l", "", "Line printed above the prompt")
	f.StringVarP(&def, "default", "d", "", "Text to pre-fill the buffer with")
	f.StringVar(&yes, "true-label", "", "Word shown for a true default")
	f.StringVar(&no, "false-label", "", "Word shown for a false default")
	return cmd
}

func init() {
	rootCmd.AddCommand(newValueCmd())
}

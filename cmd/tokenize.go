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
	"strconv"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/cloud-exit/promptkit/internal/tokenizer"
)

// tokenRows describes each token: type on the left, name and content on
// the right.
func tokenRows(tokens []tokenizer.Token) [][2]string {
	rows := make([][2]string, 0, len(tokens))
	for _, t := range tokens {
		desc := strconv.Quote(t.Content)
		if t.Name != "" {
			desc = t.Name + " " + desc
		}
		if t.Flag {
			desc += " (flag)"
		}
		if t.Quote != 0 {
			desc += " quoted " + string(t.Quote)
		}
		rows = append(rows, [2]string{t.Type.String(), desc})
	}
	return rows
}

func newTokenizeCmd() *cobra.Command {
	var (
		keyValue   bool
		limit      int
		delimiters string
		parse      bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize [TEXT...]",
		Short: "Split a command line the way the shell does",
		Long: "Split a command line into tokens and print them.\n\n" +
			"Arguments are re-quoted and joined into a single line first, so\n" +
			"quoting from your own shell is preserved.",
		Example: `  promptkit tokenize set --mode=fast -v 'two words'
  promptkit tokenize --key-value set name=value`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			line := shellquote.Join(args...)
			if len(args) == 1 {
				line = args[0]
			}

			tk := tokenizer.New()
			if cmd.Flags().Changed("delimiters") {
				tk.SetLongOptionDelimiters(delimiters)
			}
			tokens := tk.Tokenize(line, tokenizer.Options{Limit: limit, KeyValue: keyValue})

			fmt.Println(renderRows(line, tokenRows(tokens)))
			if parse {
				fmt.Println(describeCommand(tokenizer.Parse(tokens)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&keyValue, "key-value", "k", false, "Recognise name=value tokens")
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many tokens and keep the rest as one (0 = no limit)")
	cmd.Flags().StringVar(&delimiters, "delimiters", "=", "Characters separating a long option from its value")
	cmd.Flags().BoolVarP(&parse, "parse", "p", false, "Also print the parsed command")
	return cmd
}

func init() {
	rootCmd.AddCommand(newTokenizeCmd())
}

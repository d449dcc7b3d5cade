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
	"os"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/promptkit/internal/config"
	"github.com/cloud-exit/promptkit/internal/ui"
)

// Version is set by ldflags at build time.
var Version = "0.3.0"

// configPath is the --config flag; empty means the XDG default.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "promptkit",
	Short: "Line editing toolkit for serial consoles",
	Long: "promptkit drives line-editing widgets (prompt, select, value, menu,\n" +
		"shell, wizard) over a raw terminal, the way they run on a serial console.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			ui.SetColor(false)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		ui.Logo()
		fmt.Println()
		ui.Cecho("Commands:", ui.Cyan)
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
			}
		}
		fmt.Println()
		fmt.Println("Run 'promptkit COMMAND --help' for details.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("promptkit version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output (decoded keys are traced)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured host output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ~/.config/promptkit/config.yaml)")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("promptkit version {{.Version}}\n")
	rootCmd.Version = Version
}

// loadConfig reads the --config file, or the default file when present,
// falling back to the built-in demo configuration.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", config.ConfigFile(), err)
		}
		return cfg, nil
	}
	cfg, err := config.LoadConfigFrom(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.ErrorNoExit(err.Error())
		os.Exit(1)
	}
}

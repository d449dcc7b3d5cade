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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/promptkit/internal/memstat"
	"github.com/cloud-exit/promptkit/internal/menu"
)

// levels backs the demo menu: every node whose ID is a key shows the
// level as its value, and increase/decrease children adjust it.
type levels map[string]int

const (
	levelMin = 0
	levelMax = 100
	levelDef = 50
)

func (l levels) value(_ *menu.Menu, _ []string, n *menu.Node) string {
	v, ok := l[n.ID]
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}

// adjust changes the level of the node the user is in.
func (l levels) adjust(_ *menu.Menu, path []string, n *menu.Node) {
	if len(path) == 0 {
		return
	}
	id := path[len(path)-1]
	v, ok := l[id]
	if !ok {
		return
	}
	switch n.ID {
	case "increase":
		v = min(v+1, levelMax)
	case "decrease":
		v = max(v-1, levelMin)
	}
	l[id] = v
}

func memoryAction(m *menu.Menu, _ []string, _ *menu.Node) {
	if m.Memory != nil {
		memstat.Write(m.Out(), m.Memory)
	}
}

// demoBindings binds the level nodes of the default menu.
func demoBindings(l levels) menu.Bindings {
	values := make(map[string]menu.ValueFunc, len(l))
	for id := range l {
		values[id] = l.value
	}
	return menu.Bindings{
		Values: values,
		Actions: map[string]menu.ActionFunc{
			"increase": l.adjust,
			"decrease": l.adjust,
			"memory":   memoryAction,
		},
	}
}

func newMenuCmd() *cobra.Command {
	var (
		path      string
		levelIDs  []string
		noMemory  bool
		noExit    bool
		labelLine bool
	)

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Navigate the configured menu tree",
		Long: "Navigate the menu tree from the config file by hotkey.\n\n" +
			"0 goes back (and exits at the top), 'menu' redraws, 'reset' returns\n" +
			"to the top and 'free' prints memory statistics.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			l := make(levels, len(levelIDs))
			for _, id := range levelIDs {
				l[id] = levelDef
			}

			c, err := openConsole(cfg)
			if err != nil {
				return err
			}

			m := menu.New(c.io)
			c.setup(m.Prompt)
			m.SetConfig(menu.FromConfig(cfg.Menu, demoBindings(l)))
			m.EnableExit(!noExit)
			if !noMemory {
				m.Memory = memstat.Runtime
			}
			if path != "" {
				if err := m.InitPath(path); err != nil {
					c.Close()
					return err
				}
			}
			m.Render()

			ps := c.Prompt()
			err = c.Run(m, func() bool {
				p := ps
				if labelLine {
					p = m.PromptLabel(ps)
				}
				return m.Poll(p)
			})
			if cerr := c.Close(); err == nil {
				err = cerr
			}
			return finish(err)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Start in this submenu, e.g. main.brightness")
	cmd.Flags().StringSliceVar(&levelIDs, "levels", []string{"brightness", "contrast"}, "Menu IDs that carry an adjustable 0-100 level")
	cmd.Flags().BoolVar(&noMemory, "no-memory", false, "Disable the 'free' command")
	cmd.Flags().BoolVar(&noExit, "no-exit", false, "Keep running when 0 is entered at the top level")
	cmd.Flags().BoolVar(&labelLine, "breadcrumb", true, "Prefix the prompt with the current menu path")
	return cmd
}

func init() {
	rootCmd.AddCommand(newMenuCmd())
}

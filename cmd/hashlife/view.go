package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/noctilu/hashlife/internal/tui"
)

func newViewCmd(c *cfg) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <pattern>",
		Short: "Open a live, pannable, zoomable view of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := loadPattern(args[0], c.v.GetString("rule"), c.log)
			if err != nil {
				return err
			}

			model := tui.New(u, c.log)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
	return cmd
}

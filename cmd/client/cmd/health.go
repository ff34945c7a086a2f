package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Проверить доступность сервера",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if err := app.CheckConnection(cmd.Context()); err != nil {
			color.New(color.FgRed).Fprintf(out, "✗ %s недоступен\n", app.ServerAddress())
			return err
		}

		color.New(color.FgGreen).Fprintf(out, "✓ %s доступен\n", app.ServerAddress())
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drewhinkson/stylepanel/internal/ui"
	"github.com/drewhinkson/stylepanel/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		fmt.Println(ui.Bold.Render("stylepanel " + info.Short()))
		if info.Date != "" {
			fmt.Println(ui.MutedStyle.Render("built:    " + info.Date))
		}
		fmt.Println(ui.MutedStyle.Render("go:       " + info.GoVersion))
		fmt.Println(ui.MutedStyle.Render("platform: " + info.Platform))
		return nil
	},
}

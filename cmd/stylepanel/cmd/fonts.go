package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drewhinkson/stylepanel/internal/styler"
	"github.com/drewhinkson/stylepanel/internal/ui"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List the font families, sizes, and preset colors",
	RunE:  runFonts,
}

func runFonts(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.Title.Render("Font Families"))
	for _, family := range styler.FontFamilies() {
		fmt.Printf("  %s %s\n", ui.StatusPending.String(), family)
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("Font Sizes"))
	sizes := styler.FontSizes()
	if cfg != nil {
		sizes = cfg.FontSizeOptions()
	}
	for _, size := range sizes {
		fmt.Printf("  %s %s\n", ui.StatusPending.String(), size)
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("Preset Colors"))
	presets := styler.ColorPresets()
	if cfg != nil {
		presets = cfg.ColorOptions()
	}
	for _, preset := range presets {
		fmt.Printf("  %s %s %s\n", ui.StatusPending.String(), preset.Name, ui.MutedStyle.Render(preset.Hex))
	}

	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/drewhinkson/stylepanel/internal/styler"
	"github.com/drewhinkson/stylepanel/internal/ui"
)

var (
	applySize   string
	applyHex    string
	applyPreset string
	applyFamily string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply font styles to the selected element",
	Long: `Apply a font size, color, and family to the currently selected
element. The values become a new named style (dynamicStyle0, dynamicStyle1,
...) that replaces whatever style the element had.

A freeform hex color wins over the preset when it is a valid #RGB or
#RRGGBB value; otherwise the preset is used.

Examples:
  stylepanel apply
  stylepanel apply --size 16px --hex "#FF0000" --family Arial
  stylepanel apply --size 24px --color "#008000" --family Georgia`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applySize, "size", "", "Font size (e.g. 16px)")
	applyCmd.Flags().StringVar(&applyHex, "hex", "", "Freeform hex color (e.g. #FF0000)")
	applyCmd.Flags().StringVar(&applyPreset, "color", "", "Preset color used when no valid hex is given")
	applyCmd.Flags().StringVar(&applyFamily, "family", "", "Font family (e.g. Arial)")
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := initPanel(); err != nil {
		return err
	}

	size := applySize
	hexInput := applyHex
	preset := applyPreset
	family := applyFamily

	if size == "" && family == "" && ui.IsInteractiveTerminal() {
		if err := runApplyForm(&size, &hexInput, &preset, &family); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	if size == "" || family == "" {
		return fmt.Errorf("apply needs --size and --family (or an interactive terminal)")
	}

	color := styler.ResolveColor(hexInput, preset)
	spec := styler.NewSpec(size, color, family)
	name := applier.NextStyleName()

	logger.Debug("applying styles", "name", name, "size", size, "color", color, "family", family)

	// Feedback is written by the applier; the returned error is intentionally
	// not propagated so one failed action never closes the panel.
	_ = applier.ApplyStyles(ctx, spec, name)
	return nil
}

func runApplyForm(size, hexInput, preset, family *string) error {
	ui.StartScreen("APPLY STYLES", "Pick font size, color, and family for the selection")

	sizeOptions := make([]huh.Option[string], 0)
	for _, s := range cfg.FontSizeOptions() {
		sizeOptions = append(sizeOptions, huh.NewOption(s, s))
	}

	colorOptions := make([]huh.Option[string], 0)
	for _, p := range cfg.ColorOptions() {
		colorOptions = append(colorOptions, huh.NewOption(fmt.Sprintf("%s (%s)", p.Name, p.Hex), p.Hex))
	}

	familyOptions := make([]huh.Option[string], 0)
	for _, f := range styler.FontFamilies() {
		familyOptions = append(familyOptions, huh.NewOption(f, f))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Font Size").
				Description("Size applied to the selected element").
				Options(sizeOptions...).
				Value(size),
			huh.NewInput().
				Title("Hex Color").
				Description("Optional freeform color; wins over the preset when valid").
				Placeholder("#RRGGBB").
				Value(hexInput).
				Validate(func(value string) error {
					if value == "" {
						return nil
					}
					if !styler.IsHexColor(value) {
						return fmt.Errorf("enter a #RGB or #RRGGBB value")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Preset Color").
				Description("Used when the hex field is empty or invalid").
				Options(colorOptions...).
				Value(preset),
			huh.NewSelect[string]().
				Title("Font Family").
				Options(familyOptions...).
				Value(family),
		),
	).WithTheme(ui.HuhTheme())

	return form.Run()
}

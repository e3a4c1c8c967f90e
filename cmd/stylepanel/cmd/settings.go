package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/drewhinkson/stylepanel/internal/config"
	"github.com/drewhinkson/stylepanel/internal/styler"
	"github.com/drewhinkson/stylepanel/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Configure UI preferences and dropdown presets",
	RunE:  runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	theme := cfg.UI.Theme
	if theme == "" {
		theme = "aurora"
	}
	dense := cfg.UI.Dense
	noColorPref := cfg.UI.NoColor
	documentPath := cfg.Document
	fontSizesInput := strings.Join(cfg.Presets.FontSizes, ", ")

	themeOptions := make([]huh.Option[string], 0)
	for _, name := range ui.ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	changed := false

	ui.StartScreen("SETTINGS", "Select a settings section to edit")

	for {
		choice, err := ui.RunMenuWithOptions("SETTINGS", "Select a settings section", []ui.MenuItem{
			{ID: "display", TitleText: "Display", Details: "Theme, layout density, and color mode"},
			{ID: "document", TitleText: "Document", Details: "Which design document the panel opens"},
			{ID: "presets", TitleText: "Dropdown Presets", Details: "Extra colors and font sizes for the apply form"},
			{ID: "save", TitleText: "Save & Exit", Details: "Write updates to " + config.FileName},
			{ID: "exit", TitleText: "Exit", Details: "Leave without saving"},
		}, ui.WithBackNavigation("Back"))
		if err != nil {
			return err
		}

		switch choice {
		case ui.MenuActionBack, ui.MenuActionQuit, "exit", "":
			return nil
		case "display":
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Theme").
						Description("Color palette for the panel").
						Options(themeOptions...).
						Value(&theme),
					huh.NewConfirm().
						Title("Dense Layout").
						Description("Reduce vertical spacing in the TUI").
						Value(&dense),
					huh.NewConfirm().
						Title("Disable Colors").
						Description("Use monochrome output").
						Value(&noColorPref),
				),
			).WithTheme(ui.HuhTheme())

			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				return err
			}
			changed = true
		case "document":
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Design Document").
						Description("Path, relative to the project root").
						Value(&documentPath).
						Validate(func(value string) error {
							if strings.TrimSpace(value) == "" {
								return fmt.Errorf("enter a document path")
							}
							return nil
						}),
				),
			).WithTheme(ui.HuhTheme())

			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				return err
			}
			changed = true
		case "presets":
			var presetName, presetHex string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Extra Font Sizes").
						Description("Comma-separated, e.g. 10px, 48px").
						Value(&fontSizesInput),
					huh.NewInput().
						Title("New Preset Color Name").
						Description("Leave empty to skip").
						Value(&presetName),
					huh.NewInput().
						Title("New Preset Color Hex").
						Placeholder("#RRGGBB").
						Value(&presetHex).
						Validate(func(value string) error {
							if value == "" {
								return nil
							}
							if !styler.IsHexColor(value) {
								return fmt.Errorf("enter a #RGB or #RRGGBB value")
							}
							return nil
						}),
				),
			).WithTheme(ui.HuhTheme())

			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				return err
			}
			if presetName != "" && presetHex != "" {
				cfg.Presets.Colors = append(cfg.Presets.Colors, config.ColorPreset{
					Name: presetName,
					Hex:  presetHex,
				})
			}
			changed = true
		case "save":
			if !changed {
				return nil
			}
			cfg.UI.Theme = theme
			cfg.UI.Dense = dense
			cfg.UI.NoColor = noColorPref
			cfg.Document = strings.TrimSpace(documentPath)
			cfg.Presets.FontSizes = splitCSV(fontSizesInput)

			if err := cfg.Validate(); err != nil {
				fmt.Println(ui.ErrorStyle.Render("✗ " + err.Error()))
				continue
			}

			path := cfgFile
			if path == "" {
				var err error
				path, err = config.GetConfigPath()
				if err != nil {
					return err
				}
			}
			if err := cfg.Save(path); err != nil {
				return fmt.Errorf("saving settings: %w", err)
			}

			applyUISettings()
			fmt.Println(ui.SuccessStyle.Render("✓ settings saved to " + path))
			return nil
		}
	}
}

func splitCSV(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/drewhinkson/stylepanel/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [combo-class]",
	Short: "Check whether a combo class is attached to the selection",
	Long: `Check whether the currently selected element carries a style with
exactly the given name. The match is case-sensitive.

Examples:
  stylepanel check hero
  stylepanel check`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := initPanel(); err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	if name == "" && ui.IsInteractiveTerminal() {
		ui.StartScreen("CHECK COMBO CLASS", "Look up a combo class on the selected element")
		err := huh.NewInput().
			Title("Combo Class").
			Description("Exact, case-sensitive style name").
			Placeholder("hero").
			Suggestions(store.StyleNames()).
			Value(&name).
			Validate(func(value string) error {
				if value == "" {
					return fmt.Errorf("enter a combo class name")
				}
				return nil
			}).
			WithTheme(ui.HuhTheme()).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	if name == "" {
		return fmt.Errorf("check needs a combo class name (or an interactive terminal)")
	}

	logger.Debug("checking combo class", "name", name)

	// Outcome feedback comes from the checker; a miss is feedback, not a fault.
	_ = checker.CheckComboClass(ctx, name)
	return nil
}

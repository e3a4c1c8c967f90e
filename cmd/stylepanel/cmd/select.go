package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/drewhinkson/stylepanel/internal/ui"
)

var selectCmd = &cobra.Command{
	Use:   "select [element-id]",
	Short: "Change which element of the document is selected",
	Long: `Select an element of the design document. Subsequent apply and
check actions target this element. With no argument, an interactive picker
lists the document's elements.

Examples:
  stylepanel select hero-heading
  stylepanel select`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	if err := initPanel(); err != nil {
		return err
	}

	var id string
	if len(args) > 0 {
		id = args[0]
	}

	if id == "" {
		if !ui.IsInteractiveTerminal() {
			return fmt.Errorf("select needs an element id (or an interactive terminal)")
		}

		doc := store.Snapshot()
		if len(doc.Elements) == 0 {
			return fmt.Errorf("document has no elements")
		}

		options := make([]huh.Option[string], 0, len(doc.Elements))
		for _, el := range doc.Elements {
			label := el.ID
			if el.Kind != "" {
				label = fmt.Sprintf("%s (%s)", el.ID, el.Kind)
			}
			options = append(options, huh.NewOption(label, el.ID))
		}

		ui.StartScreen("SELECT ELEMENT", "Pick the element that apply and check target")
		err := huh.NewSelect[string]().
			Title("Element").
			Options(options...).
			Value(&id).
			WithTheme(ui.HuhTheme()).
			WithKeyMap(newHuhBackOnQKeyMap()).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	if err := ui.RunWithSpinner("Selecting "+id, func() error {
		return store.Select(id)
	}); err != nil {
		return fmt.Errorf("selecting element: %w", err)
	}
	return nil
}

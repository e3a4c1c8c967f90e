package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drewhinkson/stylepanel/internal/ui"
	"github.com/drewhinkson/stylepanel/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and design document",
	Long: `Validate project files including:
  - Configuration (stylepanel.yaml)
  - Design document (unique names, resolvable style references,
    well-formed color values)

Examples:
  stylepanel validate`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rootDir, err := getProjectRoot()
	if err != nil {
		return fmt.Errorf("finding project root: %w", err)
	}

	docPath, err := resolveDocumentPath()
	if err != nil {
		return err
	}

	ui.StartScreen("VALIDATION", "Scan configuration and design document")

	var errs []string
	var warnings []string

	fmt.Println(ui.Title.Render("Configuration"))
	configResult := validate.Config(ctx, rootDir, cfgFile)
	printValidationItems(configResult)
	errs = append(errs, configResult.Errors...)
	warnings = append(warnings, configResult.Warnings...)

	fmt.Println()
	fmt.Println(ui.Title.Render("Design Document"))
	docResult := validate.Document(ctx, docPath)
	printValidationItems(docResult)
	errs = append(errs, docResult.Errors...)
	warnings = append(warnings, docResult.Warnings...)

	fmt.Println()
	switch {
	case len(errs) > 0:
		fmt.Println(ui.ErrorBox.Render(fmt.Sprintf("Validation failed\n\n%s", strings.Join(errs, "\n"))))
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	case len(warnings) > 0:
		fmt.Println(ui.InfoBox.Render(fmt.Sprintf("Validation passed with warnings\n\n%s", strings.Join(warnings, "\n"))))
	default:
		fmt.Println(ui.SuccessBox.Render("Validation passed"))
	}

	return nil
}

func printValidationItems(result validate.Result) {
	for _, item := range result.Items {
		var marker string
		switch item.Status {
		case validate.StatusSuccess:
			marker = ui.StatusSuccess.String()
		case validate.StatusError:
			marker = ui.StatusError.String()
		default:
			marker = ui.StatusPending.String()
		}
		line := fmt.Sprintf("  %s %s", marker, item.Name)
		if item.Details != "" {
			line += " " + ui.MutedStyle.Render("("+item.Details+")")
		}
		fmt.Println(line)
	}
}

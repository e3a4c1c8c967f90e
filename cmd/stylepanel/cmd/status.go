package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drewhinkson/stylepanel/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the document, its elements, styles, and selection",
	Long: `Display the current panel status including:
  - Design document and current selection
  - Elements and their attached styles
  - Persisted named styles

Examples:
  stylepanel status`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := initPanel(); err != nil {
		return err
	}

	doc := store.Snapshot()

	ui.StartScreen("STATUS", "Document overview")

	fmt.Println(ui.Title.Render("Document"))
	printKV("Name", doc.Name)
	printKV("Path", store.Path())
	if doc.Selected != "" {
		printKV("Selected", doc.Selected)
	} else {
		printKV("Selected", ui.MutedStyle.Render("none"))
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("Elements"))
	if len(doc.Elements) == 0 {
		fmt.Println(ui.MutedStyle.Render("  No elements"))
	}
	for _, el := range doc.Elements {
		marker := ui.StatusPending.String()
		if el.ID == doc.Selected {
			marker = ui.StatusSuccess.String()
		}
		line := fmt.Sprintf("  %s %s", marker, el.ID)
		if el.Kind != "" {
			line += ui.MutedStyle.Render(" (" + el.Kind + ")")
		}
		if len(el.Styles) > 0 {
			line += ui.MutedStyle.Render(" [" + strings.Join(el.Styles, ", ") + "]")
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("Styles"))
	if len(doc.Styles) == 0 {
		fmt.Println(ui.MutedStyle.Render("  No styles"))
	}
	for _, st := range doc.Styles {
		props := make([]string, 0, len(st.Properties))
		for k, v := range st.Properties {
			props = append(props, k+": "+v)
		}
		sort.Strings(props)
		fmt.Printf("  %s %s %s\n", ui.StatusSuccess.String(), st.Name,
			ui.MutedStyle.Render("{"+strings.Join(props, "; ")+"}"))
	}

	return nil
}

func printKV(key, value string) {
	fmt.Printf("  %s %s\n", ui.MutedStyle.Render(fmt.Sprintf("%-10s", key+":")), value)
}

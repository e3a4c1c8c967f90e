package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drewhinkson/stylepanel/internal/exec"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the design document in your editor",
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	path, err := resolveDocumentPath()
	if err != nil {
		return err
	}

	logger.Debug("opening document", "path", path)

	if err := exec.Editor(context.Background(), path, logger); err != nil {
		return fmt.Errorf("editing document: %w", err)
	}
	return nil
}

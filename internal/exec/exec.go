// Package exec launches external programs for stylepanel
package exec

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// EditorCommand resolves the editor command line for path. VISUAL wins over
// EDITOR, either may carry flags, and vi is the fallback. The binary must be
// on PATH.
func EditorCommand(path string) (string, []string, error) {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("empty editor command")
	}
	if !CheckCommand(parts[0]) {
		return "", nil, fmt.Errorf("editor %s not found in PATH", parts[0])
	}
	return parts[0], append(parts[1:], path), nil
}

// Editor opens path in the user's editor with the terminal attached.
func Editor(ctx context.Context, path string, logger *log.Logger) error {
	name, args, err := EditorCommand(path)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Debug("launching editor", "cmd", FormatCommand(name, args))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// CheckCommand checks if a command is available
func CheckCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// FormatCommand formats a command for display
func FormatCommand(name string, args []string) string {
	parts := append([]string{name}, args...)
	return strings.Join(parts, " ")
}

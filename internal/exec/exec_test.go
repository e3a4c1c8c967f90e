package exec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	assert.True(t, CheckCommand("sh"))
	assert.False(t, CheckCommand("stylepanel-no-such-binary"))
}

func TestFormatCommand(t *testing.T) {
	assert.Equal(t, "vi -u NONE design.yaml", FormatCommand("vi", []string{"-u", "NONE", "design.yaml"}))
	assert.Equal(t, "vi", FormatCommand("vi", nil))
}

func TestEditorCommand(t *testing.T) {
	t.Run("visual wins over editor", func(t *testing.T) {
		t.Setenv("VISUAL", "sh -n")
		t.Setenv("EDITOR", "stylepanel-no-such-binary")

		name, args, err := EditorCommand("design.yaml")
		require.NoError(t, err)
		assert.Equal(t, "sh", name)
		assert.Equal(t, []string{"-n", "design.yaml"}, args)
	})

	t.Run("editor is the fallback", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", "sh")

		name, args, err := EditorCommand("design.yaml")
		require.NoError(t, err)
		assert.Equal(t, "sh", name)
		assert.Equal(t, []string{"design.yaml"}, args)
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		t.Setenv("VISUAL", "stylepanel-no-such-binary")
		t.Setenv("EDITOR", "")

		_, _, err := EditorCommand("design.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stylepanel-no-such-binary")
	})
}

func TestEditorRuns(t *testing.T) {
	t.Setenv("VISUAL", "true")
	t.Setenv("EDITOR", "")

	require.NoError(t, Editor(context.Background(), "design.yaml", nil))
}

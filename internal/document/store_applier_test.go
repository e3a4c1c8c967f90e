package document

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewhinkson/stylepanel/internal/styler"
	"github.com/drewhinkson/stylepanel/internal/ui"
)

type capturedFeedback struct {
	messages []string
	kinds    []ui.Outcome
}

func (c *capturedFeedback) Report(message string, kind ui.Outcome) {
	c.messages = append(c.messages, message)
	c.kinds = append(c.kinds, kind)
}

// End to end: applier and checker against the real file-backed store.
func TestApplierAgainstStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")
	store, err := Open(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.AddElement("hero-heading", "heading"))
	require.NoError(t, store.Select("hero-heading"))

	feedback := &capturedFeedback{}
	applier := styler.NewApplier(store, feedback)

	name := applier.NextStyleName()
	require.NoError(t, applier.ApplyStyles(ctx, styler.NewSpec("16px", "#FF0000", "Arial"), name))

	require.Len(t, feedback.kinds, 1)
	assert.Equal(t, ui.OutcomeSuccess, feedback.kinds[0])

	checker := styler.NewChecker(store, feedback)
	require.NoError(t, checker.CheckComboClass(ctx, "dynamicStyle0"))
	require.Len(t, feedback.kinds, 2)
	assert.Equal(t, ui.OutcomeSuccess, feedback.kinds[1])

	require.NoError(t, checker.CheckComboClass(ctx, "ghost"))
	require.Len(t, feedback.kinds, 3)
	assert.Equal(t, ui.OutcomeError, feedback.kinds[2])

	// The document on disk reflects the applied style.
	reopened, err := Open(path)
	require.NoError(t, err)
	doc := reopened.Snapshot()
	require.Len(t, doc.Styles, 1)
	assert.Equal(t, "dynamicStyle0", doc.Styles[0].Name)
}

func TestApplierUnstylableElementAgainstStore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "design.yaml"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.AddElement("promo-embed", "embed"))
	require.NoError(t, store.Select("promo-embed"))

	feedback := &capturedFeedback{}
	applier := styler.NewApplier(store, feedback)

	err = applier.ApplyStyles(ctx, styler.NewSpec("16px", "#FF0000", "Arial"), applier.NextStyleName())
	assert.ErrorIs(t, err, styler.ErrUnsupportedElement)

	require.Len(t, feedback.kinds, 1)
	assert.Equal(t, ui.OutcomeError, feedback.kinds[0])
	assert.Contains(t, feedback.messages[0], "promo-embed")
}

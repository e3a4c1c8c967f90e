package styler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewhinkson/stylepanel/internal/designer"
	"github.com/drewhinkson/stylepanel/internal/ui"
)

func TestCheckComboClassFound(t *testing.T) {
	element := &fakeElement{
		id:        "hero-heading",
		styleable: true,
		styles: []designer.Style{
			&fakeStyle{name: "base"},
			&fakeStyle{name: "hero"},
		},
	}
	host := &fakeHost{selected: element}
	reporter := &recordingReporter{}
	checker := NewChecker(host, reporter)

	require.NoError(t, checker.CheckComboClass(context.Background(), "hero"))

	messages, kinds := reporter.snapshot()
	require.Len(t, messages, 1)
	assert.Equal(t, ui.OutcomeSuccess, kinds[0])
	assert.Contains(t, messages[0], "hero")
	assert.Contains(t, messages[0], "exists")
}

func TestCheckComboClassMissing(t *testing.T) {
	element := &fakeElement{
		id:        "hero-heading",
		styleable: true,
		styles:    []designer.Style{&fakeStyle{name: "base"}},
	}
	host := &fakeHost{selected: element}
	reporter := &recordingReporter{}
	checker := NewChecker(host, reporter)

	require.NoError(t, checker.CheckComboClass(context.Background(), "hero"))

	messages, kinds := reporter.snapshot()
	require.Len(t, messages, 1)
	assert.Equal(t, ui.OutcomeError, kinds[0])
	assert.Contains(t, messages[0], "hero")
	assert.Contains(t, messages[0], "does not exist")
}

func TestCheckComboClassCaseSensitive(t *testing.T) {
	element := &fakeElement{
		id:        "hero-heading",
		styleable: true,
		styles:    []designer.Style{&fakeStyle{name: "Hero"}},
	}
	host := &fakeHost{selected: element}
	reporter := &recordingReporter{}
	checker := NewChecker(host, reporter)

	require.NoError(t, checker.CheckComboClass(context.Background(), "hero"))

	_, kinds := reporter.snapshot()
	require.Len(t, kinds, 1)
	assert.Equal(t, ui.OutcomeError, kinds[0])
}

func TestCheckComboClassNoSelection(t *testing.T) {
	host := &fakeHost{}
	reporter := &recordingReporter{}
	checker := NewChecker(host, reporter)

	err := checker.CheckComboClass(context.Background(), "hero")
	require.ErrorIs(t, err, designer.ErrNoSelection)

	messages, kinds := reporter.snapshot()
	require.Len(t, messages, 1)
	assert.Equal(t, "no element selected", messages[0])
	assert.Equal(t, ui.OutcomeError, kinds[0])
}

func TestCheckComboClassStylesFetchFailure(t *testing.T) {
	element := &fakeElement{
		id:        "hero-heading",
		styleable: true,
		stylesErr: errors.New("styles unavailable"),
	}
	host := &fakeHost{selected: element}
	reporter := &recordingReporter{}
	checker := NewChecker(host, reporter)

	err := checker.CheckComboClass(context.Background(), "hero")

	var opErr *designer.OpError
	require.ErrorAs(t, err, &opErr)

	messages, kinds := reporter.snapshot()
	require.Len(t, messages, 1)
	assert.Equal(t, ui.OutcomeError, kinds[0])
	assert.Contains(t, messages[0], "styles unavailable")
}

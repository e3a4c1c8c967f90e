package styler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewhinkson/stylepanel/internal/designer"
	"github.com/drewhinkson/stylepanel/internal/ui"
)

func TestNextStyleName(t *testing.T) {
	applier := NewApplier(&fakeHost{}, nil)

	assert.Equal(t, "dynamicStyle0", applier.NextStyleName())
	assert.Equal(t, "dynamicStyle1", applier.NextStyleName())
	assert.Equal(t, "dynamicStyle2", applier.NextStyleName())
}

func TestNextStyleNameUniqueUnderConcurrency(t *testing.T) {
	applier := NewApplier(&fakeHost{}, nil)

	const workers = 50
	names := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			names <- applier.NextStyleName()
		}()
	}
	wg.Wait()
	close(names)

	seen := make(map[string]bool, workers)
	for name := range names {
		assert.False(t, seen[name], "name %s repeated", name)
		seen[name] = true
	}
	assert.Len(t, seen, workers)
}

func TestApplyStylesNoSelection(t *testing.T) {
	host := &fakeHost{}
	reporter := &recordingReporter{}
	applier := NewApplier(host, reporter)

	err := applier.ApplyStyles(context.Background(), NewSpec("16px", "#FF0000", "Arial"), "dynamicStyle0")

	require.ErrorIs(t, err, designer.ErrNoSelection)
	assert.Empty(t, host.createdStyles(), "no style should be created without a selection")

	messages, kinds := reporter.snapshot()
	require.Len(t, messages, 1)
	assert.Equal(t, "no element selected", messages[0])
	assert.Equal(t, ui.OutcomeError, kinds[0])
}

func TestApplyStylesHappyPath(t *testing.T) {
	element := &fakeElement{id: "hero-heading", styleable: true}
	host := &fakeHost{selected: element}
	reporter := &recordingReporter{}
	applier := NewApplier(host, reporter)

	spec := NewSpec("16px", "#FF0000", "Arial")
	err := applier.ApplyStyles(context.Background(), spec, applier.NextStyleName())
	require.NoError(t, err)

	created := host.createdStyles()
	require.Len(t, created, 1)
	assert.Equal(t, "dynamicStyle0", created[0].name)
	assert.True(t, created[0].saved)
	assert.Equal(t, map[string]string{
		"font-size":   "16px",
		"color":       "#FF0000",
		"font-family": "Arial",
	}, created[0].props)

	assert.True(t, element.setCalled)
	require.Len(t, element.styles, 1, "element styles should be replaced with the single new style")
	assert.Equal(t, "dynamicStyle0", element.styles[0].Name())
	assert.True(t, element.saved)

	messages, kinds := reporter.snapshot()
	require.Len(t, messages, 1)
	assert.Equal(t, ui.OutcomeSuccess, kinds[0])
	assert.Contains(t, messages[0], "dynamicStyle0")
}

func TestApplyStylesReplacesExistingStyles(t *testing.T) {
	element := &fakeElement{
		id:        "hero-heading",
		styleable: true,
		styles:    []designer.Style{&fakeStyle{name: "old-style"}},
	}
	host := &fakeHost{selected: element}
	applier := NewApplier(host, &recordingReporter{})

	err := applier.ApplyStyles(context.Background(), NewSpec("20px", "#000", "Georgia"), "dynamicStyle0")
	require.NoError(t, err)

	require.Len(t, element.styles, 1)
	assert.Equal(t, "dynamicStyle0", element.styles[0].Name())
}

func TestApplyStylesStyleSaveFailure(t *testing.T) {
	element := &fakeElement{id: "hero-heading", styleable: true}
	host := &fakeHost{selected: element, styleErr: errors.New("quota exceeded")}
	reporter := &recordingReporter{}
	applier := NewApplier(host, reporter)

	err := applier.ApplyStyles(context.Background(), NewSpec("16px", "#FF0000", "Arial"), "dynamicStyle0")

	var opErr *designer.OpError
	require.ErrorAs(t, err, &opErr)
	assert.False(t, element.setCalled, "failed style save should not touch the element")

	messages, kinds := reporter.snapshot()
	require.Len(t, messages, 1)
	assert.Equal(t, ui.OutcomeError, kinds[0])
	assert.Contains(t, messages[0], "quota exceeded")
}

func TestApplyStylesUnsupportedElement(t *testing.T) {
	element := &fakeElement{id: "embed-1", styleable: false}
	host := &fakeHost{selected: element}
	reporter := &recordingReporter{}
	applier := NewApplier(host, reporter)

	err := applier.ApplyStyles(context.Background(), NewSpec("16px", "#FF0000", "Arial"), "dynamicStyle0")

	require.ErrorIs(t, err, ErrUnsupportedElement)
	assert.False(t, element.setCalled)

	messages, kinds := reporter.snapshot()
	require.Len(t, messages, 1)
	assert.Equal(t, ui.OutcomeError, kinds[0])
	assert.Contains(t, messages[0], "embed-1")
}

func TestApplyStylesElementSaveFailure(t *testing.T) {
	element := &fakeElement{id: "hero-heading", styleable: true, saveErr: errors.New("document locked")}
	host := &fakeHost{selected: element}
	reporter := &recordingReporter{}
	applier := NewApplier(host, reporter)

	err := applier.ApplyStyles(context.Background(), NewSpec("16px", "#FF0000", "Arial"), "dynamicStyle0")

	var opErr *designer.OpError
	require.ErrorAs(t, err, &opErr)

	messages, kinds := reporter.snapshot()
	require.Len(t, messages, 1)
	assert.Equal(t, ui.OutcomeError, kinds[0])
	assert.Contains(t, messages[0], "document locked")
}

func TestApplyStylesSelectionFetchFailure(t *testing.T) {
	host := &fakeHost{selectedErr: errors.New("host unreachable")}
	reporter := &recordingReporter{}
	applier := NewApplier(host, reporter)

	err := applier.ApplyStyles(context.Background(), NewSpec("16px", "#FF0000", "Arial"), "dynamicStyle0")

	var opErr *designer.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Empty(t, host.createdStyles())

	messages, _ := reporter.snapshot()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "host unreachable")
}

func TestApplyStylesOverlappingCalls(t *testing.T) {
	element := &fakeElement{id: "hero-heading", styleable: true}
	host := &fakeHost{selected: element}
	reporter := &recordingReporter{}
	applier := NewApplier(host, reporter)

	const calls = 10
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := applier.NextStyleName()
			_ = applier.ApplyStyles(context.Background(), NewSpec("16px", "#FF0000", "Arial"), name)
		}()
	}
	wg.Wait()

	// Both/all calls complete and report; the winner of the element's final
	// style is whichever finished last, which is fine. What must hold: one
	// created style per call, unique names, one feedback line per call.
	created := host.createdStyles()
	assert.Len(t, created, calls)
	seen := make(map[string]bool, calls)
	for _, st := range created {
		assert.False(t, seen[st.name], "style name %s repeated", st.name)
		seen[st.name] = true
	}

	messages, _ := reporter.snapshot()
	assert.Len(t, messages, calls)
}

func TestApplierSequentialNames(t *testing.T) {
	element := &fakeElement{id: "hero-heading", styleable: true}
	host := &fakeHost{selected: element}
	applier := NewApplier(host, &recordingReporter{})

	for i := 0; i < 3; i++ {
		name := applier.NextStyleName()
		assert.Equal(t, fmt.Sprintf("dynamicStyle%d", i), name)
		require.NoError(t, applier.ApplyStyles(context.Background(), NewSpec("16px", "#FF0000", "Arial"), name))
	}
}

package styler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/drewhinkson/stylepanel/internal/designer"
	"github.com/drewhinkson/stylepanel/internal/ui"
)

// ErrUnsupportedElement indicates the selected element has no styles
// collection and cannot be styled.
var ErrUnsupportedElement = errors.New("element does not support styles")

// Applier creates named styles in the host and attaches them to the
// current selection. One Applier instance owns the style-name counter for
// the process; names never repeat within a running session.
type Applier struct {
	host     designer.API
	reporter ui.Reporter
	counter  atomic.Int64
}

// NewApplier creates an Applier against the given host. Feedback goes
// through reporter; a nil reporter suppresses feedback.
func NewApplier(host designer.API, reporter ui.Reporter) *Applier {
	return &Applier{host: host, reporter: reporter}
}

// NextStyleName generates the next unique style name. The counter starts at
// zero and is consumed post-increment, so the first name is dynamicStyle0.
func (a *Applier) NextStyleName() string {
	n := a.counter.Add(1) - 1
	return fmt.Sprintf("dynamicStyle%d", n)
}

// ApplyStyles creates a named style carrying spec and attaches it as the
// selected element's sole style, replacing any previously attached styles.
// Every outcome is reported through the reporter; the returned error carries
// the structured cause for callers that want it and is never reported twice.
func (a *Applier) ApplyStyles(ctx context.Context, spec Spec, name string) error {
	element, err := a.host.SelectedElement(ctx)
	if err != nil {
		opErr := &designer.OpError{Op: "fetching selection", Err: err}
		a.report(opErr.Error(), ui.OutcomeError)
		return opErr
	}
	if element == nil {
		a.report("no element selected", ui.OutcomeError)
		return designer.ErrNoSelection
	}

	style := a.host.CreateStyle(name)
	style.SetProperties(spec)
	if err := style.Save(ctx); err != nil {
		opErr := &designer.OpError{Op: fmt.Sprintf("saving style %s", name), Err: err}
		a.report(opErr.Error(), ui.OutcomeError)
		return opErr
	}

	if !element.SupportsStyles() {
		a.report(fmt.Sprintf("element %s does not support styles", element.ID()), ui.OutcomeError)
		return ErrUnsupportedElement
	}

	element.SetStyles([]designer.Style{style})
	if err := element.Save(ctx); err != nil {
		opErr := &designer.OpError{Op: "saving element", Err: err}
		a.report(opErr.Error(), ui.OutcomeError)
		return opErr
	}

	a.report(fmt.Sprintf("styles applied as %s", name), ui.OutcomeSuccess)
	return nil
}

func (a *Applier) report(message string, kind ui.Outcome) {
	if a.reporter != nil {
		a.reporter.Report(message, kind)
	}
}

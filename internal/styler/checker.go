package styler

import (
	"context"
	"fmt"

	"github.com/drewhinkson/stylepanel/internal/designer"
	"github.com/drewhinkson/stylepanel/internal/ui"
)

// Checker looks up whether a named combo class is attached to the current
// selection.
type Checker struct {
	host     designer.API
	reporter ui.Reporter
}

// NewChecker creates a Checker against the given host.
func NewChecker(host designer.API, reporter ui.Reporter) *Checker {
	return &Checker{host: host, reporter: reporter}
}

// CheckComboClass reports whether any style attached to the selected element
// has exactly the given name. The match is case-sensitive and the style list
// is fully resolved before searching. An absent combo class is reported as
// error-kind feedback but is not a fault.
func (c *Checker) CheckComboClass(ctx context.Context, name string) error {
	element, err := c.host.SelectedElement(ctx)
	if err != nil {
		opErr := &designer.OpError{Op: "fetching selection", Err: err}
		c.report(opErr.Error(), ui.OutcomeError)
		return opErr
	}
	if element == nil {
		c.report("no element selected", ui.OutcomeError)
		return designer.ErrNoSelection
	}

	styles, err := element.Styles(ctx)
	if err != nil {
		opErr := &designer.OpError{Op: "fetching element styles", Err: err}
		c.report(opErr.Error(), ui.OutcomeError)
		return opErr
	}

	for _, style := range styles {
		if style.Name() == name {
			c.report(fmt.Sprintf("%s exists", name), ui.OutcomeSuccess)
			return nil
		}
	}

	c.report(fmt.Sprintf("%s does not exist", name), ui.OutcomeError)
	return nil
}

func (c *Checker) report(message string, kind ui.Outcome) {
	if c.reporter != nil {
		c.reporter.Report(message, kind)
	}
}

// Package designer defines the host object model consumed by the style panel.
package designer

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoSelection indicates that no element is currently selected in the host.
// Callers treat this as an expected state, not a fault.
var ErrNoSelection = errors.New("no element selected")

// Style is a named style owned by the host environment.
type Style interface {
	// Name returns the style's display name, unique within the host document.
	Name() string
	// SetProperties replaces the style's CSS property map.
	SetProperties(props map[string]string)
	// Save persists the style in the host.
	Save(ctx context.Context) error
}

// Element is a transient reference to an element in the host document.
type Element interface {
	// ID identifies the element within the host document.
	ID() string
	// SupportsStyles reports whether the element exposes a styles collection.
	// Some element kinds in the host cannot be styled.
	SupportsStyles() bool
	// Styles returns the element's resolved style list.
	Styles(ctx context.Context) ([]Style, error)
	// SetStyles replaces the element's attached styles.
	SetStyles(styles []Style)
	// Save persists the element in the host.
	Save(ctx context.Context) error
}

// API is the capability surface the host exposes to the panel.
type API interface {
	// SelectedElement returns the currently selected element, or nil when
	// nothing is selected. A nil element with a nil error is a valid state.
	SelectedElement(ctx context.Context) (Element, error)
	// CreateStyle creates a new, unsaved style with the given name.
	CreateStyle(name string) Style
}

// OpError wraps a failed host operation with the operation name, so callers
// can report structured errors and format them only at display time.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

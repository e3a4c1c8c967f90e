package styler

import (
	"context"
	"sync"

	"github.com/drewhinkson/stylepanel/internal/designer"
	"github.com/drewhinkson/stylepanel/internal/ui"
)

// recordingReporter captures feedback for assertions.
type recordingReporter struct {
	mu       sync.Mutex
	messages []string
	kinds    []ui.Outcome
}

func (r *recordingReporter) Report(message string, kind ui.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	r.kinds = append(r.kinds, kind)
}

func (r *recordingReporter) snapshot() ([]string, []ui.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...), append([]ui.Outcome(nil), r.kinds...)
}

type fakeStyle struct {
	name    string
	props   map[string]string
	saveErr error
	saved   bool
}

func (s *fakeStyle) Name() string { return s.name }

func (s *fakeStyle) SetProperties(props map[string]string) {
	s.props = props
}

func (s *fakeStyle) Save(ctx context.Context) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = true
	return nil
}

type fakeElement struct {
	mu        sync.Mutex
	id        string
	styleable bool
	styles    []designer.Style
	stylesErr error
	saveErr   error
	saved     bool
	setCalled bool
}

func (e *fakeElement) ID() string { return e.id }

func (e *fakeElement) SupportsStyles() bool { return e.styleable }

func (e *fakeElement) Styles(ctx context.Context) ([]designer.Style, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stylesErr != nil {
		return nil, e.stylesErr
	}
	return e.styles, nil
}

func (e *fakeElement) SetStyles(styles []designer.Style) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.styles = styles
	e.setCalled = true
}

func (e *fakeElement) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.saveErr != nil {
		return e.saveErr
	}
	e.saved = true
	return nil
}

type fakeHost struct {
	mu          sync.Mutex
	selected    designer.Element
	selectedErr error
	created     []*fakeStyle
	styleErr    error // save error injected into created styles
}

func (h *fakeHost) SelectedElement(ctx context.Context) (designer.Element, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.selected, h.selectedErr
}

func (h *fakeHost) CreateStyle(name string) designer.Style {
	h.mu.Lock()
	defer h.mu.Unlock()
	style := &fakeStyle{name: name, saveErr: h.styleErr}
	h.created = append(h.created, style)
	return style
}

func (h *fakeHost) createdStyles() []*fakeStyle {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*fakeStyle(nil), h.created...)
}

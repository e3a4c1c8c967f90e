package ui

import (
	"fmt"
	"io"
	"sync"
)

// Outcome classifies a feedback message.
type Outcome int

const (
	OutcomeError Outcome = iota
	OutcomeSuccess
)

// Reporter writes user-facing outcome messages to a shared feedback region.
type Reporter interface {
	Report(message string, kind Outcome)
}

// TerminalReporter renders feedback with the active palette: red for errors,
// green for success. Concurrent reports are serialized; the last writer wins.
type TerminalReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminalReporter creates a reporter writing to w. A nil writer yields a
// reporter whose Report is a no-op, so an unbound feedback region degrades
// silently instead of failing the action.
func NewTerminalReporter(w io.Writer) *TerminalReporter {
	return &TerminalReporter{w: w}
}

func (r *TerminalReporter) Report(message string, kind Outcome) {
	if r == nil || r.w == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	switch kind {
	case OutcomeSuccess:
		fmt.Fprintln(r.w, SuccessStyle.Render("✓ "+message))
	default:
		fmt.Fprintln(r.w, ErrorStyle.Render("✗ "+message))
	}
}

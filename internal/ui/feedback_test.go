package ui

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalReporterWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewTerminalReporter(&buf)

	reporter.Report("styles applied as dynamicStyle0", OutcomeSuccess)
	assert.Contains(t, buf.String(), "styles applied as dynamicStyle0")

	buf.Reset()
	reporter.Report("no element selected", OutcomeError)
	assert.Contains(t, buf.String(), "no element selected")
}

func TestTerminalReporterNilWriterIsNoop(t *testing.T) {
	reporter := NewTerminalReporter(nil)
	assert.NotPanics(t, func() {
		reporter.Report("anything", OutcomeError)
	})
}

func TestTerminalReporterNilReceiverIsNoop(t *testing.T) {
	var reporter *TerminalReporter
	assert.NotPanics(t, func() {
		reporter.Report("anything", OutcomeSuccess)
	})
}

func TestTerminalReporterConcurrentReports(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewTerminalReporter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reporter.Report("message", OutcomeSuccess)
		}()
	}
	wg.Wait()

	// Lines may land in any order but never interleave mid-line.
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 20, lines)
}

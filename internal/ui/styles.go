// Package ui provides Charm-based UI components for stylepanel
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette, rebound by ApplyPalette
	Primary    = lipgloss.Color("#22D3EE")
	Secondary  = lipgloss.Color("#A78BFA")
	Accent     = lipgloss.Color("#38BDF8")
	Info       = lipgloss.Color("#60A5FA")
	Success    = lipgloss.Color("#34D399")
	Warning    = lipgloss.Color("#FBBF24")
	Error      = lipgloss.Color("#F87171")
	Muted      = lipgloss.Color("#94A3B8")
	Background = lipgloss.Color("#0B1120")
	Foreground = lipgloss.Color("#E2E8F0")
	Border     = lipgloss.Color("#334155")
	Highlight  = lipgloss.Color("#7DD3FC")

	// Text styles
	Bold = lipgloss.NewStyle().Bold(true)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Tagline = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Box styles
	InfoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	SuccessBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Success).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	ErrorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Error).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	// Status indicators
	StatusSuccess = lipgloss.NewStyle().
			Foreground(Success).
			SetString("✓")

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			SetString("✗")

	StatusPending = lipgloss.NewStyle().
			Foreground(Muted).
			SetString("○")

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Primary).
			Padding(0, 1).
			Bold(true)
)

// ApplyPalette rebinds the package styles to the given palette.
func ApplyPalette(p Palette) {
	if p.Disabled {
		blank := lipgloss.Color("")
		p = Palette{
			Name:       p.Name,
			Primary:    blank,
			Secondary:  blank,
			Accent:     blank,
			Info:       blank,
			Success:    blank,
			Warning:    blank,
			Error:      blank,
			Muted:      blank,
			Background: blank,
			Foreground: blank,
			Border:     blank,
			Highlight:  blank,
			Disabled:   true,
		}
	}

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Background = p.Background
	Foreground = p.Foreground
	Border = p.Border
	Highlight = p.Highlight

	Title = Title.Foreground(Primary)
	Tagline = Tagline.Foreground(Secondary)
	SuccessStyle = SuccessStyle.Foreground(Success)
	WarningStyle = WarningStyle.Foreground(Warning)
	ErrorStyle = ErrorStyle.Foreground(Error)
	MutedStyle = MutedStyle.Foreground(Muted)
	HintStyle = HintStyle.Foreground(Muted)
	InfoBox = InfoBox.BorderForeground(Secondary)
	SuccessBox = SuccessBox.BorderForeground(Success)
	ErrorBox = ErrorBox.BorderForeground(Error)
	StatusSuccess = StatusSuccess.Foreground(Success)
	StatusError = StatusError.Foreground(Error)
	StatusPending = StatusPending.Foreground(Muted)
	headerStyle = headerStyle.Background(Primary)
	if p.Disabled {
		headerStyle = headerStyle.Foreground(lipgloss.Color("")).Background(lipgloss.Color(""))
	}
}

// Header renders a screen title banner.
func Header(title string) string {
	return headerStyle.Render(" " + strings.ToUpper(title) + " ")
}

// PrimaryStyle returns a style bound to the current primary color.
func PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

// Package ui holds the styled terminal output helpers for ggapp-doctor.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	purple = lipgloss.Color("99")
	red    = lipgloss.Color("204")
	yellow = lipgloss.Color("214")
	dim    = lipgloss.Color("243")
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(purple)
	badStyle    = lipgloss.NewStyle().Foreground(red)
	warnStyle   = lipgloss.NewStyle().Foreground(yellow)
	mutedStyle  = lipgloss.NewStyle().Foreground(dim)
	boldStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(dim)
)

func Accent(s string) string { return accentStyle.Render(s) }
func Bold(s string) string   { return boldStyle.Render(s) }
func Muted(s string) string  { return mutedStyle.Render(s) }
func Warn(s string) string   { return warnStyle.Render(s) }

// Bool renders a boolean signal: set signals are highlighted since they
// usually steer the decision.
func Bool(v bool) string {
	if v {
		return warnStyle.Render("yes")
	}
	return mutedStyle.Render("no")
}

// ErrorMsg formats a single-line error message.
func ErrorMsg(format string, a ...any) string {
	return badStyle.Render("✗") + " " + fmt.Sprintf(format, a...)
}

// Pair is a key-value line for KeyValues.
type Pair struct {
	key   string
	value string
}

// KV creates a key-value pair.
func KV(key, value string) Pair {
	return Pair{key: key, value: value}
}

// KeyValues renders aligned "key:  value" lines with a trailing newline.
func KeyValues(indent string, pairs ...Pair) string {
	maxLen := 0
	for _, p := range pairs {
		if len(p.key) > maxLen {
			maxLen = len(p.key)
		}
	}

	var sb strings.Builder
	for _, p := range pairs {
		label := fmt.Sprintf("%-*s", maxLen+1, p.key+":")
		sb.WriteString(indent + labelStyle.Render(label) + " " + p.value + "\n")
	}
	return sb.String()
}

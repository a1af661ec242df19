package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qform.io/cli/internal/core/domain/questionnaire"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

func renderFields() string {
	rows := []string{headerStyle.Render(fmt.Sprintf("%-24s │ %-26s │ %s", "FIELD", "WIRE KEY", "KIND"))}
	for _, f := range questionnaire.Fields {
		kind := "text"
		if f.Kind == questionnaire.FilePart {
			kind = "file"
		}
		rows = append(rows, fmt.Sprintf("%-24s │ %-26s │ %s", f.Name, f.WireKey, kind))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderParts(parts []questionnaire.Part) string {
	rows := []string{headerStyle.Render(fmt.Sprintf("%d form parts (dry run, nothing sent)", len(parts)))}
	for _, p := range parts {
		value := p.Value
		if p.Kind == questionnaire.FilePart {
			value = mutedStyle.Render("file: ") + p.File.Filename
		}
		rows = append(rows, fmt.Sprintf("%-26s = %s", p.Key, value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderResponse(status string, code int, body []byte) string {
	style := okStyle
	if code < 200 || code >= 300 {
		style = errStyle
	}
	lines := []string{style.Render(status)}
	if b := strings.TrimSpace(string(body)); b != "" {
		lines = append(lines, b)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"mathhelper/internal/config"
)

// styles derive from the theme colors in the configuration. Styling is
// dropped entirely when stdout is not a terminal.
type styles struct {
	title  lipgloss.Style
	text   lipgloss.Style
	result lipgloss.Style
	errMsg lipgloss.Style
}

func newStyles(theme config.Theme) *styles {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		plain := lipgloss.NewStyle()
		return &styles{title: plain, text: plain, result: plain, errMsg: plain}
	}
	return &styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title)),
		text:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text)),
		result: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Result)),
		errMsg: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Error)),
	}
}

func (s *styles) printResult(format string, args ...any) {
	fmt.Println(s.result.Render(fmt.Sprintf(format, args...)))
}

func (s *styles) printNegative(format string, args ...any) {
	fmt.Println(s.errMsg.Render(fmt.Sprintf(format, args...)))
}

// formatFloat trims trailing zeros so "4" prints as 4, not 4.000000.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, value)
	}
	return v, nil
}

func parseIntArg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, value)
	}
	return v, nil
}

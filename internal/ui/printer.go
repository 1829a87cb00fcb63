// Package ui prints the explorer's console output: plain lines, themed
// status lines and prompts.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of colors for console output
type Theme struct {
	Name        string
	Success     lipgloss.Color
	Error       lipgloss.Color
	Warning     lipgloss.Color
	Info        lipgloss.Color
	Header      lipgloss.Color
	Prompt      lipgloss.Color
	Description string
}

// Available themes
var (
	DefaultTheme = Theme{
		Name:        "default",
		Success:     lipgloss.Color("114"),
		Error:       lipgloss.Color("196"),
		Warning:     lipgloss.Color("220"),
		Info:        lipgloss.Color("39"),
		Header:      lipgloss.Color("213"),
		Prompt:      lipgloss.Color("212"),
		Description: "Default purple theme",
	}

	GruvboxTheme = Theme{
		Name:        "gruvbox",
		Success:     lipgloss.Color("142"),
		Error:       lipgloss.Color("167"),
		Warning:     lipgloss.Color("214"),
		Info:        lipgloss.Color("109"),
		Header:      lipgloss.Color("208"),
		Prompt:      lipgloss.Color("175"),
		Description: "Warm, earthy color scheme (gruvbox)",
	}

	MonochromeTheme = Theme{
		Name:        "monochrome",
		Success:     lipgloss.Color("252"),
		Error:       lipgloss.Color("255"),
		Warning:     lipgloss.Color("248"),
		Info:        lipgloss.Color("245"),
		Header:      lipgloss.Color("255"),
		Prompt:      lipgloss.Color("252"),
		Description: "Shades of grey",
	}
)

// AvailableThemes lists every built-in theme
var AvailableThemes = []Theme{
	DefaultTheme,
	GruvboxTheme,
	MonochromeTheme,
}

// ThemeByName returns the named theme, or the default one
func ThemeByName(name string) (Theme, bool) {
	for _, theme := range AvailableThemes {
		if theme.Name == name {
			return theme, true
		}
	}
	return DefaultTheme, false
}

// ThemeNames returns all available theme names
func ThemeNames() []string {
	names := make([]string, 0, len(AvailableThemes))
	for _, theme := range AvailableThemes {
		names = append(names, theme.Name)
	}
	return names
}

type styles struct {
	success lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	header  lipgloss.Style
	prompt  lipgloss.Style
	err     lipgloss.Style
}

// Printer writes normal output to out and failures to errOut
type Printer struct {
	out    io.Writer
	errOut io.Writer
	color  bool
	theme  Theme
	styles styles
}

// Option configures a Printer
type Option func(*Printer)

// WithColor enables or disables styling
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.color = enabled
	}
}

// WithTheme selects a theme
func WithTheme(theme Theme) Option {
	return func(p *Printer) {
		p.theme = theme
	}
}

// NewPrinter creates a printer. Styling is decided per writer: output that
// is not a terminal carries no escape codes even with color enabled.
func NewPrinter(out, errOut io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:    out,
		errOut: errOut,
		color:  true,
		theme:  DefaultTheme,
	}
	for _, opt := range opts {
		opt(p)
	}

	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	p.styles = styles{
		success: outR.NewStyle().Foreground(p.theme.Success),
		warning: outR.NewStyle().Foreground(p.theme.Warning),
		info:    outR.NewStyle().Foreground(p.theme.Info),
		header:  outR.NewStyle().Foreground(p.theme.Header).Bold(true),
		prompt:  outR.NewStyle().Foreground(p.theme.Prompt),
		err:     errR.NewStyle().Foreground(p.theme.Error),
	}
	return p
}

// Out returns the writer for normal output
func (p *Printer) Out() io.Writer {
	return p.out
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Println prints an unstyled line
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}

// Printf prints unstyled formatted output
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Success prints a confirmation line
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.out, p.render(p.styles.success, message))
}

// Warning prints a notice line
func (p *Printer) Warning(message string) {
	fmt.Fprintln(p.out, p.render(p.styles.warning, message))
}

// Info prints an informational line
func (p *Printer) Info(message string) {
	fmt.Fprintln(p.out, p.render(p.styles.info, message))
}

// Error prints a failure line to the error writer
func (p *Printer) Error(message string) {
	fmt.Fprintln(p.errOut, p.render(p.styles.err, message))
}

// Errorf prints a formatted failure line to the error writer
func (p *Printer) Errorf(format string, args ...interface{}) {
	p.Error(fmt.Sprintf(format, args...))
}

// Header prints a bold line
func (p *Printer) Header(message string) {
	fmt.Fprintln(p.out, p.render(p.styles.header, message))
}

// Prompt prints message without a trailing newline
func (p *Printer) Prompt(message string) {
	fmt.Fprint(p.out, p.render(p.styles.prompt, message))
}

// Banner prints title centered between two rules
func (p *Printer) Banner(title string, width int) {
	rule := strings.Repeat("=", width)
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	p.Println(rule)
	p.Header(strings.Repeat(" ", pad) + title)
	p.Println(rule)
}

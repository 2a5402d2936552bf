package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"graphite-theme/theme"
	"graphite-theme/validate"
)

var (
	clrDim     = color.New(color.FgHiBlack)
	clrBold    = color.New(color.FgWhite, color.Bold)
	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)

	nameStyle  = lipgloss.NewStyle().Width(22)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Width(16)
	swatchText = strings.Repeat(" ", 6)
)

// Printer writes styled status lines and palette swatches.
type Printer struct {
	out     io.Writer
	noColor bool
}

// NewPrinter creates a printer writing to out. With noColor set all styling is dropped.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	if noColor {
		color.NoColor = true
	}
	return &Printer{out: out, noColor: noColor}
}

// Status writes a status line with an icon for the category.
func (p *Printer) Status(category, message string) {
	var icon string
	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		message = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		message = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
	case "info":
		icon = clrInfo.Sprint("ℹ")
	default:
		icon = clrDim.Sprint("●")
	}
	fmt.Fprintf(p.out, "%s  %s\n", icon, message)
}

// Section writes a bold heading.
func (p *Printer) Section(title string) {
	fmt.Fprintf(p.out, "\n%s\n", clrBold.Sprint(title))
}

// Line writes an unstyled line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Palette writes one swatch row per utility color, grouped like the palette.
func (p *Printer) Palette(m *theme.Manager) {
	current := theme.Group("")
	for _, tok := range m.Tokens() {
		if tok.Group != current {
			current = tok.Group
			p.Section(string(current))
		}
		p.swatch(tok.Name, tok.Default)
		if tok.Dim != "" {
			p.swatch(tok.Name+"-dim", tok.Dim)
		}
	}
}

func (p *Printer) swatch(name, value string) {
	if p.noColor {
		fmt.Fprintf(p.out, "  %-22s %s\n", name, value)
		return
	}

	block := clrDim.Sprint("░░░░░░")
	if !validate.IsSymbolic(value) {
		block = lipgloss.NewStyle().Background(lipgloss.Color(value)).Render(swatchText)
	}
	fmt.Fprintf(p.out, "  %s %s %s\n", block, nameStyle.Render(name), valueStyle.Render(value))
}

// Issues writes each joined validation error on its own line.
func (p *Printer) Issues(err error) {
	if err == nil {
		return
	}
	type multi interface{ Unwrap() []error }
	if joined, ok := err.(multi); ok {
		for _, e := range joined.Unwrap() {
			p.Status("error", e.Error())
		}
		return
	}
	p.Status("error", err.Error())
}

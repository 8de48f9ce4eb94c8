// Package display renders game text to a terminal with lipgloss styles.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Kind selects the style applied to a line
type Kind int

const (
	KindInfo Kind = iota
	KindTitle
	KindSuccess
	KindWarning
	KindError
	KindPrompt
)

// Styles contains styling for each kind of line
type Styles struct {
	Title   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
}

// NewStyles builds the palette on renderer r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Info:    r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Prompt:  r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
	}
}

// Printer writes styled lines to w.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a printer. When color is false, or w is not a
// terminal, output is plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, styles: NewStyles(r)}
}

// Println writes one line in the style for kind.
func (p *Printer) Println(kind Kind, line string) {
	fmt.Fprintln(p.w, p.style(kind).Render(line))
}

func (p *Printer) style(kind Kind) lipgloss.Style {
	switch kind {
	case KindTitle:
		return p.styles.Title
	case KindSuccess:
		return p.styles.Success
	case KindWarning:
		return p.styles.Warning
	case KindError:
		return p.styles.Error
	case KindPrompt:
		return p.styles.Prompt
	default:
		return p.styles.Info
	}
}

// Prompt renders text in the prompt style without writing it.
func (p *Printer) Prompt(text string) string {
	return p.styles.Prompt.Render(text)
}

// Output adapts the printer to the game's line-oriented output, picking a
// style from the line's content.
func (p *Printer) Output(line string) {
	p.Println(Classify(line), line)
}

// Classify picks a style for a line produced by the game engine.
func Classify(line string) Kind {
	switch {
	case strings.HasPrefix(line, "Congrats"), strings.HasSuffix(line, " won!"):
		return KindSuccess
	case strings.HasPrefix(line, "Sorry"):
		return KindError
	case line == "It's a tie!":
		return KindWarning
	case strings.HasPrefix(line, "Please choose"), strings.HasPrefix(line, "Would you like"):
		return KindPrompt
	default:
		return KindInfo
	}
}

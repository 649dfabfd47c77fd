package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// Flag is one row of the usage flag list.
type Flag struct {
	Names       string
	Description string
}

// Flags lists the flags the parser recognizes, in usage order.
var Flags = []Flag{
	{"-h, --help", "Show this help and exit"},
	{"-v, --version", "Show version and exit"},
	{"-d, --debug", "Enable debug logging"},
}

// IsTerminal returns true if stdout is a TTY.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// PrintUsage writes the help text to w.
func PrintUsage(w io.Writer, version string, styled bool) {
	render := func(s lipgloss.Style, text string) string {
		if styled {
			return s.Render(text)
		}
		return text
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", render(HeaderStyle, "carbonyl"), render(DimStyle, "v"+version))
	b.WriteString("Chromium running in your terminal\n\n")
	b.WriteString("Usage: carbonyl [flags] [url]\n\n")
	b.WriteString(render(HeaderStyle, "Flags:") + "\n")

	width := 0
	for _, f := range Flags {
		width = max(width, len(f.Names))
	}
	for _, f := range Flags {
		names := fmt.Sprintf("%-*s", width, f.Names)
		fmt.Fprintf(&b, "  %s  %s\n", render(FlagStyle, names), f.Description)
	}

	b.WriteString("\nAny other argument is passed to the browser runtime.\n")
	fmt.Fprint(w, b.String())
}

// PrintVersion writes the version line to w.
func PrintVersion(w io.Writer, version string) {
	fmt.Fprintf(w, "carbonyl %s\n", version)
}

// PrintError writes a prefixed error line to w.
func PrintError(w io.Writer, msg string, styled bool) {
	if styled {
		fmt.Fprintln(w, ErrorStyle.Render("carbonyl: "+msg))
	} else {
		fmt.Fprintln(w, "carbonyl: "+msg)
	}
}

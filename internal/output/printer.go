package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes section headings and informational notes, optionally
// colored.
type Printer struct {
	w      io.Writer
	colors bool
}

// NewPrinter creates a printer writing to stdout
func NewPrinter(colors bool) *Printer {
	return &Printer{w: os.Stdout, colors: colors}
}

// NewPrinterWithWriter creates a printer with a custom writer
func NewPrinterWithWriter(w io.Writer, colors bool) *Printer {
	return &Printer{w: w, colors: colors}
}

// Heading prints a section heading
func (p *Printer) Heading(format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	if p.colors {
		text = color.New(color.FgCyan, color.Bold).Sprint(text)
	}
	fmt.Fprintln(p.w, text)
}

// Info prints an informational note
func (p *Printer) Info(format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	if p.colors {
		text = color.New(color.FgYellow).Sprint(text)
	}
	fmt.Fprintln(p.w, text)
}

// Blank prints an empty line
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

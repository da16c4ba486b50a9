// Package output provides terminal output formatting for relctl.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/relctl/relctl/pkg/banner"
)

// Printer handles terminal output with the cosmic color theme.
type Printer struct {
	out    io.Writer
	in     *bufio.Reader
	logger *log.Logger
	isTTY  bool
}

// New creates a Printer writing to stdout and reading prompts from stdin.
func New() *Printer {
	return NewWithStreams(os.Stdout, os.Stdin)
}

// NewWithStreams creates a Printer with custom streams, used in tests.
func NewWithStreams(w io.Writer, r io.Reader) *Printer {
	isTTY := isTerminal(w)

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly, // HH:MM:SS
	})

	if isTTY {
		logger.SetStyles(cosmicStyles())
	}

	return &Printer{
		out:    w,
		in:     bufio.NewReader(r),
		logger: logger,
		isTTY:  isTTY,
	}
}

// isTerminal checks if the writer is a TTY (for color support).
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Info logs an info message with optional key-value pairs.
func (p *Printer) Info(msg string, keyvals ...any) {
	p.logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func (p *Printer) Warn(msg string, keyvals ...any) {
	p.logger.Warn(msg, keyvals...)
}

// Debug logs a debug message with optional key-value pairs.
func (p *Printer) Debug(msg string, keyvals ...any) {
	p.logger.Debug(msg, keyvals...)
}

// SetDebug enables debug-level logging.
func (p *Printer) SetDebug(enabled bool) {
	if enabled {
		p.logger.SetLevel(log.DebugLevel)
	} else {
		p.logger.SetLevel(log.InfoLevel)
	}
}

// SetColor overrides TTY detection. Disabling it drops every escape
// sequence from the output, including the banner's.
func (p *Printer) SetColor(enabled bool) {
	p.isTTY = enabled
	if enabled {
		p.logger.SetStyles(cosmicStyles())
		p.logger.SetColorProfile(termenv.TrueColor)
	} else {
		p.logger.SetColorProfile(termenv.Ascii)
	}
}

// Step announces a phase of the release process.
func (p *Printer) Step(msg string) {
	p.println(stepStyle, "\n✨ "+msg)
}

// Success reports a completed action.
func (p *Printer) Success(msg string) {
	p.println(successStyle, "✅ "+msg)
}

// Warning reports a non-fatal problem.
func (p *Printer) Warning(msg string) {
	p.println(warningStyle, "⚠️  "+msg)
}

// Error reports a fatal problem.
func (p *Printer) Error(msg string) {
	p.println(errorStyle, "❌ Error: "+msg)
}

func (p *Printer) println(style lipgloss.Style, msg string) {
	if p.isTTY {
		msg = style.Render(msg)
	}
	fmt.Fprintln(p.out, msg)
}

// Banner renders and prints the gradient banner. Non-TTY writers get a
// plain one-line fallback so logs and pipes stay readable.
func (p *Printer) Banner(cfg banner.Config) error {
	if !p.isTTY {
		fmt.Fprintf(p.out, "%s\n\n", cfg.Title)
		return nil
	}

	out, err := banner.Render(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, out+reset)
	return nil
}

// Prompt prints a question and reads one line of input.
func (p *Printer) Prompt(question string) (string, error) {
	q := question + " "
	if p.isTTY {
		q = promptStyle.Render(question) + " "
	}
	fmt.Fprint(p.out, q)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question and reports whether the answer was yes.
// Anything other than "y"/"yes" (case-insensitive) counts as no.
func (p *Printer) Confirm(question string) (bool, error) {
	answer, err := p.Prompt(question + " (y/N):")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Writer exposes the underlying output stream, for subprocesses that
// stream their own output.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print writes a message directly to output without formatting.
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a message with newline directly to output.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

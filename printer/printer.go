package printer

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/subsums"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultLineWidth is used if neither a configuration nor the terminal tell
// otherwise.
const DefaultLineWidth = 65

const separator = ", "

// Config represents a set of configuration parameters for printing.
type Config struct {
	LineWidth int            // wrap lines at this width; <= 0 means no wrapping
	Color     bool           // highlight runs of equal sums
	Context   *uax11.Context // context for measuring widths; nil means uax11.LatinContext
}

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether fd is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched
// on for terminals only.
func ConfigFromTerminal(fd int) *Config {
	config := &Config{LineWidth: DefaultLineWidth}
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("print", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

var setupGraphemes sync.Once

// Printer outputs values to a writer, wrapping lines first-fit.
type Printer struct {
	out       io.Writer
	config    Config
	highlight *color.Color
	spaceleft int  // positions left on the current line
	linestart bool // nothing printed on the current line yet
	count     int  // values printed
	err       error
}

// New creates a printer for out. If config is nil, defaults without colors
// and with DefaultLineWidth are used.
func New(out io.Writer, config *Config) *Printer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &Printer{out: out, linestart: true}
	if config == nil {
		p.config = Config{LineWidth: DefaultLineWidth}
	} else {
		p.config = *config
	}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	if p.config.Color {
		p.highlight = color.New(color.FgRed, color.Bold)
		p.highlight.EnableColor() // caller asked for it, even if out is not a tty
	}
	p.spaceleft = p.available()
	return p
}

// available is the line width minus a position reserved for a trailing separator.
func (p *Printer) available() int {
	return p.config.LineWidth - 1
}

// Item outputs a single value, given as its string representation. If emphasize
// is set and colors are configured, the value is highlighted.
func (p *Printer) Item(s string, emphasize bool) error {
	if p.err != nil {
		return p.err
	}
	if p.out == nil {
		p.err = errors.New("printer: no output writer")
		return p.err
	}
	w := uax11.StringWidth(grapheme.StringFromString(s), p.config.Context)
	switch {
	case p.linestart:
		p.spaceleft -= w
	case p.config.LineWidth <= 0 || w+len(separator) <= p.spaceleft:
		p.write(separator)
		p.spaceleft -= w + len(separator)
	default: // value overshoots line
		p.write(",\n")
		p.spaceleft = p.available() - w
	}
	if emphasize && p.highlight != nil {
		if _, err := p.highlight.Fprint(p.out, s); err != nil && p.err == nil {
			p.err = err
		}
	} else {
		p.write(s)
	}
	p.linestart = false
	p.count++
	return p.err
}

// Flush terminates a partially filled line.
func (p *Printer) Flush() error {
	if !p.linestart {
		p.write("\n")
		p.linestart = true
		p.spaceleft = p.available()
	}
	return p.err
}

// Count returns the number of values printed so far.
func (p *Printer) Count() int {
	return p.count
}

func (p *Printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.out, s)
}

// Print outputs all values of a sequence and flushes the last line. Values
// equal to a neighbour are emphasized. It returns the number of values printed.
// Print stops at the first write error.
func Print[N subsums.Number](p *Printer, values iter.Seq[N]) (int, error) {
	if p == nil || values == nil {
		return 0, subsums.ErrIllegalArguments
	}
	var prev, pending N
	hasPrev, hasPending := false, false
	n := 0
	for x := range values {
		if hasPending {
			emph := (hasPrev && prev == pending) || pending == x
			if err := p.Item(fmt.Sprint(pending), emph); err != nil {
				return n, err
			}
			n++
			prev, hasPrev = pending, true
		}
		pending, hasPending = x, true
	}
	if hasPending {
		if err := p.Item(fmt.Sprint(pending), hasPrev && prev == pending); err != nil {
			return n, err
		}
		n++
	}
	tracer().Debugf("printer: %d values printed", n)
	return n, p.Flush()
}

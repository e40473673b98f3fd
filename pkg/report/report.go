package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/siyuan-infoblox/goimpfmt/pkg/diff"
)

const (
	addedMarker   = "+ "
	removedMarker = "- "
	sameMarker    = "  "
)

// Printer renders edit scripts for humans
type Printer struct {
	header  *color.Color
	added   *color.Color
	removed *color.Color
	same    *color.Color
}

// NewPrinter creates a Printer. With noColor set no escape sequences are
// written, whatever the terminal supports.
func NewPrinter(noColor bool) *Printer {
	p := &Printer{
		header:  color.New(color.Bold),
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		same:    color.New(color.Reset),
	}
	if noColor {
		for _, c := range []*color.Color{p.header, p.added, p.removed, p.same} {
			c.DisableColor()
		}
	}
	return p
}

// Print writes the header for path followed by every line of the script
func (p *Printer) Print(w io.Writer, path string, s diff.Script) {
	p.header.Fprintf(w, "%s %s\n", path, Stat(s))
	for _, l := range s.Lines {
		switch l.Op {
		case diff.Added:
			p.added.Fprintln(w, addedMarker+l.Text)
		case diff.Removed:
			p.removed.Fprintln(w, removedMarker+l.Text)
		default:
			p.same.Fprintln(w, sameMarker+l.Text)
		}
	}
}

// Stat summarizes a script as "(+added -removed)"
func Stat(s diff.Script) string {
	return fmt.Sprintf("(+%d -%d)", s.Added(), s.Removed())
}

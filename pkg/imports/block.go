package imports

import (
	"strings"

	"github.com/siyuan-infoblox/goimpfmt/pkg/matcher"
)

const (
	// Opener starts a grouped import block
	Opener = "import ("
	// Closer ends a grouped import block
	Closer = ")"

	commentMarker = "//"
	// delimiterLines is the number of lines taken by Opener and Closer
	delimiterLines = 2
)

// Block is one parsed import declaration. A single-line import is kept as
// is; a grouped import is split into its three categories.
type Block struct {
	Builtin  []Entry
	External []Entry
	Local    []Entry
	// BlankLines counts the blank and comment lines consumed while parsing
	BlankLines int

	single   string
	isSingle bool
	comment  []string // pending comment lines
}

// Parse parses the import block starting at lines[0]. Scanning stops at the
// closing delimiter or when lines run out.
func Parse(lines []string, m *matcher.Matcher) *Block {
	if len(lines) == 0 {
		return &Block{isSingle: true}
	}
	if trimRight(lines[0]) != Opener {
		return &Block{single: lines[0], isSingle: true}
	}

	b := &Block{}
	for _, line := range lines[1:] {
		if trimRight(line) == Closer {
			break
		}
		b.parseLine(line, m)
	}
	// a comment with no entry after it is dropped
	b.comment = nil
	return b
}

func (b *Block) parseLine(line string, m *matcher.Matcher) {
	if strings.HasPrefix(strings.TrimSpace(line), commentMarker) {
		b.comment = append(b.comment, line)
		b.BlankLines++
		return
	}
	b.parseEntry(line, m)
}

func (b *Block) parseEntry(line string, m *matcher.Matcher) {
	entry := ParseEntry(line)
	if len(b.comment) > 0 {
		entry = entry.WithComment(strings.Join(b.comment, "\n"))
		b.comment = nil
	}

	switch m.Classify(line) {
	case matcher.Local:
		b.Local = append(b.Local, entry)
	case matcher.External:
		b.External = append(b.External, entry)
	default:
		if strings.TrimSpace(line) == "" {
			b.BlankLines++
			return
		}
		b.Builtin = append(b.Builtin, entry)
	}
}

// Single returns the line of a single-line import
func (b *Block) Single() (string, bool) {
	return b.single, b.isSingle
}

// Len returns the number of entries in the block
func (b *Block) Len() int {
	if b.isSingle {
		return 1
	}
	return len(b.Builtin) + len(b.External) + len(b.Local)
}

// LinesOccupied returns the number of source lines the block was parsed from,
// including both delimiters.
func (b *Block) LinesOccupied() int {
	if b.isSingle {
		return 1
	}
	return b.Len() + b.BlankLines + delimiterLines
}

func trimRight(line string) string {
	return strings.TrimRight(line, " \t")
}

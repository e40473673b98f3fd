package formatter

import (
	"strings"

	"github.com/siyuan-infoblox/goimpfmt/pkg/diff"
	"github.com/siyuan-infoblox/goimpfmt/pkg/imports"
	"github.com/siyuan-infoblox/goimpfmt/pkg/matcher"
)

const importKeyword = "import"

// Result is the outcome of formatting the import block of one source file
type Result struct {
	Text   string      // full file text with the canonical import block
	Script diff.Script // original block lines against canonical block lines
}

// Changed reports whether the import block needs rewriting
func (r *Result) Changed() bool {
	return r.Script.Changed()
}

// Process formats the first import block of src. It returns false when src
// has no import declaration.
func Process(src string, m *matcher.Matcher) (*Result, bool) {
	lines := splitLines(src)

	start := findImport(lines)
	if start < 0 {
		return nil, false
	}

	block := imports.Parse(lines[start:], m)
	end := min(start+block.LinesOccupied(), len(lines))
	rendered := strings.Split(block.Render(), "\n")

	out := make([]string, 0, start+len(rendered)+len(lines)-end)
	out = append(out, lines[:start]...)
	out = append(out, rendered...)
	out = append(out, lines[end:]...)

	return &Result{
		Text:   strings.Join(out, "\n") + "\n",
		Script: diff.Lines(lines[start:end], rendered),
	}, true
}

// splitLines splits src on newlines. A final newline does not start an
// extra empty line.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(src, "\n"), "\n")
}

// findImport returns the index of the first line opening an import
// declaration, or -1.
func findImport(lines []string) int {
	for i, line := range lines {
		if isImportLine(line) {
			return i
		}
	}
	return -1
}

func isImportLine(line string) bool {
	if len(line) <= len(importKeyword) || !strings.HasPrefix(line, importKeyword) {
		return false
	}
	switch line[len(importKeyword)] {
	case ' ', '\t', '(', '"':
		return true
	}
	return false
}

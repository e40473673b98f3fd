package imports

import (
	"sort"
	"strings"
)

// Entry represents a single import line inside a grouped import block
type Entry struct {
	Prefix string // leading whitespace, kept verbatim
	Path   string // quoted path literal, used as the sort key

	alias      string
	hasAlias   bool
	comment    string // comment lines preceding the entry, newline-joined
	hasComment bool
}

// ParseEntry parses one raw import line. It never fails: a line that cannot
// be split is taken whole as the path.
func ParseEntry(line string) Entry {
	prefix := whitespacePrefix(line)
	fields := strings.Split(strings.TrimSpace(line), " ")

	e := Entry{Prefix: prefix}
	if len(fields) > 1 && isAlias(fields[0]) {
		e.alias = fields[0]
		e.hasAlias = true
		e.Path = strings.Join(fields[1:], " ")
		return e
	}
	e.Path = strings.TrimSpace(line)
	return e
}

// isAlias reports whether tok can name an import. A quoted token is the path
// itself, possibly followed by a trailing comment.
func isAlias(tok string) bool {
	return tok != "" && tok[0] != '"' && tok[0] != '`'
}

func whitespacePrefix(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}

// Alias returns the import alias, if any
func (e Entry) Alias() (string, bool) {
	return e.alias, e.hasAlias
}

// Comment returns the comment block attached to the entry, if any
func (e Entry) Comment() (string, bool) {
	return e.comment, e.hasComment
}

// WithComment returns a copy of e with comment attached
func (e Entry) WithComment(comment string) Entry {
	e.comment = comment
	e.hasComment = true
	return e
}

// Equal compares entries by path only
func (e Entry) Equal(other Entry) bool {
	return e.Path == other.Path
}

// Less orders entries by path only
func (e Entry) Less(other Entry) bool {
	return e.Path < other.Path
}

// String renders the entry, preceded by its comment lines
func (e Entry) String() string {
	var sb strings.Builder
	if e.hasComment {
		sb.WriteString(e.comment)
		sb.WriteByte('\n')
	}
	sb.WriteString(e.Prefix)
	if e.hasAlias {
		sb.WriteString(e.alias)
		sb.WriteByte(' ')
	}
	sb.WriteString(e.Path)
	return sb.String()
}

// sortEntries returns a sorted copy of entries. Entries with equal paths keep
// their relative order.
func sortEntries(entries []Entry) []Entry {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})
	return sorted
}

package matcher

import (
	"regexp"
	"strings"
)

// ExternalPattern recognizes hostname-style import paths: a dot somewhere
// before a slash, as in "github.com/...".
const ExternalPattern = `.+\..+/`

var externalRe = regexp.MustCompile(ExternalPattern)

// Category is the group an import line is sorted into
type Category int

const (
	Builtin Category = iota
	External
	Local
)

func (c Category) String() string {
	switch c {
	case Builtin:
		return "builtin"
	case External:
		return "external"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// Matcher classifies raw import lines. It holds no mutable state and may be
// shared between goroutines.
type Matcher struct {
	prefixes []string
	local    *regexp.Regexp // nil when no project prefix is configured
}

// New creates a Matcher whose local pattern is the alternation of the given
// project prefixes. Empty prefixes are ignored.
func New(prefixes ...string) *Matcher {
	m := &Matcher{}
	var quoted []string
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		m.prefixes = append(m.prefixes, p)
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	if len(quoted) > 0 {
		m.local = regexp.MustCompile(strings.Join(quoted, "|"))
	}
	return m
}

// Parse creates a Matcher from a comma-separated list of project prefixes
func Parse(list string) *Matcher {
	return New(strings.Split(list, ",")...)
}

// Prefixes returns the project prefixes the local pattern was built from
func (m *Matcher) Prefixes() []string {
	return append([]string(nil), m.prefixes...)
}

// IsExternal reports whether line contains a hostname-style path
func (m *Matcher) IsExternal(line string) bool {
	return externalRe.MatchString(line)
}

// IsLocal reports whether line contains one of the project prefixes
func (m *Matcher) IsLocal(line string) bool {
	if m.local == nil {
		return false
	}
	return m.local.MatchString(line)
}

// Classify assigns line to a category. Local requires the external pattern
// to match as well, so a project prefix without a hostname never makes a
// line local.
func (m *Matcher) Classify(line string) Category {
	if !m.IsExternal(line) {
		return Builtin
	}
	if m.IsLocal(line) {
		return Local
	}
	return External
}

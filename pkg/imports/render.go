package imports

import "strings"

// Render returns the canonical text of the block. Groups are emitted in the
// order builtin, local, external, each sorted by path and separated by a
// single blank line. The block itself is not modified.
func (b *Block) Render() string {
	if b.isSingle {
		return b.single
	}

	var sb strings.Builder
	sb.WriteString(Opener)
	sb.WriteByte('\n')

	previous := false
	for _, group := range [][]Entry{b.Builtin, b.Local, b.External} {
		if len(group) == 0 {
			continue
		}
		if previous {
			sb.WriteByte('\n')
		}
		for _, entry := range sortEntries(group) {
			sb.WriteString(entry.String())
			sb.WriteByte('\n')
		}
		previous = true
	}

	sb.WriteString(Closer)
	return sb.String()
}

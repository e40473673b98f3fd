// Package diff computes line-level edit scripts.
//
// The alignment is a longest common subsequence over whole lines. Among the
// minimal scripts the one that marks the earliest lines as unchanged is
// returned, and a removal is emitted before an addition when both are
// possible, so the same input always yields the same script.
package diff

// Op tags a line of an edit script
type Op int

const (
	Same Op = iota
	Added
	Removed
)

func (o Op) String() string {
	switch o {
	case Same:
		return "same"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Line is one tagged line of an edit script
type Line struct {
	Op   Op
	Text string
}

// Script is the edit script turning one line sequence into another
type Script struct {
	Lines []Line
	// Distance is the number of lines that are not Same
	Distance int
}

// Changed reports whether the two sequences differ
func (s Script) Changed() bool {
	return s.Distance > 0
}

// Added returns the number of added lines
func (s Script) Added() int {
	return s.count(Added)
}

// Removed returns the number of removed lines
func (s Script) Removed() int {
	return s.count(Removed)
}

func (s Script) count(op Op) int {
	n := 0
	for _, l := range s.Lines {
		if l.Op == op {
			n++
		}
	}
	return n
}

// Lines computes the edit script from a to b
func Lines(a, b []string) Script {
	var s Script

	// shared leading lines are always matched first
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		s.Lines = append(s.Lines, Line{Op: Same, Text: a[n]})
		n++
	}
	a, b = a[n:], b[n:]

	table := lcsTable(a, b)
	width := len(b) + 1
	at := func(i, j int) int32 { return table[i*width+j] }

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			s.Lines = append(s.Lines, Line{Op: Same, Text: a[i]})
			i++
			j++
		case at(i+1, j) >= at(i, j+1):
			s.Lines = append(s.Lines, Line{Op: Removed, Text: a[i]})
			s.Distance++
			i++
		default:
			s.Lines = append(s.Lines, Line{Op: Added, Text: b[j]})
			s.Distance++
			j++
		}
	}
	for ; i < len(a); i++ {
		s.Lines = append(s.Lines, Line{Op: Removed, Text: a[i]})
		s.Distance++
	}
	for ; j < len(b); j++ {
		s.Lines = append(s.Lines, Line{Op: Added, Text: b[j]})
		s.Distance++
	}
	return s
}

// lcsTable returns the suffix LCS lengths of a and b as a flat row-major
// table: entry (i, j) is the LCS length of a[i:] and b[j:].
func lcsTable(a, b []string) []int32 {
	width := len(b) + 1
	table := make([]int32, (len(a)+1)*width)
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i*width+j] = table[(i+1)*width+j+1] + 1
			} else {
				table[i*width+j] = max(table[(i+1)*width+j], table[i*width+j+1])
			}
		}
	}
	return table
}

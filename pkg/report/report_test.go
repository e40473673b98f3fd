package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/goimpfmt/pkg/diff"
)

func TestPrinter_Print(t *testing.T) {
	req := require.New(t)

	s := diff.Lines(
		[]string{"import (", "\t\"github.com/a/b\"", "\t\"os\"", ")"},
		[]string{"import (", "\t\"os\"", "", "\t\"github.com/a/b\"", ")"},
	)

	var buf bytes.Buffer
	NewPrinter(true).Print(&buf, "main.go", s)

	expected := "main.go (+2 -1)\n" +
		"  import (\n" +
		"- \t\"github.com/a/b\"\n" +
		"  \t\"os\"\n" +
		"+ \n" +
		"+ \t\"github.com/a/b\"\n" +
		"  )\n"
	req.Equal(expected, buf.String())
}

func TestPrinter_PrintUnchanged(t *testing.T) {
	req := require.New(t)

	s := diff.Lines([]string{`import "os"`}, []string{`import "os"`})

	var buf bytes.Buffer
	NewPrinter(true).Print(&buf, "a.go", s)
	req.Equal("a.go (+0 -0)\n  import \"os\"\n", buf.String())
}

func TestStat(t *testing.T) {
	req := require.New(t)
	req.Equal("(+0 -0)", Stat(diff.Script{}))
	req.Equal("(+1 -2)", Stat(diff.Lines([]string{"a", "b"}, []string{"c"})))
}

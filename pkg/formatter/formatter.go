package formatter

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/goimpfmt/pkg/diff"
	"github.com/siyuan-infoblox/goimpfmt/pkg/errors"
	"github.com/siyuan-infoblox/goimpfmt/pkg/matcher"
	"github.com/siyuan-infoblox/goimpfmt/pkg/report"
	"github.com/siyuan-infoblox/goimpfmt/pkg/utils"
)

// ErrChangesDetected is returned by ProcessPaths when a file needed formatting
var ErrChangesDetected = errors.ErrChangesDetected

type FormatterConfig struct {
	Projects []string // project prefixes routed to the local group
	Ignore   []string // doublestar patterns excluded from traversal
	DryRun   bool     // report changes without writing files
	Quiet    bool     // do not print diffs or the summary
	NoColor  bool     // print diffs without color
	Workers  int      // files processed in parallel
}

// FileResult is the outcome of processing one file
type FileResult struct {
	Path    string
	Changed bool
	Script  diff.Script
	Err     error
}

// Summary counts the outcomes of one run
type Summary struct {
	Processed int
	Changed   int
	Failed    int
}

// Formatter reads, formats and writes back Go source files
type Formatter struct {
	config  FormatterConfig
	matcher *matcher.Matcher
	printer *report.Printer
	log     *zap.Logger
	out     io.Writer
}

// New creates a Formatter writing its report to out
func New(config FormatterConfig, log *zap.Logger, out io.Writer) *Formatter {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Formatter{
		config:  config,
		matcher: matcher.New(config.Projects...),
		printer: report.NewPrinter(config.NoColor),
		log:     log.Named("formatter"),
		out:     out,
	}
}

// ProcessFile formats a single file. The file is rewritten only when its
// import block changed and the formatter is not in dry-run mode.
func (g *Formatter) ProcessFile(path string) FileResult {
	result := FileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToStatFile, err)
		return result
	}
	src, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		return result
	}

	res, ok := Process(string(src), g.matcher)
	if !ok {
		g.log.Debug("no import block", zap.String("path", path))
		return result
	}
	result.Script = res.Script
	result.Changed = res.Changed()
	if !result.Changed || g.config.DryRun {
		return result
	}

	if err := os.WriteFile(path, []byte(res.Text), info.Mode().Perm()); err != nil {
		result.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
		return result
	}
	g.log.Debug("rewrote imports", zap.String("path", path), zap.Int("distance", res.Script.Distance))
	return result
}

// ProcessFiles formats the given files in parallel and reports the results
// in input order. It returns ErrChangesDetected when a file changed, or an
// error when a file failed.
func (g *Formatter) ProcessFiles(ctx context.Context, filePaths []string) (Summary, error) {
	results, err := g.run(ctx, filePaths)
	if err != nil {
		return Summary{}, err
	}
	return g.report(results)
}

// ProcessPaths expands directories into the Go files they contain and
// formats every file found. A path that cannot be walked counts as failed.
func (g *Formatter) ProcessPaths(ctx context.Context, paths []string) (Summary, error) {
	var (
		files   []string
		results []FileResult
		seen    = make(map[string]bool)
	)

	for _, path := range paths {
		found, err := g.expand(path)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err})
			continue
		}
		for _, f := range found {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	processed, err := g.run(ctx, files)
	if err != nil {
		return Summary{}, err
	}
	return g.report(append(results, processed...))
}

// run processes files with at most Workers goroutines. Only cancellation of
// ctx makes it fail; per-file errors are kept in the results.
func (g *Formatter) run(ctx context.Context, filePaths []string) ([]FileResult, error) {
	results := make([]FileResult, len(filePaths))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Workers)
	for i, path := range filePaths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = g.ProcessFile(path)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (g *Formatter) expand(path string) ([]string, error) {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}
	if !isDir {
		if utils.IsIgnored(".", path, g.config.Ignore) {
			g.log.Debug("ignored", zap.String("path", path))
			return nil, nil
		}
		return []string{path}, nil
	}

	goFiles, err := utils.FindGoFiles(path, g.config.Ignore)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindGoFiles, err)
	}
	if len(goFiles) == 0 && !g.config.Quiet {
		fmt.Fprintf(g.out, errors.InfoMsgNoGoFilesFound+"\n", path)
	}
	g.log.Debug("found go files", zap.String("root", path), zap.Int("count", len(goFiles)))
	return goFiles, nil
}

func (g *Formatter) report(results []FileResult) (Summary, error) {
	var summary Summary
	for _, r := range results {
		if r.Err != nil {
			g.printFailure(r)
			summary.Failed++
			continue
		}
		summary.Processed++
		if !r.Changed {
			continue
		}
		summary.Changed++
		if g.config.Quiet {
			continue
		}
		g.printer.Print(g.out, r.Path, r.Script)
		if g.config.DryRun {
			fmt.Fprintf(g.out, errors.InfoMsgWouldChangeFile+"\n", r.Path)
		} else {
			fmt.Fprintf(g.out, errors.InfoMsgChangedFile+"\n", r.Path)
		}
	}

	if !g.config.Quiet {
		var sb strings.Builder
		fmt.Fprintf(&sb, errors.InfoMsgProcessedCount, summary.Processed, summary.Changed)
		if summary.Failed > 0 {
			fmt.Fprintf(&sb, errors.InfoMsgErrorCount, summary.Failed)
		}
		fmt.Fprintln(g.out, sb.String())
	}

	switch {
	case summary.Failed > 0:
		return summary, fmt.Errorf(errors.ErrMsgFilesFailedToProcess, summary.Failed)
	case summary.Changed > 0:
		return summary, ErrChangesDetected
	}
	return summary, nil
}

func (g *Formatter) printFailure(r FileResult) {
	g.log.Error("processing failed", zap.String("path", r.Path), zap.Error(r.Err))
	fmt.Fprintf(g.out, errors.InfoMsgErrorProcessing+"\n", r.Path, r.Err)
}

package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/siyuan-infoblox/goimpfmt/pkg/config"
	"github.com/siyuan-infoblox/goimpfmt/pkg/errors"
	"github.com/siyuan-infoblox/goimpfmt/pkg/formatter"
	"github.com/siyuan-infoblox/goimpfmt/pkg/utils"
	"github.com/siyuan-infoblox/goimpfmt/pkg/version"
)

const (
	UseDescription   = "goimpfmt [flags] PATH..."
	ShortDescription = "Go imports formatter - groups and sorts the import block of Go files"
	LongDescription  = `goimpfmt rewrites the first import block of every Go file it is given.

Imports are split into three groups, each sorted by path:
1. Standard library (paths without a hostname)
2. Project packages (paths containing one of the --project prefixes)
3. Third-party packages

Comments directly above an import move with it. Everything outside the
import block is left untouched.

PATH can be either a single Go file or a directory. Directories are walked
recursively, skipping vendor and hidden directories and anything matching
an --ignore pattern.

Exit status is 0 when nothing needed formatting, 1 when at least one file
was (or, with --dry-run, would be) rewritten, and 2 on errors.`
)

// Exit codes
const (
	ExitOK      = 0
	ExitChanged = 1
	ExitError   = 2
)

var (
	configPath  string
	showVersion bool
)

// NewRootCommand creates the goimpfmt command writing its report to out
func NewRootCommand(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           UseDescription,
		Short:         ShortDescription,
		Long:          LongDescription,
		Args:          validateArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	flags := rootCmd.Flags()
	flags.StringSliceP(config.KeyProject, "p", nil, "Comma-separated list of project prefixes grouped as local imports (default: module path from go.mod)")
	flags.StringSlice(config.KeyIgnore, nil, "Comma-separated list of doublestar patterns to skip (e.g., '**/*_gen.go,testdata/**')")
	flags.BoolP(config.KeyDryRun, "n", false, "Report changes without writing files")
	flags.BoolP(config.KeyQuiet, "q", false, "Do not print diffs or the summary")
	flags.Bool(config.KeyNoColor, false, "Print diffs without color")
	flags.IntP(config.KeyWorkers, "w", config.DefaultWorkers(), "Number of files processed in parallel")
	flags.Bool(config.KeyVerbose, false, "Enable debug logging")
	flags.StringVar(&configPath, "config", "", "Config file (default: .goimpfmt.yaml in the working directory or $HOME)")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version information")

	return rootCmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need path arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		return nil
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToBuildLogger, err)
	}
	defer func() { _ = log.Sync() }()

	projects := cfg.Project
	if len(projects) == 0 {
		if module := utils.GetProjectModule(args[0]); module != "" {
			projects = []string{module}
		} else {
			log.Warn(errors.WarnMsgNoProject)
		}
	}
	log.Debug("project prefixes", zap.Strings("projects", projects))

	g := formatter.New(formatter.FormatterConfig{
		Projects: projects,
		Ignore:   cfg.Ignore,
		DryRun:   cfg.DryRun,
		Quiet:    cfg.Quiet,
		NoColor:  cfg.NoColor,
		Workers:  cfg.Workers,
	}, log, cmd.OutOrStdout())

	_, err = g.ProcessPaths(cmd.Context(), args)
	return err
}

// newLogger builds a console logger on stderr. Only warnings and errors are
// shown unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}

// ExitCode maps the error returned by Execute to a process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, formatter.ErrChangesDetected):
		return ExitChanged
	default:
		return ExitError
	}
}

// Execute runs the command with the version reported by the build
func Execute(ctx context.Context, buildVersion string) error {
	if buildVersion != "" && buildVersion != "(devel)" {
		version.Version = buildVersion
	}
	err := NewRootCommand(os.Stdout).ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, formatter.ErrChangesDetected) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

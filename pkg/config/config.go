package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/siyuan-infoblox/goimpfmt/pkg/errors"
	"github.com/siyuan-infoblox/goimpfmt/pkg/utils"
)

const (
	// configName is the config file name without extension
	configName = ".goimpfmt"
	configType = "yaml"
	envPrefix  = "GOIMPFMT"
)

// Keys shared by flags, environment variables and the config file
const (
	KeyProject = "project"
	KeyIgnore  = "ignore"
	KeyDryRun  = "dry-run"
	KeyQuiet   = "quiet"
	KeyNoColor = "no-color"
	KeyWorkers = "workers"
	KeyVerbose = "verbose"
)

// Config holds the settings of one run
type Config struct {
	Project []string `mapstructure:"project"` // project prefixes for the local group
	Ignore  []string `mapstructure:"ignore"`  // doublestar patterns excluded from traversal
	DryRun  bool     `mapstructure:"dry-run"`
	Quiet   bool     `mapstructure:"quiet"`
	NoColor bool     `mapstructure:"no-color"`
	Workers int      `mapstructure:"workers"`
	Verbose bool     `mapstructure:"verbose"`
}

// DefaultWorkers is the number of files processed in parallel by default
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Load reads the configuration from defaults, the config file, environment
// variables and flags, in increasing order of precedence. An empty
// configPath searches the working directory and $HOME; a missing file is
// not an error.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyProject, []string{})
	v.SetDefault(KeyIgnore, []string{})
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyWorkers, DefaultWorkers())
	v.SetDefault(KeyVerbose, false)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadConfig, err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadConfig, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToBindFlags, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToUnmarshalConfig, err)
	}
	cfg.Project = splitList(cfg.Project)
	cfg.Ignore = splitList(cfg.Ignore)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that flags and files cannot constrain
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf(errors.ErrMsgInvalidWorkers, c.Workers)
	}
	if bad := utils.ValidatePatterns(c.Ignore); bad != "" {
		return fmt.Errorf(errors.ErrMsgInvalidIgnorePattern, bad)
	}
	return nil
}

// splitList flattens comma-separated items and drops empty ones, so a list
// from the environment and a list from the config file look the same.
func splitList(items []string) []string {
	out := []string{}
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mapcheck/internal/config"
)

// errFindings is returned by check when anything was reported, so the
// process exits non-zero without printing an extra error line.
var errFindings = errors.New("mapcheck: findings reported")

// app carries the settings shared by all subcommands.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("MAPCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "mapcheck",
		Short: "Check that mapping functions assign every target field",
		Long: `mapcheck finds functions annotated with //mapcheck:complete and reports
the fields of their target that are not assigned.

The target is the last parameter whose type is the function's result type.
Only top-level "target.Field = ..." statements count as assignments. Fields
named in the directive are exempt:

  //mapcheck:complete("CreatedAt", "UpdatedAt")
  func ToDTO(src *Order, dst *OrderDTO) *OrderDTO

Every persistent flag can also be set through a MAPCHECK_* environment
variable, e.g. MAPCHECK_CONFIG or MAPCHECK_VERBOSE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "path to the configuration file (default ./"+config.FileName+" when present)")
	flags.String("directive", "", "comment directive marking mapping functions (overrides the configuration)")
	flags.StringP("dir", "C", "", "directory to resolve package patterns in")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	// BindPFlags only fails on a nil flag set.
	_ = v.BindPFlags(flags)

	a := &app{v: v}
	cmd.AddCommand(
		newCheckCmd(a),
		newListCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return cmd
}

// logger builds a development logger at debug level with --verbose and a
// no-op logger otherwise.
func (a *app) logger() (*zap.Logger, error) {
	if !a.v.GetBool("verbose") {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)

	return cfg.Build()
}

// config resolves the effective configuration: the --config file, else
// .mapcheck.yaml in the working directory, else the defaults; then the
// --directive override. Validation errors are fatal, warnings are logged.
func (a *app) config(log *zap.Logger) (*config.Config, error) {
	path := a.v.GetString("config")
	if path == "" {
		candidate := filepath.Join(a.v.GetString("dir"), config.FileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
		log.Debug("loaded configuration", zap.String("path", path))
	}

	if d := a.v.GetString("directive"); d != "" {
		cfg.Directive = strings.TrimPrefix(d, "//")
	}

	diags := config.Validate(cfg)
	for _, w := range diags.Warnings {
		log.Warn("configuration", zap.String("warning", w.Message))
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// patterns defaults to ./... when no pattern is given.
func patterns(args []string) []string {
	if len(args) == 0 {
		return []string{"./..."}
	}

	return args
}

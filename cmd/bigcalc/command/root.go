// Package command contains the commands for the bigcalc binary.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	bigint "github.com/shabbyrobe/go-bigint"
)

// Options are the root flags after flag, environment and default values
// have been merged.
type Options struct {
	Width    int
	Zero     bool
	Plus     bool
	Dump     bool
	LogLevel string
}

var (
	opts   Options
	logger = zap.NewNop()

	v = viper.New()

	Root = &cobra.Command{
		Use:   "bigcalc",
		Short: "bigcalc does arithmetic on arbitrarily large integers.",
		Long: "`bigcalc` evaluates arithmetic and comparisons on signed integers of any size.\n\n" +
			"Every flag can also be set with a BIGCALC_ environment variable, for example\n" +
			"BIGCALC_WIDTH=20 or BIGCALC_LOG_LEVEL=debug. Pass negative numbers after `--`.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
)

func init() {
	registerFlags(Root.PersistentFlags())

	v.SetEnvPrefix("BIGCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(Root.PersistentFlags()); err != nil {
		panic(err)
	}
}

func registerFlags(flags *pflag.FlagSet) {
	flags.Int("width", 0, "Minimum width of printed results.")
	flags.Bool("zero", false, "Pad printed results to --width with zeros instead of spaces.")
	flags.Bool("plus", false, "Always print a sign.")
	flags.Bool("dump", false, "Dump the internal representation of each result to stderr.")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error).")
}

// Logger returns the logger configured by the last command run. Before
// any command runs it discards everything.
func Logger() *zap.Logger { return logger }

func setup(cmd *cobra.Command, args []string) error {
	opts = Options{
		Width:    v.GetInt("width"),
		Zero:     v.GetBool("zero"),
		Plus:     v.GetBool("plus"),
		Dump:     v.GetBool("dump"),
		LogLevel: v.GetString("log-level"),
	}
	if opts.Width < 0 {
		return fmt.Errorf("--width must not be negative, found %d", opts.Width)
	}

	level, err := zapcore.ParseLevel(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
		level,
	)
	logger = zap.New(core).Named("bigcalc")

	logger.Debug("options", zap.String("command", cmd.Name()), zap.Any("options", opts))
	return nil
}

// formatInt renders i according to --width, --zero and --plus.
func formatInt(i bigint.Int) string {
	var sb strings.Builder
	sb.WriteByte('%')
	if opts.Plus {
		sb.WriteByte('+')
	}
	if opts.Zero {
		sb.WriteByte('0')
	}
	if opts.Width > 0 {
		sb.WriteString(strconv.Itoa(opts.Width))
	}
	sb.WriteByte('d')
	return fmt.Sprintf(sb.String(), i)
}

func printInt(cmd *cobra.Command, i bigint.Int) {
	fmt.Fprintln(cmd.OutOrStdout(), formatInt(i))
	if opts.Dump {
		spew.Fdump(cmd.ErrOrStderr(), i)
	}
}

func parseArg(name, s string) (bigint.Int, error) {
	i, err := bigint.IntFromString(s)
	if err != nil {
		return i, fmt.Errorf("invalid %s: %w", name, err)
	}
	return i, nil
}

package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/stryng/pkg/config"
	"github.com/dmitrymomot/stryng/pkg/logger"
	"github.com/dmitrymomot/stryng/pkg/random"
	"github.com/dmitrymomot/stryng/pkg/textgen"
)

const envPrefix = "STRYNG_"

// settings are read from STRYNG_* variables and may be overridden by flags.
type settings struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Output    string `env:"OUTPUT" envDefault:"text"`
	Seed      string `env:"SEED"`
	WrapWidth int    `env:"WRAP_WIDTH" envDefault:"80" validate:"gt=0"`
}

var (
	flagOutput   string
	flagSeed     string
	flagLogLevel string

	cfg    settings
	format outputFormat
	log    *slog.Logger
	gen    *textgen.Generator
)

var rootCmd = &cobra.Command{
	Use:   "stryng",
	Short: "String validation and generation toolkit",
	Long: `stryng validates strings against named checks (IBAN, BIC, e-mail, JSON, ...),
generates random text and applies text transforms.

Settings are read from the environment and a local .env file:
  STRYNG_LOG_LEVEL   debug|info|warn|error (default warn)
  STRYNG_LOG_FORMAT  text|json (default text)
  STRYNG_OUTPUT      text|json|yaml (default text)
  STRYNG_SEED        phrase for reproducible generation
  STRYNG_WRAP_WIDTH  default line width for "transform wrap" (default 80)`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: "+strings.Join(outputFormats.Names(), "|"))
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "seed phrase for reproducible generation")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error")
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadWithPrefix(&cfg, envPrefix); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("output") {
		cfg.Output = flagOutput
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := playground.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	f, err := parseSelector(outputFormats, cfg.Output)
	if err != nil {
		return fmt.Errorf("output format: %w", err)
	}
	format = f

	log = logger.New(
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("stryng")),
	)

	ctx := logger.WithScope(cmd.Context(), logger.Command(cmd.Name()))
	cmd.SetContext(ctx)

	src := random.Default()
	if cfg.Seed != "" {
		seed := random.SeedFromPhrase(cfg.Seed)
		src = random.NewSeeded(seed)
		log.DebugContext(ctx, "using seeded source", logger.Seed(seed))
	}
	gen = textgen.New(textgen.WithSource(src))

	return nil
}

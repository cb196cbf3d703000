package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/textcal/internal/calendar"
	"github.com/username/textcal/internal/config"
	"github.com/username/textcal/internal/daemon"
	"github.com/username/textcal/internal/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "textcal",
		Short: "German year calendar generator",
		Long:  "Generate plain-text year calendars with German public holidays, DIN 1355 calendar weeks and bridge days",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Daemon.LogFile != "" {
				logger, err = initFileLogger(cfg.Daemon.LogFile, cfg.Daemon.LogLevel)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(daemonCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "generate [year]",
		Short: "Generate the year calendar file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			gen := calendar.NewGenerator(logger)
			cal, err := gen.Generate(year)
			if err != nil {
				return err
			}

			if toStdout {
				fmt.Print(output.Render(cal))
				return nil
			}

			writer := output.NewWriter(cfg.Output.Directory, logger)
			path, err := writer.Write(cal)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Calendar for %d written to %s\n", year, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the calendar instead of writing a file")

	return cmd
}

func daemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Keep the current year's calendar file up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			gen := calendar.NewGenerator(logger)
			writer := output.NewWriter(cfg.Output.Directory, logger)

			d, err := daemon.New(gen, writer, cfg.Daemon.Schedule, cfg.Daemon.SystemTray, logger)
			if err != nil {
				return err
			}

			logger.Info("Starting daemon",
				zap.String("schedule", cfg.Daemon.Schedule),
				zap.String("output_dir", cfg.Output.Directory),
				zap.Bool("system_tray", cfg.Daemon.SystemTray))

			return d.Start()
		},
	}
}

// yearArg resolves the optional year argument, defaulting to the
// current year from the host clock.
func yearArg(args []string) (int, error) {
	if len(args) == 0 {
		return time.Now().Year(), nil
	}

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	return year, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}

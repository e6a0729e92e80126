package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ogerard/immoval/internal/acquisition"
	"github.com/ogerard/immoval/internal/amortization"
	"github.com/ogerard/immoval/internal/config"
	"github.com/ogerard/immoval/internal/output"
	"github.com/ogerard/immoval/internal/server"
	"github.com/ogerard/immoval/internal/viager"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "immoval",
	Short: "Real-estate investment calculator",
	Long:  "Valuation engine for rental purchases, life-annuity (viager) sales and loan amortization",
}

var viagerCmd = &cobra.Command{
	Use:   "viager [scenario-file]",
	Short: "Value a life-annuity or fixed-term property sale",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f := loadFile(args[0])
		if f.Viager == nil {
			log.Fatalf("%s has no viager section", args[0])
		}

		scenario := f.Viager.ToDomain()
		result := viager.Value(scenario)

		if pdfPath, _ := cmd.Flags().GetString("pdf"); pdfPath != "" {
			data, err := output.ValuationPDF(scenario, result)
			if err != nil {
				log.Fatal(err)
			}
			if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report written to %s\n", pdfPath)
			return
		}

		fmt.Print(output.FormatValuation(scenario, result))
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [scenario-file]",
	Short: "Generate a loan amortization schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f := loadFile(args[0])
		if f.Loan == nil {
			log.Fatalf("%s has no loan section", args[0])
		}

		loan := f.Loan.ToDomain()
		rows := amortization.Schedule(loan, f.Loan.Basis())

		if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
			data, err := output.ExportSchedule(rows)
			if err != nil {
				log.Fatal(err)
			}
			if err := os.WriteFile(csvPath, data, 0o644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Schedule written to %s\n", csvPath)
			return
		}

		fmt.Print(output.FormatScheduleSummary(loan, rows))
	},
}

var rentalCmd = &cobra.Command{
	Use:   "rental [scenario-file]",
	Short: "Evaluate yields and cashflow of a rental purchase",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f := loadFile(args[0])
		if f.Rental == nil {
			log.Fatalf("%s has no rental section", args[0])
		}

		in := f.Rental.ToDomain()
		fmt.Print(output.FormatRental(in, acquisition.Evaluate(in)))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loadFile(args[0])
		fmt.Printf("Scenario file %s is valid\n", args[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculator HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := server.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}

		logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = logger.Sync() }()

		var cache server.Cache = server.NewMemoryCache()
		if cfg.RedisAddr != "" {
			rc := server.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := rc.Ping(ctx)
			cancel()
			if err != nil {
				logger.Warn("redis unreachable, falling back to in-memory cache",
					zap.String("addr", cfg.RedisAddr), zap.Error(err))
			} else {
				cache = rc
			}
		}

		handler := server.NewHandler(logger, cache, version)
		logger.Info("listening", zap.String("addr", cfg.Listen))
		if err := http.ListenAndServe(cfg.Listen, handler); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "immoval %s (commit %s, built %s)\n", version, commit, date)
	},
}

func loadFile(path string) *config.File {
	parser := config.NewInputParser()
	f, err := parser.LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return f
}

func newLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "", "info":
		zapLevel = zapcore.InfoLevel
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "", "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}

func main() {
	viagerCmd.Flags().String("pdf", "", "write a PDF report to the given path")
	scheduleCmd.Flags().String("csv", "", "write the schedule as semicolon-delimited CSV to the given path")
	serveCmd.Flags().String("config", "", "path to a server config file")

	rootCmd.AddCommand(viagerCmd, scheduleCmd, rentalCmd, validateCmd, serveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

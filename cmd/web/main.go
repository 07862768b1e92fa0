package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/retention-atlas/pkg/server"
	"github.com/de-tools/retention-atlas/pkg/services/baseline"
	"github.com/de-tools/retention-atlas/pkg/services/calculator"
	"github.com/de-tools/retention-atlas/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Retention Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (yaml, json or toml); environment only when empty")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	dataset, err := baseline.Load(ctx, baseline.NewDefaultRegistry(), cfg.Baseline.Source, cfg.Baseline.Options())
	if err != nil {
		return fmt.Errorf("failed to load baseline dataset: %w", err)
	}

	logger.Info().Msgf("Baseline: %d customers, %d repeat, %.2f%% retention, $%.0f order value.",
		dataset.TotalCustomers, dataset.RepeatCustomers, dataset.CurrentRetentionRate, dataset.BaselineOrderValue)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Calculator: calculator.New(dataset),
			Logger:     logger,
		},
	})

	return api.Start()
}

package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/ad-tools/ad-pulse/pkg/notify"
	"github.com/ad-tools/ad-pulse/pkg/server"
	accountsvc "github.com/ad-tools/ad-pulse/pkg/services/account"
	"github.com/ad-tools/ad-pulse/pkg/services/config"
	"github.com/ad-tools/ad-pulse/pkg/services/creative"
	"github.com/ad-tools/ad-pulse/pkg/services/health"
	"github.com/ad-tools/ad-pulse/pkg/services/insights"
	"github.com/ad-tools/ad-pulse/pkg/services/recommend"
	"github.com/ad-tools/ad-pulse/pkg/services/scoring"
	"github.com/ad-tools/ad-pulse/pkg/store/duckdb"
	auditstore "github.com/ad-tools/ad-pulse/pkg/store/duckdb/audit"
	statusstore "github.com/ad-tools/ad-pulse/pkg/store/duckdb/status"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	alertPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Ad Pulse",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.adpulsecfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the .adpulsecfg file (default is $HOME/.adpulsecfg)")
	rootCmd.Flags().StringVarP(&alertPath, "alerts", "a", "",
		"Path to the alerting config file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	alertCfg := &notify.Config{}
	if alertPath != "" {
		alertCfg, err = notify.LoadConfig(alertPath)
		if err != nil {
			return fmt.Errorf("failed to load alert config: %w", err)
		}
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: "ad-pulse.db",
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	auditRuns, err := auditstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create audit store: %w", err)
	}
	creativeStatus, err := statusstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create status store: %w", err)
	}

	catalog := scoring.DefaultCatalog()
	fatigueCalc := scoring.NewFatigueCalculator(scoring.DefaultFatigueSettings())
	insightsClient := insights.NewClient(registry)
	notifier := notify.NewWebhookNotifier(alertCfg)

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Found ad account profile: `%s`", profile)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Accounts:  accountsvc.NewExplorer(registry),
			Health:    health.NewService(insightsClient, catalog, auditRuns),
			Creatives: creative.NewService(insightsClient, fatigueCalc, creativeStatus, notifier),
			Recommend: recommend.NewService(scoring.NewPriorityCalculator()),
			Catalog:   catalog,
			Fatigue:   fatigueCalc,
		},
	})

	return webAPI.Start()
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-portal/internal/config"
	"github.com/jonathan/recruiter-portal/internal/db"
	"github.com/jonathan/recruiter-portal/internal/scoreapi"
	"github.com/jonathan/recruiter-portal/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Starts an HTTP server exposing the scoring engine. Requests are authenticated with bearer tokens; generate one with the token command.",
	RunE:  runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadPortalConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	serverConfig := server.Config{
		Addr: cfg.ListenAddr,
		JWT:  jwtConfig,
	}

	// The external strategy is available only when a scoring service is
	// configured.
	scoreURL := cfg.ScoreAPIURL
	if scoreURL == "" {
		scoreURL = os.Getenv("SCORE_API_URL")
	}
	if scoreURL != "" {
		scoreKey := cfg.ScoreAPIKey
		if scoreKey == "" {
			scoreKey = os.Getenv("SCORE_API_KEY")
		}
		remote, err := scoreapi.New(scoreapi.Config{BaseURL: scoreURL, APIKey: scoreKey})
		if err != nil {
			return err
		}
		serverConfig.Remote = remote
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		database, err := db.Connect(context.Background(), databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		serverConfig.Database = database
	}

	srv, err := server.New(serverConfig)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

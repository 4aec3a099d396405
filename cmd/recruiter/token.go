package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-portal/internal/config"
	"github.com/jonathan/recruiter-portal/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate a bearer token for the REST API",
	Long:  "Generates a signed JWT for calling the REST API. Reads JWT_SECRET and JWT_EXPIRATION_HOURS from the environment.",
	RunE:  runToken,
}

var tokenRecruiterID string

func init() {
	tokenCmd.Flags().StringVar(&tokenRecruiterID, "recruiter-id", "", "Recruiter UUID to embed in the token (default: random)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	recruiterID := uuid.New()
	if tokenRecruiterID != "" {
		recruiterID, err = uuid.Parse(tokenRecruiterID)
		if err != nil {
			return fmt.Errorf("invalid recruiter ID: %w", err)
		}
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(recruiterID)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

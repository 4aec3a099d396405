package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-portal/internal/observability"
	"github.com/jonathan/recruiter-portal/internal/store"
	"github.com/jonathan/recruiter-portal/internal/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Track candidate decisions per job",
}

var statusSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record a decision for a candidate",
	Long:  fmt.Sprintf("Records a decision for a candidate on a job. Valid statuses: %s.", strings.Join(statusChoices(), ", ")),
	RunE:  runStatusSet,
}

var statusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded decisions",
	RunE:  runStatusList,
}

var (
	statusSetEmail  string
	statusSetStatus string
	statusSetJob    string
	statusListJob   string
)

func statusChoices() []string {
	return []string{
		types.StatusInterviewRequested,
		types.StatusRejected,
		types.StatusAccepted,
	}
}

func init() {
	statusSetCmd.Flags().StringVarP(&statusSetEmail, "email", "e", "", "Candidate email (required)")
	statusSetCmd.Flags().StringVarP(&statusSetStatus, "status", "s", "", "Decision (required)")
	statusSetCmd.Flags().StringVarP(&statusSetJob, "job", "j", "", "Job title (required)")
	for _, flag := range []string{"email", "status", "job"} {
		if err := statusSetCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	statusListCmd.Flags().StringVarP(&statusListJob, "job", "j", "", "Only show decisions for this job")

	statusCmd.AddCommand(statusSetCmd)
	statusCmd.AddCommand(statusListCmd)
	rootCmd.AddCommand(statusCmd)
}

func runStatusSet(_ *cobra.Command, _ []string) error {
	cfg, err := loadPortalConfig()
	if err != nil {
		return err
	}

	entry := types.StatusEntry{
		Email:  statusSetEmail,
		Status: statusSetStatus,
		Job:    statusSetJob,
	}
	if err := store.NewStatusStore(cfg.StatusPath).Set(entry); err != nil {
		return err
	}

	fmt.Printf("Recorded %q for %s on %q\n", entry.Status, entry.Email, entry.Job)
	return nil
}

func runStatusList(_ *cobra.Command, _ []string) error {
	cfg, err := loadPortalConfig()
	if err != nil {
		return err
	}

	statusStore := store.NewStatusStore(cfg.StatusPath)

	var entries []types.StatusEntry
	var err2 error
	if statusListJob != "" {
		entries, err2 = statusStore.ForJob(statusListJob)
	} else {
		entries, err2 = statusStore.Load()
	}
	if err2 != nil {
		return err2
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintStatuses(statusListJob, entries)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-portal/internal/fetch"
	"github.com/jonathan/recruiter-portal/internal/observability"
	"github.com/jonathan/recruiter-portal/internal/parsing"
	"github.com/jonathan/recruiter-portal/internal/store"
	"github.com/jonathan/recruiter-portal/internal/types"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage the job catalog",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs in the catalog",
	RunE:  runJobsList,
}

var jobsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a job to the catalog",
	RunE:  runJobsAdd,
}

var jobsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import job postings from a job board URL or a CSV file",
	Long:  "With --url, fetches a job board page, extracts the posting title and description, and adds it to the catalog; JavaScript-rendered boards are rendered in a headless browser automatically. With --file, bulk-imports catalog rows from a CSV file.",
	RunE:  runJobsImport,
}

var (
	jobsAddTitle       string
	jobsAddDescription string
	jobsAddDescFile    string
	jobsAddLocation    string
	jobsAddYears       int
	jobsImportURL      string
	jobsImportFile     string
	jobsImportLocation string
)

func init() {
	jobsAddCmd.Flags().StringVarP(&jobsAddTitle, "title", "t", "", "Job title (required)")
	jobsAddCmd.Flags().StringVarP(&jobsAddDescription, "description", "d", "", "Job description text")
	jobsAddCmd.Flags().StringVar(&jobsAddDescFile, "description-file", "", "Path to a job description text file")
	jobsAddCmd.Flags().StringVarP(&jobsAddLocation, "location", "l", "", "Job location")
	jobsAddCmd.Flags().IntVar(&jobsAddYears, "years", 0, "Required years of experience (0 = parse from description)")
	if err := jobsAddCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}

	jobsImportCmd.Flags().StringVarP(&jobsImportURL, "url", "u", "", "Job board URL")
	jobsImportCmd.Flags().StringVarP(&jobsImportFile, "file", "f", "", "CSV file of catalog rows")
	jobsImportCmd.Flags().StringVarP(&jobsImportLocation, "location", "l", "", "Job location (URL import only)")

	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsAddCmd)
	jobsCmd.AddCommand(jobsImportCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsList(_ *cobra.Command, _ []string) error {
	cfg, err := loadPortalConfig()
	if err != nil {
		return err
	}

	jobs, err := store.NewJobStore(cfg.JobsPath).Load()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("No jobs in catalog")
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	for i := range jobs {
		printer.PrintJob(&jobs[i])
	}
	return nil
}

func runJobsAdd(_ *cobra.Command, _ []string) error {
	cfg, err := loadPortalConfig()
	if err != nil {
		return err
	}

	description := jobsAddDescription
	if jobsAddDescFile != "" {
		if description != "" {
			return fmt.Errorf("--description and --description-file are mutually exclusive")
		}
		data, err := os.ReadFile(jobsAddDescFile)
		if err != nil {
			return fmt.Errorf("failed to read description file %s: %w", jobsAddDescFile, err)
		}
		description = string(data)
	}
	if description == "" {
		return fmt.Errorf("a job description is required")
	}

	years := jobsAddYears
	if years == 0 {
		years = parsing.RequiredYears(description)
	}

	job := types.JobPosting{
		Title:                   jobsAddTitle,
		Description:             description,
		Location:                jobsAddLocation,
		RequiredExperienceYears: years,
	}
	if err := store.NewJobStore(cfg.JobsPath).Add(job); err != nil {
		return err
	}

	fmt.Printf("Added job %q\n", job.Title)
	return nil
}

func runJobsImport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPortalConfig()
	if err != nil {
		return err
	}

	switch {
	case jobsImportURL != "" && jobsImportFile != "":
		return fmt.Errorf("--url and --file are mutually exclusive")
	case jobsImportURL == "" && jobsImportFile == "":
		return fmt.Errorf("either --url or --file is required")
	case jobsImportFile != "":
		f, err := os.Open(jobsImportFile)
		if err != nil {
			return fmt.Errorf("failed to open import file %s: %w", jobsImportFile, err)
		}
		defer func() { _ = f.Close() }()

		imported, err := store.NewJobStore(cfg.JobsPath).ImportCSV(f)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d jobs\n", imported)
		return nil
	}

	job, err := fetch.ImportPosting(cmd.Context(), jobsImportURL, fetchOptions(cfg))
	if err != nil {
		return err
	}
	job.Location = jobsImportLocation
	job.RequiredExperienceYears = parsing.RequiredYears(job.Description)

	if err := store.NewJobStore(cfg.JobsPath).Add(*job); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJob(job)
	fmt.Printf("Imported job %q\n", job.Title)
	return nil
}

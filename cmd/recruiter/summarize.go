package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-portal/internal/extraction"
	"github.com/jonathan/recruiter-portal/internal/insight"
	"github.com/jonathan/recruiter-portal/internal/llm"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a resume, or ask a question about it",
	Long:  "Generates a short prose summary of a resume document, or answers a one-off question about it. Requires GEMINI_API_KEY. Insight never influences scoring.",
	RunE:  runSummarize,
}

var (
	summarizeResume   string
	summarizeQuestion string
)

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeResume, "resume", "r", "", "Path to the resume document (required)")
	summarizeCmd.Flags().StringVarP(&summarizeQuestion, "question", "q", "", "Question to answer instead of summarizing")
	if err := summarizeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPortalConfig()
	if err != nil {
		return err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	text, err := extraction.Text(summarizeResume)
	if err != nil {
		return err
	}
	candidate := extraction.BuildCandidate(summarizeResume, text)

	client, err := llm.NewGeminiClient(cmd.Context(), nil, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	generator := insight.New(client)

	var output string
	if summarizeQuestion != "" {
		output, err = generator.Answer(cmd.Context(), candidate, summarizeQuestion)
	} else {
		output, err = generator.Summarize(cmd.Context(), candidate)
	}
	if err != nil {
		return err
	}

	fmt.Println(output)
	return nil
}

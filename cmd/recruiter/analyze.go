package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-portal/internal/db"
	"github.com/jonathan/recruiter-portal/internal/extraction"
	"github.com/jonathan/recruiter-portal/internal/fetch"
	"github.com/jonathan/recruiter-portal/internal/observability"
	"github.com/jonathan/recruiter-portal/internal/ranking"
	"github.com/jonathan/recruiter-portal/internal/scoreapi"
	"github.com/jonathan/recruiter-portal/internal/store"
	"github.com/jonathan/recruiter-portal/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score and rank resumes against a job posting",
	Long:  "Loads every resume in a directory, scores each candidate against the selected job posting, and prints the ranked results. Results can optionally be written as JSON or persisted to Postgres.",
	RunE:  runAnalyze,
}

var (
	analyzeJob      string
	analyzeJobFile  string
	analyzeJobURL   string
	analyzeResumes  string
	analyzeStrategy string
	analyzeWeights  []string
	analyzeTop      int
	analyzeOutput   string
	analyzeSave     bool
	analyzeMarkTop  int
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Title of a job in the catalog")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job-file", "", "Path to a job description text file (alternative to --job)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "Job board URL to score against (alternative to --job)")
	analyzeCmd.Flags().StringVarP(&analyzeResumes, "resumes", "r", "", "Directory holding resume documents (required)")
	analyzeCmd.Flags().StringVarP(&analyzeStrategy, "strategy", "s", "", "Scoring strategy: composite, weighted, keyword, external")
	analyzeCmd.Flags().StringArrayVarP(&analyzeWeights, "weight", "w", nil, "Weighted skill as skill=weight (1-10); repeatable, selects the weighted strategy")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "Show only the top N candidates (0 = all)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to write ranked results (.csv writes CSV, anything else JSON)")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the run to Postgres (requires DATABASE_URL)")
	analyzeCmd.Flags().IntVar(&analyzeMarkTop, "mark-top", 0, "Mark the top N candidates as Interview Requested in the status ledger")

	if err := analyzeCmd.MarkFlagRequired("resumes"); err != nil {
		panic(fmt.Sprintf("failed to mark resumes flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPortalConfig()
	if err != nil {
		return err
	}

	job, err := resolveJob(cmd, cfg.JobsPath, fetchOptions(cfg))
	if err != nil {
		return err
	}

	if analyzeStrategy == "" && cfg.Strategy != "" && len(job.SkillWeights) == 0 {
		analyzeStrategy = cfg.Strategy
	}
	if analyzeStrategy != "" {
		job.Strategy = types.ScoringStrategy(analyzeStrategy)
	}

	weights, err := parseWeights(analyzeWeights)
	if err != nil {
		return err
	}
	if len(weights) > 0 {
		job.SkillWeights = weights
	}

	candidates, err := extraction.LoadDir(analyzeResumes)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no resumes found in %s", analyzeResumes)
	}

	analyzer := &ranking.Analyzer{}
	if job.EffectiveStrategy() == types.StrategyExternal {
		scoreURL := cfg.ScoreAPIURL
		if scoreURL == "" {
			scoreURL = os.Getenv("SCORE_API_URL")
		}
		scoreKey := cfg.ScoreAPIKey
		if scoreKey == "" {
			scoreKey = os.Getenv("SCORE_API_KEY")
		}
		remote, err := scoreapi.New(scoreapi.Config{BaseURL: scoreURL, APIKey: scoreKey})
		if err != nil {
			return fmt.Errorf("external strategy needs a scoring service: %w", err)
		}
		analyzer.Remote = remote
	}

	results, err := analyzer.Analyze(cmd.Context(), job, candidates)
	if err != nil {
		return err
	}

	shown := results
	if analyzeTop > 0 && analyzeTop < len(shown) {
		shown = shown[:analyzeTop]
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose || verbose {
		printer.PrintJob(job)
	}
	printer.PrintRanking(shown)

	if cfg.Verbose || verbose {
		for _, result := range shown {
			fmt.Printf("%s: %s\n", result.CandidateEmail, result.Explanation)
		}
	}

	if analyzeOutput != "" {
		if err := writeResults(analyzeOutput, results); err != nil {
			return err
		}
	}

	if analyzeMarkTop > 0 {
		if err := markTopCandidates(cfg.StatusPath, job.Title, results, analyzeMarkTop); err != nil {
			return err
		}
	}

	if analyzeSave {
		if err := persistRun(cmd, cfg.DatabaseURL, job, results); err != nil {
			return err
		}
	}

	return nil
}

// resolveJob builds the job posting from the catalog, a text file, or a job
// board URL.
func resolveJob(cmd *cobra.Command, jobsPath string, fetchOpts *fetch.Options) (*types.JobPosting, error) {
	sources := 0
	for _, flag := range []string{analyzeJob, analyzeJobFile, analyzeJobURL} {
		if flag != "" {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("--job, --job-file and --job-url are mutually exclusive")
	}

	switch {
	case analyzeJob != "":
		return store.NewJobStore(jobsPath).Find(analyzeJob)
	case analyzeJobFile != "":
		data, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read job file %s: %w", analyzeJobFile, err)
		}
		title := strings.TrimSuffix(filepath.Base(analyzeJobFile), filepath.Ext(analyzeJobFile))
		return &types.JobPosting{Title: title, Description: string(data)}, nil
	case analyzeJobURL != "":
		return fetch.ImportPosting(cmd.Context(), analyzeJobURL, fetchOpts)
	default:
		return nil, fmt.Errorf("one of --job, --job-file or --job-url is required")
	}
}

// parseWeights parses repeated skill=weight flags.
func parseWeights(raw []string) ([]types.SkillWeight, error) {
	var weights []types.SkillWeight
	for _, item := range raw {
		skill, value, found := strings.Cut(item, "=")
		if !found {
			return nil, fmt.Errorf("invalid weight %q, want skill=weight", item)
		}
		weight, err := strconv.Atoi(value)
		if err != nil || weight < 1 || weight > 10 {
			return nil, fmt.Errorf("invalid weight for %q: must be an integer 1-10", skill)
		}
		weights = append(weights, types.SkillWeight{Skill: strings.TrimSpace(skill), Weight: float64(weight)})
	}
	return weights, nil
}

// writeResults writes the ranked results to path, choosing the format by
// extension: .csv writes a flat CSV table, anything else indented JSON.
func writeResults(path string, results []types.ScoreResult) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return writeResultsCSV(path, results)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", path, err)
	}
	return nil
}

func writeResultsCSV(path string, results []types.ScoreResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write results to %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"rank", "email", "final_score", "matched_skills", "degraded", "explanation"}); err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}
	for i, result := range results {
		row := []string{
			strconv.Itoa(i + 1),
			result.CandidateEmail,
			strconv.FormatFloat(result.FinalScore, 'f', 4, 64),
			strings.Join(result.MatchedSkills, "; "),
			strconv.FormatBool(result.Degraded),
			result.Explanation,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write results row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// markTopCandidates records an Interview Requested status for the top n
// ranked candidates.
func markTopCandidates(statusPath, jobTitle string, results []types.ScoreResult, n int) error {
	if n > len(results) {
		n = len(results)
	}

	statuses := store.NewStatusStore(statusPath)
	for _, result := range results[:n] {
		entry := types.StatusEntry{
			Email:  result.CandidateEmail,
			Status: types.StatusInterviewRequested,
			Job:    jobTitle,
		}
		if err := statuses.Set(entry); err != nil {
			return err
		}
	}
	fmt.Printf("Marked top %d candidates as %s\n", n, types.StatusInterviewRequested)
	return nil
}

func persistRun(cmd *cobra.Command, databaseURL string, job *types.JobPosting, results []types.ScoreResult) error {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("--save requires DATABASE_URL")
	}

	database, err := db.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := database.CreateRun(cmd.Context(), job.Title, string(job.EffectiveStrategy()), len(results))
	if err != nil {
		return err
	}
	if err := database.SaveScores(cmd.Context(), runID, results); err != nil {
		return err
	}

	fmt.Printf("Saved run %s\n", runID)
	return nil
}

// Package insight generates recruiter-facing prose about a resume: a short
// summary for list views and one-shot answers to ad hoc questions. Both are
// conveniences layered on the scoring engine, never inputs to it; a scoring
// run works identically with insight disabled.
package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/recruiter-portal/internal/llm"
	"github.com/jonathan/recruiter-portal/internal/types"
)

// maxResumeChars caps how much resume text is sent to the model.
const maxResumeChars = 12000

const summaryPrompt = `You are assisting a recruiter. Summarize the following resume in at most three sentences, focusing on role, core skills, and seniority. Do not invent facts.

Resume:
%s`

const questionPrompt = `You are assisting a recruiter reviewing a resume. Answer the question using only information in the resume. If the resume does not contain the answer, say so.

Resume:
%s

Question: %s`

// Generator produces resume insight through an LLM client.
type Generator struct {
	Client llm.Client
}

// New returns a generator backed by client.
func New(client llm.Client) *Generator {
	return &Generator{Client: client}
}

// Summarize returns a short prose summary of a candidate's resume.
func (g *Generator) Summarize(ctx context.Context, candidate types.CandidateRecord) (string, error) {
	text := strings.TrimSpace(candidate.ResumeText)
	if text == "" {
		return "", fmt.Errorf("resume for %s has no text to summarize", candidate.Email)
	}

	prompt := fmt.Sprintf(summaryPrompt, truncate(text, maxResumeChars))
	summary, err := g.Client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("failed to summarize resume for %s: %w", candidate.Email, err)
	}
	return strings.TrimSpace(summary), nil
}

// Answer responds to one question about a candidate's resume. Each call is
// independent; no conversation state is kept.
func (g *Generator) Answer(ctx context.Context, candidate types.CandidateRecord, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is empty")
	}
	text := strings.TrimSpace(candidate.ResumeText)
	if text == "" {
		return "", fmt.Errorf("resume for %s has no text to answer from", candidate.Email)
	}

	prompt := fmt.Sprintf(questionPrompt, truncate(text, maxResumeChars), question)
	answer, err := g.Client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("failed to answer question for %s: %w", candidate.Email, err)
	}
	return strings.TrimSpace(answer), nil
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}

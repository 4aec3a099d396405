package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-portal/internal/llm"
	"github.com/jonathan/recruiter-portal/internal/types"
)

// fakeClient records prompts and returns a canned response.
type fakeClient struct {
	response string
	err      error
	prompts  []string
	tiers    []llm.ModelTier
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestSummarize(t *testing.T) {
	client := &fakeClient{response: "  Senior Python engineer with 6 years in data platforms.  "}
	g := New(client)

	candidate := types.CandidateRecord{
		Email:      "a@example.com",
		ResumeText: "Python engineer, 6 years, Spark and SQL.",
	}
	summary, err := g.Summarize(context.Background(), candidate)
	require.NoError(t, err)

	assert.Equal(t, "Senior Python engineer with 6 years in data platforms.", summary)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Python engineer, 6 years")
	assert.Equal(t, llm.TierLite, client.tiers[0])
}

func TestSummarize_EmptyResume(t *testing.T) {
	g := New(&fakeClient{})
	_, err := g.Summarize(context.Background(), types.CandidateRecord{Email: "a@example.com"})
	assert.Error(t, err)
}

func TestSummarize_TruncatesLongResume(t *testing.T) {
	client := &fakeClient{response: "summary"}
	g := New(client)

	candidate := types.CandidateRecord{
		Email:      "a@example.com",
		ResumeText: strings.Repeat("experience ", 5000),
	}
	_, err := g.Summarize(context.Background(), candidate)
	require.NoError(t, err)
	assert.Less(t, len(client.prompts[0]), maxResumeChars+len(summaryPrompt))
}

func TestAnswer(t *testing.T) {
	client := &fakeClient{response: "Yes, 6 years of Python."}
	g := New(client)

	candidate := types.CandidateRecord{
		Email:      "a@example.com",
		ResumeText: "Python engineer, 6 years.",
	}
	answer, err := g.Answer(context.Background(), candidate, "How much Python experience?")
	require.NoError(t, err)

	assert.Equal(t, "Yes, 6 years of Python.", answer)
	assert.Contains(t, client.prompts[0], "How much Python experience?")
	assert.Equal(t, llm.TierStandard, client.tiers[0])
}

func TestAnswer_EmptyQuestion(t *testing.T) {
	g := New(&fakeClient{})
	_, err := g.Answer(context.Background(), types.CandidateRecord{ResumeText: "text"}, "   ")
	assert.Error(t, err)
}

func TestAnswer_ClientErrorWrapped(t *testing.T) {
	g := New(&fakeClient{err: errors.New("quota exceeded")})
	_, err := g.Answer(context.Background(),
		types.CandidateRecord{Email: "a@example.com", ResumeText: "text"}, "question")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a@example.com")
	assert.Contains(t, err.Error(), "quota exceeded")
}

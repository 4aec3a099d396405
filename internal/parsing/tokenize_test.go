package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndSplits(t *testing.T) {
	tokens := Normalize("Python, SQL/NoSQL\nDocker", nil)
	assert.Equal(t, []string{"python", "sql", "nosql", "docker"}, tokens)
}

func TestNormalize_PreservesTechnicalCharacters(t *testing.T) {
	tokens := Normalize("C++ and Node.js (ASP.NET_Core)", nil)
	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "node.js")
	assert.Contains(t, tokens, "asp.net_core")
}

func TestNormalize_StripsEdgePunctuation(t *testing.T) {
	tokens := Normalize("(python), [docker]: \"kubernetes\".", nil)
	assert.Equal(t, []string{"python", "docker", "kubernetes"}, tokens)
}

func TestNormalize_DropsExperienceFragments(t *testing.T) {
	tokens := Normalize("Requires 5+ years experience, 3yrs minimum, 42 engineers", nil)
	assert.NotContains(t, tokens, "5")
	assert.NotContains(t, tokens, "5+")
	assert.NotContains(t, tokens, "3yrs")
	assert.NotContains(t, tokens, "42")
	assert.Contains(t, tokens, "minimum")
	assert.Contains(t, tokens, "engineers")
}

func TestNormalize_DropsStopwords(t *testing.T) {
	tokens := Normalize("Experience with the Python and SQL skills required", nil)
	assert.Equal(t, []string{"python", "sql"}, tokens)
}

func TestNormalize_DedupesPreservingFirstSeenOrder(t *testing.T) {
	tokens := Normalize("go rust go python rust go", nil)
	assert.Equal(t, []string{"go", "rust", "python"}, tokens)
}

func TestNormalize_Deterministic(t *testing.T) {
	text := "Senior Go engineer, Kubernetes/Docker, 5 years experience, C++"
	first := Normalize(text, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Normalize(text, nil))
	}
}

func TestNormalize_EmptyText(t *testing.T) {
	assert.Empty(t, Normalize("", nil))
	assert.Empty(t, Normalize("   \n\t ", nil))
}

func TestNormalize_CustomStopwords(t *testing.T) {
	stop := DefaultStopwords()
	stop["python"] = true

	tokens := Normalize("python sql", stop)
	assert.Equal(t, []string{"sql"}, tokens)

	// The default set must not have been mutated.
	assert.NotContains(t, Normalize("python sql", nil), "sql2")
	assert.Contains(t, Normalize("python sql", nil), "python")
}

func TestNormalize_KeepsTokensWithEmbeddedDigits(t *testing.T) {
	tokens := Normalize("win32 s3 ec2 html5", nil)
	assert.Equal(t, []string{"win32", "s3", "ec2", "html5"}, tokens)
}

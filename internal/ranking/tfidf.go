package ranking

import (
	"math"

	"github.com/jonathan/recruiter-portal/internal/parsing"
)

// Vectorizer builds tf-idf vectors over a fixed corpus of documents.
//
// The vocabulary and document frequencies are corpus-relative: similarities
// are only comparable between documents vectorized together. This matches the
// batch semantics of the analysis run; adding or removing a candidate from a
// batch can shift other candidates' similarities slightly, which is accepted
// behavior, not a bug. Once built, a Vectorizer is read-only and safe to
// share across goroutines.
type Vectorizer struct {
	vocab map[string]int // token -> column index, first-seen order
	idf   []float64
	rows  [][]float64 // l2-normalized tf-idf vector per input document
}

// NewVectorizer tokenizes the given documents (stopwords excluded) and builds
// smoothed tf-idf vectors for each. Empty documents yield zero vectors.
func NewVectorizer(docs []string) *Vectorizer {
	v := &Vectorizer{vocab: make(map[string]int)}

	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		toks := parsing.Tokens(doc, nil)
		tokenized[i] = toks
		for _, tok := range toks {
			if _, ok := v.vocab[tok]; !ok {
				v.vocab[tok] = len(v.vocab)
			}
		}
	}

	// Document frequency per vocabulary term.
	df := make([]int, len(v.vocab))
	for _, toks := range tokenized {
		seen := make(map[int]bool, len(toks))
		for _, tok := range toks {
			seen[v.vocab[tok]] = true
		}
		for col := range seen {
			df[col]++
		}
	}

	// Smoothed idf: ln((1+n)/(1+df)) + 1, so terms present in every document
	// still contribute.
	n := float64(len(docs))
	v.idf = make([]float64, len(df))
	for col, d := range df {
		v.idf[col] = math.Log((1+n)/(1+float64(d))) + 1
	}

	v.rows = make([][]float64, len(docs))
	for i, toks := range tokenized {
		v.rows[i] = v.vectorize(toks)
	}

	return v
}

// vectorize builds the l2-normalized tf-idf vector for one tokenized document.
func (v *Vectorizer) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(v.vocab))
	for _, tok := range tokens {
		col := v.vocab[tok]
		vec[col] += v.idf[col]
	}

	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for col := range vec {
		vec[col] /= norm
	}
	return vec
}

// Cosine returns the cosine similarity between documents i and j of the
// corpus. Vectors are l2-normalized, so this is a dot product; an empty
// document yields 0 against everything.
func (v *Vectorizer) Cosine(i, j int) float64 {
	a, b := v.rows[i], v.rows[j]
	dot := 0.0
	for col := range a {
		dot += a[col] * b[col]
	}
	// Guard against float drift outside [0,1].
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}

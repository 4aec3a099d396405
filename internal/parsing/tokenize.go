// Package parsing provides text normalization and field extraction for job
// descriptions and resume text.
package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

// defaultStopwords filters connectors, articles, and generic recruiting
// filler that add noise to skill matching.
var defaultStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "of": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "with": true,
	"is": true, "are": true, "be": true, "as": true, "by": true, "from": true,
	"we": true, "you": true, "our": true, "your": true, "their": true,
	"this": true, "that": true, "will": true, "must": true, "have": true,
	"has": true, "can": true, "not": true, "but": true, "all": true,
	"who": true, "what": true, "how": true, "more": true, "than": true,
	"experience": true, "experienced": true, "year": true, "years": true,
	"yrs": true, "skill": true, "skills": true, "responsibilities": true,
	"responsibility": true, "requirement": true, "requirements": true,
	"required": true, "require": true, "requires": true, "preferred": true,
	"candidate": true, "candidates": true, "job": true, "role": true,
	"work": true, "working": true, "team": true, "ability": true,
	"knowledge": true, "strong": true, "plus": true, "etc": true,
}

// DefaultStopwords returns a copy of the built-in stopword set so callers
// can extend it without mutating the shared default.
func DefaultStopwords() map[string]bool {
	out := make(map[string]bool, len(defaultStopwords))
	for w := range defaultStopwords {
		out[w] = true
	}
	return out
}

// numericToken matches tokens that are experience-requirement fragments
// rather than skills: bare numbers ("5", "5+", "3.5") and numbers glued to a
// year unit ("3yrs", "10years").
var numericToken = regexp.MustCompile(`^[0-9][0-9.+_-]*(years?|yrs?)?$`)

// Tokens tokenizes text into lowercase tokens, keeping repeats. Used by the
// tf-idf vectorizer, where term frequency matters.
//
// Internal characters meaningful to technical terms (".", "+", "_", "-") are
// preserved, so "c++" and "node.js" survive intact.
func Tokens(text string, stopwords map[string]bool) []string {
	if stopwords == nil {
		stopwords = defaultStopwords
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '/'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := trimToken(f)
		if tok == "" || stopwords[tok] || numericToken.MatchString(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

// Normalize tokenizes text into the lowercase skill vocabulary used for
// matching. For identical input and stopword set the output is byte-identical
// and order-stable: tokens are deduplicated preserving first-seen order.
func Normalize(text string, stopwords map[string]bool) []string {
	all := Tokens(text, stopwords)

	tokens := make([]string, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, tok := range all {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}

	return tokens
}

// trimToken strips leading and trailing punctuation from a token.
// "+" is kept at the edges so "c++" survives; dots, hyphens, and underscores
// are only meaningful inside a token.
func trimToken(tok string) string {
	tok = strings.TrimFunc(tok, func(r rune) bool {
		return !isTokenRune(r)
	})
	return strings.Trim(tok, "._-")
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '.' || r == '+' || r == '_' || r == '-'
}

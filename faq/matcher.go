// ABOUTME: Token-overlap matcher over the reference collection
// ABOUTME: Scores entries by distinct query tokens found in question+answer text
package faq

import (
	"strings"

	"github.com/poojareddy/voicedesk/models"
)

// Search returns the entry whose question and answer text contain the most
// distinct tokens of the query, or nil when no token matches at all. Ties go
// to the earliest entry in collection order.
//
// Matching is substring-based, not phrase-based: short tokens ("a", "pay")
// can hit unrelated entries. This is an approximate relevance score; treat
// misses and near-ties accordingly.
func Search(entries []models.ReferenceEntry, query string) *models.ReferenceEntry {
	tokens := distinctTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	best := -1
	bestScore := 0
	for i := range entries {
		text := strings.ToLower(entries[i].Question + entries[i].Answer)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	if best < 0 {
		return nil
	}
	return &entries[best]
}

func distinctTokens(query string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

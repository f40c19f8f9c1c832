package taxonomy

import "strings"

// keywordWordWeight is the score contributed by each matched keyword word, so
// multi-word phrases outweigh single words.
const keywordWordWeight = 10

// Match is the winning rule for a title.
type Match struct {
	Category    string
	SubCategory string
	Score       int
}

// Scorer assigns job titles to (category, sub-category) pairs using a static
// keyword table. It is pure computation: no persistence, no I/O.
type Scorer struct {
	rules []Rule
}

// NewScorer builds a scorer over a copy of rules. Order is preserved; earlier
// rules win score ties.
func NewScorer(rules []Rule) *Scorer {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Scorer{rules: cp}
}

// Categorize normalizes the title, scores every rule and returns the best
// match. Each keyword whose normalized form occurs as a substring of the
// normalized title adds 10 points per keyword word. A best score of zero
// means nothing matched; ok is false and the caller decides whether the title
// goes to the review queue.
func (s *Scorer) Categorize(title string) (Match, bool) {
	normalized := Normalize(title)
	if normalized == "" {
		return Match{}, false
	}

	var best Match
	for _, rule := range s.rules {
		score := 0
		for _, kw := range rule.Keywords {
			nkw := Normalize(kw)
			if nkw == "" {
				continue
			}
			if strings.Contains(normalized, nkw) {
				score += keywordWordWeight * len(strings.Fields(nkw))
			}
		}
		// Strictly greater: an equal score never displaces an earlier rule.
		if score > best.Score {
			best = Match{Category: rule.Category, SubCategory: rule.SubCategory, Score: score}
		}
	}

	if best.Score == 0 {
		return Match{}, false
	}
	return best, true
}

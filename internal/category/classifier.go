package category

import (
	"regexp"
	"sort"
	"strings"
)

// Classifier scores free-text habit names against the category taxonomy
// using three layers: whole-keyword matching, precompiled regexp patterns
// and partial (fuzzy) keyword matching. It holds no mutable state; build
// one with NewClassifier and share it.
type Classifier struct {
	defs     []Definition
	compiled [][]*regexp.Regexp
}

// Suggestion is one scored candidate category.
type Suggestion struct {
	Name       string     `json:"name"`
	Confidence float64    `json:"confidence"`
	Definition Definition `json:"definition"`
}

const (
	keywordWeight = 0.5
	patternWeight = 0.35
	fuzzyWeight   = 0.15

	// Minimum combined score for Classify to accept a category.
	acceptThreshold = 0.15
	// Minimum combined score for a category to appear in suggestions.
	suggestThreshold = 0.05
)

var wordRe = regexp.MustCompile(`\b\w+\b`)

func NewClassifier() *Classifier {
	c := &Classifier{
		defs:     Definitions,
		compiled: make([][]*regexp.Regexp, len(Definitions)),
	}
	for i, def := range c.defs {
		patterns := make([]*regexp.Regexp, 0, len(def.Patterns))
		for _, p := range def.Patterns {
			patterns = append(patterns, regexp.MustCompile("(?i)"+p))
		}
		c.compiled[i] = patterns
	}
	return c
}

// Classify maps a habit name to the best-scoring category. Names that score
// below the accept threshold, and empty or whitespace-only names, fall back
// to ("Other", 0).
func (c *Classifier) Classify(name string) (string, float64, Definition) {
	text := strings.ToLower(strings.TrimSpace(name))
	if text == "" {
		return Other, 0.0, c.otherDef()
	}
	bestIdx := -1
	bestScore := 0.0
	for i, def := range c.defs {
		if def.Name == Other {
			continue
		}
		score := c.score(text, i)
		if bestIdx == -1 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	if bestIdx >= 0 && bestScore >= acceptThreshold {
		return c.defs[bestIdx].Name, bestScore, c.defs[bestIdx]
	}
	return Other, 0.0, c.otherDef()
}

// Suggest returns up to topN categories scoring above the suggestion
// threshold, best first. Ties keep taxonomy order. With no candidates it
// returns the single Other suggestion.
func (c *Classifier) Suggest(name string, topN int) []Suggestion {
	text := strings.ToLower(strings.TrimSpace(name))
	if text == "" {
		return []Suggestion{{Name: Other, Confidence: 0.0, Definition: c.otherDef()}}
	}
	suggestions := make([]Suggestion, 0, len(c.defs))
	for i, def := range c.defs {
		if def.Name == Other {
			continue
		}
		score := c.score(text, i)
		if score > suggestThreshold {
			suggestions = append(suggestions, Suggestion{
				Name:       def.Name,
				Confidence: score,
				Definition: def,
			})
		}
	}
	if len(suggestions) == 0 {
		return []Suggestion{{Name: Other, Confidence: 0.0, Definition: c.otherDef()}}
	}
	sort.SliceStable(suggestions, func(a, b int) bool {
		return suggestions[a].Confidence > suggestions[b].Confidence
	})
	if len(suggestions) > topN {
		suggestions = suggestions[:topN]
	}
	return suggestions
}

// All lists every category with its display metadata.
func (c *Classifier) All() []Definition {
	return c.defs
}

func (c *Classifier) score(text string, idx int) float64 {
	def := c.defs[idx]
	score := keywordScore(text, def.Keywords)*keywordWeight +
		patternScore(text, c.compiled[idx])*patternWeight +
		fuzzyScore(text, def.Keywords)*fuzzyWeight
	return min(score, 1.0)
}

func (c *Classifier) otherDef() Definition {
	return c.defs[len(c.defs)-1]
}

// keywordScore counts whole-keyword hits: a keyword whose every token
// appears among the text's tokens counts 1, a bare substring occurrence
// counts 0.8. Each hit is worth 0.4 of the score, capped at 1.
func keywordScore(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0.0
	}
	words := make(map[string]struct{})
	for _, w := range wordRe.FindAllString(text, -1) {
		words[w] = struct{}{}
	}
	matches := 0.0
	for _, keyword := range keywords {
		if tokensPresent(keyword, words) {
			matches += 1
		} else if strings.Contains(text, keyword) {
			matches += 0.8
		}
	}
	if matches == 0 {
		return 0.0
	}
	return min(1.0, matches*0.4)
}

func tokensPresent(keyword string, words map[string]struct{}) bool {
	tokens := wordRe.FindAllString(keyword, -1)
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if _, ok := words[tok]; !ok {
			return false
		}
	}
	return true
}

// patternScore is 1 when any pattern matches. A single match is already a
// strong signal, so the first hit short-circuits.
func patternScore(text string, patterns []*regexp.Regexp) float64 {
	for _, p := range patterns {
		if p.MatchString(text) {
			return 1.0
		}
	}
	return 0.0
}

// fuzzyScore rewards partial keyword overlap: the keyword's first four
// characters occurring anywhere in the text scores 0.5, the keyword hiding
// inside a single whitespace token scores 0.3. Only keywords of length 4+
// participate.
func fuzzyScore(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0.0
	}
	partial := 0.0
	fields := strings.Fields(text)
	for _, keyword := range keywords {
		if len(keyword) < 4 {
			continue
		}
		if strings.Contains(text, keyword[:4]) {
			partial += 0.5
			continue
		}
		for _, field := range fields {
			if strings.Contains(field, keyword) {
				partial += 0.3
				break
			}
		}
	}
	return min(1.0, partial*0.2)
}

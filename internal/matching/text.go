package matching

import "strings"

// minTokenLength filters out short tokens before any word-level
// comparison; two-letter words carry almost no matching signal.
const minTokenLength = 3

// stopWords are excluded from keyword comparison token sets.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"has": true, "have": true, "this": true, "that": true, "with": true,
	"from": true, "they": true, "been": true, "were": true, "their": true,
	"what": true, "when": true, "your": true, "will": true, "would": true,
	"there": true, "which": true, "about": true, "into": true, "more": true,
	"other": true, "some": true, "them": true, "then": true, "than": true,
	"these": true, "also": true, "each": true, "how": true, "its": true,
	"over": true, "such": true, "only": true, "very": true, "just": true,
	"too": true, "any": true, "may": true, "must": true, "should": true,
}

// tokenize splits text into lowercase alphanumeric tokens, dropping
// short tokens and stop words.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isAlphanumeric(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLength || stopWords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// tokenSet returns the deduplicated token set of text.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range tokenize(text) {
		set[token] = true
	}
	return set
}

// jaccard computes |a ∩ b| / |a ∪ b| over two token sets. Two empty
// sets have zero similarity.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for token := range a {
		if b[token] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// wordOverlapRatio returns the shared-word count between two phrases
// proportional to the larger phrase's word count.
func wordOverlapRatio(a, b string) float64 {
	aTokens := tokenize(a)
	bSet := tokenSet(b)
	if len(aTokens) == 0 || len(bSet) == 0 {
		return 0.0
	}

	shared := 0
	seen := make(map[string]bool, len(aTokens))
	for _, token := range aTokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		if bSet[token] {
			shared++
		}
	}

	larger := len(seen)
	if len(bSet) > larger {
		larger = len(bSet)
	}
	return float64(shared) / float64(larger)
}

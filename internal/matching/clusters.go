package matching

import "strings"

// categoryClusters groups related taxonomy categories. Two categories
// in the same cluster earn partial category credit even without an
// exact or substring match.
var categoryClusters = [][]string{
	{"automation", "efficiency", "productivity", "process", "workflow"},
	{"communication", "collaboration", "coordination", "alignment"},
	{"data", "analytics", "reporting", "insights", "visibility"},
	{"sales", "marketing", "growth", "outreach", "revenue"},
	{"quality", "compliance", "governance", "risk", "security"},
	{"onboarding", "training", "enablement", "knowledge"},
}

// industryClusters groups industries considered related for context
// relevance purposes.
var industryClusters = [][]string{
	{"tech", "it", "software", "saas", "technology"},
	{"healthcare", "medical", "pharma", "biotech", "life sciences"},
	{"finance", "banking", "insurance", "fintech", "accounting"},
	{"retail", "ecommerce", "e-commerce", "consumer goods"},
	{"manufacturing", "industrial", "logistics", "supply chain"},
	{"education", "edtech", "training"},
	{"legal", "professional services", "consulting"},
}

// Company-size language heuristics. A description using enterprise
// vocabulary suits large organizations; lightweight vocabulary suits
// small ones.
var (
	enterpriseKeywords = []string{
		"enterprise", "scalable", "compliance", "governance",
		"organization-wide", "large-scale", "audit",
	}
	simpleKeywords = []string{
		"simple", "quick", "lightweight", "easy", "minimal", "small team",
	}
)

func sameCluster(clusters [][]string, a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" || a == b {
		return false
	}
	for _, cluster := range clusters {
		foundA, foundB := false, false
		for _, member := range cluster {
			if member == a {
				foundA = true
			}
			if member == b {
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}

// relatedCategories reports whether two distinct categories fall in the
// same related-domain cluster.
func relatedCategories(a, b string) bool {
	return sameCluster(categoryClusters, a, b)
}

// relatedIndustries reports whether two distinct industries fall in the
// same industry cluster.
func relatedIndustries(a, b string) bool {
	return sameCluster(industryClusters, a, b)
}

func containsAnyKeyword(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Package picker holds the restaurant selection pipeline: classify the raw
// search results, pick one candidate and shape the response.
package picker

import (
	"strings"

	"food-picker/models"
)

const foodIconMarker = "/food/"

// Classifier decides whether a venue is a candidate. It is one of
// DefaultHeuristic or CuisineKeywords and is chosen once per request.
type Classifier interface {
	Matches(v models.Venue) bool
	Mode() string
	sealed()
}

// DefaultHeuristic matches venues with at least one category whose icon lives
// under the upstream "/food/" icon path.
type DefaultHeuristic struct{}

func (DefaultHeuristic) Matches(v models.Venue) bool {
	for _, c := range v.Categories {
		if strings.Contains(c.Icon.Prefix, foodIconMarker) {
			return true
		}
	}
	return false
}

func (DefaultHeuristic) Mode() string { return "default" }

func (DefaultHeuristic) sealed() {}

// CuisineKeywords matches venues whose joined category short names contain
// any keyword. It is applied to every raw result, food-tagged or not, so a
// keyword like "bar" still finds venues categorised only as bars.
type CuisineKeywords struct {
	Keywords []string
}

func (c CuisineKeywords) Matches(v models.Venue) bool {
	var names strings.Builder
	for _, cat := range v.Categories {
		names.WriteString(strings.ToLower(cat.ShortName))
	}
	haystack := names.String()
	for _, kw := range c.Keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func (CuisineKeywords) Mode() string { return "cuisine" }

func (CuisineKeywords) sealed() {}

// ParseCuisineFilter splits a comma-separated list into lower-cased, trimmed,
// de-duplicated keywords. Blank entries are dropped.
func ParseCuisineFilter(types string) []string {
	seen := make(map[string]struct{})
	var keywords []string
	for _, part := range strings.Split(types, ",") {
		kw := strings.ToLower(strings.TrimSpace(part))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}
	return keywords
}

// NewClassifier returns CuisineKeywords when types holds at least one
// keyword and DefaultHeuristic otherwise.
func NewClassifier(types string) Classifier {
	if keywords := ParseCuisineFilter(types); len(keywords) > 0 {
		return CuisineKeywords{Keywords: keywords}
	}
	return DefaultHeuristic{}
}

// Filter keeps the venues the classifier matches, preserving order.
func Filter(venues []models.Venue, c Classifier) []models.Venue {
	out := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if c.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

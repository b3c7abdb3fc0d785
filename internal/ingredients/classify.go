package ingredients

import (
	"regexp"
	"strings"
)

// Ingredient is a single parsed ingredient with its category classification.
// Flags are independent booleans; one token can match several categories
// ("celery powder" is both a whole food and a preservative proxy).
type Ingredient struct {
	Name string

	AddedSugar          bool
	IndustrialOil       bool
	AcceptableFat       bool
	Preservative        bool
	ArtificialFlavor    bool
	ArtificialColor     bool
	RefinedGrain        bool
	WholeFood           bool
	ArtificialSweetener bool
	Emulsifier          bool
}

// Flagged reports whether the ingredient matched any penalized category.
func (i Ingredient) Flagged() bool {
	return i.AddedSugar || i.IndustrialOil || i.Preservative ||
		i.ArtificialFlavor || i.ArtificialColor || i.RefinedGrain
}

// parenRe removes parenthesized sub-ingredient detail before splitting.
// Non-nested removal: nested parens collapse together.
var parenRe = regexp.MustCompile(`\([^)]*\)`)

// Parse splits a raw comma-delimited ingredient list into classified
// ingredients. Parenthesized substrings are stripped first, then the remainder
// is split on commas; empty pieces are dropped. Order follows the input and
// duplicates are kept. A blank input yields an empty, non-nil slice.
func Parse(raw string) []Ingredient {
	cleaned := parenRe.ReplaceAllString(raw, "")

	out := make([]Ingredient, 0, strings.Count(cleaned, ",")+1)
	for _, piece := range strings.Split(cleaned, ",") {
		name := strings.TrimSpace(piece)
		if name == "" {
			continue
		}
		out = append(out, Classify(name))
	}
	return out
}

// Classify tags one ingredient token against every category dictionary using
// lowercased substring containment.
func Classify(name string) Ingredient {
	lower := strings.ToLower(strings.TrimSpace(name))

	return Ingredient{
		Name:                name,
		AddedSugar:          addedSugars.matches(lower),
		IndustrialOil:       industrialOils.matches(lower),
		AcceptableFat:       acceptableFats.matches(lower),
		Preservative:        artificialPreservatives.matches(lower),
		ArtificialFlavor:    artificialFlavors.matches(lower),
		ArtificialColor:     artificialColors.matches(lower),
		RefinedGrain:        refinedGrains.matches(lower),
		WholeFood:           wholeFoods.matches(lower),
		ArtificialSweetener: artificialSweeteners.matches(lower),
		Emulsifier:          emulsifiersStabilizers.matches(lower),
	}
}

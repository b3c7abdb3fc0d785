package scoring

import (
	"fmt"
	"math"

	"github.com/realfood-labs/realfood-score/internal/ingredients"
)

// TierResult is one tier's scores. Flags are populated only for the Guideline
// tier so callers get a single flag list rather than three duplicates.
type TierResult struct {
	Total          float64
	Grade          string
	CountScore     float64
	FlaggedScore   float64
	WholeFoodScore float64
	Flags          []string
}

// CountScore scores the raw ingredient count; fewer ingredients score higher.
// Piecewise linear: 1-5 is excellent, 21+ is ultra-processed territory.
func CountScore(n int) float64 {
	switch {
	case n <= 5:
		return 100
	case n <= 10:
		return float64(100 - (n-5)*4) // 96, 92, 88, 84, 80
	case n <= 15:
		return float64(80 - (n-10)*4) // 76, 72, 68, 64, 60
	case n <= 20:
		return float64(60 - (n-15)*4) // 56, 52, 48, 44, 40
	default:
		return math.Max(0, float64(40-(n-20)*2))
	}
}

// FlaggedScore starts at 100 and subtracts the policy's penalty for each
// triggered category: first-plus-additional for the cumulative categories,
// flat for artificial flavor and refined grain. Clamped at 0. An empty
// ingredient list scores a clean 100 with no flags.
func FlaggedScore(ings []ingredients.Ingredient, p PenaltyPolicy) (float64, []string) {
	flags := []string{}
	if len(ings) == 0 {
		return 100, flags
	}

	var sugars, oils, preservatives, flavors, colors, grains int
	for _, i := range ings {
		if i.AddedSugar {
			sugars++
		}
		if i.IndustrialOil {
			oils++
		}
		if i.Preservative {
			preservatives++
		}
		if i.ArtificialFlavor {
			flavors++
		}
		if i.ArtificialColor {
			colors++
		}
		if i.RefinedGrain {
			grains++
		}
	}

	penalties := 0
	if sugars > 0 {
		penalties += p.AddedSugarFirst + (sugars-1)*p.AddedSugarAdditional
		flags = append(flags, fmt.Sprintf("Contains %d added sugar(s)", sugars))
	}
	if oils > 0 {
		penalties += p.IndustrialOilFirst + (oils-1)*p.IndustrialOilAdditional
		flags = append(flags, fmt.Sprintf("Contains %d industrial oil(s)", oils))
	}
	if preservatives > 0 {
		penalties += p.PreservativeFirst + (preservatives-1)*p.PreservativeAdditional
		flags = append(flags, fmt.Sprintf("Contains %d artificial preservative(s)", preservatives))
	}
	if flavors > 0 {
		penalties += p.ArtificialFlavor
		flags = append(flags, "Contains artificial flavors")
	}
	if colors > 0 {
		penalties += p.ArtificialColorFirst + (colors-1)*p.ArtificialColorAdditional
		flags = append(flags, fmt.Sprintf("Contains %d artificial color(s)", colors))
	}
	if grains > 0 {
		penalties += p.RefinedGrain
		flags = append(flags, "Contains refined grains")
	}

	return math.Max(0, float64(100-penalties)), flags
}

// WholeFoodScore is 100 times the fraction of ingredients that are whole foods
// or acceptable fats. An empty list scores 0, not 100; the asymmetry with
// FlaggedScore's empty-list case is intentional and callers depend on it.
func WholeFoodScore(ings []ingredients.Ingredient) float64 {
	if len(ings) == 0 {
		return 0
	}
	whole := 0
	for _, i := range ings {
		if i.WholeFood || i.AcceptableFat {
			whole++
		}
	}
	return float64(whole) / float64(len(ings)) * 100
}

// GradeFor converts a 0-100 score to a letter grade.
func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// ScoreTier runs the shared scoring algorithm for one penalty policy over an
// already-classified ingredient list.
func ScoreTier(ings []ingredients.Ingredient, p PenaltyPolicy, w Weights) TierResult {
	count := CountScore(len(ings))
	flagged, flags := FlaggedScore(ings, p)
	whole := WholeFoodScore(ings)

	total := count*w.IngredientCount +
		flagged*w.FlaggedIngredients +
		whole*w.WholeFoodRatio

	res := TierResult{
		Total:          total,
		Grade:          GradeFor(total),
		CountScore:     count,
		FlaggedScore:   flagged,
		WholeFoodScore: whole,
	}
	if p.Tier == TierGuideline {
		res.Flags = flags
	}
	return res
}

// Scorer scores products against all three penalty policies with one set of
// validated weights. Safe for concurrent use; it holds no mutable state.
type Scorer struct {
	weights Weights
}

// NewScorer rejects invalid weights up front.
func NewScorer(w Weights) (*Scorer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: w}, nil
}

// ScoreProduct classifies the raw ingredient string once, scores the three
// tiers from the same classified list, and assembles the report.
func (s *Scorer) ScoreProduct(name, rawIngredients string) Report {
	ings := ingredients.Parse(rawIngredients)

	guideline := ScoreTier(ings, Guideline, s.weights)
	priority := ScoreTier(ings, Priority, s.weights)
	practical := ScoreTier(ings, Practical, s.weights)

	analyzed := make([]IngredientAnalysis, 0, len(ings))
	for _, i := range ings {
		analyzed = append(analyzed, IngredientAnalysis{
			Name:      i.Name,
			WholeFood: i.WholeFood,
			Flagged:   i.Flagged(),
		})
	}

	return Report{
		Product:         name,
		IngredientCount: len(ings),
		Scores: TierScores{
			Priority:  newTierScore(priority, Priority),
			Guideline: newTierScore(guideline, Guideline),
			Practical: newTierScore(practical, Practical),
		},
		Score: round1(guideline.Total),
		Grade: guideline.Grade,
		Breakdown: Breakdown{
			IngredientSimplicity:      round1(guideline.CountScore),
			CleanIngredientsPriority:  round1(priority.FlaggedScore),
			CleanIngredientsGuideline: round1(guideline.FlaggedScore),
			CleanIngredientsPractical: round1(practical.FlaggedScore),
			WholeFoodRatio:            round1(guideline.WholeFoodScore),
		},
		Flags:           guideline.Flags,
		Recommendations: Recommendations(guideline.Flags, guideline.Grade),
		Ingredients:     analyzed,
	}
}

func newTierScore(r TierResult, p PenaltyPolicy) TierScore {
	return TierScore{
		Score:       round1(r.Total),
		Grade:       r.Grade,
		Label:       p.Label,
		Description: p.Description,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

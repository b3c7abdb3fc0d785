package scoring

// TierScore is one tier's externally-visible score.
type TierScore struct {
	Score       float64 `json:"score"`
	Grade       string  `json:"grade"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

// TierScores carries all three tiers. The priority tier keeps its legacy
// "rfk" JSON key for API compatibility.
type TierScores struct {
	Priority  TierScore `json:"rfk"`
	Guideline TierScore `json:"guideline"`
	Practical TierScore `json:"practical"`
}

// Breakdown exposes the rounded component scores. Simplicity and whole-food
// ratio are policy-independent, so only the Guideline values are reported.
type Breakdown struct {
	IngredientSimplicity      float64 `json:"ingredient_simplicity"`
	CleanIngredientsPriority  float64 `json:"clean_ingredients_rfk"`
	CleanIngredientsGuideline float64 `json:"clean_ingredients_guideline"`
	CleanIngredientsPractical float64 `json:"clean_ingredients_practical"`
	WholeFoodRatio            float64 `json:"whole_food_ratio"`
}

// IngredientAnalysis is the per-ingredient entry of the report, in input order.
type IngredientAnalysis struct {
	Name      string `json:"name"`
	WholeFood bool   `json:"whole_food"`
	Flagged   bool   `json:"flagged"`
}

// Report is the full scoring result returned to callers. The top-level
// score/grade mirror the Guideline tier for older consumers.
type Report struct {
	Product         string               `json:"product"`
	IngredientCount int                  `json:"ingredient_count"`
	Scores          TierScores           `json:"scores"`
	Score           float64              `json:"score"`
	Grade           string               `json:"grade"`
	Breakdown       Breakdown            `json:"breakdown"`
	Flags           []string             `json:"flags"`
	Recommendations []string             `json:"recommendations"`
	Ingredients     []IngredientAnalysis `json:"ingredients_analyzed"`
}

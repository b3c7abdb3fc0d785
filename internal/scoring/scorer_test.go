package scoring_test

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/realfood-labs/realfood-score/internal/ingredients"
	"github.com/realfood-labs/realfood-score/internal/scoring"
)

func mustScorer(t *testing.T) *scoring.Scorer {
	t.Helper()
	s, err := scoring.NewScorer(scoring.DefaultWeights())
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
	return s
}

func TestCountScore(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{0, 100}, {1, 100}, {5, 100},
		{6, 96}, {8, 88}, {10, 80},
		{11, 76}, {15, 60},
		{16, 56}, {20, 40},
		{25, 30}, {30, 20}, {40, 0}, {50, 0},
	}
	for _, tc := range cases {
		if got := scoring.CountScore(tc.n); got != tc.want {
			t.Errorf("CountScore(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestCountScoreMonotonic(t *testing.T) {
	prev := scoring.CountScore(0)
	for n := 1; n <= 60; n++ {
		got := scoring.CountScore(n)
		if got > prev {
			t.Fatalf("CountScore(%d) = %v > CountScore(%d) = %v", n, got, n-1, prev)
		}
		if got < 0 || got > 100 {
			t.Fatalf("CountScore(%d) = %v out of [0,100]", n, got)
		}
		prev = got
	}
}

func TestFlaggedScoreEmptyList(t *testing.T) {
	score, flags := scoring.FlaggedScore(nil, scoring.Guideline)
	if score != 100 {
		t.Fatalf("empty list flagged score = %v, want 100", score)
	}
	if len(flags) != 0 {
		t.Fatalf("empty list flags = %v, want none", flags)
	}
}

func TestFlaggedScoreCumulative(t *testing.T) {
	ings := ingredients.Parse("sugar, honey, hydrogenated vegetable oil")
	score, flags := scoring.FlaggedScore(ings, scoring.Guideline)
	// two sugars: 25 + 5; one oil: 20
	if score != 50 {
		t.Fatalf("flagged score = %v, want 50", score)
	}
	want := []string{"Contains 2 added sugar(s)", "Contains 1 industrial oil(s)"}
	if !reflect.DeepEqual(flags, want) {
		t.Fatalf("flags = %v, want %v", flags, want)
	}
}

func TestFlaggedScoreFlatCategories(t *testing.T) {
	// Two artificial flavors penalize once; refined grain penalizes once.
	ings := ingredients.Parse("artificial flavor, monosodium glutamate, enriched flour")
	score, flags := scoring.FlaggedScore(ings, scoring.Guideline)
	if score != 75 {
		t.Fatalf("flagged score = %v, want 75", score)
	}
	want := []string{"Contains artificial flavors", "Contains refined grains"}
	if !reflect.DeepEqual(flags, want) {
		t.Fatalf("flags = %v, want %v", flags, want)
	}
}

func TestFlaggedScoreClampsAtZero(t *testing.T) {
	ings := ingredients.Parse(
		"sugar, honey, molasses, dextrose, maltodextrin, vegetable oil, canola oil, " +
			"sodium benzoate, bha, tbhq, red 40, yellow 5, artificial flavor, enriched flour")
	for _, pol := range []scoring.PenaltyPolicy{scoring.Guideline, scoring.Priority, scoring.Practical} {
		score, _ := scoring.FlaggedScore(ings, pol)
		if pol.Tier == scoring.TierGuideline || pol.Tier == scoring.TierPriority {
			if score != 0 {
				t.Errorf("%s flagged score = %v, want 0", pol.Tier, score)
			}
		}
		if score < 0 {
			t.Errorf("%s flagged score = %v below zero", pol.Tier, score)
		}
	}
}

func TestFlaggedScoreNeverIncreasesWithNewFlag(t *testing.T) {
	base := ingredients.Parse("water")
	worse := ingredients.Parse("water, sugar")
	for _, pol := range []scoring.PenaltyPolicy{scoring.Guideline, scoring.Priority, scoring.Practical} {
		before, _ := scoring.FlaggedScore(base, pol)
		after, _ := scoring.FlaggedScore(worse, pol)
		if after > before {
			t.Errorf("%s: flagged score rose from %v to %v after adding a flagged ingredient",
				pol.Tier, before, after)
		}
	}
}

func TestWholeFoodScore(t *testing.T) {
	if got := scoring.WholeFoodScore(nil); got != 0 {
		t.Fatalf("empty list whole-food score = %v, want 0", got)
	}
	if got := scoring.WholeFoodScore(ingredients.Parse("eggs")); got != 100 {
		t.Fatalf("eggs whole-food score = %v, want 100", got)
	}
	if got := scoring.WholeFoodScore(ingredients.Parse("eggs, maltodextrin")); got != 50 {
		t.Fatalf("whole-food score = %v, want 50", got)
	}
	// Acceptable fats count toward the ratio even when not whole foods.
	if got := scoring.WholeFoodScore(ingredients.Parse("lard")); got != 100 {
		t.Fatalf("lard whole-food score = %v, want 100", got)
	}
}

func TestGradeFor(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "A"}, {90, "A"}, {89.9, "B"}, {80, "B"},
		{79.9, "C"}, {70, "C"}, {69.9, "D"}, {60, "D"},
		{59.9, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		if got := scoring.GradeFor(tc.score); got != tc.want {
			t.Errorf("GradeFor(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestScoreTierFlagsOnlyForGuideline(t *testing.T) {
	ings := ingredients.Parse("sugar, water")
	w := scoring.DefaultWeights()

	if res := scoring.ScoreTier(ings, scoring.Guideline, w); len(res.Flags) == 0 {
		t.Fatal("guideline tier should carry flags")
	}
	if res := scoring.ScoreTier(ings, scoring.Priority, w); len(res.Flags) != 0 {
		t.Fatalf("priority tier flags = %v, want none", res.Flags)
	}
	if res := scoring.ScoreTier(ings, scoring.Practical, w); len(res.Flags) != 0 {
		t.Fatalf("practical tier flags = %v, want none", res.Flags)
	}
}

func TestPriorityPenalizesColorsHarderThanGuideline(t *testing.T) {
	if scoring.Priority.ArtificialColorFirst <= scoring.Guideline.ArtificialColorFirst {
		t.Fatal("priority artificial color penalty should exceed guideline's")
	}
	ings := ingredients.Parse("red 40, water")
	g, _ := scoring.FlaggedScore(ings, scoring.Guideline)
	p, _ := scoring.FlaggedScore(ings, scoring.Priority)
	if p >= g {
		t.Fatalf("priority flagged score %v should be below guideline %v", p, g)
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := scoring.DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
	bad := scoring.Weights{IngredientCount: 0.5, FlaggedIngredients: 0.3, WholeFoodRatio: 0.1}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for weights summing to 0.9")
	}
	if _, err := scoring.NewScorer(bad); err == nil {
		t.Fatal("NewScorer should reject invalid weights")
	}
}

func TestLoadWeights(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "weights.yaml")
	if err := os.WriteFile(good, []byte("ingredient_count: 0.2\nflagged_ingredients: 0.6\nwhole_food_ratio: 0.2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := scoring.LoadWeights(good)
	if err != nil {
		t.Fatalf("LoadWeights: %v", err)
	}
	if w.FlaggedIngredients != 0.6 {
		t.Fatalf("loaded weights = %+v", w)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ingredient_count: 0.9\nflagged_ingredients: 0.9\nwhole_food_ratio: 0.9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := scoring.LoadWeights(bad); err == nil {
		t.Fatal("expected error for weights summing to 2.7")
	}

	if _, err := scoring.LoadWeights(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestScoreProductEmptyIngredients(t *testing.T) {
	rep := mustScorer(t).ScoreProduct("Empty", "")

	if rep.IngredientCount != 0 {
		t.Fatalf("ingredient count = %d, want 0", rep.IngredientCount)
	}
	if rep.Breakdown.IngredientSimplicity != 100 {
		t.Errorf("count score = %v, want 100", rep.Breakdown.IngredientSimplicity)
	}
	if rep.Breakdown.CleanIngredientsGuideline != 100 {
		t.Errorf("flagged score = %v, want 100", rep.Breakdown.CleanIngredientsGuideline)
	}
	// Deliberate asymmetry: no ingredients is a clean flagged score but a
	// zero whole-food ratio.
	if rep.Breakdown.WholeFoodRatio != 0 {
		t.Errorf("whole-food score = %v, want 0", rep.Breakdown.WholeFoodRatio)
	}
	if rep.Score != 75 {
		t.Errorf("total = %v, want 75 under default weights", rep.Score)
	}
	if rep.Flags == nil || len(rep.Flags) != 0 {
		t.Errorf("flags = %#v, want empty non-nil", rep.Flags)
	}
	if len(rep.Ingredients) != 0 {
		t.Errorf("ingredients analyzed = %v, want none", rep.Ingredients)
	}
}

func TestScoreProductEggs(t *testing.T) {
	rep := mustScorer(t).ScoreProduct("Fresh Eggs", "eggs")

	if rep.IngredientCount != 1 {
		t.Fatalf("ingredient count = %d, want 1", rep.IngredientCount)
	}
	if rep.Breakdown.WholeFoodRatio != 100 {
		t.Errorf("whole-food score = %v, want 100", rep.Breakdown.WholeFoodRatio)
	}
	if rep.Grade != "A" || rep.Score != 100 {
		t.Errorf("score/grade = %v/%s, want 100/A", rep.Score, rep.Grade)
	}
	if rep.Scores.Guideline.Grade != "A" || rep.Scores.Priority.Grade != "A" || rep.Scores.Practical.Grade != "A" {
		t.Errorf("tier grades = %+v, want all A", rep.Scores)
	}
}

func TestScoreProductPeanutButter(t *testing.T) {
	rep := mustScorer(t).ScoreProduct("Peanut Butter", "roasted peanuts, sugar, hydrogenated vegetable oils, salt")

	if rep.IngredientCount != 4 {
		t.Fatalf("ingredient count = %d, want 4", rep.IngredientCount)
	}
	want := []string{"Contains 1 added sugar(s)", "Contains 1 industrial oil(s)"}
	if !reflect.DeepEqual(rep.Flags, want) {
		t.Fatalf("flags = %v, want %v", rep.Flags, want)
	}
	// 0.25*100 + 0.5*55 + 0.25*50
	if rep.Score != 65 {
		t.Errorf("score = %v, want 65", rep.Score)
	}

	analyzed := rep.Ingredients
	if len(analyzed) != 4 {
		t.Fatalf("analyzed = %v", analyzed)
	}
	if !analyzed[0].WholeFood || analyzed[0].Flagged {
		t.Errorf("roasted peanuts analysis = %+v", analyzed[0])
	}
	if !analyzed[1].Flagged || analyzed[1].WholeFood {
		t.Errorf("sugar analysis = %+v", analyzed[1])
	}
}

func TestScoreProductMirrorsGuidelineTier(t *testing.T) {
	rep := mustScorer(t).ScoreProduct("Ketchup",
		"tomato concentrate, distilled vinegar, high fructose corn syrup, corn syrup, salt, spice, onion powder, natural flavoring")
	if rep.Score != rep.Scores.Guideline.Score || rep.Grade != rep.Scores.Guideline.Grade {
		t.Fatalf("legacy score/grade %v/%s do not mirror guideline tier %+v",
			rep.Score, rep.Grade, rep.Scores.Guideline)
	}
}

func TestScoreProductRounding(t *testing.T) {
	// 2 of 3 whole ingredients: ratio 66.666... rounds to 66.7.
	rep := mustScorer(t).ScoreProduct("Yogurt", "milk, cream, live active cultures")
	if got := rep.Breakdown.WholeFoodRatio; math.Abs(got-66.7) > 1e-9 {
		t.Fatalf("whole-food ratio = %v, want 66.7", got)
	}
	if rep.Score != 91.7 {
		t.Fatalf("score = %v, want 91.7", rep.Score)
	}
}

func TestRecommendationsFixedOrder(t *testing.T) {
	flags := []string{
		"Contains refined grains",
		"Contains 1 industrial oil(s)",
		"Contains 2 added sugar(s)",
	}
	got := scoring.Recommendations(flags, "D")
	want := []string{
		"Look for unsweetened alternatives",
		"Choose products with olive oil, butter, or avocado oil",
		"Choose whole grain versions when available",
		"Consider whole food alternatives to this product",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("recommendations = %v, want %v", got, want)
	}
}

func TestRecommendationsArtificialAndClean(t *testing.T) {
	got := scoring.Recommendations([]string{"Contains 2 artificial color(s)"}, "B")
	want := []string{"Seek products with simple, recognizable ingredients"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("recommendations = %v, want %v", got, want)
	}

	clean := scoring.Recommendations(nil, "A")
	if clean == nil || len(clean) != 0 {
		t.Fatalf("clean recommendations = %#v, want empty non-nil", clean)
	}
}

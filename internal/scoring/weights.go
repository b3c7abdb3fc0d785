package scoring

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights control how the three component scores combine into a tier total.
// The three fractions must sum to 1.0 or the total can leave [0,100]; a bad
// sum is a configuration error rejected at construction, not at call time.
type Weights struct {
	IngredientCount    float64 `yaml:"ingredient_count"`
	FlaggedIngredients float64 `yaml:"flagged_ingredients"`
	WholeFoodRatio     float64 `yaml:"whole_food_ratio"`
}

// DefaultWeights returns the standard split: flagged ingredients carry half the
// score, simplicity and whole-food ratio a quarter each.
func DefaultWeights() Weights {
	return Weights{
		IngredientCount:    0.25,
		FlaggedIngredients: 0.50,
		WholeFoodRatio:     0.25,
	}
}

const weightSumTolerance = 1e-9

// Validate checks the sum-to-1.0 invariant.
func (w Weights) Validate() error {
	sum := w.IngredientCount + w.FlaggedIngredients + w.WholeFoodRatio
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("score weights must sum to 1.0, got %g", sum)
	}
	return nil
}

// LoadWeights reads a YAML weights file:
//
//	ingredient_count: 0.25
//	flagged_ingredients: 0.50
//	whole_food_ratio: 0.25
//
// The loaded weights are validated before being returned.
func LoadWeights(path string) (Weights, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("read weights file: %w", err)
	}
	var w Weights
	if err := yaml.Unmarshal(b, &w); err != nil {
		return Weights{}, fmt.Errorf("parse weights file: %w", err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

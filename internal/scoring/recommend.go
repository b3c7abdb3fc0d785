package scoring

import "strings"

// Recommendations maps Guideline-tier flags to actionable advice. The output
// order follows this fixed category check order, not flag insertion order,
// and a D or F grade appends the generic whole-food suggestion.
func Recommendations(flags []string, grade string) []string {
	recs := []string{}

	if anyFlagContains(flags, "added sugar") {
		recs = append(recs, "Look for unsweetened alternatives")
	}
	if anyFlagContains(flags, "industrial oil") {
		recs = append(recs, "Choose products with olive oil, butter, or avocado oil")
	}
	if anyFlagContains(flags, "artificial") {
		recs = append(recs, "Seek products with simple, recognizable ingredients")
	}
	if anyFlagContains(flags, "refined grain") {
		recs = append(recs, "Choose whole grain versions when available")
	}
	if grade == "D" || grade == "F" {
		recs = append(recs, "Consider whole food alternatives to this product")
	}

	return recs
}

func anyFlagContains(flags []string, substr string) bool {
	for _, f := range flags {
		if strings.Contains(strings.ToLower(f), substr) {
			return true
		}
	}
	return false
}

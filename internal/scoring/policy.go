package scoring

// Tier identifies one of the three independently-parameterized scoring passes.
type Tier string

const (
	TierGuideline Tier = "guideline"
	TierPriority  Tier = "priority" // serialized under the legacy "rfk" key
	TierPractical Tier = "practical"
)

// PenaltyPolicy holds the per-category penalty magnitudes for one tier.
// Added sugar, industrial oil, preservative and artificial color accumulate
// (first occurrence plus a smaller amount per additional occurrence);
// artificial flavor and refined grain are flat penalties applied once.
// Only these numbers vary between tiers; the scoring algorithm is shared.
type PenaltyPolicy struct {
	Tier        Tier
	Label       string
	Description string

	AddedSugarFirst           int
	AddedSugarAdditional      int
	IndustrialOilFirst        int
	IndustrialOilAdditional   int
	PreservativeFirst         int
	PreservativeAdditional    int
	ArtificialFlavor          int
	ArtificialColorFirst      int
	ArtificialColorAdditional int
	RefinedGrain              int
}

// Guideline is the strict reading of the published dietary guidelines.
var Guideline = PenaltyPolicy{
	Tier:        TierGuideline,
	Label:       "Official Standard",
	Description: "Strict alignment with realfood.gov text",

	AddedSugarFirst:           25,
	AddedSugarAdditional:      5,
	IndustrialOilFirst:        20,
	IndustrialOilAdditional:   5,
	PreservativeFirst:         15,
	PreservativeAdditional:    5,
	ArtificialFlavor:          15,
	ArtificialColorFirst:      15,
	ArtificialColorAdditional: 3,
	RefinedGrain:              10,
}

// Priority weights the categories by stated political priority: dyes highest,
// seed oils close behind, refined grains lowest.
var Priority = PenaltyPolicy{
	Tier:        TierPriority,
	Label:       "MAHA Score",
	Description: "Based on RFK Jr.'s stated priorities (dyes, seed oils, additives)",

	AddedSugarFirst:           20,
	AddedSugarAdditional:      4,
	IndustrialOilFirst:        30,
	IndustrialOilAdditional:   8,
	PreservativeFirst:         18,
	PreservativeAdditional:    5,
	ArtificialFlavor:          20,
	ArtificialColorFirst:      35,
	ArtificialColorAdditional: 8,
	RefinedGrain:              8,
}

// Practical uses reduced penalties for consumer-friendly "better choice" framing.
var Practical = PenaltyPolicy{
	Tier:        TierPractical,
	Label:       "Better Choice",
	Description: "Compared to typical alternatives",

	AddedSugarFirst:           12,
	AddedSugarAdditional:      3,
	IndustrialOilFirst:        10,
	IndustrialOilAdditional:   3,
	PreservativeFirst:         8,
	PreservativeAdditional:    3,
	ArtificialFlavor:          10,
	ArtificialColorFirst:      15,
	ArtificialColorAdditional: 3,
	RefinedGrain:              5,
}

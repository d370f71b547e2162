package model

import "fmt"

// LuckScale distinguishes decade from year luck pillars.
type LuckScale string

// Luck pillar scales.
const (
	ScaleDaeun LuckScale = "DAEUN" // decade
	ScaleSaeun LuckScale = "SAEUN" // calendar year
)

// LuckPillar is a luck pillar overlaid on the natal chart.
type LuckPillar struct {
	Pillar Pillar    `json:"pillar"`
	Scale  LuckScale `json:"scale"`
	// Order is the decade index for Daeun pillars.
	Order int `json:"order,omitempty"`
	// Year is the calendar year for Saeun pillars.
	Year int `json:"year,omitempty"`
}

func (lp LuckPillar) String() string {
	if lp.Scale == ScaleDaeun {
		return fmt.Sprintf("%s (daeun %d)", lp.Pillar, lp.Order)
	}
	return fmt.Sprintf("%s (%d)", lp.Pillar, lp.Year)
}

// LuckVerdict is the quality classification of a luck pillar.
type LuckVerdict string

// Verdicts from best to worst.
const (
	VerdictVeryFavorable   LuckVerdict = "VERY_FAVORABLE"
	VerdictFavorable       LuckVerdict = "FAVORABLE"
	VerdictMixed           LuckVerdict = "MIXED"
	VerdictUnfavorable     LuckVerdict = "UNFAVORABLE"
	VerdictVeryUnfavorable LuckVerdict = "VERY_UNFAVORABLE"
)

// LuckPillarAnalysis scores one luck pillar against the natal chart and the
// resolved useful/avoided elements.
type LuckPillarAnalysis struct {
	Pillar LuckPillar `json:"pillar"`
	// TenGod is the luck stem's ten god relative to the day master.
	TenGod TenGod `json:"ten_god"`
	// LifeStage is the luck branch's stage relative to the day master.
	LifeStage LifeStage `json:"life_stage"`

	MatchesYongshin bool `json:"matches_yongshin"`
	MatchesGisin    bool `json:"matches_gisin"`

	StemRelations   []StemRelation   `json:"stem_relations,omitempty"`
	BranchRelations []BranchRelation `json:"branch_relations,omitempty"`

	Score   float64     `json:"score"`
	Verdict LuckVerdict `json:"verdict"`
}

package model

// ResultKind keys one section of an assembled analysis.
type ResultKind string

// The fixed enumeration of result kinds.
const (
	KindStrength            ResultKind = "strength"
	KindYongshin            ResultKind = "yongshin"
	KindGyeokguk            ResultKind = "gyeokguk"
	KindHapTransformations  ResultKind = "hap_transformations"
	KindLifeStages          ResultKind = "life_stages"
	KindVoidBranches        ResultKind = "void_branches"
	KindShinsalHits         ResultKind = "shinsal_hits"
	KindWeightedShinsalHits ResultKind = "weighted_shinsal_hits"
	KindShinsalComposites   ResultKind = "shinsal_composites"
	KindPalaceAnalysis      ResultKind = "palace_analysis"
	KindLuckInfo            ResultKind = "luck_info"
	KindRelations           ResultKind = "relations"
	KindElementDistribution ResultKind = "element_distribution"
	KindComputationTrace    ResultKind = "computation_trace"
	KindTenGodSummary       ResultKind = "ten_god_summary"
)

// AllResultKinds lists every section of an assembled analysis.
var AllResultKinds = []ResultKind{
	KindStrength, KindYongshin, KindGyeokguk, KindHapTransformations,
	KindLifeStages, KindVoidBranches, KindShinsalHits,
	KindWeightedShinsalHits, KindShinsalComposites, KindPalaceAnalysis,
	KindLuckInfo, KindRelations, KindElementDistribution,
	KindComputationTrace, KindTenGodSummary,
}

// PalaceAnalysis summarizes one chart position (palace) for narrative
// consumers.
type PalaceAnalysis struct {
	Position Position `json:"position"`
	// Meaning is the palace's classical domain (ancestry, parents, self,
	// children).
	Meaning string `json:"meaning"`
	// PrincipalTenGod is the ten god of the branch's principal hidden stem.
	PrincipalTenGod TenGod    `json:"principal_ten_god"`
	LifeStage       LifeStage `json:"life_stage"`
	ShinsalCount    int       `json:"shinsal_count"`
	RelationCount   int       `json:"relation_count"`
	// Favorable reports whether the branch element helps the resolved
	// yongshin.
	Favorable bool `json:"favorable"`
}

// TenGodSummary condenses the ten-god tally for report consumers.
type TenGodSummary struct {
	Scores      TenGodScore             `json:"scores"`
	ClassTotals map[TenGodClass]float64 `json:"class_totals"`
	Dominant    TenGod                  `json:"dominant"`
}

// Analysis is the single assembled result of a full chart analysis, keyed by
// the fixed result-kind enumeration via Get.
type Analysis struct {
	Pillars PillarSet `json:"pillars"`

	Strength            StrengthResult         `json:"strength"`
	Yongshin            YongshinResult         `json:"yongshin"`
	Gyeokguk            GyeokgukResult         `json:"gyeokguk"`
	HapTransformations  []HapTransformation    `json:"hap_transformations"`
	LifeStages          map[Position]LifeStage `json:"life_stages"`
	VoidBranches        [2]Branch              `json:"void_branches"`
	ShinsalHits         []ShinsalHit           `json:"shinsal_hits"`
	WeightedShinsalHits []WeightedShinsalHit   `json:"weighted_shinsal_hits"`
	ShinsalComposites   []ShinsalComposite     `json:"shinsal_composites"`
	PalaceAnalysis      []PalaceAnalysis       `json:"palace_analysis"`
	LuckInfo            []LuckPillarAnalysis   `json:"luck_info"`
	Relations           RelationSet            `json:"relations"`
	ElementDistribution ElementScore           `json:"element_distribution"`
	ComputationTrace    []string               `json:"computation_trace"`
	TenGodSummary       TenGodSummary          `json:"ten_god_summary"`
}

// Get returns the section for a result kind. Unknown kinds return nil.
func (a *Analysis) Get(kind ResultKind) any {
	switch kind {
	case KindStrength:
		return a.Strength
	case KindYongshin:
		return a.Yongshin
	case KindGyeokguk:
		return a.Gyeokguk
	case KindHapTransformations:
		return a.HapTransformations
	case KindLifeStages:
		return a.LifeStages
	case KindVoidBranches:
		return a.VoidBranches
	case KindShinsalHits:
		return a.ShinsalHits
	case KindWeightedShinsalHits:
		return a.WeightedShinsalHits
	case KindShinsalComposites:
		return a.ShinsalComposites
	case KindPalaceAnalysis:
		return a.PalaceAnalysis
	case KindLuckInfo:
		return a.LuckInfo
	case KindRelations:
		return a.Relations
	case KindElementDistribution:
		return a.ElementDistribution
	case KindComputationTrace:
		return a.ComputationTrace
	case KindTenGodSummary:
		return a.TenGodSummary
	}
	return nil
}

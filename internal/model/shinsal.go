package model

// ShinsalType is a special-star marker detected at a chart position.
type ShinsalType string

// The detected star types.
const (
	ShinsalYeokma        ShinsalType = "YEOKMA"         // travel star
	ShinsalDohwa         ShinsalType = "DOHWA"          // peach blossom
	ShinsalHwagae        ShinsalType = "HWAGAE"         // canopy star
	ShinsalCheoneulGwiin ShinsalType = "CHEONEUL_GWIIN" // nobleman
	ShinsalYangin        ShinsalType = "YANGIN"         // blade star
	ShinsalBaekho        ShinsalType = "BAEKHO"         // white tiger
	ShinsalGoegang       ShinsalType = "GOEGANG"        // commanding star
	ShinsalWonjin        ShinsalType = "WONJIN"         // resentment pair
	ShinsalGwimun        ShinsalType = "GWIMUN"         // ghost gate pair
)

// AllShinsalTypes lists every known star type; the weight catalog must cover
// all of them.
var AllShinsalTypes = []ShinsalType{
	ShinsalYeokma, ShinsalDohwa, ShinsalHwagae, ShinsalCheoneulGwiin,
	ShinsalYangin, ShinsalBaekho, ShinsalGoegang, ShinsalWonjin,
	ShinsalGwimun,
}

// ShinsalHit is one detected star at one chart position.
type ShinsalHit struct {
	Type     ShinsalType `json:"type"`
	Position Position    `json:"position"`
}

// WeightedShinsalHit attaches the scoring terms to a hit.
type WeightedShinsalHit struct {
	Hit                ShinsalHit `json:"hit"`
	BaseWeight         int        `json:"base_weight"`
	PositionMultiplier float64    `json:"position_multiplier"`
	// WeightedScore is base × multiplier rounded to the nearest integer.
	WeightedScore int `json:"weighted_score"`
}

// ShinsalComposite groups two related hit sets under a named interaction
// pattern.
type ShinsalComposite struct {
	Name       string       `json:"name"`
	FirstType  ShinsalType  `json:"first_type"`
	SecondType ShinsalType  `json:"second_type"`
	FirstHits  []ShinsalHit `json:"first_hits"`
	SecondHits []ShinsalHit `json:"second_hits"`
	// Score is the rule's base bonus plus the same-pillar proximity bonus.
	Score      int  `json:"score"`
	SamePillar bool `json:"same_pillar"`
}

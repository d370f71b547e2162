package model

// YongshinStrategy identifies how a useful-element recommendation was
// produced.
type YongshinStrategy string

// Resolution strategies.
const (
	StrategyEokbu    YongshinStrategy = "EOKBU"    // balance-based
	StrategyJohu     YongshinStrategy = "JOHU"     // season-based
	StrategyTonggwan YongshinStrategy = "TONGGWAN" // channel between clashing forces
	// Structural-pattern strategies, applied as gyeokguk overrides.
	StrategyHapwha   YongshinStrategy = "HAPWHA_YONGSHIN"
	StrategyIlhaeng  YongshinStrategy = "ILHAENG_YONGSHIN"
	StrategyJeonwang YongshinStrategy = "JEONWANG"
)

// YongshinPriority selects the fallback winner when the balance and climate
// strategies disagree outright.
type YongshinPriority string

// Fallback priorities.
const (
	JohuFirst   YongshinPriority = "JOHU_FIRST"
	EokbuFirst  YongshinPriority = "EOKBU_FIRST"
	EqualWeight YongshinPriority = "EQUAL_WEIGHT"
)

// AgreementTier reports how well the independent strategies agreed.
type AgreementTier string

// Agreement tiers.
const (
	FullAgree    AgreementTier = "FULL_AGREE"
	PartialAgree AgreementTier = "PARTIAL_AGREE"
	Disagree     AgreementTier = "DISAGREE"
)

// YongshinRecommendation is one strategy's proposed useful element.
type YongshinRecommendation struct {
	Strategy  YongshinStrategy `json:"strategy"`
	Primary   Element          `json:"primary"`
	Secondary *Element         `json:"secondary,omitempty"`
	// Confidence is in [0,1].
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason,omitempty"`
}

// YongshinResult is the reconciled useful element and its derived
// complementary elements.
type YongshinResult struct {
	// Yongshin is the resolved useful element.
	Yongshin Element `json:"yongshin"`
	// Heeshin is the secondary helper element.
	Heeshin Element `json:"heeshin"`
	// Gisin is the element to avoid: the one controlling the yongshin.
	Gisin Element `json:"gisin"`
	// Gusin is the element generating the gisin.
	Gusin Element `json:"gusin"`

	Strategy   YongshinStrategy `json:"strategy"`
	Agreement  AgreementTier    `json:"agreement"`
	Confidence float64          `json:"confidence"`
	Reason     string           `json:"reason,omitempty"`

	// Candidates are the strategy recommendations that fed the resolution.
	Candidates []YongshinRecommendation `json:"candidates,omitempty"`
}

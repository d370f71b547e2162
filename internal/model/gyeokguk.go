package model

// GyeokgukType is the chart's structural pattern.
type GyeokgukType string

// Regular (naegyeok) patterns, named after the month-branch principal
// ten god, plus the two peer special cases.
const (
	GyeokGeonrok   GyeokgukType = "GEONROK"
	GyeokYangin    GyeokgukType = "YANGIN"
	GyeokSiksin    GyeokgukType = "SIKSIN"
	GyeokSanggwan  GyeokgukType = "SANGGWAN"
	GyeokPyeonjae  GyeokgukType = "PYEONJAE"
	GyeokJeongjae  GyeokgukType = "JEONGJAE"
	GyeokPyeongwan GyeokgukType = "PYEONGWAN"
	GyeokJeonggwan GyeokgukType = "JEONGGWAN"
	GyeokPyeonin   GyeokgukType = "PYEONIN"
	GyeokJeongin   GyeokgukType = "JEONGIN"
)

// Special (oegyeok) patterns.
const (
	GyeokHwagyeok  GyeokgukType = "HWAGYEOK"  // transformation via day-stem hap
	GyeokJonggyeok GyeokgukType = "JONGGYEOK" // follow pattern at an extreme
	GyeokIlhaeng   GyeokgukType = "ILHAENG"   // one-element dominance
)

// GyeokgukCategory is the broader pattern family.
type GyeokgukCategory string

// Pattern categories.
const (
	CategoryNaegyeok GyeokgukCategory = "NAEGYEOK"
	CategoryOegyeok  GyeokgukCategory = "OEGYEOK"
)

// GyeokgukResult is the structural classification of a chart.
type GyeokgukResult struct {
	Type       GyeokgukType     `json:"type"`
	Category   GyeokgukCategory `json:"category"`
	Confidence float64          `json:"confidence"`
	Reasoning  string           `json:"reasoning,omitempty"`
	// Element carries the pattern's governing element for the special
	// patterns (the hap result or the dominant element).
	Element *Element `json:"element,omitempty"`
}

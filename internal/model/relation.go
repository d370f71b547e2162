package model

// StemRelationType classifies a relation between two visible stems.
type StemRelationType string

// Stem relation types. Hap sorts before Chung in output.
const (
	StemHap   StemRelationType = "HAP"
	StemChung StemRelationType = "CHUNG"
)

// StemRelation is a combination or clash between two stems. Members are
// stored as a sorted pair so the relation is order-independent.
type StemRelation struct {
	Type StemRelationType `json:"type"`
	// First and Second are the member stems, First < Second.
	First  Stem `json:"first"`
	Second Stem `json:"second"`
	// ResultElement is the classical combined element; only set for HAP.
	ResultElement *Element `json:"result_element,omitempty"`
	// Positions are the chart positions carrying the members, in chart order.
	Positions []Position `json:"positions,omitempty"`
}

// BranchRelationType classifies a relation between two branches.
type BranchRelationType string

// Branch relation types, in output rank order.
const (
	BranchYukhap BranchRelationType = "YUKHAP"
	BranchChung  BranchRelationType = "CHUNG"
	BranchHyeong BranchRelationType = "HYEONG"
	BranchPa     BranchRelationType = "PA"
	BranchHae    BranchRelationType = "HAE"
)

// BranchRelation is a relation between two branches, members sorted.
type BranchRelation struct {
	Type BranchRelationType `json:"type"`
	// First and Second are the member branches, First < Second.
	First  Branch `json:"first"`
	Second Branch `json:"second"`
	// ResultElement is the combined element; only set for YUKHAP.
	ResultElement *Element   `json:"result_element,omitempty"`
	Positions     []Position `json:"positions,omitempty"`
}

// HapTransformation records whether a stem combination actually transforms
// into its result element given the month's seasonal support.
type HapTransformation struct {
	Relation    StemRelation `json:"relation"`
	Element     Element      `json:"element"`
	Transformed bool         `json:"transformed"`
	// Degree is the strength of the transformation in [0,1].
	Degree float64 `json:"degree"`
	Reason string  `json:"reason,omitempty"`
}

// RelationSet bundles every detected relation of a chart.
type RelationSet struct {
	StemRelations   []StemRelation   `json:"stem_relations"`
	BranchRelations []BranchRelation `json:"branch_relations"`
}

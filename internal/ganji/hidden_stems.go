// Package ganji provides the static catalogs of the sexagenary cycle: hidden
// stems, life stages, and void branches. Catalogs are validated once at load
// and shared read-only afterwards.
package ganji

import (
	"fmt"

	"github.com/haesol/sajukit/internal/common"
	"github.com/haesol/sajukit/internal/model"
)

// HiddenStemRole is the classical role of a concealed stem within a branch.
type HiddenStemRole string

// Roles in catalog order: the residual stem of the previous season first,
// the principal stem last.
const (
	RoleResidual HiddenStemRole = "RESIDUAL"
	RoleMiddle   HiddenStemRole = "MIDDLE"
	RoleMain     HiddenStemRole = "MAIN"
)

// WeightScheme selects how hidden-stem day counts convert to weights.
type WeightScheme string

// Supported weighting schemes.
const (
	// SchemeStandard weights each hidden stem by its classical day count
	// over the branch total; weights sum to 1 per branch.
	SchemeStandard WeightScheme = "standard"
	// SchemeEqual splits the weight evenly across the branch's hidden stems.
	SchemeEqual WeightScheme = "equal"
)

// HiddenStem is one concealed stem with its role and classical day count.
type HiddenStem struct {
	Stem     model.Stem
	Role     HiddenStemRole
	DayCount int
}

// WeightedHiddenStem is a hidden stem with its normalized weight under a
// scheme.
type WeightedHiddenStem struct {
	Stem   model.Stem
	Role   HiddenStemRole
	Weight float64
}

// hiddenStemCatalog holds the classical 30-day composition per branch.
// Entries run residual → middle → main.
var hiddenStemCatalog = map[model.Branch][]HiddenStem{
	0:  {{Stem: 8, Role: RoleResidual, DayCount: 10}, {Stem: 9, Role: RoleMain, DayCount: 20}},
	1:  {{Stem: 9, Role: RoleResidual, DayCount: 9}, {Stem: 7, Role: RoleMiddle, DayCount: 3}, {Stem: 5, Role: RoleMain, DayCount: 18}},
	2:  {{Stem: 4, Role: RoleResidual, DayCount: 7}, {Stem: 2, Role: RoleMiddle, DayCount: 7}, {Stem: 0, Role: RoleMain, DayCount: 16}},
	3:  {{Stem: 0, Role: RoleResidual, DayCount: 10}, {Stem: 1, Role: RoleMain, DayCount: 20}},
	4:  {{Stem: 1, Role: RoleResidual, DayCount: 9}, {Stem: 9, Role: RoleMiddle, DayCount: 3}, {Stem: 4, Role: RoleMain, DayCount: 18}},
	5:  {{Stem: 4, Role: RoleResidual, DayCount: 7}, {Stem: 6, Role: RoleMiddle, DayCount: 7}, {Stem: 2, Role: RoleMain, DayCount: 16}},
	6:  {{Stem: 2, Role: RoleResidual, DayCount: 10}, {Stem: 5, Role: RoleMiddle, DayCount: 9}, {Stem: 3, Role: RoleMain, DayCount: 11}},
	7:  {{Stem: 3, Role: RoleResidual, DayCount: 9}, {Stem: 1, Role: RoleMiddle, DayCount: 3}, {Stem: 5, Role: RoleMain, DayCount: 18}},
	8:  {{Stem: 4, Role: RoleResidual, DayCount: 7}, {Stem: 8, Role: RoleMiddle, DayCount: 7}, {Stem: 6, Role: RoleMain, DayCount: 16}},
	9:  {{Stem: 6, Role: RoleResidual, DayCount: 10}, {Stem: 7, Role: RoleMain, DayCount: 20}},
	10: {{Stem: 7, Role: RoleResidual, DayCount: 9}, {Stem: 3, Role: RoleMiddle, DayCount: 3}, {Stem: 4, Role: RoleMain, DayCount: 18}},
	11: {{Stem: 4, Role: RoleResidual, DayCount: 7}, {Stem: 0, Role: RoleMiddle, DayCount: 7}, {Stem: 8, Role: RoleMain, DayCount: 16}},
}

// HiddenStemTable resolves each branch's concealed stems under a weighting
// scheme. Construct it once with NewHiddenStemTable and share by reference.
type HiddenStemTable struct {
	catalog map[model.Branch][]HiddenStem
}

// NewHiddenStemTable validates the built-in catalog and returns the table.
// A missing or malformed branch entry is a fatal load error.
func NewHiddenStemTable() (*HiddenStemTable, error) {
	for b := 0; b < 12; b++ {
		entries, ok := hiddenStemCatalog[model.Branch(b)]
		if !ok {
			return nil, fmt.Errorf("hidden stem catalog: missing branch %s: %w", model.Branch(b), common.ErrCatalogIncomplete)
		}
		if len(entries) < 1 || len(entries) > 3 {
			return nil, fmt.Errorf("hidden stem catalog: branch %s has %d entries, want 1-3", model.Branch(b), len(entries))
		}
		for _, e := range entries {
			if e.DayCount <= 0 {
				return nil, fmt.Errorf("hidden stem catalog: branch %s stem %s has non-positive day count", model.Branch(b), e.Stem)
			}
		}
		if entries[len(entries)-1].Role != RoleMain {
			return nil, fmt.Errorf("hidden stem catalog: branch %s last entry is not MAIN", model.Branch(b))
		}
	}
	return &HiddenStemTable{catalog: hiddenStemCatalog}, nil
}

// MustNewHiddenStemTable is NewHiddenStemTable for static initialization
// paths that treat a broken catalog as unrecoverable.
func MustNewHiddenStemTable() *HiddenStemTable {
	t, err := NewHiddenStemTable()
	if err != nil {
		panic(err)
	}
	return t
}

// Entries returns the raw catalog entries for a branch.
func (t *HiddenStemTable) Entries(b model.Branch) []HiddenStem {
	return t.catalog[model.NormalizeBranch(int(b))]
}

// Weighted returns the branch's hidden stems with normalized weights under
// the given scheme.
func (t *HiddenStemTable) Weighted(b model.Branch, scheme WeightScheme) []WeightedHiddenStem {
	entries := t.Entries(b)
	out := make([]WeightedHiddenStem, 0, len(entries))
	switch scheme {
	case SchemeEqual:
		w := 1.0 / float64(len(entries))
		for _, e := range entries {
			out = append(out, WeightedHiddenStem{Stem: e.Stem, Role: e.Role, Weight: w})
		}
	default:
		var total int
		for _, e := range entries {
			total += e.DayCount
		}
		for _, e := range entries {
			out = append(out, WeightedHiddenStem{Stem: e.Stem, Role: e.Role, Weight: float64(e.DayCount) / float64(total)})
		}
	}
	return out
}

// Principal returns the branch's main hidden stem.
func (t *HiddenStemTable) Principal(b model.Branch) model.Stem {
	entries := t.Entries(b)
	return entries[len(entries)-1].Stem
}

// GoverningAt returns the hidden stem governing the given elapsed day count
// since the solar-term boundary, walking the residual/middle/main spans in
// order. Elapsed days beyond the branch total clamp to the main stem.
func (t *HiddenStemTable) GoverningAt(b model.Branch, daysSinceJeol int) HiddenStem {
	entries := t.Entries(b)
	if daysSinceJeol < 0 {
		daysSinceJeol = 0
	}
	elapsed := daysSinceJeol
	for _, e := range entries {
		if elapsed < e.DayCount {
			return e
		}
		elapsed -= e.DayCount
	}
	return entries[len(entries)-1]
}

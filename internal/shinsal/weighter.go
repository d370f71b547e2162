package shinsal

import (
	"fmt"
	"sort"

	"github.com/haesol/sajukit/internal/common"
	"github.com/haesol/sajukit/internal/model"
)

// positionMultipliers scale a star's base weight by where it was found,
// in integer percent. The day pillar carries full weight.
var positionMultipliers = map[model.Position]int{
	model.PositionDay:   100,
	model.PositionMonth: 85,
	model.PositionYear:  70,
	model.PositionHour:  60,
}

// Weighter scores detected hits from a required-complete base-weight table.
type Weighter struct {
	baseWeights map[model.ShinsalType]int
}

// NewWeighter validates the base-weight table. A missing entry for any
// known star type is a load-time error: it indicates a corrupted catalog,
// so it is surfaced immediately rather than deferred to first use.
func NewWeighter(baseWeights map[model.ShinsalType]int) (*Weighter, error) {
	for _, t := range model.AllShinsalTypes {
		if _, ok := baseWeights[t]; !ok {
			return nil, fmt.Errorf("shinsal base weight table: missing entry for %s: %w", t, common.ErrCatalogIncomplete)
		}
	}
	return &Weighter{baseWeights: baseWeights}, nil
}

// Weigh multiplies each hit's base weight by its position multiplier,
// rounds to the nearest integer, and sorts descending by weighted score.
// Ties break by type then chart position for stable output.
func (w *Weighter) Weigh(hits []model.ShinsalHit) []model.WeightedShinsalHit {
	out := make([]model.WeightedShinsalHit, 0, len(hits))
	for _, h := range hits {
		base := w.baseWeights[h.Type]
		pct := positionMultipliers[h.Position]
		out = append(out, model.WeightedShinsalHit{
			Hit:                h,
			BaseWeight:         base,
			PositionMultiplier: float64(pct) / 100,
			WeightedScore:      (base*pct + 50) / 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WeightedScore != out[j].WeightedScore {
			return out[i].WeightedScore > out[j].WeightedScore
		}
		if shinsalTypeRank[out[i].Hit.Type] != shinsalTypeRank[out[j].Hit.Type] {
			return shinsalTypeRank[out[i].Hit.Type] < shinsalTypeRank[out[j].Hit.Type]
		}
		return positionRank[out[i].Hit.Position] < positionRank[out[j].Hit.Position]
	})
	return out
}

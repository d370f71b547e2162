package shinsal

import "github.com/haesol/sajukit/internal/model"

// compositeRule pairs two star types under a named interaction pattern.
type compositeRule struct {
	name      string
	first     model.ShinsalType
	second    model.ShinsalType
	baseBonus int
}

// proximityBonus is added when hits of both types share a pillar position.
const proximityBonus = 5

// compositeCatalog lists the recognized pairwise interactions.
var compositeCatalog = []compositeRule{
	{name: "도화역마", first: model.ShinsalYeokma, second: model.ShinsalDohwa, baseBonus: 12},
	{name: "양인괴강", first: model.ShinsalYangin, second: model.ShinsalGoegang, baseBonus: 15},
	{name: "백호괴강", first: model.ShinsalBaekho, second: model.ShinsalGoegang, baseBonus: 12},
	{name: "양인백호", first: model.ShinsalYangin, second: model.ShinsalBaekho, baseBonus: 10},
	{name: "원진귀문", first: model.ShinsalWonjin, second: model.ShinsalGwimun, baseBonus: 8},
}

// CompositeInterpreter detects pairwise composite interactions between
// detected hits.
type CompositeInterpreter struct {
	catalog []compositeRule
}

// NewCompositeInterpreter returns an interpreter over the built-in catalog.
func NewCompositeInterpreter() *CompositeInterpreter {
	return &CompositeInterpreter{catalog: compositeCatalog}
}

// Detect emits a composite for every catalog rule whose two star types both
// appear among the hits. Fewer than two total hits can never interact, so
// detection does not run at all.
func (ci *CompositeInterpreter) Detect(hits []model.ShinsalHit) []model.ShinsalComposite {
	if len(hits) < 2 {
		return nil
	}

	byType := make(map[model.ShinsalType][]model.ShinsalHit)
	for _, h := range hits {
		byType[h.Type] = append(byType[h.Type], h)
	}

	var out []model.ShinsalComposite
	for _, rule := range ci.catalog {
		firstHits := byType[rule.first]
		secondHits := byType[rule.second]
		if len(firstHits) == 0 || len(secondHits) == 0 {
			continue
		}

		samePillar := false
		for _, a := range firstHits {
			for _, b := range secondHits {
				if a.Position == b.Position {
					samePillar = true
				}
			}
		}

		score := rule.baseBonus
		if samePillar {
			score += proximityBonus
		}
		out = append(out, model.ShinsalComposite{
			Name:       rule.name,
			FirstType:  rule.first,
			SecondType: rule.second,
			FirstHits:  firstHits,
			SecondHits: secondHits,
			Score:      score,
			SamePillar: samePillar,
		})
	}
	return out
}

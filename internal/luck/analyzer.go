// Package luck scores decade and year luck pillars against the natal chart
// and the resolved useful/avoided elements.
package luck

import (
	"sort"

	"github.com/haesol/sajukit/internal/config"
	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/model"
	"github.com/haesol/sajukit/internal/relation"
)

// Context is the natal material a luck pillar is scored against.
type Context struct {
	Pillars  model.PillarSet
	Yongshin model.YongshinResult
}

// Analyzer scores luck pillars.
type Analyzer struct {
	cfg config.LuckConfig
}

// NewAnalyzer creates an analyzer with the given scoring terms.
func NewAnalyzer(cfg config.LuckConfig) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze scores a single luck pillar against the natal chart.
func (a *Analyzer) Analyze(ctx Context, lp model.LuckPillar) model.LuckPillarAnalysis {
	stemRels, branchRels := a.relationsAgainst(ctx.Pillars, lp.Pillar)
	return a.build(ctx, lp, stemRels, branchRels)
}

// AnalyzeSaeun scores a year pillar. When the decade pillar currently in
// effect is supplied, the year's relation hits are the union of its natal
// hits and its hits against that decade pillar, and the verdict reflects
// the merged set.
func (a *Analyzer) AnalyzeSaeun(ctx Context, saeun model.LuckPillar, daeun *model.LuckPillar) model.LuckPillarAnalysis {
	stemRels, branchRels := a.relationsAgainst(ctx.Pillars, saeun.Pillar)
	if daeun != nil {
		extraStem := relation.StemRelationsBetween(saeun.Pillar.Stem, daeun.Pillar.Stem)
		extraBranch := relation.BranchRelationsBetween(saeun.Pillar.Branch, daeun.Pillar.Branch)
		stemRels = mergeStemRelations(stemRels, extraStem)
		branchRels = mergeBranchRelations(branchRels, extraBranch)
	}
	return a.build(ctx, saeun, stemRels, branchRels)
}

func (a *Analyzer) build(ctx Context, lp model.LuckPillar, stemRels []model.StemRelation, branchRels []model.BranchRelation) model.LuckPillarAnalysis {
	dayMaster := ctx.Pillars.DayMaster()
	p := lp.Pillar

	matchesYongshin := p.Stem.Element() == ctx.Yongshin.Yongshin || p.Branch.Element() == ctx.Yongshin.Yongshin
	matchesGisin := p.Stem.Element() == ctx.Yongshin.Gisin || p.Branch.Element() == ctx.Yongshin.Gisin

	score := 0.0
	if matchesYongshin {
		score += a.cfg.YongshinBonus
	}
	if matchesGisin {
		score -= a.cfg.GisinPenalty
	}
	for _, r := range stemRels {
		switch r.Type {
		case model.StemHap:
			score += a.cfg.HapBonus
		case model.StemChung:
			score -= a.cfg.ChungPenalty
		}
	}
	for _, r := range branchRels {
		switch r.Type {
		case model.BranchYukhap:
			score += a.cfg.HapBonus
		case model.BranchChung:
			score -= a.cfg.ChungPenalty
		default:
			score -= a.cfg.MinorPenalty
		}
	}

	return model.LuckPillarAnalysis{
		Pillar:          lp,
		TenGod:          model.TenGodOf(dayMaster, p.Stem),
		LifeStage:       ganji.LifeStageOf(dayMaster, p.Branch),
		MatchesYongshin: matchesYongshin,
		MatchesGisin:    matchesGisin,
		StemRelations:   stemRels,
		BranchRelations: branchRels,
		Score:           score,
		Verdict:         verdict(score),
	}
}

// verdict brackets the aggregate score into the quality scale.
func verdict(score float64) model.LuckVerdict {
	switch {
	case score >= 2.5:
		return model.VerdictVeryFavorable
	case score >= 1:
		return model.VerdictFavorable
	case score > -1:
		return model.VerdictMixed
	case score > -2.5:
		return model.VerdictUnfavorable
	default:
		return model.VerdictVeryUnfavorable
	}
}

// relationsAgainst finds the luck pillar's relations against all four natal
// pillars, deduplicated and sorted in detector order.
func (a *Analyzer) relationsAgainst(ps model.PillarSet, p model.Pillar) ([]model.StemRelation, []model.BranchRelation) {
	var stemRels []model.StemRelation
	var branchRels []model.BranchRelation
	for _, pos := range model.AllPositions {
		natal := ps.Pillar(pos)
		for _, r := range relation.StemRelationsBetween(p.Stem, natal.Stem) {
			r.Positions = []model.Position{pos}
			stemRels = mergeStemRelations(stemRels, []model.StemRelation{r})
		}
		for _, r := range relation.BranchRelationsBetween(p.Branch, natal.Branch) {
			r.Positions = []model.Position{pos}
			branchRels = mergeBranchRelations(branchRels, []model.BranchRelation{r})
		}
	}
	return stemRels, branchRels
}

func mergeStemRelations(existing, add []model.StemRelation) []model.StemRelation {
	for _, r := range add {
		dup := false
		for i := range existing {
			if existing[i].Type == r.Type && existing[i].First == r.First && existing[i].Second == r.Second {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, r)
		}
	}
	sort.Slice(existing, func(i, j int) bool {
		if existing[i].Type != existing[j].Type {
			return existing[i].Type == model.StemHap
		}
		if existing[i].First != existing[j].First {
			return existing[i].First < existing[j].First
		}
		return existing[i].Second < existing[j].Second
	})
	return existing
}

var branchRankOrder = map[model.BranchRelationType]int{
	model.BranchYukhap: 0,
	model.BranchChung:  1,
	model.BranchHyeong: 2,
	model.BranchPa:     3,
	model.BranchHae:    4,
}

func mergeBranchRelations(existing, add []model.BranchRelation) []model.BranchRelation {
	for _, r := range add {
		dup := false
		for i := range existing {
			if existing[i].Type == r.Type && existing[i].First == r.First && existing[i].Second == r.Second {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, r)
		}
	}
	sort.Slice(existing, func(i, j int) bool {
		if branchRankOrder[existing[i].Type] != branchRankOrder[existing[j].Type] {
			return branchRankOrder[existing[i].Type] < branchRankOrder[existing[j].Type]
		}
		if existing[i].First != existing[j].First {
			return existing[i].First < existing[j].First
		}
		return existing[i].Second < existing[j].Second
	})
	return existing
}

// Package engine runs the full analysis pipeline and assembles the results
// into one canonical analysis object.
package engine

import (
	"fmt"

	"github.com/haesol/sajukit/internal/config"
	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/gyeokguk"
	"github.com/haesol/sajukit/internal/luck"
	"github.com/haesol/sajukit/internal/model"
	"github.com/haesol/sajukit/internal/relation"
	"github.com/haesol/sajukit/internal/scoring"
	"github.com/haesol/sajukit/internal/shinsal"
	"github.com/haesol/sajukit/internal/strength"
	"github.com/haesol/sajukit/internal/yongshin"
)

// Request is one analysis invocation.
type Request struct {
	Pillars model.PillarSet
	// DaysSinceJeol is the elapsed days since the last solar-term boundary,
	// produced by the external calendar resolver; nil when unknown.
	DaysSinceJeol *int
	// PriorHaps supplies hap-transformation evaluations computed upstream.
	// When nil the engine evaluates them itself.
	PriorHaps []model.HapTransformation
	// Daeun is the decade pillar currently in effect, if any.
	Daeun *model.LuckPillar
	// Saeuns are year pillars to score; each reflects the Daeun when set.
	Saeuns []model.LuckPillar
}

// Engine is the assembled pipeline for one configuration. It is pure and
// safe for concurrent use: all catalogs are read-only after construction.
type Engine struct {
	cfg        config.Config
	table      *ganji.HiddenStemTable
	aggregator *scoring.Aggregator
	strength   *strength.Analyzer
	gyeokguk   *gyeokguk.Classifier
	resolver   *yongshin.Resolver
	weighter   *shinsal.Weighter
	composites *shinsal.CompositeInterpreter
	luck       *luck.Analyzer
}

// New validates the configuration and static catalogs and builds the
// pipeline. Catalog gaps surface here, not at first use.
func New(cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	table, err := ganji.NewHiddenStemTable()
	if err != nil {
		return nil, fmt.Errorf("engine catalogs: %w", err)
	}
	weighter, err := shinsal.NewWeighter(cfg.Shinsal.BaseWeights)
	if err != nil {
		return nil, fmt.Errorf("engine catalogs: %w", err)
	}
	return &Engine{
		cfg:        cfg,
		table:      table,
		aggregator: scoring.NewAggregator(table),
		strength:   strength.NewAnalyzer(table, cfg.Strength),
		gyeokguk:   gyeokguk.NewClassifier(table, cfg.Gyeokguk),
		resolver:   yongshin.NewResolver(cfg.Yongshin),
		weighter:   weighter,
		composites: shinsal.NewCompositeInterpreter(),
		luck:       luck.NewAnalyzer(cfg.Luck),
	}, nil
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Analyze runs the pipeline and assembles the canonical analysis object.
func (e *Engine) Analyze(req Request) *model.Analysis {
	ps := req.Pillars.Normalize()
	dayMaster := ps.DayMaster()
	var trace []string

	scores := e.aggregator.Aggregate(ps, scoring.Options{
		StemWeight:           e.cfg.StemWeight,
		BranchWeight:         e.cfg.BranchWeight,
		IncludeBranchYinYang: e.cfg.IncludeBranchYinYang,
		Scheme:               e.cfg.HiddenStemScheme,
	})

	stemRels := relation.DetectStemRelations(ps)
	branchRels := relation.DetectBranchRelations(ps)

	haps := req.PriorHaps
	if haps == nil {
		haps = relation.EvaluateHapTransformations(ps, e.table)
	}

	strengthResult := e.strength.Analyze(strength.Input{
		Pillars:        ps,
		Scheme:         e.cfg.HiddenStemScheme,
		DaysSinceJeol:  req.DaysSinceJeol,
		HapEvaluations: haps,
	}, &trace)

	gyeokResult := e.gyeokguk.Classify(gyeokguk.Input{
		Pillars:  ps,
		Strength: strengthResult,
		Haps:     haps,
		Elements: scores.Elements,
		TenGods:  scores.TenGods,
	})

	eokbu := yongshin.Eokbu(dayMaster, strengthResult, scores.Elements)
	johu := yongshin.Johu(dayMaster, ps.Month.Branch)
	tonggwan := yongshin.Tonggwan(scores.Elements, e.cfg.Yongshin.TonggwanShare)
	yongshinResult := e.resolver.Resolve(eokbu, johu, tonggwan, gyeokResult)

	hits := shinsal.Detect(ps)
	weighted := e.weighter.Weigh(hits)
	composites := e.composites.Detect(hits)

	lifeStages := make(map[model.Position]model.LifeStage, 4)
	for _, pos := range model.AllPositions {
		lifeStages[pos] = ganji.LifeStageOf(dayMaster, ps.Pillar(pos).Branch)
	}

	analysis := &model.Analysis{
		Pillars:             ps,
		Strength:            strengthResult,
		Yongshin:            yongshinResult,
		Gyeokguk:            gyeokResult,
		HapTransformations:  haps,
		LifeStages:          lifeStages,
		VoidBranches:        ganji.VoidBranches(ps.Day),
		ShinsalHits:         hits,
		WeightedShinsalHits: weighted,
		ShinsalComposites:   composites,
		PalaceAnalysis:      e.palaces(ps, dayMaster, lifeStages, hits, stemRels, branchRels, yongshinResult),
		Relations:           model.RelationSet{StemRelations: stemRels, BranchRelations: branchRels},
		ElementDistribution: scores.Elements,
		TenGodSummary: model.TenGodSummary{
			Scores:      scores.TenGods,
			ClassTotals: scores.TenGods.ClassTotals(),
			Dominant:    scores.TenGods.Dominant(),
		},
	}

	analysis.LuckInfo = e.luckInfo(ps, yongshinResult, req)
	analysis.ComputationTrace = trace
	return analysis
}

// palaceMeanings are the classical domains of the four palaces.
var palaceMeanings = map[model.Position]string{
	model.PositionYear:  "ancestry",
	model.PositionMonth: "parents and social standing",
	model.PositionDay:   "self and spouse",
	model.PositionHour:  "children and late life",
}

func (e *Engine) palaces(
	ps model.PillarSet,
	dayMaster model.Stem,
	lifeStages map[model.Position]model.LifeStage,
	hits []model.ShinsalHit,
	stemRels []model.StemRelation,
	branchRels []model.BranchRelation,
	yres model.YongshinResult,
) []model.PalaceAnalysis {
	out := make([]model.PalaceAnalysis, 0, 4)
	for _, pos := range model.AllPositions {
		pillar := ps.Pillar(pos)

		shinsalCount := 0
		for _, h := range hits {
			if h.Position == pos {
				shinsalCount++
			}
		}
		relationCount := 0
		for _, r := range stemRels {
			for _, p := range r.Positions {
				if p == pos {
					relationCount++
				}
			}
		}
		for _, r := range branchRels {
			for _, p := range r.Positions {
				if p == pos {
					relationCount++
				}
			}
		}

		branchElement := pillar.Branch.Element()
		out = append(out, model.PalaceAnalysis{
			Position:        pos,
			Meaning:         palaceMeanings[pos],
			PrincipalTenGod: model.TenGodOf(dayMaster, e.table.Principal(pillar.Branch)),
			LifeStage:       lifeStages[pos],
			ShinsalCount:    shinsalCount,
			RelationCount:   relationCount,
			Favorable:       branchElement == yres.Yongshin || branchElement == yres.Heeshin,
		})
	}
	return out
}

func (e *Engine) luckInfo(ps model.PillarSet, yres model.YongshinResult, req Request) []model.LuckPillarAnalysis {
	ctx := luck.Context{Pillars: ps, Yongshin: yres}
	var out []model.LuckPillarAnalysis
	if req.Daeun != nil {
		out = append(out, e.luck.Analyze(ctx, *req.Daeun))
	}
	for _, saeun := range req.Saeuns {
		out = append(out, e.luck.AnalyzeSaeun(ctx, saeun, req.Daeun))
	}
	return out
}

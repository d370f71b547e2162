// Package strength classifies day-master strength from three weighted
// support scores against configured thresholds.
package strength

import (
	"fmt"

	"github.com/haesol/sajukit/internal/config"
	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/model"
)

// Input carries the chart and the optional refinements the analyzer
// understands.
type Input struct {
	Pillars model.PillarSet
	Scheme  ganji.WeightScheme
	// DaysSinceJeol is the elapsed days since the last solar-term boundary;
	// nil when unresolved. Only consulted in proportional mode.
	DaysSinceJeol *int
	// HapEvaluations reduce the numeric support of stems that have combined
	// away into another element.
	HapEvaluations []model.HapTransformation
}

// Analyzer scores and classifies day-master strength.
type Analyzer struct {
	table *ganji.HiddenStemTable
	cfg   config.StrengthConfig
}

// NewAnalyzer creates an analyzer over a hidden-stem table.
func NewAnalyzer(table *ganji.HiddenStemTable, cfg config.StrengthConfig) *Analyzer {
	return &Analyzer{table: table, cfg: cfg}
}

// levelBrackets classify (totalSupport − threshold) into the fixed ordered
// scale. Brackets are checked top down; the level, not the raw score, is
// the source of truth for strong/weak.
var levelBrackets = []struct {
	minDiff float64
	level   model.StrengthLevel
}{
	{25, model.ExtremeStrong},
	{12, model.VeryStrong},
	{4, model.MildStrong},
	{-4, model.Neutral},
	{-12, model.MildWeak},
	{-25, model.VeryWeak},
}

func classify(diff float64) model.StrengthLevel {
	for _, b := range levelBrackets {
		if diff >= b.minDiff {
			return b.level
		}
	}
	return model.ExtremeWeak
}

// Analyze computes the three support scores and the classified level.
// Trace lines describing each contributing term are appended to trace when
// it is non-nil; they never affect the numeric result.
func (a *Analyzer) Analyze(in Input, trace *[]string) model.StrengthResult {
	ps := in.Pillars.Normalize()
	dayMaster := ps.DayMaster()

	deukryeong := a.deukryeong(ps, in, dayMaster, trace)
	deukji := a.deukji(ps, in.Scheme, dayMaster, trace)
	deukse := a.deukse(ps, in.HapEvaluations, dayMaster, trace)

	totalSupport := deukryeong + deukji + deukse
	maxSupport := a.maxSupport()
	totalOppose := maxSupport - totalSupport
	if totalOppose < 0 {
		totalOppose = 0
	}

	level := classify(totalSupport - a.cfg.Threshold)
	emit(trace, "판정: 총득점 %.1f / 기준 %.1f → %s(%s)", totalSupport, a.cfg.Threshold, level.Korean(), level)

	return model.StrengthResult{
		Level:        level,
		Deukryeong:   deukryeong,
		Deukji:       deukji,
		Deukse:       deukse,
		TotalSupport: totalSupport,
		TotalOppose:  totalOppose,
	}
}

// supportive reports whether an element backs the day master: the same
// element or the one generating it.
func supportive(e model.Element, dayMaster model.Stem) bool {
	dm := dayMaster.Element()
	return e == dm || e.Generates() == dm
}

func (a *Analyzer) deukryeong(ps model.PillarSet, in Input, dayMaster model.Stem, trace *[]string) float64 {
	month := ps.Month.Branch

	if a.cfg.ProportionalDeukryeong && in.DaysSinceJeol != nil {
		governing := a.table.GoverningAt(month, *in.DaysSinceJeol)
		if supportive(governing.Stem.Element(), dayMaster) {
			emit(trace, "득령: 절입 %d일 사령 %s 생조 → %.1f", *in.DaysSinceJeol, governing.Stem.Hanja(), a.cfg.DeukryeongMax)
			return a.cfg.DeukryeongMax
		}
		emit(trace, "득령: 절입 %d일 사령 %s 생조 아님 → 0.0", *in.DaysSinceJeol, governing.Stem.Hanja())
		return 0
	}

	var ratio float64
	for _, hidden := range a.table.Weighted(month, in.Scheme) {
		if supportive(hidden.Stem.Element(), dayMaster) {
			ratio += hidden.Weight
		}
	}
	score := ratio * a.cfg.DeukryeongMax
	if score > a.cfg.DeukryeongMax {
		score = a.cfg.DeukryeongMax
	}
	emit(trace, "득령: 월지 %s 지장간 생조 비율 %.2f → %.1f", month.Hanja(), ratio, score)
	return score
}

func (a *Analyzer) deukji(ps model.PillarSet, scheme ganji.WeightScheme, dayMaster model.Stem, trace *[]string) float64 {
	var total float64
	for _, pos := range []model.Position{model.PositionYear, model.PositionDay, model.PositionHour} {
		limit := a.cfg.DeukjiCaps[pos]
		branch := ps.Pillar(pos).Branch
		var ratio float64
		for _, hidden := range a.table.Weighted(branch, scheme) {
			if supportive(hidden.Stem.Element(), dayMaster) {
				ratio += hidden.Weight
			}
		}
		score := ratio * limit
		emit(trace, "득지: %s주 %s 비율 %.2f → %.1f", pos, branch.Hanja(), ratio, score)
		total += score
	}
	return total
}

func (a *Analyzer) deukse(ps model.PillarSet, haps []model.HapTransformation, dayMaster model.Stem, trace *[]string) float64 {
	var total float64
	for _, pos := range []model.Position{model.PositionYear, model.PositionMonth, model.PositionHour} {
		stem := ps.Pillar(pos).Stem
		class := model.TenGodOf(dayMaster, stem).Class()
		if class != model.ClassPeer && class != model.ClassResource {
			continue
		}
		w := a.cfg.DeukseStemWeight
		if combinedAway(stem, dayMaster, haps) {
			w *= a.cfg.CombinedAwayFactor
			emit(trace, "득세: %s주 %s %s 합거 감산 → %.1f", pos, stem.Hanja(), class, w)
		} else {
			emit(trace, "득세: %s주 %s %s → %.1f", pos, stem.Hanja(), class, w)
		}
		total += w
	}
	return total
}

// combinedAway reports whether a stem has transformed into an element that
// no longer supports the day master.
func combinedAway(stem, dayMaster model.Stem, haps []model.HapTransformation) bool {
	s := model.NormalizeStem(int(stem))
	for _, h := range haps {
		if !h.Transformed {
			continue
		}
		if h.Relation.First != s && h.Relation.Second != s {
			continue
		}
		if !supportive(h.Element, dayMaster) {
			return true
		}
	}
	return false
}

func (a *Analyzer) maxSupport() float64 {
	max := a.cfg.DeukryeongMax
	for _, limit := range a.cfg.DeukjiCaps {
		max += limit
	}
	max += 3 * a.cfg.DeukseStemWeight
	return max
}

func emit(trace *[]string, format string, args ...any) {
	if trace == nil {
		return
	}
	*trace = append(*trace, fmt.Sprintf(format, args...))
}

// Package gyeokguk determines the chart's structural pattern from the
// dominant relations and ten-god distribution.
package gyeokguk

import (
	"fmt"

	"github.com/haesol/sajukit/internal/config"
	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/model"
)

// Input bundles the upstream results the classifier reads.
type Input struct {
	Pillars  model.PillarSet
	Strength model.StrengthResult
	Haps     []model.HapTransformation
	Elements model.ElementScore
	TenGods  model.TenGodScore
}

// Classifier determines the chart's structural pattern.
type Classifier struct {
	table *ganji.HiddenStemTable
	cfg   config.GyeokgukConfig
}

// NewClassifier creates a classifier over a hidden-stem table.
func NewClassifier(table *ganji.HiddenStemTable, cfg config.GyeokgukConfig) *Classifier {
	return &Classifier{table: table, cfg: cfg}
}

// naegyeokByTenGod maps the month principal's ten god to the regular
// pattern. The two peer gods take the classical special names.
var naegyeokByTenGod = map[model.TenGod]model.GyeokgukType{
	model.BiGyeon:   model.GyeokGeonrok,
	model.GeopJae:   model.GyeokYangin,
	model.SikSin:    model.GyeokSiksin,
	model.SangGwan:  model.GyeokSanggwan,
	model.PyeonJae:  model.GyeokPyeonjae,
	model.JeongJae:  model.GyeokJeongjae,
	model.PyeonGwan: model.GyeokPyeongwan,
	model.JeongGwan: model.GyeokJeonggwan,
	model.PyeonIn:   model.GyeokPyeonin,
	model.JeongIn:   model.GyeokJeongin,
}

// Classify determines the pattern. Special patterns take precedence in a
// fixed order: transformation, one-element dominance, then the follow
// patterns at the strength extremes; otherwise the month principal's ten
// god names a regular pattern.
func (c *Classifier) Classify(in Input) model.GyeokgukResult {
	ps := in.Pillars.Normalize()
	dayMaster := ps.DayMaster()

	if result, ok := c.hwagyeok(ps, dayMaster, in.Haps); ok {
		return result
	}
	if result, ok := c.ilhaeng(in.Elements); ok {
		return result
	}
	if result, ok := c.jonggyeok(in, dayMaster); ok {
		return result
	}
	return c.naegyeok(ps, dayMaster, in.TenGods)
}

func (c *Classifier) hwagyeok(ps model.PillarSet, dayMaster model.Stem, haps []model.HapTransformation) (model.GyeokgukResult, bool) {
	for _, h := range haps {
		if !h.Transformed {
			continue
		}
		if h.Relation.First != dayMaster && h.Relation.Second != dayMaster {
			continue
		}
		el := h.Element
		return model.GyeokgukResult{
			Type:       model.GyeokHwagyeok,
			Category:   model.CategoryOegyeok,
			Confidence: 0.8,
			Element:    &el,
			Reasoning:  fmt.Sprintf("day master %s transformed into %s via combination", dayMaster.Hanja(), el),
		}, true
	}
	return model.GyeokgukResult{}, false
}

func (c *Classifier) ilhaeng(elements model.ElementScore) (model.GyeokgukResult, bool) {
	dominant := elements.Dominant()
	share := elements.Share(dominant)
	if share < c.cfg.IlhaengShare {
		return model.GyeokgukResult{}, false
	}
	el := dominant
	return model.GyeokgukResult{
		Type:       model.GyeokIlhaeng,
		Category:   model.CategoryOegyeok,
		Confidence: 0.75,
		Element:    &el,
		Reasoning:  fmt.Sprintf("%s holds %.0f%% of the chart", dominant, share*100),
	}, true
}

func (c *Classifier) jonggyeok(in Input, dayMaster model.Stem) (model.GyeokgukResult, bool) {
	switch in.Strength.Level {
	case model.ExtremeStrong:
		el := dayMaster.Element()
		return model.GyeokgukResult{
			Type:       model.GyeokJonggyeok,
			Category:   model.CategoryOegyeok,
			Confidence: 0.75,
			Element:    &el,
			Reasoning:  "extreme strength: the chart follows its own force (종왕)",
		}, true
	case model.ExtremeWeak:
		el := in.Elements.Dominant()
		return model.GyeokgukResult{
			Type:       model.GyeokJonggyeok,
			Category:   model.CategoryOegyeok,
			Confidence: 0.75,
			Element:    &el,
			Reasoning:  fmt.Sprintf("extreme weakness: the chart follows the dominant %s (종격)", el),
		}, true
	}
	return model.GyeokgukResult{}, false
}

func (c *Classifier) naegyeok(ps model.PillarSet, dayMaster model.Stem, tenGods model.TenGodScore) model.GyeokgukResult {
	principal := c.table.Principal(ps.Month.Branch)
	god := model.TenGodOf(dayMaster, principal)
	confidence := 0.7
	if tenGods.Dominant() == god {
		confidence += 0.1
	}
	return model.GyeokgukResult{
		Type:       naegyeokByTenGod[god],
		Category:   model.CategoryNaegyeok,
		Confidence: confidence,
		Reasoning:  fmt.Sprintf("month principal %s is %s of the day master", principal.Hanja(), god.Korean()),
	}
}

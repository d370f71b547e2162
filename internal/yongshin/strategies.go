// Package yongshin reconciles the independent useful-element
// recommendations into one final result, honoring structural-pattern
// overrides and the configured fallback priority.
package yongshin

import (
	"fmt"

	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/model"
)

// Eokbu produces the balance-based recommendation: a strong day master is
// opposed, a weak one supported. Confidence grows with distance from the
// neutral level.
func Eokbu(dayMaster model.Stem, strength model.StrengthResult, elements model.ElementScore) model.YongshinRecommendation {
	dm := dayMaster.Element()
	distance := absLevelDistance(strength.Level)
	confidence := 0.6 + 0.05*float64(distance)
	if confidence > 0.85 {
		confidence = 0.85
	}

	var primary, secondary model.Element
	var reason string
	switch {
	case strength.Level.IsStrong():
		primary = dm.ControlledBy()
		secondary = dm.Generates()
		reason = fmt.Sprintf("strong day master: restrain with %s, drain with %s", primary, secondary)
	case strength.Level == model.Neutral:
		dominant := elements.Dominant()
		primary = dominant.ControlledBy()
		secondary = dominant.Generates()
		confidence = 0.5
		reason = fmt.Sprintf("balanced chart: check the dominant %s", dominant)
	default:
		primary = dm.GeneratedBy()
		secondary = dm
		reason = fmt.Sprintf("weak day master: support with %s and %s", primary, secondary)
	}

	sec := secondary
	return model.YongshinRecommendation{
		Strategy:   model.StrategyEokbu,
		Primary:    primary,
		Secondary:  &sec,
		Confidence: confidence,
		Reason:     reason,
	}
}

func absLevelDistance(level model.StrengthLevel) int {
	d := int(level) - int(model.Neutral)
	if d < 0 {
		d = -d
	}
	return d
}

// johuEntry is one climate-catalog row.
type johuEntry struct {
	primary    model.Element
	secondary  model.Element
	confidence float64
}

// johuCatalog is the Day-Master element × season climate table. Extreme
// seasons carry higher confidence: climate compensation matters most in
// deep summer and winter.
var johuCatalog = map[model.Element]map[ganji.Season]johuEntry{
	model.Wood: {
		ganji.SeasonSpring: {model.Fire, model.Metal, 0.7},
		ganji.SeasonSummer: {model.Water, model.Metal, 0.8},
		ganji.SeasonAutumn: {model.Fire, model.Water, 0.7},
		ganji.SeasonWinter: {model.Fire, model.Earth, 0.8},
	},
	model.Fire: {
		ganji.SeasonSpring: {model.Water, model.Metal, 0.7},
		ganji.SeasonSummer: {model.Water, model.Metal, 0.8},
		ganji.SeasonAutumn: {model.Wood, model.Fire, 0.7},
		ganji.SeasonWinter: {model.Wood, model.Fire, 0.8},
	},
	model.Earth: {
		ganji.SeasonSpring: {model.Fire, model.Wood, 0.7},
		ganji.SeasonSummer: {model.Water, model.Metal, 0.8},
		ganji.SeasonAutumn: {model.Fire, model.Water, 0.7},
		ganji.SeasonWinter: {model.Fire, model.Wood, 0.8},
	},
	model.Metal: {
		ganji.SeasonSpring: {model.Fire, model.Wood, 0.7},
		ganji.SeasonSummer: {model.Water, model.Earth, 0.8},
		ganji.SeasonAutumn: {model.Fire, model.Water, 0.7},
		ganji.SeasonWinter: {model.Fire, model.Earth, 0.8},
	},
	model.Water: {
		ganji.SeasonSpring: {model.Metal, model.Earth, 0.7},
		ganji.SeasonSummer: {model.Metal, model.Water, 0.8},
		ganji.SeasonAutumn: {model.Earth, model.Fire, 0.7},
		ganji.SeasonWinter: {model.Fire, model.Earth, 0.8},
	},
}

// Johu produces the season-based recommendation from the climate catalog.
func Johu(dayMaster model.Stem, month model.Branch) model.YongshinRecommendation {
	season := ganji.SeasonOf(month)
	entry := johuCatalog[dayMaster.Element()][season]
	sec := entry.secondary
	return model.YongshinRecommendation{
		Strategy:   model.StrategyJohu,
		Primary:    entry.primary,
		Secondary:  &sec,
		Confidence: entry.confidence,
		Reason:     fmt.Sprintf("%s day master in %s needs %s", dayMaster.Element(), season, entry.primary),
	}
}

// Tonggwan produces the channel recommendation when two opposing elements
// both dominate the chart: the element generated by the controller mediates
// the clash. Returns nil when no such standoff exists.
func Tonggwan(elements model.ElementScore, minShare float64) *model.YongshinRecommendation {
	first := elements.Dominant()
	second := elements.SecondDominant()
	if elements.Share(first) < minShare || elements.Share(second) < minShare {
		return nil
	}

	var controller, controlled model.Element
	switch {
	case first.Controls() == second:
		controller, controlled = first, second
	case second.Controls() == first:
		controller, controlled = second, first
	default:
		return nil
	}

	mediator := controller.Generates()
	return &model.YongshinRecommendation{
		Strategy:   model.StrategyTonggwan,
		Primary:    mediator,
		Confidence: 0.65,
		Reason:     fmt.Sprintf("%s and %s clash: %s channels between them", controller, controlled, mediator),
	}
}

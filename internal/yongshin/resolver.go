package yongshin

import (
	"fmt"

	"github.com/haesol/sajukit/internal/config"
	"github.com/haesol/sajukit/internal/model"
)

// overrideStrategies maps a structural-pattern type to the strategy whose
// element overrides the regular resolution.
var overrideStrategies = map[model.GyeokgukType]model.YongshinStrategy{
	model.GyeokHwagyeok:  model.StrategyHapwha,
	model.GyeokIlhaeng:   model.StrategyIlhaeng,
	model.GyeokJonggyeok: model.StrategyJeonwang,
}

// Resolver reconciles the strategy recommendations into one final result.
type Resolver struct {
	cfg config.YongshinConfig
}

// NewResolver creates a resolver with the given settings.
func NewResolver(cfg config.YongshinConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve picks the final yongshin. Precedence: structural-pattern
// override, then a channel recommendation on primary disagreement, then
// primary agreement, then a secondary-to-primary match, then the configured
// fallback priority.
func (r *Resolver) Resolve(
	eokbu, johu model.YongshinRecommendation,
	tonggwan *model.YongshinRecommendation,
	gyeokguk model.GyeokgukResult,
) model.YongshinResult {
	agreement := agreementTier(eokbu, johu)
	candidates := []model.YongshinRecommendation{eokbu, johu}
	if tonggwan != nil {
		candidates = append(candidates, *tonggwan)
	}

	if strategy, ok := overrideStrategies[gyeokguk.Type]; ok && gyeokguk.Element != nil {
		element := *gyeokguk.Element
		confidence := gyeokguk.Confidence
		switch {
		case element == eokbu.Primary || element == johu.Primary:
			confidence += 0.15
		case matchesSecondary(element, eokbu) || matchesSecondary(element, johu):
			confidence += 0.05
		}
		if confidence > 0.95 {
			confidence = 0.95
		}
		return r.finish(element, strategy, agreement, confidence,
			fmt.Sprintf("structural pattern %s dictates %s", gyeokguk.Type, element),
			eokbu, johu, candidates)
	}

	if tonggwan != nil && eokbu.Primary != johu.Primary {
		return r.finish(tonggwan.Primary, model.StrategyTonggwan, agreement,
			tonggwan.Confidence, tonggwan.Reason, eokbu, johu, candidates)
	}

	if eokbu.Primary == johu.Primary {
		return r.finish(eokbu.Primary, model.StrategyEokbu, model.FullAgree,
			r.cfg.FullAgreeConfidence,
			fmt.Sprintf("balance and climate agree on %s", eokbu.Primary),
			eokbu, johu, candidates)
	}

	eokbuBacked := matchesSecondary(eokbu.Primary, johu)
	johuBacked := matchesSecondary(johu.Primary, eokbu)
	if eokbuBacked || johuBacked {
		winner := eokbu
		if johuBacked && !eokbuBacked {
			winner = johu
		} else if johuBacked && eokbuBacked && r.prefersJohu(eokbu, johu) {
			winner = johu
		}
		return r.finish(winner.Primary, winner.Strategy, model.PartialAgree,
			r.cfg.PartialAgreeConfidence,
			fmt.Sprintf("%s's primary %s is backed by the other strategy", winner.Strategy, winner.Primary),
			eokbu, johu, candidates)
	}

	winner := eokbu
	if r.prefersJohu(eokbu, johu) {
		winner = johu
	}
	return r.finish(winner.Primary, winner.Strategy, model.Disagree,
		r.cfg.DisagreeConfidence,
		fmt.Sprintf("strategies disagree: %s wins by %s priority", winner.Strategy, r.cfg.Priority),
		eokbu, johu, candidates)
}

func (r *Resolver) prefersJohu(eokbu, johu model.YongshinRecommendation) bool {
	switch r.cfg.Priority {
	case model.JohuFirst:
		return true
	case model.EqualWeight:
		return johu.Confidence > eokbu.Confidence
	default:
		return false
	}
}

func matchesSecondary(e model.Element, rec model.YongshinRecommendation) bool {
	return rec.Secondary != nil && *rec.Secondary == e
}

// finish derives the complementary elements from the resolved yongshin and
// assembles the result. Gisin is the element controlling the yongshin,
// gusin the one generating the gisin; heeshin prefers a differing secondary
// recommendation, then the other strategy's primary, then the generator.
func (r *Resolver) finish(
	yongshin model.Element,
	strategy model.YongshinStrategy,
	agreement model.AgreementTier,
	confidence float64,
	reason string,
	eokbu, johu model.YongshinRecommendation,
	candidates []model.YongshinRecommendation,
) model.YongshinResult {
	gisin := yongshin.ControlledBy()
	gusin := gisin.GeneratedBy()

	heeshin := yongshin.GeneratedBy()
	ordered := []model.YongshinRecommendation{eokbu, johu}
	if strategy == model.StrategyJohu {
		ordered = []model.YongshinRecommendation{johu, eokbu}
	}
	picked := false
	for _, rec := range ordered {
		if rec.Secondary != nil && *rec.Secondary != yongshin {
			heeshin = *rec.Secondary
			picked = true
			break
		}
	}
	if !picked {
		for _, rec := range ordered[1:] {
			if rec.Primary != yongshin {
				heeshin = rec.Primary
				picked = true
				break
			}
		}
	}

	return model.YongshinResult{
		Yongshin:   yongshin,
		Heeshin:    heeshin,
		Gisin:      gisin,
		Gusin:      gusin,
		Strategy:   strategy,
		Agreement:  agreement,
		Confidence: confidence,
		Reason:     reason,
		Candidates: candidates,
	}
}

func agreementTier(eokbu, johu model.YongshinRecommendation) model.AgreementTier {
	if eokbu.Primary == johu.Primary {
		return model.FullAgree
	}
	if matchesSecondary(eokbu.Primary, johu) || matchesSecondary(johu.Primary, eokbu) {
		return model.PartialAgree
	}
	return model.Disagree
}

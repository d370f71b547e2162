package yongshin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haesol/sajukit/internal/config"
	"github.com/haesol/sajukit/internal/model"
)

func rec(strategy model.YongshinStrategy, primary, secondary model.Element, confidence float64) model.YongshinRecommendation {
	sec := secondary
	return model.YongshinRecommendation{
		Strategy:   strategy,
		Primary:    primary,
		Secondary:  &sec,
		Confidence: confidence,
	}
}

func naegyeok() model.GyeokgukResult {
	return model.GyeokgukResult{
		Type:       model.GyeokJeonggwan,
		Category:   model.CategoryNaegyeok,
		Confidence: 0.7,
	}
}

func TestResolveFullAgree(t *testing.T) {
	cfg := config.Default().Yongshin
	r := NewResolver(cfg)

	eokbu := rec(model.StrategyEokbu, model.Metal, model.Water, 0.7)
	johu := rec(model.StrategyJohu, model.Metal, model.Fire, 0.8)

	result := r.Resolve(eokbu, johu, nil, naegyeok())

	assert.Equal(t, model.Metal, result.Yongshin)
	assert.Equal(t, model.StrategyEokbu, result.Strategy)
	assert.Equal(t, model.FullAgree, result.Agreement)
	assert.InDelta(t, cfg.FullAgreeConfidence, result.Confidence, 1e-9)
	assert.Equal(t, model.Water, result.Heeshin, "secondary differing from the yongshin is preferred")
	assert.Equal(t, model.Fire, result.Gisin)
	assert.Equal(t, model.Wood, result.Gusin)
	assert.Len(t, result.Candidates, 2)
}

func TestResolveFullAgreeIgnoresPriority(t *testing.T) {
	cfg := config.Default().Yongshin
	cfg.Priority = model.JohuFirst
	r := NewResolver(cfg)

	eokbu := rec(model.StrategyEokbu, model.Metal, model.Water, 0.7)
	johu := rec(model.StrategyJohu, model.Metal, model.Fire, 0.8)

	result := r.Resolve(eokbu, johu, nil, naegyeok())
	assert.Equal(t, model.StrategyEokbu, result.Strategy)
	assert.Equal(t, model.FullAgree, result.Agreement)
}

func TestResolvePartialAgree(t *testing.T) {
	cfg := config.Default().Yongshin
	r := NewResolver(cfg)

	// Johu's secondary backs eokbu's primary, so eokbu wins the partial tier.
	eokbu := rec(model.StrategyEokbu, model.Metal, model.Fire, 0.7)
	johu := rec(model.StrategyJohu, model.Water, model.Metal, 0.7)

	result := r.Resolve(eokbu, johu, nil, naegyeok())

	assert.Equal(t, model.Metal, result.Yongshin)
	assert.Equal(t, model.StrategyEokbu, result.Strategy)
	assert.Equal(t, model.PartialAgree, result.Agreement)
	assert.InDelta(t, cfg.PartialAgreeConfidence, result.Confidence, 1e-9)
}

func TestResolvePartialAgreeBothBacked(t *testing.T) {
	eokbu := rec(model.StrategyEokbu, model.Metal, model.Water, 0.7)
	johu := rec(model.StrategyJohu, model.Water, model.Metal, 0.7)

	tests := []struct {
		name     string
		priority model.YongshinPriority
		want     model.Element
	}{
		{name: "eokbu first", priority: model.EokbuFirst, want: model.Metal},
		{name: "johu first", priority: model.JohuFirst, want: model.Water},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default().Yongshin
			cfg.Priority = tt.priority
			result := NewResolver(cfg).Resolve(eokbu, johu, nil, naegyeok())
			assert.Equal(t, tt.want, result.Yongshin)
			assert.Equal(t, model.PartialAgree, result.Agreement)
		})
	}
}

func TestResolveDisagree(t *testing.T) {
	eokbu := rec(model.StrategyEokbu, model.Metal, model.Water, 0.7)
	johu := rec(model.StrategyJohu, model.Fire, model.Earth, 0.8)

	tests := []struct {
		name         string
		priority     model.YongshinPriority
		want         model.Element
		wantStrategy model.YongshinStrategy
	}{
		{name: "eokbu first", priority: model.EokbuFirst, want: model.Metal, wantStrategy: model.StrategyEokbu},
		{name: "johu first", priority: model.JohuFirst, want: model.Fire, wantStrategy: model.StrategyJohu},
		{name: "equal weight follows confidence", priority: model.EqualWeight, want: model.Fire, wantStrategy: model.StrategyJohu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default().Yongshin
			cfg.Priority = tt.priority
			result := NewResolver(cfg).Resolve(eokbu, johu, nil, naegyeok())
			assert.Equal(t, tt.want, result.Yongshin)
			assert.Equal(t, tt.wantStrategy, result.Strategy)
			assert.Equal(t, model.Disagree, result.Agreement)
			assert.InDelta(t, cfg.DisagreeConfidence, result.Confidence, 1e-9)
		})
	}
}

func TestResolveTonggwanOnDisagreement(t *testing.T) {
	r := NewResolver(config.Default().Yongshin)

	eokbu := rec(model.StrategyEokbu, model.Metal, model.Water, 0.7)
	johu := rec(model.StrategyJohu, model.Fire, model.Earth, 0.8)
	tonggwan := &model.YongshinRecommendation{
		Strategy:   model.StrategyTonggwan,
		Primary:    model.Earth,
		Confidence: 0.65,
		Reason:     "clash",
	}

	result := r.Resolve(eokbu, johu, tonggwan, naegyeok())

	assert.Equal(t, model.Earth, result.Yongshin)
	assert.Equal(t, model.StrategyTonggwan, result.Strategy)
	assert.Equal(t, model.Disagree, result.Agreement)
	assert.InDelta(t, 0.65, result.Confidence, 1e-9)
	assert.Len(t, result.Candidates, 3)
}

func TestResolveTonggwanSkippedOnAgreement(t *testing.T) {
	r := NewResolver(config.Default().Yongshin)

	eokbu := rec(model.StrategyEokbu, model.Metal, model.Water, 0.7)
	johu := rec(model.StrategyJohu, model.Metal, model.Fire, 0.8)
	tonggwan := &model.YongshinRecommendation{
		Strategy:   model.StrategyTonggwan,
		Primary:    model.Earth,
		Confidence: 0.65,
	}

	result := r.Resolve(eokbu, johu, tonggwan, naegyeok())
	assert.Equal(t, model.Metal, result.Yongshin)
	assert.Equal(t, model.StrategyEokbu, result.Strategy)
}

func TestResolveStructuralOverride(t *testing.T) {
	earth := model.Earth
	wood := model.Wood

	tests := []struct {
		name         string
		gyeokguk     model.GyeokgukResult
		eokbu        model.YongshinRecommendation
		johu         model.YongshinRecommendation
		wantStrategy model.YongshinStrategy
		wantElement  model.Element
		wantConf     float64
	}{
		{
			name:         "follow pattern with primary agreement",
			gyeokguk:     model.GyeokgukResult{Type: model.GyeokJonggyeok, Element: &earth, Confidence: 0.75},
			eokbu:        rec(model.StrategyEokbu, model.Earth, model.Fire, 0.7),
			johu:         rec(model.StrategyJohu, model.Water, model.Metal, 0.8),
			wantStrategy: model.StrategyJeonwang,
			wantElement:  model.Earth,
			wantConf:     0.9,
		},
		{
			name:         "transformation pattern hits the cap",
			gyeokguk:     model.GyeokgukResult{Type: model.GyeokHwagyeok, Element: &earth, Confidence: 0.85},
			eokbu:        rec(model.StrategyEokbu, model.Earth, model.Fire, 0.7),
			johu:         rec(model.StrategyJohu, model.Water, model.Metal, 0.8),
			wantStrategy: model.StrategyHapwha,
			wantElement:  model.Earth,
			wantConf:     0.95,
		},
		{
			name:         "one-element pattern with secondary backing",
			gyeokguk:     model.GyeokgukResult{Type: model.GyeokIlhaeng, Element: &wood, Confidence: 0.75},
			eokbu:        rec(model.StrategyEokbu, model.Metal, model.Wood, 0.7),
			johu:         rec(model.StrategyJohu, model.Fire, model.Earth, 0.8),
			wantStrategy: model.StrategyIlhaeng,
			wantElement:  model.Wood,
			wantConf:     0.8,
		},
		{
			name:         "no backing keeps the pattern confidence",
			gyeokguk:     model.GyeokgukResult{Type: model.GyeokJonggyeok, Element: &wood, Confidence: 0.75},
			eokbu:        rec(model.StrategyEokbu, model.Metal, model.Water, 0.7),
			johu:         rec(model.StrategyJohu, model.Fire, model.Earth, 0.8),
			wantStrategy: model.StrategyJeonwang,
			wantElement:  model.Wood,
			wantConf:     0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewResolver(config.Default().Yongshin).Resolve(tt.eokbu, tt.johu, nil, tt.gyeokguk)
			assert.Equal(t, tt.wantStrategy, result.Strategy)
			assert.Equal(t, tt.wantElement, result.Yongshin)
			assert.InDelta(t, tt.wantConf, result.Confidence, 1e-9)
		})
	}
}

func TestResolveOverrideRequiresElement(t *testing.T) {
	r := NewResolver(config.Default().Yongshin)

	eokbu := rec(model.StrategyEokbu, model.Metal, model.Water, 0.7)
	johu := rec(model.StrategyJohu, model.Metal, model.Fire, 0.8)
	gyeokguk := model.GyeokgukResult{Type: model.GyeokJonggyeok, Confidence: 0.75}

	result := r.Resolve(eokbu, johu, nil, gyeokguk)
	assert.Equal(t, model.StrategyEokbu, result.Strategy, "an override without an element falls through")
}

func TestResolveDerivedElements(t *testing.T) {
	r := NewResolver(config.Default().Yongshin)

	tests := []struct {
		yongshin  model.Element
		wantGisin model.Element
		wantGusin model.Element
	}{
		{model.Wood, model.Metal, model.Earth},
		{model.Fire, model.Water, model.Metal},
		{model.Earth, model.Wood, model.Water},
		{model.Metal, model.Fire, model.Wood},
		{model.Water, model.Earth, model.Fire},
	}

	for _, tt := range tests {
		t.Run(tt.yongshin.String(), func(t *testing.T) {
			eokbu := rec(model.StrategyEokbu, tt.yongshin, tt.yongshin.GeneratedBy(), 0.7)
			johu := rec(model.StrategyJohu, tt.yongshin, tt.yongshin.GeneratedBy(), 0.7)
			result := r.Resolve(eokbu, johu, nil, naegyeok())
			require.Equal(t, tt.yongshin, result.Yongshin)
			assert.Equal(t, tt.wantGisin, result.Gisin)
			assert.Equal(t, tt.wantGusin, result.Gusin)
		})
	}
}

package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haesol/sajukit/internal/config"
	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/model"
	"github.com/haesol/sajukit/internal/testutil"
)

func newAnalyzer(t *testing.T, cfg config.StrengthConfig) *Analyzer {
	t.Helper()
	table, err := ganji.NewHiddenStemTable()
	require.NoError(t, err)
	return NewAnalyzer(table, cfg)
}

func TestAnalyzeReferenceChart(t *testing.T) {
	a := newAnalyzer(t, config.Default().Strength)

	result := a.Analyze(Input{
		Pillars: testutil.ReferenceChart(),
		Scheme:  ganji.SchemeStandard,
	}, nil)

	// 戊 day master: 寅 month gives 14/30 of the seasonal max, 辰 and 午
	// give 9 and 10 positional points, and 丙 is the one helping stem.
	assert.InDelta(t, 14.0, result.Deukryeong, 1e-9)
	assert.InDelta(t, 19.0, result.Deukji, 1e-9)
	assert.InDelta(t, 5.0, result.Deukse, 1e-9)
	assert.InDelta(t, 38.0, result.TotalSupport, 1e-9)
	assert.InDelta(t, 42.0, result.TotalOppose, 1e-9)
	assert.Equal(t, model.Neutral, result.Level)
	assert.False(t, result.IsStrong())
}

func TestAnalyzeExtremes(t *testing.T) {
	a := newAnalyzer(t, config.Default().Strength)

	tests := []struct {
		name    string
		pillars model.PillarSet
		want    model.StrengthLevel
	}{
		{name: "saturated chart", pillars: testutil.WoodDominantChart(), want: model.ExtremeStrong},
		{name: "unsupported chart", pillars: testutil.WeakDayMasterChart(), want: model.ExtremeWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.Analyze(Input{Pillars: tt.pillars, Scheme: ganji.SchemeStandard}, nil)
			assert.Equal(t, tt.want, result.Level)
		})
	}
}

func TestAnalyzeThresholdMonotonicity(t *testing.T) {
	// Raising the threshold can only push the level down.
	base := config.Default().Strength
	ps := testutil.ReferenceChart()

	var prev model.StrengthLevel = model.ExtremeStrong
	for _, threshold := range []float64{10, 25, 35, 50, 70} {
		cfg := base
		cfg.Threshold = threshold
		result := newAnalyzer(t, cfg).Analyze(Input{Pillars: ps, Scheme: ganji.SchemeStandard}, nil)
		assert.LessOrEqual(t, int(result.Level), int(prev),
			"threshold %.0f must not raise the level", threshold)
		prev = result.Level
	}
}

func TestAnalyzeProportionalDeukryeong(t *testing.T) {
	cfg := config.Default().Strength
	cfg.ProportionalDeukryeong = true
	a := newAnalyzer(t, cfg)
	ps := testutil.ReferenceChart()

	tests := []struct {
		name string
		days int
		want float64
	}{
		// 寅 month spans: 戊 days 0-6, 丙 7-13, 甲 14+. 戊 and 丙 back a
		// 戊 day master; 甲 does not.
		{name: "residual span governs", days: 3, want: 30.0},
		{name: "middle span governs", days: 10, want: 30.0},
		{name: "main span does not support", days: 20, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := tt.days
			result := a.Analyze(Input{
				Pillars:       ps,
				Scheme:        ganji.SchemeStandard,
				DaysSinceJeol: &days,
			}, nil)
			assert.InDelta(t, tt.want, result.Deukryeong, 1e-9)
		})
	}
}

func TestAnalyzeProportionalFallsBackWithoutDays(t *testing.T) {
	cfg := config.Default().Strength
	cfg.ProportionalDeukryeong = true
	a := newAnalyzer(t, cfg)

	result := a.Analyze(Input{
		Pillars: testutil.ReferenceChart(),
		Scheme:  ganji.SchemeStandard,
	}, nil)
	assert.InDelta(t, 14.0, result.Deukryeong, 1e-9, "ratio mode applies when days are unknown")
}

func TestAnalyzeCombinedAway(t *testing.T) {
	a := newAnalyzer(t, config.Default().Strength)
	ps := testutil.ReferenceChart()

	// 丙 is the only helping stem; a transformation pulling it into Water
	// halves its contribution.
	water := model.Water
	haps := []model.HapTransformation{{
		Relation: model.StemRelation{
			Type:          model.StemHap,
			First:         2,
			Second:        7,
			ResultElement: &water,
		},
		Element:     model.Water,
		Transformed: true,
		Degree:      1.0,
	}}

	plain := a.Analyze(Input{Pillars: ps, Scheme: ganji.SchemeStandard}, nil)
	reduced := a.Analyze(Input{Pillars: ps, Scheme: ganji.SchemeStandard, HapEvaluations: haps}, nil)

	assert.InDelta(t, plain.Deukse/2, reduced.Deukse, 1e-9)
	assert.Less(t, reduced.TotalSupport, plain.TotalSupport)
}

func TestAnalyzeTrace(t *testing.T) {
	a := newAnalyzer(t, config.Default().Strength)

	var trace []string
	withTrace := a.Analyze(Input{Pillars: testutil.ReferenceChart(), Scheme: ganji.SchemeStandard}, &trace)
	withoutTrace := a.Analyze(Input{Pillars: testutil.ReferenceChart(), Scheme: ganji.SchemeStandard}, nil)

	assert.NotEmpty(t, trace)
	assert.Equal(t, withoutTrace, withTrace, "trace collection must not change the result")
}

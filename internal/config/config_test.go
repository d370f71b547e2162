package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haesol/sajukit/internal/common"
	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/model"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "classic", cfg.School)
	assert.Equal(t, ganji.SchemeStandard, cfg.HiddenStemScheme)
	assert.Equal(t, model.EokbuFirst, cfg.Yongshin.Priority)
	assert.Len(t, cfg.Shinsal.BaseWeights, len(model.AllShinsalTypes))
}

func TestForSchool(t *testing.T) {
	tests := []struct {
		name    string
		school  string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name:   "classic is the default",
			school: "classic",
			check: func(t *testing.T, cfg Config) {
				assert.False(t, cfg.Strength.ProportionalDeukryeong)
				assert.Equal(t, model.EokbuFirst, cfg.Yongshin.Priority)
			},
		},
		{
			name:   "modern overlays",
			school: "modern",
			check: func(t *testing.T, cfg Config) {
				assert.True(t, cfg.Strength.ProportionalDeukryeong)
				assert.True(t, cfg.IncludeBranchYinYang)
				assert.Equal(t, model.JohuFirst, cfg.Yongshin.Priority)
			},
		},
		{
			name:    "unknown school",
			school:  "heterodox",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ForSchool(tt.school)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.school, cfg.School)
			tt.check(t, cfg)
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "negative stem weight", mutate: func(c *Config) { c.StemWeight = -1 }},
		{name: "unknown scheme", mutate: func(c *Config) { c.HiddenStemScheme = "lunar" }},
		{name: "unknown priority", mutate: func(c *Config) { c.Yongshin.Priority = "COIN_FLIP" }},
		{name: "zero deukryeong max", mutate: func(c *Config) { c.Strength.DeukryeongMax = 0 }},
		{name: "negative deukji cap", mutate: func(c *Config) { c.Strength.DeukjiCaps[model.PositionYear] = -1 }},
		{name: "missing shinsal weight", mutate: func(c *Config) { delete(c.Shinsal.BaseWeights, model.ShinsalWonjin) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := Default()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var got Config
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, cfg, got)
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	for _, name := range names {
		_, err := ForSchool(name)
		assert.NoError(t, err, "preset %q must resolve", name)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("SAJUKIT_TEST_DIR", "/tmp/sajukit")

	assert.Equal(t, "/tmp/sajukit/history.db", ExpandPath("$SAJUKIT_TEST_DIR/history.db"))
	assert.Equal(t, "", ExpandPath(""))
	assert.NotContains(t, ExpandPath("~/data.db"), "~")
}

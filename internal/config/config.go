// Package config provides the layered calculation configuration: built-in
// defaults, a school preset overlay, then user overrides. Later layers win
// field by field.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/haesol/sajukit/internal/common"
	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/model"
)

// StrengthConfig holds the day-master strength weights and thresholds.
type StrengthConfig struct {
	// DeukryeongMax caps the seasonal support score from the month branch.
	DeukryeongMax float64 `json:"deukryeong_max" mapstructure:"deukryeong_max"`
	// DeukjiCaps cap the positional support per non-month branch.
	DeukjiCaps map[model.Position]float64 `json:"deukji_caps" mapstructure:"deukji_caps"`
	// DeukseStemWeight is the numeric support per helping visible stem.
	DeukseStemWeight float64 `json:"deukse_stem_weight" mapstructure:"deukse_stem_weight"`
	// CombinedAwayFactor reduces a helping stem that has combined away into
	// another element.
	CombinedAwayFactor float64 `json:"combined_away_factor" mapstructure:"combined_away_factor"`
	// Threshold is the support score at the center of the neutral band.
	Threshold float64 `json:"threshold" mapstructure:"threshold"`
	// ProportionalDeukryeong scores seasonal support from the hidden stem
	// governing the elapsed days since the solar-term boundary.
	ProportionalDeukryeong bool `json:"proportional_deukryeong" mapstructure:"proportional_deukryeong"`
}

// YongshinConfig holds the useful-element resolution settings.
type YongshinConfig struct {
	Priority model.YongshinPriority `json:"priority" mapstructure:"priority"`
	// Agreement-tier confidence constants.
	FullAgreeConfidence    float64 `json:"full_agree_confidence" mapstructure:"full_agree_confidence"`
	PartialAgreeConfidence float64 `json:"partial_agree_confidence" mapstructure:"partial_agree_confidence"`
	DisagreeConfidence     float64 `json:"disagree_confidence" mapstructure:"disagree_confidence"`
	// TonggwanShare is the minimum share each of two clashing elements must
	// hold before a channel recommendation is produced.
	TonggwanShare float64 `json:"tonggwan_share" mapstructure:"tonggwan_share"`
}

// GyeokgukConfig holds the structural-pattern thresholds.
type GyeokgukConfig struct {
	// IlhaengShare is the element share that qualifies as one-element
	// dominance.
	IlhaengShare float64 `json:"ilhaeng_share" mapstructure:"ilhaeng_share"`
}

// ShinsalConfig holds the special-star weights.
type ShinsalConfig struct {
	// BaseWeights must cover every known star type; a gap is a fatal load
	// error.
	BaseWeights map[model.ShinsalType]int `json:"base_weights" mapstructure:"base_weights"`
}

// LuckConfig holds the luck-pillar scoring terms.
type LuckConfig struct {
	YongshinBonus float64 `json:"yongshin_bonus" mapstructure:"yongshin_bonus"`
	GisinPenalty  float64 `json:"gisin_penalty" mapstructure:"gisin_penalty"`
	// HapBonus/ChungPenalty weigh each favorable/unfavorable relation hit.
	HapBonus     float64 `json:"hap_bonus" mapstructure:"hap_bonus"`
	ChungPenalty float64 `json:"chung_penalty" mapstructure:"chung_penalty"`
	MinorPenalty float64 `json:"minor_penalty" mapstructure:"minor_penalty"`
}

// Config is the complete calculation configuration. Every weight, threshold
// and scheme of the pipeline is overridable; the zero-override defaults
// reproduce the classic school's numeric behavior.
type Config struct {
	School string `json:"school" mapstructure:"school"`

	StemWeight           float64            `json:"stem_weight" mapstructure:"stem_weight"`
	BranchWeight         float64            `json:"branch_weight" mapstructure:"branch_weight"`
	IncludeBranchYinYang bool               `json:"include_branch_yin_yang" mapstructure:"include_branch_yin_yang"`
	HiddenStemScheme     ganji.WeightScheme `json:"hidden_stem_scheme" mapstructure:"hidden_stem_scheme"`

	Strength StrengthConfig `json:"strength" mapstructure:"strength"`
	Yongshin YongshinConfig `json:"yongshin" mapstructure:"yongshin"`
	Gyeokguk GyeokgukConfig `json:"gyeokguk" mapstructure:"gyeokguk"`
	Shinsal  ShinsalConfig  `json:"shinsal" mapstructure:"shinsal"`
	Luck     LuckConfig     `json:"luck" mapstructure:"luck"`
}

// Default returns the base configuration of the classic reference school.
func Default() Config {
	return Config{
		School:               "classic",
		StemWeight:           1.0,
		BranchWeight:         1.0,
		IncludeBranchYinYang: false,
		HiddenStemScheme:     ganji.SchemeStandard,
		Strength: StrengthConfig{
			DeukryeongMax: 30,
			DeukjiCaps: map[model.Position]float64{
				model.PositionYear: 10,
				model.PositionDay:  15,
				model.PositionHour: 10,
			},
			DeukseStemWeight:   5,
			CombinedAwayFactor: 0.5,
			Threshold:          35,
		},
		Yongshin: YongshinConfig{
			Priority:               model.EokbuFirst,
			FullAgreeConfidence:    0.9,
			PartialAgreeConfidence: 0.75,
			DisagreeConfidence:     0.6,
			TonggwanShare:          0.3,
		},
		Gyeokguk: GyeokgukConfig{
			IlhaengShare: 0.5,
		},
		Shinsal: ShinsalConfig{
			BaseWeights: map[model.ShinsalType]int{
				model.ShinsalYeokma:        60,
				model.ShinsalDohwa:         55,
				model.ShinsalHwagae:        50,
				model.ShinsalCheoneulGwiin: 80,
				model.ShinsalYangin:        70,
				model.ShinsalBaekho:        65,
				model.ShinsalGoegang:       60,
				model.ShinsalWonjin:        45,
				model.ShinsalGwimun:        40,
			},
		},
		Luck: LuckConfig{
			YongshinBonus: 2,
			GisinPenalty:  2,
			HapBonus:      1,
			ChungPenalty:  1,
			MinorPenalty:  0.5,
		},
	}
}

// presets are the named school overlays applied on top of Default.
var presets = map[string]func(*Config){
	"classic": func(*Config) {},
	"modern": func(c *Config) {
		c.Yongshin.Priority = model.JohuFirst
		c.Strength.ProportionalDeukryeong = true
		c.IncludeBranchYinYang = true
	},
}

// PresetNames lists the known school presets.
func PresetNames() []string {
	return []string{"classic", "modern"}
}

// ForSchool returns the configuration for a named school preset.
func ForSchool(name string) (Config, error) {
	overlay, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown school preset %q", name)
	}
	cfg := Default()
	cfg.School = name
	overlay(&cfg)
	return cfg, nil
}

// Validate ensures the configuration is internally consistent. Failures
// wrap common.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.StemWeight < 0 || c.BranchWeight < 0 {
		return fmt.Errorf("source weights must be non-negative: %w", common.ErrInvalidConfig)
	}
	switch c.HiddenStemScheme {
	case ganji.SchemeStandard, ganji.SchemeEqual:
	default:
		return fmt.Errorf("unknown hidden stem scheme %q: %w", c.HiddenStemScheme, common.ErrInvalidConfig)
	}
	switch c.Yongshin.Priority {
	case model.JohuFirst, model.EokbuFirst, model.EqualWeight:
	default:
		return fmt.Errorf("unknown yongshin priority %q: %w", c.Yongshin.Priority, common.ErrInvalidConfig)
	}
	if c.Strength.DeukryeongMax <= 0 || c.Strength.Threshold <= 0 {
		return fmt.Errorf("strength thresholds must be positive: %w", common.ErrInvalidConfig)
	}
	for pos, limit := range c.Strength.DeukjiCaps {
		if limit < 0 {
			return fmt.Errorf("deukji cap for %s must be non-negative: %w", pos, common.ErrInvalidConfig)
		}
	}
	for _, t := range model.AllShinsalTypes {
		if _, ok := c.Shinsal.BaseWeights[t]; !ok {
			return fmt.Errorf("shinsal base weight table: missing entry for %s: %w", t, common.ErrInvalidConfig)
		}
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return os.ExpandEnv(path)
}

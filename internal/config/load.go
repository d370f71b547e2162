package config

import (
	"fmt"

	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/model"
	"github.com/spf13/viper"
)

// Load resolves the effective configuration from the three layers:
// built-in defaults, the school preset overlay (from `school` in viper or
// the default school), then any user overrides present in viper. Only keys
// the user actually set override the preset.
func Load(v *viper.Viper) (Config, error) {
	school := Default().School
	if v.IsSet("school") {
		school = v.GetString("school")
	}
	cfg, err := ForSchool(school)
	if err != nil {
		return Config{}, err
	}

	if v.IsSet("stem_weight") {
		cfg.StemWeight = v.GetFloat64("stem_weight")
	}
	if v.IsSet("branch_weight") {
		cfg.BranchWeight = v.GetFloat64("branch_weight")
	}
	if v.IsSet("include_branch_yin_yang") {
		cfg.IncludeBranchYinYang = v.GetBool("include_branch_yin_yang")
	}
	if v.IsSet("hidden_stem_scheme") {
		cfg.HiddenStemScheme = ganji.WeightScheme(v.GetString("hidden_stem_scheme"))
	}

	if v.IsSet("strength.deukryeong_max") {
		cfg.Strength.DeukryeongMax = v.GetFloat64("strength.deukryeong_max")
	}
	if v.IsSet("strength.deukse_stem_weight") {
		cfg.Strength.DeukseStemWeight = v.GetFloat64("strength.deukse_stem_weight")
	}
	if v.IsSet("strength.combined_away_factor") {
		cfg.Strength.CombinedAwayFactor = v.GetFloat64("strength.combined_away_factor")
	}
	if v.IsSet("strength.threshold") {
		cfg.Strength.Threshold = v.GetFloat64("strength.threshold")
	}
	if v.IsSet("strength.proportional_deukryeong") {
		cfg.Strength.ProportionalDeukryeong = v.GetBool("strength.proportional_deukryeong")
	}
	for _, pos := range []model.Position{model.PositionYear, model.PositionDay, model.PositionHour} {
		key := fmt.Sprintf("strength.deukji_caps.%s", pos)
		if v.IsSet(key) {
			cfg.Strength.DeukjiCaps[pos] = v.GetFloat64(key)
		}
	}

	if v.IsSet("yongshin.priority") {
		cfg.Yongshin.Priority = model.YongshinPriority(v.GetString("yongshin.priority"))
	}
	if v.IsSet("yongshin.full_agree_confidence") {
		cfg.Yongshin.FullAgreeConfidence = v.GetFloat64("yongshin.full_agree_confidence")
	}
	if v.IsSet("yongshin.partial_agree_confidence") {
		cfg.Yongshin.PartialAgreeConfidence = v.GetFloat64("yongshin.partial_agree_confidence")
	}
	if v.IsSet("yongshin.disagree_confidence") {
		cfg.Yongshin.DisagreeConfidence = v.GetFloat64("yongshin.disagree_confidence")
	}
	if v.IsSet("yongshin.tonggwan_share") {
		cfg.Yongshin.TonggwanShare = v.GetFloat64("yongshin.tonggwan_share")
	}

	if v.IsSet("gyeokguk.ilhaeng_share") {
		cfg.Gyeokguk.IlhaengShare = v.GetFloat64("gyeokguk.ilhaeng_share")
	}

	for _, t := range model.AllShinsalTypes {
		key := fmt.Sprintf("shinsal.base_weights.%s", t)
		if v.IsSet(key) {
			cfg.Shinsal.BaseWeights[t] = v.GetInt(key)
		}
	}

	if v.IsSet("luck.yongshin_bonus") {
		cfg.Luck.YongshinBonus = v.GetFloat64("luck.yongshin_bonus")
	}
	if v.IsSet("luck.gisin_penalty") {
		cfg.Luck.GisinPenalty = v.GetFloat64("luck.gisin_penalty")
	}
	if v.IsSet("luck.hap_bonus") {
		cfg.Luck.HapBonus = v.GetFloat64("luck.hap_bonus")
	}
	if v.IsSet("luck.chung_penalty") {
		cfg.Luck.ChungPenalty = v.GetFloat64("luck.chung_penalty")
	}
	if v.IsSet("luck.minor_penalty") {
		cfg.Luck.MinorPenalty = v.GetFloat64("luck.minor_penalty")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

package ganji

import "github.com/haesol/sajukit/internal/model"

// lifeStageBirth maps each stem to the branch where its cycle begins
// (장생). Yang stems walk the cycle forward, yin stems backward.
var lifeStageBirth = [...]model.Branch{11, 6, 2, 9, 2, 9, 5, 0, 8, 3}

// LifeStageOf returns the life stage of a branch relative to a day stem.
func LifeStageOf(dayMaster model.Stem, b model.Branch) model.LifeStage {
	s := model.NormalizeStem(int(dayMaster))
	birth := lifeStageBirth[s]
	bi := int(model.NormalizeBranch(int(b)))
	var offset int
	if s.Polarity() == model.Yang {
		offset = (bi - int(birth) + 12) % 12
	} else {
		offset = (int(birth) - bi + 12) % 12
	}
	return model.LifeStage(offset)
}

// SexagenaryIndex returns the pillar's index in the sixty-cycle, with 甲子
// at zero. For a pillar whose stem and branch share a polarity this is the
// unique value congruent to the stem mod 10 and to the branch mod 12.
func SexagenaryIndex(p model.Pillar) int {
	s := int(model.NormalizeStem(int(p.Stem)))
	b := int(model.NormalizeBranch(int(p.Branch)))
	return ((6*s-5*b)%60 + 60) % 60
}

// VoidBranches returns the day pillar's two void branches (공망): the two
// branches the pillar's decade of the sexagenary cycle never reaches.
func VoidBranches(day model.Pillar) [2]model.Branch {
	s := int(model.NormalizeStem(int(day.Stem)))
	b := int(model.NormalizeBranch(int(day.Branch)))
	first := model.NormalizeBranch(b - s + 10)
	second := model.NormalizeBranch(b - s + 11)
	return [2]model.Branch{first, second}
}

// Season is the quarter of the year a month branch falls in.
type Season string

// The four seasons.
const (
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
	SeasonAutumn Season = "AUTUMN"
	SeasonWinter Season = "WINTER"
)

// SeasonOf returns the season of a month branch. The cycle opens the year at
// the In branch, so spring covers In/Myo/Jin.
func SeasonOf(month model.Branch) Season {
	switch model.NormalizeBranch(int(month)) {
	case 2, 3, 4:
		return SeasonSpring
	case 5, 6, 7:
		return SeasonSummer
	case 8, 9, 10:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

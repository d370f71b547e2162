package testutil

import "github.com/haesol/sajukit/internal/model"

// ReferenceChart is the chart used by the end-to-end fixtures: 甲子年 丙寅月
// 戊辰日 庚午時. Its aggregate scores and detected relations are computed by
// hand in the tests that consume it.
func ReferenceChart() model.PillarSet {
	return model.PillarSet{
		Year:  model.NewPillar(0, 0),
		Month: model.NewPillar(2, 2),
		Day:   model.NewPillar(4, 4),
		Hour:  model.NewPillar(6, 6),
	}
}

// WoodDominantChart is a chart saturated with Wood, with a Wood day master.
// Useful for one-element pattern and extreme-strength cases.
func WoodDominantChart() model.PillarSet {
	return model.PillarSet{
		Year:  model.NewPillar(0, 2),  // 甲寅
		Month: model.NewPillar(1, 3),  // 乙卯
		Day:   model.NewPillar(0, 2),  // 甲寅
		Hour:  model.NewPillar(1, 11), // 乙亥
	}
}

// WeakDayMasterChart has a Wood day master with no seasonal or positional
// support, surrounded by Metal.
func WeakDayMasterChart() model.PillarSet {
	return model.PillarSet{
		Year:  model.NewPillar(6, 8), // 庚申
		Month: model.NewPillar(7, 9), // 辛酉
		Day:   model.NewPillar(0, 8), // 甲申
		Hour:  model.NewPillar(6, 6), // 庚午
	}
}

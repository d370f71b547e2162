// Package shinsal detects special-star hits, applies position-based
// weighting, and interprets pairwise composite interactions.
package shinsal

import (
	"sort"

	"github.com/haesol/sajukit/internal/model"
)

// triadGroup returns the three-harmony group index of a branch. Branches of
// one triad share an index mod 4.
func triadGroup(b model.Branch) int {
	return int(model.NormalizeBranch(int(b))) % 4
}

// Triad-group star tables, indexed by triad group.
var (
	yeokmaByGroup = [4]model.Branch{2, 11, 8, 5}
	dohwaByGroup  = [4]model.Branch{9, 6, 3, 0}
	hwagaeByGroup = [4]model.Branch{4, 1, 10, 7}
)

// cheoneulBranches maps a day stem to its nobleman branches.
var cheoneulBranches = map[model.Stem][]model.Branch{
	0: {1, 7}, 4: {1, 7}, 6: {1, 7}, // 甲戊庚 → 丑未
	1: {0, 8}, 5: {0, 8}, // 乙己 → 子申
	2: {11, 9}, 3: {11, 9}, // 丙丁 → 亥酉
	7: {2, 6}, // 辛 → 寅午
	8: {5, 3}, 9: {5, 3}, // 壬癸 → 巳卯
}

// yanginBranch maps a yang day stem to its blade branch.
var yanginBranch = map[model.Stem]model.Branch{
	0: 3, // 甲 → 卯
	2: 6, // 丙 → 午
	4: 6, // 戊 → 午
	6: 9, // 庚 → 酉
	8: 0, // 壬 → 子
}

// Whole-pillar star catalogs.
var baekhoPillars = map[model.Pillar]bool{
	{Stem: 0, Branch: 4}:  true, // 甲辰
	{Stem: 1, Branch: 7}:  true, // 乙未
	{Stem: 2, Branch: 10}: true, // 丙戌
	{Stem: 3, Branch: 1}:  true, // 丁丑
	{Stem: 4, Branch: 4}:  true, // 戊辰
	{Stem: 8, Branch: 10}: true, // 壬戌
	{Stem: 9, Branch: 1}:  true, // 癸丑
}

var goegangPillars = map[model.Pillar]bool{
	{Stem: 6, Branch: 4}:  true, // 庚辰
	{Stem: 6, Branch: 10}: true, // 庚戌
	{Stem: 8, Branch: 4}:  true, // 壬辰
	{Stem: 8, Branch: 10}: true, // 壬戌
}

// Branch-pair star catalogs; keys are sorted pairs.
var wonjinPairs = map[[2]model.Branch]bool{
	{0, 7}:  true, // 子未
	{1, 6}:  true, // 丑午
	{2, 9}:  true, // 寅酉
	{3, 8}:  true, // 卯申
	{4, 11}: true, // 辰亥
	{5, 10}: true, // 巳戌
}

var gwimunPairs = map[[2]model.Branch]bool{
	{0, 9}:  true, // 子酉
	{2, 7}:  true, // 寅未
	{3, 8}:  true, // 卯申
	{4, 11}: true, // 辰亥
	{5, 10}: true, // 巳戌
	{1, 6}:  true, // 丑午
}

var shinsalTypeRank = func() map[model.ShinsalType]int {
	m := make(map[model.ShinsalType]int, len(model.AllShinsalTypes))
	for i, t := range model.AllShinsalTypes {
		m[t] = i
	}
	return m
}()

var positionRank = map[model.Position]int{
	model.PositionYear:  0,
	model.PositionMonth: 1,
	model.PositionDay:   2,
	model.PositionHour:  3,
}

// Detect finds every special-star hit in the chart. Triad-group stars are
// checked from both the year and day branch bases; results are deduplicated
// by (type, position) and sorted by type then chart position.
func Detect(ps model.PillarSet) []model.ShinsalHit {
	ps = ps.Normalize()
	seen := make(map[model.ShinsalHit]bool)
	var hits []model.ShinsalHit

	add := func(t model.ShinsalType, pos model.Position) {
		h := model.ShinsalHit{Type: t, Position: pos}
		if !seen[h] {
			seen[h] = true
			hits = append(hits, h)
		}
	}

	// Triad-group stars from the year and day bases.
	for _, base := range []model.Branch{ps.Year.Branch, ps.Day.Branch} {
		g := triadGroup(base)
		for _, pos := range model.AllPositions {
			b := ps.Pillar(pos).Branch
			if b == yeokmaByGroup[g] {
				add(model.ShinsalYeokma, pos)
			}
			if b == dohwaByGroup[g] {
				add(model.ShinsalDohwa, pos)
			}
			if b == hwagaeByGroup[g] {
				add(model.ShinsalHwagae, pos)
			}
		}
	}

	// Day-stem stars.
	dayMaster := ps.DayMaster()
	for _, pos := range model.AllPositions {
		b := ps.Pillar(pos).Branch
		for _, noble := range cheoneulBranches[dayMaster] {
			if b == noble {
				add(model.ShinsalCheoneulGwiin, pos)
			}
		}
		if blade, ok := yanginBranch[dayMaster]; ok && b == blade {
			add(model.ShinsalYangin, pos)
		}
	}

	// Whole-pillar stars.
	for _, pos := range model.AllPositions {
		p := ps.Pillar(pos)
		if baekhoPillars[p] {
			add(model.ShinsalBaekho, pos)
		}
		if goegangPillars[p] {
			add(model.ShinsalGoegang, pos)
		}
	}

	// Branch-pair stars mark both participating positions.
	for i := 0; i < len(model.AllPositions); i++ {
		for j := i + 1; j < len(model.AllPositions); j++ {
			a := ps.Pillar(model.AllPositions[i]).Branch
			b := ps.Pillar(model.AllPositions[j]).Branch
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			pair := [2]model.Branch{lo, hi}
			if wonjinPairs[pair] {
				add(model.ShinsalWonjin, model.AllPositions[i])
				add(model.ShinsalWonjin, model.AllPositions[j])
			}
			if gwimunPairs[pair] {
				add(model.ShinsalGwimun, model.AllPositions[i])
				add(model.ShinsalGwimun, model.AllPositions[j])
			}
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if shinsalTypeRank[hits[i].Type] != shinsalTypeRank[hits[j].Type] {
			return shinsalTypeRank[hits[i].Type] < shinsalTypeRank[hits[j].Type]
		}
		return positionRank[hits[i].Position] < positionRank[hits[j].Position]
	})
	return hits
}

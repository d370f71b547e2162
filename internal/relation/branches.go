package relation

import (
	"sort"

	"github.com/haesol/sajukit/internal/model"
)

// yukhapResults maps each six-combination pair to its resulting element.
// Keys are sorted pairs.
var yukhapResults = map[[2]model.Branch]model.Element{
	{0, 1}:  model.Earth, // 子丑
	{2, 11}: model.Wood,  // 寅亥
	{3, 10}: model.Fire,  // 卯戌
	{4, 9}:  model.Metal, // 辰酉
	{5, 8}:  model.Water, // 巳申
	{6, 7}:  model.Fire,  // 午未
}

// branchHyeongPairs is the punishment catalog: the two three-branch
// punishment groups taken pairwise, plus the mutual Ja-Myo pair.
var branchHyeongPairs = map[[2]model.Branch]bool{
	{2, 5}:  true, // 寅巳
	{5, 8}:  true, // 巳申
	{2, 8}:  true, // 寅申
	{1, 10}: true, // 丑戌
	{7, 10}: true, // 戌未
	{1, 7}:  true, // 丑未
	{0, 3}:  true, // 子卯
}

// branchPaPairs is the destruction catalog.
var branchPaPairs = map[[2]model.Branch]bool{
	{0, 9}:  true, // 子酉
	{1, 4}:  true, // 丑辰
	{2, 11}: true, // 寅亥
	{3, 6}:  true, // 卯午
	{5, 8}:  true, // 巳申
	{7, 10}: true, // 未戌
}

// branchHaePairs is the harm catalog.
var branchHaePairs = map[[2]model.Branch]bool{
	{0, 7}:  true, // 子未
	{1, 6}:  true, // 丑午
	{2, 5}:  true, // 寅巳
	{3, 4}:  true, // 卯辰
	{8, 11}: true, // 申亥
	{9, 10}: true, // 酉戌
}

func sortedBranchPair(a, b model.Branch) (model.Branch, model.Branch) {
	a = model.NormalizeBranch(int(a))
	b = model.NormalizeBranch(int(b))
	if a > b {
		a, b = b, a
	}
	return a, b
}

// IsBranchYukhap reports whether two branches form a six combination.
func IsBranchYukhap(a, b model.Branch) bool {
	lo, hi := sortedBranchPair(a, b)
	_, ok := yukhapResults[[2]model.Branch{lo, hi}]
	return ok
}

// IsBranchChung reports whether two branches clash (exactly six apart).
func IsBranchChung(a, b model.Branch) bool {
	lo, hi := sortedBranchPair(a, b)
	return int(hi)-int(lo) == 6
}

// BranchRelationsBetween returns every relation a single branch pair forms.
// A pair can carry more than one relation (In-Hae is both a combination and
// a destruction); a pair with no rule produces no hit.
func BranchRelationsBetween(a, b model.Branch) []model.BranchRelation {
	lo, hi := sortedBranchPair(a, b)
	if lo == hi {
		return nil
	}
	pair := [2]model.Branch{lo, hi}
	var out []model.BranchRelation
	if e, ok := yukhapResults[pair]; ok {
		el := e
		out = append(out, model.BranchRelation{Type: model.BranchYukhap, First: lo, Second: hi, ResultElement: &el})
	}
	if IsBranchChung(lo, hi) {
		out = append(out, model.BranchRelation{Type: model.BranchChung, First: lo, Second: hi})
	}
	if branchHyeongPairs[pair] {
		out = append(out, model.BranchRelation{Type: model.BranchHyeong, First: lo, Second: hi})
	}
	if branchPaPairs[pair] {
		out = append(out, model.BranchRelation{Type: model.BranchPa, First: lo, Second: hi})
	}
	if branchHaePairs[pair] {
		out = append(out, model.BranchRelation{Type: model.BranchHae, First: lo, Second: hi})
	}
	return out
}

var branchTypeRank = map[model.BranchRelationType]int{
	model.BranchYukhap: 0,
	model.BranchChung:  1,
	model.BranchHyeong: 2,
	model.BranchPa:     3,
	model.BranchHae:    4,
}

// DetectBranchRelations tests every unordered pair among the four branches
// with the same dedup-then-sort discipline as the stem detector.
func DetectBranchRelations(ps model.PillarSet) []model.BranchRelation {
	type key struct {
		t             model.BranchRelationType
		first, second model.Branch
	}
	seen := make(map[key]*model.BranchRelation)
	var order []key

	positions := model.AllPositions
	branches := ps.Branches()
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			for _, rel := range BranchRelationsBetween(branches[i], branches[j]) {
				k := key{rel.Type, rel.First, rel.Second}
				if existing, ok := seen[k]; ok {
					existing.Positions = mergePositions(existing.Positions, positions[i], positions[j])
					continue
				}
				r := rel
				r.Positions = mergePositions(nil, positions[i], positions[j])
				seen[k] = &r
				order = append(order, k)
			}
		}
	}

	out := make([]model.BranchRelation, 0, len(order))
	for _, k := range order {
		out = append(out, *seen[k])
	}
	sort.Slice(out, func(i, j int) bool {
		if branchTypeRank[out[i].Type] != branchTypeRank[out[j].Type] {
			return branchTypeRank[out[i].Type] < branchTypeRank[out[j].Type]
		}
		if out[i].First != out[j].First {
			return out[i].First < out[j].First
		}
		return out[i].Second < out[j].Second
	})
	return out
}

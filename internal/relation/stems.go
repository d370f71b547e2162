// Package relation detects pairwise combination and clash relations between
// chart positions. All detectors deduplicate by (type, sorted member pair)
// and emit a fixed, reproducible ordering.
package relation

import (
	"sort"

	"github.com/haesol/sajukit/internal/model"
)

// hapResults maps the lower member of each combination pair (stems exactly
// five apart) to the classical resulting element.
var hapResults = map[model.Stem]model.Element{
	0: model.Earth, // 甲己
	1: model.Metal, // 乙庚
	2: model.Water, // 丙辛
	3: model.Wood,  // 丁壬
	4: model.Fire,  // 戊癸
}

// stemChungPairs is the fixed clash catalog: the four classical oppositions
// plus the two secondary fire-metal clashes. Keys are sorted pairs.
var stemChungPairs = map[[2]model.Stem]bool{
	{0, 6}: true, // 甲庚
	{1, 7}: true, // 乙辛
	{2, 8}: true, // 丙壬
	{3, 9}: true, // 丁癸
	{2, 6}: true, // 丙庚
	{3, 7}: true, // 丁辛
}

func sortedStemPair(a, b model.Stem) (model.Stem, model.Stem) {
	a = model.NormalizeStem(int(a))
	b = model.NormalizeStem(int(b))
	if a > b {
		a, b = b, a
	}
	return a, b
}

// IsStemHap reports whether two stems form a combination (exactly five
// apart, mod 10).
func IsStemHap(a, b model.Stem) bool {
	lo, hi := sortedStemPair(a, b)
	return int(hi)-int(lo) == 5
}

// IsStemChung reports whether two stems form a clash. Symmetric in its
// arguments.
func IsStemChung(a, b model.Stem) bool {
	lo, hi := sortedStemPair(a, b)
	return stemChungPairs[[2]model.Stem{lo, hi}]
}

// HapResultElement returns the classical element a combination produces.
func HapResultElement(a, b model.Stem) (model.Element, bool) {
	if !IsStemHap(a, b) {
		return 0, false
	}
	lo, _ := sortedStemPair(a, b)
	e, ok := hapResults[lo]
	return e, ok
}

// StemRelationsBetween returns the relations a single stem pair forms, if
// any. A pair with no matching rule produces no hit.
func StemRelationsBetween(a, b model.Stem) []model.StemRelation {
	lo, hi := sortedStemPair(a, b)
	var out []model.StemRelation
	if IsStemHap(lo, hi) {
		rel := model.StemRelation{Type: model.StemHap, First: lo, Second: hi}
		if e, ok := hapResults[lo]; ok {
			el := e
			rel.ResultElement = &el
		}
		out = append(out, rel)
	}
	if IsStemChung(lo, hi) {
		out = append(out, model.StemRelation{Type: model.StemChung, First: lo, Second: hi})
	}
	return out
}

var stemTypeRank = map[model.StemRelationType]int{
	model.StemHap:   0,
	model.StemChung: 1,
}

// DetectStemRelations tests every unordered pair among the four visible
// stems. The result is deduplicated and sorted by (type rank, members), so
// it is invariant under input-order permutation.
func DetectStemRelations(ps model.PillarSet) []model.StemRelation {
	type key struct {
		t             model.StemRelationType
		first, second model.Stem
	}
	seen := make(map[key]*model.StemRelation)
	var order []key

	positions := model.AllPositions
	stems := ps.Stems()
	for i := 0; i < len(stems); i++ {
		for j := i + 1; j < len(stems); j++ {
			for _, rel := range StemRelationsBetween(stems[i], stems[j]) {
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

	out := make([]model.StemRelation, 0, len(order))
	for _, k := range order {
		out = append(out, *seen[k])
	}
	sort.Slice(out, func(i, j int) bool {
		if stemTypeRank[out[i].Type] != stemTypeRank[out[j].Type] {
			return stemTypeRank[out[i].Type] < stemTypeRank[out[j].Type]
		}
		if out[i].First != out[j].First {
			return out[i].First < out[j].First
		}
		return out[i].Second < out[j].Second
	})
	return out
}

// positionRank orders positions in chart order.
var positionRank = map[model.Position]int{
	model.PositionYear:  0,
	model.PositionMonth: 1,
	model.PositionDay:   2,
	model.PositionHour:  3,
}

func mergePositions(existing []model.Position, add ...model.Position) []model.Position {
	for _, p := range add {
		found := false
		for _, e := range existing {
			if e == p {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, p)
		}
	}
	sort.Slice(existing, func(i, j int) bool {
		return positionRank[existing[i]] < positionRank[existing[j]]
	})
	return existing
}

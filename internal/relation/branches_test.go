package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haesol/sajukit/internal/model"
)

func TestIsBranchYukhap(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Branch
		want bool
	}{
		{name: "ja chuk", a: 0, b: 1, want: true},
		{name: "in hae", a: 2, b: 11, want: true},
		{name: "o mi reversed", a: 7, b: 6, want: true},
		{name: "ja in", a: 0, b: 2, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBranchYukhap(tt.a, tt.b))
		})
	}
}

func TestIsBranchChung(t *testing.T) {
	// Every branch clashes with the one six positions away, and only that one.
	for a := 0; a < 12; a++ {
		for b := 0; b < 12; b++ {
			want := (a+6)%12 == b
			assert.Equal(t, want, IsBranchChung(model.Branch(a), model.Branch(b)), "chung(%d,%d)", a, b)
		}
	}
}

func TestBranchRelationsBetween(t *testing.T) {
	tests := []struct {
		name  string
		a, b  model.Branch
		types []model.BranchRelationType
	}{
		{
			name:  "in hae is both yukhap and pa",
			a:     2,
			b:     11,
			types: []model.BranchRelationType{model.BranchYukhap, model.BranchPa},
		},
		{
			name:  "sa shin is yukhap hyeong and pa",
			a:     5,
			b:     8,
			types: []model.BranchRelationType{model.BranchYukhap, model.BranchHyeong, model.BranchPa},
		},
		{
			name:  "ja myo is hyeong only",
			a:     0,
			b:     3,
			types: []model.BranchRelationType{model.BranchHyeong},
		},
		{
			name:  "ja mi is hae only",
			a:     0,
			b:     7,
			types: []model.BranchRelationType{model.BranchHae},
		},
		{
			name:  "ja o is chung",
			a:     0,
			b:     6,
			types: []model.BranchRelationType{model.BranchChung},
		},
		{
			name:  "equal branches form nothing",
			a:     4,
			b:     4,
			types: nil,
		},
		{
			name:  "unrelated pair",
			a:     0,
			b:     4,
			types: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rels := BranchRelationsBetween(tt.a, tt.b)
			got := make([]model.BranchRelationType, 0, len(rels))
			for _, r := range rels {
				got = append(got, r.Type)
			}
			if tt.types == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.types, got)
		})
	}
}

func TestBranchYukhapResultElements(t *testing.T) {
	tests := []struct {
		a, b model.Branch
		want model.Element
	}{
		{0, 1, model.Earth},
		{2, 11, model.Wood},
		{3, 10, model.Fire},
		{4, 9, model.Metal},
		{5, 8, model.Water},
		{6, 7, model.Fire},
	}

	for _, tt := range tests {
		rels := BranchRelationsBetween(tt.a, tt.b)
		require.NotEmpty(t, rels)
		require.Equal(t, model.BranchYukhap, rels[0].Type)
		require.NotNil(t, rels[0].ResultElement)
		assert.Equal(t, tt.want, *rels[0].ResultElement, "%s-%s", tt.a, tt.b)
	}
}

func TestDetectBranchRelations(t *testing.T) {
	// 子 寅 辰 午: only the 子午 clash.
	ps := model.PillarSet{
		Year:  model.NewPillar(0, 0),
		Month: model.NewPillar(2, 2),
		Day:   model.NewPillar(4, 4),
		Hour:  model.NewPillar(6, 6),
	}

	rels := DetectBranchRelations(ps)
	require.Len(t, rels, 1)
	assert.Equal(t, model.BranchChung, rels[0].Type)
	assert.Equal(t, model.Branch(0), rels[0].First)
	assert.Equal(t, model.Branch(6), rels[0].Second)
	assert.Equal(t, []model.Position{model.PositionYear, model.PositionHour}, rels[0].Positions)
}

func TestDetectBranchRelationsOrdering(t *testing.T) {
	// 子丑 yukhap, 子午 chung, 子卯 hyeong, 卯午 pa, 丑午 hae: one
	// relation of every type, emitted in rank order.
	ps := model.PillarSet{
		Year:  model.NewPillar(0, 0),
		Month: model.NewPillar(1, 1),
		Day:   model.NewPillar(2, 6),
		Hour:  model.NewPillar(3, 3),
	}

	rels := DetectBranchRelations(ps)
	require.NotEmpty(t, rels)
	assert.Equal(t, model.BranchYukhap, rels[0].Type)
	for i := 1; i < len(rels); i++ {
		assert.GreaterOrEqual(t,
			branchTypeRank[rels[i].Type], branchTypeRank[rels[i-1].Type],
			"relations must be sorted by type rank")
	}
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStem(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want Stem
	}{
		{name: "in range", in: 3, want: 3},
		{name: "wraps forward", in: 10, want: 0},
		{name: "wraps twice", in: 23, want: 3},
		{name: "negative wraps backward", in: -1, want: 9},
		{name: "large negative", in: -13, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStem(tt.in))
		})
	}
}

func TestNormalizeBranch(t *testing.T) {
	assert.Equal(t, Branch(0), NormalizeBranch(12))
	assert.Equal(t, Branch(11), NormalizeBranch(-1))
	assert.Equal(t, Branch(5), NormalizeBranch(17))
}

func TestStemProperties(t *testing.T) {
	tests := []struct {
		name     string
		stem     Stem
		element  Element
		polarity Polarity
		hanja    string
	}{
		{name: "gap", stem: 0, element: Wood, polarity: Yang, hanja: "甲"},
		{name: "eul", stem: 1, element: Wood, polarity: Yin, hanja: "乙"},
		{name: "byeong", stem: 2, element: Fire, polarity: Yang, hanja: "丙"},
		{name: "mu", stem: 4, element: Earth, polarity: Yang, hanja: "戊"},
		{name: "gyeong", stem: 6, element: Metal, polarity: Yang, hanja: "庚"},
		{name: "gye", stem: 9, element: Water, polarity: Yin, hanja: "癸"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.element, tt.stem.Element())
			assert.Equal(t, tt.polarity, tt.stem.Polarity())
			assert.Equal(t, tt.hanja, tt.stem.Hanja())
		})
	}
}

func TestBranchProperties(t *testing.T) {
	tests := []struct {
		name     string
		branch   Branch
		element  Element
		polarity Polarity
	}{
		{name: "ja is water", branch: 0, element: Water, polarity: Yang},
		{name: "chuk is earth", branch: 1, element: Earth, polarity: Yin},
		{name: "in is wood", branch: 2, element: Wood, polarity: Yang},
		{name: "o is fire", branch: 6, element: Fire, polarity: Yang},
		{name: "shin is metal", branch: 8, element: Metal, polarity: Yang},
		{name: "hae is water", branch: 11, element: Water, polarity: Yin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.element, tt.branch.Element())
			assert.Equal(t, tt.polarity, tt.branch.Polarity())
		})
	}
}

func TestPillarSetAccessors(t *testing.T) {
	ps := PillarSet{
		Year:  NewPillar(0, 0),
		Month: NewPillar(2, 2),
		Day:   NewPillar(4, 4),
		Hour:  NewPillar(6, 6),
	}

	assert.Equal(t, Stem(4), ps.DayMaster())
	assert.Equal(t, []Stem{0, 2, 4, 6}, ps.Stems())
	assert.Equal(t, []Branch{0, 2, 4, 6}, ps.Branches())
	assert.Equal(t, ps.Month, ps.Pillar(PositionMonth))
	assert.Equal(t, "甲子 丙寅 戊辰 庚午", ps.String())
}

func TestPillarSetNormalize(t *testing.T) {
	ps := PillarSet{
		Year:  Pillar{Stem: 10, Branch: 12},
		Month: Pillar{Stem: -1, Branch: -1},
		Day:   Pillar{Stem: 4, Branch: 4},
		Hour:  Pillar{Stem: 16, Branch: 18},
	}

	norm := ps.Normalize()
	assert.Equal(t, NewPillar(0, 0), norm.Year)
	assert.Equal(t, Pillar{Stem: 9, Branch: 11}, norm.Month)
	assert.Equal(t, Pillar{Stem: 4, Branch: 4}, norm.Day)
	assert.Equal(t, Pillar{Stem: 6, Branch: 6}, norm.Hour)
}

package model

import "fmt"

// Stem is one of the ten heavenly stems, indexed 0-9.
type Stem int

// Branch is one of the twelve earthly branches, indexed 0-11.
type Branch int

var stemNames = [...]string{"Gap", "Eul", "Byeong", "Jeong", "Mu", "Gi", "Gyeong", "Sin", "Im", "Gye"}
var stemHanja = [...]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var branchNames = [...]string{"Ja", "Chuk", "In", "Myo", "Jin", "Sa", "O", "Mi", "Shin", "Yu", "Sul", "Hae"}
var branchHanja = [...]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// Element order follows the fixed stem catalog: two stems per element.
var stemElements = [...]Element{Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water}

var branchElements = [...]Element{Water, Earth, Wood, Wood, Earth, Fire, Fire, Earth, Metal, Metal, Earth, Water}

// NormalizeStem wraps an arbitrary index into the 0-9 stem range.
// Out-of-range indices are normalized, never rejected.
func NormalizeStem(i int) Stem {
	return Stem(((i % 10) + 10) % 10)
}

// NormalizeBranch wraps an arbitrary index into the 0-11 branch range.
func NormalizeBranch(i int) Branch {
	return Branch(((i % 12) + 12) % 12)
}

// Element returns the stem's fixed element.
func (s Stem) Element() Element {
	return stemElements[NormalizeStem(int(s))]
}

// Polarity returns the stem's fixed polarity; even indices are Yang.
func (s Stem) Polarity() Polarity {
	if NormalizeStem(int(s))%2 == 0 {
		return Yang
	}
	return Yin
}

func (s Stem) String() string {
	return stemNames[NormalizeStem(int(s))]
}

// Hanja returns the stem's traditional character.
func (s Stem) Hanja() string {
	return stemHanja[NormalizeStem(int(s))]
}

// Element returns the branch's fixed element.
func (b Branch) Element() Element {
	return branchElements[NormalizeBranch(int(b))]
}

// Polarity returns the branch's fixed polarity; even indices are Yang.
func (b Branch) Polarity() Polarity {
	if NormalizeBranch(int(b))%2 == 0 {
		return Yang
	}
	return Yin
}

func (b Branch) String() string {
	return branchNames[NormalizeBranch(int(b))]
}

// Hanja returns the branch's traditional character.
func (b Branch) Hanja() string {
	return branchHanja[NormalizeBranch(int(b))]
}

// Position identifies one of the four chart pillars.
type Position string

// Pillar positions.
const (
	PositionYear  Position = "YEAR"
	PositionMonth Position = "MONTH"
	PositionDay   Position = "DAY"
	PositionHour  Position = "HOUR"
)

// AllPositions lists the four positions in chart order.
var AllPositions = []Position{PositionYear, PositionMonth, PositionDay, PositionHour}

// Pillar is one stem/branch pair of a chart.
type Pillar struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}

// NewPillar builds a pillar from raw indices, normalizing both.
func NewPillar(stem, branch int) Pillar {
	return Pillar{Stem: NormalizeStem(stem), Branch: NormalizeBranch(branch)}
}

func (p Pillar) String() string {
	return p.Stem.Hanja() + p.Branch.Hanja()
}

// PillarSet is a complete four-pillar chart.
type PillarSet struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
}

// DayMaster returns the day pillar's stem, the reference point for all
// relational scoring.
func (ps PillarSet) DayMaster() Stem {
	return ps.Day.Stem
}

// Pillar returns the pillar at the given position.
func (ps PillarSet) Pillar(pos Position) Pillar {
	switch pos {
	case PositionYear:
		return ps.Year
	case PositionMonth:
		return ps.Month
	case PositionDay:
		return ps.Day
	case PositionHour:
		return ps.Hour
	}
	return Pillar{}
}

// Stems returns the four visible stems in chart order.
func (ps PillarSet) Stems() []Stem {
	return []Stem{ps.Year.Stem, ps.Month.Stem, ps.Day.Stem, ps.Hour.Stem}
}

// Branches returns the four branches in chart order.
func (ps PillarSet) Branches() []Branch {
	return []Branch{ps.Year.Branch, ps.Month.Branch, ps.Day.Branch, ps.Hour.Branch}
}

// Normalize returns a copy of the set with every index wrapped into range.
func (ps PillarSet) Normalize() PillarSet {
	norm := func(p Pillar) Pillar {
		return Pillar{Stem: NormalizeStem(int(p.Stem)), Branch: NormalizeBranch(int(p.Branch))}
	}
	return PillarSet{
		Year:  norm(ps.Year),
		Month: norm(ps.Month),
		Day:   norm(ps.Day),
		Hour:  norm(ps.Hour),
	}
}

func (ps PillarSet) String() string {
	return fmt.Sprintf("%s %s %s %s", ps.Year, ps.Month, ps.Day, ps.Hour)
}

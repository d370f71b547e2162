package model

import "fmt"

// StrengthLevel is the day master's classified strength, drawn from a fixed
// ordered scale. Ordering is meaningful: higher values mean more support.
type StrengthLevel int

// Strength levels from weakest to strongest.
const (
	ExtremeWeak StrengthLevel = iota
	VeryWeak
	MildWeak
	Neutral
	MildStrong
	VeryStrong
	ExtremeStrong
)

var strengthLevelNames = [...]string{
	"ExtremeWeak", "VeryWeak", "MildWeak", "Neutral",
	"MildStrong", "VeryStrong", "ExtremeStrong",
}

var strengthLevelKorean = [...]string{
	"극신약", "신약", "중화신약", "중화",
	"중화신강", "신강", "극신강",
}

func (l StrengthLevel) String() string {
	if l < ExtremeWeak || l > ExtremeStrong {
		return fmt.Sprintf("StrengthLevel(%d)", int(l))
	}
	return strengthLevelNames[l]
}

// Korean returns the classical Korean label for the level.
func (l StrengthLevel) Korean() string {
	if l < ExtremeWeak || l > ExtremeStrong {
		return "?"
	}
	return strengthLevelKorean[l]
}

// strongByLevel is the fixed level-to-boolean mapping. The level is the
// source of truth; the boolean is never derived from the raw score.
var strongByLevel = map[StrengthLevel]bool{
	ExtremeWeak:   false,
	VeryWeak:      false,
	MildWeak:      false,
	Neutral:       false,
	MildStrong:    true,
	VeryStrong:    true,
	ExtremeStrong: true,
}

// IsStrong reports whether the level counts as strong.
func (l StrengthLevel) IsStrong() bool {
	return strongByLevel[l]
}

// StrengthResult holds the day-master strength classification and the three
// contributing support scores.
type StrengthResult struct {
	Level        StrengthLevel `json:"level"`
	Deukryeong   float64       `json:"deukryeong"`
	Deukji       float64       `json:"deukji"`
	Deukse       float64       `json:"deukse"`
	TotalSupport float64       `json:"total_support"`
	// TotalOppose is the complement of support against the maxima, floored
	// at 0.
	TotalOppose float64 `json:"total_oppose"`
}

// IsStrong reports whether the classified level counts as strong.
func (r StrengthResult) IsStrong() bool {
	return r.Level.IsStrong()
}

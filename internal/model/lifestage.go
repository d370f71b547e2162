package model

import "fmt"

// LifeStage is one of the twelve stages of the stem life cycle (십이운성).
type LifeStage int

// The twelve stages in cycle order, starting at birth.
const (
	StageJangsaeng LifeStage = iota // 장생, long life
	StageMokyok                     // 목욕, bath
	StageGwandae                    // 관대, cap and sash
	StageGeonrok                    // 건록, prosperity
	StageJewang                     // 제왕, peak
	StageSoe                        // 쇠, decline
	StageByeong                     // 병, sickness
	StageSa                         // 사, death
	StageMyo                        // 묘, tomb
	StageJeol                       // 절, severance
	StageTae                        // 태, conception
	StageYang                       // 양, nurture
)

var lifeStageNames = [...]string{
	"Jangsaeng", "Mokyok", "Gwandae", "Geonrok", "Jewang", "Soe",
	"Byeong", "Sa", "Myo", "Jeol", "Tae", "Yang",
}

var lifeStageKorean = [...]string{
	"장생", "목욕", "관대", "건록", "제왕", "쇠",
	"병", "사", "묘", "절", "태", "양",
}

func (s LifeStage) String() string {
	if s < StageJangsaeng || s > StageYang {
		return fmt.Sprintf("LifeStage(%d)", int(s))
	}
	return lifeStageNames[s]
}

// Korean returns the classical Korean label.
func (s LifeStage) Korean() string {
	if s < StageJangsaeng || s > StageYang {
		return "?"
	}
	return lifeStageKorean[s]
}

package model

import "fmt"

// TenGod categorizes a stem's relation to the Day Master via element
// generation/control and polarity parity.
type TenGod int

// The ten gods, grouped in classical pairs.
const (
	BiGyeon   TenGod = iota // peer, same polarity
	GeopJae                 // peer, opposite polarity
	SikSin                  // output, same polarity
	SangGwan                // output, opposite polarity
	PyeonJae                // wealth, same polarity
	JeongJae                // wealth, opposite polarity
	PyeonGwan               // officer, same polarity
	JeongGwan               // officer, opposite polarity
	PyeonIn                 // resource, same polarity
	JeongIn                 // resource, opposite polarity
)

// AllTenGods lists the ten gods in canonical order.
var AllTenGods = []TenGod{
	BiGyeon, GeopJae, SikSin, SangGwan, PyeonJae,
	JeongJae, PyeonGwan, JeongGwan, PyeonIn, JeongIn,
}

var tenGodNames = [...]string{
	"BiGyeon", "GeopJae", "SikSin", "SangGwan", "PyeonJae",
	"JeongJae", "PyeonGwan", "JeongGwan", "PyeonIn", "JeongIn",
}

var tenGodKorean = [...]string{
	"비견", "겁재", "식신", "상관", "편재",
	"정재", "편관", "정관", "편인", "정인",
}

func (t TenGod) String() string {
	if t < BiGyeon || t > JeongIn {
		return fmt.Sprintf("TenGod(%d)", int(t))
	}
	return tenGodNames[t]
}

// Korean returns the two-syllable Korean name.
func (t TenGod) Korean() string {
	if t < BiGyeon || t > JeongIn {
		return "?"
	}
	return tenGodKorean[t]
}

// TenGodClass groups the ten gods into the five classical classes.
type TenGodClass int

// The five ten-god classes.
const (
	ClassPeer     TenGodClass = iota // 비겁
	ClassOutput                      // 식상
	ClassWealth                      // 재성
	ClassOfficer                     // 관성
	ClassResource                    // 인성
)

var tenGodClassNames = [...]string{"Peer", "Output", "Wealth", "Officer", "Resource"}

func (c TenGodClass) String() string {
	if c < ClassPeer || c > ClassResource {
		return fmt.Sprintf("TenGodClass(%d)", int(c))
	}
	return tenGodClassNames[c]
}

// Class returns the ten god's class.
func (t TenGod) Class() TenGodClass {
	return TenGodClass(int(t) / 2)
}

// TenGodOf derives the ten god of a stem relative to the day master.
// The element relation picks the class; polarity parity picks the member.
func TenGodOf(dayMaster, other Stem) TenGod {
	dm := dayMaster.Element()
	var class TenGodClass
	switch other.Element() {
	case dm:
		class = ClassPeer
	case dm.Generates():
		class = ClassOutput
	case dm.Controls():
		class = ClassWealth
	case dm.ControlledBy():
		class = ClassOfficer
	case dm.GeneratedBy():
		class = ClassResource
	}
	samePolarity := dayMaster.Polarity() == other.Polarity()
	god := TenGod(int(class) * 2)
	if !samePolarity {
		god++
	}
	return god
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenGodOf(t *testing.T) {
	// Day master 甲 (yang Wood) throughout.
	dayMaster := Stem(0)

	tests := []struct {
		name  string
		other Stem
		want  TenGod
	}{
		{name: "same stem is bigyeon", other: 0, want: BiGyeon},
		{name: "yin wood is geopjae", other: 1, want: GeopJae},
		{name: "yang fire is siksin", other: 2, want: SikSin},
		{name: "yin fire is sanggwan", other: 3, want: SangGwan},
		{name: "yang earth is pyeonjae", other: 4, want: PyeonJae},
		{name: "yin earth is jeongjae", other: 5, want: JeongJae},
		{name: "yang metal is pyeongwan", other: 6, want: PyeonGwan},
		{name: "yin metal is jeonggwan", other: 7, want: JeongGwan},
		{name: "yang water is pyeonin", other: 8, want: PyeonIn},
		{name: "yin water is jeongin", other: 9, want: JeongIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TenGodOf(dayMaster, tt.other))
		})
	}
}

func TestTenGodOfYinDayMaster(t *testing.T) {
	// 乙 (yin Wood): parity flips the pair member relative to 甲.
	dayMaster := Stem(1)

	assert.Equal(t, BiGyeon, TenGodOf(dayMaster, 1))
	assert.Equal(t, GeopJae, TenGodOf(dayMaster, 0))
	assert.Equal(t, SikSin, TenGodOf(dayMaster, 3))
	assert.Equal(t, SangGwan, TenGodOf(dayMaster, 2))
	assert.Equal(t, JeongGwan, TenGodOf(dayMaster, 6))
}

func TestTenGodClass(t *testing.T) {
	assert.Equal(t, ClassPeer, BiGyeon.Class())
	assert.Equal(t, ClassPeer, GeopJae.Class())
	assert.Equal(t, ClassOutput, SangGwan.Class())
	assert.Equal(t, ClassWealth, PyeonJae.Class())
	assert.Equal(t, ClassOfficer, JeongGwan.Class())
	assert.Equal(t, ClassResource, JeongIn.Class())
}

func TestTenGodKorean(t *testing.T) {
	assert.Equal(t, "비견", BiGyeon.Korean())
	assert.Equal(t, "정인", JeongIn.Korean())
	assert.Equal(t, "?", TenGod(99).Korean())
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePillar(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Pillar
		wantErr bool
	}{
		{name: "hanja pair", in: "甲子", want: Pillar{Stem: 0, Branch: 0}},
		{name: "hanja pair with spaces", in: " 戊辰 ", want: Pillar{Stem: 4, Branch: 4}},
		{name: "index pair", in: "6:6", want: Pillar{Stem: 6, Branch: 6}},
		{name: "romanized pair", in: "Gap-Ja", want: Pillar{Stem: 0, Branch: 0}},
		{name: "romanized case insensitive", in: "gyeong-o", want: Pillar{Stem: 6, Branch: 6}},
		{name: "stem index out of range", in: "10:0", wantErr: true},
		{name: "branch index out of range", in: "0:12", wantErr: true},
		{name: "garbage", in: "xyz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "single character", in: "甲", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePillar(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStem(t *testing.T) {
	s, err := ParseStem("癸")
	require.NoError(t, err)
	assert.Equal(t, Stem(9), s)

	_, err = ParseStem("子")
	assert.Error(t, err, "branch characters are not stems")
}

func TestParseBranch(t *testing.T) {
	b, err := ParseBranch("亥")
	require.NoError(t, err)
	assert.Equal(t, Branch(11), b)

	b, err = ParseBranch("Myo")
	require.NoError(t, err)
	assert.Equal(t, Branch(3), b)
}

func TestParsePillarRoundTrip(t *testing.T) {
	for s := 0; s < 10; s++ {
		for b := 0; b < 12; b++ {
			p := NewPillar(s, b)
			got, err := ParsePillar(p.String())
			require.NoError(t, err, "pillar %s", p)
			assert.Equal(t, p, got)
		}
	}
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrengthLevelIsStrong(t *testing.T) {
	tests := []struct {
		name  string
		level StrengthLevel
		want  bool
	}{
		{name: "extreme weak", level: ExtremeWeak, want: false},
		{name: "mild weak", level: MildWeak, want: false},
		{name: "neutral counts as not strong", level: Neutral, want: false},
		{name: "mild strong", level: MildStrong, want: true},
		{name: "extreme strong", level: ExtremeStrong, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.IsStrong())
			assert.Equal(t, tt.want, StrengthResult{Level: tt.level}.IsStrong())
		})
	}
}

func TestStrengthLevelKorean(t *testing.T) {
	assert.Equal(t, "중화", Neutral.Korean())
	assert.NotEmpty(t, ExtremeStrong.Korean())
	assert.NotEmpty(t, ExtremeWeak.Korean())
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haesol/sajukit/internal/model"
)

func TestParseSaeun(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    model.LuckPillar
		wantErr bool
	}{
		{
			name: "hanja with year",
			raw:  "辛未@2031",
			want: model.LuckPillar{Pillar: model.NewPillar(7, 7), Scale: model.ScaleSaeun, Year: 2031},
		},
		{
			name: "hanja without year",
			raw:  "壬申",
			want: model.LuckPillar{Pillar: model.NewPillar(8, 8), Scale: model.ScaleSaeun},
		},
		{
			name: "index pair with year",
			raw:  "9:9@2033",
			want: model.LuckPillar{Pillar: model.NewPillar(9, 9), Scale: model.ScaleSaeun, Year: 2033},
		},
		{name: "bad pillar", raw: "xx@2031", wantErr: true},
		{name: "bad year", raw: "辛未@soon", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSaeun(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

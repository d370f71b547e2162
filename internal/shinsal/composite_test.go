package shinsal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haesol/sajukit/internal/model"
)

func TestCompositeDetectPair(t *testing.T) {
	ci := NewCompositeInterpreter()

	hits := []model.ShinsalHit{
		{Type: model.ShinsalYeokma, Position: model.PositionMonth},
		{Type: model.ShinsalDohwa, Position: model.PositionYear},
	}

	composites := ci.Detect(hits)
	require.Len(t, composites, 1)
	c := composites[0]
	assert.Equal(t, "도화역마", c.Name)
	assert.Equal(t, model.ShinsalYeokma, c.FirstType)
	assert.Equal(t, model.ShinsalDohwa, c.SecondType)
	assert.Equal(t, 12, c.Score)
	assert.False(t, c.SamePillar)
}

func TestCompositeProximityBonus(t *testing.T) {
	ci := NewCompositeInterpreter()

	hits := []model.ShinsalHit{
		{Type: model.ShinsalYeokma, Position: model.PositionDay},
		{Type: model.ShinsalDohwa, Position: model.PositionDay},
	}

	composites := ci.Detect(hits)
	require.Len(t, composites, 1)
	assert.Equal(t, 17, composites[0].Score)
	assert.True(t, composites[0].SamePillar)
}

func TestCompositeDetectMultiple(t *testing.T) {
	ci := NewCompositeInterpreter()

	hits := []model.ShinsalHit{
		{Type: model.ShinsalBaekho, Position: model.PositionYear},
		{Type: model.ShinsalGoegang, Position: model.PositionYear},
		{Type: model.ShinsalWonjin, Position: model.PositionMonth},
		{Type: model.ShinsalWonjin, Position: model.PositionDay},
		{Type: model.ShinsalGwimun, Position: model.PositionMonth},
		{Type: model.ShinsalGwimun, Position: model.PositionDay},
	}

	composites := ci.Detect(hits)
	require.Len(t, composites, 2)

	assert.Equal(t, "백호괴강", composites[0].Name)
	assert.Equal(t, 17, composites[0].Score)
	assert.True(t, composites[0].SamePillar)

	assert.Equal(t, "원진귀문", composites[1].Name)
	assert.Equal(t, 13, composites[1].Score)
	assert.Len(t, composites[1].FirstHits, 2)
	assert.Len(t, composites[1].SecondHits, 2)
}

func TestCompositeNeedsTwoHits(t *testing.T) {
	ci := NewCompositeInterpreter()

	assert.Nil(t, ci.Detect(nil))
	assert.Nil(t, ci.Detect([]model.ShinsalHit{
		{Type: model.ShinsalYeokma, Position: model.PositionDay},
	}))
}

func TestCompositeNoCatalogMatch(t *testing.T) {
	ci := NewCompositeInterpreter()

	hits := []model.ShinsalHit{
		{Type: model.ShinsalYeokma, Position: model.PositionMonth},
		{Type: model.ShinsalHwagae, Position: model.PositionDay},
	}
	assert.Empty(t, ci.Detect(hits))
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementCycles(t *testing.T) {
	tests := []struct {
		name      string
		element   Element
		generates Element
		controls  Element
	}{
		{name: "wood", element: Wood, generates: Fire, controls: Earth},
		{name: "fire", element: Fire, generates: Earth, controls: Metal},
		{name: "earth", element: Earth, generates: Metal, controls: Water},
		{name: "metal", element: Metal, generates: Water, controls: Wood},
		{name: "water", element: Water, generates: Wood, controls: Fire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.generates, tt.element.Generates())
			assert.Equal(t, tt.controls, tt.element.Controls())
		})
	}
}

func TestElementCycleInverses(t *testing.T) {
	for _, e := range AllElements {
		assert.Equal(t, e, e.Generates().GeneratedBy(), "%s generation round trip", e)
		assert.Equal(t, e, e.Controls().ControlledBy(), "%s control round trip", e)
	}
}

func TestElementGenerationCoversAllElements(t *testing.T) {
	seen := make(map[Element]bool)
	e := Wood
	for i := 0; i < len(AllElements); i++ {
		seen[e] = true
		e = e.Generates()
	}
	assert.Len(t, seen, 5, "generation cycle must visit every element")
	assert.Equal(t, Wood, e, "generation cycle must close")
}

func TestElementKorean(t *testing.T) {
	assert.Equal(t, "목", Wood.Korean())
	assert.Equal(t, "수", Water.Korean())
}

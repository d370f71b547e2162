// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// Element is one of the five elements of the traditional cycle.
type Element int

// The five elements in generation-cycle order.
const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// AllElements lists the five elements in canonical order.
var AllElements = []Element{Wood, Fire, Earth, Metal, Water}

var elementNames = [...]string{"Wood", "Fire", "Earth", "Metal", "Water"}
var elementKorean = [...]string{"목", "화", "토", "금", "수"}

func (e Element) String() string {
	if e < Wood || e > Water {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

// Korean returns the single-syllable Korean name of the element.
func (e Element) Korean() string {
	if e < Wood || e > Water {
		return "?"
	}
	return elementKorean[e]
}

// Generates returns the element this element generates (생).
func (e Element) Generates() Element {
	return Element((int(e) + 1) % 5)
}

// GeneratedBy returns the element that generates this element.
func (e Element) GeneratedBy() Element {
	return Element((int(e) + 4) % 5)
}

// Controls returns the element this element controls (극).
func (e Element) Controls() Element {
	return Element((int(e) + 2) % 5)
}

// ControlledBy returns the element that controls this element.
func (e Element) ControlledBy() Element {
	return Element((int(e) + 3) % 5)
}

// Polarity is the yin/yang of a stem or branch.
type Polarity int

// Polarity constants.
const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	if p == Yang {
		return "Yang"
	}
	return "Yin"
}

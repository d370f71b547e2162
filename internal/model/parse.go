package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseStem resolves a stem from its traditional character, romanized name,
// or numeric index.
func ParseStem(s string) (Stem, error) {
	s = strings.TrimSpace(s)
	for i := range stemHanja {
		if s == stemHanja[i] || strings.EqualFold(s, stemNames[i]) {
			return Stem(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 9 {
		return Stem(n), nil
	}
	return 0, fmt.Errorf("unknown stem %q", s)
}

// ParseBranch resolves a branch from its traditional character, romanized
// name, or numeric index.
func ParseBranch(s string) (Branch, error) {
	s = strings.TrimSpace(s)
	for i := range branchHanja {
		if s == branchHanja[i] || strings.EqualFold(s, branchNames[i]) {
			return Branch(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 11 {
		return Branch(n), nil
	}
	return 0, fmt.Errorf("unknown branch %q", s)
}

// ParsePillar resolves a stem/branch pair written as two traditional
// characters ("甲子"), a hyphenated romanized pair ("Gap-Ja"), or an index
// pair ("0:0").
func ParsePillar(s string) (Pillar, error) {
	s = strings.TrimSpace(s)

	var stemPart, branchPart string
	switch {
	case strings.Contains(s, ":"):
		parts := strings.SplitN(s, ":", 2)
		stemPart, branchPart = parts[0], parts[1]
	case strings.Contains(s, "-"):
		parts := strings.SplitN(s, "-", 2)
		stemPart, branchPart = parts[0], parts[1]
	default:
		runes := []rune(s)
		if len(runes) != 2 {
			return Pillar{}, fmt.Errorf("invalid pillar %q: want two characters, an index pair like 0:0, or a name pair like Gap-Ja", s)
		}
		stemPart, branchPart = string(runes[0]), string(runes[1])
	}

	stem, err := ParseStem(stemPart)
	if err != nil {
		return Pillar{}, fmt.Errorf("invalid pillar %q: %w", s, err)
	}
	branch, err := ParseBranch(branchPart)
	if err != nil {
		return Pillar{}, fmt.Errorf("invalid pillar %q: %w", s, err)
	}
	return Pillar{Stem: stem, Branch: branch}, nil
}

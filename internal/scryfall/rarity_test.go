package scryfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRarityCode(t *testing.T) {
	tests := []struct {
		rarity string
		want   string
	}{
		{"mythic", "M"},
		{"rare", "R"},
		{"uncommon", "U"},
		{"common", "C"},
		{"Rare", "R"},
		{"MYTHIC", "M"},
	}

	for _, tt := range tests {
		code, ok := RarityCode(tt.rarity)
		assert.True(t, ok, "rarity %q", tt.rarity)
		assert.Equal(t, tt.want, code, "rarity %q", tt.rarity)
	}
}

func TestRarityCodeUnknown(t *testing.T) {
	for _, rarity := range []string{"special", "bonus", "", "rare "} {
		code, ok := RarityCode(rarity)
		assert.False(t, ok, "rarity %q", rarity)
		assert.Empty(t, code, "rarity %q", rarity)
	}
}

func TestCardCode(t *testing.T) {
	code, ok := Card{Name: "Aang", Rarity: "mythic"}.Code()
	assert.True(t, ok)
	assert.Equal(t, "M", code)

	_, ok = Card{Name: "Cabbage Merchant", Rarity: "special"}.Code()
	assert.False(t, ok)
}

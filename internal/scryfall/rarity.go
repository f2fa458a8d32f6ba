package scryfall

import "strings"

// rarityCodes maps Scryfall rarity classifications to the single-letter
// codes written into the sheet.
var rarityCodes = map[string]string{
	"mythic":   "M",
	"rare":     "R",
	"uncommon": "U",
	"common":   "C",
}

// RarityCode translates a textual rarity into its single-letter code.
// Lookup is case-insensitive. Unrecognized rarities return ok=false;
// callers treat that the same as a card that was never found.
func RarityCode(rarity string) (string, bool) {
	code, ok := rarityCodes[strings.ToLower(rarity)]
	return code, ok
}

// Code returns the card's rarity code, if its rarity is one of the
// known classifications.
func (c Card) Code() (string, bool) {
	return RarityCode(c.Rarity)
}

package match

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// suffixPairs lists card-name suffix tokens that vendors write split
// ("V MAX", "Lv X") but the catalog spells as one token. Folding happens
// after special characters collapse to spaces, so "Charizard-VMAX" and
// "Charizard V-Max" normalize identically.
var suffixPairs = map[string]string{
	"v max":    "vmax",
	"v star":   "vstar",
	"lv x":     "lvx",
	"tag team": "tagteam",
}

// NormalizeName lowercases a card name, collapses special characters to
// spaces, and folds known suffix spellings to their canonical form.
func NormalizeName(name string) string {
	s := collapseSpecials(name)
	for split, folded := range suffixPairs {
		s = strings.ReplaceAll(s, split, folded)
	}
	return s
}

// NormalizeSetName lowercases a set name and collapses special characters
// to spaces.
func NormalizeSetName(set string) string {
	return collapseSpecials(set)
}

func collapseSpecials(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// similarity is a normalized Levenshtein similarity in [0,1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	dist := levenshtein.ComputeDistance(a, b)
	sim := 1 - float64(dist)/float64(longest)
	if sim < 0 {
		return 0
	}
	return sim
}

// tokensContained reports whether every significant word of the shorter
// name appears in the longer one. Single-character tokens are not
// significant.
func tokensContained(a, b string) bool {
	at := strings.Fields(a)
	bt := strings.Fields(b)
	if len(at) == 0 || len(bt) == 0 {
		return false
	}
	if len(bt) < len(at) {
		at, bt = bt, at
	}

	have := make(map[string]bool, len(bt))
	for _, t := range bt {
		have[t] = true
	}
	for _, t := range at {
		if len(t) < 2 {
			continue
		}
		if !have[t] {
			return false
		}
	}
	return true
}

// raritySynonymGroups collects rarity vocabulary that different vendors
// spell differently but mean the same tier.
var raritySynonymGroups = [][]string{
	{"common", "c"},
	{"uncommon", "uc", "u"},
	{"rare", "r"},
	{"rare holo", "holo rare", "holofoil rare", "holo"},
	{"reverse holo", "reverse holofoil", "reverse"},
	{"double rare", "rr"},
	{"ultra rare", "ultra", "ur", "hyper rare", "rainbow rare", "secret rare", "secret"},
	{"illustration rare", "ir", "alt art", "alternate art"},
	{"special illustration rare", "sir"},
	{"amazing rare", "amazing"},
	{"radiant rare", "radiant"},
	{"promo", "promotional", "black star promo"},
}

var rarityGroupIndex = buildRarityIndex()

func buildRarityIndex() map[string]int {
	idx := make(map[string]int)
	for i, group := range raritySynonymGroups {
		for _, r := range group {
			idx[r] = i
		}
	}
	return idx
}

// sameRarityGroup reports whether two rarity spellings belong to the same
// synonym group.
func sameRarityGroup(a, b string) bool {
	ia, oka := rarityGroupIndex[a]
	ib, okb := rarityGroupIndex[b]
	return oka && okb && ia == ib
}

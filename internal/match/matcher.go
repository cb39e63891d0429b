package match

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cardledger/server/internal/importer"
)

// FindBestMatch scores every candidate against the record and returns the
// single best match, or nil when nothing reaches cfg.MinScore. A nil
// result is the expected "no match" outcome, not an error.
func FindBestMatch(rec *importer.CanonicalRecord, candidates []Candidate, cfg Config) *Result {
	results := FindAllMatches(rec, candidates, cfg)
	if len(results) == 0 {
		return nil
	}
	return &results[0]
}

// FindAllMatches returns the ranked matches above cfg.MinScore, capped at
// cfg.MaxResults. Sorting is stable, so tied candidates keep discovery
// order; the tie-break is deterministic but otherwise arbitrary.
func FindAllMatches(rec *importer.CanonicalRecord, candidates []Candidate, cfg Config) []Result {
	var results []Result
	for _, cand := range candidates {
		score, breakdown := scoreCandidate(rec, cand)
		if score < cfg.MinScore {
			continue
		}
		if cfg.Strict && breakdown.NameScore == 0 {
			continue
		}
		results = append(results, Result{Candidate: cand, Score: score, Breakdown: breakdown})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if cfg.MaxResults > 0 && len(results) > cfg.MaxResults {
		results = results[:cfg.MaxResults]
	}
	return results
}

func scoreCandidate(rec *importer.CanonicalRecord, cand Candidate) (float64, Breakdown) {
	b := Breakdown{
		NameScore:   scoreName(rec.Name, cand.Name),
		SetScore:    scoreSet(rec.SetName, cand.SetName),
		NumberScore: scoreNumber(rec.NormalizedNumber, cand.Number),
		RarityScore: scoreRarity(rec.Rarity, cand.Rarity),
	}

	total := b.NameScore + b.SetScore + b.NumberScore + b.RarityScore

	switch {
	case b.NameScore > 0 && b.SetScore > 0 && b.NumberScore > 0:
		total += bonusNameSetNumber
		b.Bonuses = append(b.Bonuses, "name+set+number")
	case b.NameScore > 0 && b.NumberScore > 0:
		total += bonusNameNumber
		b.Bonuses = append(b.Bonuses, "name+number")
	case b.NameScore > 0 && b.SetScore > 0:
		total += bonusNameSet
		b.Bonuses = append(b.Bonuses, "name+set")
	}

	return total, b
}

func scoreName(imported, candidate string) float64 {
	a := NormalizeName(imported)
	c := NormalizeName(candidate)
	if a == "" || c == "" {
		return 0
	}

	switch {
	case a == c:
		return nameExactScore
	case strings.Contains(a, c) || strings.Contains(c, a):
		return nameContainsScore
	case similarity(a, c) >= nameFuzzyThreshold:
		return nameFuzzyScore
	case tokensContained(a, c):
		return nameTokenScore
	}
	return 0
}

func scoreSet(imported, candidate string) float64 {
	a := NormalizeSetName(imported)
	c := NormalizeSetName(candidate)
	if a == "" || c == "" {
		return 0
	}

	switch {
	case a == c:
		return setExactScore
	case strings.Contains(a, c) || strings.Contains(c, a):
		return setContainsScore
	case similarity(a, c) >= setFuzzyThreshold:
		return setFuzzyScore
	}
	return 0
}

var nonDigits = regexp.MustCompile(`\D`)

// scoreNumber compares card numbers after the shared normalization step.
// A numeric-only comparison scores slightly lower to tolerate leading
// zeros and alphanumeric prefixes ("004" vs "SWSH4").
func scoreNumber(imported, candidate string) float64 {
	a := importer.NormalizeCardNumber(imported)
	c := importer.NormalizeCardNumber(candidate)
	if a == "" || c == "" {
		return 0
	}

	if strings.EqualFold(a, c) {
		return numberExactScore
	}

	an, errA := strconv.Atoi(nonDigits.ReplaceAllString(a, ""))
	cn, errC := strconv.Atoi(nonDigits.ReplaceAllString(c, ""))
	if errA == nil && errC == nil && an == cn {
		return numberNumericScore
	}
	return 0
}

func scoreRarity(imported, candidate string) float64 {
	a := strings.ToLower(strings.TrimSpace(imported))
	c := strings.ToLower(strings.TrimSpace(candidate))
	if a == "" || c == "" {
		return 0
	}

	switch {
	case a == c:
		return rarityExactScore
	case strings.Contains(a, c) || strings.Contains(c, a):
		return raritySynonymScore
	case sameRarityGroup(a, c):
		return raritySynonymScore
	}
	return 0
}

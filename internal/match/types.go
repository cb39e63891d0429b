// Package match scores imported card records against reference-catalog
// candidates to find the authoritative catalog entry for each record.
//
// Matching is deterministic and rule-based: four independent signals
// (name, set, number, rarity) plus combination bonuses. There is no
// statistical model; two runs over the same inputs always agree.
package match

import "log/slog"

// Candidate is an externally supplied reference-catalog entry. The matcher
// only reads it; the catalog collaborator owns it.
type Candidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SetName  string `json:"setName"`
	Number   string `json:"number"`
	Rarity   string `json:"rarity,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Breakdown itemizes how a candidate's total score was built.
type Breakdown struct {
	NameScore   float64  `json:"nameScore"`
	SetScore    float64  `json:"setScore"`
	NumberScore float64  `json:"numberScore"`
	RarityScore float64  `json:"rarityScore"`
	Bonuses     []string `json:"bonuses,omitempty"`
}

// Result is one scored candidate. Ephemeral: computed per match call and
// never persisted.
type Result struct {
	Candidate Candidate `json:"candidate"`
	Score     float64   `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// Config holds the matching knobs. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// MinScore discards candidates scoring below it.
	MinScore float64 `json:"minScore"`
	// MaxResults caps how many ranked results FindAllMatches returns.
	MaxResults int `json:"maxResults"`
	// Strict additionally requires a nonzero name score.
	Strict bool `json:"strict"`
	// Concurrency bounds the batch-match worker pool.
	Concurrency int `json:"concurrency"`
	// Logger receives search-failure warnings during batch matching.
	// Nil falls back to the default slog logger.
	Logger *slog.Logger `json:"-"`
}

// DefaultConfig returns the standard matching configuration.
func DefaultConfig() Config {
	return Config{
		MinScore:    30,
		MaxResults:  5,
		Strict:      false,
		Concurrency: 4,
	}
}

// Signal scores. Exact beats containment beats fuzzy on every signal, and
// the bonuses reward agreement across unrelated signals: independent
// partial matches on name+set+number identify a card far more reliably
// than any single field.
const (
	nameExactScore     = 50.0
	nameContainsScore  = 35.0
	nameFuzzyScore     = 25.0
	nameTokenScore     = 15.0
	setExactScore      = 20.0
	setContainsScore   = 15.0
	setFuzzyScore      = 10.0
	numberExactScore   = 30.0
	numberNumericScore = 25.0
	rarityExactScore   = 10.0
	raritySynonymScore = 7.0
	bonusNameSetNumber = 25.0
	bonusNameNumber    = 15.0
	bonusNameSet       = 10.0
	nameFuzzyThreshold = 0.8
	setFuzzyThreshold  = 0.7
)

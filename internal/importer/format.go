package importer

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// FormatSignature is a heuristic fingerprint for a known vendor export.
// Matching is diagnostic only: the detected name labels the source for
// humans and never gates ingestion.
type FormatSignature struct {
	// Name is the human-readable label, e.g. "TCGplayer".
	Name string
	// Required headers must all be present (prefix-tolerant) for the
	// signature to be eligible.
	Required []string
	// Optional headers add to the score when present.
	Optional []string
}

// GenericFormat is the fallback label when no signature qualifies.
const GenericFormat = "Generic CSV"

var (
	formatRegistry   = make(map[string]FormatSignature)
	formatRegistryMu sync.RWMutex
)

// RegisterFormat adds a signature to the registry.
// Panics if a signature with the same name is already registered.
func RegisterFormat(sig FormatSignature) {
	formatRegistryMu.Lock()
	defer formatRegistryMu.Unlock()

	if _, exists := formatRegistry[sig.Name]; exists {
		panic(fmt.Sprintf("format already registered: %s", sig.Name))
	}
	formatRegistry[sig.Name] = sig
}

// Formats returns all registered signatures sorted by name.
func Formats() []FormatSignature {
	formatRegistryMu.RLock()
	defer formatRegistryMu.RUnlock()

	result := make([]FormatSignature, 0, len(formatRegistry))
	for _, sig := range formatRegistry {
		result = append(result, sig)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// IdentifyFormat scores every registered signature against the header list
// and returns the best eligible signature's name, or GenericFormat when
// none qualify. A signature scores 10 per required header and 3 per
// optional header, and is only eligible when all required headers are
// present.
func IdentifyFormat(headers []string) string {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	bestName := GenericFormat
	bestScore := 0

	for _, sig := range Formats() {
		score, eligible := scoreSignature(sig, normalized)
		if eligible && score > bestScore {
			bestScore = score
			bestName = sig.Name
		}
	}

	return bestName
}

func scoreSignature(sig FormatSignature, headers []string) (int, bool) {
	score := 0
	for _, req := range sig.Required {
		if !hasHeader(headers, req) {
			return 0, false
		}
		score += 10
	}
	for _, opt := range sig.Optional {
		if hasHeader(headers, opt) {
			score += 3
		}
	}
	return score, true
}

// hasHeader reports whether any actual header equals or starts with the
// signature header. Prefix tolerance absorbs suffixes like
// "Market Price As of 4/12/2025".
func hasHeader(headers []string, want string) bool {
	for _, h := range headers {
		if h == want || strings.HasPrefix(h, want) {
			return true
		}
	}
	return false
}

func init() {
	RegisterFormat(FormatSignature{
		Name:     "TCGplayer",
		Required: []string{"product name", "set"},
		Optional: []string{"product line", "number", "rarity", "condition", "tcg market price", "quantity"},
	})
	RegisterFormat(FormatSignature{
		Name:     "Cardmarket",
		Required: []string{"name", "expansion"},
		Optional: []string{"price trend", "avg. sell price", "language", "condition", "amount"},
	})
	RegisterFormat(FormatSignature{
		Name:     "eBay",
		Required: []string{"item title"},
		Optional: []string{"item number", "sold for", "custom label", "quantity"},
	})
	RegisterFormat(FormatSignature{
		Name:     "Collectr",
		Required: []string{"card name", "market value"},
		Optional: []string{"set", "grading", "purchase price", "quantity"},
	})
	RegisterFormat(FormatSignature{
		Name:     "PSA Vault",
		Required: []string{"cert number", "grade"},
		Optional: []string{"year", "brand", "subject", "variety"},
	})
}

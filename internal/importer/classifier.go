package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// maxDataSamples is how many non-empty values per column the data-driven
// tier inspects.
const maxDataSamples = 20

// dataMatchThreshold is the fraction of sampled values that must satisfy a
// type predicate for data-driven inference to assign the type.
const dataMatchThreshold = 0.7

// dataConfidence is the confidence assigned by data-driven inference.
const dataConfidence = 0.7

// Classify assigns a semantic type to every header, walking the priority
// tiers in order: exact dictionary hit, price-prefix pattern, fuzzy keyword
// match, data-driven inference over sampled values. Columns nothing claims
// come back as ColumnUnknown.
//
// Types are claimed left to right; when two columns compete for the same
// type, the higher-confidence one keeps it and the other is demoted to
// unknown with a warning naming both headers. The result is deterministic
// for a fixed column order.
func Classify(headers []string, rows []map[string]string) ([]ColumnMapping, []string) {
	mappings := make([]ColumnMapping, len(headers))
	claimed := make(map[ColumnType]int) // type -> index into mappings
	var warnings []string

	for i, header := range headers {
		m := classifyColumn(header, i, rows)

		if m.Type == ColumnUnknown {
			mappings[i] = m
			continue
		}

		if prev, ok := claimed[m.Type]; ok {
			if m.Confidence > mappings[prev].Confidence {
				warnings = append(warnings, fmt.Sprintf(
					"column %q replaces %q as %s (%.2f > %.2f)",
					header, mappings[prev].Header, m.Type,
					m.Confidence, mappings[prev].Confidence))
				mappings[prev].Type = ColumnUnknown
				mappings[prev].Confidence = 0
				mappings[prev].Method = MethodNone
				claimed[m.Type] = i
			} else {
				warnings = append(warnings, fmt.Sprintf(
					"column %q also looks like %s but %q already claimed it",
					header, m.Type, mappings[prev].Header))
				m.Type = ColumnUnknown
				m.Confidence = 0
				m.Method = MethodNone
			}
		} else {
			claimed[m.Type] = i
		}

		mappings[i] = m
	}

	return mappings, warnings
}

// Analyze classifies a parsed table and reports the detected source format.
// A missing name column is surfaced as a warning; the caller decides
// whether that is fatal.
func Analyze(table *RawTable) AnalysisResult {
	columns, warnings := Classify(table.Headers, table.Rows)

	result := AnalysisResult{
		Columns:        columns,
		DetectedFormat: IdentifyFormat(table.Headers),
		Warnings:       warnings,
	}

	if _, ok := result.Mapping(ColumnName); !ok {
		result.Warnings = append(result.Warnings,
			"no name column detected; records cannot be imported without one")
	}

	return result
}

func classifyColumn(header string, index int, rows []map[string]string) ColumnMapping {
	m := ColumnMapping{
		Header: header,
		Index:  index,
		Type:   ColumnUnknown,
		Method: MethodNone,
	}

	normalized := strings.ToLower(strings.TrimSpace(header))
	if normalized == "" {
		return m
	}

	// Tier 1: exact dictionary hit.
	if t, ok := headerDictionary[normalized]; ok {
		m.Type = t
		m.Confidence = 1.0
		m.Method = MethodExact
		return m
	}

	// Tier 2: known price-bearing prefix, e.g. "TCG Market Price As of 4/12".
	for _, p := range pricePrefixes {
		if strings.HasPrefix(normalized, p.prefix) {
			m.Type = p.typ
			m.Confidence = 0.95
			m.Method = MethodPattern
			return m
		}
	}

	// Tier 3: fuzzy keyword match over header tokens.
	if t, conf := fuzzyMatch(normalized); t != ColumnUnknown {
		m.Type = t
		m.Confidence = conf
		m.Method = MethodFuzzy
		return m
	}

	// Tier 4: infer from sampled column values.
	if t := inferFromData(sampleValues(rows, header)); t != ColumnUnknown {
		m.Type = t
		m.Confidence = dataConfidence
		m.Method = MethodData
	}

	return m
}

// fuzzyMatch tokenizes the header and checks each token for containment
// against the per-type keyword lists. A type qualifies when at least half
// the tokens hit its list; confidence is the type's base scaled by the
// matched fraction.
func fuzzyMatch(header string) (ColumnType, float64) {
	tokens := tokenizeHeader(header)
	if len(tokens) == 0 {
		return ColumnUnknown, 0
	}

	for _, spec := range keywordSpecs {
		matched := 0
		for _, tok := range tokens {
			if tokenMatchesAny(tok, spec.keywords) {
				matched++
			}
		}
		if matched*2 >= len(tokens) {
			fraction := float64(matched) / float64(len(tokens))
			return spec.typ, spec.base * fraction
		}
	}

	return ColumnUnknown, 0
}

var headerTokenSplit = regexp.MustCompile(`[\s_/-]+`)

func tokenizeHeader(header string) []string {
	var tokens []string
	for _, tok := range headerTokenSplit.Split(header, -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func tokenMatchesAny(token string, keywords []string) bool {
	for _, kw := range keywords {
		if token == kw || strings.Contains(token, kw) {
			return true
		}
	}
	return false
}

// sampleValues collects up to maxDataSamples non-empty values for a header.
func sampleValues(rows []map[string]string, header string) []string {
	var samples []string
	for _, row := range rows {
		v := strings.TrimSpace(row[header])
		if v == "" {
			continue
		}
		samples = append(samples, v)
		if len(samples) == maxDataSamples {
			break
		}
	}
	return samples
}

// Value-shape predicates for data-driven inference. The card-number pattern
// requires a distinctive shape (146/132, #4, SWSH001, sv-123); bare
// integers are left to the quantity predicate.
var (
	fractionNumberPattern = regexp.MustCompile(`^#?\d+[a-zA-Z]?/[a-zA-Z]*\d+$`)
	hashNumberPattern     = regexp.MustCompile(`^#\d+[a-zA-Z]?$`)
	prefixNumberPattern   = regexp.MustCompile(`^[a-zA-Z]{1,6}[- ]?\d+[a-zA-Z]?$`)
	priceValuePattern     = regexp.MustCompile(`^[$€£]?\s*\d{1,3}(,\d{3})*\.\d{1,4}$|^[$€£]\s*\d+(\.\d+)?$`)
)

func looksLikeCardNumber(v string) bool {
	return fractionNumberPattern.MatchString(v) ||
		hashNumberPattern.MatchString(v) ||
		prefixNumberPattern.MatchString(v)
}

func looksLikePrice(v string) bool {
	return priceValuePattern.MatchString(v)
}

func looksLikeQuantity(v string) bool {
	n, err := strconv.Atoi(v)
	return err == nil && n > 0 && n < 1000
}

func looksLikeURL(v string) bool {
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}

type dataPredicate struct {
	typ   ColumnType
	match func(string) bool
}

var dataPredicates = []dataPredicate{
	{ColumnCardNumber, looksLikeCardNumber},
	{ColumnMarketPrice, looksLikePrice},
	{ColumnQuantity, looksLikeQuantity},
	{ColumnCondition, func(v string) bool { return conditionVocabulary[strings.ToLower(v)] }},
	{ColumnGradingCompany, func(v string) bool { return gradingVocabulary[strings.ToLower(v)] }},
	{ColumnRarity, func(v string) bool { return rarityVocabulary[strings.ToLower(v)] }},
	{ColumnImageURL, looksLikeURL},
}

// inferFromData assigns a type when at least 70% of sampled values satisfy
// one predicate. Predicates run in a fixed order so ambiguous columns
// resolve deterministically.
func inferFromData(samples []string) ColumnType {
	if len(samples) == 0 {
		return ColumnUnknown
	}

	for _, p := range dataPredicates {
		matched := 0
		for _, v := range samples {
			if p.match(v) {
				matched++
			}
		}
		if float64(matched)/float64(len(samples)) >= dataMatchThreshold {
			return p.typ
		}
	}

	return ColumnUnknown
}

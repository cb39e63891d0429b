package importer

// normalize.go coerces raw row values into canonical record fields.
//
// These functions handle the messy reality of marketplace exports:
//   - Currency symbols and thousands separators in prices
//   - Decimal commas in European locales
//   - "0" and all-zero strings meaning "no card number"
//   - Combined grade tokens like "PSA 10" in a single column
//   - Excel formula prefixes and stray quotes (stripped by CleanCell)

import (
	"regexp"
	"strconv"
	"strings"
)

// gradingSynonyms folds grading company spellings and "not graded" values
// to a canonical form. The empty result string means raw.
var gradingSynonyms = map[string]string{
	"psa":                      "PSA",
	"bgs":                      "BGS",
	"beckett":                  "BGS",
	"beckett grading services": "BGS",
	"cgc":                      "CGC",
	"sgc":                      "SGC",
	"ace":                      "ACE",
	"ags":                      "AGS",
	"tag":                      "TAG",
	"raw":                      GradingRaw,
	"none":                     GradingRaw,
	"no":                       GradingRaw,
	"n/a":                      GradingRaw,
	"ungraded":                 GradingRaw,
	"not graded":               GradingRaw,
}

// combinedGradePattern matches tokens like "PSA 10" or "bgs 9.5" where one
// column carries both the company and the numeric grade.
var combinedGradePattern = regexp.MustCompile(`^([A-Za-z]{2,12})\s+(\d{1,2}(?:\.\d)?)$`)

// certNumberPattern matches the long all-digit certificate shape issued by
// PSA; its presence on an otherwise raw record implies the company.
var certNumberPattern = regexp.MustCompile(`^\d{7,10}$`)

// TransformRow converts one raw row into a canonical record using the
// detected column mappings. It never fails; missing or malformed values
// fall back to documented defaults and batch validation reports anything
// suspicious afterwards.
func TransformRow(row map[string]string, mappings []ColumnMapping) *CanonicalRecord {
	get := func(t ColumnType) string {
		for _, m := range mappings {
			if m.Type == t {
				return CleanCell(row[m.Header])
			}
		}
		return ""
	}

	number := normalizeRawNumber(get(ColumnCardNumber))
	rec := &CanonicalRecord{
		Name:             get(ColumnName),
		SetName:          get(ColumnSetName),
		CardNumber:       number,
		NormalizedNumber: NormalizeCardNumber(number),
		Quantity:         parseQuantity(get(ColumnQuantity)),
		Condition:        get(ColumnCondition),
		Rarity:           get(ColumnRarity),
		Language:         get(ColumnLanguage),
		Notes:            get(ColumnNotes),
		ImageURL:         get(ColumnImageURL),
		CertNumber:       get(ColumnCertNumber),
		Raw:              row,
	}

	if raw := get(ColumnPurchasePrice); raw == "" {
		// Absent purchase price defaults to 0; validation flags it as info.
		zero := 0.0
		rec.PurchasePrice = &zero
		rec.purchaseDefaulted = true
	} else {
		rec.PurchasePrice = parsePrice(raw)
	}
	rec.MarketPrice = parsePrice(get(ColumnMarketPrice))

	rec.GradingCompany = normalizeGradingCompany(get(ColumnGradingCompany))
	rec.Grade = get(ColumnGrade)

	// A combined "PSA 10" style grade column carries both company and
	// grade, and wins over whatever the company column said.
	if m := combinedGradePattern.FindStringSubmatch(rec.Grade); m != nil {
		if company, ok := gradingSynonyms[strings.ToLower(m[1])]; ok && company != GradingRaw {
			rec.GradingCompany = company
			rec.Grade = m[2]
		}
	}

	// Only PSA issues certificates of this shape; a cert number on an
	// otherwise raw record implies the company.
	if rec.GradingCompany == GradingRaw && certNumberPattern.MatchString(rec.CertNumber) {
		rec.GradingCompany = "PSA"
	}

	rec.Category = deriveCategory(get(ColumnCategory), rec.GradingCompany)

	return rec
}

// parseQuantity parses a quantity value, defaulting to 1 when missing,
// non-positive, or unparsable.
func parseQuantity(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// parsePrice parses a currency amount, stripping symbols, separators, and
// whitespace. Returns nil for unparsable or negative values so absent and
// invalid prices never masquerade as zero.
func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, sym := range []string{"$", "€", "£", "¥", "US", "EUR", "USD"} {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.TrimSpace(s)

	// Decimal comma: "12,50" but not "1,250".
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		if idx := strings.LastIndex(s, ","); len(s)-idx-1 == 2 {
			s = s[:idx] + "." + s[idx+1:]
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return nil
	}
	return &f
}

// normalizeRawNumber maps the "not applicable" sentinels several vendors
// emit ("", "0", "0.0000") to an empty number.
func normalizeRawNumber(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" || isAllZeroDecimal(s) {
		return ""
	}
	return s
}

func isAllZeroDecimal(s string) bool {
	seenDigit := false
	for _, r := range s {
		switch {
		case r == '0':
			seenDigit = true
		case r == '.':
		default:
			return false
		}
	}
	return seenDigit
}

var (
	numberFractionPattern = regexp.MustCompile(`^(\d+[a-zA-Z]?)/\d+$`)
	prefixFractionPattern = regexp.MustCompile(`^([a-zA-Z]+\d+[a-zA-Z]?)/[a-zA-Z]+\d+[a-zA-Z]?$`)
	letterPrefixPattern   = regexp.MustCompile(`^[a-zA-Z]+\d+[a-zA-Z]?$`)
)

// NormalizeCardNumber derives the canonical short form of a card number:
// "146/132" keeps the numerator, "SWSH001/SWSH073" keeps the first segment
// upper-cased, a leading "#" is stripped, "sv146" upper-cases, and a plain
// integer passes through unchanged.
func NormalizeCardNumber(s string) string {
	s = normalizeRawNumber(s)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "#")

	if m := numberFractionPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := prefixFractionPattern.FindStringSubmatch(s); m != nil {
		return strings.ToUpper(m[1])
	}
	if letterPrefixPattern.MatchString(s) {
		return strings.ToUpper(s)
	}
	return s
}

// normalizeGradingCompany folds a grading company value through the
// synonym table; empty and "not graded" synonyms become the raw sentinel.
func normalizeGradingCompany(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return GradingRaw
	}
	if canonical, ok := gradingSynonyms[strings.ToLower(s)]; ok {
		return canonical
	}
	return s
}

// deriveCategory picks the record category: an explicit value wins, a
// non-raw grading company implies graded, everything else is raw.
func deriveCategory(explicit, gradingCompany string) string {
	switch v := strings.ToLower(strings.TrimSpace(explicit)); {
	case strings.Contains(v, "sealed"):
		return CategorySealed
	case strings.Contains(v, "graded"):
		return CategoryGraded
	case v == "raw" || v == "single" || v == "singles":
		return CategoryRaw
	}
	if gradingCompany != GradingRaw {
		return CategoryGraded
	}
	return CategoryRaw
}

package importer

import (
	"fmt"
	"strings"
)

// HighValueThreshold is the price above which a row is flagged as a
// probable data-entry error. Flagged rows are never auto-corrected.
var HighValueThreshold = 50000.0

// Warning type values emitted by ValidateBatch.
const (
	WarnMissingName       = "missing_name"
	WarnMissingSet        = "missing_set"
	WarnDuplicateInBatch  = "duplicate_in_batch"
	WarnDuplicateExisting = "duplicate_existing"
	WarnNoPriceInfo       = "no_price_info"
	WarnPriceDefaulted    = "purchase_price_defaulted"
	WarnHighValue         = "high_value"
)

// ValidateBatch inspects a normalized batch as a whole and returns every
// finding. Rows are numbered from 1 in batch order. Only missing-name
// findings are errors; everything else is advisory.
//
// existingKeys, when supplied by the caller, is the set of identity keys
// (see CanonicalRecord.IdentityKey) already present in inventory; matches
// against it are flagged as warnings rather than blocked.
func ValidateBatch(records []*CanonicalRecord, existingKeys map[string]bool) []ValidationWarning {
	var warnings []ValidationWarning
	seen := make(map[string]int) // identity key -> first row number

	for i, rec := range records {
		row := i + 1

		if strings.TrimSpace(rec.Name) == "" {
			warnings = append(warnings, ValidationWarning{
				Type:     WarnMissingName,
				Row:      row,
				Message:  "row has no card name and cannot be imported",
				Severity: SeverityError,
			})
			continue
		}

		if strings.TrimSpace(rec.SetName) == "" {
			warnings = append(warnings, ValidationWarning{
				Type:     WarnMissingSet,
				Row:      row,
				Message:  fmt.Sprintf("%q has no set name; matching accuracy will be reduced", rec.Name),
				Severity: SeverityInfo,
			})
		}

		key := rec.IdentityKey()
		if first, ok := seen[key]; ok {
			warnings = append(warnings, ValidationWarning{
				Type:     WarnDuplicateInBatch,
				Row:      row,
				Message:  fmt.Sprintf("%q duplicates row %d in this file", rec.Name, first),
				Severity: SeverityInfo,
			})
		} else {
			seen[key] = row
		}

		if existingKeys != nil && existingKeys[key] {
			warnings = append(warnings, ValidationWarning{
				Type:     WarnDuplicateExisting,
				Row:      row,
				Message:  fmt.Sprintf("%q already exists in inventory", rec.Name),
				Severity: SeverityWarning,
			})
		}

		if rec.purchaseDefaulted {
			warnings = append(warnings, ValidationWarning{
				Type:     WarnPriceDefaulted,
				Row:      row,
				Message:  fmt.Sprintf("%q has no purchase price; defaulted to 0", rec.Name),
				Severity: SeverityInfo,
			})
		}

		if !hasPriceInfo(rec) {
			warnings = append(warnings, ValidationWarning{
				Type:     WarnNoPriceInfo,
				Row:      row,
				Message:  fmt.Sprintf("%q has no purchase or market price", rec.Name),
				Severity: SeverityInfo,
			})
		}

		if price := maxPrice(rec); price > HighValueThreshold {
			warnings = append(warnings, ValidationWarning{
				Type:     WarnHighValue,
				Row:      row,
				Message:  fmt.Sprintf("%q priced at %.2f exceeds %.0f; verify this is not a data-entry error", rec.Name, price, HighValueThreshold),
				Severity: SeverityWarning,
			})
		}
	}

	return warnings
}

// ValidRecords filters out rows that ValidateBatch flagged with an error.
func ValidRecords(records []*CanonicalRecord, warnings []ValidationWarning) []*CanonicalRecord {
	blocked := make(map[int]bool)
	for _, w := range warnings {
		if w.Severity == SeverityError {
			blocked[w.Row] = true
		}
	}

	valid := make([]*CanonicalRecord, 0, len(records))
	for i, rec := range records {
		if !blocked[i+1] {
			valid = append(valid, rec)
		}
	}
	return valid
}

func identityKey(name, set, number string) string {
	parts := []string{name, set, number}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}

func hasPriceInfo(rec *CanonicalRecord) bool {
	if rec.MarketPrice != nil && *rec.MarketPrice > 0 {
		return true
	}
	return rec.PurchasePrice != nil && *rec.PurchasePrice > 0
}

func maxPrice(rec *CanonicalRecord) float64 {
	var max float64
	if rec.PurchasePrice != nil && *rec.PurchasePrice > max {
		max = *rec.PurchasePrice
	}
	if rec.MarketPrice != nil && *rec.MarketPrice > max {
		max = *rec.MarketPrice
	}
	return max
}

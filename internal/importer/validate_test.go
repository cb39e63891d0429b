package importer

import "testing"

func rec(name, set, number string) *CanonicalRecord {
	return &CanonicalRecord{
		Name:             name,
		SetName:          set,
		NormalizedNumber: number,
		Quantity:         1,
		GradingCompany:   GradingRaw,
		Category:         CategoryRaw,
		MarketPrice:      ptr(10.0),
	}
}

func findWarning(warnings []ValidationWarning, typ string) (ValidationWarning, bool) {
	for _, w := range warnings {
		if w.Type == typ {
			return w, true
		}
	}
	return ValidationWarning{}, false
}

func TestValidateBatch_MissingName(t *testing.T) {
	records := []*CanonicalRecord{rec("", "Base Set", "4")}
	warnings := ValidateBatch(records, nil)

	w, ok := findWarning(warnings, WarnMissingName)
	if !ok {
		t.Fatal("expected a missing-name warning")
	}
	if w.Severity != SeverityError {
		t.Errorf("severity = %s, want error", w.Severity)
	}
	if w.Row != 1 {
		t.Errorf("row = %d, want 1", w.Row)
	}

	// A nameless row produces no further findings.
	if len(warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(warnings))
	}
}

func TestValidateBatch_MissingSet(t *testing.T) {
	warnings := ValidateBatch([]*CanonicalRecord{rec("Charizard", "", "4")}, nil)

	w, ok := findWarning(warnings, WarnMissingSet)
	if !ok {
		t.Fatal("expected a missing-set warning")
	}
	if w.Severity != SeverityInfo {
		t.Errorf("severity = %s, want info", w.Severity)
	}
}

func TestValidateBatch_DuplicateInBatch(t *testing.T) {
	records := []*CanonicalRecord{
		rec("Charizard", "Base Set", "4"),
		rec("charizard", "base set", "4"), // identity keys are case-insensitive
	}
	warnings := ValidateBatch(records, nil)

	w, ok := findWarning(warnings, WarnDuplicateInBatch)
	if !ok {
		t.Fatal("expected a duplicate-in-batch warning")
	}
	if w.Severity != SeverityInfo {
		t.Errorf("severity = %s, want info", w.Severity)
	}
	if w.Row != 2 {
		t.Errorf("row = %d, want 2", w.Row)
	}
}

func TestValidateBatch_DuplicateExisting(t *testing.T) {
	r := rec("Charizard", "Base Set", "4")
	existing := map[string]bool{r.IdentityKey(): true}

	warnings := ValidateBatch([]*CanonicalRecord{r}, existing)

	w, ok := findWarning(warnings, WarnDuplicateExisting)
	if !ok {
		t.Fatal("expected a duplicate-existing warning")
	}
	if w.Severity != SeverityWarning {
		t.Errorf("severity = %s, want warning", w.Severity)
	}
}

func TestValidateBatch_NoPriceInfo(t *testing.T) {
	r := rec("Charizard", "Base Set", "4")
	r.MarketPrice = nil
	zero := 0.0
	r.PurchasePrice = &zero

	warnings := ValidateBatch([]*CanonicalRecord{r}, nil)

	if _, ok := findWarning(warnings, WarnNoPriceInfo); !ok {
		t.Error("expected a no-price-info warning")
	}
}

func TestValidateBatch_DefaultedPurchasePrice(t *testing.T) {
	mappings := []ColumnMapping{
		{Header: "Name", Type: ColumnName},
		{Header: "Set", Type: ColumnSetName},
		{Header: "Market Price", Type: ColumnMarketPrice},
	}
	r := TransformRow(map[string]string{
		"Name":         "Charizard",
		"Set":          "Base Set",
		"Market Price": "100.00",
	}, mappings)

	warnings := ValidateBatch([]*CanonicalRecord{r}, nil)

	w, ok := findWarning(warnings, WarnPriceDefaulted)
	if !ok {
		t.Fatal("expected a defaulted-purchase-price warning")
	}
	if w.Severity != SeverityInfo {
		t.Errorf("severity = %s, want info", w.Severity)
	}
	// The market price satisfies the no-price check.
	if _, ok := findWarning(warnings, WarnNoPriceInfo); ok {
		t.Error("unexpected no-price-info warning")
	}
}

func TestValidateBatch_ExplicitZeroPriceNotDefaulted(t *testing.T) {
	mappings := []ColumnMapping{
		{Header: "Name", Type: ColumnName},
		{Header: "Cost Paid", Type: ColumnPurchasePrice},
		{Header: "Market Price", Type: ColumnMarketPrice},
	}
	r := TransformRow(map[string]string{
		"Name":         "Charizard",
		"Cost Paid":    "0",
		"Market Price": "100.00",
	}, mappings)

	warnings := ValidateBatch([]*CanonicalRecord{r}, nil)

	if _, ok := findWarning(warnings, WarnPriceDefaulted); ok {
		t.Error("explicit zero purchase price should not be flagged as defaulted")
	}
}

func TestValidateBatch_HighValue(t *testing.T) {
	r := rec("Pikachu Illustrator", "Promo", "")
	r.MarketPrice = ptr(4000000.0)

	warnings := ValidateBatch([]*CanonicalRecord{r}, nil)

	w, ok := findWarning(warnings, WarnHighValue)
	if !ok {
		t.Fatal("expected a high-value warning")
	}
	if w.Severity != SeverityWarning {
		t.Errorf("severity = %s, want warning", w.Severity)
	}
}

func TestValidateBatch_CleanRecordPasses(t *testing.T) {
	warnings := ValidateBatch([]*CanonicalRecord{rec("Charizard", "Base Set", "4")}, nil)
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestValidRecords(t *testing.T) {
	records := []*CanonicalRecord{
		rec("Charizard", "Base Set", "4"),
		rec("", "Base Set", "5"),
		rec("Blastoise", "Base Set", "2"),
	}
	warnings := ValidateBatch(records, nil)
	valid := ValidRecords(records, warnings)

	if len(valid) != 2 {
		t.Fatalf("valid = %d, want 2", len(valid))
	}
	if valid[0].Name != "Charizard" || valid[1].Name != "Blastoise" {
		t.Errorf("unexpected valid records: %v, %v", valid[0].Name, valid[1].Name)
	}
}

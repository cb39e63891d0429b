package importer

import "testing"

func TestClassifyColumn_Tiers(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		rows       []map[string]string
		wantType   ColumnType
		wantMethod DetectionMethod
		minConf    float64
	}{
		{
			name:       "exact dictionary hit",
			header:     "Product Name",
			wantType:   ColumnName,
			wantMethod: MethodExact,
			minConf:    1.0,
		},
		{
			name:       "exact hit is case insensitive",
			header:     "CARD NAME",
			wantType:   ColumnName,
			wantMethod: MethodExact,
			minConf:    1.0,
		},
		{
			name:       "price prefix with date suffix",
			header:     "TCG Market Price As of 4/12/2025",
			wantType:   ColumnMarketPrice,
			wantMethod: MethodPattern,
			minConf:    0.95,
		},
		{
			name:       "fuzzy keyword match",
			header:     "Avg Cost Paid",
			wantType:   ColumnPurchasePrice,
			wantMethod: MethodFuzzy,
			minConf:    0.5,
		},
		{
			name:   "data inference on card numbers",
			header: "Misc",
			rows: []map[string]string{
				{"Misc": "4/102"},
				{"Misc": "2/102"},
				{"Misc": "58/102"},
			},
			wantType:   ColumnCardNumber,
			wantMethod: MethodData,
			minConf:    0.7,
		},
		{
			name:   "data inference on URLs",
			header: "Misc",
			rows: []map[string]string{
				{"Misc": "https://example.com/a.png"},
				{"Misc": "https://example.com/b.png"},
			},
			wantType:   ColumnImageURL,
			wantMethod: MethodData,
			minConf:    0.7,
		},
		{
			name:       "nothing matches",
			header:     "xyzzy",
			wantType:   ColumnUnknown,
			wantMethod: MethodNone,
		},
		{
			name:       "empty header",
			header:     "",
			wantType:   ColumnUnknown,
			wantMethod: MethodNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := classifyColumn(tt.header, 0, tt.rows)
			if m.Type != tt.wantType {
				t.Fatalf("type = %s, want %s", m.Type, tt.wantType)
			}
			if m.Method != tt.wantMethod {
				t.Errorf("method = %s, want %s", m.Method, tt.wantMethod)
			}
			if m.Confidence < tt.minConf {
				t.Errorf("confidence = %.2f, want >= %.2f", m.Confidence, tt.minConf)
			}
		})
	}
}

func TestClassify_ConflictKeepsFirstOnTie(t *testing.T) {
	headers := []string{"Product Name", "Name"}
	mappings, warnings := Classify(headers, nil)

	if mappings[0].Type != ColumnName {
		t.Errorf("first column type = %s, want %s", mappings[0].Type, ColumnName)
	}
	if mappings[1].Type != ColumnUnknown {
		t.Errorf("second column type = %s, want %s", mappings[1].Type, ColumnUnknown)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(warnings))
	}
}

func TestClassify_HigherConfidenceSteals(t *testing.T) {
	// "Pokemon Title" only matches the fuzzy tier; the exact "Name" hit
	// arriving later takes the type and demotes the earlier claim.
	headers := []string{"Pokemon Title", "Name"}
	mappings, warnings := Classify(headers, nil)

	if mappings[0].Type != ColumnUnknown {
		t.Errorf("first column type = %s, want %s", mappings[0].Type, ColumnUnknown)
	}
	if mappings[0].Method != MethodNone {
		t.Errorf("demoted column method = %s, want %s", mappings[0].Method, MethodNone)
	}
	if mappings[1].Type != ColumnName {
		t.Errorf("second column type = %s, want %s", mappings[1].Type, ColumnName)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(warnings))
	}
}

func TestClassify_OneClaimPerType(t *testing.T) {
	headers := []string{"Name", "Card Name", "Set", "Expansion", "Price", "Market Value"}
	mappings, _ := Classify(headers, nil)

	seen := make(map[ColumnType]int)
	for _, m := range mappings {
		if m.Type == ColumnUnknown {
			continue
		}
		seen[m.Type]++
	}
	for typ, count := range seen {
		if count > 1 {
			t.Errorf("type %s claimed by %d columns, want at most 1", typ, count)
		}
	}
}

func TestAnalyze_WarnsWithoutNameColumn(t *testing.T) {
	table := &RawTable{
		Headers: []string{"Set", "Quantity"},
		Rows:    []map[string]string{{"Set": "Base Set", "Quantity": "2"}},
	}
	result := Analyze(table)

	if _, ok := result.Mapping(ColumnName); ok {
		t.Fatal("unexpected name mapping")
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning about the missing name column")
	}
}

func TestAnalyze_DetectsFormat(t *testing.T) {
	table := &RawTable{
		Headers: []string{"Product Name", "Set", "Number", "Condition", "TCG Market Price", "Quantity"},
	}
	result := Analyze(table)

	if result.DetectedFormat != "TCGplayer" {
		t.Errorf("format = %q, want TCGplayer", result.DetectedFormat)
	}
}

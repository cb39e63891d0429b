package importer

import "testing"

func TestNormalizeCardNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"146/132", "146"},
		{"4/102", "4"},
		{"20a/130", "20a"},
		{"SWSH001/SWSH073", "SWSH001"},
		{"swsh001/swsh073", "SWSH001"},
		{"#146", "146"},
		{"#4", "4"},
		{"sv146", "SV146"},
		{"TG12", "TG12"},
		{"146", "146"},
		{"", ""},
		{"0", ""},
		{"0.0000", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCardNumber(tt.in); got != tt.want {
			t.Errorf("NormalizeCardNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
		{"12", 12},
		{"1,000", 1000},
		{" 3 ", 3},
	}

	for _, tt := range tests {
		if got := parseQuantity(tt.in); got != tt.want {
			t.Errorf("parseQuantity(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"", nil},
		{"$412.50", ptr(412.50)},
		{"€12,50", ptr(12.50)},
		{"1,250.00", ptr(1250.00)},
		{"£5", ptr(5.0)},
		{"free", nil},
		{"-10", nil},
		{"0", ptr(0.0)},
	}

	for _, tt := range tests {
		got := parsePrice(tt.in)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("parsePrice(%q) = %v, want nil", tt.in, *got)
		case tt.want != nil && got == nil:
			t.Errorf("parsePrice(%q) = nil, want %v", tt.in, *tt.want)
		case tt.want != nil && got != nil && *got != *tt.want:
			t.Errorf("parsePrice(%q) = %v, want %v", tt.in, *got, *tt.want)
		}
	}
}

func ptr(f float64) *float64 { return &f }

func TestNormalizeGradingCompany(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", GradingRaw},
		{"psa", "PSA"},
		{"PSA", "PSA"},
		{"Beckett", "BGS"},
		{"raw", GradingRaw},
		{"Ungraded", GradingRaw},
		{"N/A", GradingRaw},
		{"SomeNewGrader", "SomeNewGrader"},
	}

	for _, tt := range tests {
		if got := normalizeGradingCompany(tt.in); got != tt.want {
			t.Errorf("normalizeGradingCompany(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTransformRow(t *testing.T) {
	mappings := []ColumnMapping{
		{Header: "Product Name", Type: ColumnName},
		{Header: "Set", Type: ColumnSetName},
		{Header: "Number", Type: ColumnCardNumber},
		{Header: "Qty", Type: ColumnQuantity},
		{Header: "Paid", Type: ColumnPurchasePrice},
		{Header: "Market", Type: ColumnMarketPrice},
		{Header: "Grade", Type: ColumnGrade},
		{Header: "Cert", Type: ColumnCertNumber},
	}

	t.Run("full row", func(t *testing.T) {
		rec := TransformRow(map[string]string{
			"Product Name": "Charizard",
			"Set":          "Base Set",
			"Number":       "4/102",
			"Qty":          "2",
			"Paid":         "$500.00",
			"Market":       "$1,200.00",
		}, mappings)

		if rec.Name != "Charizard" {
			t.Errorf("Name = %q", rec.Name)
		}
		if rec.NormalizedNumber != "4" {
			t.Errorf("NormalizedNumber = %q, want 4", rec.NormalizedNumber)
		}
		if rec.Quantity != 2 {
			t.Errorf("Quantity = %d, want 2", rec.Quantity)
		}
		if rec.PurchasePrice == nil || *rec.PurchasePrice != 500 {
			t.Errorf("PurchasePrice = %v, want 500", rec.PurchasePrice)
		}
		if rec.MarketPrice == nil || *rec.MarketPrice != 1200 {
			t.Errorf("MarketPrice = %v, want 1200", rec.MarketPrice)
		}
		if rec.GradingCompany != GradingRaw {
			t.Errorf("GradingCompany = %q, want raw", rec.GradingCompany)
		}
		if rec.Category != CategoryRaw {
			t.Errorf("Category = %q, want raw", rec.Category)
		}
	})

	t.Run("absent purchase price defaults to zero", func(t *testing.T) {
		rec := TransformRow(map[string]string{"Product Name": "Pikachu"}, mappings)
		if rec.PurchasePrice == nil || *rec.PurchasePrice != 0 {
			t.Errorf("PurchasePrice = %v, want pointer to 0", rec.PurchasePrice)
		}
		if !rec.purchaseDefaulted {
			t.Error("expected the defaulted marker to be set")
		}
	})

	t.Run("unparsable purchase price becomes nil", func(t *testing.T) {
		rec := TransformRow(map[string]string{
			"Product Name": "Pikachu",
			"Paid":         "unknown",
		}, mappings)
		if rec.PurchasePrice != nil {
			t.Errorf("PurchasePrice = %v, want nil", *rec.PurchasePrice)
		}
	})

	t.Run("missing quantity defaults to one", func(t *testing.T) {
		rec := TransformRow(map[string]string{"Product Name": "Pikachu"}, mappings)
		if rec.Quantity != 1 {
			t.Errorf("Quantity = %d, want 1", rec.Quantity)
		}
	})

	t.Run("combined grade extracts company", func(t *testing.T) {
		rec := TransformRow(map[string]string{
			"Product Name": "Charizard",
			"Grade":        "PSA 10",
		}, mappings)
		if rec.GradingCompany != "PSA" {
			t.Errorf("GradingCompany = %q, want PSA", rec.GradingCompany)
		}
		if rec.Grade != "10" {
			t.Errorf("Grade = %q, want 10", rec.Grade)
		}
		if rec.Category != CategoryGraded {
			t.Errorf("Category = %q, want graded", rec.Category)
		}
	})

	t.Run("cert number implies PSA", func(t *testing.T) {
		rec := TransformRow(map[string]string{
			"Product Name": "Charizard",
			"Cert":         "12345678",
		}, mappings)
		if rec.GradingCompany != "PSA" {
			t.Errorf("GradingCompany = %q, want PSA", rec.GradingCompany)
		}
		if rec.Category != CategoryGraded {
			t.Errorf("Category = %q, want graded", rec.Category)
		}
	})

	t.Run("short digit string is not a cert", func(t *testing.T) {
		rec := TransformRow(map[string]string{
			"Product Name": "Charizard",
			"Cert":         "1234",
		}, mappings)
		if rec.GradingCompany != GradingRaw {
			t.Errorf("GradingCompany = %q, want raw", rec.GradingCompany)
		}
	})
}

func TestDeriveCategory(t *testing.T) {
	tests := []struct {
		explicit string
		company  string
		want     string
	}{
		{"Sealed Products", GradingRaw, CategorySealed},
		{"Graded Cards", GradingRaw, CategoryGraded},
		{"singles", "PSA", CategoryRaw},
		{"", "PSA", CategoryGraded},
		{"", GradingRaw, CategoryRaw},
	}

	for _, tt := range tests {
		if got := deriveCategory(tt.explicit, tt.company); got != tt.want {
			t.Errorf("deriveCategory(%q, %q) = %q, want %q", tt.explicit, tt.company, got, tt.want)
		}
	}
}

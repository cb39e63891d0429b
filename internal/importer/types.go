package importer

// ColumnType identifies the semantic meaning of an input column.
type ColumnType string

const (
	ColumnName           ColumnType = "name"
	ColumnSetName        ColumnType = "set_name"
	ColumnCardNumber     ColumnType = "card_number"
	ColumnQuantity       ColumnType = "quantity"
	ColumnPurchasePrice  ColumnType = "purchase_price"
	ColumnMarketPrice    ColumnType = "market_price"
	ColumnCondition      ColumnType = "condition"
	ColumnGradingCompany ColumnType = "grading_company"
	ColumnGrade          ColumnType = "grade"
	ColumnRarity         ColumnType = "rarity"
	ColumnCategory       ColumnType = "category"
	ColumnLanguage       ColumnType = "language"
	ColumnNotes          ColumnType = "notes"
	ColumnImageURL       ColumnType = "image_url"
	ColumnCertNumber     ColumnType = "cert_number"
	ColumnUnknown        ColumnType = "unknown"
)

// DetectionMethod records which classification tier assigned a column's type.
type DetectionMethod string

const (
	MethodExact   DetectionMethod = "exact"
	MethodPattern DetectionMethod = "pattern"
	MethodFuzzy   DetectionMethod = "fuzzy"
	MethodData    DetectionMethod = "data"
	MethodManual  DetectionMethod = "manual"
	MethodNone    DetectionMethod = "none"
)

// ColumnMapping describes one input column's detected semantic type.
// At most one mapping per analysis holds a given non-unknown Type;
// the classifier's conflict resolution enforces this.
type ColumnMapping struct {
	Header     string          `json:"header"`
	Index      int             `json:"index"`
	Type       ColumnType      `json:"type"`
	Confidence float64         `json:"confidence"`
	Method     DetectionMethod `json:"method"`
}

// AnalysisResult is the read-only output of column classification.
type AnalysisResult struct {
	Columns        []ColumnMapping `json:"columns"`
	DetectedFormat string          `json:"detectedFormat"`
	Delimiter      string          `json:"delimiter"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// Mapping returns the column mapping that claimed the given type, if any.
func (a AnalysisResult) Mapping(t ColumnType) (ColumnMapping, bool) {
	for _, c := range a.Columns {
		if c.Type == t {
			return c, true
		}
	}
	return ColumnMapping{}, false
}

// RawTable is the parsed form of an import: ordered headers plus rows keyed
// by their original header string. Built once per import, never mutated.
type RawTable struct {
	Headers []string
	Rows    []map[string]string
}

// GradingRaw is the sentinel grading company for uncertified cards.
const GradingRaw = "raw"

// Category values for canonical records.
const (
	CategoryRaw    = "raw"
	CategoryGraded = "graded"
	CategorySealed = "sealed"
)

// CanonicalRecord is the single normalized shape every imported row is
// converted to, regardless of source vendor. Created once per row by
// TransformRow; corrections happen by re-import, not mutation.
type CanonicalRecord struct {
	Name             string   `json:"name"`
	SetName          string   `json:"setName,omitempty"`
	CardNumber       string   `json:"cardNumber,omitempty"`
	NormalizedNumber string   `json:"normalizedNumber,omitempty"`
	Quantity         int      `json:"quantity"`
	PurchasePrice    *float64 `json:"purchasePrice,omitempty"`
	MarketPrice      *float64 `json:"marketPrice,omitempty"`
	Condition        string   `json:"condition,omitempty"`
	GradingCompany   string   `json:"gradingCompany"`
	Grade            string   `json:"grade,omitempty"`
	Rarity           string   `json:"rarity,omitempty"`
	Category         string   `json:"category"`
	Language         string   `json:"language,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	CertNumber       string   `json:"certNumber,omitempty"`

	// Raw is the original row, kept for audit and debugging.
	Raw map[string]string `json:"-"`

	// purchaseDefaulted marks a purchase price that was absent in the
	// source and filled with 0, as opposed to an explicit zero. Batch
	// validation surfaces it as an info finding.
	purchaseDefaulted bool
}

// IdentityKey returns the lowercased (name, set, number) composite key used
// for duplicate detection.
func (r CanonicalRecord) IdentityKey() string {
	return identityKey(r.Name, r.SetName, r.NormalizedNumber)
}

// Severity classifies validation findings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ValidationWarning is a single finding from batch validation. Errors block
// ingestion of their row; warnings and info do not.
type ValidationWarning struct {
	Type     string   `json:"type"`
	Row      int      `json:"row"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ImportSummary contains the counts for an import run.
type ImportSummary struct {
	TotalRows int `json:"totalRows"`
	Valid     int `json:"valid"`
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
}

// ImportResult is the complete output of processing one raw export.
type ImportResult struct {
	ImportID string              `json:"importId"`
	Analysis AnalysisResult      `json:"analysis"`
	Records  []*CanonicalRecord  `json:"records"`
	Warnings []ValidationWarning `json:"warnings,omitempty"`
	Summary  ImportSummary       `json:"summary"`
}

package importer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// ErrNoNameColumn is returned when classification cannot find a name
// column; without one nothing in the file is importable.
var ErrNoNameColumn = errors.New("no name column detected")

// Service runs the full import pipeline: delimiter detection, parsing,
// classification, normalization, and batch validation.
type Service struct {
	log *slog.Logger
}

// NewService creates an import service. A nil logger falls back to the
// default slog logger.
func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log}
}

// AnalyzeText detects the delimiter, parses the raw export, and classifies
// its columns without normalizing any rows. Used for previewing how a file
// would be interpreted.
func (s *Service) AnalyzeText(text string) (*RawTable, AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, AnalysisResult{}, ErrEmptyInput
	}

	delimiter := DetectDelimiter(text)
	table, err := ParseTable(text, delimiter)
	if err != nil {
		return nil, AnalysisResult{}, err
	}

	analysis := Analyze(table)
	analysis.Delimiter = string(delimiter)

	s.log.Debug("analyzed import",
		"format", analysis.DetectedFormat,
		"delimiter", analysis.Delimiter,
		"columns", len(analysis.Columns),
		"rows", len(table.Rows),
	)

	return table, analysis, nil
}

// Import processes one raw export end to end and returns the normalized
// records with all validation findings. existingKeys, when non-nil, is
// checked for duplicates against pre-existing inventory.
//
// Structural problems (unparsable text, no name column) fail hard; every
// row-level problem degrades to a ValidationWarning instead.
func (s *Service) Import(text string, existingKeys map[string]bool) (*ImportResult, error) {
	table, analysis, err := s.AnalyzeText(text)
	if err != nil {
		return nil, err
	}

	if _, ok := analysis.Mapping(ColumnName); !ok {
		return nil, fmt.Errorf("%w (headers: %s)", ErrNoNameColumn, strings.Join(table.Headers, ", "))
	}

	records := make([]*CanonicalRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, TransformRow(row, analysis.Columns))
	}

	warnings := ValidateBatch(records, existingKeys)
	valid := ValidRecords(records, warnings)

	result := &ImportResult{
		ImportID: uuid.NewString(),
		Analysis: analysis,
		Records:  valid,
		Warnings: warnings,
		Summary:  summarize(len(records), len(valid), warnings),
	}

	s.log.Info("import processed",
		"import_id", result.ImportID,
		"format", analysis.DetectedFormat,
		"total_rows", result.Summary.TotalRows,
		"valid", result.Summary.Valid,
		"errors", result.Summary.Errors,
		"warnings", result.Summary.Warnings,
	)

	return result, nil
}

func summarize(total, valid int, warnings []ValidationWarning) ImportSummary {
	summary := ImportSummary{TotalRows: total, Valid: valid}
	for _, w := range warnings {
		switch w.Severity {
		case SeverityError:
			summary.Errors++
		case SeverityWarning:
			summary.Warnings++
		}
	}
	return summary
}

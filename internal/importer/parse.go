package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEmptyInput is returned when the raw text contains no parsable rows.
var ErrEmptyInput = errors.New("empty input")

// ParseTable parses raw export text into a RawTable using the given
// delimiter. The first row is taken as the header; trailing blank rows are
// dropped. Rows shorter than the header are padded with empty values so
// every row exposes every header key.
func ParseTable(text string, delimiter rune) (*RawTable, error) {
	data := sanitizeUTF8([]byte(text))

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = CleanCell(h)
	}

	table := &RawTable{Headers: headers}
	for _, row := range records[1:] {
		if isEmptyRow(row) {
			continue
		}
		m := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				m[h] = CleanCell(row[i])
			} else {
				m[h] = ""
			}
		}
		table.Rows = append(table.Rows, m)
	}

	return table, nil
}

// CleanCell strips common CSV artifacts from a cell value: surrounding
// whitespace, Excel formula prefixes (="value"), and stray quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)
	s = strings.TrimPrefix(s, "\uFEFF")

	return strings.TrimSpace(s)
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// sanitizeUTF8 replaces invalid UTF-8 sequences with the Unicode
// replacement character so csv parsing never chokes on exports saved in
// legacy encodings.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}

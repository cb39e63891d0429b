package importer

import "strings"

// delimiterSampleLines is how many non-blank lines are inspected when
// sniffing the field separator.
const delimiterSampleLines = 5

var candidateDelimiters = []rune{',', ';', '\t', '|'}

// DetectDelimiter infers the field separator used by raw tabular text.
// It always returns a usable delimiter; ties and text with no candidate
// occurrences default to comma.
func DetectDelimiter(text string) rune {
	lines := sampleLines(text, delimiterSampleLines)
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestScore := 0.0

	for _, delim := range candidateDelimiters {
		counts := make([]int, len(lines))
		for i, line := range lines {
			counts[i] = countUnquoted(line, delim)
		}

		score := scoreDelimiter(counts)
		if score > bestScore {
			bestScore = score
			best = delim
		}
	}

	return best
}

// scoreDelimiter rates a candidate from its per-line occurrence counts.
// Consistent counts (all equal, or off by at most one) score
// firstLineCount * nonzeroLines; inconsistent counts fall back to a weaker
// nonzeroLines * 0.5 so a ragged candidate can still win over nothing.
func scoreDelimiter(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}

	nonzero := 0
	minCount, maxCount := counts[0], counts[0]
	for _, c := range counts {
		if c > 0 {
			nonzero++
		}
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}

	if maxCount-minCount <= 1 {
		return float64(counts[0] * nonzero)
	}
	return float64(nonzero) * 0.5
}

// countUnquoted counts delimiter occurrences outside quoted spans using a
// simple quote-toggle scan. Not a full CSV grammar; good enough for sniffing.
func countUnquoted(line string, delim rune) int {
	count := 0
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			count++
		}
	}
	return count
}

// sampleLines returns up to max non-blank lines from the start of text.
func sampleLines(text string, max int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
		if len(lines) == max {
			break
		}
	}
	return lines
}

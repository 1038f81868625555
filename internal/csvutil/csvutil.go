// Package csvutil implements the single-line CSV handling used by the invite
// import and export features. The dashboard exchanges one record per line, so
// multi-line quoted fields are deliberately unsupported.
package csvutil

import "strings"

// ParseLine tokenizes one CSV line into trimmed fields. Double quotes wrap
// fields containing commas, and a doubled quote inside a quoted field emits a
// literal quote.
func ParseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

// QuoteField wraps a value in double quotes, doubling any internal quotes.
// The export layout quotes every value unconditionally.
func QuoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// WriteRow renders one export row with every value quoted
func WriteRow(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = QuoteField(v)
	}
	return strings.Join(quoted, ",")
}

// SplitLines splits raw CSV text into trimmed, non-blank lines
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

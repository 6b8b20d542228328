// Package shared provides small parsing helpers used at the boundary
// between the CLI debug log and the typed evaluation core.
package shared

import (
	"strconv"
	"strings"
)

// DecodeBracketList decodes the CLI's "[tok1 tok2 tok3]" list encoding by
// trimming surrounding brackets and splitting on whitespace. Malformed
// input is decoded best-effort.
func DecodeBracketList(value string) []string {
	trimmed := strings.Trim(strings.TrimSpace(value), "[]")
	fields := strings.Fields(trimmed)
	if fields == nil {
		return []string{}
	}
	return fields
}

// EncodeBracketList is the inverse of DecodeBracketList.
func EncodeBracketList(values []string) string {
	return "[" + strings.Join(values, " ") + "]"
}

// TrailingAfter returns the text following the first occurrence of marker
// in line, or false if marker is absent.
func TrailingAfter(line string, marker string) (string, bool) {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return "", false
	}
	return line[idx+len(marker):], true
}

// TrailingInt parses the integer following marker, ignoring a trailing
// comma as found in pretty-printed JSON.
func TrailingInt(line string, marker string) (int, bool) {
	raw, ok := TrailingAfter(strings.TrimSpace(line), marker)
	if !ok {
		return 0, false
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), ",")
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return value, true
}

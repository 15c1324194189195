package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// Range is a weighted language range from a preference list such as an Accept-Language header.
type Range struct {
	Locale   Locale
	Quality  float64
	Wildcard bool
}

// NewRange builds a range for a locale with the given quality.
func NewRange(l Locale, quality float64) Range {
	return Range{Locale: l, Quality: quality}
}

// WildcardRange builds a "*" range with the given quality.
func WildcardRange(quality float64) Range {
	return Range{Quality: quality, Wildcard: true}
}

// ParseAcceptLanguage parses a header such as "en-US,en;q=0.9,*;q=0.1" into ranges
// sorted by descending quality. Ranges that are not valid tags are skipped,
// as are invalid quality values (the range keeps quality 1).
func ParseAcceptLanguage(header string) []Range {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var ranges []Range
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart := part
		if idx := strings.Index(part, ";"); idx != -1 {
			langPart = strings.TrimSpace(part[:idx])
			qPart := strings.TrimSpace(part[idx+1:])
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart == "*" {
			ranges = append(ranges, WildcardRange(quality))
			continue
		}
		l, err := Parse(langPart)
		if err != nil {
			continue
		}
		ranges = append(ranges, NewRange(l, quality))
	}

	return sortRanges(ranges)
}

// sortRanges returns a copy sorted by quality, highest first, preserving order on ties.
func sortRanges(ranges []Range) []Range {
	sorted := slices.Clone(ranges)
	slices.SortStableFunc(sorted, func(a, b Range) int {
		return cmp.Compare(b.Quality, a.Quality)
	})
	return sorted
}

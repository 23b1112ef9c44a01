// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(`[ \x{3000}]{2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reNumber     = regexp.MustCompile(`^[-+]?(?:\d+\.?\d*|\.\d+)$`)
)

// Normalize folds full-width ASCII (digits, pipes, colons) to narrow form and
// collapses noisy whitespace. Line breaks are kept since several field
// patterns anchor on "label\nvalue" layouts.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = width.Fold.String(s)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// parseNumber accepts plain decimals with optional thousands separators.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if !reNumber.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// SPDX-License-Identifier: Apache-2.0

package zeb

import "github.com/onebuilding/energy-report/internal/audit"

// OpeningRatio is the window share of one facade in percent:
// window / (net wall + window) × 100. Missing areas count as 0 and a zero
// denominator yields 0.
func OpeningRatio(d audit.Details, o audit.Orientation) float64 {
	wall, _ := d.Float(o.WallCode())
	window, _ := d.Float(o.WindowCode())
	return ratio(window, wall+window)
}

// TotalOpeningRatio is OpeningRatio over all four facades.
func TotalOpeningRatio(d audit.Details) float64 {
	var wall, window float64
	for _, o := range audit.Orientations {
		w, _ := d.Float(o.WallCode())
		g, _ := d.Float(o.WindowCode())
		wall += w
		window += g
	}
	return ratio(window, wall+window)
}

func ratio(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}

// hasAreas reports whether any wall or window area code is present.
func hasAreas(d audit.Details) bool {
	for _, o := range audit.Orientations {
		if _, ok := d.Float(o.WallCode()); ok {
			return true
		}
		if _, ok := d.Float(o.WindowCode()); ok {
			return true
		}
	}
	return false
}

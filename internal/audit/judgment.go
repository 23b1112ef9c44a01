// SPDX-License-Identifier: Apache-2.0

package audit

// Compliance thresholds against bei_total, inclusive.
const (
	BaseThreshold   = 1.00
	LargeThreshold  = 0.80
	TargetThreshold = 0.60
)

// Judge evaluates each compliance tier independently.
func Judge(bei float64) Judgment {
	return Judgment{
		Base:   statusFor(bei <= BaseThreshold),
		Large:  statusFor(bei <= LargeThreshold),
		Target: statusFor(bei <= TargetThreshold),
	}
}

func statusFor(ok bool) Status {
	if ok {
		return Achieved
	}
	return NotAchieved
}

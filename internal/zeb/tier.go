// SPDX-License-Identifier: Apache-2.0

// Package zeb places an audit record on the ZEB ladder and compares its
// envelope and equipment inputs with the specifications typical of a ZEB
// building.
package zeb

import "math"

// Tier is a rung of the ZEB ladder derived from bei_total.
type Tier string

const (
	NonCompliant Tier = "non-compliant"
	H28Compliant Tier = "h28-compliant"
	ZEBOriented  Tier = "zeb-oriented"
	ZEBReady     Tier = "zeb-ready"
	NearlyZEB    Tier = "nearly-zeb"
)

// Upper bounds of each tier, inclusive.
const (
	CompliantLimit = 1.00
	OrientedLimit  = 0.80
	ReadyLimit     = 0.70
	NearlyLimit    = 0.50
)

var tierLabels = map[Tier]string{
	NonCompliant: "基準非適合",
	H28Compliant: "H28基準適合",
	ZEBOriented:  "ZEB Oriented相当",
	ZEBReady:     "ZEB Ready相当",
	NearlyZEB:    "Nearly ZEB相当",
}

// Label returns the display label of t.
func (t Tier) Label() string {
	return tierLabels[t]
}

// TierFor maps bei to exactly one tier. NaN is treated as non-compliant.
func TierFor(bei float64) Tier {
	switch {
	case math.IsNaN(bei) || bei > CompliantLimit:
		return NonCompliant
	case bei > OrientedLimit:
		return H28Compliant
	case bei > ReadyLimit:
		return ZEBOriented
	case bei > NearlyLimit:
		return ZEBReady
	default:
		return NearlyZEB
	}
}

// Gap is the reduction of bei still needed to reach ZEB Oriented, or 0.
func Gap(bei float64) float64 {
	if math.IsNaN(bei) {
		return 0
	}
	return math.Max(0, bei-ReadyLimit)
}

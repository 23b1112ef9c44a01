// SPDX-License-Identifier: Apache-2.0

// Package roadmap derives a short improvement plan from an audit record.
package roadmap

import (
	"fmt"
	"sort"

	"github.com/onebuilding/energy-report/internal/audit"
)

// MaxSteps is the length of every roadmap.
const MaxSteps = 4

// Step is one stage of the improvement plan.
type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Subsystem is set on the equipment step when a specific offender was found.
	Subsystem audit.Subsystem `json:"subsystem,omitempty"`
}

// offenderOrder is the tie-break order for equipment offenders.
var offenderOrder = []audit.Subsystem{
	audit.AirConditioning,
	audit.HotWater,
	audit.Lighting,
	audit.Ventilation,
}

var remedies = map[audit.Subsystem]Step{
	audit.AirConditioning: {Title: "空調熱源の高効率化", Description: "最大消費源の本質的改善"},
	audit.HotWater:        {Title: "給湯設備の高効率化", Description: "高効率給湯機への更新"},
	audit.Lighting:        {Title: "照明設備の改修", Description: "高効率照明と制御への更新"},
	audit.Ventilation:     {Title: "換気の熱回収", Description: "全熱交換器と送風量制御の導入"},
}

// Build returns the roadmap for r. Steps 1 and 2 depend on the record;
// steps 3 and 4 are the same for every building.
func Build(r audit.Record) []Step {
	steps := []Step{
		envelopeStep(r),
		equipmentStep(r),
		{Title: "制御の徹底強化", Description: "センサー連動制御の全域導入"},
		{Title: "創エネルギーの導入", Description: "太陽光発電等の再エネ設備"},
	}
	for i := range steps {
		steps[i].Number = i + 1
	}
	return steps
}

func envelopeStep(r audit.Record) Step {
	switch {
	case r.BPI > 1.0:
		return Step{Title: "外皮性能の改善", Description: "断熱強化と日射遮蔽による外皮負荷の削減"}
	case len(r.WorstRooms) > 0:
		return Step{
			Title:       "ワースト室の外皮改善",
			Description: fmt.Sprintf("%sなど負荷の大きい室の重点改修", r.WorstRooms[0].Room),
		}
	default:
		return Step{Title: "外皮性能の維持", Description: "現状の良好な性能を維持"}
	}
}

func equipmentStep(r audit.Record) Step {
	offenders := Offenders(r)
	if len(offenders) == 0 {
		return Step{Title: "低効率設備の是正", Description: "基準値に近い設備の効率を底上げ"}
	}
	step := remedies[offenders[0]]
	step.Subsystem = offenders[0]
	return step
}

// Offenders returns the subsystems whose index exceeds 1.0, largest
// contribution first. Contribution is the design energy consumption when
// the document carried it for every offender, else the excess over 1.0.
func Offenders(r audit.Record) []audit.Subsystem {
	var out []audit.Subsystem
	for _, s := range offenderOrder {
		if r.Index(s) > 1.0 {
			out = append(out, s)
		}
	}

	useConsumption := len(out) > 0
	for _, s := range out {
		if _, ok := r.EnergyConsumption[s]; !ok {
			useConsumption = false
			break
		}
	}
	score := func(s audit.Subsystem) float64 {
		if useConsumption {
			return r.EnergyConsumption[s]
		}
		return r.Index(s) - 1.0
	}

	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i]) > score(out[j])
	})
	return out
}

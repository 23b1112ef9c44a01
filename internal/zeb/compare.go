// SPDX-License-Identifier: Apache-2.0

package zeb

import (
	"fmt"
	"strings"

	"github.com/onebuilding/energy-report/internal/audit"
)

// Status is the verdict of one comparison row.
type Status string

const (
	Good             Status = "good"
	NeedsImprovement Status = "needs-improvement"
)

// Label returns the display label of s.
func (s Status) Label() string {
	if s == Good {
		return "良好"
	}
	return "要改善"
}

// Row compares one design input with its ZEB-typical target.
type Row struct {
	Feature string `json:"feature"`
	Current string `json:"current"`
	Target  string `json:"target"`
	Status  Status `json:"status"`
	Action  string `json:"action"`
}

// Result is the ZEB evaluation of one record.
type Result struct {
	Tier      Tier    `json:"tier"`
	TierLabel string  `json:"tier_label"`
	Gap       float64 `json:"gap"`
	// OpeningRatio is the total window share in percent.
	OpeningRatio float64 `json:"opening_ratio"`
	Rows         []Row   `json:"rows"`
}

// Evaluate classifies r and builds the comparison checklist.
func Evaluate(r audit.Record) Result {
	tier := TierFor(r.BEITotal)
	return Result{
		Tier:         tier,
		TierLabel:    tier.Label(),
		Gap:          Gap(r.BEITotal),
		OpeningRatio: TotalOpeningRatio(r.Envelope),
		Rows:         Compare(r),
	}
}

// check produces the current value of one row and whether it meets the target.
type check struct {
	feature string
	target  string
	action  string
	eval    func(r audit.Record) (string, bool)
}

// Compare runs the fixed checklist in order.
func Compare(r audit.Record) []Row {
	rows := make([]Row, 0, len(checklist))
	for _, c := range checklist {
		current, ok := c.eval(r)
		status := NeedsImprovement
		if ok {
			status = Good
		}
		rows = append(rows, Row{
			Feature: c.feature,
			Current: current,
			Target:  c.target,
			Status:  status,
			Action:  c.action,
		})
	}
	return rows
}

var checklist = func() []check {
	list := []check{
		{
			feature: "外壁U値",
			target:  "0.60以下",
			action:  "断熱材の厚肉化",
			eval:    atMost(envelope, audit.PAL12, 0.60),
		},
		{
			feature: "窓U値",
			target:  "2.33以下",
			action:  "Low-E複層ガラス採用",
			eval:    atMost(envelope, audit.PAL20, 2.33),
		},
		{
			feature: "開口率",
			target:  "30%以下",
			action:  "窓面積の削減、高断熱化",
			eval:    openingRatio(30),
		},
		{
			feature: "主たる熱源",
			target:  "高効率ヒートポンプ等",
			action:  "電気式高効率ヒートポンプへの転換",
			eval:    heatSource,
		},
		{
			feature: "熱源効率 (AC6)",
			target:  "1.2以上",
			action:  "高効率熱源機の導入",
			eval:    atLeast(airConditioning, audit.AC6, 1.2),
		},
		{
			feature: "全熱交換器",
			target:  "有",
			action:  "全熱交換器の導入",
			eval:    flag(airConditioning, audit.AC13),
		},
	}
	for _, z := range audit.VentilationZones {
		list = append(list, check{
			feature: fmt.Sprintf("換気制御 (%s)", z),
			target:  "有",
			action:  "送風量制御の導入",
			eval:    flag(ventilation(z), audit.V7),
		})
	}
	lighting := []struct {
		code   audit.Code
		name   string
		action string
	}{
		{audit.L4, "在室検知", "人感センサーの導入"},
		{audit.L5, "明るさ", "昼光利用制御の導入"},
		{audit.L6, "時間", "時間制御の導入"},
		{audit.L7, "部分照明", "部分照明の導入"},
	}
	for _, l := range lighting {
		list = append(list, check{
			feature: fmt.Sprintf("照明制御 (%s)", l.name),
			target:  "有",
			action:  l.action,
			eval:    flag(lightingDetails, l.code),
		})
	}
	hotWater := map[audit.Zone]string{
		audit.ZoneWashroom: "洗面節湯",
		audit.ZoneBathroom: "浴室節湯",
		audit.ZoneKitchen:  "厨房節湯",
	}
	for _, z := range audit.HotWaterZones {
		list = append(list, check{
			feature: fmt.Sprintf("給湯設備 (%s)", hotWater[z]),
			target:  "有",
			action:  "節湯器具の導入",
			eval:    flag(hotWaterZone(z), audit.HW5),
		})
	}
	return list
}()

type detailsOf func(r audit.Record) audit.Details

func envelope(r audit.Record) audit.Details        { return r.Envelope }
func airConditioning(r audit.Record) audit.Details { return r.Equipment.AirConditioning }
func lightingDetails(r audit.Record) audit.Details { return r.Equipment.Lighting }

func ventilation(z audit.Zone) detailsOf {
	return func(r audit.Record) audit.Details { return r.Equipment.Ventilation[z] }
}

func hotWaterZone(z audit.Zone) detailsOf {
	return func(r audit.Record) audit.Details { return r.Equipment.HotWater[z] }
}

func atMost(of detailsOf, c audit.Code, limit float64) func(audit.Record) (string, bool) {
	return func(r audit.Record) (string, bool) {
		f, ok := of(r).Float(c)
		if !ok {
			return audit.Unknown, false
		}
		return fmt.Sprintf("%.2f", f), f <= limit
	}
}

func atLeast(of detailsOf, c audit.Code, limit float64) func(audit.Record) (string, bool) {
	return func(r audit.Record) (string, bool) {
		f, ok := of(r).Float(c)
		if !ok {
			return audit.Unknown, false
		}
		return fmt.Sprintf("%.2f", f), f >= limit
	}
}

// flag treats a missing entry as "無".
func flag(of detailsOf, c audit.Code) func(audit.Record) (string, bool) {
	return func(r audit.Record) (string, bool) {
		v, ok := of(r)[c]
		if !ok {
			return "無", false
		}
		return v.String(), v.Present()
	}
}

func openingRatio(limit float64) func(audit.Record) (string, bool) {
	return func(r audit.Record) (string, bool) {
		if !hasAreas(r.Envelope) {
			return audit.Unknown, false
		}
		pct := TotalOpeningRatio(r.Envelope)
		return fmt.Sprintf("%.1f%%", pct), pct <= limit
	}
}

func heatSource(r audit.Record) (string, bool) {
	v, ok := r.Equipment.AirConditioning[audit.AC1]
	if !ok {
		return audit.Unknown, false
	}
	s := v.String()
	return s, strings.Contains(s, "ヒートポンプ") || strings.Contains(s, "エアコン")
}

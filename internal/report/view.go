// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"

	"github.com/onebuilding/energy-report/internal/audit"
	"github.com/onebuilding/energy-report/internal/roadmap"
	"github.com/onebuilding/energy-report/internal/zeb"
)

// Summary is the headline block of a report.
type Summary struct {
	BuildingName string `json:"building_name"`
	Location     string `json:"location"`
	TotalArea    string `json:"total_area"`
	Method       string `json:"method"`
	Verdict      string `json:"verdict"`
	VerdictColor string `json:"verdict_color"`
	Legal        string `json:"legal"`
	Economic     string `json:"economic"`
}

// Bar is one value plotted against a reference line.
type Bar struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Reference float64 `json:"reference"`
	Color     string  `json:"color"`
}

// Badge is a labelled, coloured value.
type Badge struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color"`
}

// ComparisonRow is a zeb.Row with its display status and colour.
type ComparisonRow struct {
	zeb.Row
	StatusLabel string `json:"status_label"`
	Color       string `json:"color"`
}

// View is everything a renderer needs for one building.
type View struct {
	Labels     audit.Labels    `json:"labels"`
	Summary    Summary         `json:"summary"`
	Energy     Badge           `json:"energy"`
	Envelope   Badge           `json:"envelope"`
	Tier       Badge           `json:"tier"`
	Subsystems []Bar           `json:"subsystems"`
	Comparison []ComparisonRow `json:"comparison"`
	Roadmap    []roadmap.Step  `json:"roadmap"`
	Style      Style           `json:"style"`
}

// Builder assembles views with a fixed style.
type Builder struct {
	style Style
}

// NewBuilder creates a Builder. Empty style fields fall back to DefaultStyle.
func NewBuilder(style Style) *Builder {
	s := DefaultStyle()
	s.Merge(style)
	return &Builder{style: s}
}

// Style returns the effective style.
func (b *Builder) Style() Style {
	return b.style
}

var subsystemLabels = []struct {
	sub   audit.Subsystem
	label string
}{
	{audit.AirConditioning, "空調"},
	{audit.Ventilation, "換気"},
	{audit.Lighting, "照明"},
	{audit.HotWater, "給湯"},
	{audit.Elevator, "昇降機"},
}

// Build derives the view for one analysed record.
func (b *Builder) Build(r audit.Record, z zeb.Result, steps []roadmap.Step) View {
	labels := r.Labels()
	compliant := r.Judgment.Base == audit.Achieved

	v := View{
		Labels:   labels,
		Summary:  b.summary(r, labels, compliant),
		Energy:   Badge{Label: labels.Energy, Value: fmt.Sprintf("%.2f", r.BEITotal), Color: b.pick(compliant)},
		Envelope: Badge{Label: labels.Envelope, Value: fmt.Sprintf("%.2f", r.BPI), Color: b.pick(r.BPI <= 1.0)},
		Tier:     Badge{Label: "ZEB水準", Value: z.TierLabel, Color: b.tierColor(z.Tier)},
		Roadmap:  steps,
		Style:    b.style,
	}

	for _, s := range subsystemLabels {
		idx := r.Index(s.sub)
		color := b.pick(idx <= 1.0)
		if s.sub == audit.Elevator && idx == 0 {
			color = b.style.Muted
		}
		v.Subsystems = append(v.Subsystems, Bar{
			Label:     s.label,
			Value:     idx,
			Reference: 1.0,
			Color:     color,
		})
	}

	v.Comparison = make([]ComparisonRow, 0, len(z.Rows))
	for _, row := range z.Rows {
		v.Comparison = append(v.Comparison, ComparisonRow{
			Row:         row,
			StatusLabel: row.Status.Label(),
			Color:       b.pick(row.Status == zeb.Good),
		})
	}
	if v.Roadmap == nil {
		v.Roadmap = []roadmap.Step{}
	}
	return v
}

func (b *Builder) summary(r audit.Record, labels audit.Labels, compliant bool) Summary {
	s := Summary{
		BuildingName: r.BuildingName,
		Location:     r.Location,
		TotalArea:    fmt.Sprintf("%.2f m²", r.TotalArea),
		Method:       labels.Method,
		VerdictColor: b.pick(compliant),
	}
	if compliant {
		s.Verdict = "基準適合"
		s.Legal = "基準適合。建築確認申請が受理されます。"
		s.Economic = "光熱費削減。"
	} else {
		s.Verdict = "基準非適合"
		s.Legal = "基準非適合。建築確認申請が受理されない恐れがあります。"
		s.Economic = "光熱費高騰。"
	}
	if r.TotalArea == 0 {
		s.TotalArea = audit.Unknown
	}
	return s
}

func (b *Builder) pick(good bool) string {
	if good {
		return b.style.Good
	}
	return b.style.Bad
}

func (b *Builder) tierColor(t zeb.Tier) string {
	switch t {
	case zeb.NonCompliant:
		return b.style.Bad
	case zeb.H28Compliant:
		return b.style.Warn
	case zeb.ZEBOriented:
		return b.style.Main
	default:
		return b.style.Good
	}
}

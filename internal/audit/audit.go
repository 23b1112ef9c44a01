// SPDX-License-Identifier: Apache-2.0

package audit

import "context"

// Methodology identifies which regulatory calculation method produced a document.
type Methodology string

const (
	StandardInput Methodology = "standard_input"
	ModelBuilding Methodology = "model_building"
)

// Labels is the user-facing vocabulary for a methodology. Canonical field
// names never change; only these display labels do.
type Labels struct {
	Energy   string `json:"energy"`
	Envelope string `json:"envelope"`
	Method   string `json:"method"`
}

// LabelsFor returns the display labels used by renderers for m.
func LabelsFor(m Methodology) Labels {
	if m == ModelBuilding {
		return Labels{Energy: "BEIm", Envelope: "BPIm", Method: "モデル建物法"}
	}
	return Labels{Energy: "BEI", Envelope: "BPI", Method: "標準入力法"}
}

// Status is the outcome of one compliance tier.
type Status string

const (
	Achieved    Status = "achieved"
	NotAchieved Status = "not-achieved"
)

// Judgment holds the three compliance tiers evaluated against bei_total.
type Judgment struct {
	Base   Status `json:"base"`
	Large  Status `json:"large"`
	Target Status `json:"target"`
}

// WorstRoom is a zone with a high per-area envelope load.
type WorstRoom struct {
	Room string  `json:"room"`
	Load float64 `json:"load"`
}

// Subsystem identifies one equipment category with its own energy index.
type Subsystem string

const (
	AirConditioning Subsystem = "ac"
	Ventilation     Subsystem = "v"
	Lighting        Subsystem = "l"
	HotWater        Subsystem = "hw"
	Elevator        Subsystem = "ev"
)

// Equipment groups the model-building equipment input codes by subsystem and zone.
type Equipment struct {
	AirConditioning Details          `json:"air_conditioning"`
	Ventilation     map[Zone]Details `json:"ventilation"`
	Lighting        Details          `json:"lighting"`
	HotWater        map[Zone]Details `json:"hot_water"`
}

// Record is the canonical result of extracting one audit document.
// Every field is always populated; see the field table for defaults.
type Record struct {
	BuildingName  string  `json:"building_name"`
	Location      string  `json:"location"`
	TotalArea     float64 `json:"total_area"`
	Region        string  `json:"region"`
	SolarRegion   string  `json:"solar_region"`
	BuildingModel string  `json:"building_model"`

	Methodology Methodology `json:"methodology"`

	BEITotal   float64  `json:"bei_total"`
	BPI        float64  `json:"bpi"`
	PALStar    *float64 `json:"pal_star"`
	BEIInduced *float64 `json:"bei_induced"`

	BEIAC float64 `json:"bei_ac"`
	BEIV  float64 `json:"bei_v"`
	BEIL  float64 `json:"bei_l"`
	BEIHW float64 `json:"bei_hw"`
	BEIEV float64 `json:"bei_ev"`

	SolarPV      string `json:"solar_pv"`
	Cogeneration string `json:"cogeneration"`

	Envelope          Details               `json:"envelope_details"`
	Equipment         Equipment             `json:"equipment_details"`
	EnergyConsumption map[Subsystem]float64 `json:"energy_consumption"`

	Judgment   Judgment    `json:"judgment"`
	WorstRooms []WorstRoom `json:"worst_rooms"`
}

// Labels returns the display labels for the record's methodology.
func (r Record) Labels() Labels {
	return LabelsFor(r.Methodology)
}

// Index returns the energy index of a subsystem.
func (r Record) Index(s Subsystem) float64 {
	switch s {
	case AirConditioning:
		return r.BEIAC
	case Ventilation:
		return r.BEIV
	case Lighting:
		return r.BEIL
	case HotWater:
		return r.BEIHW
	case Elevator:
		return r.BEIEV
	}
	return 0
}

// Source describes the raw input handed to a Parser.
type Source struct {
	// Content is the raw document content.
	Content []byte
	Format  string
	ID      string
}

// Parser turns a raw Source into normalized plain text ready for extraction.
type Parser interface {
	CanHandle(source Source) bool
	Parse(ctx context.Context, source Source) (string, error)
	Name() string
}

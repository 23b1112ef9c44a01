// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"log/slog"

	"github.com/onebuilding/energy-report/internal/logger"
)

// Coverage reports which declared fields were located in the document and
// which fell back to their default.
type Coverage struct {
	Matched   []FieldID `json:"matched"`
	Defaulted []FieldID `json:"defaulted"`
}

// Builder assembles a Record from normalized document text. It holds no
// per-document state and is safe for concurrent use.
type Builder struct {
	sections Sections
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithWindow sets how many lines after an anchor are searched for rows.
func WithWindow(lines int) Option {
	return func(b *Builder) {
		b.sections.Window = lines
	}
}

// WithLogger sets the logger used for the per-document summary.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates a Builder. Without options it uses DefaultWindow and
// discards log output.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build extracts a Record from text. It never fails: fields that cannot be
// located take their defaults and sections that cannot be located are left
// empty.
func (b *Builder) Build(text string) Record {
	r, _ := b.BuildWithCoverage(text)
	return r
}

// BuildWithCoverage is Build plus the list of matched and defaulted fields.
func (b *Builder) BuildWithCoverage(text string) (Record, Coverage) {
	text = Normalize(text)
	m := Classify(text)

	r := Record{
		Methodology: m,
		Envelope:    Details{},
		Equipment: Equipment{
			AirConditioning: Details{},
			Ventilation:     map[Zone]Details{},
			Lighting:        Details{},
			HotWater:        map[Zone]Details{},
		},
		EnergyConsumption: map[Subsystem]float64{},
		WorstRooms:        []WorstRoom{},
	}

	cov := Coverage{Matched: []FieldID{}, Defaulted: []FieldID{}}
	for _, id := range Fields() {
		v, ok := ExtractField(text, id, m)
		if ok {
			cov.Matched = append(cov.Matched, id)
		} else {
			cov.Defaulted = append(cov.Defaulted, id)
		}
		assign(&r, id, v, ok)
	}

	b.envelope(text, &r)
	switch m {
	case ModelBuilding:
		b.equipment(text, &r)
	default:
		if rooms := b.sections.WorstRooms(text); len(rooms) > 0 {
			r.WorstRooms = rooms
		}
		r.EnergyConsumption = b.sections.EnergyConsumption(text)
	}

	r.Judgment = Judge(r.BEITotal)

	b.logger.Debug("record built",
		"methodology", m,
		"matched", len(cov.Matched),
		"defaulted", len(cov.Defaulted),
		"envelope_codes", len(r.Envelope),
		"worst_rooms", len(r.WorstRooms),
	)
	return r, cov
}

// envelope reads the global PAL rows first and then fills wall and window
// areas that only appear in per-facade blocks.
func (b *Builder) envelope(text string, r *Record) {
	if d, ok := ExtractRows(text, EnvelopeCodes); ok {
		for c, v := range d {
			r.Envelope[c] = v
		}
	}
	for _, o := range Orientations {
		d, ok := b.sections.Orientation(text, o)
		if !ok {
			continue
		}
		for c, v := range d {
			if _, exists := r.Envelope[c]; !exists {
				r.Envelope[c] = v
			}
		}
	}
}

func (b *Builder) equipment(text string, r *Record) {
	if d, ok := ExtractRows(text, AirConditioningCodes); ok {
		r.Equipment.AirConditioning = d
	}
	if d, ok := ExtractRows(text, LightingCodes); ok {
		r.Equipment.Lighting = d
	}
	for _, z := range VentilationZones {
		if d, ok := b.sections.Extract(text, string(z), VentilationCodes); ok {
			r.Equipment.Ventilation[z] = d
		}
	}
	for _, z := range HotWaterZones {
		if d, ok := b.sections.Extract(text, string(z), HotWaterCodes); ok {
			r.Equipment.HotWater[z] = d
		}
	}
}

func assign(r *Record, id FieldID, v Value, ok bool) {
	f, _ := v.Float()
	s := v.String()
	switch id {
	case FieldBuildingName:
		r.BuildingName = s
	case FieldLocation:
		r.Location = s
	case FieldTotalArea:
		r.TotalArea = f
	case FieldRegion:
		r.Region = s
	case FieldSolarRegion:
		r.SolarRegion = s
	case FieldBuildingModel:
		r.BuildingModel = s
	case FieldBEITotal:
		r.BEITotal = f
	case FieldBPI:
		r.BPI = f
	case FieldBEIInduced:
		if ok {
			r.BEIInduced = &f
		}
	case FieldPALStar:
		if ok {
			r.PALStar = &f
		}
	case FieldBEIAC:
		r.BEIAC = f
	case FieldBEIV:
		r.BEIV = f
	case FieldBEIL:
		r.BEIL = f
	case FieldBEIHW:
		r.BEIHW = f
	case FieldBEIEV:
		r.BEIEV = f
	case FieldSolarPV:
		r.SolarPV = s
	case FieldCogeneration:
		r.Cogeneration = s
	}
}

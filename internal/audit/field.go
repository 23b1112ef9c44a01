// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"regexp"
	"strings"
)

// FieldID names one scalar field of the Record.
type FieldID string

type valueKind int

const (
	kindString valueKind = iota
	kindNumber
)

// bounds is an open interval used to discard numbers captured from an
// unrelated neighbouring cell.
type bounds struct {
	min, max float64
}

func (b *bounds) contains(f float64) bool {
	if b == nil {
		return true
	}
	return f > b.min && f < b.max
}

// fieldSpec declares how one field is located. Patterns are tried in order,
// most specific table layout first. "{E}" and "{P}" expand to the energy and
// envelope labels of the classified methodology.
type fieldSpec struct {
	id       FieldID
	kind     valueKind
	patterns []string
	within   *bounds
	def      Value
	// optional fields have no default and stay absent when nothing matches.
	optional bool
}

// cascade returns the first match among matchers that coerces to kind and
// lies within b.
func cascade(text string, matchers []*regexp.Regexp, kind valueKind, b *bounds) (Value, bool) {
	for _, re := range matchers {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		raw := strings.TrimSpace(m[1])
		if kind == kindNumber {
			f, ok := parseNumber(raw)
			if !ok || !b.contains(f) {
				continue
			}
			return Number(f), true
		}
		if raw == "" {
			continue
		}
		return Text(raw), true
	}
	return Value{}, false
}

func expand(pattern string, labels Labels) string {
	return strings.NewReplacer(
		"{E}", regexp.QuoteMeta(labels.Energy),
		"{P}", regexp.QuoteMeta(labels.Envelope),
	).Replace(pattern)
}

// compiledFields holds each field's matchers per methodology, built once.
var compiledFields = compileFields()

func compileFields() map[Methodology]map[FieldID][]*regexp.Regexp {
	out := make(map[Methodology]map[FieldID][]*regexp.Regexp, 2)
	for _, m := range []Methodology{StandardInput, ModelBuilding} {
		labels := LabelsFor(m)
		byField := make(map[FieldID][]*regexp.Regexp, len(fieldSpecs))
		for _, spec := range fieldSpecs {
			matchers := make([]*regexp.Regexp, 0, len(spec.patterns))
			for _, p := range spec.patterns {
				matchers = append(matchers, regexp.MustCompile(expand(p, labels)))
			}
			byField[spec.id] = matchers
		}
		out[m] = byField
	}
	return out
}

var specsByID = func() map[FieldID]fieldSpec {
	out := make(map[FieldID]fieldSpec, len(fieldSpecs))
	for _, spec := range fieldSpecs {
		out[spec.id] = spec
	}
	return out
}()

// Fields returns every declared field in extraction order.
func Fields() []FieldID {
	ids := make([]FieldID, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		ids[i] = spec.id
	}
	return ids
}

// ExtractField locates id in text using the label vocabulary of m. When no
// pattern yields a usable value it returns the field's default and false.
// Optional fields return the zero Value and false.
func ExtractField(text string, id FieldID, m Methodology) (Value, bool) {
	spec, ok := specsByID[id]
	if !ok {
		return Value{}, false
	}
	if m != ModelBuilding {
		m = StandardInput
	}
	if v, ok := cascade(text, compiledFields[m][id], spec.kind, spec.within); ok {
		return v, true
	}
	return spec.def, false
}

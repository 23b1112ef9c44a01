// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultWindow is how many lines after an anchor are searched for rows.
const DefaultWindow = 12

// rowPatterns is the per-row cascade. %s is the row key.
//  1. | key | label | value |
//  2. | key | value |
//  3. | key | value | unit |
//  4. key label value (PDF text with the borders lost)
//  5. key value
var rowPatterns = []string{
	`(?m)^\|?[ \t]*%s[ \t]*\|[^|\n]*\|[ \t]*([^|\n]+)`,
	`(?m)^\|?[ \t]*%s[ \t]*\|[ \t]*([^|\n]+)\|?[ \t]*$`,
	`(?m)^\|?[ \t]*%s[ \t]*\|[ \t]*([^|\n]+)`,
	`(?m)^[ \t]*%s[ \t]+\S+[ \t]+(\S+)[ \t]*$`,
	`(?m)^[ \t]*%s[ \t]+(\S+)[ \t]*$`,
}

func compileRow(key string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(rowPatterns))
	for i, p := range rowPatterns {
		out[i] = regexp.MustCompile(strings.Replace(p, "%s", key, 1))
	}
	return out
}

var codeRows = func() map[Code][]*regexp.Regexp {
	out := make(map[Code][]*regexp.Regexp)
	for _, group := range [][]Code{EnvelopeCodes, AirConditioningCodes, VentilationCodes, LightingCodes, HotWaterCodes} {
		for _, c := range group {
			out[c] = compileRow(regexp.QuoteMeta(string(c)))
		}
	}
	return out
}()

var (
	wallRow   = compileRow(`(?:外壁面積|外壁)`)
	windowRow = compileRow(`(?:窓面積|開口部面積|窓)`)
)

var consumptionRows = map[Subsystem]*regexp.Regexp{
	AirConditioning: regexp.MustCompile(`(?m)^\|?[ \t]*(?:空気調和設備|空調)[ \t]*\|[ \t]*([\d,.]+)`),
	Ventilation:     regexp.MustCompile(`(?m)^\|?[ \t]*(?:機械換気設備|換気)[ \t]*\|[ \t]*([\d,.]+)`),
	Lighting:        regexp.MustCompile(`(?m)^\|?[ \t]*(?:照明設備|照明)[ \t]*\|[ \t]*([\d,.]+)`),
	HotWater:        regexp.MustCompile(`(?m)^\|?[ \t]*(?:給湯設備|給湯)[ \t]*\|[ \t]*([\d,.]+)`),
	Elevator:        regexp.MustCompile(`(?m)^\|?[ \t]*昇降機[ \t]*\|[ \t]*([\d,.]+)`),
}

// rowValue runs the row cascade over block and returns the first trimmed
// capture that accept allows. A rejected capture falls through to the next
// pattern.
func rowValue(block string, matchers []*regexp.Regexp, accept func(string) bool) (string, bool) {
	for _, re := range matchers {
		m := re.FindStringSubmatch(block)
		if len(m) < 2 {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" && accept(v) {
			return v, true
		}
	}
	return "", false
}

func numeric(s string) bool {
	_, ok := parseNumber(s)
	return ok
}

func anyValue(string) bool { return true }

// acceptFor returns the capture check for a code's declared kind.
func acceptFor(c Code) func(string) bool {
	info, ok := Describe(c)
	if !ok {
		return anyValue
	}
	switch info.Kind {
	case KindArea, KindUValue, KindRatio, KindEfficiency:
		return numeric
	}
	return anyValue
}

// anchorText strips decoration from a candidate anchor line: Markdown
// headings, bold markers, table borders and brackets.
func anchorText(line string) string {
	return strings.Trim(strings.TrimSpace(line), "#*|:【】[] ")
}

// isBreak reports whether line opens a new block.
func isBreak(line string) bool {
	t := strings.TrimSpace(line)
	if strings.HasPrefix(t, "#") {
		return true
	}
	return len(t) > 4 && strings.HasPrefix(t, "**") && strings.HasSuffix(t, "**")
}

// Sections extracts labelled blocks with a bounded lookahead.
type Sections struct {
	Window int
}

func (s Sections) window() int {
	if s.Window <= 0 {
		return DefaultWindow
	}
	return s.Window
}

// blocks returns, for every line accepted by isAnchor, the lines that follow
// it bounded by the window and the next block break.
func (s Sections) blocks(text string, isAnchor func(line string) bool) []string {
	lines := strings.Split(text, "\n")
	var out []string
	for i, line := range lines {
		if !isAnchor(line) {
			continue
		}
		end := i + 1
		for end < len(lines) && end <= i+s.window() && !isBreak(lines[end]) {
			end++
		}
		out = append(out, strings.Join(lines[i+1:end], "\n"))
	}
	return out
}

// Extract finds the block introduced by anchor and reads one value per code
// from that block only. Zones such as 厨房 appear on more than one sheet, so
// every block with that anchor is tried until one carries the codes. It
// returns false when the anchor is missing or no block has any of the codes.
func (s Sections) Extract(text, anchor string, codes []Code) (Details, bool) {
	blocks := s.blocks(text, func(line string) bool {
		return anchorText(line) == anchor
	})
	for _, block := range blocks {
		if d, ok := ExtractRows(block, codes); ok {
			return d, true
		}
	}
	return nil, false
}

// ExtractSection is Sections.Extract with the default window.
func ExtractSection(text, anchor string, codes []Code) (Details, bool) {
	return Sections{}.Extract(text, anchor, codes)
}

// ExtractRows reads code rows from anywhere in text. Used for codes that
// occur once per document.
func ExtractRows(text string, codes []Code) (Details, bool) {
	var out Details
	for _, c := range codes {
		raw, ok := rowValue(text, codeRows[c], acceptFor(c))
		if !ok {
			continue
		}
		if out == nil {
			out = make(Details, len(codes))
		}
		out[c] = ParseValue(raw)
	}
	return out, out != nil
}

// Orientation reads the wall and window areas of one facade block, e.g.
//
//	**北**
//	| 外壁面積 | 120.5 |
//	| 窓面積 | 30.0 |
func (s Sections) Orientation(text string, o Orientation) (Details, bool) {
	anchors := map[string]bool{string(o): true, string(o) + "面": true, string(o) + "側": true}
	blocks := s.blocks(text, func(line string) bool {
		return anchors[anchorText(line)]
	})
	for _, block := range blocks {
		if d, ok := facade(block, o); ok {
			return d, true
		}
	}
	return nil, false
}

func facade(block string, o Orientation) (Details, bool) {
	var out Details
	for code, rows := range map[Code][]*regexp.Regexp{o.WallCode(): wallRow, o.WindowCode(): windowRow} {
		raw, ok := rowValue(block, rows, numeric)
		if !ok {
			continue
		}
		f, _ := parseNumber(raw)
		if out == nil {
			out = make(Details, 2)
		}
		out[code] = Number(f)
	}
	return out, out != nil
}

var (
	reTableRow  = regexp.MustCompile(`^\s*\|.*\|\s*$`)
	reSeparator = regexp.MustCompile(`^[\s|:\-]+$`)
)

// WorstRooms reads the table following a "ワースト" heading and returns rooms
// ordered by load, highest first.
func (s Sections) WorstRooms(text string) []WorstRoom {
	blocks := s.blocks(text, func(line string) bool {
		return strings.Contains(line, "ワースト") && !reTableRow.MatchString(line)
	})
	for _, block := range blocks {
		if rooms := roomTable(block); len(rooms) > 0 {
			return rooms
		}
	}
	return nil
}

func roomTable(block string) []WorstRoom {
	var rooms []WorstRoom
	for _, line := range strings.Split(block, "\n") {
		if !reTableRow.MatchString(line) || reSeparator.MatchString(line) {
			continue
		}
		if room, ok := parseRoomRow(line); ok {
			rooms = append(rooms, room)
		}
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Load > rooms[j].Load
	})
	return rooms
}

// parseRoomRow takes the first non-numeric cell as the room name and the
// last numeric cell as its load. Header rows have no numeric cell.
func parseRoomRow(line string) (WorstRoom, bool) {
	var room WorstRoom
	var name, load bool
	for _, cell := range strings.Split(strings.Trim(strings.TrimSpace(line), "|"), "|") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if f, ok := parseNumber(cell); ok {
			room.Load = f
			load = true
			continue
		}
		if !name {
			room.Room = cell
			name = true
		}
	}
	return room, name && load
}

// EnergyConsumption reads the design primary energy table that follows a
// "設計一次エネルギー消費量" heading.
func (s Sections) EnergyConsumption(text string) map[Subsystem]float64 {
	blocks := s.blocks(text, func(line string) bool {
		return strings.Contains(line, "設計一次エネルギー消費量") && !reTableRow.MatchString(line)
	})
	for _, block := range blocks {
		if out := consumptionTable(block); len(out) > 0 {
			return out
		}
	}
	return make(map[Subsystem]float64)
}

func consumptionTable(block string) map[Subsystem]float64 {
	out := make(map[Subsystem]float64)
	for sub, re := range consumptionRows {
		m := re.FindStringSubmatch(block)
		if len(m) < 2 {
			continue
		}
		if f, ok := parseNumber(m[1]); ok {
			out[sub] = f
		}
	}
	return out
}

// ExtractWorstRooms is Sections.WorstRooms with the default window.
func ExtractWorstRooms(text string) []WorstRoom {
	return Sections{}.WorstRooms(text)
}

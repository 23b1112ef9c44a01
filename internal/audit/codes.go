// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"encoding/json"
	"strconv"
)

// Code is a field code from the regulatory model-building input sheets.
type Code string

// Envelope codes (外皮). Areas are m², U-values W/(m²·K).
const (
	PAL6  Code = "PAL6"
	PAL7  Code = "PAL7"
	PAL8  Code = "PAL8"
	PAL9  Code = "PAL9"
	PAL10 Code = "PAL10"
	PAL11 Code = "PAL11"
	PAL12 Code = "PAL12"
	PAL13 Code = "PAL13"
	PAL14 Code = "PAL14"
	PAL15 Code = "PAL15"
	PAL16 Code = "PAL16"
	PAL17 Code = "PAL17"
	PAL18 Code = "PAL18"
	PAL19 Code = "PAL19"
	PAL20 Code = "PAL20"
	PAL21 Code = "PAL21"
	PAL22 Code = "PAL22"
	PAL23 Code = "PAL23"
)

// Air-conditioning codes (空調).
const (
	AC1  Code = "AC1"
	AC4  Code = "AC4"
	AC6  Code = "AC6"
	AC7  Code = "AC7"
	AC10 Code = "AC10"
	AC12 Code = "AC12"
	AC13 Code = "AC13"
)

// Ventilation, lighting and hot-water control codes.
const (
	V5  Code = "V5"
	V6  Code = "V6"
	V7  Code = "V7"
	L4  Code = "L4"
	L5  Code = "L5"
	L6  Code = "L6"
	L7  Code = "L7"
	HW4 Code = "HW4"
	HW5 Code = "HW5"
)

var (
	EnvelopeCodes = []Code{
		PAL6, PAL7, PAL8, PAL9, PAL10, PAL11, PAL12, PAL13, PAL14,
		PAL15, PAL16, PAL17, PAL18, PAL19, PAL20, PAL21, PAL22, PAL23,
	}
	AirConditioningCodes = []Code{AC1, AC4, AC6, AC7, AC10, AC12, AC13}
	VentilationCodes     = []Code{V5, V6, V7}
	LightingCodes        = []Code{L4, L5, L6, L7}
	HotWaterCodes        = []Code{HW4, HW5}
)

// Kind describes the value type expected for a code.
type Kind string

const (
	KindArea       Kind = "area"
	KindUValue     Kind = "u-value"
	KindRatio      Kind = "ratio"
	KindEfficiency Kind = "efficiency"
	KindFlag       Kind = "flag"
	KindText       Kind = "text"
)

// CodeInfo documents one code of the vocabulary.
type CodeInfo struct {
	Code  Code
	Label string
	Kind  Kind
}

var codeInfo = map[Code]CodeInfo{
	PAL6:  {PAL6, "外壁面積(北)", KindArea},
	PAL7:  {PAL7, "外壁面積(東)", KindArea},
	PAL8:  {PAL8, "外壁面積(南)", KindArea},
	PAL9:  {PAL9, "外壁面積(西)", KindArea},
	PAL10: {PAL10, "屋根面積", KindArea},
	PAL11: {PAL11, "外気に接する床面積", KindArea},
	PAL12: {PAL12, "外壁の平均熱貫流率", KindUValue},
	PAL13: {PAL13, "屋根の平均熱貫流率", KindUValue},
	PAL14: {PAL14, "外気に接する床の平均熱貫流率", KindUValue},
	PAL15: {PAL15, "窓面積(北)", KindArea},
	PAL16: {PAL16, "窓面積(東)", KindArea},
	PAL17: {PAL17, "窓面積(南)", KindArea},
	PAL18: {PAL18, "窓面積(西)", KindArea},
	PAL19: {PAL19, "窓の仕様", KindText},
	PAL20: {PAL20, "窓の平均熱貫流率", KindUValue},
	PAL21: {PAL21, "窓の平均日射熱取得率", KindRatio},
	PAL22: {PAL22, "日よけの有無", KindFlag},
	PAL23: {PAL23, "屋根の日射反射率", KindRatio},

	AC1:  {AC1, "主たる熱源機種", KindText},
	AC4:  {AC4, "熱源容量", KindText},
	AC6:  {AC6, "熱源効率", KindEfficiency},
	AC7:  {AC7, "冷温水ポンプ変流量制御", KindFlag},
	AC10: {AC10, "空調機ファン変風量制御", KindFlag},
	AC12: {AC12, "外気冷房制御", KindFlag},
	AC13: {AC13, "全熱交換器", KindFlag},

	V5: {V5, "高効率電動機", KindFlag},
	V6: {V6, "インバータ", KindFlag},
	V7: {V7, "送風量制御", KindFlag},

	L4: {L4, "在室検知制御", KindFlag},
	L5: {L5, "明るさ検知制御", KindFlag},
	L6: {L6, "タイムスケジュール制御", KindFlag},
	L7: {L7, "初期照度補正制御", KindFlag},

	HW4: {HW4, "配管保温仕様", KindText},
	HW5: {HW5, "節湯器具", KindFlag},
}

// Describe returns the documentation entry for c.
func Describe(c Code) (CodeInfo, bool) {
	info, ok := codeInfo[c]
	return info, ok
}

// Zone names a sub-block of the ventilation or hot-water input sheets.
type Zone string

const (
	ZoneMachineRoom Zone = "機械室"
	ZoneRestroom    Zone = "便所"
	ZoneParking     Zone = "駐車場"
	ZoneKitchen     Zone = "厨房"
	ZoneWashroom    Zone = "洗面手洗い"
	ZoneBathroom    Zone = "浴室"
)

var (
	VentilationZones = []Zone{ZoneMachineRoom, ZoneRestroom, ZoneParking, ZoneKitchen}
	HotWaterZones    = []Zone{ZoneWashroom, ZoneBathroom, ZoneKitchen}
)

// Orientation is a facade direction of the envelope.
type Orientation string

const (
	North Orientation = "北"
	East  Orientation = "東"
	South Orientation = "南"
	West  Orientation = "西"
)

// Orientations lists the facades in envelope-sheet order.
var Orientations = []Orientation{North, East, South, West}

// WallCode returns the net wall area code for o.
func (o Orientation) WallCode() Code {
	return orientationCodes[o][0]
}

// WindowCode returns the window area code for o.
func (o Orientation) WindowCode() Code {
	return orientationCodes[o][1]
}

var orientationCodes = map[Orientation][2]Code{
	North: {PAL6, PAL15},
	East:  {PAL7, PAL16},
	South: {PAL8, PAL17},
	West:  {PAL9, PAL18},
}

// Value is a detail leaf: either a number or a raw string such as "有" or an
// equipment name.
type Value struct {
	num   float64
	text  string
	isNum bool
}

// Number wraps f as a numeric Value.
func Number(f float64) Value {
	return Value{num: f, isNum: true}
}

// Text wraps s as a string Value.
func Text(s string) Value {
	return Value{text: s}
}

// ParseValue returns a numeric Value when s parses as a float, else a string Value.
func ParseValue(s string) Value {
	if f, ok := parseNumber(s); ok {
		return Number(f)
	}
	return Text(s)
}

// Float returns the numeric value and whether v is numeric.
func (v Value) Float() (float64, bool) {
	return v.num, v.isNum
}

// String formats v the way it appeared in the document.
func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.text
}

// Present reports whether v is the "有" flag.
func (v Value) Present() bool {
	return !v.isNum && v.text == "有"
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.text)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*v = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*v = Text(s)
	return nil
}

// Details maps codes to values. A code that was not found is absent.
type Details map[Code]Value

// Float returns the numeric value of c, if present and numeric.
func (d Details) Float(c Code) (float64, bool) {
	v, ok := d[c]
	if !ok {
		return 0, false
	}
	return v.Float()
}

// SPDX-License-Identifier: Apache-2.0

package audit

const (
	FieldBuildingName  FieldID = "building_name"
	FieldLocation      FieldID = "location"
	FieldTotalArea     FieldID = "total_area"
	FieldRegion        FieldID = "region"
	FieldSolarRegion   FieldID = "solar_region"
	FieldBuildingModel FieldID = "building_model"
	FieldBEITotal      FieldID = "bei_total"
	FieldBPI           FieldID = "bpi"
	FieldBEIInduced    FieldID = "bei_induced"
	FieldPALStar       FieldID = "pal_star"
	FieldBEIAC         FieldID = "bei_ac"
	FieldBEIV          FieldID = "bei_v"
	FieldBEIL          FieldID = "bei_l"
	FieldBEIHW         FieldID = "bei_hw"
	FieldBEIEV         FieldID = "bei_ev"
	FieldSolarPV       FieldID = "solar_pv"
	FieldCogeneration  FieldID = "cogeneration"
)

// Unknown is the default for identity strings that could not be located.
const Unknown = "不明"

// None is the default for on-site generation entries.
const None = "なし"

var (
	areaBounds  = &bounds{min: 100, max: 1_000_000}
	indexBounds = &bounds{min: 0, max: 10}
	palBounds   = &bounds{min: 0, max: 5000}
)

// fieldSpecs is the declared extraction list. Order only matters for logging.
var fieldSpecs = []fieldSpec{
	{
		id:   FieldBuildingName,
		kind: kindString,
		patterns: []string{
			`建築物の名称\s*\|\s*([^|\n]+)`,
			`建築物の名称[ \t]*\n\s*([^|\n]+)`,
			`建築物の名称\s*:\s*([^|\n]+)`,
		},
		def: Text(Unknown),
	},
	{
		id:   FieldLocation,
		kind: kindString,
		patterns: []string{
			`所在地\s*\|\s*([^|\n]+)`,
			`所在地\s*:\s*([^|\n]+)`,
			`所在地[ \t]*\n\s*([^|\n]+)`,
		},
		def: Text(Unknown),
	},
	{
		id:   FieldTotalArea,
		kind: kindNumber,
		patterns: []string{
			`(?:延べ面積|床面積)[^|\n]*\|\s*([\d,.]+)`,
			`床面積[ \t]*\n\s*([\d,.]+)`,
			`(?:延べ面積|床面積)\s*:?\s*([\d,.]+)\s*(?:㎡|m2|m²)`,
		},
		within: areaBounds,
		def:    Number(0),
	},
	{
		id:   FieldRegion,
		kind: kindString,
		patterns: []string{
			`地域区分/年間日射地域区分\s*\|\s*([^/|\n]+)/`,
			`地域区分/年間日射地域区分[ \t]*\n\s*([^/|\n]+)/`,
			`(?m)^\|?\s*地域区分\s*[|:]\s*([^|\n]+)`,
		},
		def: Text(Unknown),
	},
	{
		id:   FieldSolarRegion,
		kind: kindString,
		patterns: []string{
			`地域区分/年間日射地域区分\s*\|\s*[^/|\n]*/\s*([^|\n]+)`,
			`地域区分/年間日射地域区分[ \t]*\n\s*[^/|\n]*/\s*([^|\n]+)`,
			`年間日射地域区分\s*[|:]\s*([^/|\n]+)`,
		},
		def: Text(Unknown),
	},
	{
		id:   FieldBuildingModel,
		kind: kindString,
		patterns: []string{
			`モデル建物\s*\|\s*([^|\n]+)`,
			`モデル建物[ \t]*\n\s*([^|\n]+)`,
			`モデル建物\s*:\s*([^|\n]+)`,
		},
		def: Text(Unknown),
	},
	{
		id:   FieldBEITotal,
		kind: kindNumber,
		patterns: []string{
			`一次エネルギー消費量\s*【{E}】\s*\|\s*([\d,.]+)`,
			`【{E}】\s*\|\s*([\d,.]+)`,
			`【BEIm?】\s*\|\s*([\d,.]+)`,
			`(?m)^\|?\s*BEIm?\s*[|:=]\s*([\d,.]+)`,
		},
		within: indexBounds,
		def:    Number(1.0),
	},
	{
		id:   FieldBPI,
		kind: kindNumber,
		patterns: []string{
			`年間熱負荷係数\s*【{P}】\s*\|\s*([\d,.]+)`,
			`【{P}】\s*\|\s*([\d,.]+)`,
			`【BPIm?】\s*\|\s*([\d,.]+)`,
			`(?m)^\|?\s*BPIm?\s*[|:=]\s*([\d,.]+)`,
		},
		within: indexBounds,
		def:    Number(1.0),
	},
	{
		id:   FieldBEIInduced,
		kind: kindNumber,
		patterns: []string{
			`【誘導{E}】\s*\|\s*([\d,.]+)`,
			`誘導BEIm?\s*[】|:=]\s*\|?\s*([\d,.]+)`,
		},
		within:   indexBounds,
		optional: true,
	},
	{
		id:   FieldPALStar,
		kind: kindNumber,
		patterns: []string{
			`PAL\*\s*(?:【[^】\n]*】)?\s*\|\s*([\d,.]+)`,
			`PAL\*[^\d|\n]*[:=]\s*([\d,.]+)`,
		},
		within:   palBounds,
		optional: true,
	},
	subsystemSpec(FieldBEIAC, "空気調和設備", "AC", 1.0),
	subsystemSpec(FieldBEIV, "機械換気設備", "V", 1.0),
	subsystemSpec(FieldBEIL, "照明設備", "L", 1.0),
	subsystemSpec(FieldBEIHW, "給湯設備", "HW", 1.0),
	subsystemSpec(FieldBEIEV, "昇降機", "EV", 0.0),
	{
		id:   FieldSolarPV,
		kind: kindString,
		patterns: []string{
			`太陽光発電(?:設備)?\s*\|\s*([^|\n]+)`,
			`太陽光発電(?:設備)?\s*:\s*([^|\n]+)`,
		},
		def: Text(None),
	},
	{
		id:   FieldCogeneration,
		kind: kindString,
		patterns: []string{
			`コージェネレーション(?:設備)?\s*\|\s*([^|\n]+)`,
			`コージェネレーション(?:設備)?\s*:\s*([^|\n]+)`,
		},
		def: Text(None),
	},
}

// subsystemSpec builds the cascade shared by the per-equipment indices,
// e.g. "空気調和設備【BEIm/AC】| 0.82".
func subsystemSpec(id FieldID, name, suffix string, def float64) fieldSpec {
	return fieldSpec{
		id:   id,
		kind: kindNumber,
		patterns: []string{
			name + `\s*【{E}/` + suffix + `】\s*\|\s*([\d,.]+)`,
			`【BEIm?/` + suffix + `】\s*\|\s*([\d,.]+)`,
			`BEIm?/` + suffix + `\s*[|:=]\s*([\d,.]+)`,
		},
		within: indexBounds,
		def:    Number(def),
	}
}

// SPDX-License-Identifier: Apache-2.0

package audit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onebuilding/energy-report/internal/audit"
)

const ventilationSheet = `**機械室**
| V5 | 高効率電動機 | 有 |
| V6 | インバータ | 無 |
| V7 | 送風量制御 | 有 |
**便所**
| V7 | 送風量制御 | 無 |`

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		anchor string
		codes  []audit.Code
		want   audit.Details
		wantOK bool
	}{
		{
			name:   "three column rows",
			text:   ventilationSheet,
			anchor: "機械室",
			codes:  audit.VentilationCodes,
			want: audit.Details{
				audit.V5: audit.Text("有"),
				audit.V6: audit.Text("無"),
				audit.V7: audit.Text("有"),
			},
			wantOK: true,
		},
		{
			name:   "block stops at next bold anchor",
			text:   ventilationSheet,
			anchor: "便所",
			codes:  audit.VentilationCodes,
			want:   audit.Details{audit.V7: audit.Text("無")},
			wantOK: true,
		},
		{
			name:   "missing anchor",
			text:   ventilationSheet,
			anchor: "駐車場",
			codes:  audit.VentilationCodes,
		},
		{
			name:   "heading anchor with two column rows",
			text:   "## 浴室\n| HW4 | 保温仕様2 |\n| HW5 | 有 |",
			anchor: "浴室",
			codes:  audit.HotWaterCodes,
			want: audit.Details{
				audit.HW4: audit.Text("保温仕様2"),
				audit.HW5: audit.Text("有"),
			},
			wantOK: true,
		},
		{
			name:   "borderless rows from pdf text",
			text:   "【駐車場】\nV5 高効率電動機 有\nV7 送風量制御 無",
			anchor: "駐車場",
			codes:  audit.VentilationCodes,
			want: audit.Details{
				audit.V5: audit.Text("有"),
				audit.V7: audit.Text("無"),
			},
			wantOK: true,
		},
		{
			name:   "anchor present without rows",
			text:   "**便所**\n特記なし",
			anchor: "便所",
			codes:  audit.VentilationCodes,
		},
		{
			name:   "shared zone name resolves to the block with the codes",
			text:   "**厨房**\n| HW5 | 節湯器具 | 有 |\n**厨房**\n| V7 | 送風量制御 | 有 |",
			anchor: "厨房",
			codes:  audit.VentilationCodes,
			want:   audit.Details{audit.V7: audit.Text("有")},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := audit.ExtractSection(tt.text, tt.anchor, tt.codes)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSections_Window(t *testing.T) {
	filler := strings.Repeat("x\n", 12)
	text := "**機械室**\n" + filler + "| V5 | 高効率電動機 | 有 |"

	_, ok := audit.ExtractSection(text, "機械室", audit.VentilationCodes)
	assert.False(t, ok, "row beyond the default window must not be read")

	got, ok := audit.Sections{Window: 13}.Extract(text, "機械室", audit.VentilationCodes)
	require.True(t, ok)
	assert.Equal(t, audit.Text("有"), got[audit.V5])
}

func TestExtractRows(t *testing.T) {
	text := "| PAL12 | 外壁の平均熱貫流率 | 0.48 |\n| PAL20 | 2.33 |\n| PAL22 | 日よけ | 有 |"

	got, ok := audit.ExtractRows(text, audit.EnvelopeCodes)
	require.True(t, ok)
	assert.Len(t, got, 3)
	u, ok := got.Float(audit.PAL12)
	require.True(t, ok)
	assert.InDelta(t, 0.48, u, 1e-9)
	w, ok := got.Float(audit.PAL20)
	require.True(t, ok)
	assert.InDelta(t, 2.33, w, 1e-9)
	assert.True(t, got[audit.PAL22].Present())

	_, ok = audit.ExtractRows("nothing", audit.EnvelopeCodes)
	assert.False(t, ok)
}

func TestExtractRows_CodePrefixDoesNotMatchLongerCode(t *testing.T) {
	got, ok := audit.ExtractRows("| AC12 | 外気冷房 | 有 |", []audit.Code{audit.AC1})
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSections_Orientation(t *testing.T) {
	text := "**北**\n| 外壁面積 | 120.5 |\n| 窓面積 | 30 |\n**東面**\n| 外壁面積 | 1,000 |"

	north, ok := audit.Sections{}.Orientation(text, audit.North)
	require.True(t, ok)
	wall, _ := north.Float(audit.PAL6)
	window, _ := north.Float(audit.PAL15)
	assert.InDelta(t, 120.5, wall, 1e-9)
	assert.InDelta(t, 30, window, 1e-9)

	east, ok := audit.Sections{}.Orientation(text, audit.East)
	require.True(t, ok)
	wall, _ = east.Float(audit.PAL7)
	assert.InDelta(t, 1000, wall, 1e-9)
	_, hasWindow := east[audit.PAL16]
	assert.False(t, hasWindow)

	_, ok = audit.Sections{}.Orientation(text, audit.South)
	assert.False(t, ok)
}

func TestExtractWorstRooms(t *testing.T) {
	text := `## 外皮性能ワースト室
| 室名 | PAL*(MJ/m2年) |
|---|---|
| 会議室A | 520.5 |
| 事務室1 | 610.2 |
| 倉庫 | 300 |

## 次の章`

	rooms := audit.ExtractWorstRooms(text)
	require.Len(t, rooms, 3)
	assert.Equal(t, audit.WorstRoom{Room: "事務室1", Load: 610.2}, rooms[0])
	assert.Equal(t, audit.WorstRoom{Room: "会議室A", Load: 520.5}, rooms[1])
	assert.Equal(t, audit.WorstRoom{Room: "倉庫", Load: 300}, rooms[2])

	assert.Empty(t, audit.ExtractWorstRooms("no table"))
}

func TestSections_EnergyConsumption(t *testing.T) {
	text := "## 設計一次エネルギー消費量\n| 空気調和設備 | 1,200.5 |\n| 照明設備 | 800 |\n| 昇降機 | 40 |"

	got := audit.Sections{}.EnergyConsumption(text)
	assert.Equal(t, map[audit.Subsystem]float64{
		audit.AirConditioning: 1200.5,
		audit.Lighting:        800,
		audit.Elevator:        40,
	}, got)

	empty := audit.Sections{}.EnergyConsumption("")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

// ---------------------------------------------------------------------------
// Typed row captures
// ---------------------------------------------------------------------------

func TestExtractRows_NumericCodesSkipUnitCells(t *testing.T) {
	text := "| PAL12 | 0.48 | W/m2K |\n| PAL20 | 2.33 |\n| AC6 | 1.35 |\n| AC1 | 主たる熱源機種 | 空冷ヒートポンプ |"

	env, ok := audit.ExtractRows(text, audit.EnvelopeCodes)
	require.True(t, ok)
	u, ok := env.Float(audit.PAL12)
	require.True(t, ok, "PAL12 must hold the number, got %q", env[audit.PAL12].String())
	assert.InDelta(t, 0.48, u, 1e-9)
	w, ok := env.Float(audit.PAL20)
	require.True(t, ok)
	assert.InDelta(t, 2.33, w, 1e-9)

	ac, ok := audit.ExtractRows(text, audit.AirConditioningCodes)
	require.True(t, ok)
	eff, ok := ac.Float(audit.AC6)
	require.True(t, ok)
	assert.InDelta(t, 1.35, eff, 1e-9)
	assert.Equal(t, audit.Text("空冷ヒートポンプ"), ac[audit.AC1])
}

func TestExtractRows_NumericCodeWithoutNumber(t *testing.T) {
	got, ok := audit.ExtractRows("| PAL12 | 不明 |", []audit.Code{audit.PAL12})
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSections_OrientationRowLayouts(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wall   float64
		window float64
	}{
		{name: "unit column", text: "**北**\n| 外壁面積 | 120 | ㎡ |\n| 窓面積 | 30 | ㎡ |", wall: 120, window: 30},
		{name: "borderless two tokens", text: "北\n外壁面積 120\n窓面積 30", wall: 120, window: 30},
		{name: "borderless with unit", text: "北面\n外壁面積 ㎡ 1,200\n窓面積 ㎡ 300", wall: 1200, window: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := audit.Sections{}.Orientation(tt.text, audit.North)
			require.True(t, ok)
			wall, ok := got.Float(audit.PAL6)
			require.True(t, ok)
			window, ok := got.Float(audit.PAL15)
			require.True(t, ok)
			assert.InDelta(t, tt.wall, wall, 1e-9)
			assert.InDelta(t, tt.window, window, 1e-9)
		})
	}
}

// ---------------------------------------------------------------------------
// Repeated anchors
// ---------------------------------------------------------------------------

func TestSections_SkipBlocksWithoutRows(t *testing.T) {
	t.Run("orientation", func(t *testing.T) {
		text := "北\n方位は図面参照\n## 外皮\n**北**\n| 外壁面積 | 120 |"
		got, ok := audit.Sections{}.Orientation(text, audit.North)
		require.True(t, ok)
		wall, _ := got.Float(audit.PAL6)
		assert.InDelta(t, 120, wall, 1e-9)
	})

	t.Run("worst rooms", func(t *testing.T) {
		text := "ワースト室は次章に示す\n本文\n## 外皮性能ワースト室\n| 会議室 | 500 |"
		rooms := audit.ExtractWorstRooms(text)
		assert.Equal(t, []audit.WorstRoom{{Room: "会議室", Load: 500}}, rooms)
	})

	t.Run("energy consumption", func(t *testing.T) {
		text := "設計一次エネルギー消費量は下表\n概要のみ\n## 設計一次エネルギー消費量\n| 照明設備 | 800 |"
		got := audit.Sections{}.EnergyConsumption(text)
		assert.Equal(t, map[audit.Subsystem]float64{audit.Lighting: 800}, got)
	})
}

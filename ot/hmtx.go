package ot

import (
	"github.com/cbreeden/fontkit/wire"
)

// LongHorMetric is the advance width and left side bearing of a glyph.
type LongHorMetric struct {
	AdvanceWidth wire.UFWord
	LSB          wire.FWord
}

var longHorMetricSchema = wire.NewSchema("longHorMetric",
	wire.Plain("advanceWidth", func(m *LongHorMetric) *wire.UFWord { return &m.AdvanceWidth }),
	wire.Plain("lsb", func(m *LongHorMetric) *wire.FWord { return &m.LSB }),
)

func (m *LongHorMetric) Decode(b wire.View) error {
	return longHorMetricSchema.DecodeInto(m, b, wire.NoParams)
}

func (LongHorMetric) StaticSize() int   { return longHorMetricSchema.MustStaticSize() }
func (m LongHorMetric) EncodeSize() int { return m.StaticSize() }

// HMtx is table 'hmtx', the horizontal metrics of the glyphs of a font.
//
// "Glyph metrics used for horizontal text layout include glyph advance widths,
// side bearings and X-direction min and max values (xMin, xMax). […]
// In a font with TrueType outlines, xMin and xMax values for each glyph are given
// in the glyf table. The advance width (“aw”) and left side bearing (“lsb”) can be
// derived from the glyph “phantom points”, which are computed by the TrueType
// interpreter; or they can be obtained from the “hmtx” table. In a font with CFF
// or CFF2 outlines, xMin (= left side bearing) and xMax values can be obtained from
// the CFF / CFF2 rasterizer. From those values, the right side bearing (“rsb”) is
// calculated."
//
// The layout of 'hmtx' depends on two values from other tables: the number of
// metrics from 'hhea' and the number of glyphs from 'maxp'. They are the decode
// parameters of HMtx, in this order.
type HMtx struct {
	NumberOfHMetrics wire.U16                  // from table 'hhea'
	NumGlyphs        wire.U16                  // from table 'maxp'
	HMetrics         wire.Array[LongHorMetric] // one for each of the first NumberOfHMetrics glyphs
	LeftSideBearings wire.Array[wire.FWord]    // one for each of the remaining glyphs
}

var hmtxSchema = wire.NewSchema("hmtx",
	wire.FromParam("numberOfHMetrics", func(t *HMtx) *wire.U16 { return &t.NumberOfHMetrics }),
	wire.FromParam("numGlyphs", func(t *HMtx) *wire.U16 { return &t.NumGlyphs }),
	wire.WithParam("hMetrics", func(t *HMtx) *wire.Array[LongHorMetric] { return &t.HMetrics },
		"numberOfHMetrics"),
	wire.WithParamFunc("leftSideBearings", func(t *HMtx) *wire.Array[wire.FWord] { return &t.LeftSideBearings },
		func(t *HMtx) []any { return []any{int(t.NumGlyphs) - int(t.NumberOfHMetrics)} }),
)

func (t *HMtx) Arity() int { return hmtxSchema.Arity() }

func (t *HMtx) DecodeWith(b wire.View, p wire.Params) error {
	return hmtxSchema.DecodeInto(t, b, p)
}

func (t HMtx) EncodeSize() int { return hmtxSchema.EncodeSize(&t) }

// TableTag is 'hmtx'.
func (HMtx) TableTag() Tag { return T("hmtx") }

// Metrics returns the advance width and left side bearing of glyph gid.
// Glyphs beyond the number of metrics share the advance width of the last
// entry in HMetrics ("monospaced" runs at the end of the font).
func (t HMtx) Metrics(gid int) (wire.UFWord, wire.FWord, error) {
	if gid < 0 || gid >= int(t.NumGlyphs) || t.HMetrics.Len() == 0 {
		return 0, 0, wire.ErrInvalidData
	}
	if gid < t.HMetrics.Len() {
		m, err := t.HMetrics.Get(gid)
		return m.AdvanceWidth, m.LSB, err
	}
	last, err := t.HMetrics.Get(t.HMetrics.Len() - 1)
	if err != nil {
		return 0, 0, err
	}
	lsb, err := t.LeftSideBearings.Get(gid - t.HMetrics.Len())
	return last.AdvanceWidth, lsb, err
}

package ot

import (
	"github.com/cbreeden/fontkit/wire"
)

// HHea is table 'hhea', which contains information for horizontal layout.
type HHea struct {
	MajorVersion        wire.U16
	MinorVersion        wire.U16
	Ascender            wire.FWord // distance from baseline of highest ascender
	Descender           wire.FWord // distance from baseline of lowest descender
	LineGap             wire.FWord // typographic line gap
	AdvanceWidthMax     wire.UFWord
	MinLeftSideBearing  wire.FWord
	MinRightSideBearing wire.FWord
	XMaxExtent          wire.FWord // max(lsb + (xMax − xMin))
	CaretSlopeRise      wire.I16   // 1 for vertical caret
	CaretSlopeRun       wire.I16   // 0 for vertical caret
	CaretOffset         wire.I16
	MetricDataFormat    wire.I16 // 0 for current format
	NumberOfHMetrics    wire.U16 // number of LongHorMetric records in table 'hmtx'
}

var hheaSchema = wire.NewSchema("hhea",
	wire.Plain("majorVersion", func(h *HHea) *wire.U16 { return &h.MajorVersion }),
	wire.Plain("minorVersion", func(h *HHea) *wire.U16 { return &h.MinorVersion }),
	wire.Plain("ascender", func(h *HHea) *wire.FWord { return &h.Ascender }),
	wire.Plain("descender", func(h *HHea) *wire.FWord { return &h.Descender }),
	wire.Plain("lineGap", func(h *HHea) *wire.FWord { return &h.LineGap }),
	wire.Plain("advanceWidthMax", func(h *HHea) *wire.UFWord { return &h.AdvanceWidthMax }),
	wire.Plain("minLeftSideBearing", func(h *HHea) *wire.FWord { return &h.MinLeftSideBearing }),
	wire.Plain("minRightSideBearing", func(h *HHea) *wire.FWord { return &h.MinRightSideBearing }),
	wire.Plain("xMaxExtent", func(h *HHea) *wire.FWord { return &h.XMaxExtent }),
	wire.Plain("caretSlopeRise", func(h *HHea) *wire.I16 { return &h.CaretSlopeRise }),
	wire.Plain("caretSlopeRun", func(h *HHea) *wire.I16 { return &h.CaretSlopeRun }),
	wire.Plain("caretOffset", func(h *HHea) *wire.I16 { return &h.CaretOffset }),
	wire.Ignored[HHea, wire.I16]("reserved1"),
	wire.Ignored[HHea, wire.I16]("reserved2"),
	wire.Ignored[HHea, wire.I16]("reserved3"),
	wire.Ignored[HHea, wire.I16]("reserved4"),
	wire.Plain("metricDataFormat", func(h *HHea) *wire.I16 { return &h.MetricDataFormat }),
	wire.Plain("numberOfHMetrics", func(h *HHea) *wire.U16 { return &h.NumberOfHMetrics }),
)

func (h *HHea) Decode(b wire.View) error {
	return hheaSchema.DecodeInto(h, b, wire.NoParams)
}

func (HHea) StaticSize() int   { return hheaSchema.MustStaticSize() }
func (h HHea) EncodeSize() int { return h.StaticSize() }

// TableTag is 'hhea'.
func (HHea) TableTag() Tag { return T("hhea") }

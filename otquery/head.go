package otquery

import (
	"time"

	"github.com/cbreeden/fontkit/ot"
)

// HeadTableInfo is a typed query view over OpenType table 'head'.
type HeadTableInfo struct {
	MajorVersion       uint16
	MinorVersion       uint16
	FontRevision       float64
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            time.Time
	Modified           time.Time
	XMin               int16
	YMin               int16
	XMax               int16
	YMax               int16
	MacStyle           uint16
	LowestRecPPEM      uint16
	FontDirectionHint  int16
	IndexToLocFormat   int16
	GlyphDataFormat    int16
}

// HeadInfo decodes table 'head'.
// Returns (info, true) on success, or (zero, false) if table is missing or broken.
func HeadInfo(otf *ot.Font) (HeadTableInfo, bool) {
	var info HeadTableInfo
	if otf == nil {
		return info, false
	}
	head, err := otf.Head()
	if err != nil {
		tracer().Debugf("head: %v", err)
		return info, false
	}
	info.MajorVersion = uint16(head.MajorVersion)
	info.MinorVersion = uint16(head.MinorVersion)
	info.FontRevision = head.FontRevision.Float64()
	info.MagicNumber = uint32(head.MagicNumber)
	info.Flags = uint16(head.Flags)
	info.UnitsPerEm = uint16(head.UnitsPerEm)
	info.Created = head.Created.Time()
	info.Modified = head.Modified.Time()
	info.XMin = int16(head.XMin)
	info.YMin = int16(head.YMin)
	info.XMax = int16(head.XMax)
	info.YMax = int16(head.YMax)
	info.MacStyle = uint16(head.MacStyle)
	info.LowestRecPPEM = uint16(head.LowestRecPPEM)
	info.FontDirectionHint = int16(head.FontDirectionHint)
	info.IndexToLocFormat = int16(head.IndexToLocFormat)
	info.GlyphDataFormat = int16(head.GlyphDataFormat)
	// the checksum adjustment is not kept by the decoder
	if b, err := otf.Table(ot.T("head")); err == nil {
		info.CheckSumAdjustment = b.U32(8)
	}
	return info, true
}

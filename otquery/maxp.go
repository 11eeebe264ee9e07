package otquery

import (
	"github.com/cbreeden/fontkit/ot"
)

// MaxPTableInfo is a typed query view over OpenType table 'maxp'.
// For version 1.0 tables, extended profile fields are set.
type MaxPTableInfo struct {
	VersionFixed uint32
	NumGlyphs    uint16

	// TrueType profile fields (version 1.0 only)
	HasExtendedProfile    bool
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}

// MaxPInfo decodes table 'maxp'.
// Returns (info, true) on success, or (zero, false) if table is missing or broken.
func MaxPInfo(otf *ot.Font) (MaxPTableInfo, bool) {
	var info MaxPTableInfo
	if otf == nil {
		return info, false
	}
	maxp, err := otf.Maxp()
	if err != nil {
		tracer().Debugf("maxp: %v", err)
		return info, false
	}
	info.VersionFixed = uint32(maxp.Version())
	info.NumGlyphs = maxp.NumGlyphs()
	v1, ok := maxp.V1()
	if !ok {
		return info, true
	}
	info.HasExtendedProfile = true
	info.MaxPoints = uint16(v1.MaxPoints)
	info.MaxContours = uint16(v1.MaxContours)
	info.MaxCompositePoints = uint16(v1.MaxCompositePoints)
	info.MaxCompositeContours = uint16(v1.MaxCompositeContours)
	info.MaxZones = uint16(v1.MaxZones)
	info.MaxTwilightPoints = uint16(v1.MaxTwilightPoints)
	info.MaxStorage = uint16(v1.MaxStorage)
	info.MaxFunctionDefs = uint16(v1.MaxFunctionDefs)
	info.MaxInstructionDefs = uint16(v1.MaxInstructionDefs)
	info.MaxStackElements = uint16(v1.MaxStackElements)
	info.MaxSizeOfInstructions = uint16(v1.MaxSizeOfInstructions)
	info.MaxComponentElements = uint16(v1.MaxComponentElements)
	info.MaxComponentDepth = uint16(v1.MaxComponentDepth)
	return info, true
}

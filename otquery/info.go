package otquery

import (
	"github.com/cbreeden/fontkit/ot"
	"golang.org/x/image/font/sfnt"
)

// FontType returns the font type, encoded in the font header, as a string:
// "OpenType" for fonts with CFF outlines, "TrueType" for fonts with TrueType
// outlines.
func FontType(otf *ot.Font) string {
	if otf == nil || otf.Header == nil {
		return ""
	}
	return otf.Header.Version.String()
}

var nameInfoKeys = map[sfnt.NameID]string{
	sfnt.NameIDCopyright:            "copyright",
	sfnt.NameIDFamily:               "family",
	sfnt.NameIDSubfamily:            "subfamily",
	sfnt.NameIDUniqueIdentifier:     "identifier",
	sfnt.NameIDFull:                 "fullname",
	sfnt.NameIDVersion:              "version",
	sfnt.NameIDPostScript:           "postscript",
	sfnt.NameIDTrademark:            "trademark",
	sfnt.NameIDManufacturer:         "manufacturer",
	sfnt.NameIDDesigner:             "designer",
	sfnt.NameIDLicense:              "license",
	sfnt.NameIDTypographicFamily:    "typographic-family",
	sfnt.NameIDTypographicSubfamily: "typographic-subfamily",
}

// NameInfo returns general information about a font, as found in its 'name'
// table, keyed by
//
//	copyright family subfamily identifier fullname version postscript trademark
//	manufacturer designer license typographic-family typographic-subfamily
//
// Keys are missing if the font has no (decodable) entry for them.
func NameInfo(otf *ot.Font) map[string]string {
	info := make(map[string]string)
	if otf == nil {
		return info
	}
	name, err := otf.Name()
	if err != nil {
		tracer().Infof("font has no usable name table: %v", err)
		return info
	}
	for id, key := range nameInfoKeys {
		if s, ok := name.Lookup(uint16(id)); ok {
			info[key] = s
		}
	}
	return info
}

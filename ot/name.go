package ot

import (
	"fmt"
	"iter"

	"github.com/cbreeden/fontkit/wire"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// PlatformID identifies the platform of a 'name' record.
type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1
	PlatformIDWindows   PlatformID = 3
)

// Encoding IDs we know how to decode.
const (
	EncodingIDMacRoman      = 0  // platform Macintosh
	EncodingIDWindowsSymbol = 0  // platform Windows, UTF-16
	EncodingIDWindowsBMP    = 1  // platform Windows, UTF-16
	EncodingIDWindowsFull   = 10 // platform Windows, UTF-16
)

// NameRecord is an entry of table 'name', locating one string in the string
// storage area of the table.
type NameRecord struct {
	PlatformID wire.U16
	EncodingID wire.U16
	LanguageID wire.U16
	NameID     wire.U16
	Length     wire.U16      // string length in bytes
	Offset     wire.Offset16 // from start of storage area
}

var nameRecordSchema = wire.NewSchema("NameRecord",
	wire.Plain("platformID", func(r *NameRecord) *wire.U16 { return &r.PlatformID }),
	wire.Plain("encodingID", func(r *NameRecord) *wire.U16 { return &r.EncodingID }),
	wire.Plain("languageID", func(r *NameRecord) *wire.U16 { return &r.LanguageID }),
	wire.Plain("nameID", func(r *NameRecord) *wire.U16 { return &r.NameID }),
	wire.Plain("length", func(r *NameRecord) *wire.U16 { return &r.Length }),
	wire.Plain("stringOffset", func(r *NameRecord) *wire.Offset16 { return &r.Offset }),
)

func (r *NameRecord) Decode(b wire.View) error {
	return nameRecordSchema.DecodeInto(r, b, wire.NoParams)
}

func (NameRecord) StaticSize() int   { return nameRecordSchema.MustStaticSize() }
func (r NameRecord) EncodeSize() int { return r.StaticSize() }

func (r NameRecord) String() string {
	return fmt.Sprintf("name(%d/%d/%#x #%d)", r.PlatformID, r.EncodingID, uint16(r.LanguageID), r.NameID)
}

// Name is table 'name', holding multilingual strings associated with the font:
// copyright notices, font names, family names, style names, and so on.
//
// Strings are located relative to the start of the table, which is why a Name
// needs the table's bytes as its decode parameter:
//
//	name, err := wire.DecodeWith[ot.Name](data, data)
//
// Version 1 tables carry language-tag records after the name records; they
// are not decoded.
type Name struct {
	Format        wire.U16
	Count         wire.U16
	StorageOffset wire.Offset16 // from start of table
	Records       wire.Array[NameRecord]
	table         wire.View
}

var nameSchema = wire.NewSchema("name",
	wire.FromParam("table", func(n *Name) *wire.View { return &n.table }),
	wire.Plain("version", func(n *Name) *wire.U16 { return &n.Format }),
	wire.Plain("count", func(n *Name) *wire.U16 { return &n.Count }),
	wire.Plain("storageOffset", func(n *Name) *wire.Offset16 { return &n.StorageOffset }),
	wire.WithParam("nameRecord", func(n *Name) *wire.Array[NameRecord] { return &n.Records }, "count"),
)

func (n *Name) Arity() int { return nameSchema.Arity() }

func (n *Name) DecodeWith(b wire.View, p wire.Params) error {
	return nameSchema.DecodeInto(n, b, p)
}

func (n Name) EncodeSize() int { return nameSchema.EncodeSize(&n) }

// TableTag is 'name'.
func (Name) TableTag() Tag { return T("name") }

// Bytes returns the raw bytes of the string for rec.
func (n Name) Bytes(rec NameRecord) (wire.View, error) {
	storage, err := n.StorageOffset.Resolve(n.table)
	if err != nil {
		return nil, err
	}
	str, err := rec.Offset.Resolve(storage)
	if err != nil {
		return nil, err
	}
	return str.Sub(0, int(rec.Length))
}

// Value returns the string for rec, converted to UTF-8.
func (n Name) Value(rec NameRecord) (string, error) {
	b, err := n.Bytes(rec)
	if err != nil {
		return "", err
	}
	return decodeNameString(PlatformID(rec.PlatformID), uint16(rec.EncodingID), b)
}

// All iterates over all records with a decodable string, in table order.
// Records with unsupported encodings or out-of-bounds strings are skipped.
func (n Name) All() iter.Seq2[NameRecord, string] {
	return func(yield func(NameRecord, string) bool) {
		for rec := range n.Records.All() {
			s, err := n.Value(rec)
			if err != nil || s == "" {
				continue
			}
			if !yield(rec, s) {
				return
			}
		}
	}
}

// Lookup returns the string for a name ID. Windows Unicode strings are
// preferred over Unicode platform strings, which are preferred over Macintosh
// strings. Within a platform, the first record with a decodable string wins.
func (n Name) Lookup(nameID uint16) (string, bool) {
	best, rank := "", 0
	for rec, s := range n.All() {
		if uint16(rec.NameID) != nameID {
			continue
		}
		r := platformRank(PlatformID(rec.PlatformID))
		if r > rank {
			best, rank = s, r
		}
	}
	return best, rank > 0
}

func platformRank(p PlatformID) int {
	switch p {
	case PlatformIDWindows:
		return 3
	case PlatformIDUnicode:
		return 2
	case PlatformIDMacintosh:
		return 1
	}
	return 0
}

func decodeNameString(platform PlatformID, encoding uint16, b []byte) (string, error) {
	switch {
	case platform == PlatformIDUnicode,
		platform == PlatformIDWindows && (encoding == EncodingIDWindowsSymbol ||
			encoding == EncodingIDWindowsBMP || encoding == EncodingIDWindowsFull):
		s, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-16 error: %w", err)
		}
		return string(s), nil
	case platform == PlatformIDMacintosh && encoding == EncodingIDMacRoman:
		s, err := charmap.Macintosh.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("decoding Mac Roman error: %w", err)
		}
		return string(s), nil
	}
	return "", ErrUnsupportedNameEncoding
}

package ot

import (
	"encoding/binary"
	"slices"

	"github.com/cbreeden/fontkit/wire"
)

// be concatenates values into big-endian font data.
func be(items ...any) wire.View {
	var b []byte
	for _, item := range items {
		switch v := item.(type) {
		case uint16:
			b = binary.BigEndian.AppendUint16(b, v)
		case int16:
			b = binary.BigEndian.AppendUint16(b, uint16(v))
		case uint32:
			b = binary.BigEndian.AppendUint32(b, v)
		case uint64:
			b = binary.BigEndian.AppendUint64(b, v)
		case string:
			b = append(b, v...)
		case []byte:
			b = append(b, v...)
		case wire.View:
			b = append(b, v...)
		default:
			panic("be: unsupported type")
		}
	}
	return b
}

// buildFont assembles a TrueType font from tables, sorted by tag and
// aligned to 4 bytes.
func buildFont(tables map[string]wire.View) wire.View {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	n := uint16(len(tags))
	header := be(uint32(0x00010000), n, uint16(0), uint16(0), uint16(0))
	offset := uint32(12 + 16*int(n))
	var records, data []byte
	for _, tag := range tags {
		t := tables[tag]
		records = be(records, tag, uint32(0), offset, uint32(len(t)))
		data = append(data, t...)
		for len(data)%4 != 0 {
			data = append(data, 0)
		}
		offset = uint32(12+16*int(n)) + uint32(len(data))
	}
	return be(header, records, data)
}

func maxpV05Bytes(numGlyphs uint16) wire.View {
	return be(uint32(0x00005000), numGlyphs)
}

func maxpV1Bytes(numGlyphs uint16) wire.View {
	b := be(uint32(0x00010000), numGlyphs)
	for i := range 13 {
		b = be(b, uint16(i+1))
	}
	return b
}

func headBytes(unitsPerEm uint16, magic uint32) wire.View {
	return be(uint16(1), uint16(0), uint32(0x00018000), uint32(0xcafebabe), magic,
		uint16(0x000b), unitsPerEm, uint64(3600000000), uint64(3700000000),
		int16(-100), int16(-200), int16(1000), int16(900),
		uint16(1), uint16(8), int16(2), int16(1), int16(0))
}

func hheaBytes(numberOfHMetrics uint16) wire.View {
	return be(uint16(1), uint16(0), int16(800), int16(-200), int16(90), uint16(1200),
		int16(-50), int16(-60), int16(1100), int16(1), int16(0), int16(0),
		int16(0x7777), int16(0x7777), int16(0x7777), int16(0x7777), // reserved
		int16(0), numberOfHMetrics)
}

// nameBytes creates a 'name' table with a Windows and a Macintosh family name.
func nameBytes(family string) wire.View {
	utf16 := make([]byte, 0, 2*len(family))
	for _, r := range family {
		utf16 = binary.BigEndian.AppendUint16(utf16, uint16(r))
	}
	count := uint16(3)
	storage := uint16(6 + 12*int(count))
	return be(uint16(0), count, storage,
		uint16(1), uint16(0), uint16(0), uint16(1), uint16(len(family)), uint16(0), // Mac Roman
		uint16(3), uint16(1), uint16(0x409), uint16(1), uint16(len(utf16)), uint16(len(family)), // Windows
		uint16(7), uint16(1), uint16(0), uint16(2), uint16(2), uint16(0), // unknown platform
		family, utf16)
}

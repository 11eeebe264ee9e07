package fontkit

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/cbreeden/fontkit/wire"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

func TestParseGoRegular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Go Regular", f.Fontname)
	family, subfamily := FamilyName(f.OT)
	assert.Equal(t, "Go", family)
	assert.Equal(t, "Regular", subfamily)
}

func TestFamilyNamePrefersWindowsRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit")
	defer teardown()
	//
	records := []struct {
		platform, encoding, language, nameID uint16
		value                                string
	}{
		{3, 1, 0x409, 1, "Right"},
		{3, 1, 0x409, 2, "Bold"},
		{1, 0, 0, 1, "Wrong"},
		{1, 0, 0, 2, "Thin"},
	}
	var storage []byte
	name := binary.BigEndian.AppendUint16(nil, 0)
	name = binary.BigEndian.AppendUint16(name, uint16(len(records)))
	name = binary.BigEndian.AppendUint16(name, uint16(6+12*len(records)))
	for _, rec := range records {
		var str []byte
		if rec.platform == 3 {
			for _, r := range rec.value {
				str = binary.BigEndian.AppendUint16(str, uint16(r))
			}
		} else {
			str = []byte(rec.value)
		}
		for _, v := range []uint16{rec.platform, rec.encoding, rec.language, rec.nameID,
			uint16(len(str)), uint16(len(storage))} {
			name = binary.BigEndian.AppendUint16(name, v)
		}
		storage = append(storage, str...)
	}
	name = append(name, storage...)
	//
	font := binary.BigEndian.AppendUint32(nil, 0x00010000)
	font = binary.BigEndian.AppendUint16(font, 1)
	font = append(font, make([]byte, 6)...)
	font = append(font, "name"...)
	font = binary.BigEndian.AppendUint32(font, 0)
	font = binary.BigEndian.AppendUint32(font, 28)
	font = binary.BigEndian.AppendUint32(font, uint32(len(name)))
	font = append(font, name...)
	//
	f, err := ParseOpenTypeFont(font)
	require.NoError(t, err)
	family, subfamily := FamilyName(f.OT)
	assert.Equal(t, "Right", family)
	assert.Equal(t, "Bold", subfamily)
	assert.Equal(t, "Right", f.Fontname, "font without full name is named by its family")
}

func TestParseCollectionFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit")
	defer teardown()
	//
	ttc := append([]byte("ttcf"), make([]byte, 32)...)
	_, err := FromBinary(ttc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrTTCFUnsupported), "error is %v", err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadOpenTypeFont("no/such/font.ttf")
	assert.Error(t, err)
}

func TestAdvancesMonospace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit")
	defer teardown()
	//
	otf, err := FromBinary(gomono.TTF)
	require.NoError(t, err)
	glyphs, err := Advances(otf, "Hello")
	require.NoError(t, err)
	require.Len(t, glyphs, 5)
	for _, g := range glyphs[1:] {
		assert.Equal(t, glyphs[0].Advance, g.Advance, "Go Mono is monospaced")
	}
	assert.Equal(t, glyphs[2].Glyph, glyphs[3].Glyph, "both 'l' map to the same glyph")
	w, err := Width(otf, "Hello")
	require.NoError(t, err)
	assert.Equal(t, 5*glyphs[0].Advance, w)
}

func TestAdvancesAgainstSFNT(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit")
	defer teardown()
	//
	otf, err := FromBinary(goregular.TTF)
	require.NoError(t, err)
	ref, err := sfnt.Parse(goregular.TTF)
	require.NoError(t, err)
	var buf sfnt.Buffer
	glyphs, err := Advances(otf, "Wolf")
	require.NoError(t, err)
	for _, g := range glyphs {
		gid, err := ref.GlyphIndex(&buf, g.Rune)
		require.NoError(t, err)
		assert.Equal(t, gid, g.Glyph, "glyph for %q", g.Rune)
	}
	empty, err := Advances(otf, "")
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

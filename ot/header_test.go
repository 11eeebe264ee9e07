package ot

import (
	"testing"

	"github.com/cbreeden/fontkit/wire"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.ot")
	defer teardown()
	//
	cases := []struct {
		tag  wire.View
		want Version
		err  error
	}{
		{be("OTTO"), VersionOpenType, nil},
		{be(uint32(0x00010000)), VersionTrueType, nil},
		{be("true"), VersionTrueType, nil},
		{be("typ1"), VersionTrueType, nil},
		{be("ttcf"), 0, wire.ErrTTCFUnsupported},
		{be("wOFF"), 0, wire.ErrInvalidData},
		{be("OTT"), 0, wire.ErrUnexpectedEOF},
	}
	for _, c := range cases {
		v, err := wire.Decode[Version](c.tag)
		if c.err != nil {
			assert.ErrorIs(t, err, c.err, "version %q", string(c.tag))
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, c.want, v)
		assert.Equal(t, 4, v.EncodeSize())
	}
	assert.Equal(t, "OpenType", VersionOpenType.String())
	assert.Equal(t, "TrueType", VersionTrueType.String())
}

var twoTableHeader = be("OTTO", uint16(2), uint16(32), uint16(1), uint16(0),
	"head", uint32(0x11111111), uint32(44), uint32(54),
	"maxp", uint32(0x22222222), uint32(100), uint32(6),
)

func TestFontHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.ot")
	defer teardown()
	//
	h, err := wire.Decode[FontHeader](twoTableHeader)
	require.NoError(t, err)
	assert.Equal(t, VersionOpenType, h.Version)
	assert.Equal(t, wire.U16(2), h.NumTables)
	assert.Equal(t, 12+2*16, h.EncodeSize())
	assert.Equal(t, 16, wire.SizeOf[TableRecord]())
	recs := make([]TableRecord, 0, 2)
	for rec := range h.Tables.All() {
		recs = append(recs, rec)
	}
	require.Len(t, recs, 2)
	assert.Equal(t, TableRecord{T("head"), 0x11111111, 44, 54}, recs[0])
	assert.Equal(t, TableRecord{T("maxp"), 0x22222222, 100, 6}, recs[1])
	assert.Equal(t, "maxp[100:+6]", recs[1].String())
}

func TestFontHeaderTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.ot")
	defer teardown()
	//
	short := twoTableHeader[:len(twoTableHeader)-1]
	_, err := wire.Decode[FontHeader](short)
	assert.ErrorIs(t, err, wire.ErrUnexpectedEOF)
	_, err = wire.Decode[FontHeader](twoTableHeader[:11])
	assert.ErrorIs(t, err, wire.ErrUnexpectedEOF)
	//
	c := wire.NewCursor(be(twoTableHeader, "tail"))
	_, err = wire.Read[FontHeader](c)
	require.NoError(t, err)
	assert.Equal(t, 44, c.Consumed())
}

func TestFontHeaderCollection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.ot")
	defer teardown()
	//
	ttc := be("ttcf", uint16(1), uint16(0), uint32(1), uint32(12))
	_, err := wire.Decode[FontHeader](ttc)
	assert.ErrorIs(t, err, wire.ErrTTCFUnsupported)
	_, err = Parse(ttc)
	assert.ErrorIs(t, err, wire.ErrTTCFUnsupported)
}

package wire

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = View{0x80, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}

func checkPrimitive[T any, PT Ptr[T]](t *testing.T, size int) {
	t.Helper()
	v, err := Decode[T, PT](sample[:size])
	require.NoError(t, err, "%T from %d bytes", v, size)
	assert.Equal(t, size, PT(&v).EncodeSize(), "encode size of %T", v)
	s, ok := any(v).(StaticSizer)
	require.True(t, ok, "%T should have a static size", v)
	assert.Equal(t, size, s.StaticSize(), "static size of %T", v)
	w, err := Decode[T, PT](sample)
	require.NoError(t, err)
	assert.Equal(t, v, w, "extra bytes must not change a decoded %T", v)
	_, err = Decode[T, PT](sample[:size-1])
	assert.ErrorIs(t, err, ErrUnexpectedEOF, "%T from %d bytes", v, size-1)
	_, err = Decode[T, PT](nil)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestPrimitiveSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	checkPrimitive[U8](t, 1)
	checkPrimitive[I8](t, 1)
	checkPrimitive[U16](t, 2)
	checkPrimitive[I16](t, 2)
	checkPrimitive[Uint24](t, 3)
	checkPrimitive[U32](t, 4)
	checkPrimitive[I32](t, 4)
	checkPrimitive[I64](t, 8)
	checkPrimitive[FWord](t, 2)
	checkPrimitive[UFWord](t, 2)
	checkPrimitive[F2Dot14](t, 2)
	checkPrimitive[Fixed](t, 4)
	checkPrimitive[LongDateTime](t, 8)
	checkPrimitive[Tag](t, 4)
	checkPrimitive[Offset16](t, 2)
	checkPrimitive[Offset32](t, 4)
}

func TestPrimitiveValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	u8, _ := Decode[U8](sample)
	assert.Equal(t, U8(0x80), u8)
	i8, _ := Decode[I8](sample)
	assert.Equal(t, I8(-128), i8)
	u16, _ := Decode[U16](sample)
	assert.Equal(t, U16(0x8001), u16)
	i16, _ := Decode[I16](View{0xff, 0xfe})
	assert.Equal(t, I16(-2), i16)
	u24, _ := Decode[Uint24](sample)
	assert.Equal(t, Uint24(0x800102), u24)
	u32, _ := Decode[U32](sample)
	assert.Equal(t, U32(0x80010203), u32)
	i32, _ := Decode[I32](View{0xff, 0xff, 0xff, 0xff})
	assert.Equal(t, I32(-1), i32)
	i64, _ := Decode[I64](View{0, 0, 0, 0, 0, 0, 0x01, 0x00})
	assert.Equal(t, I64(256), i64)
	fw, _ := Decode[FWord](View{0xfe, 0x0c})
	assert.Equal(t, FWord(-500), fw)
	ufw, _ := Decode[UFWord](View{0x08, 0x00})
	assert.Equal(t, UFWord(2048), ufw)
}

func TestF2Dot14(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	cases := []struct {
		raw  View
		want float64
	}{
		{View{0x7f, 0xff}, 1.99993896484375},
		{View{0x70, 0x00}, 1.75},
		{View{0x00, 0x01}, 0.00006103515625},
		{View{0x00, 0x00}, 0},
		{View{0xff, 0xff}, -0.00006103515625},
		{View{0x80, 0x00}, -2.0},
	}
	for _, c := range cases {
		v, err := Decode[F2Dot14](c.raw)
		require.NoError(t, err)
		assert.Equal(t, c.want, v.Float64(), "F2Dot14 %x as float64", []byte(c.raw))
		assert.Equal(t, float32(c.want), v.Float32(), "F2Dot14 %x as float32", []byte(c.raw))
	}
}

func TestFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	cases := []struct {
		raw  View
		want float64
	}{
		{View{0x00, 0x01, 0x00, 0x00}, 1.0},
		{View{0x00, 0x00, 0x50, 0x00}, 0.3125},
		{View{0xff, 0xff, 0x80, 0x00}, -0.5},
		{View{0x00, 0x02, 0x80, 0x00}, 2.5},
	}
	for _, c := range cases {
		v, err := Decode[Fixed](c.raw)
		require.NoError(t, err)
		assert.Equal(t, c.want, v.Float64())
		assert.Equal(t, float32(c.want), v.Float32())
	}
}

func TestLongDateTime(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	zero, err := Decode[LongDateTime](make(View, 8))
	require.NoError(t, err)
	assert.True(t, zero.Time().Equal(time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)))
	unix := LongDateTime(2082844800)
	assert.Equal(t, int64(0), unix.Time().Unix())
}

func TestTagString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	tag, err := Decode[Tag](View("cmap"))
	require.NoError(t, err)
	assert.Equal(t, "cmap", tag.String())
	assert.Equal(t, Tag(0x636d6170), tag)
	assert.Equal(t, tag, MakeTag([]byte("cmap")))
	assert.Equal(t, tag, T("cmap"))
	assert.Equal(t, "OS/2", T("OS/2").String())
	assert.Equal(t, "cvt ", T("cvt").String())
	assert.Equal(t, "0x00010000", Tag(0x00010000).String())
	assert.Equal(t, "0x4F54541F", Tag(0x4f54541f).String())
	assert.Equal(t, "0x6D6178FF", Tag(0x6d6178ff).String())
}

func TestOffsetResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	o := Offset16(4)
	v, err := o.Resolve(sample)
	require.NoError(t, err)
	assert.Equal(t, sample[4:], v)
	_, err = Offset32(11).Resolve(sample)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.True(t, Offset32(0).IsNull())
}

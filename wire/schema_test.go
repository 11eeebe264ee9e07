package wire

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counted struct {
	Version U16
	Count   U16
	Check   Discard[U32]
	Items   Array[U16]
}

var countedSchema = NewSchema("counted",
	Plain("version", func(r *counted) *U16 { return &r.Version }),
	Plain("count", func(r *counted) *U16 { return &r.Count }),
	Ignored[counted, U16]("reserved"),
	Discarded("check", func(r *counted) *Discard[U32] { return &r.Check }),
	WithParam("items", func(r *counted) *Array[U16] { return &r.Items }, "count"),
)

var countedBytes = View{
	0x00, 0x01, // version
	0x00, 0x02, // count
	0xff, 0xff, // reserved
	0xde, 0xad, 0xbe, 0xef, // check
	0x00, 0x0a, 0x00, 0x0b, // items
}

func TestSchemaFieldKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	r, err := countedSchema.Decode(countedBytes)
	require.NoError(t, err)
	assert.Equal(t, U16(1), r.Version)
	assert.Equal(t, U16(2), r.Count)
	assert.Equal(t, 4, r.Check.EncodeSize())
	assert.Equal(t, []U16{10, 11}, slices.Collect(r.Items.All()))
	assert.Equal(t, len(countedBytes), countedSchema.EncodeSize(&r))
	_, static := countedSchema.StaticSize()
	assert.False(t, static, "record with an array has no static size")
}

func TestSchemaTruncation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	for n := range len(countedBytes) {
		_, err := countedSchema.Decode(countedBytes[:n])
		assert.ErrorIs(t, err, ErrUnexpectedEOF, "record truncated to %d bytes", n)
	}
}

func TestSchemaNoPartialRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	r := counted{Version: 7}
	err := countedSchema.DecodeInto(&r, countedBytes[:9], NoParams)
	require.Error(t, err)
	assert.Equal(t, U16(7), r.Version, "failed decode must leave the record untouched")
	assert.Equal(t, U16(0), r.Count)
}

type metrics struct {
	Long  U16
	Total U16
	Pairs Array[pair]
	Tail  Array[I16]
}

var metricsSchema = NewSchema("metrics",
	FromParam("long", func(r *metrics) *U16 { return &r.Long }),
	FromParam("total", func(r *metrics) *U16 { return &r.Total }),
	WithParam("pairs", func(r *metrics) *Array[pair] { return &r.Pairs }, "long"),
	WithParamFunc("tail", func(r *metrics) *Array[I16] { return &r.Tail },
		func(r *metrics) []any { return []any{int(r.Total) - int(r.Long)} }),
)

func (r *metrics) Arity() int                        { return metricsSchema.Arity() }
func (r *metrics) DecodeWith(b View, p Params) error { return metricsSchema.DecodeInto(r, b, p) }
func (r metrics) EncodeSize() int                    { return metricsSchema.EncodeSize(&r) }

func TestSchemaParameters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	b := View{'a', 'b', 'c', 'd', 0, 0, 0, 9, 0xff, 0xff, 0x00, 0x05}
	r, err := DecodeWith[metrics](b, 1, uint16(3))
	require.NoError(t, err)
	assert.Equal(t, U16(1), r.Long)
	assert.Equal(t, U16(3), r.Total)
	assert.Equal(t, []pair{{T("abcd"), 9}}, slices.Collect(r.Pairs.All()))
	assert.Equal(t, []I16{-1, 5}, slices.Collect(r.Tail.All()))
	assert.Equal(t, 12, r.EncodeSize(), "param-sourced fields occupy no bytes")
	//
	c := NewCursor(append(b, 0xaa))
	_, err = Read[metrics](c, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Consumed())
	//
	_, err = DecodeWith[metrics](b, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidData, "negative count")
	_, err = DecodeWith[metrics](b, 4, 4)
	assert.ErrorIs(t, err, ErrUnexpectedEOF, "too many pairs")
	var schemaError *SchemaError
	_, err = DecodeWith[metrics](b, 1)
	assert.ErrorAs(t, err, &schemaError, "missing parameter")
	_, err = DecodeWith[metrics](b, 1, "x")
	assert.ErrorAs(t, err, &schemaError, "parameter of wrong type")
}

type padded struct {
	Count U16
	Pad   Discard[Array[U16]]
	Last  U16
}

var paddedSchema = NewSchema("padded",
	Plain("count", func(r *padded) *U16 { return &r.Count }),
	DiscardedWithParam("pad", func(r *padded) *Discard[Array[U16]] { return &r.Pad }, "count"),
	Plain("last", func(r *padded) *U16 { return &r.Last }),
)

func TestSchemaDiscardedArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	b := View{0x00, 0x03, 0, 1, 0, 2, 0, 3, 0x12, 0x34}
	r, err := paddedSchema.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, U16(3), r.Count)
	assert.Equal(t, 6, r.Pad.EncodeSize())
	assert.Equal(t, U16(0x1234), r.Last, "decoding continues after the discarded array")
	assert.Equal(t, len(b), paddedSchema.EncodeSize(&r))
	//
	_, err = paddedSchema.Decode(View{0x00, 0x04, 0, 1, 0, 2, 0, 3, 0x12, 0x34})
	assert.ErrorIs(t, err, ErrUnexpectedEOF, "field after the array is missing")
	//
	noRefs := NewSchema("padded",
		Plain("count", func(r *padded) *U16 { return &r.Count }),
		Discarded("pad", func(r *padded) *Discard[Array[U16]] { return &r.Pad }),
	)
	var schemaError *SchemaError
	assert.ErrorAs(t, noRefs.Err(), &schemaError, "discarded array needs its count")
}

type triple struct{ A, B, C U16 }

func TestSchemaDefinitionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	schemas := map[string]interface{ Err() error }{
		"three parameters": NewSchema("triple",
			FromParam("a", func(r *triple) *U16 { return &r.A }),
			FromParam("b", func(r *triple) *U16 { return &r.B }),
			FromParam("c", func(r *triple) *U16 { return &r.C }),
		),
		"forward reference": NewSchema("forward",
			WithParam("items", func(r *counted) *Array[U16] { return &r.Items }, "count"),
			Plain("count", func(r *counted) *U16 { return &r.Count }),
		),
		"unknown reference": NewSchema("unknown",
			WithParam("items", func(r *counted) *Array[U16] { return &r.Items }, "length"),
		),
		"discarded reference": NewSchema("discarded",
			Ignored[counted, U16]("count"),
			WithParam("items", func(r *counted) *Array[U16] { return &r.Items }, "count"),
		),
		"missing parameter": NewSchema("missing",
			Plain("items", func(r *counted) *Array[U16] { return &r.Items }),
		),
		"duplicate name": NewSchema("duplicate",
			Plain("count", func(r *counted) *U16 { return &r.Version }),
			Plain("count", func(r *counted) *U16 { return &r.Count }),
		),
	}
	for name, s := range schemas {
		var schemaError *SchemaError
		assert.ErrorAs(t, s.Err(), &schemaError, name)
	}
	bad := schemas["three parameters"].(*Schema[triple])
	_, err := bad.Decode(View{0, 0}, 1, 2)
	var schemaError *SchemaError
	assert.ErrorAs(t, err, &schemaError, "decode with a broken schema fails before decoding")
}

func TestSchemaStaticSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	n, ok := pairSchema.StaticSize()
	require.True(t, ok)
	assert.Equal(t, 8, n)
	assert.Equal(t, 8, SizeOf[pair]())
	assert.Panics(t, func() { countedSchema.MustStaticSize() })
}

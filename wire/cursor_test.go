package wire

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorConsumes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	c := NewCursor(View{0x00, 0x02, 'h', 'e', 'a', 'd', 0x00, 0x01, 0x00, 0x02, 0xff})
	n, err := Read[U16](c)
	require.NoError(t, err)
	assert.Equal(t, U16(2), n)
	assert.Equal(t, 2, c.Consumed())
	tag, err := Read[Tag](c)
	require.NoError(t, err)
	assert.Equal(t, T("head"), tag)
	arr, err := Read[Array[U16]](c, n)
	require.NoError(t, err)
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 10, c.Consumed())
	assert.Equal(t, 1, c.Remaining().Len())
}

func TestCursorDoesNotAdvanceOnFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	c := NewCursor(View{0x00, 0x03, 0x00, 0x01, 0x00})
	n, err := Read[U16](c)
	require.NoError(t, err)
	_, err = Read[U32](c)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.Equal(t, 2, c.Consumed())
	// a lazy array decodes fine, but does not fit the remaining bytes
	_, err = Read[Array[U16]](c, n)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.Equal(t, 2, c.Consumed())
	assert.ErrorIs(t, c.Skip(4), ErrUnexpectedEOF)
	require.NoError(t, c.Skip(3))
	assert.Equal(t, 0, c.Remaining().Len())
}

func TestCursorParamCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.wire")
	defer teardown()
	//
	c := NewCursor(View{0, 0, 0, 0})
	var schemaError *SchemaError
	_, err := Read[Array[U16]](c)
	assert.ErrorAs(t, err, &schemaError, "array without count")
	_, err = Read[U16](c, 1)
	assert.ErrorAs(t, err, &schemaError, "primitive with parameter")
	_, err = Read[U16](c, 1, 2, 3)
	assert.ErrorAs(t, err, &schemaError, "more than two parameters")
	assert.Equal(t, 0, c.Consumed())
}

package ot

import (
	"testing"

	"github.com/cbreeden/fontkit/wire"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.ot")
	defer teardown()
	//
	tag := Tag(0x636d6170)
	if tag.String() != "cmap" {
		t.Errorf("expected tag 0x636d6170 to be 'cmap', is %s", tag.String())
	}
	tag = wire.MakeTag([]byte("cmap"))
	if tag.String() != "cmap" {
		t.Errorf("expected tag MakeTag(cmap) to be 'cmap', is %s", tag.String())
	}
	tag = T("cmap")
	if tag.String() != "cmap" {
		t.Errorf("expected tag T(cmap) to be 'cmap', is %s", tag.String())
	}
}

func TestTableTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.ot")
	defer teardown()
	//
	for tag, table := range map[string]TaggedTable{
		"maxp": Maxp{}, "head": Head{}, "hhea": HHea{}, "hmtx": HMtx{},
		"name": Name{}, "cmap": CMap{}, "loca": Loca{},
	} {
		assert.Equal(t, tag, table.TableTag().String())
	}
}

func TestFontTableAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.ot")
	defer teardown()
	//
	_, otf := loadGoFont(t, "goregular")
	tags := otf.TableTags()
	require.NotEmpty(t, tags)
	for i := 1; i < len(tags); i++ {
		assert.Less(t, tags[i-1], tags[i], "tags should be sorted")
	}
	rec, ok := otf.TableRecord(T("head"))
	require.True(t, ok)
	b, err := otf.Table(T("head"))
	require.NoError(t, err)
	assert.Equal(t, int(rec.Length), b.Len())
	//
	_, err = otf.Table(T("GSUB"))
	assert.ErrorIs(t, err, ErrTableNotFound)
	assert.False(t, otf.HasTable(T("CFF ")))
}

package otquery

import (
	"testing"

	"github.com/cbreeden/fontkit/internal/fontload"
	"github.com/cbreeden/fontkit/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type InfoTestEnviron struct {
	suite.Suite
	font *fontload.ScalableFont
	otf  *ot.Font
}

// listen for 'go test' command --> run test methods
func TestInfoFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.query")
	defer teardown()
	suite.Run(t, new(InfoTestEnviron))
}

// run once, before test suite methods
func (env *InfoTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("fontkit.query").SetTraceLevel(tracing.LevelError)
	f, err := fontload.LoadGoFont("goregular")
	env.Require().NoError(err)
	otf, err := ot.Parse(f.Binary)
	env.Require().NoError(err)
	env.font, env.otf = f, otf
	tracing.Select("fontkit.query").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *InfoTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *InfoTestEnviron) TestFontTypeInfo() {
	fti := FontType(env.otf)
	env.Equal("TrueType", fti, "expected font type of test font to be TrueType")
	env.Equal("", FontType(nil))
}

func (env *InfoTestEnviron) TestGeneralInfo() {
	info := NameInfo(env.otf)
	env.T().Logf("info = %v", info)
	fam, ok := info["family"]
	env.Require().True(ok, "font familiy identifier not found in font info")
	env.Equal("Go", fam, "expected font family name 'Go'")
	env.Equal("Regular", info["subfamily"])
	env.Equal("Go Regular", info["fullname"])
}

func (env *InfoTestEnviron) TestHeadInfo() {
	h, ok := HeadInfo(env.otf)
	env.Require().True(ok, "expected to decode table 'head'")
	env.Equal(uint16(1), h.MajorVersion)
	env.Equal(uint32(ot.HeadMagicNumber), h.MagicNumber)
	env.Equal(env.font.SFNT.UnitsPerEm(), sfnt.Units(h.UnitsPerEm))
	env.False(h.Created.IsZero())
	env.True(h.Created.Year() > 1904, "creation date should be after the epoch, is %v", h.Created)
	env.False(h.Modified.Before(h.Created), "font modified before created")
	env.NotZero(h.CheckSumAdjustment)
	_, ok = HeadInfo(nil)
	env.False(ok)
}

func (env *InfoTestEnviron) TestMaxPInfo() {
	m, ok := MaxPInfo(env.otf)
	env.Require().True(ok, "expected to decode table 'maxp'")
	env.Equal(uint32(0x00010000), m.VersionFixed)
	env.Equal(env.font.SFNT.NumGlyphs(), int(m.NumGlyphs))
	env.True(m.HasExtendedProfile, "TrueType fonts carry the extended profile")
	env.NotZero(m.MaxPoints)
	env.NotZero(m.MaxContours)
}

func (env *InfoTestEnviron) TestHHeaInfo() {
	h, ok := HHeaInfo(env.otf)
	env.Require().True(ok, "expected to decode table 'hhea'")
	env.Equal(uint16(1), h.MajorVersion)
	env.Greater(h.Ascender, int16(0))
	env.Less(h.Descender, int16(0))
	env.NotZero(h.NumberOfHMetrics)
	env.Equal(int16(1), h.CaretSlopeRise, "upright font should have a vertical caret")
}

func (env *InfoTestEnviron) TestFontMetrics() {
	m := FontMetrics(env.otf)
	h, _ := HHeaInfo(env.otf)
	env.Equal(env.font.SFNT.UnitsPerEm(), m.UnitsPerEm)
	env.Equal(sfnt.Units(h.Ascender), m.Ascent)
	env.Equal(sfnt.Units(h.Descender), m.Descent)
	env.Equal(sfnt.Units(h.AdvanceWidthMax), m.MaxAdvance)
	env.Equal(FontMetricsInfo{}, FontMetrics(nil))
}

func (env *InfoTestEnviron) TestGlyphIndex() {
	var buf sfnt.Buffer
	for _, r := range "Aaßä€{ " {
		want, err := env.font.SFNT.GlyphIndex(&buf, r)
		env.Require().NoError(err)
		env.Equal(want, GlyphIndex(env.otf, r), "glyph index for %q", r)
	}
	env.Equal(sfnt.GlyphIndex(0), GlyphIndex(env.otf, 0x10FFFF))
}

func (env *InfoTestEnviron) TestCodePointForGlyph() {
	gid := GlyphIndex(env.otf, 'A')
	env.Require().NotZero(gid)
	env.Equal('A', CodePointForGlyph(env.otf, gid))
	env.Equal(rune(0), CodePointForGlyph(env.otf, 0))
}

func (env *InfoTestEnviron) TestGlyphMetrics() {
	head, _ := HeadInfo(env.otf)
	gid := GlyphIndex(env.otf, 'M')
	m := GlyphMetrics(env.otf, gid)
	env.Greater(m.Advance, sfnt.Units(0))
	env.False(m.BBox.IsEmpty())
	env.GreaterOrEqual(m.BBox.MinX, sfnt.Units(head.XMin))
	env.LessOrEqual(m.BBox.MaxY, sfnt.Units(head.YMax))
	env.Equal(m.Advance, m.LSB+m.BBox.Dx()+m.RSB)
	//
	space := GlyphMetrics(env.otf, GlyphIndex(env.otf, ' '))
	env.True(space.BBox.IsEmpty(), "space has no outline")
	env.Zero(space.RSB)
	env.Greater(space.Advance, sfnt.Units(0))
}

func (env *InfoTestEnviron) TestNamesRange() {
	n := 0
	family := false
	for id, s := range NamesRange(env.otf) {
		n++
		if id == sfnt.NameIDFamily && s == "Go" {
			family = true
		}
	}
	env.Greater(n, 0)
	env.True(family, "expected family name among names")
	for range NamesRange(nil) {
		env.Fail("nil font should not yield names")
	}
}

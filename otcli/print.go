package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/cbreeden/fontkit/otquery"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"
)

var errTableBroken = errors.New("table missing or broken, run with -trace Debug for details")

func maxpOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	m, ok := otquery.MaxPInfo(otf)
	if !ok {
		return errTableBroken, false
	}
	data := [][]string{
		{"Field", "Value"},
		{"version", fmt.Sprintf("0x%08x", m.VersionFixed)},
		{"numGlyphs", num(m.NumGlyphs)},
	}
	if m.HasExtendedProfile {
		data = append(data,
			[]string{"maxPoints", num(m.MaxPoints)},
			[]string{"maxContours", num(m.MaxContours)},
			[]string{"maxCompositePoints", num(m.MaxCompositePoints)},
			[]string{"maxCompositeContours", num(m.MaxCompositeContours)},
			[]string{"maxZones", num(m.MaxZones)},
			[]string{"maxTwilightPoints", num(m.MaxTwilightPoints)},
			[]string{"maxStorage", num(m.MaxStorage)},
			[]string{"maxFunctionDefs", num(m.MaxFunctionDefs)},
			[]string{"maxInstructionDefs", num(m.MaxInstructionDefs)},
			[]string{"maxStackElements", num(m.MaxStackElements)},
			[]string{"maxSizeOfInstructions", num(m.MaxSizeOfInstructions)},
			[]string{"maxComponentElements", num(m.MaxComponentElements)},
			[]string{"maxComponentDepth", num(m.MaxComponentDepth)},
		)
	}
	renderTable(data)
	return nil, false
}

func headOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	h, ok := otquery.HeadInfo(otf)
	if !ok {
		return errTableBroken, false
	}
	data := [][]string{
		{"Field", "Value"},
		{"version", fmt.Sprintf("%d.%d", h.MajorVersion, h.MinorVersion)},
		{"fontRevision", fmt.Sprintf("%.3f", h.FontRevision)},
		{"checkSumAdjustment", fmt.Sprintf("0x%08x", h.CheckSumAdjustment)},
		{"magicNumber", fmt.Sprintf("0x%08x", h.MagicNumber)},
		{"flags", fmt.Sprintf("%016b", h.Flags)},
		{"unitsPerEm", num(h.UnitsPerEm)},
		{"created", h.Created.Format(time.RFC3339)},
		{"modified", h.Modified.Format(time.RFC3339)},
		{"bbox", fmt.Sprintf("(%d,%d) – (%d,%d)", h.XMin, h.YMin, h.XMax, h.YMax)},
		{"macStyle", fmt.Sprintf("%07b", h.MacStyle)},
		{"lowestRecPPEM", num(h.LowestRecPPEM)},
		{"fontDirectionHint", num(h.FontDirectionHint)},
		{"indexToLocFormat", num(h.IndexToLocFormat)},
		{"glyphDataFormat", num(h.GlyphDataFormat)},
	}
	renderTable(data)
	return nil, false
}

func hheaOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	h, ok := otquery.HHeaInfo(otf)
	if !ok {
		return errTableBroken, false
	}
	data := [][]string{
		{"Field", "Value"},
		{"version", fmt.Sprintf("%d.%d", h.MajorVersion, h.MinorVersion)},
		{"ascender", num(h.Ascender)},
		{"descender", num(h.Descender)},
		{"lineGap", num(h.LineGap)},
		{"advanceWidthMax", num(h.AdvanceWidthMax)},
		{"minLeftSideBearing", num(h.MinLeftSideBearing)},
		{"minRightSideBearing", num(h.MinRightSideBearing)},
		{"xMaxExtent", num(h.XMaxExtent)},
		{"caretSlope", fmt.Sprintf("%d/%d", h.CaretSlopeRise, h.CaretSlopeRun)},
		{"caretOffset", num(h.CaretOffset)},
		{"numberOfHMetrics", num(h.NumberOfHMetrics)},
	}
	renderTable(data)
	return nil, false
}

// hmtxOp prints the metrics of a glyph, given by index, e.g. "hmtx:36".
func hmtxOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	if op.noArg() {
		m := otquery.FontMetrics(otf)
		pterm.Printf("units/em=%d ascent=%d descent=%d linegap=%d max-advance=%d\n",
			m.UnitsPerEm, m.Ascent, m.Descent, m.LineGap, m.MaxAdvance)
		return nil, false
	}
	gid, err := strconv.Atoi(op.arg)
	if err != nil || gid < 0 || gid > 0xffff {
		return fmt.Errorf("glyph index not numeric: %v", op.arg), false
	}
	printGlyphMetrics(intp, sfnt.GlyphIndex(gid))
	return nil, false
}

func namesOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	data := [][]string{
		{"ID", "Value"},
	}
	for id, s := range otquery.NamesRange(otf) {
		if op.noArg() || op.arg == num(uint16(id)) {
			data = append(data, []string{num(uint16(id)), preview(s, 60)})
		}
	}
	if len(data) == 1 {
		return errors.New("no decodable names found"), false
	}
	renderTable(data)
	return nil, false
}

// cmapOp maps a character to its glyph, e.g. "cmap:A" or "cmap:U+00E4".
func cmapOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	arg, ok := op.hasArg()
	if !ok {
		return errors.New("usage: cmap:<char> or cmap:U+<hex>"), false
	}
	r, err := parseRune(arg)
	if err != nil {
		return err, false
	}
	gid := otquery.GlyphIndex(otf, r)
	pterm.Printf("%U %q → glyph %d\n", r, r, gid)
	if gid != 0 {
		printGlyphMetrics(intp, gid)
	}
	return nil, false
}

// glyphOp finds the character for a glyph, e.g. "glyph:36".
func glyphOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	gid, err := strconv.Atoi(op.arg)
	if err != nil || gid < 0 || gid > 0xffff {
		return fmt.Errorf("glyph index not numeric: %v", op.arg), false
	}
	r := otquery.CodePointForGlyph(otf, sfnt.GlyphIndex(gid))
	if r == 0 {
		pterm.Printf("glyph %d is not mapped from any character\n", gid)
		return nil, false
	}
	pterm.Printf("glyph %d ← %U %q\n", gid, r, r)
	return nil, false
}

func printGlyphMetrics(intp *Intp, gid sfnt.GlyphIndex) {
	m := otquery.GlyphMetrics(intp.font.OT, gid)
	data := [][]string{
		{"Glyph", "Advance", "LSB", "RSB", "BBox"},
		{
			fmt.Sprintf("%d", gid),
			fmt.Sprintf("%d", m.Advance),
			fmt.Sprintf("%d", m.LSB),
			fmt.Sprintf("%d", m.RSB),
			fmt.Sprintf("(%d,%d) – (%d,%d)", m.BBox.MinX, m.BBox.MinY, m.BBox.MaxX, m.BBox.MaxY),
		},
	}
	renderTable(data)
}

// --- Helpers ----------------------------------------------------------

func num[T ~int16 | ~uint16](n T) string {
	return strconv.Itoa(int(n))
}

func parseRune(s string) (rune, error) {
	if len(s) > 2 && (s[:2] == "U+" || s[:2] == "u+") {
		n, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil || n > utf8.MaxRune {
			return 0, fmt.Errorf("invalid code point: %s", s)
		}
		return rune(n), nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("expected a single character: %q", s)
	}
	return r, nil
}

func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "…"
}

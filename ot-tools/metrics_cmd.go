package main

import (
	"fmt"
	"strings"

	"github.com/cbreeden/fontkit"
	"github.com/cbreeden/fontkit/otquery"
	"github.com/thatisuday/commando"
	"golang.org/x/image/font/sfnt"
)

func runMetricsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	f := mustLoadFont(args["font"].Value)
	input, err := parseTextInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	if input == "" {
		fatalf("input text is empty")
	}
	size := mustFlagInt(flags["size"], "size")
	if size < 0 {
		fatalf("--size must be >= 0")
	}
	glyphs, err := fontkit.Advances(f.OT, input)
	if err != nil {
		fatalf("cannot measure text: %v", err)
	}
	fm := otquery.FontMetrics(f.OT)
	fmt.Print(formatGlyphOutput(f, glyphs))
	var total sfnt.Units
	for _, g := range glyphs {
		total += g.Advance
	}
	fmt.Printf("width: %d units", total)
	if size > 0 && fm.UnitsPerEm > 0 {
		fmt.Printf(" = %.2fpt at %dpt", float64(total)*float64(size)/float64(fm.UnitsPerEm), size)
	}
	fmt.Println()
}

// formatGlyphOutput lists glyphs one per line, as
//
//	U+0041 'A' gid=36 adv=1366 lsb=0 rsb=0
func formatGlyphOutput(f *fontkit.ScalableFont, glyphs []fontkit.GlyphAdvance) string {
	var sb strings.Builder
	for _, g := range glyphs {
		m := otquery.GlyphMetrics(f.OT, g.Glyph)
		notdef := ""
		if g.Glyph == 0 {
			notdef = " (.notdef)"
		}
		fmt.Fprintf(&sb, "%U %q gid=%d adv=%d lsb=%d rsb=%d%s\n",
			g.Rune, g.Rune, g.Glyph, g.Advance, m.LSB, m.RSB, notdef)
	}
	return sb.String()
}

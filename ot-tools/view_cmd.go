package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbreeden/fontkit"
	"github.com/cbreeden/fontkit/otquery"
	"github.com/thatisuday/commando"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

func runViewCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	f := mustLoadFont(args["font"].Value)
	input, err := parseTextInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	if input == "" {
		fatalf("input text is empty")
	}
	outPath, err := flags["output"].GetString()
	if err != nil {
		fatalf("invalid --output flag: %v", err)
	}
	outPath = strings.TrimSpace(outPath)
	if outPath == "" {
		fatalf("output path is empty")
	}
	opts := viewOptions{
		ppem:       mustFlagInt(flags["ppem"], "ppem"),
		width:      mustFlagInt(flags["width"], "width"),
		height:     mustFlagInt(flags["height"], "height"),
		showBBoxes: mustFlagBool(flags["show-bboxes"], "show-bboxes"),
	}
	if opts.ppem <= 0 {
		fatalf("--ppem must be > 0")
	}
	if opts.width <= 0 || opts.height <= 0 {
		fatalf("--width and --height must be > 0")
	}
	glyphs, err := fontkit.Advances(f.OT, input)
	if err != nil {
		fatalf("cannot map text to glyphs: %v", err)
	}
	img, err := renderGlyphRun(f, glyphs, opts)
	if err != nil {
		fatalf("render failed: %v", err)
	}
	if err := writePNG(img, outPath); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("wrote %s (glyphs=%d)\n", outPath, len(glyphs))
}

type viewOptions struct {
	ppem          int
	width, height int
	showBBoxes    bool
}

// renderGlyphRun draws glyph outlines, as loaded by package sfnt, at pen
// positions derived from our own advance widths. Bounding boxes come from
// our own decoding of table 'glyf', so a misplaced box shows a decoding bug.
func renderGlyphRun(f *fontkit.ScalableFont, glyphs []fontkit.GlyphAdvance, opts viewOptions) (*image.RGBA, error) {
	if len(glyphs) == 0 {
		return nil, errors.New("empty glyph run")
	}
	sf, err := sfnt.Parse(f.Binary)
	if err != nil {
		return nil, fmt.Errorf("cannot parse sfnt font for rasterization: %w", err)
	}
	upem := float32(sf.UnitsPerEm())
	if upem <= 0 {
		return nil, errors.New("invalid units-per-em")
	}
	scale := float32(opts.ppem) / upem

	type glyphPath struct {
		segs sfnt.Segments
		dx   float32
		bbox otquery.BoundingBox
	}
	paths := make([]glyphPath, 0, len(glyphs))
	var (
		penX float32
		buf  sfnt.Buffer
	)
	for _, g := range glyphs {
		segs, err := sf.LoadGlyph(&buf, g.Glyph, fixed.I(opts.ppem), nil)
		if err == nil {
			// sfnt.LoadGlyph results become invalid once the buffer is re-used.
			// Copy segments before the next sfnt call.
			segsCopy := append(sfnt.Segments(nil), segs...)
			bbox := otquery.GlyphMetrics(f.OT, g.Glyph).BBox
			paths = append(paths, glyphPath{segs: segsCopy, dx: penX, bbox: bbox})
		}
		penX += float32(g.Advance) * scale
	}
	if len(paths) == 0 {
		return nil, errors.New("no drawable glyph paths found")
	}
	// center the run horizontally, baseline at 2/3 of the height
	shiftX := (float32(opts.width) - penX) / 2
	shiftY := float32(opts.height) * 2 / 3

	img := image.NewRGBA(image.Rect(0, 0, opts.width, opts.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{255, 255, 255, 255}), image.Point{}, draw.Src)

	rast := vector.NewRasterizer(opts.width, opts.height)
	rast.DrawOp = draw.Over
	pt := func(p fixed.Point26_6, dx float32) (float32, float32) {
		return shiftX + dx + float32(p.X)/64, shiftY + float32(p.Y)/64
	}
	for _, p := range paths {
		for _, seg := range p.segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				rast.MoveTo(pt(seg.Args[0], p.dx))
			case sfnt.SegmentOpLineTo:
				rast.LineTo(pt(seg.Args[0], p.dx))
			case sfnt.SegmentOpQuadTo:
				x1, y1 := pt(seg.Args[0], p.dx)
				x2, y2 := pt(seg.Args[1], p.dx)
				rast.QuadTo(x1, y1, x2, y2)
			case sfnt.SegmentOpCubeTo:
				x1, y1 := pt(seg.Args[0], p.dx)
				x2, y2 := pt(seg.Args[1], p.dx)
				x3, y3 := pt(seg.Args[2], p.dx)
				rast.CubeTo(x1, y1, x2, y2, x3, y3)
			}
		}
	}
	rast.Draw(img, img.Bounds(), image.Black, image.Point{})
	if opts.showBBoxes {
		for _, p := range paths {
			if p.bbox.IsEmpty() {
				continue
			}
			// font units are y-up, image coordinates are y-down
			minX := int(shiftX + p.dx + float32(p.bbox.MinX)*scale)
			maxX := int(shiftX + p.dx + float32(p.bbox.MaxX)*scale)
			minY := int(shiftY - float32(p.bbox.MaxY)*scale)
			maxY := int(shiftY - float32(p.bbox.MinY)*scale)
			drawRectOutline(img, minX, minY, maxX, maxY, color.RGBA{255, 0, 0, 255})
		}
	}
	return img, nil
}

func writePNG(img image.Image, outPath string) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}

func drawRectOutline(img *image.RGBA, minX int, minY int, maxX int, maxY int, c color.RGBA) {
	if img == nil {
		return
	}
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	if maxY < minY {
		minY, maxY = maxY, minY
	}
	b := img.Bounds()
	minX, minY = max(minX, b.Min.X), max(minY, b.Min.Y)
	maxX, maxY = min(maxX, b.Max.X-1), min(maxY, b.Max.Y-1)
	for x := minX; x <= maxX; x++ {
		img.SetRGBA(x, minY, c)
		img.SetRGBA(x, maxY, c)
	}
	for y := minY; y <= maxY; y++ {
		img.SetRGBA(minX, y, c)
		img.SetRGBA(maxX, y, c)
	}
}

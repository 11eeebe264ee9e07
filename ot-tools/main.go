package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/cbreeden/fontkit"
	"github.com/cbreeden/fontkit/internal/fontload"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("ot-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for OpenType font diagnostics.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("font").
		SetDescription("Print diagnostics and table information for an OpenType font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "OpenType font file path or Go font name (goregular, gomono, …)", "").
		AddArgument("tables...", "optional list of table tags (e.g. maxp,head)", "").
		SetAction(runFontCommand)

	commando.
		Register("metrics").
		SetDescription("Map text to glyphs and print their metrics, without shaping.").
		SetShortDescription("glyph metrics").
		AddArgument("font", "OpenType font file path or Go font name", "").
		AddArgument("text...", "text to measure", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0041,U+00E4)", commando.String, "-").
		AddFlag("size,s", "font size in points, for widths in points (0 for font units only)", commando.Int, 0).
		SetAction(runMetricsCommand)

	commando.
		Register("view").
		SetDescription("Render text to a PNG image, with glyph advances and bounding boxes.").
		SetShortDescription("text to image").
		AddArgument("font", "OpenType font file path or Go font name", "").
		AddArgument("text...", "text to render", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0041,U+00E4)", commando.String, "-").
		AddFlag("output,o", "output PNG file", commando.String, "ot-tools-view.png").
		AddFlag("show-bboxes,B", "draw red bounding-box outlines per rendered glyph", commando.Bool, nil).
		AddFlag("ppem,p", "render scale in pixels-per-em", commando.Int, 96).
		AddFlag("width,W", "image width in pixels", commando.Int, 320).
		AddFlag("height,H", "image height in pixels", commando.Int, 240).
		SetAction(runViewCommand)

	commando.Parse(nil)
}

// --- Input ------------------------------------------------------------

func parseTextInput(textArg commando.ArgValue, cpFlag commando.FlagValue) (string, error) {
	cps, err := cpFlag.GetString()
	if err != nil {
		return "", fmt.Errorf("invalid --codepoints flag: %w", err)
	}
	if cps = strings.TrimSpace(cps); cps != "" && cps != "-" {
		runes, err := parseCodepoints(cps)
		if err != nil {
			return "", err
		}
		return string(runes), nil
	}
	// commando joins variadic arguments with commas
	return strings.ReplaceAll(textArg.Value, ",", " "), nil
}

func parseCodepoints(spec string) ([]rune, error) {
	parts := splitCSVSpace(spec)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseCodepointToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("invalid codepoint %q: beyond Unicode range", token)
	}
	return rune(u), nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// --- Helpers ----------------------------------------------------------

func loadFont(name string) (*fontkit.ScalableFont, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("font path is required")
	}
	if slices.Contains(fontload.GoFontNames(), name) {
		gofont, err := fontload.LoadGoFont(name)
		if err != nil {
			return nil, err
		}
		f, err := fontkit.ParseOpenTypeFont(gofont.Binary)
		if err != nil {
			return nil, err
		}
		f.Filepath = gofont.Filepath
		return f, nil
	}
	return fontkit.LoadOpenTypeFont(name)
}

func mustLoadFont(name string) *fontkit.ScalableFont {
	f, err := loadFont(name)
	if err != nil {
		fatalf("cannot load font %s: %v", name, err)
	}
	return f
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ot-tools: "+format+"\n", args...)
	os.Exit(1)
}

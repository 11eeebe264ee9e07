package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "table", "tables", "directory":
		pterm.Info.Println("Table Directory")
		pterm.Println(`
	The font header is followed by one TableRecord per table:
	+-----+----------+--------+--------+
	| Tag | Checksum | Offset | Length |
	+-----+----------+--------+--------+
	Records are sorted by tag. Offsets are from the start of the font
	and every table starts on a four byte boundary.

	tables         lists the directory
	table:<tag>    shows one record and a hex preview of the table
	header         shows the font header
	`)
	case "maxp", "version", "versions":
		pterm.Info.Println("Versioned Tables")
		pterm.Println(`
	Table 'maxp' starts with a version number which selects its layout:
	+------------+------------------------------------+
	| 0x00005000 | numGlyphs only (CFF outlines)      |
	| 0x00010000 | numGlyphs plus the TrueType limits |
	+------------+------------------------------------+
	Other version numbers are rejected as unsupported.
	`)
	case "glyph", "glyphs", "metrics", "hmtx", "cmap":
		pterm.Info.Println("Glyphs and Metrics")
		pterm.Println(`
	hmtx           shows font-wide metrics
	hmtx:<gid>     shows advance, side bearings and bounding box of a glyph
	cmap:<char>    maps a character (or U+<hex>) to its glyph
	glyph:<gid>    finds the character mapped to a glyph
	`)
	default:
		pterm.Info.Println("General Help")
		pterm.Println(`
	Commands may be chained on one line, e.g. "header table:head".

	tables, table:<tag>, header      table directory   (help:tables)
	maxp, head, hhea                 decoded tables    (help:maxp)
	hmtx[:<gid>], cmap:<char>        glyph metrics     (help:glyphs)
	glyph:<gid>
	names[:<id>]                     strings of table 'name'
	help[:<topic>], quit
	`)
	}
}

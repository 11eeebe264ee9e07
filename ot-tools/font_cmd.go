package main

import (
	"fmt"
	"strings"

	"github.com/cbreeden/fontkit/ot"
	"github.com/cbreeden/fontkit/otquery"
	"github.com/thatisuday/commando"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	f := mustLoadFont(args["font"].Value)
	otf := f.OT

	fmt.Printf("Path: %s\n", f.Filepath)
	fmt.Printf("Type: %s\n", otquery.FontType(otf))
	names := otquery.NameInfo(otf)
	if family := names["family"]; family != "" {
		fmt.Printf("Family: %s\n", family)
	}
	if sub := names["subfamily"]; sub != "" {
		fmt.Printf("Subfamily: %s\n", sub)
	}
	if version := names["version"]; version != "" {
		fmt.Printf("Version: %s\n", version)
	}

	tags := otf.TableTags()
	fmt.Printf("Tables (%d):", len(tags))
	for _, tag := range tags {
		fmt.Printf(" %s", tag.String())
	}
	fmt.Println()
	if missing := otf.MissingTables(); len(missing) > 0 {
		fmt.Printf("Missing: %s\n", strings.Join(missing, ","))
	}
	if n, err := otf.NumGlyphs(); err == nil {
		fmt.Printf("Glyphs: %d\n", n)
	}
	fmt.Printf("Issues: %s\n", strings.Join(checkTables(otf), "; "))

	if len(args["tables"].Value) > 0 {
		printSelectedTables(otf, args["tables"].Value)
	}
}

// checkTables decodes every table this module knows about and reports failures.
func checkTables(otf *ot.Font) []string {
	decoders := []struct {
		tag    string
		decode func() error
	}{
		{"maxp", func() error { _, err := otf.Maxp(); return err }},
		{"head", func() error { _, err := otf.Head(); return err }},
		{"hhea", func() error { _, err := otf.HHea(); return err }},
		{"hmtx", func() error { _, err := otf.HMtx(); return err }},
		{"name", func() error { _, err := otf.Name(); return err }},
		{"cmap", func() error {
			cmap, err := otf.CMap()
			if err == nil {
				_, err = cmap.Unicode()
			}
			return err
		}},
		{"loca", func() error { _, err := otf.Loca(); return err }},
	}
	var issues []string
	for _, d := range decoders {
		if !otf.HasTable(ot.T(d.tag)) {
			continue
		}
		if err := d.decode(); err != nil {
			issues = append(issues, err.Error())
		}
	}
	if len(issues) == 0 {
		return []string{"none"}
	}
	return issues
}

func printSelectedTables(otf *ot.Font, raw string) {
	requested := splitCSVSpace(raw)
	for _, t := range requested {
		tagName := strings.TrimSpace(t)
		if tagName == "" {
			continue
		}
		tag := ot.T(tagName)
		rec, ok := otf.TableRecord(tag)
		if !ok {
			fmt.Printf("table %s: missing\n", tagName)
			continue
		}
		fmt.Printf("table %s: offset=%d size=%d checksum=0x%08x\n", tagName,
			rec.Offset, rec.Length, uint32(rec.CheckSum))
	}
}

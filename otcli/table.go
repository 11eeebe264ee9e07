package main

import (
	"encoding/hex"
	"fmt"

	"github.com/cbreeden/fontkit/ot"
	"github.com/pterm/pterm"
)

func tablesOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	data := [][]string{
		{"Tag", "Offset", "Length", "Checksum"},
	}
	for _, tag := range otf.TableTags() {
		rec, _ := otf.TableRecord(tag)
		data = append(data, []string{
			tag.String(),
			fmt.Sprintf("%d", rec.Offset),
			fmt.Sprintf("%d", rec.Length),
			fmt.Sprintf("0x%08x", uint32(rec.CheckSum)),
		})
	}
	renderTable(data)
	return nil, false
}

func tableOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	tag, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("usage: table:<tag>"), false
	}
	t := ot.T(tag)
	rec, ok := otf.TableRecord(t)
	if !ok {
		return fmt.Errorf("table %s not found in font", t), false
	}
	intp.table = t
	tracer().Infof("setting table: %v", t)
	pterm.Printf("%s\n", rec)
	b, err := otf.Table(t)
	if err != nil {
		return err, false
	}
	n := min(intp.conf.PreviewLen, b.Len())
	if n > 0 {
		pterm.Print(hex.Dump(b.Slice(0, n).Bytes()))
	}
	if n < b.Len() {
		pterm.Printf("… %d more bytes\n", b.Len()-n)
	}
	return nil, false
}

func headerOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	h := otf.Header
	data := [][]string{
		{"Field", "Value"},
		{"sfntVersion", h.Version.String()},
		{"numTables", fmt.Sprintf("%d", h.NumTables)},
		{"directory size", fmt.Sprintf("%d bytes", h.EncodeSize())},
		{"font size", fmt.Sprintf("%d bytes", len(otf.Binary()))},
	}
	if missing := otf.MissingTables(); len(missing) > 0 {
		data = append(data, []string{"missing tables", fmt.Sprintf("%v", missing)})
	}
	renderTable(data)
	return nil, false
}

// renderTable prints data with a header row.
func renderTable(data [][]string) {
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

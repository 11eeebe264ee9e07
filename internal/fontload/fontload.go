// Package fontload loads fonts for tests and tools.
//
// Besides fonts from files, it offers the Go fonts (https://go.dev/blog/go-fonts),
// which are compiled into package golang.org/x/image/font/gofont and thus always
// available, without any test data on disk.
package fontload

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
// The SFNT view serves as an independent reference implementation to check
// our own decoders against.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	SFNT     *sfnt.Font
}

var goFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
	"goitalic":  goitalic.TTF,
	"gomono":    gomono.TTF,
}

// GoFontNames lists the names accepted by LoadGoFont.
func GoFontNames() []string {
	return []string{"goregular", "gobold", "goitalic", "gomono"}
}

// LoadGoFont loads one of the Go fonts by name, e.g. "goregular".
func LoadGoFont(name string) (*ScalableFont, error) {
	b, ok := goFonts[name]
	if !ok {
		return nil, fmt.Errorf("no Go font named %q", name)
	}
	f, err := ParseOpenTypeFont(b)
	if err != nil {
		return nil, err
	}
	f.Filepath = "gofont:" + name
	return f, nil
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		return nil, err
	}
	return f, nil
}

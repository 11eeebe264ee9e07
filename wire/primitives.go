package wire

import (
	"fmt"
	"time"
)

// Primitive types of the OpenType font file format.
// See https://learn.microsoft.com/en-us/typography/opentype/spec/otff#data-types.
//
// Every primitive has a fixed wire size, reported by StaticSize and EncodeSize,
// and decodes itself from the first bytes of a View. Extra bytes are ignored.

// U8 is an 8-bit unsigned integer.
type U8 uint8

func (U8) StaticSize() int { return 1 }
func (U8) EncodeSize() int { return 1 }

func (x *U8) Decode(b View) error {
	if err := b.need(1); err != nil {
		return err
	}
	*x = U8(b[0])
	return nil
}

// I8 is an 8-bit signed integer.
type I8 int8

func (I8) StaticSize() int { return 1 }
func (I8) EncodeSize() int { return 1 }

func (x *I8) Decode(b View) error {
	if err := b.need(1); err != nil {
		return err
	}
	*x = I8(int8(b[0]))
	return nil
}

// U16 is a 16-bit unsigned integer.
type U16 uint16

func (U16) StaticSize() int { return 2 }
func (U16) EncodeSize() int { return 2 }

func (x *U16) Decode(b View) error {
	if err := b.need(2); err != nil {
		return err
	}
	*x = U16(u16(b))
	return nil
}

// I16 is a 16-bit signed integer.
type I16 int16

func (I16) StaticSize() int { return 2 }
func (I16) EncodeSize() int { return 2 }

func (x *I16) Decode(b View) error {
	if err := b.need(2); err != nil {
		return err
	}
	*x = I16(int16(u16(b)))
	return nil
}

// Uint24 is a 24-bit unsigned integer.
type Uint24 uint32

func (Uint24) StaticSize() int { return 3 }
func (Uint24) EncodeSize() int { return 3 }

func (x *Uint24) Decode(b View) error {
	if err := b.need(3); err != nil {
		return err
	}
	*x = Uint24(u24(b))
	return nil
}

// U32 is a 32-bit unsigned integer.
type U32 uint32

func (U32) StaticSize() int { return 4 }
func (U32) EncodeSize() int { return 4 }

func (x *U32) Decode(b View) error {
	if err := b.need(4); err != nil {
		return err
	}
	*x = U32(u32(b))
	return nil
}

// I32 is a 32-bit signed integer.
type I32 int32

func (I32) StaticSize() int { return 4 }
func (I32) EncodeSize() int { return 4 }

func (x *I32) Decode(b View) error {
	if err := b.need(4); err != nil {
		return err
	}
	*x = I32(int32(u32(b)))
	return nil
}

// I64 is a 64-bit signed integer.
type I64 int64

func (I64) StaticSize() int { return 8 }
func (I64) EncodeSize() int { return 8 }

func (x *I64) Decode(b View) error {
	if err := b.need(8); err != nil {
		return err
	}
	*x = I64(int64(u64(b)))
	return nil
}

// FWord is a signed quantity in font design units.
type FWord int16

func (FWord) StaticSize() int { return 2 }
func (FWord) EncodeSize() int { return 2 }

func (x *FWord) Decode(b View) error {
	if err := b.need(2); err != nil {
		return err
	}
	*x = FWord(int16(u16(b)))
	return nil
}

// UFWord is an unsigned quantity in font design units.
type UFWord uint16

func (UFWord) StaticSize() int { return 2 }
func (UFWord) EncodeSize() int { return 2 }

func (x *UFWord) Decode(b View) error {
	if err := b.need(2); err != nil {
		return err
	}
	*x = UFWord(u16(b))
	return nil
}

// F2Dot14 is a signed fixed-point number with 14 fractional bits.
type F2Dot14 int16

func (F2Dot14) StaticSize() int { return 2 }
func (F2Dot14) EncodeSize() int { return 2 }

func (x *F2Dot14) Decode(b View) error {
	if err := b.need(2); err != nil {
		return err
	}
	*x = F2Dot14(int16(u16(b)))
	return nil
}

// Float32 returns the value as raw/16384.
func (x F2Dot14) Float32() float32 { return float32(x) / 16384 }

// Float64 returns the value as raw/16384.
func (x F2Dot14) Float64() float64 { return float64(x) / 16384 }

// Fixed is a signed fixed-point number with 16 fractional bits.
// Table versions are often stored as Fixed, e.g. 0x00010000 for version 1.0.
type Fixed int32

func (Fixed) StaticSize() int { return 4 }
func (Fixed) EncodeSize() int { return 4 }

func (x *Fixed) Decode(b View) error {
	if err := b.need(4); err != nil {
		return err
	}
	*x = Fixed(int32(u32(b)))
	return nil
}

// Float32 returns the value as raw/65536.
func (x Fixed) Float32() float32 { return float32(x) / 65536 }

// Float64 returns the value as raw/65536.
func (x Fixed) Float64() float64 { return float64(x) / 65536 }

// LongDateTime is a date, represented as the number of seconds since
// 12:00 midnight, January 1, 1904, UTC.
type LongDateTime uint64

func (LongDateTime) StaticSize() int { return 8 }
func (LongDateTime) EncodeSize() int { return 8 }

func (x *LongDateTime) Decode(b View) error {
	if err := b.need(8); err != nil {
		return err
	}
	*x = LongDateTime(u64(b))
	return nil
}

// seconds between 1904-01-01 and the Unix epoch
const secondsFrom1904To1970 = 2082844800

// Time returns the date as a UTC time.
func (x LongDateTime) Time() time.Time {
	return time.Unix(int64(x)-secondsFrom1904To1970, 0).UTC()
}

// --- Tags ------------------------------------------------------------------

// Tag is an identifier of four bytes, usually readable ASCII, e.g. 'cmap'.
type Tag uint32

func (Tag) StaticSize() int { return 4 }
func (Tag) EncodeSize() int { return 4 }

func (t *Tag) Decode(b View) error {
	if err := b.need(4); err != nil {
		return err
	}
	*t = Tag(u32(b))
	return nil
}

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended with spaces or cut.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

// Bytes returns the four bytes of t.
func (t Tag) Bytes() [4]byte {
	return [4]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
}

// String returns t as ASCII if all of its bytes are printable, and as a
// hexadecimal number otherwise, e.g. "0x00010000".
func (t Tag) String() string {
	b := t.Bytes()
	for _, c := range b {
		if c < 32 || c >= 128 {
			return fmt.Sprintf("0x%08X", uint32(t))
		}
	}
	return string(b[:])
}

// --- Offsets ---------------------------------------------------------------

// Offset16 is a 16-bit offset to a structure, relative to some base view.
type Offset16 uint16

func (Offset16) StaticSize() int { return 2 }
func (Offset16) EncodeSize() int { return 2 }

func (o *Offset16) Decode(b View) error {
	if err := b.need(2); err != nil {
		return err
	}
	*o = Offset16(u16(b))
	return nil
}

// IsNull reports whether o is the null offset.
func (o Offset16) IsNull() bool { return o == 0 }

// Resolve returns base starting at o.
func (o Offset16) Resolve(base View) (View, error) {
	return base.From(int(o))
}

// Offset32 is a 32-bit offset to a structure, relative to some base view.
type Offset32 uint32

func (Offset32) StaticSize() int { return 4 }
func (Offset32) EncodeSize() int { return 4 }

func (o *Offset32) Decode(b View) error {
	if err := b.need(4); err != nil {
		return err
	}
	*o = Offset32(u32(b))
	return nil
}

// IsNull reports whether o is the null offset.
func (o Offset32) IsNull() bool { return o == 0 }

// Resolve returns base starting at o.
func (o Offset32) Resolve(base View) (View, error) {
	return base.From(int(o))
}

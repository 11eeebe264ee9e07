package wire

import (
	"fmt"
	"math"
	"reflect"
)

// Decoder is implemented by types which decode themselves from the front of a
// View without further input.
type Decoder interface {
	Decode(b View) error
}

// ParamDecoder is implemented by types which need one or two values from their
// context to decode, e.g. an element count stored elsewhere.
type ParamDecoder interface {
	Arity() int
	DecodeWith(b View, p Params) error
}

// StaticSizer is implemented by types with a wire size independent of the
// value, i.e. a size known before decoding.
type StaticSizer interface {
	StaticSize() int
}

// Sizer is implemented by every decodable type. EncodeSize is the number of
// bytes the value occupied in the View it was decoded from.
type Sizer interface {
	EncodeSize() int
}

// Ptr constrains type parameters to pointers of decodable values.
type Ptr[T any] interface {
	*T
	Sizer
}

// --- Parameters ------------------------------------------------------------

// MaxParams is the maximum number of parameters a decodable type may require.
const MaxParams = 2

// Params is an ordered tuple of at most MaxParams decode parameters.
// The zero value holds no parameters.
type Params struct {
	n int
	v [MaxParams]any
}

// NoParams is the empty parameter tuple.
var NoParams = Params{}

// NewParams creates a parameter tuple. Passing more than MaxParams values is
// a *SchemaError.
func NewParams(args ...any) (Params, error) {
	if len(args) > MaxParams {
		return Params{}, schemaErr("Params", "", "%d parameters exceed the maximum of %d", len(args), MaxParams)
	}
	p := Params{n: len(args)}
	copy(p.v[:], args)
	return p, nil
}

// Len returns the number of parameters in p.
func (p Params) Len() int {
	return p.n
}

// At returns parameter i, or nil if there is none.
func (p Params) At(i int) any {
	if i < 0 || i >= p.n {
		return nil
	}
	return p.v[i]
}

// Int returns parameter i as an int. Every integer kind is accepted;
// values not representable as int yield ErrInvalidData.
func (p Params) Int(i int) (int, error) {
	if i < 0 || i >= p.n {
		return 0, schemaErr("Params", "", "no parameter at position %d", i)
	}
	rv := reflect.ValueOf(p.v[i])
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, ErrInvalidData
		}
		return int(u), nil
	}
	return 0, schemaErr("Params", "", "parameter %d is %T, not an integer", i, p.v[i])
}

func (p Params) String() string {
	return fmt.Sprintf("%v", p.v[:p.n])
}

// ParamAs returns parameter i of p converted to type T. Numeric parameters
// convert between numeric types; other parameters must have type T.
func ParamAs[T any](p Params, i int) (T, error) {
	if i < 0 || i >= p.n {
		var zero T
		return zero, schemaErr("Params", "", "no parameter at position %d", i)
	}
	return convertParam[T](p.v[i])
}

func convertParam[T any](arg any) (T, error) {
	var zero T
	if t, ok := arg.(T); ok {
		return t, nil
	}
	to := reflect.TypeOf(zero)
	rv := reflect.ValueOf(arg)
	if rv.IsValid() && to != nil && isNumeric(rv.Kind()) && isNumeric(to.Kind()) {
		return rv.Convert(to).Interface().(T), nil
	}
	return zero, schemaErr("Params", "", "parameter is %T, want %v", arg, to)
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

// --- Entry points ----------------------------------------------------------

// arityOf returns the number of parameters a decodable value needs.
func arityOf(v any) int {
	if pd, ok := v.(ParamDecoder); ok {
		return pd.Arity()
	}
	return 0
}

// decodeInto decodes b into v, which must be a pointer implementing Decoder
// or ParamDecoder, after checking p against the arity of v.
func decodeInto(v any, b View, p Params) error {
	switch d := v.(type) {
	case ParamDecoder:
		if d.Arity() != p.Len() || d.Arity() > MaxParams {
			return schemaErr(fmt.Sprintf("%T", v), "", "called with %d parameters, needs %d", p.Len(), d.Arity())
		}
		return d.DecodeWith(b, p)
	case Decoder:
		if p.Len() != 0 {
			return schemaErr(fmt.Sprintf("%T", v), "", "called with %d parameters, needs none", p.Len())
		}
		return d.Decode(b)
	}
	return schemaErr(fmt.Sprintf("%T", v), "", "type is not decodable")
}

// Decode decodes a T from the front of b. T must not need parameters.
//
//	v, err := wire.Decode[wire.U16](b)
func Decode[T any, PT Ptr[T]](b View) (T, error) {
	var v T
	if err := decodeInto(PT(&v), b, NoParams); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DecodeWith decodes a T from the front of b, handing args to T as parameters.
// The number of args must match the arity of T.
func DecodeWith[T any, PT Ptr[T]](b View, args ...any) (T, error) {
	var v T
	p, err := NewParams(args...)
	if err != nil {
		return v, err
	}
	if err := decodeInto(PT(&v), b, p); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Peek decodes a T from the front of b without consuming anything.
// It is Decode by another name, for use with Cursors and dispatchers.
func Peek[T any, PT Ptr[T]](b View) (T, error) {
	return Decode[T, PT](b)
}

// SizeOf returns the static wire size of T.
func SizeOf[T StaticSizer]() int {
	var v T
	return v.StaticSize()
}

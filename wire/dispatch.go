package wire

import (
	"fmt"
	"reflect"
)

// Dispatch decodes a value of sum type V whose layout depends on a
// discriminant K at its start, typically a table version number.
// The discriminant is peeked, not consumed: every variant decodes the whole
// view, discriminant included.
//
//	var maxpLayouts = wire.NewDispatch[wire.U32, Maxp]("maxp", peekU32).
//	    On(0x00005000, wire.As[Maxp, MaxpV05]()).
//	    On(0x00010000, wire.As[Maxp, MaxpV1]())
type Dispatch[K comparable, V any] struct {
	name    string
	peek    func(View) (K, error)
	cases   map[K]func(View) (V, error)
	unknown error
}

// NewDispatch creates a dispatcher reading its discriminant with peek.
// Unknown discriminants are reported as ErrUnsupportedVersion.
func NewDispatch[K comparable, V any](name string, peek func(View) (K, error)) *Dispatch[K, V] {
	return &Dispatch[K, V]{
		name:    name,
		peek:    peek,
		cases:   make(map[K]func(View) (V, error)),
		unknown: ErrUnsupportedVersion,
	}
}

// On registers the decoder for discriminant k.
// Dispatchers are set up once, before use; On is not safe for concurrent use.
func (d *Dispatch[K, V]) On(k K, decode func(View) (V, error)) *Dispatch[K, V] {
	if _, dup := d.cases[k]; dup {
		panic(schemaErr(d.name, "", "duplicate variant %v", k))
	}
	d.cases[k] = decode
	return d
}

// Unknown sets the error to report for discriminants without a variant.
func (d *Dispatch[K, V]) Unknown(err error) *Dispatch[K, V] {
	d.unknown = err
	return d
}

// Decode peeks the discriminant and decodes the matching variant.
func (d *Dispatch[K, V]) Decode(b View) (V, error) {
	var zero V
	k, err := d.peek(b)
	if err != nil {
		return zero, err
	}
	decode, ok := d.cases[k]
	if !ok {
		tracer().Debugf("%s: no variant for %v", d.name, k)
		return zero, d.unknown
	}
	return decode(b)
}

// Variants returns the number of registered variants.
func (d *Dispatch[K, V]) Variants() int {
	return len(d.cases)
}

// As adapts the decoder of a concrete variant type T to the sum type V.
// *T must be assignable to V.
func As[V any, T any, PT Ptr[T]]() func(View) (V, error) {
	return func(b View) (V, error) {
		var zero V
		t := PT(new(T))
		if err := decodeInto(t, b, NoParams); err != nil {
			return zero, err
		}
		v, ok := any(t).(V)
		if !ok {
			return zero, schemaErr(fmt.Sprintf("%T", t), "", "variant is not a %v", reflect.TypeOf((*V)(nil)).Elem())
		}
		return v, nil
	}
}

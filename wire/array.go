package wire

import (
	"fmt"
	"iter"
)

// Array is a counted sequence of fixed-size elements. Decoding an Array
// captures its count and the bytes following it; elements are decoded only when
// accessed. The count is the single decode parameter of an Array:
//
//	arr, err := wire.DecodeWith[wire.Array[wire.U16]](b, count)
//
// Element type T must be a static-size type whose pointer implements Decoder.
type Array[T StaticSizer] struct {
	view  View
	count int
}

// NewArray creates an array of count elements located at the start of b.
// It does not check whether b holds all of them.
func NewArray[T StaticSizer](b View, count int) Array[T] {
	if count < 0 {
		count = 0
	}
	return Array[T]{view: b, count: count}
}

// Arity is 1: arrays need their element count.
func (a *Array[T]) Arity() int {
	return 1
}

// DecodeWith captures b and the element count p[0]. No element is decoded.
func (a *Array[T]) DecodeWith(b View, p Params) error {
	count, err := p.Int(0)
	if err != nil {
		return err
	}
	if count < 0 {
		return ErrInvalidData
	}
	if !elementDecodable[T]() {
		var z T
		return schemaErr(fmt.Sprintf("Array[%T]", z), "", "element type is not decodable")
	}
	if _, err := checkedMul(count, SizeOf[T]()); err != nil {
		return err
	}
	a.view, a.count = b, count
	return nil
}

func elementDecodable[T StaticSizer]() bool {
	var z T
	_, ok := any(&z).(Decoder)
	return ok
}

// Len returns the number of elements.
func (a Array[T]) Len() int {
	return a.count
}

// EncodeSize returns count × element size.
func (a Array[T]) EncodeSize() int {
	return a.count * SizeOf[T]()
}

// View returns the bytes of the array, starting at its first element.
func (a Array[T]) View() View {
	return a.view.Slice(0, a.EncodeSize())
}

// Get decodes element i.
func (a Array[T]) Get(i int) (T, error) {
	var v T
	if i < 0 || i >= a.count {
		return v, ErrInvalidData
	}
	size := SizeOf[T]()
	b, err := a.view.Sub(i*size, size)
	if err != nil {
		return v, err
	}
	err = decodeInto(any(&v), b, NoParams)
	return v, err
}

// All returns an iterator over the elements of a, in order. Each call starts
// a fresh iteration. Iteration ends silently at the first element which
// cannot be decoded, e.g. because the underlying buffer is truncated; use Iter
// to find out whether all elements have been visited.
func (a Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := a.Iter()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
		if it.Err() != nil {
			tracer().Debugf("array iteration stopped after %d of %d elements: %v", it.index, a.count, it.Err())
		}
	}
}

// Iter returns a fresh stateful iterator over the elements of a.
func (a Array[T]) Iter() *ArrayIter[T] {
	return &ArrayIter[T]{cursor: NewCursor(a.view), count: a.count}
}

// ArrayIter iterates over the elements of an Array.
//
//	it := arr.Iter()
//	for it.Next() {
//	    v := it.Value()
//	}
//	if err := it.Err(); err != nil { … }
type ArrayIter[T StaticSizer] struct {
	cursor *Cursor
	count  int
	index  int
	value  T
	err    error
}

// Next decodes the next element and reports whether there was one.
func (it *ArrayIter[T]) Next() bool {
	if it.err != nil || it.index >= it.count {
		return false
	}
	var v T
	s, ok := any(&v).(Sizer)
	if !ok {
		it.err = schemaErr(fmt.Sprintf("Array[%T]", v), "", "element type has no encode size")
		return false
	}
	if err := it.cursor.read(s, NoParams); err != nil {
		it.err = err
		return false
	}
	it.value = v
	it.index++
	return true
}

// Value returns the element decoded by the last call to Next.
func (it *ArrayIter[T]) Value() T {
	return it.value
}

// Err returns the error which stopped the iteration early, if any.
func (it *ArrayIter[T]) Err() error {
	return it.err
}

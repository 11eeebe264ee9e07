package wire

import (
	"fmt"
	"sync"
)

// FieldKind tells how a field of a record takes part in decoding.
type FieldKind int

const (
	// KindPlain fields are decoded in order and stored.
	KindPlain FieldKind = iota
	// KindDiscarded fields are decoded and counted, but only their size is kept.
	KindDiscarded
	// KindIgnored fields are skipped by the static size of their type.
	KindIgnored
	// KindParamSourced fields are filled from the record's decode parameters.
	// They consume no bytes.
	KindParamSourced
	// KindWithParam fields are decoded with parameters taken from other fields.
	KindWithParam
)

func (k FieldKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindDiscarded:
		return "discarded"
	case KindIgnored:
		return "ignored"
	case KindParamSourced:
		return "param-sourced"
	case KindWithParam:
		return "with-param"
	}
	return "unknown"
}

// Field describes one field of a record type R. Fields are created with the
// constructors Plain, Discarded, DiscardedWithParam, Ignored, FromParam,
// WithParam and WithParamFunc, and are combined into a Schema.
type Field[R any] struct {
	name   string
	kind   FieldKind
	refs   []string
	expr   func(*R) []any
	arity  func() int
	static func() (int, bool)
	read   func(c *Cursor, rec *R, p Params) error
	assign func(rec *R, arg any) error
	value  func(rec *R) any
	size   func(rec *R) int
}

// Name returns the name of the field.
func (f Field[R]) Name() string { return f.name }

// Kind returns the kind of the field.
func (f Field[R]) Kind() FieldKind { return f.kind }

func staticOf[F any]() (int, bool) {
	var f F
	if s, ok := any(f).(StaticSizer); ok {
		return s.StaticSize(), true
	}
	return 0, false
}

// Plain declares a field which is decoded and stored at the location at
// returns. Its type must not need parameters.
//
//	wire.Plain("numTables", func(h *Header) *wire.U16 { return &h.NumTables })
func Plain[R any, F any, PF Ptr[F]](name string, at func(*R) PF) Field[R] {
	return Field[R]{
		name:   name,
		kind:   KindPlain,
		arity:  func() int { return arityOf(PF(new(F))) },
		static: staticOf[F],
		read: func(c *Cursor, rec *R, p Params) error {
			return c.read(at(rec), p)
		},
		value: func(rec *R) any { return *at(rec) },
		size:  func(rec *R) int { return at(rec).EncodeSize() },
	}
}

// Discard holds the place of a discarded field. It remembers how many bytes
// the field occupied.
type Discard[T any] struct {
	n int
}

// EncodeSize returns the number of bytes the discarded value occupied.
func (d Discard[T]) EncodeSize() int {
	return d.n
}

// Discarded declares a field which is decoded (and thus validated) and
// counted, but whose value is thrown away.
func Discarded[R any, F any, PF Ptr[F]](name string, at func(*R) *Discard[F]) Field[R] {
	return Field[R]{
		name:   name,
		kind:   KindDiscarded,
		arity:  func() int { return arityOf(PF(new(F))) },
		static: staticOf[F],
		read: func(c *Cursor, rec *R, p Params) error {
			var v F
			if err := c.read(PF(&v), p); err != nil {
				return err
			}
			at(rec).n = PF(&v).EncodeSize()
			return nil
		},
		size: func(rec *R) int { return at(rec).n },
	}
}

// DiscardedWithParam declares a discarded field whose type needs parameters,
// taken from other fields of the record like for WithParam.
//
//	wire.DiscardedWithParam("reserved", func(r *Rec) *wire.Discard[wire.Array[wire.U16]] { return &r.pad }, "count")
func DiscardedWithParam[R any, F any, PF Ptr[F]](name string, at func(*R) *Discard[F], refs ...string) Field[R] {
	f := Discarded[R, F, PF](name, at)
	f.refs = refs
	return f
}

// hasParams is true for fields decoded with parameters taken from the record.
func (f Field[R]) hasParams() bool {
	switch f.kind {
	case KindWithParam:
		return true
	case KindDiscarded:
		return f.refs != nil
	}
	return false
}

// Ignored declares a field of type F which is skipped without being decoded,
// e.g. a reserved field. It occupies no storage in the record.
//
//	wire.Ignored[Header, wire.U16]("searchRange")
func Ignored[R any, F StaticSizer](name string) Field[R] {
	return Field[R]{
		name:   name,
		kind:   KindIgnored,
		arity:  func() int { return 0 },
		static: func() (int, bool) { return SizeOf[F](), true },
		read: func(c *Cursor, _ *R, _ Params) error {
			return c.Skip(SizeOf[F]())
		},
		size: func(*R) int { return SizeOf[F]() },
	}
}

// FromParam declares a field which is not read from the binary data, but
// set from one of the record's decode parameters. Parameters are assigned to
// FromParam fields in declaration order. Numeric parameters convert to
// numeric field types.
func FromParam[R any, F any](name string, at func(*R) *F) Field[R] {
	return Field[R]{
		name:   name,
		kind:   KindParamSourced,
		arity:  func() int { return 0 },
		static: func() (int, bool) { return 0, true },
		assign: func(rec *R, arg any) error {
			v, err := convertParam[F](arg)
			if err != nil {
				return err
			}
			*at(rec) = v
			return nil
		},
		value: func(rec *R) any { return *at(rec) },
		size:  func(*R) int { return 0 },
	}
}

// WithParam declares a field decoded with parameters taken from other fields
// of the record, referenced by name. Referenced fields must be FromParam
// fields or decoded fields declared earlier.
//
//	wire.WithParam("tables", func(h *Header) *wire.Array[Record] { return &h.Tables }, "numTables")
func WithParam[R any, F any, PF Ptr[F]](name string, at func(*R) PF, refs ...string) Field[R] {
	f := Plain(name, at)
	f.kind = KindWithParam
	f.refs = refs
	return f
}

// WithParamFunc declares a field decoded with parameters computed from the
// partially decoded record. expr may only look at FromParam fields and at
// fields declared earlier.
func WithParamFunc[R any, F any, PF Ptr[F]](name string, at func(*R) PF, expr func(*R) []any) Field[R] {
	f := Plain(name, at)
	f.kind = KindWithParam
	f.expr = expr
	return f
}

// --- Schema ----------------------------------------------------------------

// Schema describes the binary layout of a record type R as an ordered list of
// fields. A schema is checked once, on first use; definition errors are
// reported as *SchemaError by every decode call.
//
// Decoding fills ParamSourced fields from the parameters, then decodes all
// other fields in declaration order, each starting where the previous one
// ended. The first failing field aborts decoding and its error is returned
// unchanged; the target record is left untouched.
type Schema[R any] struct {
	name   string
	fields []Field[R]
	once   sync.Once
	err    error
	params []int   // indices of ParamSourced fields
	refs   [][]int // per field: indices of referenced fields
	static int
	fixed  bool
}

// NewSchema creates a schema for record type R.
func NewSchema[R any](name string, fields ...Field[R]) *Schema[R] {
	return &Schema[R]{name: name, fields: fields}
}

// Name returns the name of the record type.
func (s *Schema[R]) Name() string {
	return s.name
}

// Fields returns the fields of s.
func (s *Schema[R]) Fields() []Field[R] {
	return s.fields
}

// Arity returns the number of parameters a record needs, i.e. the number of
// its ParamSourced fields.
func (s *Schema[R]) Arity() int {
	n := 0
	for _, f := range s.fields {
		if f.kind == KindParamSourced {
			n++
		}
	}
	return n
}

// Err returns the error found when checking the definition of s, if any.
func (s *Schema[R]) Err() error {
	s.once.Do(s.compile)
	return s.err
}

func (s *Schema[R]) compile() {
	s.err = s.check()
	if s.err != nil {
		tracer().Errorf("%v", s.err)
	}
}

func (s *Schema[R]) check() error {
	index := make(map[string]int, len(s.fields))
	s.refs = make([][]int, len(s.fields))
	s.static, s.fixed = 0, true
	for i, f := range s.fields {
		if f.name == "" {
			return schemaErr(s.name, fmt.Sprintf("#%d", i), "field has no name")
		}
		if _, dup := index[f.name]; dup {
			return schemaErr(s.name, f.name, "duplicate field name")
		}
		index[f.name] = i
		arity := f.arity()
		switch f.kind {
		case KindParamSourced:
			s.params = append(s.params, i)
			continue
		case KindPlain, KindDiscarded, KindWithParam:
			if !f.hasParams() {
				if arity != 0 {
					return schemaErr(s.name, f.name, "field type needs %d parameters", arity)
				}
				break
			}
			if arity < 1 || arity > MaxParams {
				return schemaErr(s.name, f.name, "field type has arity %d", arity)
			}
			if f.expr == nil {
				if len(f.refs) != arity {
					return schemaErr(s.name, f.name, "%d parameters given, field type needs %d", len(f.refs), arity)
				}
				for _, ref := range f.refs {
					j, ok := index[ref]
					if !ok {
						j = s.indexOf(ref)
					}
					if err := s.checkRef(f.name, ref, i, j); err != nil {
						return err
					}
					s.refs[i] = append(s.refs[i], j)
				}
			}
		}
		if n, ok := f.static(); ok && s.fixed {
			s.static += n
		} else {
			s.fixed = false
		}
	}
	if len(s.params) > MaxParams {
		return schemaErr(s.name, "", "record needs %d parameters, maximum is %d", len(s.params), MaxParams)
	}
	return nil
}

func (s *Schema[R]) indexOf(name string) int {
	for i, f := range s.fields {
		if f.name == name {
			return i
		}
	}
	return -1
}

// checkRef checks that field at position i may use field j as a parameter.
func (s *Schema[R]) checkRef(field, ref string, i, j int) error {
	if j < 0 {
		return schemaErr(s.name, field, "references unknown field %q", ref)
	}
	switch s.fields[j].kind {
	case KindParamSourced:
		return nil
	case KindPlain, KindWithParam:
		if j < i {
			return nil
		}
		return schemaErr(s.name, field, "references field %q declared later", ref)
	}
	return schemaErr(s.name, field, "references %s field %q, which holds no value", s.fields[j].kind, ref)
}

// DecodeInto decodes a record from the front of b into rec, with p as the
// record's parameters.
func (s *Schema[R]) DecodeInto(rec *R, b View, p Params) error {
	if err := s.Err(); err != nil {
		return err
	}
	if p.Len() != len(s.params) {
		return schemaErr(s.name, "", "called with %d parameters, needs %d", p.Len(), len(s.params))
	}
	var tmp R
	for j, i := range s.params {
		if err := s.fields[i].assign(&tmp, p.At(j)); err != nil {
			return err
		}
	}
	c := NewCursor(b)
	for i, f := range s.fields {
		if f.kind == KindParamSourced {
			continue
		}
		fp := NoParams
		if f.hasParams() {
			var err error
			if fp, err = s.paramsFor(i, &tmp); err != nil {
				return err
			}
		}
		if err := f.read(c, &tmp, fp); err != nil {
			tracer().Debugf("%s/%s at offset %d: %v", s.name, f.name, c.Consumed(), err)
			return err
		}
	}
	*rec = tmp
	return nil
}

func (s *Schema[R]) paramsFor(i int, rec *R) (Params, error) {
	f := s.fields[i]
	if f.expr != nil {
		return NewParams(f.expr(rec)...)
	}
	args := make([]any, len(s.refs[i]))
	for k, j := range s.refs[i] {
		args[k] = s.fields[j].value(rec)
	}
	return NewParams(args...)
}

// Decode decodes a record from the front of b, handing args to the record's
// ParamSourced fields.
func (s *Schema[R]) Decode(b View, args ...any) (R, error) {
	var rec R
	p, err := NewParams(args...)
	if err != nil {
		return rec, err
	}
	err = s.DecodeInto(&rec, b, p)
	return rec, err
}

// EncodeSize returns the number of bytes rec occupied, i.e. the sum of the
// sizes of all fields except the ParamSourced ones.
func (s *Schema[R]) EncodeSize(rec *R) int {
	n := 0
	for _, f := range s.fields {
		if f.kind != KindParamSourced {
			n += f.size(rec)
		}
	}
	return n
}

// StaticSize returns the size of every record of this schema, if all of its
// fields have a static size.
func (s *Schema[R]) StaticSize() (int, bool) {
	if s.Err() != nil {
		return 0, false
	}
	return s.static, s.fixed
}

// MustStaticSize is StaticSize for records known to be of fixed size.
// It panics otherwise.
func (s *Schema[R]) MustStaticSize() int {
	n, ok := s.StaticSize()
	if !ok {
		if err := s.Err(); err != nil {
			panic(err)
		}
		panic(schemaErr(s.name, "", "record has no static size"))
	}
	return n
}

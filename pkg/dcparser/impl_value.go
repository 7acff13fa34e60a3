/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import (
	"encoding/binary"
	"math"

	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/exp/slices"

	"github.com/voedger/dclass/pkg/dclass"
)

// Type expected by value compiler at nesting depth
type valueFrame struct {
	typ   *dclass.Type
	depth int
}

// Value compiler state: stack of expected types, running nesting depth
// and encoded bytes.
//
// Composite value pushes its member types in reverse order, so the first
// member is on top. Every literal pops exactly one frame, and only if its
// nesting depth matches the depth of frame.
type valueStack struct {
	frames []valueFrame
	depth  int
	buf    []byte
}

func (c *parseContext) push(t *dclass.Type, depth int) {
	c.values.frames = append(c.values.frames, valueFrame{typ: t, depth: depth})
}

func (c *parseContext) pop() {
	if n := len(c.values.frames); n > 0 {
		c.values.frames = c.values.frames[:n-1]
	}
}

func (c *parseContext) top() (valueFrame, bool) {
	n := len(c.values.frames)
	if n == 0 {
		return valueFrame{}, false
	}
	return c.values.frames[n-1], true
}

// Compiles literal value against type. Returns encoded bytes, even if
// errors were reported.
func (c *parseContext) compileValue(t *dclass.Type, v *valueExpr) []byte {
	if t.IsInvalid() {
		return nil
	}
	c.values = valueStack{}
	c.push(t, 0)
	c.value(v)
	out := c.values.buf
	c.values = valueStack{}
	return out
}

func (c *parseContext) value(v *valueExpr) {
	top, ok := c.top()
	if !ok {
		return
	}
	if v.Repeat == nil {
		c.valueBody(v)
		return
	}
	if c.values.depth != top.depth {
		c.depthError(v.Pos, top)
		return
	}
	if !top.typ.Kind().IsArray() {
		c.errorAt(v.Pos, ErrArrayExpansion(top.typ))
		c.pop()
		return
	}
	// expansion as the whole value of array
	c.arrayValue(v.Pos, top.typ, []*valueExpr{v})
}

// Compiles value ignoring array expansion.
func (c *parseContext) valueBody(v *valueExpr) {
	top, ok := c.top()
	if !ok {
		return
	}
	if c.values.depth != top.depth {
		c.depthError(v.Pos, top)
		return
	}
	if top.typ.IsInvalid() {
		c.pop()
		return
	}
	switch {
	case v.Array != nil:
		c.arrayValue(v.Pos, top.typ, v.Array.Values)
	case v.Tuple != nil:
		c.tupleValue(v.Pos, top.typ, v.Tuple.Values)
	case v.Number != nil:
		c.numberValue(v.Number, top.typ)
		c.pop()
	case v.String != nil:
		c.bytesValue(v.Pos, []byte(*v.String), top.typ, false)
		c.pop()
	case v.Hex != nil:
		if b, ok := hexBytes(*v.Hex); ok {
			c.bytesValue(v.Pos, b, top.typ, true)
		} else {
			c.errorAt(v.Pos, ErrOddHexDigits)
		}
		c.pop()
	}
}

func (c *parseContext) depthError(pos lexer.Position, top valueFrame) {
	if c.values.depth > top.depth {
		c.errorAt(pos, ErrTooManyValues(top.typ.String()))
	} else {
		c.errorAt(pos, ErrTooFewValues(top.typ.String()))
	}
}

// Compiles struct or method composite "(a, b, ...)".
func (c *parseContext) tupleValue(pos lexer.Position, t *dclass.Type, values []*valueExpr) {
	members, ok := compositeMembers(t)
	if !ok {
		c.errorAt(pos, ErrStructComposition(t))
		c.pop()
		return
	}

	c.values.depth++
	depth := c.values.depth
	for i := len(members) - 1; i >= 0; i-- {
		c.push(members[i], depth)
	}
	for _, v := range values {
		c.value(v)
	}
	if top, ok := c.top(); ok && top.depth == depth {
		c.errorAt(pos, ErrTooFewValues(t.String()))
		for ok && top.depth == depth {
			c.pop()
			top, ok = c.top()
		}
	}
	c.values.depth--
	c.pop()
}

// Returns member types of struct, class or method.
func compositeMembers(t *dclass.Type) ([]*dclass.Type, bool) {
	if m, ok := t.AsMethod(); ok {
		tt := make([]*dclass.Type, 0, m.ParameterCount())
		for _, p := range m.Parameters() {
			tt = append(tt, p.Type())
		}
		return tt, true
	}

	var (
		fields []*dclass.Field
		ctor   *dclass.Field
	)
	if cls, ok := t.AsClass(); ok {
		fields = cls.InheritedFields()
		ctor, _ = cls.Constructor()
	} else if s, ok := t.AsStruct(); ok {
		fields = s.Fields()
	} else {
		return nil, false
	}

	tt := make([]*dclass.Type, 0, len(fields))
	for _, f := range fields {
		if _, mol := f.AsMolecular(); mol || f == ctor {
			continue
		}
		tt = append(tt, f.Type())
	}
	return tt, true
}

// Compiles array composite "[a, b, ...]". Elements may be expanded as
// "count * value".
func (c *parseContext) arrayValue(pos lexer.Position, t *dclass.Type, values []*valueExpr) {
	a, ok := t.AsArray()
	if !ok {
		c.errorAt(pos, ErrArrayComposition(t))
		c.pop()
		return
	}

	c.values.depth++
	start := len(c.values.buf)
	count := uint64(0)
	for _, v := range values {
		count += c.element(t, a.Element(), v)
	}
	c.values.depth--
	c.pop()

	if t.HasFixedSize() {
		if want := a.Count(); count != want {
			c.errorAt(pos, ErrElementCount(t, want, count))
		}
		return
	}
	if rng, limited := a.Range(); limited && !rng.Contains(count) {
		c.errorAt(pos, ErrElementCountNotInRange(t, rng, count))
	}
	c.insertSizeTag(pos, start)
}

// Compiles array element. Returns count of elements produced.
//
// String or hex literal inside string or blob is a run of elements.
func (c *parseContext) element(t, elem *dclass.Type, v *valueExpr) uint64 {
	n := uint64(1)
	if v.Repeat != nil {
		r, err := parseUint(*v.Repeat)
		switch {
		case err != nil:
			c.errorAt(v.Pos, ErrNumberLiteral(*v.Repeat))
		case r > dclass.MaxSizeTag:
			c.errorAt(v.Pos, ErrTooLong(r))
		default:
			n = r
		}
	}

	if run, ok := c.byteRun(t, v); ok {
		for i := uint64(0); i < n; i++ {
			c.values.buf = append(c.values.buf, run...)
		}
		return n * uint64(len(run))
	}

	frames := len(c.values.frames)
	c.push(elem, c.values.depth)
	from := len(c.values.buf)
	c.valueBody(v)
	c.values.frames = c.values.frames[:frames]

	switch n {
	case 0:
		c.values.buf = c.values.buf[:from]
	case 1:
	default:
		chunk := slices.Clone(c.values.buf[from:])
		for i := uint64(1); i < n; i++ {
			c.values.buf = append(c.values.buf, chunk...)
		}
	}
	return n
}

// Returns bytes of string or hex literal v if t is string or blob.
func (c *parseContext) byteRun(t *dclass.Type, v *valueExpr) ([]byte, bool) {
	if v.String == nil && v.Hex == nil {
		return nil, false
	}
	switch t.Kind() {
	case dclass.Kind_string, dclass.Kind_varstring:
		if v.Hex != nil {
			c.errorAt(v.Pos, ErrHexForNonBlob(t))
			return nil, true
		}
	case dclass.Kind_blob, dclass.Kind_varblob:
	default:
		return nil, false
	}
	if v.String != nil {
		return []byte(*v.String), true
	}
	b, ok := hexBytes(*v.Hex)
	if !ok {
		c.errorAt(v.Pos, ErrOddHexDigits)
		return nil, true
	}
	return b, true
}

// Inserts length prefix before bytes written since start.
func (c *parseContext) insertSizeTag(pos lexer.Position, start int) {
	payload := slices.Clone(c.values.buf[start:])
	length := uint64(len(payload))
	buf, ok := dclass.AppendSizeTag(c.values.buf[:start], length)
	if !ok {
		c.errorAt(pos, ErrTooLong(length))
		buf, _ = dclass.AppendSizeTag(c.values.buf[:start], dclass.MaxSizeTag)
	}
	c.values.buf = append(buf, payload...)
}

// Compiles string or hex literal.
func (c *parseContext) bytesValue(pos lexer.Position, data []byte, t *dclass.Type, hex bool) {
	var isString, isBlob bool
	switch t.Kind() {
	case dclass.Kind_string, dclass.Kind_varstring:
		isString = true
	case dclass.Kind_blob, dclass.Kind_varblob:
		isBlob = true
	}
	switch {
	case hex && !isBlob:
		c.errorAt(pos, ErrHexForNonBlob(t))
		return
	case !isString && !isBlob:
		c.errorAt(pos, ErrStringForNonString(t))
		return
	}

	a, _ := t.AsArray()
	length := uint64(len(data))
	if t.HasFixedSize() {
		if length != a.Count() {
			c.errorAt(pos, ErrFixedLength(t, a.Count(), len(data)))
		}
		c.values.buf = append(c.values.buf, data...)
		return
	}
	if rng, limited := a.Range(); limited && !rng.Contains(length) {
		c.errorAt(pos, ErrLengthNotInRange(length, rng))
	}
	start := len(c.values.buf)
	c.values.buf = append(c.values.buf, data...)
	c.insertSizeTag(pos, start)
}

// Compiles numeric literal into native width of numeric type, little-endian.
//
// Values outside of kind domain are reported and truncated to width.
// Values outside of declared range are reported and encoded as is.
func (c *parseContext) numberValue(lit *numberLit, t *dclass.Type) {
	v, err := lit.number()
	if err != nil {
		c.errorAt(lit.Pos, err)
		return
	}
	n, ok := t.AsNumeric()
	if !ok {
		c.errorAt(lit.Pos, ErrNumberForNonNumeric(t))
		return
	}

	k := n.Kind()
	valid := true
	var bits uint64
	switch {
	case k == dclass.Kind_float32:
		f := float32(v.AsFloat())
		if math.IsInf(float64(f), 0) && !math.IsInf(v.AsFloat(), 0) {
			c.errorAt(lit.Pos, ErrFloatOutOfRange(k))
			valid = false
		}
		bits = uint64(math.Float32bits(f))
	case k == dclass.Kind_float64:
		bits = math.Float64bits(v.AsFloat())
	case v.Kind == dclass.NumberKind_float:
		c.errorAt(lit.Pos, ErrFloatForInteger)
		valid = false
	case k.IsSigned():
		i, ok := v.AsInt64()
		if !ok || !dclass.KindDomain(k).Contains(v) {
			c.errorAt(lit.Pos, ErrSignedOutOfRange(k))
			valid = false
		}
		if !ok {
			i = int64(v.Uint)
		}
		bits = uint64(i)
	default:
		u, ok := v.AsUint64()
		switch {
		case !ok:
			c.errorAt(lit.Pos, ErrNegativeForUnsigned)
			valid = false
			u = uint64(v.Int)
		case !dclass.KindDomain(k).Contains(v):
			c.errorAt(lit.Pos, ErrUnsignedOutOfRange(k))
			valid = false
		}
		bits = u
	}

	c.values.buf = appendLittleEndian(c.values.buf, bits, k.Width())

	if r, limited := n.Range(); valid && limited && !n.InRange(v) {
		c.errorAt(lit.Pos, ErrValueNotInRange(v, r, t))
	}
}

// Appends low width bytes of v to b, little-endian.
func appendLittleEndian(b []byte, v uint64, width uint64) []byte {
	switch width {
	case 1:
		return append(b, byte(v))
	case 2:
		return binary.LittleEndian.AppendUint16(b, uint16(v))
	case 4:
		return binary.LittleEndian.AppendUint32(b, uint32(v))
	}
	return binary.LittleEndian.AppendUint64(b, v)
}

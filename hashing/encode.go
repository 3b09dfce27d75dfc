package hashing

import (
	"encoding/binary"
	"io"
	"math"
	"reflect"

	"github.com/hasbyte1/go-lodash-utils/lang"
)

// Object-like sub-kinds.
const (
	objPrimitive byte = iota + 1
	objReference
	objOpaque
)

// canonicalNaN is written for every NaN payload.
const canonicalNaN = 0x7ff8000000000001

// encoder writes the canonical encoding of a value: its tag byte followed by
// a tag-specific payload. Lengths precede variable-size payloads so that
// distinct structures never share an encoding.
type encoder struct {
	w   io.Writer
	buf [binary.MaxVarintLen64]byte
}

func (e *encoder) writeByte(b byte) {
	e.buf[0] = b
	_, _ = e.w.Write(e.buf[:1])
}

func (e *encoder) writeUint(u uint64) {
	n := binary.PutUvarint(e.buf[:], u)
	_, _ = e.w.Write(e.buf[:n])
}

func (e *encoder) writeString(s string) {
	e.writeUint(uint64(len(s)))
	_, _ = io.WriteString(e.w, s)
}

func (e *encoder) encode(v any) {
	tag := lang.Classify(v)
	e.writeByte(byte(tag))

	switch tag {
	case lang.TagUndefined, lang.TagNull:
	case lang.TagString:
		e.writeString(reflect.ValueOf(v).String())
	case lang.TagBoolean:
		if reflect.ValueOf(v).Bool() {
			e.writeByte(1)
		} else {
			e.writeByte(0)
		}
	case lang.TagNumber:
		f, _ := lang.Float(v)
		e.writeUint(floatBits(f))
	case lang.TagArray:
		items := lang.ToSlice(v)
		e.writeUint(uint64(len(items)))
		for _, item := range items {
			e.encode(item)
		}
	case lang.TagPlainObject:
		keys := lang.Keys(v)
		e.writeUint(uint64(len(keys)))
		for _, k := range keys {
			val, _ := lang.Property(v, k)
			e.writeString(k)
			e.encode(val)
		}
	case lang.TagFunction, lang.TagRegExp:
		e.writeUint(uint64(reflect.ValueOf(v).Pointer()))
	default:
		e.object(v)
	}
}

func (e *encoder) object(v any) {
	if p, ok := lang.ValueOf(v); ok {
		e.writeByte(objPrimitive)
		e.encode(p)
		return
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		e.writeByte(objReference)
		e.writeUint(uint64(rv.Pointer()))
	default:
		// Structs and complex numbers are equal only to values of the same
		// type, so the type name is a consistent digest without walking
		// fields.
		e.writeByte(objOpaque)
		e.writeString(rv.Type().String())
	}
}

// floatBits maps numerically equal floats to the same bits: -0 to +0 and
// every NaN to one payload.
func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return canonicalNaN
	}
	return math.Float64bits(f)
}

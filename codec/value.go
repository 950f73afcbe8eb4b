package codec

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Kind identifies a property value variant.
type Kind int

const (
	KindString Kind = iota + 1
	KindBoolean
	KindNumber
	KindRawJSON
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindRawJSON:
		return "raw-json"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value represents a property value. The set of implementations is closed.
type Value interface {
	Kind() Kind
	sealed()
}

// String is emitted as an escaped JSON string.
type String string

// Boolean is emitted as true or false.
type Boolean bool

// Number is emitted in its shortest round-trip form.
type Number float64

// RawJSON is a pre-serialized JSON fragment, emitted without quoting or escaping.
type RawJSON string

func (String) Kind() Kind  { return KindString }
func (Boolean) Kind() Kind { return KindBoolean }
func (Number) Kind() Kind  { return KindNumber }
func (RawJSON) Kind() Kind { return KindRawJSON }

func (String) sealed()  {}
func (Boolean) sealed() {}
func (Number) sealed()  {}
func (RawJSON) sealed() {}

// IsZero reports whether the fragment is empty, which callers use to mean "absent".
func (r RawJSON) IsZero() bool {
	return len(r) == 0
}

// maxExactInt is the largest magnitude a float64 holds without rounding (2^53).
const maxExactInt = 1 << 53

// ValueOf converts a Go value into a property Value.
func ValueOf(v any) (Value, error) {
	switch actual := v.(type) {
	case Value:
		return actual, nil
	case string:
		return String(actual), nil
	case bool:
		return Boolean(actual), nil
	case json.RawMessage:
		return RawJSON(actual), nil
	case json.Number:
		if i, err := actual.Int64(); err == nil && (i > maxExactInt || i < -maxExactInt) {
			return nil, &EncodingError{Value: v, Reason: "integer is not exactly representable as a number"}
		}
		f, err := actual.Float64()
		if err != nil {
			return nil, &EncodingError{Value: v, Reason: err.Error()}
		}
		return Number(f), nil
	case nil:
		return nil, &EncodingError{Reason: "nil value"}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i > maxExactInt || i < -maxExactInt {
			return nil, &EncodingError{Value: v, Reason: "integer is not exactly representable as a number"}
		}
		return Number(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > maxExactInt {
			return nil, &EncodingError{Value: v, Reason: "integer is not exactly representable as a number"}
		}
		return Number(u), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	}
	return nil, &EncodingError{Value: v, Reason: fmt.Sprintf("unsupported type %T", v)}
}

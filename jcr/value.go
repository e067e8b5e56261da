package jcr

import "strconv"

// Value is an immutable typed repository value. The literal form is the
// string serialization of the value; two Values are equal iff both type and
// literal match, which makes Value usable as a map key for deduplication.
type Value struct {
	Type    PropertyType
	Literal string
}

// StringValue creates a STRING Value.
func StringValue(s string) Value {
	return Value{Type: PropertyTypeString, Literal: s}
}

// BoolValue creates a BOOLEAN Value.
func BoolValue(b bool) Value {
	return Value{Type: PropertyTypeBoolean, Literal: strconv.FormatBool(b)}
}

// LongValue creates a LONG Value.
func LongValue(l int64) Value {
	return Value{Type: PropertyTypeLong, Literal: strconv.FormatInt(l, 10)}
}

// DoubleValue creates a DOUBLE Value.
func DoubleValue(d float64) Value {
	return Value{Type: PropertyTypeDouble, Literal: strconv.FormatFloat(d, 'g', -1, 64)}
}

// TypedValue creates a Value of an arbitrary PropertyType from its literal
// form, for types without a dedicated constructor (DATE, NAME, PATH, ...).
func TypedValue(literal string, t PropertyType) Value {
	return Value{Type: t, Literal: literal}
}

func (v Value) String() string {
	return v.Literal
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	return strconv.ParseBool(v.Literal)
}

// Long returns the value as an int64.
func (v Value) Long() (int64, error) {
	return strconv.ParseInt(v.Literal, 10, 64)
}

// Double returns the value as a float64.
func (v Value) Double() (float64, error) {
	return strconv.ParseFloat(v.Literal, 64)
}

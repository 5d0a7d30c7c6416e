package rosmsg

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the wire category of a field or array element
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindTime
	KindDuration
	KindMessage
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindBool:     "bool",
	KindInt8:     "int8",
	KindUint8:    "uint8",
	KindInt16:    "int16",
	KindUint16:   "uint16",
	KindInt32:    "int32",
	KindUint32:   "uint32",
	KindInt64:    "int64",
	KindUint64:   "uint64",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindString:   "string",
	KindTime:     "time",
	KindDuration: "duration",
	KindMessage:  "message",
}

// builtinKinds maps every primitive spelling accepted in a definition to its kind.
// byte and char are the legacy aliases of int8 and uint8.
var builtinKinds = map[string]Kind{
	"bool":     KindBool,
	"int8":     KindInt8,
	"byte":     KindInt8,
	"uint8":    KindUint8,
	"char":     KindUint8,
	"int16":    KindInt16,
	"uint16":   KindUint16,
	"int32":    KindInt32,
	"uint32":   KindUint32,
	"int64":    KindInt64,
	"uint64":   KindUint64,
	"float32":  KindFloat32,
	"float64":  KindFloat64,
	"string":   KindString,
	"time":     KindTime,
	"duration": KindDuration,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Width returns the fixed wire width of a primitive kind, or 0 for string and message.
func (k Kind) Width() int {
	switch k {
	case KindBool, KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64, KindTime, KindDuration:
		return 8
	}
	return 0
}

// ArrayKind tells whether a field is a scalar, a fixed-length array or a variable-length sequence
type ArrayKind uint8

const (
	NotArray ArrayKind = iota
	FixedArray
	VarArray
)

// Type describes the declared type of a field.
type Type struct {
	Kind Kind
	// Name is the spelling used in canonical text: the primitive name as
	// written ("byte" stays "byte") or the fully-qualified message name.
	Name string
	// Msg is the nested schema when Kind is KindMessage.
	Msg   *Schema
	Array ArrayKind
	// Len is the element count of a FixedArray.
	Len int
}

// Prim returns the scalar type of a primitive kind.
func Prim(k Kind) Type {
	return Type{Kind: k, Name: k.String()}
}

// Nested returns the scalar type of a nested message.
func Nested(s *Schema) Type {
	return Type{Kind: KindMessage, Name: s.Name(), Msg: s}
}

// ArrayOf returns a fixed-length array of n elements of t.
func ArrayOf(t Type, n int) Type {
	t.Array = FixedArray
	t.Len = n
	return t
}

// SliceOf returns a variable-length sequence of t.
func SliceOf(t Type) Type {
	t.Array = VarArray
	t.Len = 0
	return t
}

// Elem returns the element type of an array type, or t itself for scalars.
func (t Type) Elem() Type {
	t.Array = NotArray
	t.Len = 0
	return t
}

// IsArray reports whether t is a fixed or variable array.
func (t Type) IsArray() bool {
	return t.Array != NotArray
}

// String returns the definition spelling, e.g. "float64[3]" or "geometry_msgs/Point[]".
func (t Type) String() string {
	switch t.Array {
	case FixedArray:
		return fmt.Sprintf("%s[%d]", t.Name, t.Len)
	case VarArray:
		return t.Name + "[]"
	}
	return t.Name
}

// Field is a named, typed member of a schema
type Field struct {
	Name string
	Type Type
}

// Constant is a named value declared in a definition. Constants are part of
// the canonical text but never appear on the wire.
type Constant struct {
	Name string
	Type Type
	// Value holds the parsed value using the Go type of Type.Kind.
	Value any
	// Text is the value exactly as written, used for fingerprinting.
	Text string
}

// Time is a ROS time stamp: seconds and nanoseconds since the epoch
type Time struct {
	Sec  uint32
	Nsec uint32
}

// NewTime converts a time.Time into a Time, truncating to 32-bit seconds.
func NewTime(t time.Time) Time {
	return Time{Sec: uint32(t.Unix()), Nsec: uint32(t.Nanosecond())}
}

// Time returns the stamp as a time.Time in UTC.
func (t Time) Time() time.Time {
	return time.Unix(int64(t.Sec), int64(t.Nsec)).UTC()
}

// IsZero reports whether both parts are zero.
func (t Time) IsZero() bool {
	return t.Sec == 0 && t.Nsec == 0
}

func (t Time) String() string {
	return fmt.Sprintf("%d.%09d", t.Sec, t.Nsec)
}

// Duration is a ROS duration: signed seconds and nanoseconds
type Duration struct {
	Sec  int32
	Nsec int32
}

// NewDuration converts a time.Duration into a Duration.
func NewDuration(d time.Duration) Duration {
	return Duration{Sec: int32(d / time.Second), Nsec: int32(d % time.Second)}
}

// Duration returns the value as a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d.Sec)*time.Second + time.Duration(d.Nsec)
}

func (d Duration) String() string {
	total := d.Duration()
	sign := ""
	if total < 0 {
		sign, total = "-", -total
	}
	return fmt.Sprintf("%s%d.%09d", sign, total/time.Second, total%time.Second)
}

// Typed is implemented by generated message structs
type Typed interface {
	// Schema returns the schema the struct is bound to
	Schema() *Schema

	// MarshalROS encodes the struct in ROS wire format
	MarshalROS() ([]byte, error)

	// UnmarshalROS decodes ROS wire data into the struct
	UnmarshalROS(data []byte) error
}

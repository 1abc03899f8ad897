package client

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// ArgKind identifies the wire type of an argument, using the signature
// characters of Message.
type ArgKind byte

// Argument kinds.
const (
	KindInt    ArgKind = 'i'
	KindUint   ArgKind = 'u'
	KindFixed  ArgKind = 'f'
	KindString ArgKind = 's'
	KindObject ArgKind = 'o'
	KindNewID  ArgKind = 'n'
	KindArray  ArgKind = 'a'
	KindFd     ArgKind = 'h'
)

// Argument is a single request argument handed to the native layer.
//
// Scalars and object handles live in Value. Data holds the nul-terminated
// bytes of a string or the contents of an array. Null marks an absent
// string, array or object.
type Argument struct {
	Kind  ArgKind
	Value uint64
	Data  []byte
	Null  bool
}

// Int returns a signed integer argument.
func Int(v int32) Argument {
	return Argument{Kind: KindInt, Value: uint64(uint32(v))}
}

// Uint returns an unsigned integer argument.
func Uint(v uint32) Argument {
	return Argument{Kind: KindUint, Value: uint64(v)}
}

// FixedArg returns a fixed-point argument.
func FixedArg(v Fixed) Argument {
	return Argument{Kind: KindFixed, Value: uint64(uint32(v))}
}

// Fd returns a file descriptor argument.
func Fd(fd int32) Argument {
	return Argument{Kind: KindFd, Value: uint64(uint32(fd))}
}

// StringArg returns a string argument from the output of CString. A nil
// slice is the null string.
func StringArg(cstr []byte) Argument {
	return Argument{Kind: KindString, Data: cstr, Null: cstr == nil}
}

// ArrayArg returns an array argument. A nil slice is an empty array.
func ArrayArg(data []byte) Argument {
	if data == nil {
		data = []byte{}
	}
	return Argument{Kind: KindArray, Data: data}
}

// NullableArray returns an array argument where a nil slice is the null
// array.
func NullableArray(data []byte) Argument {
	return Argument{Kind: KindArray, Data: data, Null: data == nil}
}

// ObjectArg returns an object argument referencing p. A nil proxy is the
// null object.
func ObjectArg(p Proxy) Argument {
	var h Handle
	if p != nil {
		h = p.Ptr()
	}
	return ObjectHandle(h)
}

// ObjectHandle returns an object argument referencing h.
func ObjectHandle(h Handle) Argument {
	return Argument{Kind: KindObject, Value: uint64(h), Null: h == 0}
}

// NewID returns the placeholder of the object created by a request. The
// native layer fills in the actual id.
func NewID() Argument {
	return Argument{Kind: KindNewID}
}

// NewIDHandle returns a new_id argument referencing an already created
// object, as found in events.
func NewIDHandle(h Handle) Argument {
	return Argument{Kind: KindNewID, Value: uint64(h)}
}

// SlotSize is the size in bytes of one ArgBuffer slot.
const SlotSize = 8

// ArgBuffer holds the raw arguments of an event.
//
// Argument i lives in slot i, each slot being SlotSize bytes in native byte
// order. Strings and arrays are reached through one level of indirection:
// their slot holds the index, plus one, of the payload in a side table, and
// zero for null.
type ArgBuffer struct {
	slots []byte
	refs  [][]byte
}

// EncodeArgs lays out args into a new buffer.
func EncodeArgs(args ...Argument) *ArgBuffer {
	b := &ArgBuffer{slots: make([]byte, len(args)*SlotSize)}
	for i, arg := range args {
		value := arg.Value
		switch arg.Kind {
		case KindString, KindArray:
			value = 0
			if !arg.Null {
				b.refs = append(b.refs, arg.Data)
				value = uint64(len(b.refs))
			}
		}
		binary.NativeEndian.PutUint64(b.slots[i*SlotSize:], value)
	}
	return b
}

// Len returns the number of slots.
func (b *ArgBuffer) Len() int {
	return len(b.slots) / SlotSize
}

func (b *ArgBuffer) slot(i int) uint64 {
	return binary.NativeEndian.Uint64(b.slots[i*SlotSize:])
}

func (b *ArgBuffer) ref(i int) ([]byte, bool) {
	index := b.slot(i)
	if index == 0 {
		return nil, false
	}
	return b.refs[index-1], true
}

// Int reads slot i as a signed integer.
func (b *ArgBuffer) Int(i int) int32 {
	return int32(uint32(b.slot(i)))
}

// Uint reads slot i as an unsigned integer.
func (b *ArgBuffer) Uint(i int) uint32 {
	return uint32(b.slot(i))
}

// Fixed reads slot i as a fixed-point number.
func (b *ArgBuffer) Fixed(i int) Fixed {
	return Fixed(int32(uint32(b.slot(i))))
}

// Fd reads slot i as a file descriptor.
func (b *ArgBuffer) Fd(i int) int32 {
	return b.Int(i)
}

// Object reads slot i as an object handle.
func (b *ArgBuffer) Object(i int) Handle {
	return Handle(b.slot(i))
}

// String reads slot i as a string. The wire encoding is unspecified, so
// invalid UTF-8 sequences are replaced rather than rejected. A null string
// reads as "".
func (b *ArgBuffer) String(i int) string {
	data, ok := b.ref(i)
	if !ok {
		return ""
	}
	if n := bytes.IndexByte(data, 0); n >= 0 {
		data = data[:n]
	}
	return strings.ToValidUTF8(string(data), "�")
}

// Array reads slot i as a copy of an array. A null array reads as nil.
func (b *ArgBuffer) Array(i int) []byte {
	data, ok := b.ref(i)
	if !ok {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

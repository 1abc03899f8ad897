package client

import "strings"

// CString returns s as a nul-terminated byte slice. It panics if s contains a
// nul byte, which the wire format cannot represent.
func CString(s string) []byte {
	if strings.IndexByte(s, 0) >= 0 {
		panic("got a string with interior nul")
	}
	out := make([]byte, len(s)+1)
	copy(out, s)
	return out
}

// NullableCString is CString for an optional string. A nil pointer yields a
// nil slice, the null string.
func NullableCString(s *string) []byte {
	if s == nil {
		return nil
	}
	return CString(*s)
}

// Deref returns the value p points to, or the zero value if p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

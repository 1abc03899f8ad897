package naming

import (
	"github.com/canonical/go-wlscan/internal/protocol"
)

// Position tells where a type expression appears in generated code.
type Position int

// Positions.
const (
	// ParamPos is a request method parameter.
	ParamPos Position = iota
	// FieldPos is an event struct field.
	FieldPos
)

// GoType returns the Go type expression for arg. The runtime package is
// referenced through the qualifier rt, typically "client".
//
// Numeric, fixed-point and file descriptor kinds map to fixed width numbers,
// strings to string, arrays to []byte, bound object and new_id arguments to
// the pointer to their proxy type. Unbound objects become client.Proxy in
// requests and *client.Opaque in events. Nullable scalars in request
// parameters become pointers so that absence can be expressed.
func GoType(arg protocol.Arg, pos Position, rt string) string {
	var typ string
	switch arg.Type {
	case protocol.Int, protocol.Fd:
		typ = "int32"
	case protocol.Uint:
		typ = "uint32"
	case protocol.Fixed:
		typ = "float64"
	case protocol.String:
		typ = "string"
	case protocol.Array:
		return "[]byte"
	case protocol.Object, protocol.NewID:
		if arg.Interface != "" {
			return "*" + Camel(arg.Interface)
		}
		if pos == ParamPos {
			return rt + ".Proxy"
		}
		return "*" + rt + ".Opaque"
	default:
		panic("no Go type for argument type " + arg.Type.String())
	}
	if arg.AllowNull && pos == ParamPos {
		return "*" + typ
	}
	return typ
}

package client

import "fmt"

// Handle is an opaque reference to a native proxy object. The zero Handle is
// the null object.
type Handle uintptr

// ProxyID identifies a proxy object. Two proxies wrapping the same native
// object have equal IDs.
type ProxyID struct {
	id uintptr
}

// IDOf returns the ID of the object referenced by h.
func IDOf(h Handle) ProxyID {
	return ProxyID{id: uintptr(h)}
}

func (id ProxyID) String() string {
	return fmt.Sprintf("%#x", id.id)
}

// Decoder turns the raw arguments of an event received by h into a typed
// event. It returns false for opcodes it does not know about.
type Decoder func(n Native, h Handle, opcode uint32, args *ArgBuffer) (Event, bool)

// Dispatcher is invoked by the native layer for every event received by an
// object, together with the decoder registered for that object.
type Dispatcher func(n Native, implem Decoder, h Handle, opcode uint32, args *ArgBuffer)

// Native is the contract of the transport library generated bindings call
// into.
type Native interface {
	// UserData returns the event queue attached to h, or nil.
	UserData(h Handle) *EventQueue

	// SetUserData attaches an event queue to h.
	SetUserData(h Handle, q *EventQueue)

	// AddDispatcher registers the function handling events received by h.
	AddDispatcher(h Handle, d Dispatcher, implem Decoder)

	// MarshalConstructor sends a request creating a new object of the given
	// interface and returns the handle of the new object.
	MarshalConstructor(h Handle, opcode uint32, iface *Interface, args ...Argument) Handle

	// Marshal sends a request that does not create any object.
	Marshal(h Handle, opcode uint32, args ...Argument)

	// Destroy releases the native object referenced by h.
	Destroy(h Handle)
}

// Interface is the metadata table of a protocol interface.
type Interface struct {
	Name     string
	Version  uint32
	Requests []Message
	Events   []Message
}

// Message describes the wire layout of a request or event.
//
// Signature uses one character per argument: i (int), u (uint), f (fixed),
// s (string), o (object), n (new_id), a (array) and h (fd), each preceded by
// "?" when the argument may be null, the whole string being prefixed by the
// version the message was introduced in when greater than one. Types holds
// the interface name of each argument, empty for non-object arguments.
type Message struct {
	Name      string
	Signature string
	Types     []string
}

package client

import "fmt"

// Proxy is the capability set implemented by every generated proxy type.
//
// Interface, InterfaceName and Version describe the type rather than the
// instance: generated implementations never dereference their receiver, so
// they can be called on a typed nil.
type Proxy interface {
	// Ptr returns the native handle of the proxy, or the zero Handle for a
	// nil proxy.
	Ptr() Handle

	// ID returns the identity of the proxy.
	ID() ProxyID

	// Interface returns the metadata table of the proxy's interface.
	Interface() *Interface

	// InterfaceName returns the protocol name of the proxy's interface.
	InterfaceName() string

	// Version returns the interface version the bindings were generated
	// for.
	Version() uint32

	// SetEventQueue routes the events of the proxy to q.
	SetEventQueue(q *EventQueue)

	// EventQueue returns the queue events of the proxy are routed to.
	EventQueue() *EventQueue
}

// Constructor is a proxy type that can be built from a native handle. T is
// the proxy type itself, so that generic code can write:
//
//	func Bind[T client.Constructor[T]](...) T
type Constructor[T any] interface {
	Proxy

	// FromHandle wraps h into a new proxy owning it. It is called on the zero
	// value of T.
	FromHandle(n Native, h Handle) T
}

// CheckBindVersion panics if version is lower than the version proxy was
// generated for.
func CheckBindVersion(proxy Proxy, version uint32) {
	if version < proxy.Version() {
		panic(fmt.Sprintf(
			"tried to bind interface %s with version %d while it is only supported up to %d",
			proxy.InterfaceName(), version, proxy.Version()))
	}
}

// FormatProxy returns the textual representation of a proxy, in the form
// protocol::interface::id.
func FormatProxy(protocol, iface string, id ProxyID) string {
	return fmt.Sprintf("%s::%s::%s", protocol, iface, id)
}

// FormatEnum returns the textual representation of an enum value without a
// known name, in the form interface.enum(value).
func FormatEnum(name string, value int64) string {
	return fmt.Sprintf("%s(%d)", name, value)
}

// Opaque wraps an object whose interface is not known statically.
type Opaque struct {
	obj *Object
	evq *EventQueue
}

// WrapOpaque returns a non-owning Opaque for h, or nil if h is null.
func WrapOpaque(n Native, h Handle) *Opaque {
	if h == 0 {
		return nil
	}
	return &Opaque{obj: WrapObject(n, h), evq: NewEventQueue()}
}

// Ptr implements Proxy.
func (o *Opaque) Ptr() Handle {
	if o == nil {
		return 0
	}
	return o.obj.Handle()
}

// ID implements Proxy.
func (o *Opaque) ID() ProxyID {
	if o == nil {
		return ProxyID{}
	}
	return o.obj.ID()
}

// Interface implements Proxy. The interface of an opaque object is unknown.
func (*Opaque) Interface() *Interface { return nil }

// InterfaceName implements Proxy.
func (*Opaque) InterfaceName() string { return "" }

// Version implements Proxy.
func (*Opaque) Version() uint32 { return 0 }

// SetEventQueue implements Proxy.
func (o *Opaque) SetEventQueue(q *EventQueue) { o.evq = q }

// EventQueue implements Proxy.
func (o *Opaque) EventQueue() *EventQueue { return o.evq }

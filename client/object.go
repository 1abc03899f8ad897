package client

import (
	"runtime"
	"sync/atomic"
)

// Object is the owner of a native handle.
//
// An owning Object destroys its native handle exactly once: either through
// an explicit Destroy, typically after a destructor request, or through a
// cleanup hook when the Object becomes unreachable. A non-owning Object
// never destroys the native handle.
type Object struct {
	native Native
	handle Handle
	state  *objectState
}

// Shared between the Object and its cleanup hook, which must not reference
// the Object itself.
type objectState struct {
	native    Native
	handle    Handle
	owned     bool
	destroyed atomic.Bool
}

func (s *objectState) destroy() {
	if !s.destroyed.CompareAndSwap(false, true) {
		return
	}
	if s.owned {
		s.native.Destroy(s.handle)
	}
}

// NewObject returns an Object owning h.
func NewObject(n Native, h Handle) *Object {
	o := newObject(n, h, true)
	runtime.AddCleanup(o, func(s *objectState) { s.destroy() }, o.state)
	return o
}

// WrapObject returns an Object referencing h without owning it.
func WrapObject(n Native, h Handle) *Object {
	return newObject(n, h, false)
}

func newObject(n Native, h Handle, owned bool) *Object {
	return &Object{
		native: n,
		handle: h,
		state:  &objectState{native: n, handle: h, owned: owned},
	}
}

// Native returns the native layer the object belongs to.
func (o *Object) Native() Native {
	return o.native
}

// Handle returns the native handle. It panics if the object was destroyed.
func (o *Object) Handle() Handle {
	if o.state.destroyed.Load() {
		panic("use of destroyed proxy")
	}
	return o.handle
}

// ID returns the identity of the object. It remains valid after Destroy.
func (o *Object) ID() ProxyID {
	return IDOf(o.handle)
}

// Owned tells whether the object owns its native handle.
func (o *Object) Owned() bool {
	return o.state.owned
}

// Destroyed tells whether Destroy was called.
func (o *Object) Destroyed() bool {
	return o.state.destroyed.Load()
}

// Destroy invalidates the object and, if it is owning, releases the native
// handle. Only the first call has an effect, and the cleanup hook will not
// release the handle again.
func (o *Object) Destroy() {
	o.state.destroy()
}

package client

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// Call is a request recorded by InmemNative.
type Call struct {
	Handle    Handle     // Object the request was sent to.
	Opcode    uint32     // Request opcode.
	Interface *Interface // Interface of the created object, for constructors.
	Args      []Argument // Arguments as marshaled, with fds duplicated.
	Created   Handle     // Handle of the created object, for constructors.
}

// InmemNative is a Native implementation that keeps its object table in
// memory and records every request instead of sending it.
//
// File descriptor arguments are duplicated with close-on-exec on marshal,
// the way the wire library takes ownership of a copy; Close releases them.
type InmemNative struct {
	mu      sync.Mutex
	next    Handle
	objects map[Handle]*inmemObject
	calls   []Call
	fds     []int
}

type inmemObject struct {
	iface      *Interface
	queue      *EventQueue
	dispatcher Dispatcher
	implem     Decoder
	destroyed  int
}

// NewInmemNative creates an empty in-memory native layer.
func NewInmemNative() *InmemNative {
	return &InmemNative{
		next:    1,
		objects: make(map[Handle]*inmemObject),
	}
}

// NewHandle allocates a native object of the given interface, as the wire
// library does when an event carries a new_id.
func (n *InmemNative) NewHandle(iface *Interface) Handle {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.allocate(iface)
}

func (n *InmemNative) allocate(iface *Interface) Handle {
	h := n.next
	n.next++
	n.objects[h] = &inmemObject{iface: iface}
	return h
}

func (n *InmemNative) object(h Handle) *inmemObject {
	obj, ok := n.objects[h]
	if !ok {
		panic(fmt.Sprintf("unknown native object %d", h))
	}
	return obj
}

// UserData implements Native.
func (n *InmemNative) UserData(h Handle) *EventQueue {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.object(h).queue
}

// SetUserData implements Native.
func (n *InmemNative) SetUserData(h Handle, q *EventQueue) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.object(h).queue = q
}

// AddDispatcher implements Native.
func (n *InmemNative) AddDispatcher(h Handle, d Dispatcher, implem Decoder) {
	n.mu.Lock()
	defer n.mu.Unlock()
	obj := n.object(h)
	obj.dispatcher = d
	obj.implem = implem
}

// MarshalConstructor implements Native.
func (n *InmemNative) MarshalConstructor(h Handle, opcode uint32, iface *Interface, args ...Argument) Handle {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.object(h)
	created := n.allocate(iface)
	n.record(Call{Handle: h, Opcode: opcode, Interface: iface, Args: args, Created: created})
	return created
}

// Marshal implements Native.
func (n *InmemNative) Marshal(h Handle, opcode uint32, args ...Argument) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.object(h)
	n.record(Call{Handle: h, Opcode: opcode, Args: args})
}

func (n *InmemNative) record(call Call) {
	args := make([]Argument, len(call.Args))
	copy(args, call.Args)
	for i, arg := range args {
		if arg.Kind != KindFd {
			continue
		}
		fd, err := unix.FcntlInt(uintptr(int32(arg.Value)), unix.F_DUPFD_CLOEXEC, 0)
		if err != nil {
			panic(fmt.Sprintf("duplicate fd %d: %v", int32(arg.Value), err))
		}
		n.fds = append(n.fds, fd)
		args[i].Value = uint64(uint32(fd))
	}
	call.Args = args
	n.calls = append(n.calls, call)
}

// Destroy implements Native.
func (n *InmemNative) Destroy(h Handle) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if obj, ok := n.objects[h]; ok {
		obj.destroyed++
	}
}

// Calls returns the requests recorded so far.
func (n *InmemNative) Calls() []Call {
	n.mu.Lock()
	defer n.mu.Unlock()
	calls := make([]Call, len(n.calls))
	copy(calls, n.calls)
	return calls
}

// Destroyed returns how many times h was destroyed.
func (n *InmemNative) Destroyed(h Handle) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if obj, ok := n.objects[h]; ok {
		return obj.destroyed
	}
	return 0
}

// Deliver simulates the arrival of an event for h, invoking the dispatcher
// registered for it. It returns false if no dispatcher was registered.
func (n *InmemNative) Deliver(h Handle, opcode uint32, args ...Argument) bool {
	n.mu.Lock()
	obj := n.object(h)
	dispatcher, implem := obj.dispatcher, obj.implem
	n.mu.Unlock()

	if dispatcher == nil {
		return false
	}
	dispatcher(n, implem, h, opcode, EncodeArgs(args...))
	return true
}

// Close releases the file descriptors duplicated by marshaled requests.
func (n *InmemNative) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	var first error
	for _, fd := range n.fds {
		if err := unix.Close(fd); err != nil && first == nil {
			first = err
		}
	}
	n.fds = nil
	return first
}

// Package client is the runtime support package imported by client bindings
// generated by wlscan.
//
// Generated proxies carry a single-owner native handle (Object) and a shared
// event queue (EventQueue). Requests are marshaled through the Native
// interface, which abstracts the transport library that performs socket I/O
// and object bookkeeping. Events flow back through a per-protocol dispatch
// function that decodes the raw argument slots of an ArgBuffer into typed
// values and pushes them onto the queue of the receiving proxy.
//
// InmemNative is an in-memory Native implementation that records every call,
// useful to exercise generated bindings without a compositor.
package client

// Package demo holds the bindings of a small protocol exercising every
// construct the generator emits. They are kept in sync with demo.xml by
// go generate and used to test generated code against the in-memory
// native layer.
package demo

//go:generate go run ../../cmd/wlscan generate -i demo.xml -o demo.go --root demo_display

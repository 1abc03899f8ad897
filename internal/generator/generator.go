// Package generator turns a protocol description into the Go source of a
// typed client API: one proxy type per interface, with its requests as
// methods, its enums as named constants and its events decoded into
// structs delivered through event queues.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
	"github.com/pkg/errors"

	"github.com/canonical/go-wlscan/internal/naming"
	"github.com/canonical/go-wlscan/internal/protocol"
	"github.com/canonical/go-wlscan/logging"
	"github.com/canonical/go-wlscan/tracing"
)

// Qualifier of the runtime package in generated code.
const rt = "client"

// Result holds the outcome of a generation.
type Result struct {
	// Source is the generated Go file.
	Source []byte

	// Skipped lists the requests that could not be expressed, as
	// interface.request.
	Skipped []string
}

// Generate produces the Go bindings of the given protocol.
//
// The protocol is validated first: any problem aborts the generation and no
// source is returned. Generated identifiers colliding with each other and
// output that does not parse as Go are fatal as well.
func Generate(ctx context.Context, p *protocol.Protocol, options ...Option) (*Result, error) {
	o := defaultOptions()
	for _, option := range options {
		option(o)
	}

	_, span := tracing.Start(ctx, "wlscan.validate", p.Name)
	err := p.Validate()
	span.End()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid protocol %s", p.Name)
	}

	if o.Package == "" {
		o.Package = PackageName(p.Name)
	}
	if !token.IsIdentifier(o.Package) {
		return nil, errors.Errorf("invalid package name %q", o.Package)
	}

	g := newGenerator(p, o)
	g.preamble()
	for i := range p.Interfaces {
		iface := &p.Interfaces[i]
		_, span := tracing.Start(ctx, "wlscan.interface", iface.Name)
		g.iface(iface)
		span.End()
	}
	if len(g.duplicates) > 0 {
		return nil, errors.Errorf("duplicate generated identifiers: %s", strings.Join(g.duplicates, ", "))
	}

	source := g.buf.Bytes()
	if o.Format {
		_, span := tracing.Start(ctx, "wlscan.format", p.Name)
		source, err = format.Source(source)
		span.End()
		if err != nil {
			return nil, errors.Wrapf(err, "format bindings of protocol %s", p.Name)
		}
	}

	o.Log(logging.Info, "generated %d interfaces of protocol %s", len(p.Interfaces), p.Name)
	return &Result{Source: source, Skipped: g.skipped}, nil
}

// WriteFile atomically writes the generated source to the given path,
// creating its directory if needed.
func WriteFile(filename string, result *Result) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := renameio.WriteFile(filename, result.Source, 0644); err != nil {
		return errors.Wrapf(err, "write %s", filename)
	}
	return nil
}

// PackageName returns the default package name for a protocol: its name
// lower-cased, without underscores.
func PackageName(protocol string) string {
	return strings.ReplaceAll(strings.ToLower(protocol), "_", "")
}

type generator struct {
	protocol *protocol.Protocol
	options  *options
	buf      bytes.Buffer

	declared   map[string]string // Top-level identifier to its origin.
	duplicates []string
	wrapped    map[string]bool // Interfaces received as event object arguments.
	skipped    []string
}

func newGenerator(p *protocol.Protocol, o *options) *generator {
	g := &generator{
		protocol: p,
		options:  o,
		declared: make(map[string]string),
		wrapped:  make(map[string]bool),
	}
	for _, iface := range p.Interfaces {
		for _, event := range iface.Events {
			for _, arg := range event.Args {
				if arg.Type == protocol.Object && arg.Interface != "" {
					g.wrapped[arg.Interface] = true
				}
			}
		}
	}
	return g
}

func (g *generator) printf(format string, args ...interface{}) {
	fmt.Fprintf(&g.buf, format, args...)
}

// Record a top-level identifier, remembering where it comes from so that
// collisions can be reported.
func (g *generator) declare(name, origin string) {
	if previous, ok := g.declared[name]; ok {
		g.duplicates = append(g.duplicates, fmt.Sprintf("%s (%s and %s)", name, previous, origin))
		return
	}
	g.declared[name] = origin
}

func (g *generator) isRoot(iface *protocol.Interface) bool {
	return iface.Name == g.options.RootInterface
}

// Name of the protocol-wide event type.
func (g *generator) protocolEvent() string {
	return naming.Camel(g.protocol.Name) + "ProtocolEvent"
}

// Name of the dispatch trampoline shared by all interfaces.
func (g *generator) dispatcher() string {
	return naming.LowerCamel(g.protocol.Name) + "Dispatcher"
}

func (g *generator) preamble() {
	g.printf("// Code generated by wlscan. DO NOT EDIT.\n\n")
	if g.protocol.Copyright != "" {
		g.printf("%s\n", blockComment(g.protocol.Copyright))
	}
	g.printf("package %s\n\n", g.options.Package)

	if path.Base(g.options.RuntimeImport) == rt {
		g.printf("import %q\n\n", g.options.RuntimeImport)
	} else {
		g.printf("import %s %q\n\n", rt, g.options.RuntimeImport)
	}

	event := g.protocolEvent()
	g.declare(event, "protocol event")
	g.printf("// %s is an event received by an object of the %s protocol.\n", event, g.protocol.Name)
	g.printf("//\n")
	g.printf("// Each variant carries the identity of the receiving object along with\n")
	g.printf("// the event itself.\n")
	g.printf("type %s interface {\n", event)
	g.printf("\t%s.Event\n", rt)
	g.printf("\tis%s()\n", event)
	g.printf("}\n\n")

	dispatcher := g.dispatcher()
	g.declare(dispatcher, "dispatcher")
	g.printf("// Invoked by the native layer for every event. Events received by an\n")
	g.printf("// object without an active queue are dropped.\n")
	g.printf("func %s(n %s.Native, implem %s.Decoder, h %s.Handle, opcode uint32, args *%s.ArgBuffer) {\n",
		dispatcher, rt, rt, rt, rt)
	g.printf("\tq := n.UserData(h)\n")
	g.printf("\tif q == nil || !q.Active() {\n")
	g.printf("\t\treturn\n")
	g.printf("\t}\n")
	g.printf("\tif event, ok := implem(n, h, opcode, args); ok {\n")
	g.printf("\t\tq.Push(event)\n")
	g.printf("\t}\n")
	g.printf("}\n\n")
}

func (g *generator) iface(iface *protocol.Interface) {
	g.proxy(iface)
	g.metadata(iface)
	for i := range iface.Enums {
		g.enum(iface, &iface.Enums[i])
	}
	g.opcodes(iface)
	if len(iface.Events) > 0 {
		g.events(iface)
	}
	for i := range iface.Requests {
		g.request(iface, &iface.Requests[i], uint32(i))
	}
}

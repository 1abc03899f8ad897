package generator

import (
	"math"
	"strconv"
	"strings"

	"github.com/canonical/go-wlscan/internal/naming"
	"github.com/canonical/go-wlscan/internal/protocol"
)

// Emit the proxy type of an interface along with its capability set.
func (g *generator) proxy(iface *protocol.Interface) {
	name := naming.Camel(iface.Name)
	g.declare(name, "interface "+iface.Name)

	g.doc("", name, iface.Description, "is a proxy to a "+iface.Name+" object.")
	g.printf("type %s struct {\n", name)
	g.printf("\tobj *%s.Object\n", rt)
	g.printf("\tevq *%s.EventQueue\n", rt)
	g.printf("}\n\n")

	g.printf("// Ptr returns the native handle of the proxy, or the zero handle if p is nil.\n")
	g.printf("func (p *%s) Ptr() %s.Handle {\n", name, rt)
	g.printf("\tif p == nil {\n\t\treturn 0\n\t}\n")
	g.printf("\treturn p.obj.Handle()\n")
	g.printf("}\n\n")

	g.printf("// ID returns the identity of the proxy.\n")
	g.printf("func (p *%s) ID() %s.ProxyID {\n", name, rt)
	g.printf("\tif p == nil {\n\t\treturn %s.ProxyID{}\n\t}\n", rt)
	g.printf("\treturn p.obj.ID()\n")
	g.printf("}\n\n")

	g.printf("// Interface returns the metadata table of %s.\n", iface.Name)
	g.printf("func (*%s) Interface() *%s.Interface {\n", name, rt)
	g.printf("\treturn &%s\n", metadataVar(iface))
	g.printf("}\n\n")

	g.printf("// InterfaceName returns %q.\n", iface.Name)
	g.printf("func (*%s) InterfaceName() string {\n", name)
	g.printf("\treturn %q\n", iface.Name)
	g.printf("}\n\n")

	g.printf("// Version returns the version of %s these bindings implement.\n", iface.Name)
	g.printf("func (*%s) Version() uint32 {\n", name)
	g.printf("\treturn %d\n", iface.Version)
	g.printf("}\n\n")

	root := g.isRoot(iface)
	if root {
		g.printf("// FromHandle wraps h into a new %s. The connection object is owned by\n", name)
		g.printf("// the native layer and is never destroyed by the proxy.\n")
	} else {
		g.printf("// FromHandle wraps h into a new %s owning it.\n", name)
	}
	g.printf("func (*%s) FromHandle(n %s.Native, h %s.Handle) *%s {\n", name, rt, rt, name)
	if root {
		g.printf("\treturn &%s{obj: %s.WrapObject(n, h), evq: %s.NewEventQueue()}\n", name, rt, rt)
	} else {
		if len(iface.Events) > 0 {
			g.printf("\tn.AddDispatcher(h, %s, %s)\n", g.dispatcher(), decoderName(iface))
		}
		g.printf("\treturn &%s{obj: %s.NewObject(n, h), evq: %s.NewEventQueue()}\n", name, rt, rt)
	}
	g.printf("}\n\n")

	g.printf("// SetEventQueue routes the events of the proxy, and of the objects it\n")
	g.printf("// creates from now on, to q.\n")
	g.printf("func (p *%s) SetEventQueue(q *%s.EventQueue) {\n", name, rt)
	g.printf("\tp.evq = q\n")
	if !root {
		g.printf("\tif p.obj.Owned() {\n")
		g.printf("\t\tp.obj.Native().SetUserData(p.Ptr(), q)\n")
		g.printf("\t}\n")
	}
	g.printf("}\n\n")

	g.printf("// EventQueue returns the queue events of the proxy are routed to.\n")
	g.printf("func (p *%s) EventQueue() *%s.EventQueue {\n", name, rt)
	g.printf("\treturn p.evq\n")
	g.printf("}\n\n")

	g.printf("func (p *%s) String() string {\n", name)
	g.printf("\treturn %s.FormatProxy(%q, %q, p.ID())\n", rt, g.protocol.Name, iface.Name)
	g.printf("}\n\n")

	if g.wrapped[iface.Name] {
		wrap := wrapperName(iface.Name)
		g.declare(wrap, "interface "+iface.Name)
		g.printf("// Wrap an object received in an event without taking ownership of it.\n")
		g.printf("func %s(n %s.Native, h %s.Handle) *%s {\n", wrap, rt, rt, name)
		g.printf("\tif h == 0 {\n\t\treturn nil\n\t}\n")
		g.printf("\treturn &%s{obj: %s.WrapObject(n, h), evq: %s.NewEventQueue()}\n", name, rt, rt)
		g.printf("}\n\n")
	}
}

func metadataVar(iface *protocol.Interface) string {
	return naming.LowerCamel(iface.Name) + "Interface"
}

func wrapperName(iface string) string {
	return "wrap" + naming.Camel(iface)
}

// Emit the metadata table describing the wire layout of the interface.
func (g *generator) metadata(iface *protocol.Interface) {
	name := metadataVar(iface)
	g.declare(name, "interface "+iface.Name)

	g.printf("var %s = %s.Interface{\n", name, rt)
	g.printf("\tName: %q,\n", iface.Name)
	g.printf("\tVersion: %d,\n", iface.Version)
	g.messages("Requests", iface.Requests)
	g.messages("Events", iface.Events)
	g.printf("}\n\n")
}

func (g *generator) messages(field string, messages []protocol.Message) {
	if len(messages) == 0 {
		return
	}
	g.printf("\t%s: []%s.Message{\n", field, rt)
	for _, msg := range messages {
		signature, types := Signature(msg)
		g.printf("\t\t{Name: %q, Signature: %q", msg.Name, signature)
		if len(types) > 0 {
			quoted := make([]string, len(types))
			for i, typ := range types {
				quoted[i] = strconv.Quote(typ)
			}
			g.printf(", Types: []string{%s}", strings.Join(quoted, ", "))
		}
		g.printf("},\n")
	}
	g.printf("\t},\n")
}

var signatureChars = map[protocol.ArgType]string{
	protocol.Int:    "i",
	protocol.Uint:   "u",
	protocol.Fixed:  "f",
	protocol.String: "s",
	protocol.Object: "o",
	protocol.NewID:  "n",
	protocol.Array:  "a",
	protocol.Fd:     "h",
}

// Signature returns the wire signature of a message and the interface name
// of each of its arguments, empty for arguments that are not objects.
//
// A new_id argument without an interface is sent as the interface name,
// the version and the new object itself, so it expands to "sun".
func Signature(msg protocol.Message) (string, []string) {
	var b strings.Builder
	var types []string
	if msg.Since > 1 {
		b.WriteString(strconv.FormatUint(uint64(msg.Since), 10))
	}
	for _, arg := range msg.Args {
		if arg.Type == protocol.NewID && arg.Interface == "" {
			b.WriteString("sun")
			types = append(types, "", "", "")
			continue
		}
		if arg.AllowNull {
			b.WriteString("?")
		}
		b.WriteString(signatureChars[arg.Type])
		types = append(types, arg.Interface)
	}
	return b.String(), types
}

// Emit the type and constants of an enum.
func (g *generator) enum(iface *protocol.Interface, enum *protocol.Enum) {
	name := naming.Camel(iface.Name) + naming.Camel(enum.Name)
	origin := "enum " + iface.Name + "." + enum.Name
	g.declare(name, origin)

	typ := "int32"
	for _, entry := range enum.Entries {
		if entry.Value < math.MinInt32 || entry.Value > math.MaxInt32 {
			typ = "int64"
			break
		}
	}

	g.doc("", name, enum.Description, "is the "+enum.Name+" enum of "+iface.Name+".")
	g.printf("type %s %s\n\n", name, typ)

	g.printf("const (\n")
	for _, entry := range enum.Entries {
		constant := name + naming.EnumEntry(enum.Name, entry.Name)
		g.declare(constant, origin)
		summary := oneLine(entry.Summary)
		if entry.Since > 1 {
			summary = strings.TrimSpace(summary + " (since version " + strconv.FormatUint(uint64(entry.Since), 10) + ")")
		}
		if summary != "" {
			g.printf("\t// %s\n", summary)
		}
		g.printf("\t%s %s = %d\n", constant, name, entry.Value)
	}
	if len(enum.Entries) == 1 {
		sentinel := lowerFirst(name) + "NotUnivariant"
		g.declare(sentinel, origin)
		g.printf("\n\t// Keeps the enum from having a single value.\n")
		g.printf("\t%s %s = -1\n", sentinel, name)
	}
	g.printf(")\n\n")

	// Duplicate constants would be duplicate switch cases.
	seen := make(map[int64]bool, len(enum.Entries))
	g.printf("func (e %s) String() string {\n", name)
	g.printf("\tswitch e {\n")
	for _, entry := range enum.Entries {
		if seen[entry.Value] {
			continue
		}
		seen[entry.Value] = true
		g.printf("\tcase %s:\n", name+naming.EnumEntry(enum.Name, entry.Name))
		g.printf("\t\treturn %q\n", entry.Name)
	}
	g.printf("\t}\n")
	g.printf("\treturn %s.FormatEnum(%q, int64(e))\n", rt, iface.Name+"."+enum.Name)
	g.printf("}\n\n")

	if enum.Bitfield {
		g.printf("// Has tells whether all the bits of flag are set in e.\n")
		g.printf("func (e %s) Has(flag %s) bool {\n", name, name)
		g.printf("\treturn e&flag == flag\n")
		g.printf("}\n\n")
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Emit the opcode constants of requests and events, numbered by position.
func (g *generator) opcodes(iface *protocol.Interface) {
	if len(iface.Requests) == 0 && len(iface.Events) == 0 {
		return
	}
	origin := "opcodes of " + iface.Name
	g.printf("// Opcodes of %s.\n", iface.Name)
	g.printf("const (\n")
	for i, req := range iface.Requests {
		constant := requestOpcode(iface, &req)
		g.declare(constant, origin)
		g.printf("\t%s uint32 = %d\n", constant, i)
	}
	if len(iface.Requests) > 0 && len(iface.Events) > 0 {
		g.printf("\n")
	}
	for i, event := range iface.Events {
		constant := eventOpcode(iface, &event)
		g.declare(constant, origin)
		g.printf("\t%s uint32 = %d\n", constant, i)
	}
	g.printf(")\n\n")
}

func requestOpcode(iface *protocol.Interface, req *protocol.Message) string {
	return naming.Screaming(iface.Name + "_" + req.Name)
}

func eventOpcode(iface *protocol.Interface, event *protocol.Message) string {
	return naming.Screaming(iface.Name+"_"+event.Name) + "_EVENT"
}

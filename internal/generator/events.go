package generator

import (
	"fmt"

	"github.com/canonical/go-wlscan/internal/naming"
	"github.com/canonical/go-wlscan/internal/protocol"
)

func decoderName(iface *protocol.Interface) string {
	return "decode" + naming.Camel(iface.Name) + "Event"
}

func eventStruct(iface *protocol.Interface, event *protocol.Message) string {
	return naming.Camel(iface.Name) + naming.Camel(event.Name) + "Event"
}

// Emit the event types of an interface, its variant of the protocol-wide
// event and the decoder turning raw arguments into them.
func (g *generator) events(iface *protocol.Interface) {
	name := naming.Camel(iface.Name)
	origin := "events of " + iface.Name
	sealed := name + "Event"
	marker := "is" + sealed
	g.declare(sealed, origin)

	g.printf("// %s is an event received by a %s.\n", sealed, name)
	g.printf("type %s interface {\n", sealed)
	g.printf("\t%s()\n", marker)
	g.printf("}\n\n")

	for i := range iface.Events {
		event := &iface.Events[i]
		typ := eventStruct(iface, event)
		g.declare(typ, origin)

		g.doc("", typ, event.Description, "is the "+event.Name+" event of "+iface.Name+".")
		if event.Since > 1 {
			g.printf("//\n// Sent from interface version %d.\n", event.Since)
		}
		if len(event.Args) == 0 {
			g.printf("type %s struct{}\n\n", typ)
		} else {
			g.printf("type %s struct {\n", typ)
			for _, arg := range event.Args {
				g.printf("\t%s %s", naming.Field(arg.Name), naming.GoType(arg, naming.FieldPos, rt))
				if summary := oneLine(arg.Summary); summary != "" {
					g.printf(" // %s", summary)
				}
				g.printf("\n")
			}
			g.printf("}\n\n")
		}
		g.printf("func (%s) %s() {}\n\n", typ, marker)
	}

	variant := name + "ProtocolEvent"
	g.declare(variant, origin)
	g.printf("// %s is an event received by a %s, tagged with the identity of\n", variant, name)
	g.printf("// the receiving object.\n")
	g.printf("type %s struct {\n", variant)
	g.printf("\tID %s.ProxyID\n", rt)
	g.printf("\tEvent %s\n", sealed)
	g.printf("}\n\n")
	g.printf("// Protocol implements %s.Event.\n", rt)
	g.printf("func (%s) Protocol() string {\n\treturn %q\n}\n\n", variant, g.protocol.Name)
	g.printf("// Source implements %s.Event.\n", rt)
	g.printf("func (e %s) Source() %s.ProxyID {\n\treturn e.ID\n}\n\n", variant, rt)
	g.printf("func (%s) is%s() {}\n\n", variant, g.protocolEvent())

	decoder := decoderName(iface)
	g.declare(decoder, origin)
	g.printf("func %s(n %s.Native, h %s.Handle, opcode uint32, args *%s.ArgBuffer) (%s.Event, bool) {\n",
		decoder, rt, rt, rt, rt)
	g.printf("\tvar event %s\n", sealed)
	g.printf("\tswitch opcode {\n")
	for i := range iface.Events {
		event := &iface.Events[i]
		g.printf("\tcase %s:\n", eventOpcode(iface, event))
		if len(event.Args) == 0 {
			g.printf("\t\tevent = %s{}\n", eventStruct(iface, event))
			continue
		}
		g.printf("\t\tevent = %s{\n", eventStruct(iface, event))
		for j, arg := range event.Args {
			g.printf("\t\t\t%s: %s,\n", naming.Field(arg.Name), readArg(arg, j))
		}
		g.printf("\t\t}\n")
	}
	g.printf("\tdefault:\n")
	g.printf("\t\treturn nil, false\n")
	g.printf("\t}\n")
	g.printf("\treturn %s{ID: %s.IDOf(h), Event: event}, true\n", variant, rt)
	g.printf("}\n\n")
}

// Expression reading argument i of an event from the slots of args.
func readArg(arg protocol.Arg, i int) string {
	switch arg.Type {
	case protocol.Int:
		return fmt.Sprintf("args.Int(%d)", i)
	case protocol.Uint:
		return fmt.Sprintf("args.Uint(%d)", i)
	case protocol.Fixed:
		return fmt.Sprintf("args.Fixed(%d).Float()", i)
	case protocol.Fd:
		return fmt.Sprintf("args.Fd(%d)", i)
	case protocol.String:
		return fmt.Sprintf("args.String(%d)", i)
	case protocol.Array:
		return fmt.Sprintf("args.Array(%d)", i)
	case protocol.Object:
		if arg.Interface == "" {
			return fmt.Sprintf("%s.WrapOpaque(n, args.Object(%d))", rt, i)
		}
		return fmt.Sprintf("%s(n, args.Object(%d))", wrapperName(arg.Interface), i)
	case protocol.NewID:
		return fmt.Sprintf("(*%s)(nil).FromHandle(n, args.Object(%d))", naming.Camel(arg.Interface), i)
	}
	panic("cannot decode argument type " + arg.Type.String())
}

package generator

import (
	"fmt"
	"strings"

	"github.com/canonical/go-wlscan/internal/naming"
	"github.com/canonical/go-wlscan/internal/protocol"
	"github.com/canonical/go-wlscan/logging"
)

// Emit a request as a method of the proxy, or as a generic function when
// the type of the object it creates is chosen by the caller.
func (g *generator) request(iface *protocol.Interface, req *protocol.Message, opcode uint32) {
	ids := req.NewIDs()
	if len(ids) > 1 {
		// The proxy API can only return one new object per request.
		g.options.Log(logging.Warn, "skipping request %s.%s: it creates %d objects", iface.Name, req.Name, len(ids))
		g.skipped = append(g.skipped, iface.Name+"."+req.Name)
		return
	}

	var created *protocol.Arg
	if len(ids) == 1 {
		created = &ids[0]
	}
	generic := created != nil && created.Interface == ""

	name := naming.Camel(iface.Name)
	method := naming.Method(req.Name)
	if generic {
		method = name + naming.Camel(req.Name)
		g.declare(method, "request "+iface.Name+"."+req.Name)
	}

	g.doc("", method, req.Description, "sends the "+req.Name+" request.")
	if req.Since > 1 {
		g.printf("//\n// Requires interface version >= %d.\n", req.Since)
	}
	if generic {
		g.printf("//\n// T is the proxy type of the created object. Binding with a version lower\n")
		g.printf("// than the one T implements panics.\n")
	}
	if req.Destructor {
		g.printf("//\n// The proxy is destroyed and must not be used afterwards.\n")
	}

	var params []string
	if generic {
		params = append(params, "p *"+name)
	}
	for _, arg := range req.Args {
		if arg.Type == protocol.NewID {
			continue
		}
		params = append(params, naming.Param(arg.Name)+" "+naming.GoType(arg, naming.ParamPos, rt))
	}
	if generic {
		params = append(params, "version uint32")
	}

	switch {
	case generic:
		g.printf("func %s[T %s.Constructor[T]](%s) T {\n", method, rt, strings.Join(params, ", "))
	case created != nil:
		g.printf("func (p *%s) %s(%s) *%s {\n", name, method, strings.Join(params, ", "), naming.Camel(created.Interface))
	default:
		g.printf("func (p *%s) %s(%s) {\n", name, method, strings.Join(params, ", "))
	}

	args := marshalArgs(req, generic)
	constant := requestOpcode(iface, req)
	switch {
	case created == nil:
		g.printf("\tp.obj.Native().Marshal(%s)\n", strings.Join(append([]string{"p.Ptr()", constant}, args...), ", "))
	case generic:
		g.printf("\tvar zero T\n")
		g.printf("\t%s.CheckBindVersion(zero, version)\n", rt)
		g.constructor(constant, "zero.Interface()", "zero", args)
	default:
		typ := fmt.Sprintf("(*%s)(nil)", naming.Camel(created.Interface))
		g.constructor(constant, typ+".Interface()", typ, args)
	}
	if req.Destructor {
		g.printf("\tp.obj.Destroy()\n")
	}
	if created != nil {
		g.printf("\treturn proxy\n")
	}
	g.printf("}\n\n")
}

// Emit the creation of a new proxy through a constructor request. The new
// proxy inherits the event queue of its parent.
func (g *generator) constructor(constant, iface, zero string, args []string) {
	g.printf("\tn := p.obj.Native()\n")
	g.printf("\th := n.MarshalConstructor(%s)\n", strings.Join(append([]string{"p.Ptr()", constant, iface}, args...), ", "))
	g.printf("\tproxy := %s.FromHandle(n, h)\n", zero)
	g.printf("\tproxy.SetEventQueue(p.evq)\n")
}

// Argument expressions of a request, in wire order.
func marshalArgs(req *protocol.Message, generic bool) []string {
	var args []string
	for _, arg := range req.Args {
		param := naming.Param(arg.Name)
		switch arg.Type {
		case protocol.Int:
			args = append(args, rt+".Int("+scalar(arg, param)+")")
		case protocol.Uint:
			args = append(args, rt+".Uint("+scalar(arg, param)+")")
		case protocol.Fd:
			args = append(args, rt+".Fd("+scalar(arg, param)+")")
		case protocol.Fixed:
			args = append(args, rt+".FixedArg("+rt+".FixedFromFloat("+scalar(arg, param)+"))")
		case protocol.String:
			if arg.AllowNull {
				args = append(args, rt+".StringArg("+rt+".NullableCString("+param+"))")
			} else {
				args = append(args, rt+".StringArg("+rt+".CString("+param+"))")
			}
		case protocol.Array:
			if arg.AllowNull {
				args = append(args, rt+".NullableArray("+param+")")
			} else {
				args = append(args, rt+".ArrayArg("+param+")")
			}
		case protocol.Object:
			args = append(args, rt+".ObjectArg("+param+")")
		case protocol.NewID:
			if generic {
				args = append(args,
					rt+".StringArg("+rt+".CString(zero.InterfaceName()))",
					rt+".Uint(version)")
			}
			args = append(args, rt+".NewID()")
		}
	}
	return args
}

// A null scalar is sent as zero.
func scalar(arg protocol.Arg, param string) string {
	if arg.AllowNull {
		return rt + ".Deref(" + param + ")"
	}
	return param
}

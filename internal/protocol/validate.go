package protocol

import (
	"fmt"
	"strings"
)

// Error is a fatal problem in a protocol description. Path locates the
// offending element, e.g. "wl_pointer.set_cursor.surface".
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// ErrorList holds a list of errors.
type ErrorList []error

func (list ErrorList) Error() string {
	var b strings.Builder
	for i, err := range list {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

type validator struct {
	protocol *Protocol
	errors   ErrorList
}

func (v *validator) errorf(path string, format string, args ...interface{}) {
	v.errors = append(v.errors, &Error{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Validate checks that the description is fully resolved and well formed.
// It returns an ErrorList describing every problem found, or nil.
func (p *Protocol) Validate() error {
	v := &validator{protocol: p}

	if !isIdentifierSeed(p.Name) {
		v.errorf("", "invalid protocol name %q", p.Name)
	}

	seen := make(map[string]bool, len(p.Interfaces))
	for i := range p.Interfaces {
		iface := &p.Interfaces[i]
		if !isIdentifierSeed(iface.Name) {
			v.errorf(fmt.Sprintf("interface[%d]", i), "invalid interface name %q", iface.Name)
			continue
		}
		if seen[iface.Name] {
			v.errorf(iface.Name, "duplicate interface")
		}
		seen[iface.Name] = true
		v.checkInterface(iface)
	}

	if len(v.errors) == 0 {
		return nil
	}
	return v.errors
}

func (v *validator) checkInterface(iface *Interface) {
	if iface.Version < 1 {
		v.errorf(iface.Name, "version must be at least 1, got %d", iface.Version)
	}
	v.checkMessages(iface.Name, iface.Requests, false)
	v.checkMessages(iface.Name, iface.Events, true)

	names := make(map[string]bool, len(iface.Enums))
	for _, enum := range iface.Enums {
		path := iface.Name + "." + enum.Name
		if !isIdentifierSeed(enum.Name) {
			v.errorf(iface.Name, "invalid enum name %q", enum.Name)
			continue
		}
		if names[enum.Name] {
			v.errorf(path, "duplicate enum")
		}
		names[enum.Name] = true
		if len(enum.Entries) == 0 {
			v.errorf(path, "enum has no entries")
		}
		entries := make(map[string]bool, len(enum.Entries))
		for _, entry := range enum.Entries {
			if entry.Name == "" || strings.ContainsAny(entry.Name, " \t-.") {
				v.errorf(path, "invalid entry name %q", entry.Name)
				continue
			}
			if entries[entry.Name] {
				v.errorf(path+"."+entry.Name, "duplicate entry")
			}
			entries[entry.Name] = true
		}
	}
}

func (v *validator) checkMessages(owner string, messages []Message, events bool) {
	kind := "request"
	if events {
		kind = "event"
	}
	names := make(map[string]bool, len(messages))
	for _, msg := range messages {
		if !isIdentifierSeed(msg.Name) {
			v.errorf(owner, "invalid %s name %q", kind, msg.Name)
			continue
		}
		path := owner + "." + msg.Name
		if names[msg.Name] {
			v.errorf(path, "duplicate %s", kind)
		}
		names[msg.Name] = true
		if events && msg.Destructor {
			v.errorf(path, "events cannot be destructors")
		}

		args := make(map[string]bool, len(msg.Args))
		for _, arg := range msg.Args {
			if !isIdentifierSeed(arg.Name) {
				v.errorf(path, "invalid argument name %q", arg.Name)
				continue
			}
			argPath := path + "." + arg.Name
			if args[arg.Name] {
				v.errorf(argPath, "duplicate argument")
			}
			args[arg.Name] = true
			v.checkArg(argPath, arg, events)
		}
	}
}

func (v *validator) checkArg(path string, arg Arg, event bool) {
	switch arg.Type {
	case Destructor:
		v.errorf(path, "destructor is not an argument type")
		return
	case Object, NewID:
		if arg.Interface == "" {
			if arg.Type == NewID && event {
				v.errorf(path, "new_id in an event requires an interface")
			}
			return
		}
		if _, ok := v.protocol.Interface(arg.Interface); !ok {
			v.errorf(path, "unresolved interface %q", arg.Interface)
		}
	default:
		if arg.Interface != "" {
			v.errorf(path, "interface %q bound to %s argument", arg.Interface, arg.Type)
		}
	}
}

// Whether s can seed generated identifiers: ASCII letters, digits and
// underscores, starting with a letter or underscore.
func isIdentifierSeed(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

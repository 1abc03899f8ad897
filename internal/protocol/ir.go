// Package protocol holds the intermediate representation of an
// object-capability protocol description, as consumed by the binding
// generator, together with the loaders that produce it.
package protocol

import (
	"github.com/pkg/errors"
)

// Protocol is the root of a protocol description.
type Protocol struct {
	Name       string      `json:"name"`
	Copyright  string      `json:"copyright,omitempty"`
	Interfaces []Interface `json:"interfaces"`
}

// Interface describes a single protocol interface. Request and event order
// define the wire opcodes.
type Interface struct {
	Name        string       `json:"name"`
	Version     uint32       `json:"version"`
	Description *Description `json:"description,omitempty"`
	Requests    []Message    `json:"requests,omitempty"`
	Events      []Message    `json:"events,omitempty"`
	Enums       []Enum       `json:"enums,omitempty"`
}

// Message is either a request or an event.
type Message struct {
	Name        string       `json:"name"`
	Args        []Arg        `json:"args,omitempty"`
	Destructor  bool         `json:"destructor,omitempty"`
	Since       uint32       `json:"since,omitempty"`
	Description *Description `json:"description,omitempty"`
}

// Arg is a single message argument.
type Arg struct {
	Name      string  `json:"name"`
	Type      ArgType `json:"type"`
	Interface string  `json:"interface,omitempty"`
	AllowNull bool    `json:"allow_null,omitempty"`
	Summary   string  `json:"summary,omitempty"`
	Enum      string  `json:"enum,omitempty"`
}

// Enum is a named set of constants attached to an interface.
type Enum struct {
	Name        string       `json:"name"`
	Bitfield    bool         `json:"bitfield,omitempty"`
	Description *Description `json:"description,omitempty"`
	Entries     []Entry      `json:"entries"`
}

// Entry is one constant of an enum.
type Entry struct {
	Name    string `json:"name"`
	Summary string `json:"summary,omitempty"`
	Value   int64  `json:"value"`
	Since   uint32 `json:"since,omitempty"`
}

// Description is the documentation pair attached to interfaces, messages and
// enums.
type Description struct {
	Summary string `json:"summary"`
	Text    string `json:"text,omitempty"`
}

// ArgType is the wire type of an argument.
type ArgType int

// Wire types.
const (
	Int ArgType = iota
	Uint
	Fixed
	String
	Object
	NewID
	Array
	Fd
	Destructor
)

var argTypeNames = [...]string{
	Int:        "int",
	Uint:       "uint",
	Fixed:      "fixed",
	String:     "string",
	Object:     "object",
	NewID:      "new_id",
	Array:      "array",
	Fd:         "fd",
	Destructor: "destructor",
}

// String implements the Stringer interface.
func (t ArgType) String() string {
	if t < 0 || int(t) >= len(argTypeNames) {
		return "unknown"
	}
	return argTypeNames[t]
}

// ParseArgType converts a wire type name into an ArgType.
func ParseArgType(name string) (ArgType, error) {
	for i, n := range argTypeNames {
		if n == name {
			return ArgType(i), nil
		}
	}
	return 0, errors.Errorf("unknown argument type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t ArgType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(argTypeNames) {
		return nil, errors.Errorf("unknown argument type %d", int(t))
	}
	return []byte(argTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ArgType) UnmarshalText(text []byte) error {
	parsed, err := ParseArgType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// NewIDs returns the new_id arguments of the message.
func (m Message) NewIDs() []Arg {
	var args []Arg
	for _, arg := range m.Args {
		if arg.Type == NewID {
			args = append(args, arg)
		}
	}
	return args
}

// Interface returns the interface with the given name, if any.
func (p *Protocol) Interface(name string) (*Interface, bool) {
	for i := range p.Interfaces {
		if p.Interfaces[i].Name == name {
			return &p.Interfaces[i], true
		}
	}
	return nil, false
}

// Request returns the request with the given name, if any, along with its
// opcode.
func (i *Interface) Request(name string) (*Message, uint32, bool) {
	return lookup(i.Requests, name)
}

// Event returns the event with the given name, if any, along with its
// opcode.
func (i *Interface) Event(name string) (*Message, uint32, bool) {
	return lookup(i.Events, name)
}

func lookup(messages []Message, name string) (*Message, uint32, bool) {
	for i := range messages {
		if messages[i].Name == name {
			return &messages[i], uint32(i), true
		}
	}
	return nil, 0, false
}

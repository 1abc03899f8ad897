package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/canonical/go-wlscan/internal/generator"
	"github.com/canonical/go-wlscan/internal/naming"
	"github.com/canonical/go-wlscan/internal/protocol"
)

// Shell can be used to implement interactive prompts for inspecting a
// protocol description.
type Shell struct {
	protocol *protocol.Protocol
	format   string
}

// New creates a new Shell exploring the given protocol.
func New(p *protocol.Protocol, options ...Option) (*Shell, error) {
	o := defaultOptions()

	for _, option := range options {
		option(o)
	}

	switch o.Format {
	case formatTabular, formatYAML:
	default:
		return nil, errors.Errorf("unknown format %q", o.Format)
	}

	shell := &Shell{
		protocol: p,
		format:   o.Format,
	}

	return shell, nil
}

const help = `interfaces                 list the interfaces of the protocol
show <iface>               describe an interface
requests <iface>           list the requests of an interface
events <iface>             list the events of an interface
enums <iface>              list the enums of an interface
signature <iface>.<msg>    print the wire signature of a message
help                       print this help`

// Process a single input line.
func (s *Shell) Process(ctx context.Context, line string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	command, args := fields[0], fields[1:]

	switch command {
	case "help":
		return help, nil
	case "interfaces":
		if len(args) != 0 {
			return "", errors.New("usage: interfaces")
		}
		return s.processInterfaces(), nil
	case "show", "requests", "events", "enums":
		if len(args) != 1 {
			return "", errors.Errorf("usage: %s <iface>", command)
		}
		iface, ok := s.protocol.Interface(args[0])
		if !ok {
			return "", errors.Errorf("no interface named %q", args[0])
		}
		switch command {
		case "show":
			return s.processShow(iface)
		case "requests":
			return messages(iface.Requests, "request"), nil
		case "events":
			return messages(iface.Events, "event"), nil
		default:
			return enums(iface), nil
		}
	case "signature":
		if len(args) != 1 {
			return "", errors.New("usage: signature <iface>.<msg>")
		}
		return s.processSignature(args[0])
	}

	return "", errors.Errorf("unknown command %q, try \"help\"", command)
}

func (s *Shell) processInterfaces() string {
	rows := make([][]string, len(s.protocol.Interfaces))
	for i, iface := range s.protocol.Interfaces {
		rows[i] = []string{
			iface.Name,
			"v" + strconv.FormatUint(uint64(iface.Version), 10),
			fmt.Sprintf("%d requests", len(iface.Requests)),
			fmt.Sprintf("%d events", len(iface.Events)),
			summary(iface.Description),
		}
	}
	return table(rows)
}

func (s *Shell) processShow(iface *protocol.Interface) (string, error) {
	if s.format == formatYAML {
		data, err := yaml.Marshal(iface)
		if err != nil {
			return "", errors.Wrap(err, "encode interface")
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	lines := []string{
		fmt.Sprintf("%s version %d (Go type %s)", iface.Name, iface.Version, naming.Camel(iface.Name)),
	}
	if sum := summary(iface.Description); sum != "" {
		lines = append(lines, sum)
	}
	for _, section := range []struct {
		title string
		body  string
	}{
		{"requests", messages(iface.Requests, "request")},
		{"events", messages(iface.Events, "event")},
		{"enums", enums(iface)},
	} {
		if section.body == "" {
			continue
		}
		lines = append(lines, "", section.title+":")
		for _, line := range strings.Split(section.body, "\n") {
			lines = append(lines, "  "+line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Shell) processSignature(path string) (string, error) {
	ifaceName, msgName, ok := strings.Cut(path, ".")
	if !ok {
		return "", errors.New("usage: signature <iface>.<msg>")
	}
	iface, ok := s.protocol.Interface(ifaceName)
	if !ok {
		return "", errors.Errorf("no interface named %q", ifaceName)
	}
	msg, _, ok := iface.Request(msgName)
	if !ok {
		msg, _, ok = iface.Event(msgName)
	}
	if !ok {
		return "", errors.Errorf("interface %s has no message named %q", ifaceName, msgName)
	}
	signature, _ := generator.Signature(*msg)
	return strconv.Quote(signature), nil
}

// One row per message: opcode, name and arguments, then flags.
func messages(list []protocol.Message, kind string) string {
	rows := make([][]string, len(list))
	for i, msg := range list {
		args := make([]string, len(msg.Args))
		for j, arg := range msg.Args {
			args[j] = arg.Name + " " + argType(arg)
		}
		var flags []string
		if msg.Destructor {
			flags = append(flags, "destructor")
		}
		if msg.Since > 1 {
			flags = append(flags, fmt.Sprintf("since %d", msg.Since))
		}
		if kind == "request" && len(msg.NewIDs()) > 1 {
			flags = append(flags, "not generated")
		}
		rows[i] = []string{
			strconv.Itoa(i),
			msg.Name + "(" + strings.Join(args, ", ") + ")",
			strings.Join(flags, ", "),
		}
	}
	return table(rows)
}

func argType(arg protocol.Arg) string {
	typ := arg.Type.String()
	if arg.Interface != "" {
		typ += "<" + arg.Interface + ">"
	}
	if arg.AllowNull {
		typ = "?" + typ
	}
	return typ
}

func enums(iface *protocol.Interface) string {
	var lines []string
	for _, enum := range iface.Enums {
		entries := make([]string, len(enum.Entries))
		for i, entry := range enum.Entries {
			entries[i] = fmt.Sprintf("%s=%d", entry.Name, entry.Value)
		}
		name := enum.Name
		if enum.Bitfield {
			name += " (bitfield)"
		}
		lines = append(lines, name+": "+strings.Join(entries, " "))
	}
	return strings.Join(lines, "\n")
}

func summary(desc *protocol.Description) string {
	if desc == nil {
		return ""
	}
	return strings.Join(strings.Fields(desc.Summary), " ")
}

// Render rows as left-aligned columns separated by two spaces, measuring
// cells by display width. Trailing empty cells are dropped.
func table(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		last := len(row)
		for last > 0 && row[last-1] == "" {
			last--
		}
		var b strings.Builder
		for j, cell := range row[:last] {
			if j > 0 {
				b.WriteString("  ")
			}
			if j == last-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(runewidth.FillRight(cell, widths[j]))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

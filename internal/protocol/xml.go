package protocol

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type xmlProtocol struct {
	Name       string         `xml:"name,attr"`
	Copyright  string         `xml:"copyright"`
	Interfaces []xmlInterface `xml:"interface"`
}

type xmlInterface struct {
	Name        string          `xml:"name,attr"`
	Version     string          `xml:"version,attr"`
	Description *xmlDescription `xml:"description"`
	Requests    []xmlMessage    `xml:"request"`
	Events      []xmlMessage    `xml:"event"`
	Enums       []xmlEnum       `xml:"enum"`
}

type xmlMessage struct {
	Name        string          `xml:"name,attr"`
	Type        string          `xml:"type,attr"`
	Since       string          `xml:"since,attr"`
	Description *xmlDescription `xml:"description"`
	Args        []xmlArg        `xml:"arg"`
}

type xmlArg struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	Interface string `xml:"interface,attr"`
	AllowNull string `xml:"allow-null,attr"`
	Summary   string `xml:"summary,attr"`
	Enum      string `xml:"enum,attr"`
}

type xmlEnum struct {
	Name        string          `xml:"name,attr"`
	Bitfield    string          `xml:"bitfield,attr"`
	Description *xmlDescription `xml:"description"`
	Entries     []xmlEntry      `xml:"entry"`
}

type xmlEntry struct {
	Name    string `xml:"name,attr"`
	Value   string `xml:"value,attr"`
	Summary string `xml:"summary,attr"`
	Since   string `xml:"since,attr"`
}

type xmlDescription struct {
	Summary string `xml:"summary,attr"`
	Text    string `xml:",chardata"`
}

// ParseXML reads a protocol description in the Wayland XML format. The
// result is not validated.
func ParseXML(r io.Reader) (*Protocol, error) {
	var doc xmlProtocol
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode protocol XML")
	}

	p := &Protocol{
		Name:      doc.Name,
		Copyright: strings.TrimSpace(doc.Copyright),
	}

	for _, xi := range doc.Interfaces {
		version, err := parseUint(xi.Version, 1)
		if err != nil {
			return nil, errors.Wrapf(err, "interface %s: version", xi.Name)
		}
		iface := Interface{
			Name:        xi.Name,
			Version:     version,
			Description: xi.Description.convert(),
		}
		if iface.Requests, err = convertMessages(xi.Name, xi.Requests); err != nil {
			return nil, err
		}
		if iface.Events, err = convertMessages(xi.Name, xi.Events); err != nil {
			return nil, err
		}
		for _, xe := range xi.Enums {
			enum, err := xe.convert()
			if err != nil {
				return nil, errors.Wrapf(err, "interface %s: enum %s", xi.Name, xe.Name)
			}
			iface.Enums = append(iface.Enums, enum)
		}
		p.Interfaces = append(p.Interfaces, iface)
	}

	return p, nil
}

func convertMessages(owner string, in []xmlMessage) ([]Message, error) {
	var out []Message
	for _, xm := range in {
		since, err := parseUint(xm.Since, 1)
		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s: since", owner, xm.Name)
		}
		msg := Message{
			Name:        xm.Name,
			Since:       since,
			Destructor:  xm.Type == "destructor",
			Description: xm.Description.convert(),
		}
		for _, xa := range xm.Args {
			typ, err := ParseArgType(xa.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "%s.%s.%s", owner, xm.Name, xa.Name)
			}
			msg.Args = append(msg.Args, Arg{
				Name:      xa.Name,
				Type:      typ,
				Interface: xa.Interface,
				AllowNull: xa.AllowNull == "true",
				Summary:   xa.Summary,
				Enum:      xa.Enum,
			})
		}
		out = append(out, msg)
	}
	return out, nil
}

func (xe xmlEnum) convert() (Enum, error) {
	enum := Enum{
		Name:        xe.Name,
		Bitfield:    xe.Bitfield == "true",
		Description: xe.Description.convert(),
	}
	for _, x := range xe.Entries {
		value, err := strconv.ParseInt(strings.TrimSpace(x.Value), 0, 64)
		if err != nil {
			return Enum{}, errors.Wrapf(err, "entry %s", x.Name)
		}
		since, err := parseUint(x.Since, 1)
		if err != nil {
			return Enum{}, errors.Wrapf(err, "entry %s: since", x.Name)
		}
		enum.Entries = append(enum.Entries, Entry{
			Name:    x.Name,
			Summary: x.Summary,
			Value:   value,
			Since:   since,
		})
	}
	return enum, nil
}

func (d *xmlDescription) convert() *Description {
	if d == nil {
		return nil
	}
	return &Description{Summary: d.Summary, Text: strings.TrimSpace(d.Text)}
}

func parseUint(s string, fallback uint32) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

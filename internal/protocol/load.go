package protocol

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// ParseYAML reads a protocol description encoded as YAML or JSON, using the
// field names of the IR types. The result is not validated.
func ParseYAML(data []byte) (*Protocol, error) {
	p := &Protocol{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, errors.Wrap(err, "decode protocol YAML")
	}
	return p, nil
}

// MarshalYAML encodes the description as YAML.
func MarshalYAML(p *Protocol) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "encode protocol YAML")
	}
	return data, nil
}

// Load reads and validates the protocol description at path. The format is
// chosen by file extension: .xml for Wayland XML, .yaml, .yml or .json for
// the YAML encoding of the IR.
func Load(path string) (*Protocol, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	var p *Protocol
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xml":
		p, err = ParseXML(bytes.NewReader(data))
	case ".yaml", ".yml", ".json":
		p, err = ParseYAML(data)
	default:
		return nil, errors.Errorf("%s: unsupported protocol format %q", path, ext)
	}
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s: invalid protocol", path)
	}

	return p, nil
}

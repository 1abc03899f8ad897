// Package config loads wlscan.toml project files, which list the protocols
// to generate bindings for.
//
//	runtime = "github.com/canonical/go-wlscan/client"
//
//	[[protocol]]
//	input = "protocols/wayland.xml"
//	output = "wayland/wayland.go"
//	package = "wayland"
//	root = "wl_display"
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is a project file.
type Config struct {
	// Runtime is the import path of the runtime package. Empty means the
	// generator's default.
	Runtime string `toml:"runtime"`

	// Protocols to generate, in file order.
	Protocols []Protocol `toml:"protocol"`
}

// Protocol is a single generation unit.
type Protocol struct {
	Input   string `toml:"input"`   // Protocol description.
	Output  string `toml:"output"`  // Generated Go file.
	Package string `toml:"package"` // Package name, derived from the protocol name if empty.
	Root    string `toml:"root"`    // Root interface, wl_display if empty.
}

// Load reads the project file at the given path. Relative input and output
// paths are resolved against the directory holding the file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	config, err := Decode(f, filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return config, nil
}

// Decode parses a project file, resolving relative paths against dir.
func Decode(r io.Reader, dir string) (*Config, error) {
	config := &Config{}
	meta, err := toml.NewDecoder(r).Decode(config)
	if err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	config.Runtime = strings.TrimSpace(config.Runtime)
	if len(config.Protocols) == 0 {
		return nil, errors.New("no protocol configured")
	}
	for i := range config.Protocols {
		p := &config.Protocols[i]
		p.Input = strings.TrimSpace(p.Input)
		p.Output = strings.TrimSpace(p.Output)
		p.Package = strings.TrimSpace(p.Package)
		p.Root = strings.TrimSpace(p.Root)
		if p.Input == "" {
			return nil, errors.Errorf("protocol %d: missing input", i)
		}
		if p.Output == "" {
			return nil, errors.Errorf("protocol %d: missing output", i)
		}
		p.Input = resolve(dir, p.Input)
		p.Output = resolve(dir, p.Output)
	}
	return config, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

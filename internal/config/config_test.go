package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/go-wlscan/internal/config"
)

func TestDecode(t *testing.T) {
	data := `
runtime = "example.com/wlrt"

[[protocol]]
input = "protocols/wayland.xml"
output = "wayland/wayland.go"
root = "wl_display"

[[protocol]]
input = "/usr/share/wayland-protocols/xdg-shell.xml"
output = " xdg/xdg.go "
package = "xdg"
`
	cfg, err := config.Decode(strings.NewReader(data), "/src")
	require.NoError(t, err)

	assert.Equal(t, "example.com/wlrt", cfg.Runtime)
	assert.Equal(t, []config.Protocol{
		{
			Input:  "/src/protocols/wayland.xml",
			Output: "/src/wayland/wayland.go",
			Root:   "wl_display",
		},
		{
			Input:   "/usr/share/wayland-protocols/xdg-shell.xml",
			Output:  "/src/xdg/xdg.go",
			Package: "xdg",
		},
	}, cfg.Protocols)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"no protocol configured":     `runtime = "x"`,
		"protocol 0: missing input":  "[[protocol]]\noutput = \"a.go\"",
		"protocol 1: missing output": "[[protocol]]\ninput = \"a.xml\"\noutput = \"a.go\"\n[[protocol]]\ninput = \"b.xml\"",
		"unknown keys: protocol.pkg": "[[protocol]]\ninput = \"a.xml\"\noutput = \"a.go\"\npkg = \"a\"",
		"parse config":               "[[protocol]\n",
	}
	for message, data := range cases {
		t.Run(message, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(data), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), message)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wlscan.toml")
	data := "[[protocol]]\ninput = \"wayland.xml\"\noutput = \"out/wayland.go\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Protocols, 1)
	assert.Equal(t, filepath.Join(dir, "wayland.xml"), cfg.Protocols[0].Input)
	assert.Equal(t, filepath.Join(dir, "out", "wayland.go"), cfg.Protocols[0].Output)
	assert.Equal(t, "", cfg.Runtime)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "wlscan.toml"))
	assert.Error(t, err)
}

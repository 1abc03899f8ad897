package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/go-wlscan/internal/protocol"
)

var sample = filepath.Join("..", "..", "internal", "protocol", "testdata", "sample.xml")

func TestGenerate(t *testing.T) {
	output := filepath.Join(t.TempDir(), "wl", "wayland.go")

	_, stderr, err := run(t, "generate", "-i", sample, "-o", output, "-p", "wl", "--log-level", "info")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "// Code generated by wlscan. DO NOT EDIT."))
	assert.Contains(t, string(data), "\npackage wl\n")
	assert.Contains(t, stderr, "wrote "+output)
}

func TestGenerate_Config(t *testing.T) {
	dir := t.TempDir()
	input, err := filepath.Abs(sample)
	require.NoError(t, err)

	data := `runtime = "example.com/wlrt"

[[protocol]]
input = "` + filepath.ToSlash(input) + `"
output = "gen/wayland.go"
`
	path := filepath.Join(dir, "wlscan.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, _, err = run(t, "generate", "--config", path)
	require.NoError(t, err)

	source, err := os.ReadFile(filepath.Join(dir, "gen", "wayland.go"))
	require.NoError(t, err)
	assert.Contains(t, string(source), "\npackage wayland\n")
	assert.Contains(t, string(source), `import client "example.com/wlrt"`)
}

func TestGenerate_Trace(t *testing.T) {
	output := filepath.Join(t.TempDir(), "wayland.go")

	_, stderr, err := run(t, "generate", "-i", sample, "-o", output, "--trace")
	require.NoError(t, err)
	assert.Contains(t, stderr, "wlscan.validate wayland")
	assert.Contains(t, stderr, "wlscan.format wayland")
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "-i", sample)
	assert.EqualError(t, err, "both --input and --output are required")

	_, _, err = run(t, "generate", "-c", "wlscan.toml", "-o", "out.go")
	assert.EqualError(t, err, "--config cannot be combined with --input or --output")

	_, _, err = run(t, "generate", "-i", sample, "-o", "out.go", "--log-level", "loud")
	assert.EqualError(t, err, `invalid log level "loud"`)

	_, _, err = run(t, "generate", "-i", "missing.xml", "-o", "out.go")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	stdout, _, err := run(t, "dump", "-i", sample)
	require.NoError(t, err)

	p, err := protocol.ParseYAML([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, "wayland", p.Name)
	assert.Len(t, p.Interfaces, 12)
}

func TestBench(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := run(t, "bench", "-i", sample, "-d", dir, "--duration", "50ms", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "total")
	assert.Contains(t, stdout, "wlscan.format")

	entries, err := os.ReadDir(filepath.Join(dir, "results"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	_, _, err = run(t, "bench", "-i", sample, "-w", "kvwrite")
	assert.EqualError(t, err, `unknown workload "kvwrite"`)
}

func TestCompleter(t *testing.T) {
	p, err := protocol.Load(sample)
	require.NoError(t, err)
	complete := completer(p)

	assert.Equal(t, []string{"show", "signature"}, complete("s"))
	assert.Equal(t, []string{"show wl_data_offer", "show wl_data_device"}, complete("show wl_data"))
	assert.Empty(t, complete("zz"))
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRoot()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

package shell_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/go-wlscan/internal/protocol"
	"github.com/canonical/go-wlscan/internal/shell"
)

func TestInterfaces(t *testing.T) {
	lines := processLines(t, newShell(t), "interfaces")

	require.Len(t, lines, 12)
	assert.Equal(t, []string{"wl_display", "v1", "2", "requests", "2", "events", "core", "global", "object"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"wl_pointer", "v7", "2", "requests", "2", "events"}, strings.Fields(lines[7]))

	// Columns line up.
	assert.Equal(t, strings.Index(lines[0], "v1"), strings.Index(lines[4], "v1"))
}

func TestRequests(t *testing.T) {
	lines := processLines(t, newShell(t), "requests wl_surface")

	require.Len(t, lines, 4)
	assert.Equal(t, []string{"0", "destroy()", "destructor"}, strings.Fields(lines[0]))
	assert.Equal(t, "1  attach(buffer ?object<wl_buffer>, x int, y int)", lines[1])
	assert.Equal(t, "2  commit()", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "3  set_buffer_scale(scale int) "))
	assert.True(t, strings.HasSuffix(lines[3], "  since 3"))
}

func TestEvents(t *testing.T) {
	lines := processLines(t, newShell(t), "events wl_data_device")

	assert.Equal(t, []string{
		"0  data_offer(id new_id<wl_data_offer>)",
		"1  motion(time uint, x fixed, y fixed)",
	}, lines)
}

func TestEnums(t *testing.T) {
	result := process(t, newShell(t), "enums wl_output")
	assert.Equal(t, "transform: normal=0 90=1 180=2 flipped_270=7", result)

	result = process(t, newShell(t), "enums wl_compositor")
	assert.Equal(t, "", result)
}

func TestSignature(t *testing.T) {
	sh := newShell(t)

	assert.Equal(t, `"usun"`, process(t, sh, "signature wl_registry.bind"))
	assert.Equal(t, `"uff"`, process(t, sh, "signature wl_pointer.motion"))
	assert.Equal(t, `"3i"`, process(t, sh, "signature wl_surface.set_buffer_scale"))
	assert.Equal(t, `""`, process(t, sh, "signature wl_buffer.release"))
}

func TestShow(t *testing.T) {
	lines := processLines(t, newShell(t), "show wl_pointer")

	assert.Equal(t, "wl_pointer version 7 (Go type WlPointer)", lines[0])
	assert.Contains(t, lines, "requests:")
	assert.Contains(t, lines, "  0  set_cursor(serial uint, surface ?object<wl_surface>, hotspot_x int, hotspot_y int)")
	assert.Contains(t, lines, "events:")
	assert.Contains(t, lines, "  1  motion(time uint, surface_x fixed, surface_y fixed)")
	assert.Contains(t, lines, "enums:")
	assert.Contains(t, lines, "  error: role=0")
	assert.Contains(t, lines, "  button_state: released=0 pressed=1")
}

func TestShow_YAML(t *testing.T) {
	p := loadSample(t)
	sh, err := shell.New(p, shell.WithFormat("yaml"))
	require.NoError(t, err)

	lines := processLines(t, sh, "show wl_callback")
	assert.Contains(t, lines, "name: wl_callback")
	assert.Contains(t, lines, "version: 1")
	assert.Contains(t, lines, "  - name: callback_data")
	assert.Contains(t, lines, "    type: uint")
}

func TestMultipleNewIDs(t *testing.T) {
	p := &protocol.Protocol{
		Name: "test",
		Interfaces: []protocol.Interface{{
			Name:    "factory",
			Version: 1,
			Requests: []protocol.Message{{Name: "split", Args: []protocol.Arg{
				{Name: "left", Type: protocol.NewID, Interface: "factory"},
				{Name: "right", Type: protocol.NewID, Interface: "factory"},
			}}},
		}},
	}
	sh, err := shell.New(p)
	require.NoError(t, err)

	result := process(t, sh, "requests factory")
	assert.True(t, strings.HasSuffix(result, "  not generated"))
}

func TestHelpAndBlank(t *testing.T) {
	sh := newShell(t)
	assert.Contains(t, process(t, sh, "help"), "signature <iface>.<msg>")
	assert.Equal(t, "", process(t, sh, "   "))
}

func TestErrors(t *testing.T) {
	cases := map[string]string{
		"frobnicate":                `unknown command "frobnicate", try "help"`,
		"interfaces wl_display":     "usage: interfaces",
		"show":                      "usage: show <iface>",
		"events wl_nope":            `no interface named "wl_nope"`,
		"signature wl_surface":      "usage: signature <iface>.<msg>",
		"signature wl_nope.destroy": `no interface named "wl_nope"`,
		"signature wl_surface.nope": `interface wl_surface has no message named "nope"`,
	}
	sh := newShell(t)
	for line, message := range cases {
		t.Run(line, func(t *testing.T) {
			_, err := sh.Process(context.Background(), line)
			assert.EqualError(t, err, message)
		})
	}
}

func TestProcess_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newShell(t).Process(ctx, "help")
	assert.Equal(t, context.Canceled, err)
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := shell.New(loadSample(t), shell.WithFormat("json"))
	assert.EqualError(t, err, `unknown format "json"`)
}

func loadSample(t *testing.T) *protocol.Protocol {
	t.Helper()
	p, err := protocol.Load(filepath.Join("..", "protocol", "testdata", "sample.xml"))
	require.NoError(t, err)
	return p
}

func newShell(t *testing.T) *shell.Shell {
	t.Helper()
	sh, err := shell.New(loadSample(t))
	require.NoError(t, err)
	return sh
}

func process(t *testing.T, sh *shell.Shell, line string) string {
	t.Helper()
	result, err := sh.Process(context.Background(), line)
	require.NoError(t, err)
	return result
}

func processLines(t *testing.T, sh *shell.Shell, line string) []string {
	t.Helper()
	return strings.Split(process(t, sh, line), "\n")
}

package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/go-wlscan/logging"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Warn, &buf)

	log(logging.Debug, "hidden %d", 1)
	assert.Empty(t, buf.String())

	log(logging.Error, "shown %d", 2)
	assert.Contains(t, buf.String(), "ERR")
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "app=wlscan")
}

func TestNew_NoneSilencesEverything(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.None, &buf)
	log(logging.Error, "boom")
	assert.Empty(t, buf.String())
}

func TestZerolog_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logging.Zerolog(logging.Debug, zerolog.New(&buf))

	log(logging.Debug, "a")
	log(logging.Info, "b")
	log(logging.Warn, "c %s", "d")
	log(logging.Error, "e")

	assert.Equal(t,
		`{"level":"debug","message":"a"}`+"\n"+
			`{"level":"info","message":"b"}`+"\n"+
			`{"level":"warn","message":"c d"}`+"\n"+
			`{"level":"error","message":"e"}`+"\n",
		buf.String())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"debug":   logging.Debug,
		"INFO":    logging.Info,
		"warning": logging.Warn,
		" error ": logging.Error,
		"off":     logging.None,
	}
	for name, want := range cases {
		l, err := logging.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, l, name)
	}

	_, err := logging.ParseLevel("loud")
	assert.EqualError(t, err, `invalid log level "loud"`)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "WARN", logging.Warn.String())
	assert.Equal(t, "UNKNOWN", logging.None.String())
}

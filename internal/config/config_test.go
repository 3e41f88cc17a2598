package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func newViper(file string) (*viper.Viper, error) {
	v := viper.New()
	return v, Init(v, file)
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	v, err := newViper("")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, "0.0.0.0:8002", c.Server.Addr)
	assert.Equal(t, 10*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, int64(4<<20), c.Server.MaxBodyBytes)
	assert.Equal(t, "dump", c.Parse.Format)
	assert.Equal(t, 100*time.Millisecond, c.Watch.Debounce)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "htmlast.yml")
	require.NoError(t, os.WriteFile(file, []byte(`
log:
  level: debug
parse:
  format: json
  minify: true
server:
  addr: 127.0.0.1:9000
`), 0o644))
	t.Setenv("HTMLAST_SERVER_ADDR", "localhost:9100")

	v, err := newViper(file)
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Parse.Format)
	assert.True(t, c.Parse.Minify)
	// Environment beats the file.
	assert.Equal(t, "localhost:9100", c.Server.Addr)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := newViper(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	chdir(t, t.TempDir())
	v, err := newViper("")
	require.NoError(t, err)
	v.Set("parse.format", "xml")
	v.Set("server.addr", "no-port")
	v.Set("log.level", "loud")

	_, err = Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.parse.format failed oneof")
	assert.Contains(t, err.Error(), "config.server.addr failed hostname_port")
	assert.Contains(t, err.Error(), "config.log.level failed oneof")
}

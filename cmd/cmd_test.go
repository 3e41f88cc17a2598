package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParseDump(t *testing.T) {
	out, err := run(t, `<div class="a"><Card n=1/></div>`, "parse")
	require.NoError(t, err)
	assert.Equal(t, "| <div>\n|   class=\"a\"\n|   <Card>\n|     n=\"1\"\n", out)
}

func TestParseJSONFromFile(t *testing.T) {
	page := writeFile(t, t.TempDir(), "page.html", "<p>hi</p>")
	out, err := run(t, "", "parse", "--format", "json", page)
	require.NoError(t, err)

	var nodes []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, "p", nodes[0]["name"])
}

func TestParseOutFileAndCharset(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.html", "<p>caf\xe9</p>")
	dst := filepath.Join(dir, "tree.txt")
	_, err := run(t, "", "parse", "--charset", "latin1", "-o", dst, page)
	require.NoError(t, err)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "| <p>\n|   \"café\"\n", string(b))
}

func TestParseErrorsAndLimits(t *testing.T) {
	_, err := run(t, "<div>", "parse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing stdin: Eof, expecting close tag for: div")

	_, err = run(t, "<div></div>", "parse", "--max-bytes", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input too large")

	_, err = run(t, "<div></div>", "parse", "--format", "xml")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	in := "<ul>\n  <li>a</li>\n  <li id='x'>b</li>\n</ul>"
	out, err := run(t, in, "render")
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>a</li><li id=\"x\">b</li></ul>\n", out)

	out, err = run(t, in, "render", "--minify")
	require.NoError(t, err)
	assert.Contains(t, out, "<li id=\"x\">b</li>")

	// Minifying would lowercase the component, so the plain rendering is kept.
	out, err = run(t, `<Card title="x"><p>hi</p></Card>`, "render", "--minify")
	require.NoError(t, err)
	assert.Equal(t, "<Card title=\"x\"><p>hi</p></Card>\n", out)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.html", "<div><p>x</p><br></div>")
	bad := writeFile(t, dir, "bad.html", "<div>")

	out, err := run(t, "", "check", good)
	require.NoError(t, err)
	assert.Equal(t, "ok "+good+" (3 elements)\n", out)

	_, err = run(t, "", "check", good, bad)
	require.Error(t, err)
	assert.Equal(t, "1 of 2 files failed", err.Error())
}

func TestBench(t *testing.T) {
	out, err := run(t, "<p>x</p>", "bench", "-n", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "8 bytes, 2 nodes, 10 runs")

	_, err = run(t, "<p>x</p>", "bench", "-n", "0")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "cfg.yml", "parse:\n  format: yaml\n")
	out, err := run(t, "<p>x</p>", "--config", cfg, "parse")
	require.NoError(t, err)
	assert.Contains(t, out, "type: el")

	// Flags beat the file.
	out, err = run(t, "<p>x</p>", "--config", cfg, "parse", "-f", "html")
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", out)

	bad := writeFile(t, t.TempDir(), "bad.yml", "log:\n  level: loud\n")
	_, err = run(t, "<p>x</p>", "--config", bad, "parse")
	assert.Error(t, err)
}

package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/htmlast/internal/config"
	"github.com/heathj/htmlast/parser"
)

func newTestServer(t *testing.T, maxBody int64) *httptest.Server {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	s := New(config.ServerConfig{Addr: "127.0.0.1:0", MaxBodyBytes: maxBody}, parser.NewParser(), logger)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "text/html", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestParseJSON(t *testing.T) {
	ts := newTestServer(t, 1024)
	resp, body := post(t, ts.URL+"/parse", `<ul id="x"><li>a</li></ul>`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var nodes []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, "el", nodes[0]["type"])
	assert.Equal(t, "ul", nodes[0]["name"])
}

func TestParseFormats(t *testing.T) {
	ts := newTestServer(t, 1024)
	tests := []struct {
		format string
		want   string
	}{
		{"dump", "| <p>\n|   \"hi\"\n"},
		{"html", "<p>hi</p>"},
	}
	for _, tt := range tests {
		resp, body := post(t, ts.URL+"/parse?format="+tt.format, "<p> hi </p>")
		assert.Equal(t, http.StatusOK, resp.StatusCode, tt.format)
		assert.Equal(t, tt.want, string(body), tt.format)
	}

	resp, body := post(t, ts.URL+"/parse?format=yaml", "<p> hi </p>")
	assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), "type: el")
	assert.Contains(t, string(body), "text: hi")

	resp, _ = post(t, ts.URL+"/parse?format=xml", "<p></p>")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseCharset(t *testing.T) {
	ts := newTestServer(t, 1024)

	resp, body := post(t, ts.URL+"/parse?format=dump&charset=latin1", "<p>caf\xe9</p>")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "| <p>\n|   \"caf\u00e9\"\n", string(body))

	resp, _ = post(t, ts.URL+"/parse?charset=nope", "<p></p>")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseErrors(t *testing.T) {
	ts := newTestServer(t, 16)

	resp, body := post(t, ts.URL+"/parse", "<div>")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var e errorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "Eof, expecting close tag for: div", e.Error)

	resp, _ = post(t, ts.URL+"/parse", strings.Repeat("<br>", 10))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	r, err := http.Get(ts.URL + "/parse")
	require.NoError(t, err)
	r.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, r.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, 16)
	r, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer r.Body.Close()
	assert.Equal(t, http.StatusOK, r.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestWebSocket(t *testing.T) {
	ts := newTestServer(t, 1024)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("<div><br></div>")))
	var reply wsReply
	require.NoError(t, wsjson.Read(ctx, conn, &reply))
	assert.Empty(t, reply.Error)
	assert.Equal(t, 2, reply.Count)
	require.Len(t, reply.Nodes, 1)
	assert.Equal(t, "div", reply.Nodes[0].Name)

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("<div>")))
	reply = wsReply{}
	require.NoError(t, wsjson.Read(ctx, conn, &reply))
	assert.Equal(t, "Eof, expecting close tag for: div", reply.Error)

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("  ")))
	_, msg, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0}`, string(msg))

	conn.Close(websocket.StatusNormalClosure, "")
}

func TestListenAndServeShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	logger, _ := logtest.NewNullLogger()
	s := New(config.ServerConfig{Addr: addr, MaxBodyBytes: 1024}, parser.NewParser(), logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	require.Eventually(t, func() bool {
		r, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		r.Body.Close()
		return r.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

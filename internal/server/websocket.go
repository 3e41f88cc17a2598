package server

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/heathj/htmlast/parser/ast"
)

// Time allowed to write one reply to the peer.
const writeWait = 10 * time.Second

// wsReply answers one text frame. A failed parse sets Error and Around. A
// successful one sets Count, which is zero for an empty document, and Nodes.
type wsReply struct {
	Nodes  []ast.Encoded `json:"nodes,omitempty"`
	Count  int           `json:"count"`
	Error  string        `json:"error,omitempty"`
	Around string        `json:"around,omitempty"`
}

// handleWebSocket parses every text message received and replies with the
// encoded tree, so an editor can reparse on each keystroke.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade")
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(s.cfg.MaxBodyBytes)

	ctx := r.Context()
	log := s.log.WithField("remote", r.RemoteAddr)
	log.Debug("websocket connected")
	for {
		typ, msg, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
				log.WithError(err).Debug("websocket read")
			}
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "text frames only")
			return
		}

		var reply wsReply
		nodes, err := s.parser.ParseBytes(msg)
		if err != nil {
			_, resp := errorStatus(err)
			reply.Error, reply.Around = resp.Error, resp.Around
		} else {
			reply.Nodes = ast.Encode(nodes)
			reply.Count = ast.Count(nodes)
		}

		wctx, cancel := context.WithTimeout(ctx, writeWait)
		err = wsjson.Write(wctx, conn, reply)
		cancel()
		if err != nil {
			log.WithError(err).Debug("websocket write")
			return
		}
	}
}

package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// session is one connected browser. Outgoing patches go through a
// buffered channel so a slow browser never blocks the dispatch
// goroutine; when the buffer fills the session is dropped.
type session struct {
	conn *websocket.Conn
	out  chan []byte

	closeOnce sync.Once
	closed    chan struct{}
}

func newSession(conn *websocket.Conn) *session {
	return &session{
		conn:   conn,
		out:    make(chan []byte, 64),
		closed: make(chan struct{}),
	}
}

// send queues a message, closing the session when the buffer is full.
func (sess *session) send(msg []byte) {
	select {
	case sess.out <- msg:
	case <-sess.closed:
	default:
		sess.close()
	}
}

func (sess *session) close() {
	sess.closeOnce.Do(func() {
		close(sess.closed)
		_ = sess.conn.Close()
	})
}

func (sess *session) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer sess.close()

	for {
		select {
		case msg := <-sess.out:
			_ = sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sess.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sess.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-sess.closed:
			return
		}
	}
}

// handleWS upgrades the connection, sends the full control snapshot, and
// pumps browser events onto the dispatch goroutine.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade", "error", err)
		return
	}

	sess := newSession(conn)
	s.mu.Lock()
	s.sessions[sess] = struct{}{}
	s.mu.Unlock()
	s.metrics.ActiveSessions.Inc()
	s.logger.Info("session connected", "remote", r.RemoteAddr)

	defer func() {
		sess.close()
		s.mu.Lock()
		delete(s.sessions, sess)
		s.mu.Unlock()
		s.metrics.ActiveSessions.Dec()
		s.logger.Info("session closed", "remote", r.RemoteAddr)
	}()

	go sess.writeLoop()

	// The snapshot reads control state, so it runs on the dispatch
	// goroutine like every other control access.
	s.Dispatch(func() {
		for _, p := range s.snapshot() {
			msg, err := json.Marshal(p)
			if err != nil {
				continue
			}
			sess.send(msg)
			s.metrics.PatchesSent.Inc()
		}
	})

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	conn.SetReadLimit(1 << 16)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("session read", "error", err)
			}
			return
		}
		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			s.logger.Warn("bad event", "error", err)
			continue
		}
		s.Dispatch(func() { s.applyEvent(ev) })
	}
}

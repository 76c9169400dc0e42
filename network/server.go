package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/gesture-lane/core"
	"github.com/lixenwraith/gesture-lane/engine"
	"github.com/lixenwraith/gesture-lane/input"
	"github.com/lixenwraith/gesture-lane/status"
)

// Snapshotter exposes the frame of the session in play, if any
type Snapshotter interface {
	CurrentFrame() (engine.Frame, bool)
}

// SnapshotFunc adapts a function to Snapshotter
type SnapshotFunc func() (engine.Frame, bool)

// CurrentFrame implements Snapshotter
func (f SnapshotFunc) CurrentFrame() (engine.Frame, bool) {
	return f()
}

// ErrServerRunning is returned by Start on a running server
var ErrServerRunning = errors.New("sensor server already running")

// Server accepts remote sensor observations over websocket and serves session status
// Each sensor frame overwrites the input channel, same as the local sampler
type Server struct {
	config   *Config
	writer   engine.InputWriter
	alphabet core.Alphabet
	poses    input.PoseTable
	snap     Snapshotter
	registry *status.Registry
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
	running    atomic.Bool

	// connMu orders connection registration against Shutdown so wg.Add never races wg.Wait
	connMu sync.Mutex
	conns  map[*websocket.Conn]struct{}
	closed bool
	wg     sync.WaitGroup

	// Cached metric pointers
	statConns    *atomic.Int64
	statMessages *atomic.Int64
	statRejected *atomic.Int64
	statLast     *status.AtomicString
}

// NewServer creates a sensor server, nil cfg, snapshotter or registry use defaults
func NewServer(cfg *Config, writer engine.InputWriter, alphabet core.Alphabet, snap Snapshotter, reg *status.Registry, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if snap == nil {
		snap = SnapshotFunc(func() (engine.Frame, bool) { return engine.Frame{}, false })
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Server{
		config:   cfg,
		writer:   writer,
		alphabet: alphabet,
		poses:    input.DefaultPoseTable(),
		snap:     snap,
		registry: reg,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:   cfg.ReadBufferSize,
			WriteBufferSize:  cfg.WriteBufferSize,
			HandshakeTimeout: cfg.HandshakeTimeout,
			CheckOrigin:      func(r *http.Request) bool { return true },
		},
		conns:        make(map[*websocket.Conn]struct{}),
		statConns:    reg.Ints.Get(status.SensorConnections),
		statMessages: reg.Ints.Get(status.SensorMessages),
		statRejected: reg.Ints.Get(status.SensorRejected),
		statLast:     reg.Strings.Get(status.SensorLast),
	}
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/sensor", s.handleSensor)
	r.Get("/status", s.handleStatus)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// Start binds the listener and serves in the background
func (s *Server) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServerRunning
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("sensor listen %s: %w", s.config.Address, err)
	}
	hs := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
	s.mu.Lock()
	s.listener = ln
	s.httpServer = hs
	s.mu.Unlock()

	s.logger.Printf("listening on %s", ln.Addr())
	core.Go(func() {
		if err := hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("serve: %v", err)
		}
	})
	return nil
}

// Addr returns the bound address, nil before Start
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown stops accepting, closes sensor connections and waits for their readers
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	s.mu.Lock()
	hs := s.httpServer
	s.mu.Unlock()
	err := hs.Shutdown(ctx)

	// Hijacked websocket connections are not tracked by http.Server
	s.connMu.Lock()
	s.closed = true
	for c := range s.conns {
		_ = c.Close()
	}
	s.connMu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}

	s.logger.Printf("stopped")
	return err
}

func (s *Server) handleSensor(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade: %v", err)
		return
	}

	s.connMu.Lock()
	if s.closed {
		s.connMu.Unlock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(s.config.WriteTimeout))
		_ = conn.Close()
		return
	}
	s.wg.Add(1)
	s.conns[conn] = struct{}{}
	s.connMu.Unlock()
	s.statConns.Add(1)

	defer func() {
		s.connMu.Lock()
		delete(s.conns, conn)
		s.connMu.Unlock()
		s.statConns.Add(-1)
		_ = conn.Close()
		s.wg.Done()
	}()

	s.logger.Printf("sensor connected from %s", r.RemoteAddr)
	s.readLoop(conn)
	s.logger.Printf("sensor %s disconnected", r.RemoteAddr)
}

func (s *Server) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(s.config.MaxMessageSize)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("read: %v", err)
			}
			return
		}

		var msg SensorMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.statRejected.Add(1)
			s.logger.Printf("decode: %v", err)
			continue
		}
		sym, err := msg.Resolve(s.poses, s.alphabet)
		if err != nil {
			s.statRejected.Add(1)
			s.logger.Printf("%v", err)
			continue
		}

		s.writer.Store(sym)
		s.statMessages.Add(1)
		s.statLast.Store(sym.String())
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{Metrics: s.registry.Snapshot()}
	if f, ok := s.snap.CurrentFrame(); ok {
		resp.Running = true
		resp.Frame = &f
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "encode status", http.StatusInternalServerError)
	}
}

package preview

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/enhancedfx/efx/pkg/control"
	"github.com/enhancedfx/efx/pkg/observe"
	"github.com/enhancedfx/efx/pkg/theme"
)

// Server hosts the playground. All control mutations funnel through one
// dispatch goroutine; HTTP and WebSocket goroutines never touch a
// control directly.
type Server struct {
	addr     string
	logger   *slog.Logger
	theme    *theme.Theme
	metrics  *Metrics
	gatherer prometheus.Gatherer

	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[*session]struct{}

	dispatch chan func()
	done     chan struct{}

	order []string
	byID  map[string]any
}

// Option configures the preview server.
type Option func(*Server)

// WithAddr sets the listen address (default ":8090").
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithTheme sets the theme served at /theme.css (default the built-in
// Material theme).
func WithTheme(t *theme.Theme) Option {
	return func(s *Server) { s.theme = t }
}

// WithLogger sets the logger (default slog.Default).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// New creates a preview server. Each server owns a private Prometheus
// registry exposed at /metrics.
func New(opts ...Option) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		addr:     ":8090",
		logger:   slog.Default().With("component", "preview"),
		theme:    theme.Material(),
		metrics:  newMetrics(registry),
		gatherer: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The playground is a local dev tool.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		sessions: map[*session]struct{}{},
		dispatch: make(chan func(), 256),
		done:     make(chan struct{}),
		byID:     map[string]any{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterTextField adds a text field to the playground.
func (s *Server) RegisterTextField(tf *control.TextField) *Server {
	s.register(tf.ID(), tf)
	s.watchControl(tf.ID(), &tf.Control)
	s.watchTextInput(tf.ID(), &tf.TextInput)
	return s
}

// RegisterTextArea adds a text area to the playground.
func (s *Server) RegisterTextArea(ta *control.TextArea) *Server {
	s.register(ta.ID(), ta)
	s.watchControl(ta.ID(), &ta.Control)
	s.watchTextInput(ta.ID(), &ta.TextInput)
	s.watchValue(ta.ID(), "lines", ta.Lines())
	return s
}

// RegisterButton adds a button to the playground.
func (s *Server) RegisterButton(b *control.Button) *Server {
	s.register(b.ID(), b)
	s.watchControl(b.ID(), &b.Control)
	s.watchValue(b.ID(), "label", b.Label())
	return s
}

// RegisterNavBar adds a navigation bar to the playground.
func (s *Server) RegisterNavBar(nb *control.NavBar) *Server {
	s.register(nb.ID(), nb)
	s.watchControl(nb.ID(), &nb.Control)
	s.watchValue(nb.ID(), "selected", nb.Selected())
	for _, it := range nb.Items() {
		item := it
		item.States().OnInvalidate(func() {
			s.broadcast(Patch{Control: nb.ID(), Item: item.ID(), Kind: "states", Value: item.States().Get()})
		})
	}
	return s
}

func (s *Server) register(id string, c any) {
	if _, dup := s.byID[id]; dup {
		s.logger.Warn("duplicate control id", "id", id)
		return
	}
	s.order = append(s.order, id)
	s.byID[id] = c
}

// watchControl mirrors the base class list and state set.
func (s *Server) watchControl(id string, c *control.Control) {
	c.Classes().OnInvalidate(func() {
		s.broadcast(Patch{Control: id, Kind: "classes", Value: c.Classes().Get()})
	})
	c.States().OnInvalidate(func() {
		s.broadcast(Patch{Control: id, Kind: "states", Value: c.States().Get()})
	})
}

// watchTextInput mirrors the text-input properties and counter.
func (s *Server) watchTextInput(id string, in *control.TextInput) {
	s.watchValue(id, "text", in.Text())
	s.watchValue(id, "prompt", in.Prompt())
	s.watchValue(id, "title", in.Title())
	s.watchValue(id, "supporting", in.Supporting())
	s.watchValue(id, "count", in.Count())
}

// watched is what watchValue needs from a property or computed value.
type watched interface {
	Value() any
	AddInvalidationListener(l observe.InvalidationListener)
}

// watchValue mirrors one observable value as a property patch stream.
func (s *Server) watchValue(id, name string, src watched) {
	src.AddInvalidationListener(observe.OnInvalidated(func(observe.Observable) {
		s.broadcast(Patch{Control: id, Kind: "property", Name: name, Value: src.Value()})
	}))
}

// broadcast serializes a patch and fans it out to every session.
func (s *Server) broadcast(p Patch) {
	msg, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("patch marshal", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for sess := range s.sessions {
		sess.send(msg)
		s.metrics.PatchesSent.Inc()
	}
}

// snapshot produces the full current state of every control, sent to a
// session right after it connects.
func (s *Server) snapshot() []Patch {
	var patches []Patch
	for _, id := range s.order {
		switch c := s.byID[id].(type) {
		case *control.TextField:
			patches = append(patches, snapshotTextInput(id, &c.TextInput)...)
			patches = append(patches, snapshotBase(id, &c.Control)...)
		case *control.TextArea:
			patches = append(patches, snapshotTextInput(id, &c.TextInput)...)
			patches = append(patches, Patch{Control: id, Kind: "property", Name: "lines", Value: c.Lines().Get()})
			patches = append(patches, snapshotBase(id, &c.Control)...)
		case *control.Button:
			patches = append(patches, Patch{Control: id, Kind: "property", Name: "label", Value: c.Label().Get()})
			patches = append(patches, snapshotBase(id, &c.Control)...)
		case *control.NavBar:
			patches = append(patches, Patch{Control: id, Kind: "property", Name: "selected", Value: c.Selected().Get()})
			patches = append(patches, snapshotBase(id, &c.Control)...)
			for _, it := range c.Items() {
				patches = append(patches,
					Patch{Control: id, Item: it.ID(), Kind: "property", Name: "label", Value: it.Label().Get()},
					Patch{Control: id, Item: it.ID(), Kind: "states", Value: it.States().Get()},
				)
			}
		}
	}
	return patches
}

func snapshotBase(id string, c *control.Control) []Patch {
	return []Patch{
		{Control: id, Kind: "classes", Value: c.Classes().Get()},
		{Control: id, Kind: "states", Value: c.States().Get()},
	}
}

func snapshotTextInput(id string, in *control.TextInput) []Patch {
	return []Patch{
		{Control: id, Kind: "property", Name: "text", Value: in.Text().Get()},
		{Control: id, Kind: "property", Name: "prompt", Value: in.Prompt().Get()},
		{Control: id, Kind: "property", Name: "title", Value: in.Title().Get()},
		{Control: id, Kind: "property", Name: "supporting", Value: in.Supporting().Get()},
		{Control: id, Kind: "property", Name: "count", Value: in.Count().Get()},
	}
}

// applyEvent routes a browser event to its control. Runs on the dispatch
// goroutine only.
func (s *Server) applyEvent(ev Event) {
	s.metrics.EventsReceived.Inc()

	c, ok := s.byID[ev.Control]
	if !ok {
		s.logger.Warn("event for unknown control", "control", ev.Control)
		return
	}

	switch target := c.(type) {
	case *control.TextField:
		s.applyInputEvent(ev, &target.Control, func(text string) { target.SetText(text) })
	case *control.TextArea:
		s.applyInputEvent(ev, &target.Control, func(text string) { target.SetText(text) })
	case *control.Button:
		switch ev.Type {
		case "focus":
			target.Focus()
		case "blur":
			target.Blur()
		case "hover":
			target.Hover(ev.On)
		case "click":
			target.Arm()
			target.Fire()
		}
	case *control.NavBar:
		if ev.Type == "select" {
			if err := target.Select(ev.Index); err != nil {
				s.logger.Warn("select rejected", "control", ev.Control, "error", err)
			}
		}
	}
}

func (s *Server) applyInputEvent(ev Event, base *control.Control, setText func(string)) {
	switch ev.Type {
	case "focus":
		base.Focus()
	case "blur":
		base.Blur()
	case "hover":
		base.Hover(ev.On)
	case "input":
		setText(ev.Text)
	}
}

// Dispatch schedules fn onto the control goroutine. Embedders use it to
// mutate registered controls while the server runs.
func (s *Server) Dispatch(fn func()) {
	select {
	case s.dispatch <- fn:
	case <-s.done:
	}
}

func (s *Server) dispatchLoop() {
	for {
		select {
		case fn := <-s.dispatch:
			fn()
		case <-s.done:
			return
		}
	}
}

// Router builds the HTTP routes. Exposed separately from ListenAndServe
// for tests and embedding.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(traceRequests)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(playgroundHTML))
	})
	r.Get("/theme.css", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_ = s.theme.WriteCSS(w)
	})
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/ws", s.handleWS)

	return r
}

// ListenAndServe runs the playground until ctx is canceled. Listener
// panics are counted and logged while the server runs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	prev := observe.SetUncaughtHandler(func(recovered any) {
		s.metrics.ListenerPanics.Inc()
		s.logger.Error("listener panic", "panic", recovered)
	})
	defer observe.SetUncaughtHandler(prev)

	go s.dispatchLoop()
	defer close(s.done)

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("preview listening", "addr", s.addr)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

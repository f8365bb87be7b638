package browser

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/skratchdot/open-golang/open"

	"github.com/dirkcgrunwald/remi-graphics/backend"
	"github.com/dirkcgrunwald/remi-graphics/svgdom"
)

func init() {
	backend.Register(backend.CanvasBrowser, func(cfg backend.Config) (backend.Canvas, error) {
		return New(cfg)
	})
}

// DefaultAddr is the listen address used when Config.Addr is empty.
// Port 0 lets the OS pick a free port; the chosen URL is logged and,
// when Config.OpenBrowser is set, opened in the system browser.
const DefaultAddr = "127.0.0.1:0"

const shutdownTimeout = 2 * time.Second

var upgrader = websocket.Upgrader{
	// The server only ever runs on a loopback or LAN address chosen by
	// the user; cross-origin pages gain nothing beyond what the page
	// shell already exposes.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Canvas hosts a graphics window in a web browser.
//
// The Go-side element tree is authoritative. A connecting page receives
// a full replay, after which mutations are streamed as patches on each
// Flush. Input events from the page are delivered on Events.
type Canvas struct {
	mu         sync.Mutex
	logger     *slog.Logger
	root       *svgdom.Element
	title      string
	background string
	pending    []patch
	sess       *session
	closed     bool

	readyOnce sync.Once
	ready     chan struct{}
	closeOnce sync.Once
	done      chan struct{}
	events    chan backend.Event

	srv *http.Server
	url string
}

var _ backend.Canvas = (*Canvas)(nil)

// session is one connected page. Writes are serialized through wmu;
// gorilla/websocket allows at most one concurrent writer.
type session struct {
	wmu  sync.Mutex
	conn *websocket.Conn
}

func (s *session) writePatches(ps []patch) error {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	return s.conn.WriteJSON(ps)
}

// New creates a browser canvas and starts serving immediately.
// The display is not ready until a page connects; use WaitReady.
func New(cfg backend.Config) (*Canvas, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("browser: listen %s: %w", addr, err)
	}

	c := &Canvas{
		logger: backend.NopLogger(),
		root:   svgdom.NewSVG(cfg.Width, cfg.Height),
		title:  cfg.Title,
		ready:  make(chan struct{}),
		done:   make(chan struct{}),
		events: make(chan backend.Event, 64),
		url:    fmt.Sprintf("http://%s/", ln.Addr()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := pageData{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height}
		if err := pageTemplate.Execute(w, data); err != nil {
			c.log().Warn("page render failed", "err", err)
		}
	})
	mux.HandleFunc("/ws", c.handleWS)

	c.srv = &http.Server{Handler: mux}
	go func() {
		if err := c.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			c.log().Warn("display server stopped", "err", err)
			c.Close()
		}
	}()

	c.log().Info("graphics window serving", "url", c.url)
	if cfg.OpenBrowser {
		go func() {
			if err := open.Run(c.url); err != nil {
				c.log().Warn("could not open browser", "url", c.url, "err", err)
			}
		}()
	}
	return c, nil
}

// SetLogger sets the logger used for session lifecycle and patch
// traffic. Passing nil restores the default silent logger.
func (c *Canvas) SetLogger(l *slog.Logger) {
	if l == nil {
		l = backend.NopLogger()
	}
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
}

func (c *Canvas) log() *slog.Logger {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logger
}

// URL returns the address the window page is served at.
func (c *Canvas) URL() string { return c.url }

// WaitReady blocks until a page has connected and reported ready.
func (c *Canvas) WaitReady(ctx context.Context) error {
	select {
	case <-c.ready:
		return nil
	case <-c.done:
		return backend.ErrCanvasClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Append adds an element to the tree and queues it for the display.
func (c *Canvas) Append(e *svgdom.Element) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	c.root.Append(e)
	c.pending = append(c.pending, patch{Op: "append", Markup: e.Render()})
	return nil
}

// Update queues attribute and style changes for a drawn element.
func (c *Canvas) Update(id string, attrs, style map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	e := c.root.Find(id)
	if e == nil {
		return backend.ErrUnknownElement
	}
	for k, v := range attrs {
		e.SetAttr(k, v)
	}
	for k, v := range style {
		e.SetStyle(k, v)
	}
	c.pending = append(c.pending, patch{Op: "update", ID: id, Attrs: attrs, Style: style})
	return nil
}

// UpdateText queues a character-data change for a drawn element.
func (c *Canvas) UpdateText(id, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	e := c.root.Find(id)
	if e == nil {
		return backend.ErrUnknownElement
	}
	e.SetText(text)
	c.pending = append(c.pending, patch{Op: "text", ID: id, Value: text})
	return nil
}

// Remove takes an element off the surface.
func (c *Canvas) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	if !c.root.RemoveChild(id) {
		return backend.ErrUnknownElement
	}
	c.pending = append(c.pending, patch{Op: "remove", ID: id})
	return nil
}

// SetTitle sets the document title.
func (c *Canvas) SetTitle(title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	c.title = title
	c.pending = append(c.pending, patch{Op: "title", Value: title})
	return nil
}

// SetBackground sets the svg background color.
func (c *Canvas) SetBackground(color string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	c.background = color
	c.pending = append(c.pending, patch{Op: "background", Value: color})
	return nil
}

// Flush pushes queued patches to the connected page. With no page
// connected the queue is discarded: a later connection receives a full
// replay of the authoritative tree instead.
func (c *Canvas) Flush() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return backend.ErrCanvasClosed
	}
	ps := c.pending
	c.pending = nil
	sess := c.sess
	logger := c.logger
	c.mu.Unlock()

	if sess == nil || len(ps) == 0 {
		return nil
	}
	if err := sess.writePatches(ps); err != nil {
		logger.Warn("patch write failed, dropping session", "err", err)
		c.dropSession(sess)
		return nil
	}
	logger.Debug("patches flushed", "count", len(ps))
	return nil
}

// Events returns the input event stream from the page.
func (c *Canvas) Events() <-chan backend.Event { return c.events }

// Close shuts down the display server and event stream. Idempotent.
func (c *Canvas) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		sess := c.sess
		c.sess = nil
		logger := c.logger
		close(c.done)
		close(c.events)
		c.mu.Unlock()

		if sess != nil {
			sess.conn.Close()
		}
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := c.srv.Shutdown(ctx); err != nil {
			logger.Warn("display server shutdown", "err", err)
		}
	})
	return nil
}

func (c *Canvas) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.log().Warn("websocket upgrade failed", "err", err)
		return
	}
	sess := &session{conn: conn}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return
	}
	old := c.sess
	c.sess = sess
	// Pending patches predate this session; the replay below covers them.
	c.pending = nil
	replay := c.replayLocked()
	logger := c.logger
	c.mu.Unlock()

	if old != nil {
		old.conn.Close()
	}
	logger.Info("display connected", "remote", conn.RemoteAddr().String())

	if err := sess.writePatches(replay); err != nil {
		logger.Warn("replay failed", "err", err)
		c.dropSession(sess)
		conn.Close()
		return
	}

	for {
		var ev clientEvent
		if err := conn.ReadJSON(&ev); err != nil {
			logger.Info("display disconnected", "err", err)
			c.dropSession(sess)
			conn.Close()
			return
		}
		c.dispatch(ev)
	}
}

// replayLocked builds the patch sequence reconstructing the current
// tree. Caller holds c.mu.
func (c *Canvas) replayLocked() []patch {
	ps := []patch{{Op: "title", Value: c.title}}
	if c.background != "" {
		ps = append(ps, patch{Op: "background", Value: c.background})
	}
	for _, child := range c.root.Children() {
		ps = append(ps, patch{Op: "append", Markup: child.Render()})
	}
	return ps
}

func (c *Canvas) dropSession(sess *session) {
	c.mu.Lock()
	if c.sess == sess {
		c.sess = nil
	}
	c.mu.Unlock()
}

func (c *Canvas) dispatch(ev clientEvent) {
	switch ev.Event {
	case "ready":
		c.readyOnce.Do(func() { close(c.ready) })
	case "click":
		c.post(backend.Event{Kind: backend.EventClick, X: ev.X, Y: ev.Y})
	case "key":
		c.post(backend.Event{Kind: backend.EventKey, Key: ev.Key})
	case "input":
		c.post(backend.Event{Kind: backend.EventInput, TargetID: ev.ID, Value: ev.Value})
	default:
		c.log().Debug("unknown client event", "event", ev.Event)
	}
}

// post delivers an event without blocking. A slow consumer loses the
// oldest unread events rather than wedging the websocket read loop.
func (c *Canvas) post(ev backend.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.events <- ev:
	default:
		select {
		case <-c.events:
		default:
		}
		select {
		case c.events <- ev:
		default:
		}
		c.logger.Warn("event queue full, dropped oldest")
	}
}

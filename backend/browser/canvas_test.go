package browser

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dirkcgrunwald/remi-graphics/backend"
	"github.com/dirkcgrunwald/remi-graphics/svgdom"
)

func newCanvas(t *testing.T) *Canvas {
	t.Helper()
	c, err := New(backend.Config{Title: "test", Width: 320, Height: 200})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func wsURL(c *Canvas) string {
	return "ws" + strings.TrimPrefix(c.URL(), "http") + "ws"
}

// connect dials the canvas and consumes the replay it sends to every
// new session.
func connect(t *testing.T, c *Canvas) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(c), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	readPatches(t, conn)
	return conn
}

func readPatches(t *testing.T, conn *websocket.Conn) []patch {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ps []patch
	if err := conn.ReadJSON(&ps); err != nil {
		t.Fatalf("read patches: %v", err)
	}
	return ps
}

func TestPageServed(t *testing.T) {
	c := newCanvas(t)
	resp, err := http.Get(c.URL())
	if err != nil {
		t.Fatalf("GET %s: %v", c.URL(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	for _, frag := range []string{
		"<title>test</title>",
		"/ws",
		"rg-arrow",
		// Key events must not fire for keystrokes inside embedded inputs.
		`if (e.target.tagName === "INPUT") { return; }`,
	} {
		if !strings.Contains(string(body), frag) {
			t.Errorf("page missing %q", frag)
		}
	}
}

func TestPageNotFound(t *testing.T) {
	c := newCanvas(t)
	resp, err := http.Get(c.URL() + "nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestReadyHandshake(t *testing.T) {
	c := newCanvas(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	if err := c.WaitReady(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitReady with no page = %v, want deadline exceeded", err)
	}
	cancel()

	conn := connect(t, c)
	if err := conn.WriteJSON(clientEvent{Event: "ready"}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.WaitReady(ctx); err != nil {
		t.Errorf("WaitReady after ready event = %v", err)
	}
}

func TestReplayOnConnect(t *testing.T) {
	c := newCanvas(t)

	// Draw before any page exists.
	e := svgdom.NewCircle(10, 10, 5)
	if err := c.Append(e); err != nil {
		t.Fatal(err)
	}
	if err := c.SetBackground("azure"); err != nil {
		t.Fatal(err)
	}
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(c), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	ps := readPatches(t, conn)
	if len(ps) != 3 {
		t.Fatalf("replay = %d patches, want 3: %+v", len(ps), ps)
	}
	if ps[0].Op != "title" || ps[0].Value != "test" {
		t.Errorf("replay[0] = %+v, want title patch", ps[0])
	}
	if ps[1].Op != "background" || ps[1].Value != "azure" {
		t.Errorf("replay[1] = %+v, want background patch", ps[1])
	}
	if ps[2].Op != "append" || !strings.Contains(ps[2].Markup, "<circle") {
		t.Errorf("replay[2] = %+v, want circle append", ps[2])
	}
}

func TestFlushStreamsPatches(t *testing.T) {
	c := newCanvas(t)
	conn := connect(t, c)

	e := svgdom.NewRect(0, 0, 10, 10)
	if err := c.Append(e); err != nil {
		t.Fatal(err)
	}
	if err := c.Update(e.ID(), map[string]string{"fill": "red"}, nil); err != nil {
		t.Fatal(err)
	}
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}

	ps := readPatches(t, conn)
	if len(ps) != 2 {
		t.Fatalf("got %d patches, want 2: %+v", len(ps), ps)
	}
	if ps[0].Op != "append" || !strings.Contains(ps[0].Markup, "<rect") {
		t.Errorf("patch 0 = %+v, want rect append", ps[0])
	}
	if ps[1].Op != "update" || ps[1].ID != e.ID() || ps[1].Attrs["fill"] != "red" {
		t.Errorf("patch 1 = %+v, want fill update", ps[1])
	}

	// A flush with nothing queued writes nothing.
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateUnknownElement(t *testing.T) {
	c := newCanvas(t)
	if err := c.Update("no-such-id", nil, nil); !errors.Is(err, backend.ErrUnknownElement) {
		t.Errorf("Update = %v, want ErrUnknownElement", err)
	}
	if err := c.UpdateText("no-such-id", "x"); !errors.Is(err, backend.ErrUnknownElement) {
		t.Errorf("UpdateText = %v, want ErrUnknownElement", err)
	}
	if err := c.Remove("no-such-id"); !errors.Is(err, backend.ErrUnknownElement) {
		t.Errorf("Remove = %v, want ErrUnknownElement", err)
	}
}

func TestClientEvents(t *testing.T) {
	c := newCanvas(t)
	conn := connect(t, c)

	sends := []clientEvent{
		{Event: "click", X: 12, Y: 34},
		{Event: "key", Key: "Enter"},
		{Event: "input", ID: "field-1", Value: "typed"},
	}
	for _, ev := range sends {
		if err := conn.WriteJSON(ev); err != nil {
			t.Fatal(err)
		}
	}

	want := []backend.Event{
		{Kind: backend.EventClick, X: 12, Y: 34},
		{Kind: backend.EventKey, Key: "Enter"},
		{Kind: backend.EventInput, TargetID: "field-1", Value: "typed"},
	}
	for i, w := range want {
		select {
		case got := <-c.Events():
			if got != w {
				t.Errorf("event %d = %+v, want %+v", i, got, w)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestReconnectReplacesSession(t *testing.T) {
	c := newCanvas(t)
	first := connect(t, c)

	second := connect(t, c)

	// The first connection is dropped when the second arrives.
	first.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := first.ReadMessage(); err == nil {
		t.Error("first session should be closed after a reconnect")
	}

	// Patches now flow to the second session.
	if err := c.Append(svgdom.NewGroup()); err != nil {
		t.Fatal(err)
	}
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	ps := readPatches(t, second)
	if len(ps) != 1 || ps[0].Op != "append" {
		t.Errorf("second session patches = %+v", ps)
	}
}

func TestFlushWithoutSessionDiscards(t *testing.T) {
	c := newCanvas(t)
	if err := c.Append(svgdom.NewGroup()); err != nil {
		t.Fatal(err)
	}
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}

	// The discarded patch is not re-sent; the replay rebuilds the tree.
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(c), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	ps := readPatches(t, conn)
	var appends int
	for _, p := range ps {
		if p.Op == "append" {
			appends++
		}
	}
	if appends != 1 {
		t.Errorf("replay has %d appends, want 1: %+v", appends, ps)
	}
}

func TestClose(t *testing.T) {
	c := newCanvas(t)
	conn := connect(t, c)

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if _, ok := <-c.Events(); ok {
		t.Error("event stream should be closed")
	}
	if err := c.Append(svgdom.NewGroup()); !errors.Is(err, backend.ErrCanvasClosed) {
		t.Errorf("Append after Close = %v, want ErrCanvasClosed", err)
	}
	if err := c.WaitReady(context.Background()); !errors.Is(err, backend.ErrCanvasClosed) {
		t.Errorf("WaitReady after Close = %v, want ErrCanvasClosed", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("page connection should be closed")
	}

	// The HTTP server is down as well.
	client := &http.Client{Timeout: time.Second}
	if _, err := client.Get(c.URL()); err == nil {
		t.Error("page should no longer be served")
	}
}

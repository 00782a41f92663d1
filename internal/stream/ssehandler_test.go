package stream

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	aqm "github.com/appetiteclub/apt"
	"github.com/go-chi/chi/v5"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSSEHandlerStream(t *testing.T) {
	bus := NewBus(aqm.NewNoopLogger())
	h := NewSSEHandler(bus, aqm.NewNoopLogger())
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/stream/screen-1", nil)
	if err != nil {
		t.Fatal(err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", got)
	}
	if got := resp.Header.Get("X-Accel-Buffering"); got != "no" {
		t.Errorf("X-Accel-Buffering = %q, want no", got)
	}

	waitFor(t, func() bool { return bus.SubscriberCount("screen-1") == 1 })
	bus.Broadcast("screen-1", Event{Type: EventMenuUpdated, ScreenID: "screen-1"})

	var sawConnected, sawRetry, sawUpdate bool
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, `"type":"connected"`) && strings.Contains(line, `"screenId":"screen-1"`) {
			sawConnected = true
		}
		if strings.HasPrefix(line, "retry: 2000") {
			sawRetry = true
		}
		if strings.Contains(line, `"type":"menuUpdated"`) {
			sawUpdate = true
			break
		}
	}
	if !sawConnected {
		t.Error("connected event not received")
	}
	if !sawRetry {
		t.Error("retry hint not received")
	}
	if !sawUpdate {
		t.Error("broadcast event not received")
	}

	cancel()
	waitFor(t, func() bool { return bus.SubscriberCount("screen-1") == 0 })
}

func TestSSEHandlerStreamMissingScreen(t *testing.T) {
	bus := NewBus(aqm.NewNoopLogger())
	h := NewSSEHandler(bus, aqm.NewNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/stream/", nil)
	w := httptest.NewRecorder()

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	r.ServeHTTP(w, req)

	if w.Code == http.StatusOK {
		t.Errorf("status = %d, want error for missing screen id", w.Code)
	}
}

func TestSSEHandlerStreamClosedSubscription(t *testing.T) {
	bus := NewBus(aqm.NewNoopLogger())
	h := NewSSEHandler(bus, aqm.NewNoopLogger())
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/api/stream/screen-2", nil)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ServeHTTP(w, req)
	}()

	waitFor(t, func() bool { return bus.SubscriberCount("screen-2") == 1 })

	// Tearing the subscription down server-side must end the handler too.
	b := bus
	b.mu.RLock()
	var sub *Subscription
	for _, s := range b.channels["screen-2"] {
		sub = s
	}
	b.mu.RUnlock()
	bus.Unsubscribe(sub)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not exit on closed subscription")
	}
}

package display

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	aqm "github.com/appetiteclub/apt"
	"github.com/glenwooddrivein/menuboard/internal/board"
)

// State reflects what a display is currently able to show.
type State string

const (
	// StateInitial means no snapshot has ever been loaded. The display
	// shows its boot splash.
	StateInitial State = "initial"
	// StateLoaded means a snapshot is on screen. The client never leaves
	// this state once reached.
	StateLoaded State = "loaded"
)

const (
	defaultPollInterval = 5 * time.Second
	fetchTimeout        = 10 * time.Second
	reconnectMin        = 1 * time.Second
	reconnectMax        = 30 * time.Second
)

// Config configures a display client.
type Config struct {
	BaseURL      string
	ScreenID     string
	PollInterval time.Duration
}

// Client keeps one physical display in sync with the board service. It
// polls the snapshot endpoint on an interval and additionally refreshes
// whenever the update stream signals a change. A refresh that fails leaves
// the last good snapshot on screen.
type Client struct {
	cfg    Config
	http   *http.Client
	logger aqm.Logger

	mu       sync.RWMutex
	state    State
	snapshot *board.Snapshot

	cancel context.CancelFunc
	done   chan struct{}
}

// NewClient creates a display client for one screen.
func NewClient(cfg Config, logger aqm.Logger) *Client {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: fetchTimeout},
		logger: logger,
		state:  StateInitial,
	}
}

// Start begins the poll loop and the stream listener.
func (c *Client) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.run(ctx)
	return nil
}

// Stop terminates the loops and waits for them to exit.
func (c *Client) Stop(ctx context.Context) error {
	if c.cancel == nil {
		return nil
	}
	c.cancel()
	select {
	case <-c.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// State returns the current display state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Snapshot returns the last good snapshot, or nil before the first
// successful refresh.
func (c *Client) Snapshot() *board.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Refresh fetches the screen snapshot once. On success the snapshot is
// swapped in and the state becomes loaded. On failure the previous snapshot
// and state are kept unchanged.
func (c *Client) Refresh(ctx context.Context) error {
	// Cache buster matches the no-store contract on the server side.
	url := fmt.Sprintf("%s/api/screens/%s?t=%d", c.cfg.BaseURL, c.cfg.ScreenID, time.Now().UnixMilli())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("cannot build snapshot request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("snapshot fetch failed", "screen", c.cfg.ScreenID, "error", err)
		return fmt.Errorf("cannot fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		c.logger.Debug("snapshot fetch failed", "screen", c.cfg.ScreenID, "status", resp.StatusCode)
		return fmt.Errorf("snapshot request returned %d", resp.StatusCode)
	}

	var snapshot board.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return fmt.Errorf("cannot decode snapshot: %w", err)
	}

	c.mu.Lock()
	c.snapshot = &snapshot
	c.state = StateLoaded
	c.mu.Unlock()
	return nil
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)

	if err := c.Refresh(ctx); err != nil {
		c.logger.Info("initial refresh failed, waiting for poll", "screen", c.cfg.ScreenID, "error", err)
	}

	go c.runStream(ctx)

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				c.logger.Debug("poll refresh failed", "screen", c.cfg.ScreenID, "error", err)
			}
		}
	}
}

// runStream keeps a long lived connection to the update stream and triggers
// a refresh on every event. The poll loop covers any events missed between
// reconnects.
func (c *Client) runStream(ctx context.Context) {
	backoff := reconnectMin
	for {
		if ctx.Err() != nil {
			return
		}

		err := c.consumeStream(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			c.logger.Debug("stream disconnected", "screen", c.cfg.ScreenID, "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > reconnectMax {
			backoff = reconnectMax
		}
	}
}

func (c *Client) consumeStream(ctx context.Context) error {
	url := fmt.Sprintf("%s/api/stream/%s", c.cfg.BaseURL, c.cfg.ScreenID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("cannot build stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	// The stream stays open indefinitely, so bypass the fetch timeout.
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return fmt.Errorf("cannot connect to stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stream request returned %d", resp.StatusCode)
	}

	c.logger.Info("stream connected", "screen", c.cfg.ScreenID)

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		if err := c.Refresh(ctx); err != nil {
			c.logger.Debug("stream-triggered refresh failed", "screen", c.cfg.ScreenID, "error", err)
		}
	}
	return scanner.Err()
}

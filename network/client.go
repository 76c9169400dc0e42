package network

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/gesture-lane/core"
)

// SensorTimeout is the deadline for one client write
const SensorTimeout = 2 * time.Second

// SensorClient pushes observations to a Server
// Safe for concurrent use
type SensorClient struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	timeout time.Duration
}

// Dial connects to a sensor endpoint, e.g. ws://host:7777/sensor
func Dial(ctx context.Context, url string) (*SensorClient, error) {
	d := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, resp, err := d.DialContext(ctx, url, http.Header{})
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (status %d)", url, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &SensorClient{conn: conn, timeout: SensorTimeout}, nil
}

// SendPose sends a wearable pose name
func (c *SensorClient) SendPose(name string) error {
	return c.send(SensorMessage{Pose: name})
}

// SendSymbol sends a symbol directly
func (c *SensorClient) SendSymbol(s core.Symbol) error {
	name := s.String()
	if s.IsNeutral() {
		name = "neutral"
	}
	return c.send(SensorMessage{Symbol: name})
}

func (c *SensorClient) send(msg SensorMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(c.timeout))
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}

// Close sends a close frame and releases the connection
func (c *SensorClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(c.timeout))
	return c.conn.Close()
}

package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
)

var (
	ErrEmptyConn      = errors.New("connection is empty")
	ErrConnIsNotFound = errors.New("connection not found")
)

// ConnectionHub stores and manages all active WebSocket connections keyed by device.
type ConnectionHub struct {
	clients map[string]*Conn
	l       logger.Logger
	mu      sync.Mutex
	wg      sync.WaitGroup
}

func NewConnHub(l logger.Logger) *ConnectionHub {
	return &ConnectionHub{
		clients: make(map[string]*Conn),
		l:       l,
	}
}

// Add registers a new connection in the hub.
// If a connection for this device already exists it is closed first.
func (h *ConnectionHub) Add(newConn *Conn) error {
	if newConn == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "add_ws_connection")

	if existing, ok := h.clients[newConn.deviceID]; ok {
		h.l.Warn(ctx,
			"replacing existing connection",
			"device_id", existing.deviceID,
		)
		if err := existing.Close(); err != nil {
			h.l.Warn(ctx,
				"failed to close existing conn",
				"device_id", existing.deviceID,
				"err", err.Error(),
			)
		}
		// release the replaced entry's slot; its handler's DeleteConn
		// will no-op on the pointer mismatch
		delete(h.clients, existing.deviceID)
		h.wg.Done()
	}

	h.clients[newConn.deviceID] = newConn
	h.wg.Add(1)

	return nil
}

// DeleteConn removes and closes the given connection, but only if it is still
// the one registered for its device. A handler whose connection was replaced
// by a reconnect must not tear down the replacement.
func (h *ConnectionHub) DeleteConn(conn *Conn) error {
	if conn == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "ws_connection_delete")

	stored, ok := h.clients[conn.deviceID]
	if !ok || stored != conn {
		return ErrConnIsNotFound
	}

	if err := conn.Close(); err != nil {
		h.l.Warn(ctx,
			"failed to close conn",
			"device_id", conn.deviceID,
			"err", err.Error(),
		)
	}

	delete(h.clients, conn.deviceID)
	h.wg.Done()

	return nil
}

// Delete removes and closes the connection for the given device.
func (h *ConnectionHub) Delete(deviceID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "ws_connection_delete")

	conn, ok := h.clients[deviceID]
	if !ok {
		h.l.Warn(ctx,
			"delete called for unknown device",
			"device_id", deviceID,
		)
		return ErrConnIsNotFound
	}

	if err := conn.Close(); err != nil {
		h.l.Warn(ctx,
			"failed to close conn",
			"device_id", conn.deviceID,
			"err", err.Error(),
		)
	}

	delete(h.clients, deviceID)
	h.wg.Done()

	return nil
}

// SendTo sends a message to a specific device.
// Returns ErrConnIsNotFound if the connection does not exist.
func (h *ConnectionHub) SendTo(deviceID string, msg map[string]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.clients[deviceID]; ok {
		return conn.Send(msg)
	}
	return ErrConnIsNotFound
}

// Close closes every websocket connection.
func (h *ConnectionHub) Close() {
	ctx := wrap.WithAction(context.Background(), "hub_close")

	// copy clients under the lock
	h.mu.Lock()
	clients := make([]*Conn, 0, len(h.clients))
	for _, conn := range h.clients {
		clients = append(clients, conn)
	}
	h.mu.Unlock()
	// close outside the lock
	for _, conn := range clients {
		_ = h.Delete(conn.deviceID)
	}

	h.wg.Wait()

	h.l.Info(ctx, "all websocket connections closed gracefully")
}

// Clients returns a copy of the clients map.
func (h *ConnectionHub) Clients() map[string]*Conn {
	h.mu.Lock()
	defer h.mu.Unlock()

	copyMap := make(map[string]*Conn, len(h.clients))
	for id, conn := range h.clients {
		copyMap[id] = conn
	}
	return copyMap
}

// GetConn returns the connection for the given device.
func (h *ConnectionHub) GetConn(deviceID string) (*Conn, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.clients[deviceID]
	if !ok {
		return nil, ErrConnIsNotFound
	}
	return conn, nil
}

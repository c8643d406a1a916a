package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const jsonRPCVersion = "2.0"

var (
	// ErrClosed is returned for calls on, or pending on, a closed connection.
	ErrClosed = errors.New("node connection closed")
)

// Notification is a server pushed event of a subscribed topic.
type Notification struct {
	Topic  string
	Params json.RawMessage
}

// RPCError is an error object returned by the node.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type message struct {
	ID     *uint64         `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// Conn multiplexes JSON-RPC calls and notifications over one websocket.
type Conn struct {
	ws     *websocket.Conn
	notify func(Notification)
	logger *zap.Logger

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[uint64]chan message
	err     error

	nextID atomic.Uint64
	done   chan struct{}
}

// Dial opens a websocket to url and starts reading. notify receives every notification
// on the reader goroutine and must not block.
func Dial(ctx context.Context, url string, notify func(Notification), logger *zap.Logger) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	if notify == nil {
		notify = func(Notification) {}
	}

	c := &Conn{
		ws:      ws,
		notify:  notify,
		logger:  logger,
		pending: make(map[uint64]chan message),
		done:    make(chan struct{}),
	}
	go c.read()
	return c, nil
}

// Call sends a request and waits for its response.
func (c *Conn) Call(ctx context.Context, method string, params, result any) error {
	id := c.nextID.Inc()
	ch := make(chan message, 1)

	c.mu.Lock()
	if c.err != nil {
		c.mu.Unlock()
		return c.err
	}
	c.pending[id] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	c.writeMu.Lock()
	if deadline, ok := ctx.Deadline(); ok {
		_ = c.ws.SetWriteDeadline(deadline)
	}
	err := c.ws.WriteJSON(request{JSONRPC: jsonRPCVersion, ID: id, Method: method, Params: params})
	c.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("write %s: %w", method, err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.done:
		return c.Err()
	case msg := <-ch:
		if msg.Error != nil {
			return msg.Error
		}
		if result == nil {
			return nil
		}
		if err := json.Unmarshal(msg.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
		return nil
	}
}

// Done is closed when the connection stops reading.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Err returns why the connection stopped, wrapping ErrClosed.
func (c *Conn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close closes the websocket. Pending calls fail with ErrClosed.
func (c *Conn) Close() error {
	c.fail(ErrClosed)
	return c.ws.Close()
}

func (c *Conn) read() {
	defer close(c.done)
	for {
		var msg message
		if err := c.ws.ReadJSON(&msg); err != nil {
			c.fail(fmt.Errorf("%w: %v", ErrClosed, err))
			return
		}

		if msg.ID == nil {
			if msg.Method != "" {
				c.notify(Notification{Topic: msg.Method, Params: msg.Params})
			}
			continue
		}

		c.mu.Lock()
		ch, ok := c.pending[*msg.ID]
		c.mu.Unlock()
		if !ok {
			c.logger.Debug("response without pending call", zap.Uint64("id", *msg.ID))
			continue
		}
		ch <- msg
	}
}

func (c *Conn) fail(err error) {
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

// Package rpc provides the request/response channel to the on-device
// automation service. The object model consumes only the Caller interface;
// Client is the concrete JSON-RPC-over-HTTP implementation for a server
// reachable through an adb-forwarded unix socket or TCP port.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

// Caller issues one named call against the automation service and decodes
// the result into out (which may be nil when the result is discarded).
// Optional parameters cross the boundary as JSON null.
type Caller interface {
	Call(method string, out interface{}, params ...interface{}) error
}

// Client communicates with the automation service over HTTP.
type Client struct {
	http       *http.Client
	baseURL    string
	socketPath string
	logger     *log.Logger
	nextID     atomic.Int64
}

// NewClient creates a client using a Unix socket (Linux/Mac).
func NewClient(socketPath string) *Client {
	transport := &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			return net.Dial("unix", socketPath)
		},
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   ChannelTimeout,
		},
		baseURL:    "http://localhost",
		socketPath: socketPath,
		logger:     createLogger(),
	}
}

// NewClientTCP creates a client using a TCP port (Windows, or adb forward).
func NewClientTCP(port int) *Client {
	return &Client{
		http: &http.Client{
			Timeout: ChannelTimeout,
		},
		baseURL: fmt.Sprintf("http://127.0.0.1:%d", port),
		logger:  createLogger(),
	}
}

// createLogger creates a logger that writes to /tmp/uiauto-client.log (default)
func createLogger() *log.Logger {
	return createLoggerWithPath("/tmp/uiauto-client.log")
}

// createLoggerWithPath creates a logger that writes to the specified path
func createLoggerWithPath(path string) *log.Logger {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(f, "", log.Ltime|log.Lmicroseconds)
}

// SetLogPath sets the log file path for RPC timing logs.
func (c *Client) SetLogPath(path string) {
	c.logger = createLoggerWithPath(path)
}

// Call sends one JSON-RPC request and decodes the result into out.
func (c *Client) Call(method string, out interface{}, params ...interface{}) error {
	start := time.Now()

	if params == nil {
		params = []interface{}{}
	}
	req := Request{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	}
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+rpcPath, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Printf("%s [%v] ERROR: %v", method, elapsed, err)
		return fmt.Errorf("send request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode >= 400 {
		c.logger.Printf("%s [%v] ERR:%d", method, elapsed, httpResp.StatusCode)
		return fmt.Errorf("server error %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	if resp.Error != nil {
		c.logger.Printf("%s [%v] RPC-ERR code=%d", method, elapsed, resp.Error.Code)
		return fmt.Errorf("call %s: %w", method, resp.Error)
	}

	c.logger.Printf("%s [%v] OK", method, elapsed)

	if out == nil || len(resp.Result) == 0 || bytes.Equal(resp.Result, nullLiteral) {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

// Ping checks that the service answers on the channel.
func (c *Client) Ping() error {
	var pong string
	if err := c.Call("ping", &pong); err != nil {
		return err
	}
	if pong != "pong" {
		return fmt.Errorf("unexpected ping reply %q", pong)
	}
	return nil
}

var nullLiteral = []byte("null")

// rpcPath is the JSON-RPC endpoint exposed by the on-device server.
const rpcPath = "/jsonrpc/0"

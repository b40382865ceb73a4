package rpc

import (
	"encoding/json"
	"fmt"
	"time"
)

// ChannelTimeout is the fixed round-trip ceiling of the RPC channel. Any
// wait-style operation must request a bound strictly below it, otherwise the
// server-side wait would outlive the channel and surface as an opaque
// transport failure instead of a meaningful not-found.
const ChannelTimeout = 60 * time.Second

// Request is the JSON-RPC request frame.
type Request struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int64         `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// Response is the JSON-RPC response frame. Result stays raw so each call
// site decodes into its own shape.
type Response struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

// Error is a service-side failure reported on the channel.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

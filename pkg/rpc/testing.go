package rpc

import (
	"encoding/json"
	"fmt"
)

// RecordedCall captures one call made against a Recorder.
type RecordedCall struct {
	Method string
	Params []interface{}
}

// Recorder is a Caller for testing without a device. It records every call
// and serves scripted results per method name. The zero value answers every
// call with a null result.
type Recorder struct {
	// Results maps method name to the value returned for it. Values are
	// round-tripped through JSON into the caller's out argument.
	Results map[string]interface{}
	// Errs maps method name to an error returned instead of a result.
	Errs map[string]error
	// Calls holds every call in order.
	Calls []RecordedCall
}

// NewRecorder creates a Recorder with empty scripts.
func NewRecorder() *Recorder {
	return &Recorder{
		Results: make(map[string]interface{}),
		Errs:    make(map[string]error),
	}
}

// Call implements Caller.
func (r *Recorder) Call(method string, out interface{}, params ...interface{}) error {
	r.Calls = append(r.Calls, RecordedCall{Method: method, Params: params})

	if err, ok := r.Errs[method]; ok {
		return err
	}

	result, ok := r.Results[method]
	if !ok || result == nil || out == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("recorder: marshal scripted result for %s: %w", method, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("recorder: decode scripted result for %s: %w", method, err)
	}
	return nil
}

// CallCount returns the number of recorded calls.
func (r *Recorder) CallCount() int {
	return len(r.Calls)
}

// LastCall returns the most recent call, or nil if none were made.
func (r *Recorder) LastCall() *RecordedCall {
	if len(r.Calls) == 0 {
		return nil
	}
	return &r.Calls[len(r.Calls)-1]
}

// MethodCalls returns the recorded calls for one method.
func (r *Recorder) MethodCalls(method string) []RecordedCall {
	var out []RecordedCall
	for _, c := range r.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

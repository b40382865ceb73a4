package uiobject

import (
	"time"

	"github.com/devicelab-dev/uiauto/pkg/core"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
	"github.com/devicelab-dev/uiauto/pkg/selector"
)

// Wait turns the service's polling primitives into bounded existence and
// absence checks. The builder inherits the handle's strict mode; Raise
// forces it for this builder only.
type Wait struct {
	svc   rpc.Caller
	sel   selector.Selector
	raise bool
}

// Raise makes a failed wait on this builder an object-search error instead
// of a false result.
func (w *Wait) Raise() *Wait {
	w.raise = true
	return w
}

// Exists waits up to timeout for the element to appear. The timeout is
// validated against the channel ceiling before the call. Without strict
// mode a miss is just false.
func (w *Wait) Exists(timeout time.Duration) (bool, error) {
	ms, err := timeoutMillis("wait.exists", timeout)
	if err != nil {
		return false, err
	}

	var found bool
	if err := w.svc.Call("waitForExists", &found, w.sel.Wire(), ms); err != nil {
		return false, err
	}
	if found {
		return true, nil
	}
	if w.raise {
		return false, core.ErrObjectNotFound.
			WithMessagef("no element matching %s within %d ms", w.sel, ms).
			WithDetails(map[string]interface{}{"selector": w.sel.String(), "timeoutMs": ms})
	}
	return false, nil
}

// Gone waits up to timeout for the element to disappear.
func (w *Wait) Gone(timeout time.Duration) (bool, error) {
	ms, err := timeoutMillis("wait.gone", timeout)
	if err != nil {
		return false, err
	}

	var gone bool
	if err := w.svc.Call("waitUntilGone", &gone, w.sel.Wire(), ms); err != nil {
		return false, err
	}
	if gone {
		return true, nil
	}
	if w.raise {
		return false, core.ErrObjectStillPresent.
			WithMessagef("element still matching %s after %d ms", w.sel, ms).
			WithDetails(map[string]interface{}{"selector": w.sel.String(), "timeoutMs": ms})
	}
	return false, nil
}

// AssertExists waits for the element and rewraps a miss with the caller's
// message, keeping the original error as the cause.
func (w *Wait) AssertExists(msg string, timeout time.Duration) error {
	_, err := w.Raise().Exists(timeout)
	if err == nil {
		return nil
	}
	if core.IsSearchError(err) {
		return core.ErrObjectNotFound.WithMessage(msg).WithCause(err)
	}
	return err
}

// AssertGone waits for the element to disappear and rewraps a failure with
// the caller's message, keeping the original error as the cause.
func (w *Wait) AssertGone(msg string, timeout time.Duration) error {
	_, err := w.Raise().Gone(timeout)
	if err == nil {
		return nil
	}
	if core.IsSearchError(err) {
		return core.ErrObjectStillPresent.WithMessage(msg).WithCause(err)
	}
	return err
}

// Click waits up to timeout for the element to appear and clicks it when
// found. A miss degrades to false regardless of strict mode, so wait-then-
// act loops never need error handling.
func (w *Wait) Click(timeout time.Duration) (bool, error) {
	ms, err := timeoutMillis("wait.click", timeout)
	if err != nil {
		return false, err
	}

	var found bool
	if err := w.svc.Call("waitForExists", &found, w.sel.Wire(), ms); err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	var clicked bool
	if err := w.svc.Call("clickObj", &clicked, w.sel.Wire(), nil); err != nil {
		return false, err
	}
	return clicked, nil
}

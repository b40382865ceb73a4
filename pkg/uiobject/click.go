package uiobject

import (
	"time"

	"github.com/devicelab-dev/uiauto/pkg/core"
	"github.com/devicelab-dev/uiauto/pkg/logger"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
	"github.com/devicelab-dev/uiauto/pkg/selector"
)

// Click is a single-use click action bound to one handle. Setters accumulate
// parameters; Do validates the combination and issues exactly one call.
type Click struct {
	svc      rpc.Caller
	sel      selector.Selector
	x, y     *int
	duration *time.Duration
	compat   *time.Duration // deprecated Timeout alias
}

// X sets the X coordinate of the point to click, within the visible bounds.
// Y must be set as well.
func (c *Click) X(x int) *Click {
	c.x = &x
	return c
}

// Y sets the Y coordinate of the point to click, within the visible bounds.
// X must be set as well.
func (c *Click) Y(y int) *Click {
	c.y = &y
	return c
}

// Duration sets the time to click and hold.
func (c *Click) Duration(d time.Duration) *Click {
	c.duration = &d
	return c
}

// Timeout sets the time to click and hold.
//
// Deprecated: Timeout is a compatibility alias kept for existing callers;
// use Duration. When both are set, Timeout wins.
func (c *Click) Timeout(d time.Duration) *Click {
	logger.Warn("click: the Timeout option is deprecated, use Duration instead")
	c.compat = &d
	return c
}

// Do clicks the element: at a point when X and Y are set, with a hold when a
// duration is set, plain otherwise. Setting exactly one of X and Y is an
// invalid-argument error, detected before any call is issued.
func (c *Click) Do() (bool, error) {
	duration := c.duration
	if c.compat != nil {
		duration = c.compat
	}
	var durationMS interface{}
	if duration != nil {
		durationMS = duration.Milliseconds()
	}

	var clicked bool
	switch {
	case c.x != nil && c.y != nil:
		if err := c.svc.Call("clickObjPoint", &clicked, c.sel.Wire(), *c.x, *c.y, durationMS); err != nil {
			return false, err
		}
	case c.x == nil && c.y == nil:
		if err := c.svc.Call("clickObj", &clicked, c.sel.Wire(), durationMS); err != nil {
			return false, err
		}
	default:
		return false, core.ErrInvalidArgument.
			WithMessage("click: both X and Y are required to click on a point").
			WithDetails(map[string]interface{}{"op": "click", "x": c.x, "y": c.y})
	}
	return clicked, nil
}

// BottomRight resolves the element's visible bounds and clicks their lower
// right corner. Returns false when the element has vanished.
func (c *Click) BottomRight() (bool, error) {
	return c.corner(func(r Rect) (int, int) { return r.Right, r.Bottom })
}

// TopLeft resolves the element's visible bounds and clicks their upper left
// corner. Returns false when the element has vanished.
func (c *Click) TopLeft() (bool, error) {
	return c.corner(func(r Rect) (int, int) { return r.Left, r.Top })
}

func (c *Click) corner(pick func(Rect) (int, int)) (bool, error) {
	var bounds *Rect
	if err := c.svc.Call("getVisibleBounds", &bounds, c.sel.Wire()); err != nil {
		return false, err
	}
	if bounds == nil {
		return false, nil
	}
	x, y := pick(*bounds)
	var clicked bool
	if err := c.svc.Call("click", &clicked, x, y); err != nil {
		return false, err
	}
	return clicked, nil
}

// Wait clicks the element and waits up to timeout for a window transition.
// The timeout is validated against the channel ceiling before the call.
func (c *Click) Wait(timeout time.Duration) (bool, error) {
	ms, err := timeoutMillis("click.wait", timeout)
	if err != nil {
		return false, err
	}
	var transitioned bool
	if err := c.svc.Call("clickObjAndWait", &transitioned, c.sel.Wire(), ms); err != nil {
		return false, err
	}
	return transitioned, nil
}

package uiobject

import (
	"github.com/devicelab-dev/uiauto/pkg/core"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
	"github.com/devicelab-dev/uiauto/pkg/selector"
)

// Gesture configures a swipe or fling on one handle. Margin and
// MarginPercent shrink the gesture area and are mutually exclusive; a mixed
// configuration is reported before any call is issued. Directional accessors
// bind the configuration to a direction.
type Gesture struct {
	svc           rpc.Caller
	sel           selector.Selector
	action        string
	margin        *int
	marginPercent *int
	err           error
}

// Margin sets a pixel-based gesture margin.
func (g *Gesture) Margin(px int) *Gesture {
	if g.marginPercent != nil {
		g.err = mixedMarginErr(g.action)
	}
	g.margin = &px
	return g
}

// MarginPercent sets a percentage-based gesture margin.
func (g *Gesture) MarginPercent(percent int) *Gesture {
	if g.margin != nil {
		g.err = mixedMarginErr(g.action)
	}
	g.marginPercent = &percent
	return g
}

// Down binds the gesture to direction DOWN.
func (g *Gesture) Down() *GestureTo { return g.to(DirectionDown) }

// Left binds the gesture to direction LEFT.
func (g *Gesture) Left() *GestureTo { return g.to(DirectionLeft) }

// Right binds the gesture to direction RIGHT.
func (g *Gesture) Right() *GestureTo { return g.to(DirectionRight) }

// Up binds the gesture to direction UP.
func (g *Gesture) Up() *GestureTo { return g.to(DirectionUp) }

func (g *Gesture) to(direction string) *GestureTo {
	return &GestureTo{
		svc:           g.svc,
		sel:           g.sel,
		action:        g.action,
		direction:     direction,
		margin:        g.margin,
		marginPercent: g.marginPercent,
		err:           g.err,
	}
}

// GestureTo is a direction-bound swipe or fling; action and direction are
// fixed at construction.
type GestureTo struct {
	svc           rpc.Caller
	sel           selector.Selector
	action        string
	direction     string
	margin        *int
	marginPercent *int
	percent       int
	speed         *int
	err           error
}

// Percent sets the gesture length as a percentage of the element's size.
// Swipes accept 0 to 100; flings do not support it at all.
func (t *GestureTo) Percent(percent int) *GestureTo {
	t.percent = percent
	return t
}

// Speed sets the gesture speed in pixels per second.
func (t *GestureTo) Speed(pxPerSec int) *GestureTo {
	t.speed = &pxPerSec
	return t
}

// Do performs the gesture, validating the action-specific rules first.
func (t *GestureTo) Do() (bool, error) {
	if t.err != nil {
		return false, t.err
	}

	var speed, margin, marginPercent interface{}
	if t.speed != nil {
		speed = *t.speed
	}
	if t.margin != nil {
		margin = *t.margin
	}
	if t.marginPercent != nil {
		marginPercent = *t.marginPercent
	}

	var done bool
	switch t.action {
	case actionFling:
		if t.percent != 0 {
			return false, core.ErrInvalidArgument.
				WithMessage("fling: the gesture distance is not tunable, Percent must stay 0").
				WithDetails(map[string]interface{}{"op": "fling", "percent": t.percent})
		}
		if err := t.svc.Call("fling", &done, t.sel.Wire(), t.direction, speed, margin, marginPercent); err != nil {
			return false, err
		}
	case actionSwipe:
		if t.percent < 0 || t.percent > 100 {
			return false, core.ErrInvalidArgument.
				WithMessagef("swipe: Percent must be between 0 and 100, got %d", t.percent).
				WithDetails(map[string]interface{}{"op": "swipe", "percent": t.percent})
		}
		if err := t.svc.Call("swipeObj", &done, t.sel.Wire(), t.direction, t.percent, speed, margin, marginPercent); err != nil {
			return false, err
		}
	default:
		return false, core.ErrInvalidArgument.
			WithMessagef("gesture: unknown action %q", t.action)
	}
	return done, nil
}

func mixedMarginErr(op string) error {
	return core.ErrInvalidArgument.
		WithMessagef("%s: pixel-based and percentage-based margins cannot be mixed", op).
		WithDetails(map[string]interface{}{"op": op})
}

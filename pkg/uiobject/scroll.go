package uiobject

import (
	"github.com/devicelab-dev/uiauto/pkg/core"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
	"github.com/devicelab-dev/uiauto/pkg/selector"
)

// Scroll configures a scroll on one handle. It mirrors Gesture's margin
// configuration; directional accessors bind it to a direction.
type Scroll struct {
	svc           rpc.Caller
	sel           selector.Selector
	margin        *int
	marginPercent *int
	err           error
}

// Margin sets a pixel-based scroll margin.
func (s *Scroll) Margin(px int) *Scroll {
	if s.marginPercent != nil {
		s.err = mixedMarginErr("scroll")
	}
	s.margin = &px
	return s
}

// MarginPercent sets a percentage-based scroll margin.
func (s *Scroll) MarginPercent(percent int) *Scroll {
	if s.margin != nil {
		s.err = mixedMarginErr("scroll")
	}
	s.marginPercent = &percent
	return s
}

// Down binds the scroll to direction DOWN.
func (s *Scroll) Down() *ScrollTo { return s.to(DirectionDown) }

// Left binds the scroll to direction LEFT.
func (s *Scroll) Left() *ScrollTo { return s.to(DirectionLeft) }

// Right binds the scroll to direction RIGHT.
func (s *Scroll) Right() *ScrollTo { return s.to(DirectionRight) }

// Up binds the scroll to direction UP.
func (s *Scroll) Up() *ScrollTo { return s.to(DirectionUp) }

func (s *Scroll) to(direction string) *ScrollTo {
	return &ScrollTo{
		svc:           s.svc,
		sel:           s.sel,
		direction:     direction,
		margin:        s.margin,
		marginPercent: s.marginPercent,
		err:           s.err,
	}
}

// ScrollTo is a direction-bound scroll with four mutually exclusive shapes:
// a fixed-distance scroll (Percent, optionally Speed), scroll-until-criteria
// (Until), scroll-until-object (UntilObject), and scroll-to-end when nothing
// is set.
type ScrollTo struct {
	svc           rpc.Caller
	sel           selector.Selector
	direction     string
	margin        *int
	marginPercent *int
	percent       *int
	speed         *int
	until         selector.Criteria
	untilObject   *Object
	err           error
}

// Percent sets the scroll distance as a percentage of the element's size,
// between 0 and 100.
func (t *ScrollTo) Percent(percent int) *ScrollTo {
	t.percent = &percent
	return t
}

// Speed sets the gesture speed in pixels per second.
func (t *ScrollTo) Speed(pxPerSec int) *ScrollTo {
	t.speed = &pxPerSec
	return t
}

// Until scrolls until an element matching the criteria becomes visible.
func (t *ScrollTo) Until(criteria selector.Criteria) *ScrollTo {
	t.until = criteria
	return t
}

// UntilObject scrolls until the other handle's selector becomes visible.
func (t *ScrollTo) UntilObject(target *Object) *ScrollTo {
	t.untilObject = target
	return t
}

// Do performs the scroll, dispatching on which shape was configured. Mixing
// a fixed distance with a scroll-until condition is an invalid-argument
// error raised before any call.
func (t *ScrollTo) Do() (bool, error) {
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
	if t.percent != nil && t.until == nil && t.untilObject == nil {
		if err := t.svc.Call("scroll", &done, t.sel.Wire(), t.direction, *t.percent, speed, margin, marginPercent); err != nil {
			return false, err
		}
		return done, nil
	}

	if t.percent == nil && t.speed == nil {
		switch {
		case len(t.until) > 0 && t.untilObject == nil:
			if err := t.svc.Call("scrollUntil", &done, t.sel.Wire(), selector.New(t.until).Wire(), t.direction, margin, marginPercent); err != nil {
				return false, err
			}
			return done, nil
		case t.untilObject != nil && len(t.until) == 0:
			if err := t.svc.Call("scrollUntil", &done, t.sel.Wire(), t.untilObject.sel.Wire(), t.direction, margin, marginPercent); err != nil {
				return false, err
			}
			return done, nil
		case len(t.until) == 0 && t.untilObject == nil:
			// Fourth shape: nothing configured means scroll until no
			// further scrolling is possible.
			if err := t.svc.Call("scrollUntilFinished", &done, t.sel.Wire(), t.direction, margin, marginPercent); err != nil {
				return false, err
			}
			return done, nil
		}
	}

	return false, core.ErrInvalidArgument.
		WithMessage("scroll: scroll by percentage and scroll by condition cannot be mixed").
		WithDetails(map[string]interface{}{
			"op":          "scroll",
			"percent":     t.percent,
			"speed":       t.speed,
			"until":       t.until,
			"untilObject": t.untilObject != nil,
		})
}

// Click scrolls until an element matching the criteria becomes visible, then
// clicks it. A failed scroll short-circuits to false; empty criteria are an
// invalid-argument error since there is nothing to scroll to.
func (t *ScrollTo) Click(criteria selector.Criteria) (bool, error) {
	if len(criteria) == 0 {
		return false, core.ErrInvalidArgument.
			WithMessage("scroll: target to scroll to is not defined").
			WithDetails(map[string]interface{}{"op": "scroll.click"})
	}

	found, err := t.Until(criteria).Do()
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	var clicked bool
	if err := t.svc.Call("clickObj", &clicked, selector.New(criteria).Wire(), nil); err != nil {
		return false, err
	}
	return clicked, nil
}

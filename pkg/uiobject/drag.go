package uiobject

import (
	"github.com/devicelab-dev/uiauto/pkg/core"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
	"github.com/devicelab-dev/uiauto/pkg/selector"
)

// Drag is a single-use drag action bound to one handle. The destination is
// either an explicit point (X and Y) or the criteria of another element,
// never both.
type Drag struct {
	svc    rpc.Caller
	sel    selector.Selector
	x, y   *int
	speed  *int
	target selector.Criteria
}

// X sets the X coordinate of the destination.
func (d *Drag) X(x int) *Drag {
	d.x = &x
	return d
}

// Y sets the Y coordinate of the destination.
func (d *Drag) Y(y int) *Drag {
	d.y = &y
	return d
}

// Speed sets the gesture speed in pixels per second.
func (d *Drag) Speed(pxPerSec int) *Drag {
	d.speed = &pxPerSec
	return d
}

// Target sets the criteria matching the destination element.
func (d *Drag) Target(criteria selector.Criteria) *Drag {
	d.target = criteria
	return d
}

// Do performs the drag. Mixing a point destination with a target element, or
// supplying neither, is an invalid-argument error raised before any call.
func (d *Drag) Do() (bool, error) {
	var speed interface{}
	if d.speed != nil {
		speed = *d.speed
	}

	var dragged bool
	switch {
	case d.x == nil && d.y == nil && len(d.target) > 0:
		err := d.svc.Call("dragObjToObj", &dragged, d.sel.Wire(), selector.New(d.target).Wire(), speed)
		if err != nil {
			return false, err
		}
	case d.x != nil && d.y != nil && len(d.target) == 0:
		err := d.svc.Call("dragObj", &dragged, d.sel.Wire(), *d.x, *d.y, speed)
		if err != nil {
			return false, err
		}
	default:
		return false, core.ErrInvalidArgument.
			WithMessage("drag: destination must be either a point or a target element, not both").
			WithDetails(map[string]interface{}{"op": "drag", "x": d.x, "y": d.y, "target": d.target})
	}
	return dragged, nil
}

package uiobject

import (
	"github.com/devicelab-dev/uiauto/pkg/rpc"
	"github.com/devicelab-dev/uiauto/pkg/selector"
)

// Pinch performs pinch gestures on one handle. Close and Open each issue a
// single call; there is no argument combination to validate.
type Pinch struct {
	svc   rpc.Caller
	sel   selector.Selector
	speed *int
}

// Speed sets the gesture speed in pixels per second.
func (p *Pinch) Speed(pxPerSec int) *Pinch {
	p.speed = &pxPerSec
	return p
}

// Close pinches the element closed by percent of its size.
func (p *Pinch) Close(percent int) (bool, error) {
	return p.call("pinchClose", percent)
}

// Open pinches the element open by percent of its size.
func (p *Pinch) Open(percent int) (bool, error) {
	return p.call("pinchOpen", percent)
}

func (p *Pinch) call(method string, percent int) (bool, error) {
	var speed interface{}
	if p.speed != nil {
		speed = *p.speed
	}
	var done bool
	if err := p.svc.Call(method, &done, p.sel.Wire(), percent, speed); err != nil {
		return false, err
	}
	return done, nil
}

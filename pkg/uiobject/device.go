package uiobject

import (
	"github.com/devicelab-dev/uiauto/pkg/rpc"
	"github.com/devicelab-dev/uiauto/pkg/selector"
)

// Device is the root factory for handles on one automation channel.
type Device struct {
	svc    rpc.Caller
	strict bool
}

// NewDevice creates a device over an already-connected channel.
func NewDevice(svc rpc.Caller) *Device {
	return &Device{svc: svc}
}

// NewStrictDevice creates a device whose handles fail existence checks with
// an object-search error instead of returning false.
func NewStrictDevice(svc rpc.Caller) *Device {
	return &Device{svc: svc, strict: true}
}

// Object creates a root handle from the criteria used to find the root
// element.
func (d *Device) Object(criteria selector.Criteria) *Object {
	if d.strict {
		return NewStrict(d.svc, selector.New(criteria))
	}
	return New(d.svc, selector.New(criteria))
}

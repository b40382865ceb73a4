package uiobject

import (
	"github.com/devicelab-dev/uiauto/pkg/core"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
	"github.com/devicelab-dev/uiauto/pkg/selector"
)

// Object is a handle to a possibly-not-yet-resolved element: a selector
// chain plus the RPC channel. Handles are cheap values; every navigation
// method returns a new handle with an extended chain and never touches the
// receiver's.
type Object struct {
	svc            rpc.Caller
	sel            selector.Selector
	raiseOnMissing bool
}

// New creates a handle for the given selector chain.
func New(svc rpc.Caller, sel selector.Selector) *Object {
	return &Object{svc: svc, sel: sel}
}

// NewStrict creates a handle whose existence checks fail with an
// object-search error instead of returning false.
func NewStrict(svc rpc.Caller, sel selector.Selector) *Object {
	return &Object{svc: svc, sel: sel, raiseOnMissing: true}
}

// Selector returns a snapshot of the handle's selector chain.
func (o *Object) Selector() selector.Selector {
	return o.sel.Copy()
}

// derive branches a new handle with one extra navigation step.
func (o *Object) derive(relation string, criteria selector.Criteria) *Object {
	return &Object{
		svc:            o.svc,
		sel:            o.sel.Append(relation, criteria),
		raiseOnMissing: o.raiseOnMissing,
	}
}

// Parent addresses this element's parent.
func (o *Object) Parent() *Object {
	return o.derive(selector.RelationParent, nil)
}

// Ancestor addresses the closest matching ancestor.
func (o *Object) Ancestor(criteria selector.Criteria) *Object {
	return o.derive(selector.RelationAncestor, criteria)
}

// Child addresses a matching child directly under this element.
func (o *Object) Child(criteria selector.Criteria) *Object {
	return o.derive(selector.RelationChild, criteria)
}

// Sibling addresses a matching element sharing this element's parent.
func (o *Object) Sibling(criteria selector.Criteria) *Object {
	return o.derive(selector.RelationSibling, criteria)
}

// Bottom addresses the closest matching element below this one.
func (o *Object) Bottom(criteria selector.Criteria) *Object {
	return o.derive(selector.RelationBottom, criteria)
}

// Left addresses the closest matching element to the left of this one.
func (o *Object) Left(criteria selector.Criteria) *Object {
	return o.derive(selector.RelationLeft, criteria)
}

// Right addresses the closest matching element to the right of this one.
func (o *Object) Right(criteria selector.Criteria) *Object {
	return o.derive(selector.RelationRight, criteria)
}

// Top addresses the closest matching element above this one.
func (o *Object) Top(criteria selector.Criteria) *Object {
	return o.derive(selector.RelationTop, criteria)
}

// withRaiseOnMissing runs fn with strict mode forced on, restoring the prior
// flag on every exit path so callers never observe an intermediate state.
func (o *Object) withRaiseOnMissing(fn func() error) error {
	prev := o.raiseOnMissing
	o.raiseOnMissing = true
	defer func() { o.raiseOnMissing = prev }()
	return fn()
}

// Exists resolves the chain once. In strict mode a miss is an
// object-search error; otherwise it is just false.
func (o *Object) Exists() (bool, error) {
	var found bool
	if err := o.svc.Call("exists", &found, o.sel.Wire()); err != nil {
		return false, err
	}
	if !found && o.raiseOnMissing {
		return false, notFound(o.sel)
	}
	return found, nil
}

// AssertExists checks existence in strict mode regardless of the handle's
// own setting and rewraps a miss with the caller's message, keeping the
// original error as the cause.
func (o *Object) AssertExists(msg string) error {
	err := o.withRaiseOnMissing(func() error {
		_, err := o.Exists()
		return err
	})
	if err == nil {
		return nil
	}
	if core.IsSearchError(err) {
		return core.ErrObjectNotFound.WithMessage(msg).WithCause(err)
	}
	return err
}

// VisibleBounds returns the element's visible bounds, or the zero Rect when
// nothing matches.
func (o *Object) VisibleBounds() (Rect, error) {
	var r *Rect
	if err := o.svc.Call("getVisibleBounds", &r, o.sel.Wire()); err != nil {
		return Rect{}, err
	}
	if r == nil {
		return Rect{}, nil
	}
	return *r, nil
}

// VisibleCenter returns the center of the element's visible bounds.
func (o *Object) VisibleCenter() (Point, error) {
	var p *Point
	if err := o.svc.Call("getVisibleCenter", &p, o.sel.Wire()); err != nil {
		return Point{}, err
	}
	if p == nil {
		return Point{}, nil
	}
	return *p, nil
}

// Text returns the element's text value.
func (o *Object) Text() (string, error) {
	return o.callString("getText")
}

// ClassName returns the element's class name.
func (o *Object) ClassName() (string, error) {
	return o.callString("getClassName")
}

// Description returns the element's content description.
func (o *Object) Description() (string, error) {
	return o.callString("getContentDescription")
}

// Hint returns the element's hint text.
func (o *Object) Hint() (string, error) {
	return o.callString("getHint")
}

// PackageName returns the package of the app owning the element.
func (o *Object) PackageName() (string, error) {
	return o.callString("getApplicationPackage")
}

// ResourceID returns the fully qualified resource name of the element's id.
func (o *Object) ResourceID() (string, error) {
	return o.callString("getResourceName")
}

// IsCheckable reports whether the element is checkable.
func (o *Object) IsCheckable() (bool, error) { return o.callBool("isCheckable") }

// IsChecked reports whether the element is checked.
func (o *Object) IsChecked() (bool, error) { return o.callBool("isChecked") }

// IsClickable reports whether the element is clickable.
func (o *Object) IsClickable() (bool, error) { return o.callBool("isClickable") }

// IsEnabled reports whether the element is enabled.
func (o *Object) IsEnabled() (bool, error) { return o.callBool("isEnabled") }

// IsFocusable reports whether the element is focusable.
func (o *Object) IsFocusable() (bool, error) { return o.callBool("isFocusable") }

// IsFocused reports whether the element is focused.
func (o *Object) IsFocused() (bool, error) { return o.callBool("isFocused") }

// IsLongClickable reports whether the element accepts long clicks.
func (o *Object) IsLongClickable() (bool, error) { return o.callBool("isLongClickable") }

// IsScrollable reports whether the element is scrollable.
func (o *Object) IsScrollable() (bool, error) { return o.callBool("isScrollable") }

// IsSelected reports whether the element is selected.
func (o *Object) IsSelected() (bool, error) { return o.callBool("isSelected") }

// Count returns how many elements currently match the chain.
func (o *Object) Count() (int, error) {
	var matches []map[string]interface{}
	if err := o.svc.Call("findObjects", &matches, o.sel.Wire()); err != nil {
		return 0, err
	}
	return len(matches), nil
}

// Children lists the selectors of the element's direct children.
func (o *Object) Children() ([]map[string]interface{}, error) {
	var children []map[string]interface{}
	if err := o.svc.Call("getChildren", &children, o.sel.Wire()); err != nil {
		return nil, err
	}
	return children, nil
}

// Find lists all descendants matching the criteria, composed with the
// current chain without mutating this handle.
func (o *Object) Find(criteria selector.Criteria) ([]map[string]interface{}, error) {
	var matches []map[string]interface{}
	err := o.svc.Call("findChildObjects", &matches, o.sel.Wire(), selector.New(criteria).Wire())
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Has reports whether any descendant matches the criteria.
func (o *Object) Has(criteria selector.Criteria) (bool, error) {
	var found bool
	err := o.svc.Call("hasChildObject", &found, o.sel.Wire(), selector.New(criteria).Wire())
	return found, err
}

// Info returns all properties the service reports for the element.
func (o *Object) Info() (map[string]interface{}, error) {
	var info map[string]interface{}
	if err := o.svc.Call("getObjInfo", &info, o.sel.Wire()); err != nil {
		return nil, err
	}
	return info, nil
}

// DisplayID returns the id of the display containing the element.
func (o *Object) DisplayID() (int, error) {
	var id int
	err := o.svc.Call("getDisplayId", &id, o.sel.Wire())
	return id, err
}

// ClearText clears the element's text if it is an editable field.
func (o *Object) ClearText() (bool, error) {
	return o.callBool("clear")
}

// SetText sets the element's text if it is an editable field.
func (o *Object) SetText(text string) (bool, error) {
	var ok bool
	err := o.svc.Call("setText", &ok, o.sel.Wire(), text)
	return ok, err
}

// LongClick performs a long click on the element.
func (o *Object) LongClick() (bool, error) {
	return o.callBool("longClick")
}

// Click starts a click action on this element.
func (o *Object) Click() *Click {
	return &Click{svc: o.svc, sel: o.sel}
}

// Drag starts a drag action from this element.
func (o *Object) Drag() *Drag {
	return &Drag{svc: o.svc, sel: o.sel}
}

// Swipe starts a swipe gesture on this element.
func (o *Object) Swipe() *Gesture {
	return &Gesture{svc: o.svc, sel: o.sel, action: actionSwipe}
}

// Fling starts a fling gesture on this element.
func (o *Object) Fling() *Gesture {
	return &Gesture{svc: o.svc, sel: o.sel, action: actionFling}
}

// Pinch starts a pinch gesture on this element.
func (o *Object) Pinch() *Pinch {
	return &Pinch{svc: o.svc, sel: o.sel}
}

// Scroll starts a scroll action on this element.
func (o *Object) Scroll() *Scroll {
	return &Scroll{svc: o.svc, sel: o.sel}
}

// Wait starts a wait action on this element, inheriting the handle's strict
// mode.
func (o *Object) Wait() *Wait {
	return &Wait{svc: o.svc, sel: o.sel, raise: o.raiseOnMissing}
}

func (o *Object) callBool(method string) (bool, error) {
	var v bool
	err := o.svc.Call(method, &v, o.sel.Wire())
	return v, err
}

func (o *Object) callString(method string) (string, error) {
	var v string
	err := o.svc.Call(method, &v, o.sel.Wire())
	return v, err
}

// notFound builds the search error for a plain existence miss.
func notFound(sel selector.Selector) error {
	return core.ErrObjectNotFound.
		WithMessagef("no element matching %s", sel).
		WithDetails(map[string]interface{}{"selector": sel.String()})
}

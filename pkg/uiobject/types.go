// Package uiobject is the client-side object model for driving the remote
// automation service. An Object pairs a selector chain with the RPC channel;
// it never holds a live reference to an on-device element, so every query is
// re-resolved remotely per call.
package uiobject

import "time"

// Rect is an element's visible bounds in screen coordinates.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Point is a screen coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Gesture directions as the service expects them on the wire.
const (
	DirectionDown  = "DOWN"
	DirectionLeft  = "LEFT"
	DirectionRight = "RIGHT"
	DirectionUp    = "UP"
)

// Gesture actions.
const (
	actionSwipe = "swipe"
	actionFling = "fling"
)

// DefaultWaitTimeout bounds wait operations when callers pass no explicit
// timeout at the CLI layer. It sits well below the channel ceiling.
const DefaultWaitTimeout = 10 * time.Second

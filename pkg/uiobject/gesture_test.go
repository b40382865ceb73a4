package uiobject

import (
	"testing"

	"github.com/devicelab-dev/uiauto/pkg/core"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
)

func TestSwipeDown(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["swipeObj"] = true

	ok, err := New(rec, okSelector()).Swipe().Down().Percent(50).Speed(1000).Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	call := rec.LastCall()
	if call.Method != "swipeObj" {
		t.Errorf("expected swipeObj, got %s", call.Method)
	}
	if call.Params[1] != DirectionDown {
		t.Errorf("expected DOWN, got %#v", call.Params[1])
	}
	if call.Params[2] != 50 || call.Params[3] != 1000 {
		t.Errorf("unexpected percent/speed: %#v", call.Params)
	}
	if call.Params[4] != nil || call.Params[5] != nil {
		t.Errorf("expected nil margins, got %#v", call.Params)
	}
}

func TestSwipePercentOutOfRange(t *testing.T) {
	rec := rpc.NewRecorder()

	_, err := New(rec, okSelector()).Swipe().Down().Percent(150).Do()
	if !core.IsArgumentError(err) {
		t.Fatalf("expected argument error, got %v", err)
	}
	if rec.CallCount() != 0 {
		t.Errorf("expected no RPC calls, got %d", rec.CallCount())
	}
}

func TestFling(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["fling"] = true

	ok, err := New(rec, okSelector()).Fling().Up().Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	call := rec.LastCall()
	if call.Method != "fling" {
		t.Errorf("expected fling, got %s", call.Method)
	}
	if call.Params[1] != DirectionUp {
		t.Errorf("expected UP, got %#v", call.Params[1])
	}
}

func TestFlingRejectsPercent(t *testing.T) {
	rec := rpc.NewRecorder()

	_, err := New(rec, okSelector()).Fling().Up().Percent(10).Do()
	if !core.IsArgumentError(err) {
		t.Fatalf("expected argument error, got %v", err)
	}
	if rec.CallCount() != 0 {
		t.Errorf("expected no RPC calls, got %d", rec.CallCount())
	}
}

func TestFlingZeroPercentIsFine(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["fling"] = true

	if _, err := New(rec, okSelector()).Fling().Up().Percent(0).Do(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGestureMarginPassedThrough(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["swipeObj"] = true

	_, err := New(rec, okSelector()).Swipe().Margin(24).Left().Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := rec.LastCall()
	if call.Params[4] != 24 {
		t.Errorf("expected margin 24, got %#v", call.Params[4])
	}
	if call.Params[5] != nil {
		t.Errorf("expected nil margin percent, got %#v", call.Params[5])
	}
}

func TestGestureMixedMarginsRejected(t *testing.T) {
	rec := rpc.NewRecorder()

	_, err := New(rec, okSelector()).Swipe().Margin(24).MarginPercent(10).Down().Do()
	if !core.IsArgumentError(err) {
		t.Fatalf("expected argument error, got %v", err)
	}
	if rec.CallCount() != 0 {
		t.Errorf("expected no RPC calls, got %d", rec.CallCount())
	}
}

func TestPinchClose(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["pinchClose"] = true

	ok, err := New(rec, okSelector()).Pinch().Speed(300).Close(25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	call := rec.LastCall()
	if call.Method != "pinchClose" {
		t.Errorf("expected pinchClose, got %s", call.Method)
	}
	if call.Params[1] != 25 || call.Params[2] != 300 {
		t.Errorf("unexpected params: %#v", call.Params)
	}
}

func TestPinchOpenDefaultSpeed(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["pinchOpen"] = true

	ok, err := New(rec, okSelector()).Pinch().Open(75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	call := rec.LastCall()
	if call.Method != "pinchOpen" {
		t.Errorf("expected pinchOpen, got %s", call.Method)
	}
	if call.Params[2] != nil {
		t.Errorf("expected nil speed, got %#v", call.Params[2])
	}
}

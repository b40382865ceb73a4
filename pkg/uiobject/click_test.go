package uiobject

import (
	"errors"
	"testing"
	"time"

	"github.com/devicelab-dev/uiauto/pkg/core"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
)

func TestClickPlain(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["clickObj"] = true

	ok, err := New(rec, okSelector()).Click().Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	call := rec.LastCall()
	if call.Method != "clickObj" {
		t.Errorf("expected clickObj, got %s", call.Method)
	}
	if len(call.Params) != 2 || call.Params[1] != nil {
		t.Errorf("expected nil duration param, got %#v", call.Params)
	}
}

func TestClickAtPoint(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["clickObjPoint"] = true

	ok, err := New(rec, okSelector()).Click().X(5).Y(10).Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	call := rec.LastCall()
	if call.Method != "clickObjPoint" {
		t.Errorf("expected clickObjPoint, got %s", call.Method)
	}
	if call.Params[1] != 5 || call.Params[2] != 10 {
		t.Errorf("unexpected point params: %#v", call.Params)
	}
}

func TestClickXWithoutYIsInvalid(t *testing.T) {
	rec := rpc.NewRecorder()

	_, err := New(rec, okSelector()).Click().X(5).Do()
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument, got %v", err)
	}
	if !core.IsArgumentError(err) {
		t.Error("expected argument category")
	}
	if rec.CallCount() != 0 {
		t.Errorf("expected no RPC calls, got %d", rec.CallCount())
	}
}

func TestClickYWithoutXIsInvalid(t *testing.T) {
	rec := rpc.NewRecorder()

	_, err := New(rec, okSelector()).Click().Y(10).Do()
	if !core.IsArgumentError(err) {
		t.Fatalf("expected argument error, got %v", err)
	}
	if rec.CallCount() != 0 {
		t.Errorf("expected no RPC calls, got %d", rec.CallCount())
	}
}

func TestClickWithDuration(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["clickObj"] = true

	_, err := New(rec, okSelector()).Click().Duration(2 * time.Second).Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.LastCall().Params[1]; got != int64(2000) {
		t.Errorf("expected 2000 ms duration, got %#v", got)
	}
}

func TestClickDeprecatedTimeoutAliasWins(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["clickObj"] = true

	_, err := New(rec, okSelector()).Click().
		Duration(2 * time.Second).
		Timeout(3 * time.Second).
		Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.LastCall().Params[1]; got != int64(3000) {
		t.Errorf("deprecated alias should win, got %#v", got)
	}
}

func TestClickBottomRight(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["getVisibleBounds"] = map[string]interface{}{
		"left": 10, "top": 20, "right": 110, "bottom": 220,
	}
	rec.Results["click"] = true

	ok, err := New(rec, okSelector()).Click().BottomRight()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	call := rec.LastCall()
	if call.Method != "click" {
		t.Errorf("expected coordinate click, got %s", call.Method)
	}
	if call.Params[0] != 110 || call.Params[1] != 220 {
		t.Errorf("expected corner (110,220), got %#v", call.Params)
	}
}

func TestClickTopLeft(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["getVisibleBounds"] = map[string]interface{}{
		"left": 10, "top": 20, "right": 110, "bottom": 220,
	}
	rec.Results["click"] = true

	ok, err := New(rec, okSelector()).Click().TopLeft()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}
	call := rec.LastCall()
	if call.Params[0] != 10 || call.Params[1] != 20 {
		t.Errorf("expected corner (10,20), got %#v", call.Params)
	}
}

func TestClickCornerVanishedElement(t *testing.T) {
	rec := rpc.NewRecorder()
	// getVisibleBounds answers null: the element is gone.

	ok, err := New(rec, okSelector()).Click().BottomRight()
	if err != nil {
		t.Fatalf("vanished element should not error: %v", err)
	}
	if ok {
		t.Error("expected false")
	}
	if rec.CallCount() != 1 {
		t.Errorf("expected only the bounds lookup, got %d calls", rec.CallCount())
	}
}

func TestClickWait(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["clickObjAndWait"] = true

	ok, err := New(rec, okSelector()).Click().Wait(5 * time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected window transition")
	}

	call := rec.LastCall()
	if call.Method != "clickObjAndWait" {
		t.Errorf("expected clickObjAndWait, got %s", call.Method)
	}
	if call.Params[1] != int64(5000) {
		t.Errorf("expected 5000 ms, got %#v", call.Params[1])
	}
}

func TestClickWaitRejectsCeiling(t *testing.T) {
	rec := rpc.NewRecorder()

	_, err := New(rec, okSelector()).Click().Wait(rpc.ChannelTimeout)
	if !errors.Is(err, core.ErrTimeoutTooLong) {
		t.Fatalf("expected timeout-too-long, got %v", err)
	}
	if rec.CallCount() != 0 {
		t.Errorf("expected no RPC calls, got %d", rec.CallCount())
	}
}

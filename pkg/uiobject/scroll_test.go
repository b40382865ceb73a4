package uiobject

import (
	"reflect"
	"testing"

	"github.com/devicelab-dev/uiauto/pkg/core"
	"github.com/devicelab-dev/uiauto/pkg/rpc"
	"github.com/devicelab-dev/uiauto/pkg/selector"
)

func TestScrollByPercent(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["scroll"] = true

	ok, err := New(rec, okSelector()).Scroll().Down().Percent(50).Speed(800).Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	call := rec.LastCall()
	if call.Method != "scroll" {
		t.Errorf("expected scroll, got %s", call.Method)
	}
	if call.Params[1] != DirectionDown || call.Params[2] != 50 || call.Params[3] != 800 {
		t.Errorf("unexpected params: %#v", call.Params)
	}
}

func TestScrollUntilCriteria(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["scrollUntil"] = true

	ok, err := New(rec, okSelector()).Scroll().Down().
		Until(selector.Criteria{"res": "id/footer"}).
		Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	call := rec.LastCall()
	if call.Method != "scrollUntil" {
		t.Errorf("expected scrollUntil, got %s", call.Method)
	}
	want := map[string]interface{}{"res": "id/footer"}
	if !reflect.DeepEqual(call.Params[1], want) {
		t.Errorf("unexpected target selector: %#v", call.Params[1])
	}
}

func TestScrollUntilObject(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["scrollUntil"] = true

	target := New(rec, selector.New(selector.Criteria{"text": "Advanced"})).
		Child(selector.Criteria{"clazz": "android.widget.TextView"})

	ok, err := New(rec, okSelector()).Scroll().Down().UntilObject(target).Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	call := rec.LastCall()
	want := map[string]interface{}{
		"text":  "Advanced",
		"child": map[string]interface{}{"clazz": "android.widget.TextView"},
	}
	if !reflect.DeepEqual(call.Params[1], want) {
		t.Errorf("unexpected target chain: %#v", call.Params[1])
	}
}

func TestScrollToEnd(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["scrollUntilFinished"] = true

	ok, err := New(rec, okSelector()).Scroll().Down().Do()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}
	if rec.LastCall().Method != "scrollUntilFinished" {
		t.Errorf("expected scrollUntilFinished, got %s", rec.LastCall().Method)
	}
}

func TestScrollMixedShapesRejected(t *testing.T) {
	rec := rpc.NewRecorder()

	_, err := New(rec, okSelector()).Scroll().Down().
		Percent(50).
		Until(selector.Criteria{"res": "id/footer"}).
		Do()
	if !core.IsArgumentError(err) {
		t.Fatalf("expected argument error, got %v", err)
	}
	if rec.CallCount() != 0 {
		t.Errorf("expected no RPC calls, got %d", rec.CallCount())
	}
}

func TestScrollSpeedWithoutPercentRejected(t *testing.T) {
	rec := rpc.NewRecorder()

	_, err := New(rec, okSelector()).Scroll().Down().
		Speed(800).
		Until(selector.Criteria{"res": "id/footer"}).
		Do()
	if !core.IsArgumentError(err) {
		t.Fatalf("expected argument error, got %v", err)
	}
	if rec.CallCount() != 0 {
		t.Errorf("expected no RPC calls, got %d", rec.CallCount())
	}
}

func TestScrollMixedMarginsRejected(t *testing.T) {
	rec := rpc.NewRecorder()

	_, err := New(rec, okSelector()).Scroll().MarginPercent(10).Margin(24).Down().Do()
	if !core.IsArgumentError(err) {
		t.Fatalf("expected argument error, got %v", err)
	}
	if rec.CallCount() != 0 {
		t.Errorf("expected no RPC calls, got %d", rec.CallCount())
	}
}

func TestScrollClick(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["scrollUntil"] = true
	rec.Results["clickObj"] = true

	ok, err := New(rec, okSelector()).Scroll().Down().
		Click(selector.Criteria{"text": "Advanced"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}

	if rec.CallCount() != 2 {
		t.Fatalf("expected scroll then click, got %d calls", rec.CallCount())
	}
	click := rec.LastCall()
	if click.Method != "clickObj" {
		t.Errorf("expected clickObj, got %s", click.Method)
	}
	// The click addresses the scrolled-to criteria as a fresh root selector.
	want := map[string]interface{}{"text": "Advanced"}
	if !reflect.DeepEqual(click.Params[0], want) {
		t.Errorf("unexpected click selector: %#v", click.Params[0])
	}
}

func TestScrollClickShortCircuits(t *testing.T) {
	rec := rpc.NewRecorder()
	rec.Results["scrollUntil"] = false

	ok, err := New(rec, okSelector()).Scroll().Down().
		Click(selector.Criteria{"text": "Advanced"})
	if err != nil {
		t.Fatalf("failed scroll should not error: %v", err)
	}
	if ok {
		t.Error("expected false")
	}
	if rec.CallCount() != 1 {
		t.Errorf("expected only the scroll call, got %d", rec.CallCount())
	}
}

func TestScrollClickRequiresCriteria(t *testing.T) {
	rec := rpc.NewRecorder()

	_, err := New(rec, okSelector()).Scroll().Down().Click(nil)
	if !core.IsArgumentError(err) {
		t.Fatalf("expected argument error, got %v", err)
	}
	if rec.CallCount() != 0 {
		t.Errorf("expected no RPC calls, got %d", rec.CallCount())
	}
}

package progress

import (
	"testing"
	"time"
)

func TestTrackerLifecycle(t *testing.T) {
	tr := NewTracker(5 * time.Millisecond)

	active, value := tr.Snapshot()
	if active || value != 0 {
		t.Fatalf("fresh tracker: active=%v value=%v", active, value)
	}

	tr.Start()
	active, _ = tr.Snapshot()
	if !active {
		t.Fatal("not active after Start")
	}

	deadline := time.After(2 * time.Second)
	for {
		_, value = tr.Snapshot()
		if value > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("value never advanced")
		case <-time.After(5 * time.Millisecond):
		}
	}

	tr.Finish()
	active, value = tr.Snapshot()
	if active || value != 100 {
		t.Fatalf("after Finish: active=%v value=%v", active, value)
	}
}

func TestTrackerCapsAt95WhileRunning(t *testing.T) {
	tr := NewTracker(time.Millisecond)
	tr.Start()
	defer tr.Finish()

	time.Sleep(50 * time.Millisecond)
	_, value := tr.Snapshot()
	if value > 95 {
		t.Fatalf("running value = %v, want <= 95", value)
	}
}

func TestTrackerRestart(t *testing.T) {
	tr := NewTracker(time.Hour) // ticker never fires during the test
	tr.Start()
	tr.Start()
	active, value := tr.Snapshot()
	if !active || value != 0 {
		t.Fatalf("after restart: active=%v value=%v", active, value)
	}
	tr.Finish()
	if _, value = tr.Snapshot(); value != 100 {
		t.Fatalf("value = %v, want 100", value)
	}
}

func TestFinishWithoutStart(t *testing.T) {
	tr := NewTracker(0)
	tr.Finish()
	active, value := tr.Snapshot()
	if active || value != 100 {
		t.Fatalf("after bare Finish: active=%v value=%v", active, value)
	}
}

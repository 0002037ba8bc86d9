package countdown

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/kitchendeck/internal/clock"
	"github.com/akyairhashvil/kitchendeck/internal/models"
)

func TestSnapshotRoundTripRunning(t *testing.T) {
	tm, src, _ := newTestTimer(t, 600)
	_ = tm.Start()
	src.Advance(42)
	snap := tm.Snapshot()

	src2 := clock.NewManual()
	restored, err := New(1, src2, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.Snapshot() != snap {
		t.Fatalf("restored %+v, want %+v", restored.Snapshot(), snap)
	}
	src2.Advance(1)
	if restored.Remaining() != 557 {
		t.Fatalf("restored running timer did not resume ticking: %d", restored.Remaining())
	}
}

func TestRestoreReplacesSubscription(t *testing.T) {
	tm, src, _ := newTestTimer(t, 100)
	_ = tm.Start()
	if err := tm.Restore(models.TimerSnapshot{Total: 50, Remaining: 20, State: models.TimerPaused}); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if src.Active() != 0 {
		t.Fatalf("restoring a paused snapshot kept ticking")
	}
	src.Advance(5)
	if tm.Remaining() != 20 {
		t.Fatalf("remaining = %d", tm.Remaining())
	}
}

func TestRestoreRejectsBrokenSnapshots(t *testing.T) {
	bad := []models.TimerSnapshot{
		{Total: 10, Remaining: 10, State: "active"},
		{Total: -1, Remaining: 0, State: models.TimerIdle},
		{Total: 10, Remaining: 11, State: models.TimerPaused},
		{Total: 10, Remaining: -1, State: models.TimerPaused},
		{Total: 10, Remaining: 3, State: models.TimerCompleted},
		{Total: 10, Remaining: 0, State: models.TimerRunning},
		{Total: 10, Remaining: 0, State: models.TimerPaused},
		{Total: 10, Remaining: 4, State: models.TimerIdle},
	}
	for _, snap := range bad {
		tm, _, _ := newTestTimer(t, 30)
		before := tm.Snapshot()
		if err := tm.Restore(snap); !errors.Is(err, ErrInvalidSnapshot) {
			t.Fatalf("Restore(%+v) = %v, want ErrInvalidSnapshot", snap, err)
		}
		if tm.Snapshot() != before {
			t.Fatalf("rejected snapshot %+v mutated timer", snap)
		}
	}
}

func TestValidateSnapshotAccepts(t *testing.T) {
	good := []models.TimerSnapshot{
		{Total: 0, Remaining: 0, State: models.TimerIdle},
		{Total: 0, Remaining: 0, State: models.TimerCompleted},
		{Total: 600, Remaining: 600, State: models.TimerIdle},
		{Total: 600, Remaining: 1, State: models.TimerRunning},
		{Total: 600, Remaining: 600, State: models.TimerPaused},
		{Total: 600, Remaining: 0, State: models.TimerCompleted},
	}
	for _, snap := range good {
		if err := ValidateSnapshot(snap); err != nil {
			t.Fatalf("ValidateSnapshot(%+v) = %v", snap, err)
		}
	}
}

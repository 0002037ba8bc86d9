package tui

import (
	"testing"
	"time"
)

func TestTickerLifecycle(t *testing.T) {
	tk := NewTicker("timer", time.Millisecond)
	if tk.Cmd() != nil {
		t.Fatalf("expected no command without a subscriber")
	}
	ticks := 0
	stop := tk.Start(func() { ticks++ })
	if !tk.Active() {
		t.Fatalf("expected active ticker")
	}
	if tk.Cmd() == nil {
		t.Fatalf("expected tick command")
	}
	if tk.Cmd() != nil {
		t.Fatalf("expected one pending tick at a time")
	}

	if tk.Deliver(TickMsg{Source: "other", Gen: tk.gen}) {
		t.Fatalf("expected foreign tick to be rejected")
	}
	if !tk.Deliver(TickMsg{Source: "timer", Gen: tk.gen}) || ticks != 1 {
		t.Fatalf("expected tick delivered, ticks=%d", ticks)
	}
	if tk.Cmd() == nil {
		t.Fatalf("expected next tick after delivery")
	}

	gen := tk.gen
	stop()
	stop()
	if tk.Active() {
		t.Fatalf("expected inactive after stop")
	}
	tk.Deliver(TickMsg{Source: "timer", Gen: gen})
	if ticks != 1 {
		t.Fatalf("stale tick was delivered")
	}
}

func TestTickerStaleStopDoesNotCancelNewSubscription(t *testing.T) {
	tk := NewTicker("timer", time.Millisecond)
	stopOld := tk.Start(func() {})
	stopOld()
	calls := 0
	tk.Start(func() { calls++ })
	stopOld()
	if !tk.Active() {
		t.Fatalf("old stop cancelled the new subscription")
	}
	tk.Deliver(TickMsg{Source: "timer", Gen: tk.gen})
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestTickerCmdProducesTickMsg(t *testing.T) {
	tk := NewTicker("autoplay", time.Millisecond)
	tk.Start(func() {})
	msg := tk.Cmd()()
	tick, ok := msg.(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg, got %T", msg)
	}
	if tick.Source != "autoplay" || tick.Gen != tk.gen {
		t.Fatalf("unexpected tick %+v", tick)
	}
}

func TestTickerResumeSchedulesDespiteStaleTick(t *testing.T) {
	tk := NewTicker("timer", time.Millisecond)
	stop := tk.Start(func() {})
	if tk.Cmd() == nil {
		t.Fatalf("expected tick command")
	}
	staleGen := tk.gen
	stop()

	calls := 0
	tk.Start(func() { calls++ })
	if tk.Cmd() == nil {
		t.Fatalf("expected resumed subscription to schedule without waiting for the stale tick")
	}
	if tk.Cmd() != nil {
		t.Fatalf("expected one pending tick for the live subscription")
	}

	tk.Deliver(TickMsg{Source: "timer", Gen: staleGen})
	if calls != 0 {
		t.Fatalf("stale tick was delivered")
	}
	if tk.Cmd() != nil {
		t.Fatalf("stale tick cleared the live pending tick")
	}
	tk.Deliver(TickMsg{Source: "timer", Gen: tk.gen})
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if tk.Cmd() == nil {
		t.Fatalf("expected next tick after delivery")
	}
}

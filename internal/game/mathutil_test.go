package game

import (
	"math"
	"testing"
	"time"
)

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := range 100 {
		if x, y := a.NextU64(), b.NextU64(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if NewRand(1).NextU64() == NewRand(2).NextU64() {
		t.Fatalf("different seeds gave the same first draw")
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(9)
	for range 1000 {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		if n := r.Intn(4); n < 0 || n >= 4 {
			t.Fatalf("Intn out of range: %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Fatalf("Intn(0) != 0")
	}
}

func TestAimAngle(t *testing.T) {
	if got := AimAngle(0, 0, 0, 10); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("AimAngle down = %v", got)
	}
	if got := AimAngle(5, 5, 0, 5); math.Abs(got-math.Pi) > 1e-12 {
		t.Fatalf("AimAngle left = %v", got)
	}
}

func TestHealthClamps(t *testing.T) {
	h := NewHealth(50)
	h.Damage(30)
	if h.IsDead() || h.Fraction() != 0.4 {
		t.Fatalf("health %+v fraction %v", h, h.Fraction())
	}
	h.Damage(30)
	if !h.IsDead() || h.Current != 0 {
		t.Fatalf("health %+v, want dead at 0", h)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(testEpoch)
	c.Advance(1500 * time.Millisecond)
	if got := c.Now().Sub(testEpoch); got != 1500*time.Millisecond {
		t.Fatalf("advanced %v", got)
	}
}

func TestEventBusFanOut(t *testing.T) {
	eb := NewEventBus()
	var typed, all int
	eb.Subscribe(EventPickup, func(e Event) { typed += e.Data })
	eb.SubscribeAll(func(Event) { all++ })

	eb.Emit(Event{Type: EventPickup, Data: 5})
	eb.Emit(Event{Type: EventShot})
	if typed != 5 || all != 2 {
		t.Fatalf("typed %d all %d", typed, all)
	}

	var nilBus *EventBus
	nilBus.Emit(Event{Type: EventShot})
}

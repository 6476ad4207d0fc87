package core

import (
	"testing"
	"time"
)

func TestPacerFiresOncePerPeriod(t *testing.T) {
	clock := time.Unix(0, 0)
	p := NewPacer(time.Second)
	p.now = func() time.Time { return clock }

	if p.Ready() {
		t.Fatal("first call should only start the clock")
	}
	clock = clock.Add(400 * time.Millisecond)
	if p.Ready() {
		t.Fatal("pacer fired before a full period")
	}
	clock = clock.Add(700 * time.Millisecond)
	if !p.Ready() {
		t.Fatal("pacer should fire after a full period")
	}
	clock = clock.Add(100 * time.Millisecond)
	if p.Ready() {
		t.Fatal("remainder alone should not fire")
	}

	p.Reset()
	if p.Ready() {
		t.Fatal("reset should restart the clock")
	}
}

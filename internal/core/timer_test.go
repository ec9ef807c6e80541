package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstPollFires(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.Poll(time.Unix(0, 0)) {
		t.Fatal("first poll should release a step")
	}
	if fs.Poll(time.Unix(0, 0)) {
		t.Fatal("no time passed, no step expected")
	}
}

func TestFixedStepInterval(t *testing.T) {
	fs := NewFixedStep(4)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", fs.Interval())
	}
	start := time.Unix(0, 0)
	fs.Restart(start)
	if fs.Poll(start.Add(200 * time.Millisecond)) {
		t.Fatal("step released before the interval elapsed")
	}
	if !fs.Poll(start.Add(260 * time.Millisecond)) {
		t.Fatal("step expected after the interval")
	}
}

func TestFixedStepDoesNotReplayBacklog(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)
	fs.Restart(start)
	later := start.Add(5 * time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.Poll(later) {
			steps++
		}
	}
	if steps > 2 {
		t.Fatalf("a long stall released %d steps", steps)
	}
}

func TestFixedStepDefaultRate(t *testing.T) {
	if NewFixedStep(0).Interval() != 100*time.Millisecond {
		t.Fatal("non-positive rate should fall back to 10/s")
	}
}

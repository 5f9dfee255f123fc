package main

import (
	"math"
	"testing"
)

func TestFadeInProgress(t *testing.T) {
	a := NewFadeIn()
	if !a.Playing {
		t.Fatal("fade-in must start playing")
	}
	if a.Progress() != 0 {
		t.Errorf("expected progress 0 at start, got %v", a.Progress())
	}

	a.Step(FadeInDuration / 2)
	if math.Abs(a.Progress()-0.5) > 1e-9 {
		t.Errorf("expected progress 0.5 at half duration, got %v", a.Progress())
	}

	a.Step(FadeInDuration)
	if a.Progress() != 1 {
		t.Errorf("expected progress clamped to 1, got %v", a.Progress())
	}
	if a.Playing {
		t.Error("non-looping animation must stop when done")
	}
	if !a.Done() {
		t.Error("Done must report completion")
	}
}

func TestStoppedAnimationHolds(t *testing.T) {
	a := NewFadeIn()
	a.Step(FadeInDuration * 2)
	p := a.Progress()

	a.Step(1.0)
	if a.Progress() != p {
		t.Error("stopped animation advanced")
	}
}

func TestLoopingAnimationWraps(t *testing.T) {
	a := &Animation{Duration: 1.0, Playing: true, Loop: true}
	a.Step(1.25)
	if a.Progress() != 0 {
		t.Errorf("expected restart from 0, got %v", a.Progress())
	}
	if !a.Playing {
		t.Error("looping animation must keep playing")
	}
	if a.Done() {
		t.Error("looping animation is never done")
	}
}

package main

// Animation is a simple timeline. Objects created through the UI carry one
// as a fade-in on their opacity.
type Animation struct {
	Duration float64
	Elapsed  float64
	Playing  bool
	Loop     bool
}

func NewFadeIn() *Animation {
	return &Animation{Duration: FadeInDuration, Playing: true}
}

// Step advances the timeline. Looping animations wrap; others stop at the
// end and report done.
func (a *Animation) Step(dt float64) {
	if !a.Playing {
		return
	}
	a.Elapsed += dt
	if a.Elapsed >= a.Duration {
		if a.Loop {
			a.Elapsed = 0
		} else {
			a.Elapsed = a.Duration
			a.Playing = false
		}
	}
}

// Progress is in [0,1].
func (a *Animation) Progress() float64 {
	if a.Duration <= 0 {
		return 1
	}
	return clamp(a.Elapsed/a.Duration, 0, 1)
}

func (a *Animation) Done() bool {
	return !a.Playing && a.Elapsed >= a.Duration
}

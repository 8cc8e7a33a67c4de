package animations

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	FrameDuration    float32 // seconds before next frame, 0 holds the first frame
	elapsed          float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.FrameDuration <= 0 {
		return
	}
	a.elapsed += float32(dt)
	for a.elapsed >= a.FrameDuration {
		a.elapsed -= a.FrameDuration
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
			} else {
				// loop back to the beginning
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
}

func NewAnimation(first, last, step int, frameDuration float32) *Animation {
	return &Animation{
		First:         first,
		Last:          last,
		Step:          step,
		FrameDuration: frameDuration,
		frame:         first,
		Looped:        false,
	}
}

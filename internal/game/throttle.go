package game

// Throttle limits and key auto-repeat timing.
const (
	MinFlightSpeed = 1
	MaxFlightSpeed = 100

	throttleHoldDelay = 0.3  // seconds before a held key repeats
	throttleRepeat    = 0.05 // seconds between repeats
)

// Throttle owns the flight speed. A press steps it by one; holding the key
// steps again after a short delay and then at a fixed rate.
type Throttle struct {
	speed int

	dir  int     // key currently held: 1 up, -1 down, 0 none
	held float64 // seconds the key has been held
	next float64 // held time at which the next repeat fires
}

// NewThrottle returns a throttle at minimum speed.
func NewThrottle() *Throttle {
	return &Throttle{speed: MinFlightSpeed}
}

// Speed returns the flight speed, 1..100.
func (t *Throttle) Speed() int { return t.speed }

// Set moves the throttle to v, clamped to the valid range.
func (t *Throttle) Set(v int) {
	t.speed = min(max(v, MinFlightSpeed), MaxFlightSpeed)
}

// Update feeds the held key state for one frame. dir is 1 while the
// increase key is held, -1 for decrease and 0 when neither is. It returns
// the flight speed after the frame.
func (t *Throttle) Update(dir int, dt float64) int {
	switch {
	case dir == 0:
		t.dir, t.held = 0, 0
	case dir != t.dir:
		t.dir, t.held, t.next = dir, 0, throttleHoldDelay
		t.Set(t.speed + dir)
	default:
		t.held += dt
		for t.held >= t.next {
			t.Set(t.speed + dir)
			t.next += throttleRepeat
		}
	}
	return t.speed
}

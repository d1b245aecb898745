package ddk

type TimeSynchronizer struct {
	prevTicks, usPerFrame int64
	clock                 Clock
}

func NewTimeSynchronizer(clock Clock, targetFPS float64) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTicks:  clock.Ticks(),
		usPerFrame: int64(1000000.0 / targetFPS),
		clock:      clock,
	}
}

func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.clock.Ticks()
	if cur < ts.prevTicks {
		return
	}
	diff := ts.usPerFrame - (cur - ts.prevTicks)
	if diff > 1000 { // Larger than 1ms
		ts.clock.Delay(diff)
	}
	if diff < -ts.usPerFrame {
		// Fell behind by more than a frame; don't try to catch up.
		ts.prevTicks = cur
		return
	}
	ts.prevTicks += ts.usPerFrame
}

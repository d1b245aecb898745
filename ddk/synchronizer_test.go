package ddk

import "testing"

type fakeClock struct {
	now    int64
	delays []int64
}

func (c *fakeClock) Ticks() int64 { return c.now }

func (c *fakeClock) Delay(us int64) {
	c.delays = append(c.delays, us)
	c.now += us
}

func TestTimeSynchronizer(t *testing.T) {
	clock := &fakeClock{}
	ts := NewTimeSynchronizer(clock, 50) // 20ms per frame

	clock.now += 5000
	ts.MaySleep()
	if len(clock.delays) != 1 || clock.delays[0] != 15000 {
		t.Fatalf("delays: got %v, expected [15000]", clock.delays)
	}

	clock.now += 19500
	ts.MaySleep()
	if len(clock.delays) != 1 {
		t.Fatalf("slept for less than 1ms: %v", clock.delays)
	}

	// Falling far behind resets the schedule instead of spinning.
	clock.now += 100000
	ts.MaySleep()
	clock.now += 1000
	ts.MaySleep()
	if last := clock.delays[len(clock.delays)-1]; last != 19000 {
		t.Fatalf("delay after reset: got %d, expected 19000", last)
	}
}

func TestFramePacing(t *testing.T) {
	clock := &fakeClock{}
	b := &clockBackend{newFakeBackend(testMode()), clock}
	mode := testMode()
	mode.RefreshRate = 100
	h := &hooks{}
	h.calc = func(f *Frame) bool { return h.frames < 3 }

	if err := New(b, mode, h).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(clock.delays) != 2 {
		t.Fatalf("delays: got %v, expected two", clock.delays)
	}

	clock.delays = nil
	h.frames = 0
	if err := New(b, mode, h, WithoutPacing()).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(clock.delays) != 0 {
		t.Fatalf("WithoutPacing still slept: %v", clock.delays)
	}
}

type clockBackend struct {
	*fakeBackend
	*fakeClock
}

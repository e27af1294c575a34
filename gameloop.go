package angryclones

// Clock counts fixed-rate game ticks.
type Clock struct {
	TPS   int
	Frame int64
}

func NewClock(tps int) *Clock {
	return &Clock{TPS: tps}
}

func (c *Clock) Tick() {
	c.Frame++
}

// Delta is the length of one tick in seconds.
func (c *Clock) Delta() float64 {
	return 1 / float64(c.TPS)
}

// Seconds converts a tick count to whole seconds.
func (c *Clock) Seconds(ticks int64) int {
	return int(ticks / int64(c.TPS))
}

// Since is the number of ticks elapsed after frame.
func (c *Clock) Since(frame int64) int64 {
	return c.Frame - frame
}

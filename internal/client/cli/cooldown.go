package cli

import (
	"math"
	"time"
)

// otpResendInterval is how long the user must wait between OTP requests.
const otpResendInterval = 30 * time.Second

// nowFn is a test seam for the clock.
var nowFn = time.Now

// cooldown gates repeated OTP sends. It starts running on construction.
type cooldown struct {
	until time.Time
}

func newCooldown(d time.Duration) *cooldown {
	return &cooldown{until: nowFn().Add(d)}
}

// Ready reports whether the waiting period has elapsed.
func (c *cooldown) Ready() bool {
	return !nowFn().Before(c.until)
}

// Remaining returns the whole seconds left to wait, rounded up, never
// negative.
func (c *cooldown) Remaining() int {
	d := c.until.Sub(nowFn())
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}

// Restart begins a new waiting period.
func (c *cooldown) Restart(d time.Duration) {
	c.until = nowFn().Add(d)
}

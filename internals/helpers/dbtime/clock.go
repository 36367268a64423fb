package dbtime

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const LocClock = "clock"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().In(Location()) }

// FixedClock always reports T; used by tests and by replayed requests.
type FixedClock struct {
	T time.Time
}

func (f FixedClock) Now() time.Time { return f.T.In(Location()) }

// ClockFrom returns the clock stored in locals, or the system clock.
func ClockFrom(c *fiber.Ctx) Clock {
	if c != nil {
		if v, ok := c.Locals(LocClock).(Clock); ok && v != nil {
			return v
		}
	}
	return SystemClock{}
}

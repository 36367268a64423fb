// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CenterTimezone is fixed; every "now" comparison and every derived lesson time uses it.
const CenterTimezone = "Asia/Ho_Chi_Minh"

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location returns the center's zone. Hosts without tzdata fall back to a fixed UTC+7.
func Location() *time.Location {
	locOnce.Do(func() {
		l, err := time.LoadLocation(CenterTimezone)
		if err != nil {
			l = time.FixedZone("ICT", 7*60*60)
		}
		loc = l
	})
	return loc
}

// CivilDate keeps the calendar day of t as written and anchors it at midnight in the center zone.
// DATE columns come back from Postgres as UTC midnight, so no zone conversion happens here.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location())
}

// Today is the current calendar day in the center zone.
func Today(clk Clock) time.Time {
	return CivilDate(clk.Now().In(Location()))
}

// TimeOfDay is the offset of t from its own midnight, in the center zone.
func TimeOfDay(t time.Time) time.Duration {
	t = t.In(Location())
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

func ToLocal(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Location())
}

func ToLocalPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := ToLocal(*t)
	return &v
}

// NowInCenter is what controllers read; the clock set by middleware wins so tests can pin time.
func NowInCenter(c *fiber.Ctx) time.Time {
	return ClockFrom(c).Now().In(Location())
}

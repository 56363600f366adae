package clock

import "time"

// Clock stamps new records. Time is truncated to microseconds, the precision
// Postgres keeps for timestamptz, so a value read back compares equal.
type Clock struct{}

func New() *Clock {
	return &Clock{}
}

func (c *Clock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

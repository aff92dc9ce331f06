package model

import (
	"time"

	"cloud.google.com/go/civil"
)

// Day is a calendar date without time of day. It is comparable and used
// directly as a map key.
type Day = civil.Date

// DayOf takes the calendar date of t in t's own location.
func DayOf(t time.Time) Day {
	return civil.DateOf(t)
}

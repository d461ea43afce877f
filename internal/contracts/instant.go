package contracts

import "time"

// DateLayout is the ISO calendar-date format used on every boundary.
const DateLayout = "2006-01-02"

// Instant is a location-qualified astronomical moment. Immutable once
// constructed; derived snapshots never outlive the request that built them.
type Instant struct {
	Time      time.Time `json:"time"` // resolved to UTC
	Date      string    `json:"date"` // civil date at the observer, YYYY-MM-DD
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// NewInstant resolves a civil date and decimal hour at the observer's UTC
// offset into an astronomical moment.
func NewInstant(date time.Time, hour float64, lat, lon float64, utcOffset time.Duration) Instant {
	local := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(hour * float64(time.Hour)))
	return Instant{
		Time:      local.Add(-utcOffset),
		Date:      date.Format(DateLayout),
		Latitude:  lat,
		Longitude: lon,
	}
}

// Offset returns the same observer shifted in time. The civil date label is
// kept: forward void-of-course scans stay attributed to the queried date.
func (i Instant) Offset(d time.Duration) Instant {
	i.Time = i.Time.Add(d)
	return i
}

// Weekday is the day of week of the civil date at the observer.
func (i Instant) Weekday() time.Weekday {
	d, err := time.Parse(DateLayout, i.Date)
	if err != nil {
		return i.Time.Weekday()
	}
	return d.Weekday()
}

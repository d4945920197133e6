package usps

import (
	"strings"
	"time"
)

const (
	eventDateLayout = "January 2, 2006"
	eventTimeLayout = "3:04 PM"
	defaultCountry  = "US"
)

// EventRecord holds the fields shared by TrackSummary and TrackDetail nodes.
type EventRecord struct {
	Event        string
	EventDate    string
	EventTime    string
	EventCity    string
	EventState   string
	EventCountry string
}

// DeriveDate combines EventDate and EventTime into a UTC timestamp. An empty
// EventTime means midnight.
func DeriveDate(r EventRecord) (time.Time, error) {
	date, err := time.Parse(eventDateLayout, r.EventDate)
	if err != nil {
		return time.Time{}, &MalformedDateError{Field: "EventDate", Value: r.EventDate, Cause: err}
	}

	if r.EventTime == "" {
		return date, nil
	}

	// AM/PM casing varies between responses
	clock, err := time.Parse(eventTimeLayout, strings.ToUpper(r.EventTime))
	if err != nil {
		return time.Time{}, &MalformedDateError{Field: "EventTime", Value: r.EventTime, Cause: err}
	}

	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}

// DeriveLocation formats city,state,country. Only the country is defaulted.
func DeriveLocation(r EventRecord) string {
	country := r.EventCountry
	if country == "" {
		country = defaultCountry
	}
	return strings.Join([]string{r.EventCity, r.EventState, country}, ",")
}

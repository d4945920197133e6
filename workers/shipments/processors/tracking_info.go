package processors

import "time"

// TrackingInfo is a carrier-agnostic tracking record.
type TrackingInfo struct {
	TrackingNumber string
	LastUpdate     time.Time
	DeliveryDate   time.Time
	Status         string
	Location       string
	DeliveryDetail *string
	Service        string
	Events         []TrackingEvent

	// StatusKey is the shipment_statuses key the carrier status maps to.
	StatusKey     string
	TrackingURL   string
	LastCheckedAt *time.Time
}

type TrackingEvent struct {
	Date     time.Time
	Location string
	Detail   string
}

func (t *TrackingInfo) AddEvent(date time.Time, location, detail string) {
	t.Events = append(t.Events, TrackingEvent{
		Date:     date,
		Location: location,
		Detail:   detail,
	})
}

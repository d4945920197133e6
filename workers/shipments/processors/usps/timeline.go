package usps

import "package-tracking-service/workers/shipments/processors"

// StatusDelivered is the summary Event USPS reports for a delivered package.
const StatusDelivered = "DELIVERED"

// assembleEvents fills info.Events. USPS leaves the delivery scan out of the
// detail list, so a delivered summary is added first. Details keep their
// source order.
func assembleEvents(info *processors.TrackingInfo, details []EventRecord) error {
	info.Events = make([]processors.TrackingEvent, 0, len(details)+1)

	if info.Status == StatusDelivered {
		info.AddEvent(info.LastUpdate, info.Location, info.Status)
	}

	for _, d := range details {
		date, err := DeriveDate(d)
		if err != nil {
			return err
		}
		info.AddEvent(date, DeriveLocation(d), d.Event)
	}

	return nil
}

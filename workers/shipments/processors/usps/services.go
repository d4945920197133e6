package usps

// DefaultService is reported when the tracking number prefix is not a known service code.
const DefaultService = "USPS"

// USPS never states the mail class in a TrackV2 response, so it is read off
// the tracking number prefix.
var serviceTypes = map[string]string{
	"EA": "express mail",
	"EC": "express mail international",
	"CP": "priority mail international",
	"RA": "registered mail",
	"RF": "registered foreign",
}

func ResolveService(code string) string {
	if description, ok := serviceTypes[code]; ok {
		return description
	}
	return DefaultService
}

// serviceCode returns the first two characters of a tracking number.
func serviceCode(trackingNumber string) string {
	if len(trackingNumber) < 2 {
		return trackingNumber
	}
	return trackingNumber[:2]
}

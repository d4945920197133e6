package usps

import "strings"

var statusMap = map[string]string{
	"DELIVERED":                         "delivered",
	"OUT FOR DELIVERY":                  "out_for_delivery",
	"ACCEPTANCE":                        "pending",
	"ELECTRONIC SHIPPING INFO RECEIVED": "pending",
	"PRE-SHIPMENT INFO SENT TO USPS":    "pending",
}

// getStatusKey maps a summary Event to a shipment status key. Anything USPS
// has scanned but not delivered counts as in transit.
func getStatusKey(status string) string {
	key, ok := statusMap[strings.ToUpper(strings.TrimSpace(status))]
	if !ok {
		return "in_transit"
	}
	return key
}

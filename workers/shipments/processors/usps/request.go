package usps

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const trackingPageURL = "http://trkcnfrm1.smi.usps.com/PTSInternetWeb/InterLabelInquiry.do?origTrackNum=%s"

const trackQuery = "?API=TrackV2&XML="

// ErrUnknownServer is returned for a server environment that has no TrackV2 endpoint.
var ErrUnknownServer = errors.New("unknown usps server")

var serverBases = map[string]string{
	"secure_test": "https://secure.shippingapis.com/ShippingAPITest.dll",
	"test":        "http://testing.shippingapis.com/ShippingAPITest.dll",
	"production":  "http://production.shippingapis.com/ShippingAPI.dll",
	"secure":      "https://secure.shippingapis.com/ShippingAPI.dll",
}

// Endpoint returns the TrackV2 URL prefix for a server environment. An empty
// server selects production.
func Endpoint(server string) (string, error) {
	if server == "" {
		server = "production"
	}
	base, ok := serverBases[server]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownServer, server)
	}
	return base + trackQuery, nil
}

// CustomEndpoint returns the TrackV2 URL prefix for an explicit base URI.
func CustomEndpoint(baseUri string) string {
	return strings.TrimRight(baseUri, "?") + trackQuery
}

// RequestURL appends the encoded request payload to an endpoint.
func RequestURL(endpoint, payload string) string {
	return endpoint + url.QueryEscape(payload)
}

// BuildRequest renders the TrackFieldRequest document for a single tracking number.
func BuildRequest(userID, trackingNumber string) string {
	return fmt.Sprintf(`<TrackFieldRequest USERID="%s"><TrackID ID="%s"/></TrackFieldRequest>`,
		escapeAttr(userID), escapeAttr(trackingNumber))
}

// TrackingURL links to the public USPS confirmation page for a tracking number.
func TrackingURL(trackingNumber string) string {
	return fmt.Sprintf(trackingPageURL, trackingNumber)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

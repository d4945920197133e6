package usps

import (
	"bytes"
	"github.com/antchfx/xmlquery"
	"package-tracking-service/workers/shipments/processors"
	"strings"
)

type outcome int

const (
	outcomeOK outcome = iota
	outcomeSystemError
	outcomeResultError
)

// decodeResult is a parsed TrackV2 response, tagged by which branch of the
// document it came from.
type decodeResult struct {
	outcome     outcome
	description string
	trackInfo   *xmlquery.Node
}

// Decode turns a raw TrackV2 response into a TrackingInfo.
//
// A document-level Error node and a TrackInfo-level Error node both surface
// as a *TrackFailedError; the document-level one wins when both are present.
// TrackDetail may be absent, TrackSummary may not.
func Decode(raw []byte, trackingNumber string) (*processors.TrackingInfo, error) {
	result, err := classify(raw)
	if err != nil {
		return nil, err
	}

	switch result.outcome {
	case outcomeSystemError:
		return nil, NewTrackFailedError(SystemFailure, result.description)
	case outcomeResultError:
		return nil, NewTrackFailedError(ResultFailure, result.description)
	}

	details := make([]EventRecord, 0)
	for _, node := range elements(result.trackInfo, "TrackDetail") {
		details = append(details, readRecord(node))
	}

	summaryNode := result.trackInfo.SelectElement("TrackSummary")
	if summaryNode == nil {
		return nil, malformedResponse("TrackInfo has no TrackSummary")
	}
	summary := readRecord(summaryNode)

	lastUpdate, err := DeriveDate(summary)
	if err != nil {
		return nil, err
	}

	info := &processors.TrackingInfo{
		TrackingNumber: trackingNumber,
		LastUpdate:     lastUpdate,
		DeliveryDate:   lastUpdate,
		Status:         summary.Event,
		Location:       DeriveLocation(summary),
		DeliveryDetail: nil,
		Service:        ResolveService(serviceCode(trackingNumber)),
	}

	if err := assembleEvents(info, details); err != nil {
		return nil, err
	}

	return info, nil
}

func classify(raw []byte) (decodeResult, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		return decodeResult{}, malformedResponse("%v", err)
	}

	// Bad credentials, malformed requests and outages come back as a bare <Error> document.
	if e := doc.SelectElement("Error"); e != nil {
		return decodeResult{outcome: outcomeSystemError, description: childText(e, "Description")}, nil
	}

	response := doc.SelectElement("TrackResponse")
	if response == nil {
		return decodeResult{}, malformedResponse("no TrackResponse element")
	}

	trackInfo := response.SelectElement("TrackInfo")
	if trackInfo == nil {
		return decodeResult{}, malformedResponse("TrackResponse has no TrackInfo")
	}

	if e := trackInfo.SelectElement("Error"); e != nil {
		return decodeResult{outcome: outcomeResultError, description: childText(e, "Description")}, nil
	}

	return decodeResult{outcome: outcomeOK, trackInfo: trackInfo}, nil
}

// elements returns every child of parent named name as a sequence. USPS sends
// a single node or repeated nodes depending on how many there are, and an
// absent field is an empty sequence.
func elements(parent *xmlquery.Node, name string) []*xmlquery.Node {
	if parent == nil {
		return nil
	}
	return parent.SelectElements(name)
}

func readRecord(n *xmlquery.Node) EventRecord {
	return EventRecord{
		Event:        childText(n, "Event"),
		EventDate:    childText(n, "EventDate"),
		EventTime:    childText(n, "EventTime"),
		EventCity:    childText(n, "EventCity"),
		EventState:   childText(n, "EventState"),
		EventCountry: childText(n, "EventCountry"),
	}
}

func childText(n *xmlquery.Node, name string) string {
	child := n.SelectElement(name)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.InnerText())
}

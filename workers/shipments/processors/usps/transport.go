package usps

import (
	"context"
	"fmt"
	"github.com/gocolly/colly/v2"
	"time"
)

// Transport fetches a raw TrackV2 response.
type Transport interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// CollyTransport issues the TrackV2 GET through a colly collector.
type CollyTransport struct {
	timeout time.Duration
}

func NewCollyTransport(timeout time.Duration) *CollyTransport {
	return &CollyTransport{timeout}
}

func (t *CollyTransport) Fetch(ctx context.Context, url string) ([]byte, error) {
	// A fresh collector per fetch, colly refuses to revisit a URL
	c := colly.NewCollector(colly.StdlibContext(ctx))
	if t.timeout > 0 {
		c.SetRequestTimeout(t.timeout)
	}

	var body []byte
	status := 0

	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	c.OnError(func(r *colly.Response, _ error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	if err := c.Visit(url); err != nil {
		if status != 0 {
			return nil, fmt.Errorf("unexpected status %d: %w", status, err)
		}
		return nil, err
	}

	return body, nil
}

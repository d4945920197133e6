package usps_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"package-tracking-service/config"
	"package-tracking-service/workers/shipments/processors/usps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTransport struct {
	url  string
	body []byte
	err  error
}

func (s *stubTransport) Fetch(_ context.Context, url string) ([]byte, error) {
	s.url = url
	return s.body, s.err
}

func TestTrackingProcessor_Process_OverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ShippingAPI.dll", r.URL.Path)
		require.Equal(t, "TrackV2", r.URL.Query().Get("API"))
		require.Equal(t,
			`<TrackFieldRequest USERID="demo"><TrackID ID="EJ958083578US"/></TrackFieldRequest>`,
			r.URL.Query().Get("XML"))

		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(deliveredSingleDetail))
	}))
	defer srv.Close()

	cfg := &config.UspsApiConfig{
		UserId:  "demo",
		BaseUri: srv.URL + "/ShippingAPI.dll",
		Timeout: 5 * time.Second,
	}
	p := usps.NewTrackingProcessor(cfg, zap.NewNop())

	info, err := p.Process(context.Background(), "EJ958083578US")
	require.NoError(t, err)

	assert.Equal(t, "DELIVERED", info.Status)
	assert.Equal(t, "delivered", info.StatusKey)
	assert.Equal(t, usps.TrackingURL("EJ958083578US"), info.TrackingURL)
	require.NotNil(t, info.LastCheckedAt)
	assert.WithinDuration(t, time.Now(), *info.LastCheckedAt, time.Minute)
	assert.Len(t, info.Events, 2)
}

func TestTrackingProcessor_Process_HTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := &config.UspsApiConfig{BaseUri: srv.URL, Timeout: 5 * time.Second}
	p := usps.NewTrackingProcessor(cfg, zap.NewNop())

	_, err := p.Process(context.Background(), "EJ958083578US")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestTrackingProcessor_Process_UsesServerEndpoint(t *testing.T) {
	transport := &stubTransport{body: []byte(inTransitManyDetails)}
	cfg := &config.UspsApiConfig{UserId: "demo", Server: "secure"}
	p := usps.NewTrackingProcessorWithTransport(cfg, transport, zap.NewNop())

	info, err := p.Process(context.Background(), "CP123456789DE")
	require.NoError(t, err)

	assert.Equal(t,
		usps.RequestURL("https://secure.shippingapis.com/ShippingAPI.dll?API=TrackV2&XML=", usps.BuildRequest("demo", "CP123456789DE")),
		transport.url)
	assert.Equal(t, "in_transit", info.StatusKey)
}

func TestTrackingProcessor_Process_Errors(t *testing.T) {
	t.Run("unknown server", func(t *testing.T) {
		transport := &stubTransport{}
		p := usps.NewTrackingProcessorWithTransport(&config.UspsApiConfig{Server: "nowhere"}, transport, zap.NewNop())

		_, err := p.Process(context.Background(), "EC123456789US")
		assert.ErrorIs(t, err, usps.ErrUnknownServer)
		assert.Empty(t, transport.url)
	})

	t.Run("transport error", func(t *testing.T) {
		cause := errors.New("connection refused")
		p := usps.NewTrackingProcessorWithTransport(&config.UspsApiConfig{}, &stubTransport{err: cause}, zap.NewNop())

		_, err := p.Process(context.Background(), "EC123456789US")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("track failed", func(t *testing.T) {
		body := []byte(`<Error><Description>bad user</Description></Error>`)
		p := usps.NewTrackingProcessorWithTransport(&config.UspsApiConfig{}, &stubTransport{body: body}, zap.NewNop())

		_, err := p.Process(context.Background(), "EC123456789US")
		assert.ErrorIs(t, err, usps.ErrTrackFailed)
	})
}

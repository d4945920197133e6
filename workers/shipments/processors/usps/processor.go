package usps

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"package-tracking-service/config"
	"package-tracking-service/workers/shipments/processors"
	"time"
)

type TrackingProcessor struct {
	config    *config.UspsApiConfig
	transport Transport
	logger    *zap.Logger
}

func NewTrackingProcessor(cfg *config.UspsApiConfig, logger *zap.Logger) *TrackingProcessor {
	return NewTrackingProcessorWithTransport(cfg, NewCollyTransport(cfg.Timeout), logger)
}

func NewTrackingProcessorWithTransport(cfg *config.UspsApiConfig, transport Transport, logger *zap.Logger) *TrackingProcessor {
	return &TrackingProcessor{
		config:    cfg,
		transport: transport,
		logger:    logger,
	}
}

func (p *TrackingProcessor) Process(ctx context.Context, trackingNumber string) (*processors.TrackingInfo, error) {
	if !Identify(trackingNumber) {
		p.logger.Warn("Tracking number does not look like a USPS number",
			zap.String("tracking_number", trackingNumber),
		)
	}

	endpoint, err := p.endpoint()
	if err != nil {
		return nil, err
	}

	raw, err := p.transport.Fetch(ctx, RequestURL(endpoint, BuildRequest(p.config.UserId, trackingNumber)))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracking details: %w", err)
	}

	info, err := Decode(raw, trackingNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	info.StatusKey = getStatusKey(info.Status)
	info.TrackingURL = TrackingURL(trackingNumber)
	info.LastCheckedAt = &now

	p.logger.Debug("Decoded USPS tracking response",
		zap.String("tracking_number", trackingNumber),
		zap.String("status", info.Status),
		zap.Int("events", len(info.Events)),
	)

	return info, nil
}

func (p *TrackingProcessor) endpoint() (string, error) {
	if p.config.BaseUri != "" {
		return CustomEndpoint(p.config.BaseUri), nil
	}
	return Endpoint(p.config.Server)
}

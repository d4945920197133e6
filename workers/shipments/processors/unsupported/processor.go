package unsupported

import (
	"context"
	"go.uber.org/zap"
	"package-tracking-service/workers/shipments/processors"
	"time"
)

// StatusKey marks shipments whose carrier has no tracking processor.
const StatusKey = "unsupported"

type TrackingProcessor struct {
	logger *zap.Logger
}

func NewTrackingProcessor(logger *zap.Logger) *TrackingProcessor {
	return &TrackingProcessor{logger}
}

func (p *TrackingProcessor) Process(_ context.Context, trackingNumber string) (*processors.TrackingInfo, error) {
	now := time.Now()

	p.logger.Info("No tracking processor for shipment carrier",
		zap.String("tracking_number", trackingNumber),
	)

	return &processors.TrackingInfo{
		TrackingNumber: trackingNumber,
		LastCheckedAt:  &now,
		StatusKey:      StatusKey,
	}, nil
}

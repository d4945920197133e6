package shipments

import (
	"context"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"package-tracking-service/config"
	"package-tracking-service/workers/shipments/models"
	"package-tracking-service/workers/shipments/processors"
	"package-tracking-service/workers/shipments/processors/unsupported"
	"package-tracking-service/workers/shipments/processors/usps"
	"sync"
	"sync/atomic"
	"time"
)

const carrierUSPS = "usps"

// Store is the persistence the worker needs, implemented by repositories.Repository.
type Store interface {
	GetOpenShipments() ([]models.Shipment, error)
	GetStatus(key string) (models.ShipmentStatus, error)
	SaveShipment(shipment *models.Shipment) error
	ReplaceEvents(shipmentID uint, events []models.ShipmentEvent) error
}

type Worker struct {
	logger     *zap.Logger
	cfg        *config.Config
	repo       Store
	processors map[string]processors.CarrierTrackingProcessor
	mu         sync.Mutex
	busy       atomic.Bool
}

func NewWorker(logger *zap.Logger, cfg *config.Config, repo Store) *Worker {
	return &Worker{
		logger:     logger,
		cfg:        cfg,
		repo:       repo,
		processors: make(map[string]processors.CarrierTrackingProcessor),
	}
}

func (w *Worker) Schedule() string {
	return w.cfg.ShipmentsSchedule
}

func (w *Worker) Ready(time.Time) bool {
	return !w.busy.Load()
}

func (w *Worker) Execute() {
	if !w.busy.CompareAndSwap(false, true) {
		return
	}
	defer w.busy.Store(false)

	logger := w.logger.With(zap.String("run_id", uuid.New().String()))
	ctx := context.Background()

	logger.Info("Starting shipment processing.")

	shipments, err := w.repo.GetOpenShipments()
	if err != nil {
		logger.Error("Failed to load open shipments", zap.Error(err))
		return
	}

	if len(shipments) == 0 {
		logger.Info("No active shipments found. Shipment work completed 😴")
		return
	}

	shipmentsToProcess := w.getShipmentsToProcess(shipments, time.Now())

	if len(shipmentsToProcess) == 0 {
		logger.Info("No shipments are ready to be processed. Shipment work completed 😴")
		return
	}

	var wg sync.WaitGroup
	for _, shipment := range shipmentsToProcess {
		wg.Add(1)
		go func(sh models.Shipment) {
			defer wg.Done()
			w.processShipment(ctx, logger, sh)
		}(shipment)
	}

	wg.Wait()
	logger.Info("Shipment work completed 😴", zap.Int("processed", len(shipmentsToProcess)))
}

func (w *Worker) getShipmentsToProcess(ss []models.Shipment, now time.Time) (ret []models.Shipment) {
	for _, s := range ss {
		if shouldCheck(s, now) {
			ret = append(ret, s)
		}
	}
	return
}

func shouldCheck(shipment models.Shipment, now time.Time) bool {
	const (
		day           = 24 * time.Hour
		soonThreshold = 2 * time.Hour
		recheckDelay  = 15 * time.Minute
	)

	if shipment.Status != nil && shipment.Status.IsFinal {
		return false
	}

	if shipment.Status == nil || shipment.Status.Key == "unchecked" || shipment.LastCheckedAt == nil {
		return true
	}

	timeSinceLastCheck := now.Sub(*shipment.LastCheckedAt)

	if timeSinceLastCheck > day {
		return true
	}

	if shipment.DeliveryWindowEnd == nil {
		return false
	}

	timeUntilExpected := shipment.DeliveryWindowEnd.Sub(now)

	return timeUntilExpected < soonThreshold && timeSinceLastCheck > recheckDelay
}

func (w *Worker) processShipment(ctx context.Context, logger *zap.Logger, sh models.Shipment) {
	carrier := carrierKey(sh)

	result, err := w.getProcessor(carrier).Process(ctx, sh.TrackingNumber)
	if err != nil {
		logger.Error("Failed to process shipment",
			zap.String("tracking_number", sh.TrackingNumber),
			zap.String("carrier_key", carrier),
			zap.Error(err),
		)
		return
	}

	status, err := w.repo.GetStatus(result.StatusKey)
	if err != nil {
		logger.Error("Failed to get shipment status",
			zap.String("tracking_number", result.TrackingNumber),
			zap.String("status_key", result.StatusKey),
			zap.Error(err),
		)
		return
	}

	updateShipmentFromResult(&sh, result, &status)

	if err := w.repo.SaveShipment(&sh); err != nil {
		logger.Error("Failed to save shipment",
			zap.String("tracking_number", sh.TrackingNumber),
			zap.Error(err),
		)
		return
	}

	if err := w.repo.ReplaceEvents(sh.ID, toShipmentEvents(result.Events)); err != nil {
		logger.Error("Failed to save shipment events",
			zap.String("tracking_number", sh.TrackingNumber),
			zap.Error(err),
		)
		return
	}

	logger.Info("Shipment successfully processed",
		zap.String("tracking_number", sh.TrackingNumber),
		zap.String("status_key", result.StatusKey),
	)
}

// carrierKey falls back to the tracking number shape when no carrier is recorded.
func carrierKey(sh models.Shipment) string {
	if sh.Carrier != nil && sh.Carrier.Key != "" {
		return sh.Carrier.Key
	}
	if usps.Identify(sh.TrackingNumber) {
		return carrierUSPS
	}
	return ""
}

func updateShipmentFromResult(sh *models.Shipment, result *processors.TrackingInfo, status *models.ShipmentStatus) {
	sh.Status = status
	sh.StatusID = &status.ID

	if result.Location != "" {
		sh.LastLocation = result.Location
	}
	if result.TrackingURL != "" {
		sh.TrackingURL = result.TrackingURL
	}
	if result.Service != "" {
		sh.Service = result.Service
	}

	if result.LastCheckedAt != nil {
		utc := result.LastCheckedAt.UTC()
		sh.LastCheckedAt = &utc
	}

	if status.IsFinal && !result.DeliveryDate.IsZero() {
		utc := result.DeliveryDate.UTC()
		sh.DeliveredAt = &utc
	}
}

func toShipmentEvents(events []processors.TrackingEvent) []models.ShipmentEvent {
	ret := make([]models.ShipmentEvent, 0, len(events))
	for _, e := range events {
		ret = append(ret, models.ShipmentEvent{
			OccurredAt: e.Date.UTC(),
			Location:   e.Location,
			Detail:     e.Detail,
		})
	}
	return ret
}

func (w *Worker) getProcessor(carrier string) processors.CarrierTrackingProcessor {
	w.mu.Lock()
	defer w.mu.Unlock()

	if processor, exists := w.processors[carrier]; exists {
		return processor
	}

	var processor processors.CarrierTrackingProcessor

	switch carrier {
	case carrierUSPS:
		processor = usps.NewTrackingProcessor(w.cfg.USPSApi, w.logger)
	default:
		processor = unsupported.NewTrackingProcessor(w.logger)
	}

	w.processors[carrier] = processor
	return processor
}

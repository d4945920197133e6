package repositories

import (
	"gorm.io/gorm"
	"package-tracking-service/workers/shipments/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetOpenShipments() ([]models.Shipment, error) {
	var shipments []models.Shipment
	err := r.db.Joins("Status").
		Preload("Carrier").
		Where("\"Status\".is_final = ? OR shipments.status_id IS NULL", false).
		Find(&shipments).Error
	return shipments, err
}

func (r *Repository) GetCarriers() ([]models.ShipmentCarrier, error) {
	var carriers []models.ShipmentCarrier
	err := r.db.Find(&carriers).Error
	return carriers, err
}

func (r *Repository) GetStatus(key string) (models.ShipmentStatus, error) {
	var status models.ShipmentStatus
	err := r.db.Where("key = ?", key).First(&status).Error
	return status, err
}

func (r *Repository) SaveShipment(shipment *models.Shipment) error {
	return r.db.Omit("Events").Save(shipment).Error
}

// ReplaceEvents swaps the stored timeline of a shipment for events, in order.
func (r *Repository) ReplaceEvents(shipmentID uint, events []models.ShipmentEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shipment_id = ?", shipmentID).Delete(&models.ShipmentEvent{}).Error; err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}
		for i := range events {
			events[i].ShipmentID = shipmentID
			events[i].Position = i
		}
		return tx.CreateInBatches(events, 100).Error
	})
}

func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&models.ShipmentCarrier{},
		&models.ShipmentStatus{},
		&models.Shipment{},
		&models.ShipmentEvent{},
	)
}

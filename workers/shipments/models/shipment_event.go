package models

import "time"

// ShipmentEvent is one entry of a shipment's tracking timeline. Position keeps
// the order the carrier reported.
type ShipmentEvent struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ShipmentID uint      `gorm:"not null;index"`
	Position   int       `gorm:"not null"`
	OccurredAt time.Time `gorm:"not null"`
	Location   string    `gorm:"size:100"`
	Detail     string    `gorm:"size:256"`
}

// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. This package implements the repository pattern for the
// shipment domain aggregate, handling the conversion between domain entities
// and database representations.
package shipmentrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The tracking code carries a unique index; the store enforces code uniqueness,
// not the application.
type ShipmentDTO struct {
	ID                  int64              `gorm:"primaryKey;autoIncrement"`
	TrackingCode        string             `gorm:"type:varchar(32);not null;uniqueIndex"`
	SenderName          string             `gorm:"type:varchar(255);not null"`
	SenderPhone         string             `gorm:"type:varchar(32);not null"`
	ReceiverName        string             `gorm:"type:varchar(255);not null"`
	ReceiverPhone       string             `gorm:"type:varchar(32);not null"`
	OriginBranchID      int64              `gorm:"not null;index"`
	DestinationBranchID int64              `gorm:"not null;index"`
	AssignedDriverID    *int64             `gorm:"index"`
	Status              string             `gorm:"type:varchar(16);not null;index"`
	CreatedAt           time.Time          `gorm:"not null;index"`
	Events              []TrackingEventDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments" instead of "shipment_dtos".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// TrackingEventDTO represents the database structure for persisting tracking events.
// Links to shipments via foreign key; rows are append-only and never updated.
type TrackingEventDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	ShipmentID   int64     `gorm:"not null;index"`
	Status       string    `gorm:"type:varchar(16);not null"`
	Description  string    `gorm:"type:varchar(512);not null"`
	Latitude     *float64  `gorm:"type:double precision"`
	Longitude    *float64  `gorm:"type:double precision"`
	LocationText *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for tracking event entities.
// Overrides GORM's default naming convention to use "tracking_events" instead of "tracking_event_dtos".
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Events are mapped in the aggregate's sorted order so that after an insert the
// backfilled keys line up with the aggregate's events by index.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	events := aggregate.Events()
	eventDTOs := make([]TrackingEventDTO, 0, len(events))
	for _, event := range events {
		eventDTOs = append(eventDTOs, eventFromDomain(aggregate.ID(), event))
	}

	return ShipmentDTO{
		ID:                  aggregate.ID(),
		TrackingCode:        aggregate.TrackingCode().String(),
		SenderName:          aggregate.SenderName(),
		SenderPhone:         aggregate.SenderPhone(),
		ReceiverName:        aggregate.ReceiverName(),
		ReceiverPhone:       aggregate.ReceiverPhone(),
		OriginBranchID:      aggregate.OriginBranchID(),
		DestinationBranchID: aggregate.DestinationBranchID(),
		AssignedDriverID:    aggregate.AssignedDriverID(),
		Status:              aggregate.Status().String(),
		CreatedAt:           aggregate.CreatedAt(),
		Events:              eventDTOs,
	}
}

// eventFromDomain converts a single tracking event to its database representation.
func eventFromDomain(shipmentID int64, event *shipment.TrackingEvent) TrackingEventDTO {
	var latitude, longitude *float64
	if geo := event.Geolocation(); geo != nil {
		lat, lng := geo.Latitude(), geo.Longitude()
		latitude, longitude = &lat, &lng
	}

	return TrackingEventDTO{
		ID:           event.ID(),
		ShipmentID:   shipmentID,
		Status:       event.Status().String(),
		Description:  event.Description(),
		Latitude:     latitude,
		Longitude:    longitude,
		LocationText: event.LocationText(),
		CreatedAt:    event.CreatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including its event history using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	trackingCode, err := kernel.NewTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	events := make([]*shipment.TrackingEvent, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		event, eventErr := eventToDomain(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return shipment.RestoreShipment(
		dto.ID,
		trackingCode,
		dto.SenderName, dto.SenderPhone,
		dto.ReceiverName, dto.ReceiverPhone,
		dto.OriginBranchID, dto.DestinationBranchID,
		dto.AssignedDriverID,
		status,
		dto.CreatedAt,
		events,
	)
}

// eventToDomain converts a tracking event DTO to its domain entity.
// Uses RestoreTrackingEvent to reconstruct the entity with its persisted state.
func eventToDomain(dto TrackingEventDTO) (*shipment.TrackingEvent, error) {
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var geolocation *kernel.Geolocation
	if dto.Latitude != nil && dto.Longitude != nil {
		geo, geoErr := kernel.NewGeolocation(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		geolocation = &geo
	}

	return shipment.RestoreTrackingEvent(
		dto.ID,
		status,
		dto.Description,
		dto.CreatedAt,
		geolocation,
		dto.LocationText,
	)
}

package commands

import (
	"context"

	"vehicle-booking/internal/usecase/queries"
)

// VehicleSnapshot is the write-side view of the external vehicle record.
// The status is opaque external state, authoritative only at the moment of
// the availability check.
type VehicleSnapshot struct {
	ID     int64
	Status string
}

const VehicleStatusAvailable = "AVAILABLE"

// VehicleGateway abstracts the remote vehicle inventory service. Both calls
// are synchronous with no retry here; implementations surface a well-formed
// not-found as errs.ErrVehicleNotFound and any transport fault as
// errs.ErrUpstreamUnavailable so callers can tell them apart.
type VehicleGateway interface {
	GetVehicle(ctx context.Context, vehicleID int64) (*VehicleSnapshot, error)
	SetVehicleStatus(ctx context.Context, vehicleID int64, status string) error
}

// EventPublisher emits booking lifecycle events. Fire-and-forget: a publish
// failure is logged by the caller and never fails the triggering request.
type EventPublisher interface {
	Publish(ctx context.Context, kind string, b *queries.BookingView) error
}

const (
	EventBookingCreated   = "booking-created"
	EventBookingActivated = "booking-activated"
	EventBookingFinished  = "booking-finished"
	EventBookingCanceled  = "booking-canceled"
)

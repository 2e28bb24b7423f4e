package model

import (
	"time"

	roomModel "royalstay/internal/domains/room/model"
	"royalstay/shared"
	"royalstay/shared/failure"
)

const (
	EntityName = "booking"
)

type Status string

// Booking states. Transitions are one-directional and each fires exactly
// once: created -> settled (payment attached) -> invoiced.
const (
	StatusCreated  Status = "created"
	StatusSettled  Status = "settled"
	StatusInvoiced Status = "invoiced"
)

// Booking binds a guest and a room over a date range. Guest and room are
// referenced by id; their lifetimes belong to the registry and the catalog.
// The room's nightly rate is captured at construction (rates are fixed per
// room kind, so this is the rate for the whole stay).
type Booking struct {
	ID         string
	GuestID    string
	RoomNumber int
	RoomRate   float64
	CheckIn    time.Time
	CheckOut   time.Time
	Status     Status
	Payment    Payment
	Invoice    *Invoice
}

// Invoice is the computed total charge plus a reference to the settling
// payment. Generated exactly once per booking.
type Invoice struct {
	Total   float64
	Payment Payment
}

// New validates the date range; no booking is constructed when check-out is
// not after check-in.
func New(guestID string, room roomModel.Room, checkIn, checkOut time.Time) (Booking, error) {
	if !checkOut.After(checkIn) {
		return Booking{}, failure.InvalidDateRange //nolint:wrapcheck
	}

	return Booking{
		ID:         shared.ShortID(),
		GuestID:    guestID,
		RoomNumber: room.Number,
		RoomRate:   room.PricePerNight,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     StatusCreated,
	}, nil
}

// Nights is the strict calendar-day difference between check-out and
// check-in, independent of clock times or timezone shifts within the stay.
func (b *Booking) Nights() int {
	checkIn := time.Date(b.CheckIn.Year(), b.CheckIn.Month(), b.CheckIn.Day(), 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(b.CheckOut.Year(), b.CheckOut.Month(), b.CheckOut.Day(), 0, 0, 0, 0, time.UTC)

	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// AttachPayment settles the booking. Attaching twice is a rejected
// transition, not a silent overwrite.
func (b *Booking) AttachPayment(payment Payment) error {
	if b.Status != StatusCreated {
		return failure.PaymentAlreadyAttached //nolint:wrapcheck
	}

	b.Payment = payment
	b.Status = StatusSettled

	return nil
}

// GenerateInvoice computes nights x rate and stores the invoice. It requires
// a settled booking: without a payment the amount would be meaningless.
func (b *Booking) GenerateInvoice() (Invoice, error) {
	switch b.Status {
	case StatusCreated:
		return Invoice{}, failure.PaymentNotAttached //nolint:wrapcheck
	case StatusInvoiced:
		return Invoice{}, failure.InvoiceAlreadyGenerated //nolint:wrapcheck
	case StatusSettled:
	}

	invoice := Invoice{
		Total:   float64(b.Nights()) * b.RoomRate,
		Payment: b.Payment,
	}

	b.Invoice = &invoice
	b.Status = StatusInvoiced

	return invoice, nil
}

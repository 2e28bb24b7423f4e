package dto

import (
	"time"

	"royalstay/internal/domains/booking/model"
	"royalstay/shared/constant"
	"royalstay/shared/timezone"
)

// PaymentRequest carries the payment-method selector and the fields for the
// selected method. Method 1 is credit card, method 2 is mobile wallet. The
// selector carries no validate tag: the payment builder classifies every
// value outside the set, zero included, as an invalid payment choice.
type PaymentRequest struct {
	Method      int    `json:"method"`
	CardNumber  string `json:"card_number"  validate:"omitempty,max=20"`
	Expiry      string `json:"expiry"       validate:"omitempty,max=5"`
	WalletType  string `json:"wallet_type"  validate:"omitempty,max=30"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
}

type CreateBookingRequest struct {
	GuestID    string         `json:"guest_id"    validate:"required"`
	RoomNumber int            `json:"room_number" validate:"required,min=1"`
	CheckIn    string         `json:"check_in"    validate:"required,calendardate"`
	CheckOut   string         `json:"check_out"   validate:"required,calendardate"`
	Payment    PaymentRequest `json:"payment"`
}

// ParseDates resolves the request's calendar dates in the application
// timezone. Format errors cannot occur after validation.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateFormat, c.CheckOut)

	return checkIn, checkOut, err //nolint:wrapcheck
}

type BookingResponse struct {
	ID           string  `json:"id"`
	GuestID      string  `json:"guest_id"`
	RoomNumber   int     `json:"room_number"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Nights       int     `json:"nights"`
	Status       string  `json:"status"`
	InvoiceTotal float64 `json:"invoice_total"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.GuestID = mod.GuestID
	r.RoomNumber = mod.RoomNumber
	r.CheckIn = mod.CheckIn.Format(constant.DateFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DateFormat)
	r.Nights = mod.Nights()
	r.Status = string(mod.Status)

	if mod.Invoice != nil {
		r.InvoiceTotal = mod.Invoice.Total
	}
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingConfirmation is what the desk reads back to the guest after a
// successful booking.
type BookingConfirmation struct {
	BookingID     string  `json:"booking_id"`
	RoomNumber    int     `json:"room_number"`
	Nights        int     `json:"nights"`
	InvoiceTotal  float64 `json:"invoice_total"`
	Confirmation  string  `json:"confirmation"`
	TransactionID string  `json:"transaction_id"`
}

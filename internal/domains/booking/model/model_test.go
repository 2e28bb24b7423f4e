package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"royalstay/internal/domains/booking/model"
	roomModel "royalstay/internal/domains/room/model"
	"royalstay/shared/failure"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func settled(t *testing.T) model.Booking {
	t.Helper()

	booking, err := model.New("guest-1", roomModel.NewDoubleRoom(201), date("2024-01-01"), date("2024-01-04"))
	assert.NoError(t, err)

	payment := model.NewCreditCardPayment(450, "4111111111111111", "12/27", date("2024-01-01"), "tx-1")
	assert.NoError(t, booking.AttachPayment(payment))

	return booking
}

func TestNewBooking_InvalidDateRange(t *testing.T) {
	room := roomModel.NewSingleRoom(101)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{
			name:     "check-out before check-in",
			checkIn:  "2024-01-04",
			checkOut: "2024-01-01",
		},
		{
			name:     "check-out equals check-in",
			checkIn:  "2024-01-01",
			checkOut: "2024-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := model.New("guest-1", room, date(tt.checkIn), date(tt.checkOut))
			assert.ErrorIs(t, err, failure.InvalidDateRange)
			assert.Empty(t, booking.ID)
		})
	}
}

func TestBooking_Nights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		nights   int
	}{
		{
			name:     "three nights",
			checkIn:  "2024-01-01",
			checkOut: "2024-01-04",
			nights:   3,
		},
		{
			name:     "single night",
			checkIn:  "2024-06-15",
			checkOut: "2024-06-16",
			nights:   1,
		},
		{
			name:     "across month boundary",
			checkIn:  "2024-01-30",
			checkOut: "2024-02-02",
			nights:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := model.New("guest-1", roomModel.NewSingleRoom(101), date(tt.checkIn), date(tt.checkOut))
			assert.NoError(t, err)
			assert.Equal(t, tt.nights, booking.Nights())
		})
	}
}

func TestBooking_GenerateInvoiceRequiresPayment(t *testing.T) {
	booking, err := model.New("guest-1", roomModel.NewDoubleRoom(201), date("2024-01-01"), date("2024-01-04"))
	assert.NoError(t, err)
	assert.Equal(t, model.StatusCreated, booking.Status)

	_, err = booking.GenerateInvoice()
	assert.ErrorIs(t, err, failure.PaymentNotAttached)
	assert.Nil(t, booking.Invoice)
}

func TestBooking_InvoiceTotal(t *testing.T) {
	booking := settled(t)

	invoice, err := booking.GenerateInvoice()
	assert.NoError(t, err)
	assert.Equal(t, float64(450), invoice.Total)
	assert.Equal(t, model.StatusInvoiced, booking.Status)
	assert.NotNil(t, booking.Invoice)
	assert.Equal(t, booking.Payment, invoice.Payment)
}

func TestBooking_AttachPaymentTwice(t *testing.T) {
	booking := settled(t)

	other := model.NewMobileWalletPayment(450, "PayPal", "0501234567", date("2024-01-01"), "tx-2")
	err := booking.AttachPayment(other)
	assert.ErrorIs(t, err, failure.PaymentAlreadyAttached)

	// The original payment stays in place.
	assert.Equal(t, "tx-1", booking.Payment.TransactionID())
}

func TestBooking_GenerateInvoiceTwice(t *testing.T) {
	booking := settled(t)

	_, err := booking.GenerateInvoice()
	assert.NoError(t, err)

	_, err = booking.GenerateInvoice()
	assert.ErrorIs(t, err, failure.InvoiceAlreadyGenerated)
}

func TestCreditCardPayment_ProcessPayment(t *testing.T) {
	payment := model.NewCreditCardPayment(450, "4111111111111111", "12/27", date("2024-01-04"), "tx-9")

	confirmation := payment.ProcessPayment()
	assert.Contains(t, confirmation, "450")
	assert.Contains(t, confirmation, "Credit Card")
	assert.Contains(t, confirmation, "2024-01-04")
}

func TestMobileWalletPayment_ProcessPayment(t *testing.T) {
	payment := model.NewMobileWalletPayment(300, "PayPal", "0501234567", date("2024-03-10"), "tx-9")

	confirmation := payment.ProcessPayment()
	assert.Contains(t, confirmation, "300")
	assert.Contains(t, confirmation, "PayPal")
	assert.Contains(t, confirmation, "2024-03-10")
}

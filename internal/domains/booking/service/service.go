package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"royalstay/internal/domains/booking/model"
	"royalstay/internal/domains/booking/model/dto"
	"royalstay/internal/domains/booking/repository"
	guestService "royalstay/internal/domains/guest/service"
	roomRepo "royalstay/internal/domains/room/repository"
	"royalstay/shared"
	"royalstay/shared/constant"
	"royalstay/shared/failure"
	"royalstay/shared/timezone"
	"royalstay/shared/validator"
)

type Booking interface {
	Book(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingConfirmation, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	HistoryForGuest(ctx context.Context, guestID string) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	guests   guestService.Guest
}

func New(repo repository.Booking, roomRepo roomRepo.Room, guests guestService.Guest) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		guests:   guests,
	}
}

// Book runs the whole settlement sequence for one reservation: resolve the
// guest and the room, construct the booking, settle it with the selected
// payment method, generate the invoice, then push the side effects (room
// availability, guest history, loyalty credit). The sequence is synchronous
// and must stay a single unit; splitting it would allow double-booking a
// room between the availability check and the flip.
func (s *serviceImpl) Book(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingConfirmation, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if _, err = s.guests.Get(ctx, req.GuestID); err != nil {
		return res, err //nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, req.RoomNumber)
	if err != nil {
		log.Error().Err(err).Int("room", req.RoomNumber).Msg("failed to resolve room for booking")

		return res, err //nolint:wrapcheck
	}

	if !room.Available {
		return res, failure.RoomUnavailable //nolint:wrapcheck
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	booking, err := model.New(req.GuestID, room, checkIn, checkOut)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	amount := float64(booking.Nights()) * room.PricePerNight

	payment, err := buildPayment(req.Payment, amount)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = booking.AttachPayment(payment); err != nil {
		return res, err //nolint:wrapcheck
	}

	invoice, err := booking.GenerateInvoice()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to store booking")

		return res, fmt.Errorf("failed to store booking: %w", err)
	}

	if err = s.roomRepo.SetAvailability(ctx, room.Number, false); err != nil {
		log.Error().Err(err).Int("room", room.Number).Msg("failed to mark room unavailable")

		return res, fmt.Errorf("failed to mark room unavailable: %w", err)
	}

	if err = s.guests.RecordBooking(ctx, req.GuestID, booking.ID); err != nil {
		return res, err //nolint:wrapcheck
	}

	log.Info().
		Str("booking_id", booking.ID).
		Str("guest_id", req.GuestID).
		Int("room", room.Number).
		Int("nights", booking.Nights()).
		Float64("total", invoice.Total).
		Msg("booking settled")

	return dto.BookingConfirmation{
		BookingID:     booking.ID,
		RoomNumber:    room.Number,
		Nights:        booking.Nights(),
		InvoiceTotal:  invoice.Total,
		Confirmation:  payment.ProcessPayment(),
		TransactionID: payment.TransactionID(),
	}, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

// HistoryForGuest returns the guest's bookings in reservation order, oldest
// first.
func (s *serviceImpl) HistoryForGuest(ctx context.Context, guestID string) (res dto.GetBookingsResponse, err error) {
	if _, err = s.guests.Get(ctx, guestID); err != nil {
		return res, err //nolint:wrapcheck
	}

	bookings := s.repo.GetAll(ctx)

	history := bookings[:0:0]
	for _, booking := range bookings {
		if booking.GuestID == guestID {
			history = append(history, booking)
		}
	}

	res.FromModels(history)

	return res, nil
}

func buildPayment(req dto.PaymentRequest, amount float64) (model.Payment, error) {
	paidOn := timezone.Today()
	transactionID := shared.ShortID()

	switch req.Method {
	case constant.PaymentMethodCreditCard:
		return model.NewCreditCardPayment(amount, req.CardNumber, req.Expiry, paidOn, transactionID), nil
	case constant.PaymentMethodMobileWallet:
		return model.NewMobileWalletPayment(amount, req.WalletType, req.PhoneNumber, paidOn, transactionID), nil
	default:
		return nil, failure.InvalidPaymentChoice //nolint:wrapcheck
	}
}

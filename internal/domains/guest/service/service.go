package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"royalstay/config"
	"royalstay/internal/domains/guest/model"
	"royalstay/internal/domains/guest/model/dto"
	"royalstay/internal/domains/guest/repository"
	"royalstay/shared/validator"
)

type Guest interface {
	Register(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	RecordBooking(ctx context.Context, guestID, bookingID string) error
	RedeemPoints(ctx context.Context, guestID string, req dto.RedeemPointsRequest) (dto.GuestResponse, error)
}

type serviceImpl struct {
	repo repository.Guest
	cfg  *config.Config
}

func New(repo repository.Guest, cfg *config.Config) Guest {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	guest := req.ToModel()

	if err = s.repo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to register guest")

		return res, fmt.Errorf("failed to register guest: %w", err)
	}

	log.Info().Str("guest_id", guest.ID).Msg("guest account created")

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	guest, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("guest_id", id).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	res.FromModel(guest)

	return res, nil
}

// RecordBooking appends the booking to the guest's history and credits the
// configured points per booking.
func (s *serviceImpl) RecordBooking(ctx context.Context, guestID, bookingID string) error {
	err := s.repo.Update(ctx, guestID, func(guest *model.Guest) error {
		guest.RecordBooking(bookingID, s.cfg.Loyalty.PointsPerBooking)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("guest_id", guestID).Msg("failed to record booking for guest")

		return fmt.Errorf("failed to record booking for guest: %w", err)
	}

	return nil
}

func (s *serviceImpl) RedeemPoints(ctx context.Context, guestID string, req dto.RedeemPointsRequest) (res dto.GuestResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	err = s.repo.Update(ctx, guestID, func(guest *model.Guest) error {
		return guest.Loyalty.RedeemPoints(req.Points) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("guest_id", guestID).Int("points", req.Points).Msg("failed to redeem points")

		return res, err //nolint:wrapcheck
	}

	return s.Get(ctx, guestID)
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	guestService "royalstay/internal/domains/guest/service"
	"royalstay/internal/domains/servicereq/model"
	"royalstay/internal/domains/servicereq/model/dto"
	"royalstay/internal/domains/servicereq/repository"
	"royalstay/shared"
	"royalstay/shared/timezone"
	"royalstay/shared/validator"
)

type ServiceRequest interface {
	Create(ctx context.Context, req dto.CreateServiceRequestRequest) (dto.ServiceRequestResponse, error)
	ListForGuest(ctx context.Context, guestID string) (dto.GetServiceRequestsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateServiceRequestStatusRequest) (dto.ServiceRequestResponse, error)
}

type serviceImpl struct {
	repo   repository.ServiceRequest
	guests guestService.Guest
}

func New(repo repository.ServiceRequest, guests guestService.Guest) ServiceRequest {
	return &serviceImpl{
		repo:   repo,
		guests: guests,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequestRequest) (res dto.ServiceRequestResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if _, err = s.guests.Get(ctx, req.GuestID); err != nil {
		return res, err //nolint:wrapcheck
	}

	request := model.New(shared.ShortID(), req.GuestID, req.Type, req.Details, timezone.Today())

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to store service request")

		return res, fmt.Errorf("failed to store service request: %w", err)
	}

	log.Info().
		Str("request_id", request.ID).
		Str("guest_id", request.GuestID).
		Str("type", request.Type).
		Msg("service request filed")

	res.FromModel(request)

	return res, nil
}

// ListForGuest returns the guest's service requests in filing order.
func (s *serviceImpl) ListForGuest(ctx context.Context, guestID string) (res dto.GetServiceRequestsResponse, err error) {
	if _, err = s.guests.Get(ctx, guestID); err != nil {
		return res, err //nolint:wrapcheck
	}

	requests := s.repo.GetAll(ctx)

	owned := requests[:0:0]
	for _, request := range requests {
		if request.GuestID == guestID {
			owned = append(owned, request)
		}
	}

	res.FromModels(owned)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateServiceRequestStatusRequest) (res dto.ServiceRequestResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	err = s.repo.Update(ctx, id, func(request *model.ServiceRequest) error {
		return request.SetStatus(req.Status) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Str("status", req.Status).Msg("failed to update service request status")

		return res, err //nolint:wrapcheck
	}

	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get service request: %w", err)
	}

	res.FromModel(request)

	return res, nil
}

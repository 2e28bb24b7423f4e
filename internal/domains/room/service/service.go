package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"royalstay/internal/domains/room/model/dto"
	"royalstay/internal/domains/room/repository"
)

type Room interface {
	ListAvailable(ctx context.Context) dto.GetRoomsResponse
	Find(ctx context.Context, number int) (dto.RoomResponse, error)
	SetAvailability(ctx context.Context, number int, available bool) error
}

type serviceImpl struct {
	repo repository.Room
}

func New(repo repository.Room) Room {
	return &serviceImpl{
		repo: repo,
	}
}

// ListAvailable recomputes the free rooms on every call, in catalog order.
func (s *serviceImpl) ListAvailable(ctx context.Context) (res dto.GetRoomsResponse) {
	rooms := s.repo.GetAll(ctx)

	available := rooms[:0:0]
	for _, room := range rooms {
		if room.Available {
			available = append(available, room)
		}
	}

	res.FromModels(available)

	return res
}

func (s *serviceImpl) Find(ctx context.Context, number int) (res dto.RoomResponse, err error) {
	room, err := s.repo.Get(ctx, number)
	if err != nil {
		log.Error().Err(err).Int("number", number).Msg("failed to find room")

		return res, fmt.Errorf("failed to find room: %w", err)
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) SetAvailability(ctx context.Context, number int, available bool) error {
	if err := s.repo.SetAvailability(ctx, number, available); err != nil {
		log.Error().Err(err).Int("number", number).Msg("failed to update room availability")

		return fmt.Errorf("failed to update room availability: %w", err)
	}

	return nil
}

package repository

import (
	"context"

	"royalstay/internal/domains/room/model"
	gRepo "royalstay/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, number int) (model.Room, error)
	GetAll(ctx context.Context) []model.Room
	Exist(ctx context.Context, number int) bool
	SetAvailability(ctx context.Context, number int, available bool) error
}

type repositoryImpl struct {
	*gRepo.Repository[int, model.Room]
}

// New builds the room catalog. The catalog is seeded with the hotel's fixed
// inventory at init; rooms are never added or removed afterwards.
func New() Room {
	repo := &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, func(r model.Room) int { return r.Number }),
	}

	ctx := context.Background()
	for _, room := range []model.Room{
		model.NewSingleRoom(101),
		model.NewDoubleRoom(201),
		model.NewSuite(301),
	} {
		// Inserts into an empty catalog cannot conflict.
		_ = repo.Insert(ctx, room)
	}

	return repo
}

func (repo *repositoryImpl) SetAvailability(ctx context.Context, number int, available bool) error {
	return repo.Update(ctx, number, func(room *model.Room) error { //nolint:wrapcheck
		room.Available = available

		return nil
	})
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"royalstay/internal/domains/booking/model"
	gRepo "royalstay/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context) []model.Booking
	Exist(ctx context.Context, id string) bool
	Count(ctx context.Context) int
}

type repositoryImpl struct {
	*gRepo.Repository[string, model.Booking]
}

func New() Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, func(b model.Booking) string { return b.ID }),
	}
}

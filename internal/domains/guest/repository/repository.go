package repository

import (
	"context"

	"royalstay/internal/domains/guest/model"
	gRepo "royalstay/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	Get(ctx context.Context, id string) (model.Guest, error)
	GetAll(ctx context.Context) []model.Guest
	Exist(ctx context.Context, id string) bool
	Update(ctx context.Context, id string, fn func(guest *model.Guest) error) error
}

type repositoryImpl struct {
	*gRepo.Repository[string, model.Guest]
}

func New() Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, func(g model.Guest) string { return g.ID }),
	}
}

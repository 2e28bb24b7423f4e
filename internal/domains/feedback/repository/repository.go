package repository

import (
	"context"

	"royalstay/internal/domains/feedback/model"
	gRepo "royalstay/shared/repository"
)

type Feedback interface {
	Insert(ctx context.Context, model model.Feedback) error
	GetAll(ctx context.Context) []model.Feedback
	Count(ctx context.Context) int
}

type repositoryImpl struct {
	*gRepo.Repository[string, model.Feedback]
}

func New() Feedback {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, func(f model.Feedback) string { return f.ID }),
	}
}

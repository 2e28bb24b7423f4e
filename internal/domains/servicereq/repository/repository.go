package repository

import (
	"context"

	"royalstay/internal/domains/servicereq/model"
	gRepo "royalstay/shared/repository"
)

type ServiceRequest interface {
	Insert(ctx context.Context, model model.ServiceRequest) error
	Get(ctx context.Context, id string) (model.ServiceRequest, error)
	GetAll(ctx context.Context) []model.ServiceRequest
	Exist(ctx context.Context, id string) bool
	Update(ctx context.Context, id string, fn func(req *model.ServiceRequest) error) error
}

type repositoryImpl struct {
	*gRepo.Repository[string, model.ServiceRequest]
}

func New() ServiceRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, func(r model.ServiceRequest) string { return r.ID }),
	}
}

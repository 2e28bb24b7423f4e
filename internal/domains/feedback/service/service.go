package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"royalstay/internal/domains/feedback/model"
	"royalstay/internal/domains/feedback/model/dto"
	"royalstay/internal/domains/feedback/repository"
	"royalstay/shared"
	"royalstay/shared/timezone"
	"royalstay/shared/validator"
)

type Feedback interface {
	Create(ctx context.Context, req dto.CreateFeedbackRequest) (dto.FeedbackResponse, error)
	List(ctx context.Context) (dto.GetFeedbackResponse, error)
}

type serviceImpl struct {
	repo repository.Feedback
}

func New(repo repository.Feedback) Feedback {
	return &serviceImpl{
		repo: repo,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFeedbackRequest) (res dto.FeedbackResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	feedback, err := model.New(shared.ShortID(), req.GuestName, req.Rating, req.Comments, timezone.Today())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, feedback); err != nil {
		log.Error().Err(err).Msg("failed to store feedback")

		return res, fmt.Errorf("failed to store feedback: %w", err)
	}

	log.Info().
		Str("feedback_id", feedback.ID).
		Int("rating", feedback.Rating).
		Msg("feedback submitted")

	res.FromModel(feedback)

	return res, nil
}

// List returns all feedback in submission order together with the running
// average rating.
func (s *serviceImpl) List(ctx context.Context) (res dto.GetFeedbackResponse, err error) {
	res.FromModels(s.repo.GetAll(ctx))

	return res, nil
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"royalstay/internal/domains/feedback/model/dto"
	"royalstay/internal/domains/feedback/repository"
	"royalstay/internal/domains/feedback/service"
	"royalstay/shared/failure"
)

func TestFeedbackService_Create(t *testing.T) {
	svc := service.New(repository.New())

	res, err := svc.Create(context.Background(), dto.CreateFeedbackRequest{
		GuestName: "Sara Malik",
		Rating:    5,
		Comments:  "Lovely stay, very responsive staff",
	})
	assert.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Sara Malik", res.GuestName)
	assert.Equal(t, 5, res.Rating)
	assert.NotEmpty(t, res.SubmittedOn)
}

func TestFeedbackService_CreateRatingBounds(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr error
	}{
		{name: "below minimum", rating: 0, wantErr: failure.InvalidRating},
		{name: "above maximum", rating: 6, wantErr: failure.InvalidRating},
		{name: "negative", rating: -1, wantErr: failure.InvalidRating},
		{name: "minimum accepted", rating: 1},
		{name: "maximum accepted", rating: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.New(repository.New())

			res, err := svc.Create(context.Background(), dto.CreateFeedbackRequest{
				GuestName: "Sara Malik",
				Rating:    tt.rating,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.rating, res.Rating)
		})
	}
}

func TestFeedbackService_CreateMissingName(t *testing.T) {
	svc := service.New(repository.New())

	_, err := svc.Create(context.Background(), dto.CreateFeedbackRequest{Rating: 4})
	assert.Error(t, err)
}

func TestFeedbackService_List(t *testing.T) {
	svc := service.New(repository.New())
	ctx := context.Background()

	empty, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, empty.Feedback)
	assert.Zero(t, empty.AverageRating)

	first, err := svc.Create(ctx, dto.CreateFeedbackRequest{GuestName: "Sara Malik", Rating: 5})
	assert.NoError(t, err)

	second, err := svc.Create(ctx, dto.CreateFeedbackRequest{GuestName: "Omar Farouk", Rating: 2, Comments: "Slow check-in"})
	assert.NoError(t, err)

	list, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, list.Feedback, 2)
	assert.Equal(t, first.ID, list.Feedback[0].ID)
	assert.Equal(t, second.ID, list.Feedback[1].ID)
	assert.InDelta(t, 3.5, list.AverageRating, 0.0001)
}

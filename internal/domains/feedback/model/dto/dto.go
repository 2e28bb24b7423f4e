package dto

import (
	"royalstay/internal/domains/feedback/model"
	"royalstay/shared/constant"
)

type CreateFeedbackRequest struct {
	GuestName string `json:"guest_name" validate:"required,max=100"`
	// Rating carries no validate tag: the model owns the 1-5 range rule, so
	// every out-of-range value (including zero) reports the same failure.
	Rating   int    `json:"rating"`
	Comments string `json:"comments" validate:"omitempty,max=500"`
}

type FeedbackResponse struct {
	ID          string `json:"id"`
	GuestName   string `json:"guest_name"`
	Rating      int    `json:"rating"`
	Comments    string `json:"comments"`
	SubmittedOn string `json:"submitted_on"`
}

func (r *FeedbackResponse) FromModel(mod model.Feedback) {
	r.ID = mod.ID
	r.GuestName = mod.GuestName
	r.Rating = mod.Rating
	r.Comments = mod.Comments
	r.SubmittedOn = mod.SubmittedOn.Format(constant.DateFormat)
}

type GetFeedbackResponse struct {
	Feedback      []FeedbackResponse `json:"feedback"`
	AverageRating float64            `json:"average_rating"`
}

func (r *GetFeedbackResponse) FromModels(models []model.Feedback) {
	r.Feedback = make([]FeedbackResponse, len(models))

	total := 0
	for i, mod := range models {
		r.Feedback[i].FromModel(mod)
		total += mod.Rating
	}

	if len(models) > 0 {
		r.AverageRating = float64(total) / float64(len(models))
	}
}

package model

import (
	"time"

	"royalstay/shared/constant"
	"royalstay/shared/failure"
)

const (
	EntityName = "feedback"
)

// Feedback is a stay review left at checkout. Entries are immutable once
// submitted.
type Feedback struct {
	ID          string
	GuestName   string
	Rating      int
	Comments    string
	SubmittedOn time.Time
}

// New builds a feedback entry. The rating must fall inside the 1 to 5 scale;
// boundary values are accepted.
func New(id, guestName string, rating int, comments string, submittedOn time.Time) (Feedback, error) {
	if rating < constant.FeedbackRatingMin || rating > constant.FeedbackRatingMax {
		return Feedback{}, failure.InvalidRating //nolint:wrapcheck
	}

	return Feedback{
		ID:          id,
		GuestName:   guestName,
		Rating:      rating,
		Comments:    comments,
		SubmittedOn: submittedOn,
	}, nil
}

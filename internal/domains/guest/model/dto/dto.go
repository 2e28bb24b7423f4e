package dto

import (
	"royalstay/internal/domains/guest/model"
	"royalstay/shared"
)

type CreateGuestRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Contact string `json:"contact" validate:"required,max=20"`
}

func (c *CreateGuestRequest) ToModel() model.Guest {
	return model.NewGuest(shared.ShortID(), c.Name, c.Email, c.Contact)
}

type RedeemPointsRequest struct {
	Points int `json:"points" validate:"required,min=1"`
}

type GuestResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Contact       string   `json:"contact"`
	LoyaltyPoints int      `json:"loyalty_points"`
	LoyaltyTier   string   `json:"loyalty_tier"`
	BookingIDs    []string `json:"booking_ids"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Contact = model.Contact
	r.LoyaltyPoints = model.Loyalty.Points
	r.LoyaltyTier = model.Loyalty.Tier
	r.BookingIDs = model.BookingIDs
}

package model

import (
	"royalstay/shared/constant"
	"royalstay/shared/failure"
)

const (
	EntityName = "guest"
)

// LoyaltyAccount tracks a guest's point balance. The balance never goes
// negative; tier is a manually assigned label with no automatic derivation.
type LoyaltyAccount struct {
	AccountID string
	Points    int
	Tier      string
}

func NewLoyaltyAccount(accountID string) LoyaltyAccount {
	return LoyaltyAccount{
		AccountID: accountID,
		Points:    0,
		Tier:      constant.LoyaltyTierBasic,
	}
}

func (a *LoyaltyAccount) EarnPoints(amount int) {
	a.Points += amount
}

// RedeemPoints debits the balance, all or nothing.
func (a *LoyaltyAccount) RedeemPoints(amount int) error {
	if amount > a.Points {
		return failure.InsufficientPoints //nolint:wrapcheck
	}

	a.Points -= amount

	return nil
}

// Guest owns its loyalty account and its booking history. BookingIDs is
// append-only; insertion order is the reservation-history order.
type Guest struct {
	ID         string
	Name       string
	Email      string
	Contact    string
	Loyalty    LoyaltyAccount
	BookingIDs []string
}

func NewGuest(id, name, email, contact string) Guest {
	return Guest{
		ID:      id,
		Name:    name,
		Email:   email,
		Contact: contact,
		Loyalty: NewLoyaltyAccount(id),
	}
}

// RecordBooking appends a settled booking to the guest's history and credits
// the loyalty account.
func (g *Guest) RecordBooking(bookingID string, points int) {
	g.BookingIDs = append(g.BookingIDs, bookingID)
	g.Loyalty.EarnPoints(points)
}

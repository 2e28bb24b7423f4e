package model

import (
	"fmt"
	"time"

	"royalstay/shared"
	"royalstay/shared/constant"
	"royalstay/shared/timezone"
)

// Payment is how a booking's charge was settled. The variant set is closed:
// the desk accepts credit cards and mobile wallets, nothing else.
type Payment interface {
	Amount() float64
	PaidOn() time.Time
	TransactionID() string
	// ProcessPayment returns the confirmation line shown to the guest. It
	// always names the amount, the method, and the payment date.
	ProcessPayment() string
}

type CreditCardPayment struct {
	amount        float64
	paidOn        time.Time
	transactionID string
	cardNumber    string
	expiry        string
}

// NewCreditCardPayment records a card settlement. Card number and expiry are
// kept as opaque strings; no card-format validation is performed.
func NewCreditCardPayment(amount float64, cardNumber, expiry string, paidOn time.Time, transactionID string) CreditCardPayment {
	return CreditCardPayment{
		amount:        amount,
		paidOn:        paidOn,
		transactionID: transactionID,
		cardNumber:    cardNumber,
		expiry:        expiry,
	}
}

func (p CreditCardPayment) Amount() float64 {
	return p.amount
}

func (p CreditCardPayment) PaidOn() time.Time {
	return p.paidOn
}

func (p CreditCardPayment) TransactionID() string {
	return p.transactionID
}

func (p CreditCardPayment) CardNumber() string {
	return p.cardNumber
}

func (p CreditCardPayment) Expiry() string {
	return p.expiry
}

func (p CreditCardPayment) ProcessPayment() string {
	return fmt.Sprintf("Paid $%s via Credit Card on %s",
		shared.FormatAmount(p.amount), timezone.Format(p.paidOn, constant.DateFormat))
}

type MobileWalletPayment struct {
	amount        float64
	paidOn        time.Time
	transactionID string
	walletType    string
	phoneNumber   string
}

func NewMobileWalletPayment(amount float64, walletType, phoneNumber string, paidOn time.Time, transactionID string) MobileWalletPayment {
	return MobileWalletPayment{
		amount:        amount,
		paidOn:        paidOn,
		transactionID: transactionID,
		walletType:    walletType,
		phoneNumber:   phoneNumber,
	}
}

func (p MobileWalletPayment) Amount() float64 {
	return p.amount
}

func (p MobileWalletPayment) PaidOn() time.Time {
	return p.paidOn
}

func (p MobileWalletPayment) TransactionID() string {
	return p.transactionID
}

func (p MobileWalletPayment) WalletType() string {
	return p.walletType
}

func (p MobileWalletPayment) PhoneNumber() string {
	return p.phoneNumber
}

func (p MobileWalletPayment) ProcessPayment() string {
	return fmt.Sprintf("Paid $%s via %s on %s",
		shared.FormatAmount(p.amount), p.walletType, timezone.Format(p.paidOn, constant.DateFormat))
}

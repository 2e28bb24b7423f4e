package constant

const (
	DateFormat = "2006-01-02"
)

const (
	PaymentMethodCreditCard   = 1
	PaymentMethodMobileWallet = 2
)

const (
	ServiceRequestStatusPending    = "Pending"
	ServiceRequestStatusInProgress = "In Progress"
	ServiceRequestStatusCompleted  = "Completed"
)

const (
	LoyaltyTierBasic = "Basic"
)

const (
	FeedbackRatingMin = 1
	FeedbackRatingMax = 5
)

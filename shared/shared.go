package shared

import (
	"strconv"

	"github.com/google/uuid"
)

const shortIDLength = 8

// ShortID returns a truncated uuid, the identifier shape used for guests,
// bookings, and payment transactions.
func ShortID() string {
	return uuid.NewString()[:shortIDLength]
}

// FormatAmount renders a monetary amount without trailing zeros, in the
// system's single currency unit.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

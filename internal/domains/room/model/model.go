package model

const (
	EntityName = "room"
)

type Kind string

const (
	KindSingle Kind = "Single"
	KindDouble Kind = "Double"
	KindSuite  Kind = "Suite"
)

const (
	AmenityWiFi       = "WiFi"
	AmenityTV         = "TV"
	AmenityAC         = "Air Conditioning"
	AmenityMiniFridge = "Mini Fridge"
	AmenityJacuzzi    = "Jacuzzi"
	AmenityLivingArea = "Living Area"
)

// Room is a catalog entry. Kind, price, and amenities are fixed by the named
// constructors below; only the availability flag mutates after construction.
type Room struct {
	Number        int
	Kind          Kind
	PricePerNight float64
	Amenities     []string
	Available     bool
}

func NewSingleRoom(number int) Room {
	return Room{
		Number:        number,
		Kind:          KindSingle,
		PricePerNight: 100,
		Amenities:     []string{AmenityWiFi, AmenityTV, AmenityAC},
		Available:     true,
	}
}

func NewDoubleRoom(number int) Room {
	return Room{
		Number:        number,
		Kind:          KindDouble,
		PricePerNight: 150,
		Amenities:     []string{AmenityWiFi, AmenityTV, AmenityMiniFridge, AmenityAC},
		Available:     true,
	}
}

func NewSuite(number int) Room {
	return Room{
		Number:        number,
		Kind:          KindSuite,
		PricePerNight: 300,
		Amenities:     []string{AmenityWiFi, AmenityTV, AmenityMiniFridge, AmenityJacuzzi, AmenityLivingArea},
		Available:     true,
	}
}

package dto

import (
	"strconv"
	"strings"

	"royalstay/internal/domains/room/model"
	"royalstay/shared"
)

type RoomResponse struct {
	Number        int      `json:"number"`
	Kind          string   `json:"kind"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	Available     bool     `json:"available"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.Number = model.Number
	r.Kind = string(model.Kind)
	r.PricePerNight = model.PricePerNight
	r.Amenities = model.Amenities
	r.Available = model.Available
}

// Describe renders the catalog line the menu prints for a room.
func (r *RoomResponse) Describe() string {
	return r.Kind + " Room " + strconv.Itoa(r.Number) + " - $" +
		shared.FormatAmount(r.PricePerNight) + "/night, Amenities: " + strings.Join(r.Amenities, ", ")
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
